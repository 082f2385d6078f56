package model

import (
	"time"
)

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex:uk_slug" json:"slug"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Markdown  string    `gorm:"type:text" json:"markdown"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
