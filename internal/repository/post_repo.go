package repository

import (
	"BlogAdmin/internal/model"
	"context"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostRepo 更新时文章不存在返回 ErrPostNotExist, slug 冲突返回 ErrDuplicateSlug
type PostRepo interface {
	GetPostBySlug(ctx context.Context, slug string) (*model.Post, error)
	UpdatePostBySlug(ctx context.Context, slug string, post *model.Post) error
	CreatePost(ctx context.Context, post *model.Post) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// GetPostBySlug 未找到时返回 nil, nil
func (s *PostRepoImpl) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get post by slug %q", slug)
	}
	return &post, nil
}

// UpdatePostBySlug 按旧 slug 定位并覆盖 title/slug/markdown, 不做版本校验
func (s *PostRepoImpl) UpdatePostBySlug(ctx context.Context, slug string, post *model.Post) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Post
		if err := tx.Where("slug = ?", slug).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotExist
			}
			return errors.Wrapf(err, "find post %q for update", slug)
		}
		err := tx.Model(&existing).Updates(map[string]interface{}{
			"title":    post.Title,
			"slug":     post.Slug,
			"markdown": post.Markdown,
		}).Error
		if err != nil {
			if isDuplicateError(err) {
				return ErrDuplicateSlug
			}
			return errors.Wrapf(err, "update post %q", slug)
		}
		post.ID = existing.ID
		post.CreatedAt = existing.CreatedAt
		post.UpdatedAt = existing.UpdatedAt
		return nil
	})
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	err := s.db.WithContext(ctx).Create(post).Error
	if isDuplicateError(err) {
		return ErrDuplicateSlug
	}
	return errors.Wrap(err, "create post")
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}
