package repository

import (
	"BlogAdmin/internal/model"
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryPostRepo 进程内的文章仓库, 未配置数据库时使用
type MemoryPostRepo struct {
	mu     sync.RWMutex
	posts  map[string]*model.Post
	nextID uint64
}

// NewMemoryPostRepo 种子数据 slug 重复时 panic, 只在启动和测试时调用
func NewMemoryPostRepo(seed ...*model.Post) *MemoryPostRepo {
	r := &MemoryPostRepo{
		posts: make(map[string]*model.Post),
	}
	for _, p := range seed {
		if err := r.CreatePost(context.Background(), p); err != nil {
			panic(fmt.Sprintf("seed post %q: %v", p.Slug, err))
		}
	}
	return r
}

// GetPostBySlug 返回副本, 未找到时返回 nil, nil
func (r *MemoryPostRepo) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[slug]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *MemoryPostRepo) UpdatePostBySlug(ctx context.Context, slug string, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.posts[slug]
	if !ok {
		return ErrPostNotExist
	}
	if post.Slug != slug {
		if _, taken := r.posts[post.Slug]; taken {
			return ErrDuplicateSlug
		}
	}

	updated := *existing
	updated.Title = post.Title
	updated.Slug = post.Slug
	updated.Markdown = post.Markdown
	updated.UpdatedAt = time.Now()

	delete(r.posts, slug)
	r.posts[updated.Slug] = &updated

	*post = updated
	return nil
}

func (r *MemoryPostRepo) CreatePost(ctx context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.Slug]; ok {
		return ErrDuplicateSlug
	}
	r.nextID++
	now := time.Now()
	post.ID = r.nextID
	post.CreatedAt = now
	post.UpdatedAt = now

	cp := *post
	r.posts[post.Slug] = &cp
	return nil
}
