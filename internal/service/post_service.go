package service

import (
	"BlogAdmin/internal/api/dto"
	"BlogAdmin/internal/model"
	"BlogAdmin/internal/pkg/markdown"
	"BlogAdmin/internal/pkg/util"
	"BlogAdmin/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const excerptMaxChars = 160

// PostCache 文章缓存, 未命中时 GetPost 返回 nil, nil
type PostCache interface {
	GetPost(ctx context.Context, slug string) (*model.Post, error)
	SetPost(ctx context.Context, post *model.Post) error
	DeletePosts(ctx context.Context, slugs ...string) error
}

// PostEventPublisher 文章变更事件
type PostEventPublisher interface {
	PublishPostUpdated(ctx context.Context, event *dto.PostUpdatedEvent) error
}

type PostService interface {
	GetPostBySlug(ctx context.Context, slug string) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, slug string, postDTO *dto.PostUpdateDTO) (*dto.PostDTO, error)
	GetPostPage(ctx context.Context, slug string) (*dto.PostPageDTO, error)
}

type postServiceImpl struct {
	postDBRepo repository.PostRepo
	cache      PostCache
	publisher  PostEventPublisher
	renderer   *markdown.Renderer
}

// NewPostService cache 与 publisher 可以为 nil
func NewPostService(postDBRepo repository.PostRepo, cache PostCache, publisher PostEventPublisher, renderer *markdown.Renderer) PostService {
	if renderer == nil {
		renderer = markdown.NewRenderer()
	}
	return &postServiceImpl{
		postDBRepo: postDBRepo,
		cache:      cache,
		publisher:  publisher,
		renderer:   renderer,
	}
}

// GetPostBySlug 文章不存在时返回 ErrPostNotFound
func (s *postServiceImpl) GetPostBySlug(ctx context.Context, slug string) (*dto.PostDTO, error) {
	post, err := s.loadPost(ctx, slug)
	if err != nil {
		return nil, err
	}
	return toPostDTO(post)
}

// UpdatePost 按 URL 中的 slug 覆盖文章, 最后一次写入生效
func (s *postServiceImpl) UpdatePost(ctx context.Context, slug string, postDTO *dto.PostUpdateDTO) (*dto.PostDTO, error) {
	if err := util.ValidateDTO(postDTO); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParamInvalid, err)
	}

	post := &model.Post{}
	if err := copier.Copy(post, postDTO); err != nil {
		return nil, err
	}

	if err := s.postDBRepo.UpdatePostBySlug(ctx, slug, post); err != nil {
		switch {
		case errors.Is(err, repository.ErrPostNotExist):
			return nil, ErrPostNotFound
		case errors.Is(err, repository.ErrDuplicateSlug):
			return nil, ErrSlugTaken
		default:
			return nil, fmt.Errorf("%w: %w", ErrPersistFailed, err)
		}
	}

	s.evict(ctx, slug, post.Slug)
	s.publishUpdated(ctx, slug, post)

	return toPostDTO(post)
}

// GetPostPage 前台文章页: markdown 渲染为 HTML 并生成摘要
func (s *postServiceImpl) GetPostPage(ctx context.Context, slug string) (*dto.PostPageDTO, error) {
	post, err := s.loadPost(ctx, slug)
	if err != nil {
		return nil, err
	}
	postDTO, err := toPostDTO(post)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.ToHTML(post.Markdown)
	if err != nil {
		return nil, err
	}
	excerpt, err := markdown.Excerpt(html, excerptMaxChars)
	if err != nil {
		log.WarnContext(ctx, "post excerpt failed", "slug", slug, "err", err)
	}

	return &dto.PostPageDTO{
		Post:    postDTO,
		HTML:    html,
		Excerpt: excerpt,
	}, nil
}

// loadPost 先读缓存, 缓存故障时降级为直接查库
func (s *postServiceImpl) loadPost(ctx context.Context, slug string) (*model.Post, error) {
	if s.cache != nil {
		cached, err := s.cache.GetPost(ctx, slug)
		if err != nil {
			log.WarnContext(ctx, "post cache get failed", "slug", slug, "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	post, err := s.postDBRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if s.cache != nil {
		if err = s.cache.SetPost(ctx, post); err != nil {
			log.WarnContext(ctx, "post cache set failed", "slug", slug, "err", err)
		}
	}
	return post, nil
}

func (s *postServiceImpl) evict(ctx context.Context, slugs ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePosts(ctx, slugs...); err != nil {
		log.WarnContext(ctx, "post cache evict failed", "slugs", slugs, "err", err)
	}
}

// publishUpdated 事件发布失败不影响已经落库的更新
func (s *postServiceImpl) publishUpdated(ctx context.Context, oldSlug string, post *model.Post) {
	if s.publisher == nil {
		return
	}
	event := &dto.PostUpdatedEvent{
		EventID:   uuid.NewString(),
		OldSlug:   oldSlug,
		Slug:      post.Slug,
		Title:     post.Title,
		UpdatedAt: formatTime(post.UpdatedAt),
	}
	if err := s.publisher.PublishPostUpdated(ctx, event); err != nil {
		log.ErrorContext(ctx, "publish post updated event failed", "slug", post.Slug, "err", err)
	}
}

func toPostDTO(post *model.Post) (*dto.PostDTO, error) {
	out := &dto.PostDTO{}
	if err := copier.Copy(out, post); err != nil {
		return nil, err
	}
	out.CreatedAt = formatTime(post.CreatedAt)
	out.UpdatedAt = formatTime(post.UpdatedAt)
	return out, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
