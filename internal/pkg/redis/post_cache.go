package redis

import (
	"BlogAdmin/internal/model"
	"BlogAdmin/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// PostCache 以 slug 为键缓存文章
type PostCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPostCache(rdb *redis.Client, ttl time.Duration) *PostCache {
	return &PostCache{
		rdb: rdb,
		ttl: ttl,
	}
}

// GetPost 未命中时返回 nil, nil
func (s *PostCache) GetPost(ctx context.Context, slug string) (*model.Post, error) {
	value, err := s.rdb.Get(ctx, consts.PostSlugKey+slug).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var post model.Post
	if err = json.Unmarshal([]byte(value), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostCache) SetPost(ctx context.Context, post *model.Post) error {
	jsonStr, err := json.Marshal(post)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, consts.PostSlugKey+post.Slug, jsonStr, s.ttl).Err()
}

// DeletePosts 删除一个或多个 slug 的缓存
func (s *PostCache) DeletePosts(ctx context.Context, slugs ...string) error {
	if len(slugs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		keys = append(keys, consts.PostSlugKey+slug)
	}
	return s.rdb.Del(ctx, keys...).Err()
}
