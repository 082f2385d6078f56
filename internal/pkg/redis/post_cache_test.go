package redis

import (
	"BlogAdmin/internal/model"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*PostCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewPostCache(rdb, time.Minute), mr
}

func TestPostCache_MissReturnsNil(t *testing.T) {
	cache, _ := newTestCache(t)

	post, err := cache.GetPost(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestPostCache_SetThenGet(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetPost(ctx, &model.Post{ID: 7, Title: "Hello", Slug: "hello", Markdown: "# Hi"}))
	assert.True(t, mr.Exists("post:slug:hello"))
	assert.Equal(t, time.Minute, mr.TTL("post:slug:hello"))

	post, err := cache.GetPost(ctx, "hello")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, uint64(7), post.ID)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "# Hi", post.Markdown)
}

func TestPostCache_DeletePosts(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetPost(ctx, &model.Post{Title: "A", Slug: "a"}))
	require.NoError(t, cache.SetPost(ctx, &model.Post{Title: "B", Slug: "b"}))

	require.NoError(t, cache.DeletePosts(ctx, "a", "b", "c"))
	assert.False(t, mr.Exists("post:slug:a"))
	assert.False(t, mr.Exists("post:slug:b"))
	require.NoError(t, cache.DeletePosts(ctx))
}
