package repository

import (
	"BlogAdmin/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPostRepo_CreateAndGet(t *testing.T) {
	repo := NewMemoryPostRepo()
	ctx := context.Background()

	post := &model.Post{Title: "Hello", Slug: "hello", Markdown: "# Hi"}
	require.NoError(t, repo.CreatePost(ctx, post))
	assert.Equal(t, uint64(1), post.ID)

	got, err := repo.GetPostBySlug(ctx, "hello")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "# Hi", got.Markdown)
}

func TestMemoryPostRepo_GetMissing(t *testing.T) {
	repo := NewMemoryPostRepo()

	got, err := repo.GetPostBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryPostRepo_CreateDuplicate(t *testing.T) {
	repo := NewMemoryPostRepo(&model.Post{Title: "A", Slug: "a"})

	err := repo.CreatePost(context.Background(), &model.Post{Title: "B", Slug: "a"})
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestMemoryPostRepo_UpdateRenamesSlug(t *testing.T) {
	repo := NewMemoryPostRepo(&model.Post{Title: "Hello", Slug: "hello", Markdown: "# Hi"})
	ctx := context.Background()

	post := &model.Post{Title: "Hi", Slug: "hi", Markdown: "# Hello"}
	require.NoError(t, repo.UpdatePostBySlug(ctx, "hello", post))
	assert.Equal(t, uint64(1), post.ID)

	old, err := repo.GetPostBySlug(ctx, "hello")
	require.NoError(t, err)
	assert.Nil(t, old)

	got, err := repo.GetPostBySlug(ctx, "hi")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hi", got.Title)
	assert.Equal(t, "# Hello", got.Markdown)
}

func TestMemoryPostRepo_UpdateMissing(t *testing.T) {
	repo := NewMemoryPostRepo()

	err := repo.UpdatePostBySlug(context.Background(), "missing", &model.Post{Title: "x", Slug: "x", Markdown: "x"})
	assert.ErrorIs(t, err, ErrPostNotExist)
}

func TestMemoryPostRepo_UpdateSlugConflict(t *testing.T) {
	repo := NewMemoryPostRepo(
		&model.Post{Title: "A", Slug: "a"},
		&model.Post{Title: "B", Slug: "b"},
	)

	err := repo.UpdatePostBySlug(context.Background(), "a", &model.Post{Title: "A", Slug: "b", Markdown: "x"})
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestMemoryPostRepo_ReturnsCopies(t *testing.T) {
	repo := NewMemoryPostRepo(&model.Post{Title: "A", Slug: "a"})
	ctx := context.Background()

	got, err := repo.GetPostBySlug(ctx, "a")
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := repo.GetPostBySlug(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Title)
}

func TestNewMemoryPostRepo_DuplicateSeedPanics(t *testing.T) {
	assert.PanicsWithValue(t, `seed post "hello": duplicate post slug`, func() {
		NewMemoryPostRepo(
			&model.Post{Title: "Hello", Slug: "hello"},
			&model.Post{Title: "Again", Slug: "hello"},
		)
	})
}
