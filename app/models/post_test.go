package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostValidation(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		post    *Post
		wantErr bool
	}{
		{
			name: "valid post",
			post: &Post{
				ID:        "post-1",
				Title:     "Hello World!!",
				Content:   "This is a sufficiently long body.",
				AuthorID:  "acct-1",
				Author:    "ada",
				CreatedAt: now,
				UpdatedAt: now,
			},
			wantErr: false,
		},
		{
			name: "empty title",
			post: &Post{
				ID:        "post-1",
				Content:   "Some content",
				AuthorID:  "acct-1",
				Author:    "ada",
				CreatedAt: now,
				UpdatedAt: now,
			},
			wantErr: true,
		},
		{
			name: "empty content",
			post: &Post{
				ID:        "post-1",
				Title:     "Hello World!!",
				AuthorID:  "acct-1",
				Author:    "ada",
				CreatedAt: now,
				UpdatedAt: now,
			},
			wantErr: true,
		},
		{
			name: "updatedAt before createdAt",
			post: &Post{
				ID:        "post-1",
				Title:     "Hello World!!",
				Content:   "Some content",
				AuthorID:  "acct-1",
				Author:    "ada",
				CreatedAt: now,
				UpdatedAt: now.Add(-time.Hour),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{Title: "Hello", Content: "World", AuthorID: "acct-1", Author: "ada"}
	post.BeforeCreate()

	assert.NotEmpty(t, post.ID)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.NotNil(t, post.Likes)
	assert.Empty(t, post.Likes)
}

func TestPostLikes(t *testing.T) {
	post := &Post{Likes: []string{}}

	t.Run("add like", func(t *testing.T) {
		post.AddLike("acct-1")
		assert.True(t, post.LikedBy("acct-1"))
		assert.Len(t, post.Likes, 1)
	})

	t.Run("adding twice keeps the set unchanged", func(t *testing.T) {
		post.AddLike("acct-1")
		assert.Len(t, post.Likes, 1)
	})

	t.Run("remove like", func(t *testing.T) {
		post.RemoveLike("acct-1")
		assert.False(t, post.LikedBy("acct-1"))
		assert.Empty(t, post.Likes)
	})

	t.Run("removing an absent like is a no-op", func(t *testing.T) {
		post.RemoveLike("acct-2")
		assert.Empty(t, post.Likes)
	})
}
