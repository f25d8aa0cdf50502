package service

import (
	"context"
	"strings"
	"testing"

	"petshare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func validCreateCommentInput() CreateCommentInput {
	return CreateCommentInput{
		ID:        "comment_1",
		PostID:    "post_1",
		UserName:  "Alex",
		Text:      "so fluffy",
		CreatedAt: "2026-08-30T10:05:00.000Z",
	}
}

func TestCommentService_CreateComment(t *testing.T) {
	t.Parallel()

	t.Run("stores a valid comment", func(t *testing.T) {
		t.Parallel()

		var stored *models.Comment
		repo := &stubCommentRepo{
			createFunc: func(_ context.Context, comment *models.Comment) error {
				stored = comment
				return nil
			},
		}
		svc := NewCommentService(repo)

		comment, err := svc.CreateComment(context.Background(), validCreateCommentInput())
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "comment_1", comment.ID)
		assert.Equal(t, "post_1", stored.PostID)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		t.Parallel()

		svc := NewCommentService(&stubCommentRepo{})

		for _, tc := range []struct {
			name   string
			mutate func(*CreateCommentInput)
		}{
			{"id", func(in *CreateCommentInput) { in.ID = "" }},
			{"postId", func(in *CreateCommentInput) { in.PostID = "" }},
			{"userName", func(in *CreateCommentInput) { in.UserName = "" }},
			{"text", func(in *CreateCommentInput) { in.Text = "" }},
			{"createdAt", func(in *CreateCommentInput) { in.CreatedAt = "" }},
		} {
			input := validCreateCommentInput()
			tc.mutate(&input)

			_, err := svc.CreateComment(context.Background(), input)
			require.Error(t, err, tc.name)
			appErr, ok := err.(*models.AppError)
			require.True(t, ok, tc.name)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code, tc.name)
		}
	})

	t.Run("rejects over-long text", func(t *testing.T) {
		t.Parallel()

		svc := NewCommentService(&stubCommentRepo{})

		input := validCreateCommentInput()
		input.Text = strings.Repeat("a", maxCommentLength+1)

		_, err := svc.CreateComment(context.Background(), input)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("length cap counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		repo := &stubCommentRepo{
			createFunc: func(_ context.Context, _ *models.Comment) error { return nil },
		}
		svc := NewCommentService(repo)

		// 200 four-byte runes: well under the cap even though the byte
		// length exceeds it.
		input := validCreateCommentInput()
		input.Text = strings.Repeat("🐶", 200)
		require.Greater(t, len(input.Text), maxCommentLength)

		_, err := svc.CreateComment(context.Background(), input)
		assert.NoError(t, err)

		input.Text = strings.Repeat("🐶", maxCommentLength+1)
		_, err = svc.CreateComment(context.Background(), input)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("maps unknown post to not found", func(t *testing.T) {
		t.Parallel()

		repo := &stubCommentRepo{
			createFunc: func(_ context.Context, _ *models.Comment) error {
				return gorm.ErrRecordNotFound
			},
		}
		svc := NewCommentService(repo)

		_, err := svc.CreateComment(context.Background(), validCreateCommentInput())
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestCommentService_ListComments(t *testing.T) {
	t.Parallel()

	t.Run("returns comments from the repository", func(t *testing.T) {
		t.Parallel()

		repo := &stubCommentRepo{
			listByPostFunc: func(_ context.Context, postID string) ([]models.Comment, error) {
				assert.Equal(t, "post_1", postID)
				return []models.Comment{{ID: "comment_1", PostID: "post_1"}}, nil
			},
		}
		svc := NewCommentService(repo)

		comments, err := svc.ListComments(context.Background(), "post_1")
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "comment_1", comments[0].ID)
	})

	t.Run("rejects empty post id", func(t *testing.T) {
		t.Parallel()

		svc := NewCommentService(&stubCommentRepo{})

		_, err := svc.ListComments(context.Background(), "")
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}
