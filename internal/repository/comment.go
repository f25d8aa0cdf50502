package repository

import (
	"context"
	"fmt"

	"petshare/internal/models"
	"petshare/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a comment and bumps the parent post's comment counter in the
// same transaction. Returns gorm.ErrRecordNotFound when the post does not
// exist.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	ctx, span := observability.StartRepositorySpan(ctx, "comment.Create", "comments")
	defer span.End()
	defer observability.TrackQuery("create", "comments")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).
			Where("id = ?", comment.PostID).
			Update("comments", gorm.Expr("comments + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(comment).Error
	})
	if err != nil {
		observability.RecordErrorInContext(ctx, err)
		return err
	}

	observability.CounterUpdates.WithLabelValues("comments", "increment").Inc()
	return nil
}

// ListByPost returns the comments for a post, newest first. An unknown post
// yields an empty list, the same as a post with no comments.
func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	ctx, span := observability.StartRepositorySpan(ctx, "comment.ListByPost", "comments")
	defer span.End()
	defer observability.TrackQuery("list", "comments")()

	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Where("postId = ?", postID).
		Order("createdAt DESC").
		Find(&comments).Error; err != nil {
		observability.RecordErrorInContext(ctx, err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
