package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"petshare/internal/models"
	"petshare/internal/repository"

	"gorm.io/gorm"
)

const maxCommentLength = 500

// CommentService handles comment business logic
type CommentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// CreateCommentInput carries everything needed to attach a comment to a post.
type CreateCommentInput struct {
	ID        string
	PostID    string
	UserName  string
	Text      string
	CreatedAt string
}

// ListComments returns the comments for a post, newest first.
func (s *CommentService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	if postID == "" {
		return nil, models.NewValidationError("postId is required")
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// CreateComment validates and stores a comment, bumping the post's counter.
func (s *CommentService) CreateComment(ctx context.Context, input CreateCommentInput) (*models.Comment, error) {
	if input.ID == "" {
		return nil, models.NewValidationError("id is required")
	}
	if input.PostID == "" {
		return nil, models.NewValidationError("postId is required")
	}
	if input.UserName == "" {
		return nil, models.NewValidationError("userName is required")
	}
	if input.Text == "" {
		return nil, models.NewValidationError("text is required")
	}
	// The cap counts characters, not bytes, so multi-byte text is not
	// penalized for its encoding.
	if utf8.RuneCountInString(input.Text) > maxCommentLength {
		return nil, models.NewValidationError("text exceeds maximum length")
	}
	if input.CreatedAt == "" {
		return nil, models.NewValidationError("createdAt is required")
	}

	comment := &models.Comment{
		ID:        input.ID,
		PostID:    input.PostID,
		UserName:  input.UserName,
		Text:      input.Text,
		CreatedAt: input.CreatedAt,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", input.PostID)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("comment", input.ID)
		}
		return nil, models.NewInternalError(err)
	}

	return comment, nil
}
