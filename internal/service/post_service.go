// Package service holds the business rules sitting between the HTTP handlers
// and the repositories.
package service

import (
	"context"
	"errors"

	"petshare/internal/models"
	"petshare/internal/repository"

	"gorm.io/gorm"
)

// PostService handles post business logic
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new post service
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePostInput carries everything needed to create a post. The id,
// createdAt and timestamp fields arrive precomputed by the caller and are
// stored verbatim.
type CreatePostInput struct {
	ID        string
	PetName   string
	PetImage  string
	OwnerName string
	Caption   string
	Hashtags  string
	CreatedAt string
	Timestamp string
}

// ToggleLikeInput names a post and the direction of the like transition.
type ToggleLikeInput struct {
	PostID string
	Liked  bool
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns a single post by id.
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// CreatePost validates the input and stores a new post. Counters start at
// zero regardless of what the caller supplies.
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	if input.ID == "" {
		return nil, models.NewValidationError("id is required")
	}
	if input.PetName == "" {
		return nil, models.NewValidationError("petName is required")
	}
	if input.PetImage == "" {
		return nil, models.NewValidationError("petImage is required")
	}
	if input.OwnerName == "" {
		return nil, models.NewValidationError("ownerName is required")
	}
	if input.CreatedAt == "" {
		return nil, models.NewValidationError("createdAt is required")
	}
	if input.Timestamp == "" {
		return nil, models.NewValidationError("timestamp is required")
	}

	post := &models.Post{
		ID:        input.ID,
		PetName:   input.PetName,
		PetImage:  input.PetImage,
		OwnerName: input.OwnerName,
		Caption:   input.Caption,
		Hashtags:  input.Hashtags,
		Likes:     0,
		Comments:  0,
		IsLiked:   false,
		CreatedAt: input.CreatedAt,
		Timestamp: input.Timestamp,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("post", input.ID)
		}
		return nil, models.NewInternalError(err)
	}

	return post, nil
}

// ToggleLike applies a like transition and returns the new like count.
func (s *PostService) ToggleLike(ctx context.Context, input ToggleLikeInput) (int, error) {
	if input.PostID == "" {
		return 0, models.NewValidationError("postId is required")
	}

	likes, err := s.postRepo.ToggleLike(ctx, input.PostID, input.Liked)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.NewNotFoundError("post", input.PostID)
		}
		return 0, models.NewInternalError(err)
	}
	return likes, nil
}

// DeletePost removes a post and everything hanging off it.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if id == "" {
		return models.NewValidationError("id is required")
	}
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
