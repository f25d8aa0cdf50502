package service

import (
	"context"

	"petshare/internal/models"
)

type stubPostRepo struct {
	listFunc       func(ctx context.Context) ([]models.Post, error)
	getByIDFunc    func(ctx context.Context, id string) (*models.Post, error)
	createFunc     func(ctx context.Context, post *models.Post) error
	toggleLikeFunc func(ctx context.Context, postID string, liked bool) (int, error)
	deleteFunc     func(ctx context.Context, id string) error
}

func (s *stubPostRepo) List(ctx context.Context) ([]models.Post, error) {
	return s.listFunc(ctx)
}

func (s *stubPostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.getByIDFunc(ctx, id)
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.createFunc(ctx, post)
}

func (s *stubPostRepo) ToggleLike(ctx context.Context, postID string, liked bool) (int, error) {
	return s.toggleLikeFunc(ctx, postID, liked)
}

func (s *stubPostRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFunc(ctx, id)
}

type stubCommentRepo struct {
	createFunc     func(ctx context.Context, comment *models.Comment) error
	listByPostFunc func(ctx context.Context, postID string) ([]models.Comment, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFunc(ctx, comment)
}

func (s *stubCommentRepo) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.listByPostFunc(ctx, postID)
}
