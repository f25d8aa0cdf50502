// Package repository implements data access over the embedded database.
//
// Repositories report failures to their callers; the decision to degrade a
// failed read into an empty result belongs to the API boundary, not here.
package repository

import (
	"context"
	"fmt"

	"petshare/internal/models"
	"petshare/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	ToggleLike(ctx context.Context, postID string, liked bool) (int, error)
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// List returns every post, newest first. The stored isLiked column is
// ignored; the flag is derived from the likes table on every read so it
// survives whatever value happened to be written at insert time.
func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	ctx, span := observability.StartRepositorySpan(ctx, "post.List", "posts")
	defer span.End()
	defer observability.TrackQuery("list", "posts")()

	var posts []models.Post
	if err := r.db.WithContext(ctx).Order("createdAt DESC").Find(&posts).Error; err != nil {
		observability.RecordErrorInContext(ctx, err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	if err := r.applyLikeFlags(ctx, posts); err != nil {
		observability.RecordErrorInContext(ctx, err)
		return nil, err
	}

	return posts, nil
}

// GetByID returns a single post with its like flag derived from the likes table.
func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	ctx, span := observability.StartRepositorySpan(ctx, "post.GetByID", "posts")
	defer span.End()
	defer observability.TrackQuery("get", "posts")()

	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		observability.RecordErrorInContext(ctx, err)
		return nil, err
	}

	single := []models.Post{post}
	if err := r.applyLikeFlags(ctx, single); err != nil {
		observability.RecordErrorInContext(ctx, err)
		return nil, err
	}

	return &single[0], nil
}

// Create inserts a new post. A duplicate id surfaces as gorm.ErrDuplicatedKey.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	ctx, span := observability.StartRepositorySpan(ctx, "post.Create", "posts")
	defer span.End()
	defer observability.TrackQuery("create", "posts")()

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		observability.RecordErrorInContext(ctx, err)
		return err
	}
	return nil
}

// ToggleLike applies one like transition for a post and returns the resulting
// like count. The counter is adjusted by exactly one in the requested
// direction and the like flag row is upserted to match; both writes happen in
// a single transaction so the counter and the flag cannot drift apart on a
// partial failure.
func (r *postRepository) ToggleLike(ctx context.Context, postID string, liked bool) (int, error) {
	ctx, span := observability.StartRepositorySpan(ctx, "post.ToggleLike", "posts")
	defer span.End()
	defer observability.TrackQuery("toggle_like", "posts")()

	delta := 1
	direction := "increment"
	if !liked {
		delta = -1
		direction = "decrement"
	}

	var likes int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).
			Where("id = ?", postID).
			Update("likes", gorm.Expr("likes + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		flag := models.LikeFlag{
			ID:     "like_" + postID,
			PostID: postID,
			Liked:  liked,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "postId"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"liked": liked}),
		}).Create(&flag).Error; err != nil {
			return err
		}

		var post models.Post
		if err := tx.Select("likes").First(&post, "id = ?", postID).Error; err != nil {
			return err
		}
		likes = post.Likes
		return nil
	})
	if err != nil {
		observability.RecordErrorInContext(ctx, err)
		return 0, err
	}

	observability.CounterUpdates.WithLabelValues("likes", direction).Inc()
	return likes, nil
}

// Delete removes a post along with its comments and like flags in one
// transaction. Deleting an absent post is a no-op.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	ctx, span := observability.StartRepositorySpan(ctx, "post.Delete", "posts")
	defer span.End()
	defer observability.TrackQuery("delete", "posts")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("postId = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("postId = ?", id).Delete(&models.LikeFlag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, "id = ?", id).Error
	})
	if err != nil {
		observability.RecordErrorInContext(ctx, err)
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// applyLikeFlags overwrites IsLiked on each post from the likes table.
func (r *postRepository) applyLikeFlags(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	var flags []models.LikeFlag
	if err := r.db.WithContext(ctx).Where("postId IN ?", ids).Find(&flags).Error; err != nil {
		return fmt.Errorf("failed to load like flags: %w", err)
	}

	likedByPost := make(map[string]bool, len(flags))
	for _, f := range flags {
		likedByPost[f.PostID] = f.Liked
	}

	for i := range posts {
		posts[i].IsLiked = likedByPost[posts[i].ID]
	}
	return nil
}
