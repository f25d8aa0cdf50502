// Package seed fills the database with generated posts for local development.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"petshare/internal/middleware"
	"petshare/internal/models"
	"petshare/internal/repository"
	"petshare/internal/timeago"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var captionTemplates = []string{
	"Sunday snoozing with %s",
	"%s found the sunny spot again",
	"Walkies with %s!",
	"%s demands treats",
	"Caught %s mid-zoomies",
}

var hashtagPool = []string{
	"#dogsofpetshare", "#catsofpetshare", "#zoomies", "#treats",
	"#naptime", "#goodboy", "#floof", "#adoptdontshop",
}

// Posts inserts n generated posts, each with a few comments and a chance of
// being liked. All writes go through the repositories so the denormalized
// counters stay consistent with the comment and like rows.
func Posts(ctx context.Context, db *gorm.DB, n int) error {
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	now := time.Now().UTC()

	for i := 0; i < n; i++ {
		petName := gofakeit.PetName()
		createdAt := now.Add(-time.Duration(gofakeit.Number(0, 72)) * time.Hour)

		post := &models.Post{
			ID:        "post_" + uuid.NewString(),
			PetName:   petName,
			PetImage:  fmt.Sprintf("https://placedog.net/500/500?id=%d", gofakeit.Number(1, 200)),
			OwnerName: gofakeit.Name(),
			Caption:   fmt.Sprintf(gofakeit.RandomString(captionTemplates), petName),
			Hashtags:  gofakeit.RandomString(hashtagPool) + " " + gofakeit.RandomString(hashtagPool),
			CreatedAt: createdAt.Format("2006-01-02T15:04:05.000Z"),
			Timestamp: timeago.Label(createdAt, now),
		}

		if err := postRepo.Create(ctx, post); err != nil {
			return fmt.Errorf("failed to seed post %d: %w", i, err)
		}

		for j := 0; j < gofakeit.Number(0, 4); j++ {
			commentedAt := createdAt.Add(time.Duration(j+1) * time.Minute)
			comment := &models.Comment{
				ID:        "comment_" + uuid.NewString(),
				PostID:    post.ID,
				UserName:  gofakeit.Username(),
				Text:      gofakeit.Sentence(gofakeit.Number(3, 10)),
				CreatedAt: commentedAt.Format("2006-01-02T15:04:05.000Z"),
			}
			if err := commentRepo.Create(ctx, comment); err != nil {
				return fmt.Errorf("failed to seed comment on post %d: %w", i, err)
			}
		}

		if gofakeit.Bool() {
			if _, err := postRepo.ToggleLike(ctx, post.ID, true); err != nil {
				return fmt.Errorf("failed to seed like on post %d: %w", i, err)
			}
		}
	}

	middleware.Logger.Info("seeding complete", slog.Int("posts", n))
	return nil
}
