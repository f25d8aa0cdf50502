package server

import (
	"log/slog"
	"time"

	"petshare/internal/middleware"
	"petshare/internal/models"
	"petshare/internal/observability"
	"petshare/internal/service"
	"petshare/internal/timeago"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// createPostRequest is the JSON body accepted when creating a post. The id,
// createdAt and timestamp fields are optional; the server fills them in when
// the client leaves them out.
type createPostRequest struct {
	ID        string `json:"id"`
	PetName   string `json:"petName"`
	PetImage  string `json:"petImage"`
	OwnerName string `json:"ownerName"`
	Caption   string `json:"caption"`
	Hashtags  string `json:"hashtags"`
	CreatedAt string `json:"createdAt"`
	Timestamp string `json:"timestamp"`
}

type toggleLikeRequest struct {
	Liked *bool `json:"liked"`
}

// HandleGetPosts returns every post, newest first. A storage failure degrades
// to an empty feed rather than an error page: the repository reports the
// failure, it is logged and counted here, and the client sees an empty list.
func (s *Server) HandleGetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "post listing failed, serving empty feed",
			slog.String("error", err.Error()))
		observability.ReadDegradations.WithLabelValues("posts").Inc()
		return c.JSON([]models.Post{})
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return c.JSON(posts)
}

// HandleGetPost returns a single post by id.
func (s *Server) HandleGetPost(c *fiber.Ctx) error {
	post, err := s.postService.GetPost(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// HandleCreatePost creates a post. Missing identity and time fields are
// derived server-side: a fresh "post_"-prefixed id, the current UTC time, and
// the display label computed from it.
func (s *Server) HandleCreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}

	now := time.Now().UTC()
	if req.ID == "" {
		req.ID = "post_" + uuid.NewString()
	}
	if req.CreatedAt == "" {
		req.CreatedAt = now.Format("2006-01-02T15:04:05.000Z")
	}
	if req.Timestamp == "" {
		req.Timestamp = timeago.Label(now, now)
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		ID:        req.ID,
		PetName:   req.PetName,
		PetImage:  req.PetImage,
		OwnerName: req.OwnerName,
		Caption:   req.Caption,
		Hashtags:  req.Hashtags,
		CreatedAt: req.CreatedAt,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleToggleLike applies a like transition and returns the new count.
func (s *Server) HandleToggleLike(c *fiber.Ctx) error {
	var req toggleLikeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}
	if req.Liked == nil {
		return respondError(c, models.NewValidationError("liked is required"))
	}

	likes, err := s.postService.ToggleLike(c.UserContext(), service.ToggleLikeInput{
		PostID: c.Params("id"),
		Liked:  *req.Liked,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"likes": likes})
}

// HandleDeletePost removes a post and its comments and likes.
func (s *Server) HandleDeletePost(c *fiber.Ctx) error {
	if err := s.postService.DeletePost(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
