package server

import (
	"log/slog"
	"time"

	"petshare/internal/middleware"
	"petshare/internal/models"
	"petshare/internal/observability"
	"petshare/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type createCommentRequest struct {
	ID        string `json:"id"`
	UserName  string `json:"userName"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

// HandleGetComments returns a post's comments, newest first. Like the feed,
// a storage failure degrades to an empty list.
func (s *Server) HandleGetComments(c *fiber.Ctx) error {
	comments, err := s.commentService.ListComments(c.UserContext(), c.Params("id"))
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "comment listing failed, serving empty list",
			slog.String("error", err.Error()),
			slog.String("post_id", c.Params("id")))
		observability.ReadDegradations.WithLabelValues("comments").Inc()
		return c.JSON([]models.Comment{})
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return c.JSON(comments)
}

// HandleCreateComment attaches a comment to the post named in the path.
func (s *Server) HandleCreateComment(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}

	if req.ID == "" {
		req.ID = "comment_" + uuid.NewString()
	}
	if req.CreatedAt == "" {
		req.CreatedAt = time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		ID:        req.ID,
		PostID:    c.Params("id"),
		UserName:  req.UserName,
		Text:      req.Text,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
