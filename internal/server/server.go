// Package server wires the HTTP API that fronts the persistence service.
package server

import (
	"petshare/internal/config"
	"petshare/internal/middleware"
	"petshare/internal/repository"
	"petshare/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds the dependencies shared by all HTTP handlers.
type Server struct {
	config *config.Config
	db     *gorm.DB
	prom   *fiberprometheus.FiberPrometheus

	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository

	postService    *service.PostService
	commentService *service.CommentService
}

// NewServer builds a Server from an initialized database connection.
func NewServer(cfg *config.Config, db *gorm.DB) *Server {
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	return &Server{
		config:         cfg,
		db:             db,
		prom:           fiberprometheus.New("petshare"),
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		postService:    service.NewPostService(postRepo),
		commentService: service.NewCommentService(commentRepo),
	}
}

// SetupMiddleware registers the global middleware stack. Order matters:
// recovery first, then request identity, then everything that logs or traces.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())
	app.Use(s.prom.Middleware)
	app.Use(helmet.New())
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.StructuredLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
}

// SetupRoutes registers all API routes.
func (s *Server) SetupRoutes(app *fiber.App) {
	s.prom.RegisterAt(app, "/metrics")

	app.Get("/health/live", s.HandleLiveness)
	app.Get("/health/ready", s.HandleReadiness)

	api := app.Group("/api")

	posts := api.Group("/posts")
	posts.Get("/", s.HandleGetPosts)
	posts.Post("/", s.HandleCreatePost)
	posts.Get("/:id", s.HandleGetPost)
	posts.Post("/:id/like", s.HandleToggleLike)
	posts.Delete("/:id", s.HandleDeletePost)
	posts.Get("/:id/comments", s.HandleGetComments)
	posts.Post("/:id/comments", s.HandleCreateComment)
}
