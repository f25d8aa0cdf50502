package server

import (
	"github.com/gofiber/fiber/v2"
)

// HandleLiveness reports that the process is up.
func (s *Server) HandleLiveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleReadiness reports whether the database is reachable.
func (s *Server) HandleReadiness(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"reason": "database handle unavailable",
		})
	}
	if err := sqlDB.PingContext(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"reason": "database ping failed",
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
