package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"petshare/internal/config"
	"petshare/internal/database"
	"petshare/internal/middleware"
	"petshare/internal/seed"
)

func main() {
	n := flag.Int("posts", 20, "number of posts to generate")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		middleware.Logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		middleware.Logger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := seed.Posts(context.Background(), db, *n); err != nil {
		middleware.Logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
