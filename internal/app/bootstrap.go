package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Dweirii/Learnify-Landing-Page/internal/config"
	"github.com/Dweirii/Learnify-Landing-Page/internal/database/migration"
	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/middleware"
	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())

	routes.Register(f, c.Config, c.DB, c.Cache, c.Logger)

	return &App{Fiber: f}
}

// Bootstrap builds the container, applies pending migrations, and returns the
// ready HTTP app with a cleanup closing the shared resources.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, c.DB.SQLDB()); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	return New(c), c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
