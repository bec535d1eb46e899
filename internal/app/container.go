package app

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Dweirii/Learnify-Landing-Page/internal/config"
	"github.com/Dweirii/Learnify-Landing-Page/internal/database"
	dbpostgres "github.com/Dweirii/Learnify-Landing-Page/internal/database/postgres"
	"github.com/Dweirii/Learnify-Landing-Page/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmsgprefix)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
