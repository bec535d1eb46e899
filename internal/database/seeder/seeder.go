package seeder

import (
	"context"

	"github.com/Dweirii/Learnify-Landing-Page/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
