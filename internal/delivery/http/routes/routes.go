package routes

import (
	"log"

	"github.com/Dweirii/Learnify-Landing-Page/internal/config"
	"github.com/Dweirii/Learnify-Landing-Page/internal/database"
	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/handler"
	"github.com/Dweirii/Learnify-Landing-Page/internal/delivery/http/middleware"
	"github.com/Dweirii/Learnify-Landing-Page/internal/pkg/jwt"
	"github.com/Dweirii/Learnify-Landing-Page/internal/repository"
	"github.com/Dweirii/Learnify-Landing-Page/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires the full dependency graph: repositories over the shared DB
// handle, usecases over repositories, handlers over usecases. Admin routes
// sit behind the JWT guard; everything the marketing site calls is public.
func Register(app *fiber.App, cfg config.Config, db database.DB, statsCache usecase.StatsCache, logger *log.Logger) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(db).RegisterRoutes(app)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	jobRepo := repository.NewPostgresJobRepository(db)
	appRepo := repository.NewPostgresApplicationRepository(db)
	contactRepo := repository.NewPostgresContactRepository(db)
	newsRepo := repository.NewPostgresNewsletterRepository(db)

	jobUC := usecase.NewJobUsecase(jobRepo, logger)
	appUC := usecase.NewApplicationUsecase(appRepo, jobRepo, statsCache, logger)
	contactUC := usecase.NewContactUsecase(contactRepo, logger)
	newsUC := usecase.NewNewsletterUsecase(newsRepo, logger)
	authUC := usecase.NewAuthUsecase(cfg.Admin, jwtSvc)

	jobsHandler := handler.NewJobsHandler(jobUC)
	appsHandler := handler.NewApplicationsHandler(appUC)
	contactHandler := handler.NewContactHandler(contactUC)
	newsHandler := handler.NewNewsletterHandler(newsUC)
	authHandler := handler.NewAuthHandler(authUC)

	api := app.Group("/api")

	jobsHandler.RegisterPublicRoutes(api)
	appsHandler.RegisterPublicRoutes(api)
	contactHandler.RegisterPublicRoutes(api)
	newsHandler.RegisterPublicRoutes(api)
	authHandler.RegisterRoutes(api)

	admin := api.Group("", authMw.Middleware())

	jobsHandler.RegisterAdminRoutes(admin)
	appsHandler.RegisterAdminRoutes(admin)
	contactHandler.RegisterAdminRoutes(admin)
}
