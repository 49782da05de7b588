package router

import (
	"github.com/gofiber/fiber/v2"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dtroode/mycard-server/internal/api/http/handler"
	"github.com/dtroode/mycard-server/internal/api/http/middleware"
	"github.com/dtroode/mycard-server/internal/config"
	"github.com/dtroode/mycard-server/internal/logger"
	"github.com/dtroode/mycard-server/internal/model"
)

const bodyLimit = 8 << 20

// Router builds the public HTTP API.
type Router struct {
	cardService    handler.CardService
	profileService handler.ProfileService
	authService    handler.AuthService
	contextManager model.ContextManager
	cfg            config.HTTP
	logger         *logger.Logger
}

// New creates a new HTTP Router instance.
func New(
	cardService handler.CardService,
	profileService handler.ProfileService,
	authService handler.AuthService,
	contextManager model.ContextManager,
	cfg config.HTTP,
	logger *logger.Logger,
) *Router {
	return &Router{
		cardService:    cardService,
		profileService: profileService,
		authService:    authService,
		contextManager: contextManager,
		cfg:            cfg,
		logger:         logger,
	}
}

// Register creates the fiber app with recovery, request logging and session middleware,
// and mounts every route on it.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             bodyLimit,
	})

	app.Use(recoverMiddleware.New())
	app.Use(middleware.NewLogging(r.logger).Handle)
	app.Use(middleware.NewAuthenticate(r.contextManager, r.cfg.SessionCookie).Handle)

	r.registerAuthRoutes(app)
	r.registerCardRoutes(app)
	r.registerProfileRoutes(app)

	return app
}

func (r *Router) registerAuthRoutes(app *fiber.App) {
	h := handler.NewAuth(r.authService, r.cfg.SessionCookie, r.cfg.SecureCookie, r.logger)
	group := app.Group("/auth")
	group.Post("/login", h.Login)
	group.Post("/logout", h.Logout)
}

func (r *Router) registerCardRoutes(app *fiber.App) {
	h := handler.NewCard(r.cardService, r.logger)
	app.Get("/cards", h.Get)
	app.Post("/cards", h.Create)
}

func (r *Router) registerProfileRoutes(app *fiber.App) {
	h := handler.NewProfile(r.profileService, r.cfg.RedirectPath, r.logger)
	group := app.Group("/profiles")
	group.Get("/me", h.Me)
	group.Get("/:id", h.Get)
	group.Post("/save", h.Save)
	group.Post("/save/redirect", h.SaveAndRedirect)
}
