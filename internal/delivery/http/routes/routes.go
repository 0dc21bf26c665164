package routes

import (
	"linktern/internal/delivery/http/handler"
	"linktern/internal/delivery/http/middleware"
	"linktern/internal/domain/account"
	"linktern/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Profile      *handler.ProfileHandler
	Internships  *handler.InternshipHandler
	Applications *handler.ApplicationHandler
	WS           *ws.Handler

	AuthMw *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))

	app.Get("/ws/applications", r.WS.HandleApplicationsWS)
}

func (r *Registry) registerV1(v1 fiber.Router) {
	r.Auth.RegisterRoutes(v1.Group("/auth"), r.AuthMw)
	r.Profile.RegisterRoutes(v1.Group("", r.AuthMw.Middleware()))

	pub := v1.Group("/internships")
	student := v1.Group("/internships", r.AuthMw.Middleware(), r.AuthMw.RequireRole(account.RoleStudent))

	// "/saved" must register before "/:id" or the param route shadows it.
	pub.Get("/", r.Internships.List)
	student.Get("/saved", r.Internships.ListSaved)
	pub.Get("/:id", r.Internships.Get)
	student.Post("/:id/save", r.Internships.ToggleSave)
	student.Post("/:id/apply", r.Applications.Apply)

	apps := v1.Group("/applications", r.AuthMw.Middleware(), r.AuthMw.RequireRole(account.RoleStudent))
	apps.Get("/mine", r.Applications.ListMine)
}
