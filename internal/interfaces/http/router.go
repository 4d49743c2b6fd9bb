package http

import (
	nethttp "net/http"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/area-freight/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Publisher FreightPublisher
	Query     FreightQuery
	JWTSecret string
	Metrics   nethttp.Handler // nil = sin /metrics
	// SwaggerFile ruta al swagger.json generado por swag; vacío = sin /docs
	SwaggerFile string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.SwaggerFile != "" {
		// Swagger UI en local: http://localhost:<port>/docs
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: deps.SwaggerFile,
			Path:     "docs",
			Title:    "Area Freight API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	freights := protected.Group("/area-freights")
	h := NewAreaFreightHandler(deps.Publisher, deps.Query)
	freights.Post("/publish", RequireRole(jwt.RoleAdmin, jwt.RolePricing), h.Publish)
	freights.Get("/versions/latest", h.LatestVersion)
	freights.Get("/versions/:version", h.ListByVersion)
}
