// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/shanyrak/internal/handler"
	"github.com/deppfellow/shanyrak/internal/middleware"
	"github.com/deppfellow/shanyrak/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain, the
// system routes and the API routes.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	return newRouter(middleware.NewMiddlewares(s), h)
}

func newRouter(m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: the request id must exist before the context logger
	// is built, and the New Relic transaction before tracing enrichment.
	router.Use(
		m.Global.CORS(),
		m.Global.Secure(),
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	guards := newRouteGuards(m.Auth, m.Session)
	registerAuthRoutes(router.Group("/auth/users"), h, guards)
	registerAdRoutes(router.Group("/shanyraks"), h, guards)

	return router
}
