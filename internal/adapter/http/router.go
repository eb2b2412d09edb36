package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"lis-dashboard/internal/adapter/middleware"
	"lis-dashboard/internal/backend"
	"lis-dashboard/pkg/id"
)

type RouterConfig struct {
	CORSOrigins []string
	Checks      map[string]Check
	Logger      zerolog.Logger
}

// NewRouter wires the health check and the /api/v1 surface.
func NewRouter(api backend.Handler, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(
		echomw.Recover(),
		echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: id.NewRequestID}),
		middleware.RequestLogger(cfg.Logger),
		echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: origins}),
	)

	h := NewHandler(cfg.Checks)
	e.GET("/health", h.Health)

	a := NewAPIHandler(api, cfg.Logger)
	e.Any(APIPrefix+"/*", a.Dispatch)
	return e
}
