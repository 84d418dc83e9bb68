package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/in/http/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig lists what the HTTP entry point serves besides the REST API.
type RouterConfig struct {
	Server   *Server
	Sessions *SessionIssuer

	// Screens upgrades /api/v1/ws to the change stream.
	Screens http.Handler

	// Health reports whether the store is reachable.
	Health func(ctx context.Context) error

	Logger *slog.Logger
}

// swaggerDoc serves the OpenAPI document to swag, and through it to the swagger UI.
type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

var registerDoc sync.Once

func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	if cfg.Server == nil || cfg.Sessions == nil {
		return nil, errors.New("server and session issuer are required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	registerDoc.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: string(docJSON)})
	})

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = cfg.Server.HandleError

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(SessionMiddleware(cfg.Sessions))

	e.GET("/health", func(c echo.Context) error {
		if cfg.Health != nil {
			if err := cfg.Health(c.Request().Context()); err != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if cfg.Screens != nil {
		e.GET("/api/v1/ws", echo.WrapHandler(cfg.Screens))
	}

	servers.RegisterHandlers(e, cfg.Server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "Request", attrs...)
			return nil
		},
	})
}
