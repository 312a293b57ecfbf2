package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"tours/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"golang.org/x/time/rate"
)

// RouterConfig holds the settings of the echo instance built by NewRouter.
type RouterConfig struct {
	Logger   *slog.Logger
	Verifier *TokenVerifier

	// UploadDir is served under UploadURLPrefix when both are set.
	UploadDir       string
	UploadURLPrefix string

	// RateLimitRPS limits write requests per client IP. Zero disables it.
	RateLimitRPS float64
}

// NewRouter builds the echo instance serving the Tours API, the health
// check, the OpenAPI document, Swagger UI and uploaded media.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	document, err := swagger.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to render OpenAPI document: %w", err)
	}
	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, openAPIDocument(document))
	}

	validator, err := NewOpenAPIValidator(swagger, cfg.Verifier.Authenticate)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(cfg.Logger)))
	if cfg.RateLimitRPS > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Skipper: isReadOnly,
			Store:   middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimitRPS)),
		}))
	}
	e.Use(validator)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/api/v1/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, document)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.UploadDir != "" && cfg.UploadURLPrefix != "" {
		e.Static(cfg.UploadURLPrefix, cfg.UploadDir)
	}

	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(ctx.Request().Context(), level, "request", attrs...)
			return nil
		},
	}
}

func isReadOnly(ctx echo.Context) bool {
	switch ctx.Request().Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// openAPIDocument exposes the rendered document to Swagger UI.
type openAPIDocument []byte

func (d openAPIDocument) ReadDoc() string {
	return string(d)
}
