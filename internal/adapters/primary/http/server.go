package server

import (
	"net"
	"net/http"
	"time"

	"log/slog"

	"github.com/admin/tg-bots/resume-bot/internal/adapters/primary/http/middlewares"
	"github.com/gin-gonic/gin"
)

type Config struct {
	Host                    string        `envconfig:"HOST"`
	Port                    string        `envconfig:"PORT" default:"8080"`
	WriteTimeout            time.Duration `envconfig:"WRITE_TIMEOUT" default:"60s"`
	ReadTimeout             time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	ReadHeaderTimeout       time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"3s"`
	IdleTimeout             time.Duration `envconfig:"IDLE_TIMEOUT" default:"15s"`
	EnableLoggingMiddleware bool          `envconfig:"ENABLE_LOGGING_MIDDLEWARE" default:"false"`
	AdminToken              string        `envconfig:"ADMIN_TOKEN"` // пусто - /admin не регистрируется
}

type Controller interface {
	RegisterRoutes(router *gin.Engine)
}

// NewRouter gin с middleware и маршрутами контроллеров
func NewRouter(cfg *Config, logger *slog.Logger, controllers ...Controller) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middlewares.RecoveryLogger(logger))
	if cfg.EnableLoggingMiddleware {
		router.Use(middlewares.RequestLogger(logger))
	}

	// Регистрируем маршруты всех контроллеров
	for _, controller := range controllers {
		controller.RegisterRoutes(router)
	}

	return router
}

func NewHTTPServer(
	cfg *Config,
	logger *slog.Logger,
	controllers ...Controller,
) *http.Server {
	server := &http.Server{
		Handler:           NewRouter(cfg, logger, controllers...),
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	return server
}
