package healthcheckController

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const readyTimeout = 2 * time.Second

// Pinger зависимость, без которой сервис не готов (БД)
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCheckController struct {
	service string
	db      Pinger // nil - Postgres не настроен
	log     *slog.Logger
}

func New(service string, db Pinger, log *slog.Logger) *HealthCheckController {
	return &HealthCheckController{
		service: service,
		db:      db,
		log:     log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
	r.GET("/ready", c.ready)
}

// health базовая проверка (всегда возвращает 200)
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": c.service,
	})
}

// ready проверка готовности (проверяет подключение к БД, если она есть)
func (c *HealthCheckController) ready(ctx *gin.Context) {
	if c.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), readyTimeout)
		defer cancel()

		if err := c.db.Ping(pingCtx); err != nil {
			c.log.Error("database not ready", "error", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  "database unavailable",
			})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}
