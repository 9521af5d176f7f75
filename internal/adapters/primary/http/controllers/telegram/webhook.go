package telegram

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/ports/service"
	"github.com/gin-gonic/gin"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

type Controller struct {
	dispatcher service.IUpdateDispatcher
	secret     string
	log        *slog.Logger
}

func New(dispatcher service.IUpdateDispatcher, secret string, log *slog.Logger) *Controller {
	return &Controller{
		dispatcher: dispatcher,
		secret:     secret,
		log:        log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/webhook", c.handleWebhook)
}

func (c *Controller) handleWebhook(ctx *gin.Context) {
	if c.secret != "" {
		token := ctx.GetHeader(secretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(token), []byte(c.secret)) != 1 {
			c.log.Warn("invalid webhook secret token",
				"client_ip", ctx.ClientIP(),
			)
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret token"})
			return
		}
	}

	var update domain.Update
	if err := ctx.ShouldBindJSON(&update); err != nil {
		c.log.Error("failed to bind webhook request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.log.Debug("received webhook update", "update_id", update.UpdateID)

	// обработка идёт в фоне, Telegram ждёт быстрый 200 OK
	c.dispatcher.Dispatch(&update)

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
