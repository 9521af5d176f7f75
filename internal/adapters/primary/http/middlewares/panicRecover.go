package middlewares

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// RecoveryLogger ловит панику хендлера; Telegram получит 500 и повторит доставку
func RecoveryLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			log.Error("http handler panicked",
				"error", fmt.Sprint(r),
				"handler", c.HandlerName(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"stack", string(debug.Stack()),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false})
		}()
		c.Next()
	}
}
