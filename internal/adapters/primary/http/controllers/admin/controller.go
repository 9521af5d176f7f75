package admin

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/admin/tg-bots/resume-bot/internal/domain"
	"github.com/admin/tg-bots/resume-bot/internal/ports/repository"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Controller операторские ручки поверх журнала анализов
type Controller struct {
	analyses repository.IAnalysisRepo
	token    string
	log      *slog.Logger
}

func New(analyses repository.IAnalysisRepo, token string, log *slog.Logger) *Controller {
	return &Controller{
		analyses: analyses,
		token:    token,
		log:      log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	admin := router.Group("/admin", c.authorize)
	{
		admin.GET("/analyses/:user_id", c.listAnalyses)
	}
}

// ListAnalysesResponse ответ со списком прогонов пользователя
type ListAnalysesResponse struct {
	UserID   int64                    `json:"user_id"`
	Count    int                      `json:"count"`
	Analyses []*domain.AnalysisRecord `json:"analyses"`
}

// authorize пускает только с Authorization: Bearer <ADMIN_TOKEN>
func (c *Controller) authorize(ctx *gin.Context) {
	token := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
	if c.token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(c.token)) != 1 {
		c.log.Warn("unauthorized admin request",
			"path", ctx.Request.URL.Path,
			"client_ip", ctx.ClientIP(),
		)
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	ctx.Next()
}

// listAnalyses последние прогоны пользователя, ?limit= до maxLimit
func (c *Controller) listAnalyses(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}

	limit := defaultLimit
	if raw := ctx.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	records, err := c.analyses.ListByUser(ctx.Request.Context(), userID, limit)
	if err != nil {
		c.log.Error("failed to list analyses", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list analyses"})
		return
	}
	if records == nil {
		records = []*domain.AnalysisRecord{}
	}

	ctx.JSON(http.StatusOK, ListAnalysesResponse{
		UserID:   userID,
		Count:    len(records),
		Analyses: records,
	})
}
