package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"schoolhub/internal/shared/logger"
)

// HealthHandler reports service liveness and database reachability
type HealthHandler struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, log logger.Interface) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: log,
	}
}

// HealthCheck handles GET /health
// @Summary Health check
// @Description Report service liveness and database reachability
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := gin.H{
		"status":  "healthy",
		"service": "schoolhub",
	}

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			h.logger.Errorw("database health check failed", "error", err)
			status["status"] = "unhealthy"
			status["database"] = "unreachable"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "ok"
	}

	c.JSON(http.StatusOK, status)
}
