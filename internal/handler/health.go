package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler reports service and database liveness.
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health with a lightweight connectivity query.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := gin.H{
		"status": "ok",
		"db":     gin.H{"status": "up"},
	}
	if err := h.db.WithContext(c.Request.Context()).Exec("SELECT 1").Error; err != nil {
		resp["status"] = "fail"
		resp["db"] = gin.H{"status": "down", "error": err.Error()}
	}
	c.JSON(http.StatusOK, resp)
}
