package controller

import (
	"net/http"

	"ddplanner_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type HealthController struct {
	DB      *gorm.DB
	LocalDB *sqlx.DB
}

func NewHealthController(db *gorm.DB, localDB *sqlx.DB) *HealthController {
	return &HealthController{DB: db, LocalDB: localDB}
}

// @Summary Health check
// @Description Reports the state of both stores
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	components := gin.H{}

	if err := c.LocalDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Local database unavailable")
		return
	}
	components["local_database"] = "up"

	// The remote mirror is advisory, so its state never fails the check.
	remote := "down"
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil && sqlDB.Ping() == nil {
			remote = "up"
		}
	}
	components["remote_database"] = remote

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}
