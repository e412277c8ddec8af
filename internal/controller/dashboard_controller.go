package controller

import (
	"ddplanner_backend/internal/service"
	"ddplanner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	PlanService *service.PlanService
}

func NewDashboardController(planService *service.PlanService) *DashboardController {
	return &DashboardController{PlanService: planService}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Aggregates plan counts, studied hours and average progress
// @Tags dashboard
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.PlanStats}
// @Router /api/dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.PlanService.Stats(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// Activity godoc
// @Summary Recent activity feed
// @Description Returns the newest plan actions of the user
// @Tags dashboard
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.ActivityLogEntry}
// @Router /api/dashboard/activity [get]
func (c *DashboardController) Activity(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	entries, err := c.PlanService.RecentActivity(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
