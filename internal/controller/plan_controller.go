package controller

import (
	"errors"

	"ddplanner_backend/internal/model"
	"ddplanner_backend/internal/service"
	"ddplanner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	PlanService *service.PlanService
}

func NewPlanController(planService *service.PlanService) *PlanController {
	return &PlanController{PlanService: planService}
}

// Create godoc
// @Summary Generate a study plan
// @Description Builds a day-by-day schedule from the intake form and stores it
// @Tags plans
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body model.StudyPlanRequest true "intake form"
// @Success 201 {object} util.Response{data=model.StoredStudyPlan}
// @Failure 400 {object} util.Response
// @Router /api/plans [post]
func (c *PlanController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req model.StudyPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.PlanService.Create(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrUnknownExam) ||
			errors.Is(err, util.ErrInvalidHours) ||
			errors.Is(err, util.ErrInvalidPeriod) ||
			errors.Is(err, util.ErrInvalidPlatform) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, plan)
}

// List godoc
// @Summary List study plans
// @Description Returns the user's plans; with sync=true the remote mirror is consulted first
// @Tags plans
// @Produce  json
// @Security BearerAuth
// @Param   sync query bool false "read through the remote mirror"
// @Success 200 {object} util.Response{data=[]model.StoredStudyPlan}
// @Router /api/plans [get]
func (c *PlanController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var (
		plans []model.StoredStudyPlan
		err   error
	)
	if ctx.Query("sync") == "true" {
		plans, err = c.PlanService.ListWithSync(claims.UserID)
	} else {
		plans, err = c.PlanService.List(claims.UserID)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, plans)
}

// Get godoc
// @Summary Fetch a single plan
// @Tags plans
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "plan id"
// @Param   sync query bool false "reconcile with the remote mirror first"
// @Success 200 {object} util.Response{data=model.StoredStudyPlan}
// @Failure 404 {object} util.Response
// @Router /api/plans/{id} [get]
func (c *PlanController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var (
		plan *model.StoredStudyPlan
		err  error
	)
	if ctx.Query("sync") == "true" {
		plan, err = c.PlanService.GetWithSync(claims.UserID, ctx.Param("id"))
	} else {
		plan, err = c.PlanService.Get(claims.UserID, ctx.Param("id"))
	}
	if err != nil {
		if errors.Is(err, util.ErrPlanNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, plan)
}

// UpdateTasksRequest toggles one task or replaces the completion set.
type UpdateTasksRequest struct {
	TaskKey        string   `json:"taskKey"`
	CompletedTasks []string `json:"completedTasks"`
}

// UpdateTasks godoc
// @Summary Update task completion
// @Description Toggles a "<day>-<slot>" key, or replaces the full completed set when completedTasks is sent
// @Tags plans
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "plan id"
// @Param   body body UpdateTasksRequest true "task update"
// @Success 200 {object} util.Response{data=model.StoredStudyPlan}
// @Failure 404 {object} util.Response
// @Router /api/plans/{id}/tasks [put]
func (c *PlanController) UpdateTasks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateTasksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var (
		plan *model.StoredStudyPlan
		err  error
	)
	switch {
	case req.TaskKey != "":
		plan, err = c.PlanService.ToggleTask(claims.UserID, ctx.Param("id"), req.TaskKey)
	case req.CompletedTasks != nil:
		plan, err = c.PlanService.ReplaceTasks(claims.UserID, ctx.Param("id"), req.CompletedTasks)
	default:
		util.BadRequest(ctx, "taskKey ou completedTasks é obrigatório")
		return
	}
	if err != nil {
		if errors.Is(err, util.ErrPlanNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, plan)
}

// Delete godoc
// @Summary Delete a plan
// @Tags plans
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "plan id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/plans/{id} [delete]
func (c *PlanController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.PlanService.Delete(claims.UserID, ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrPlanNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
