package controller

import (
	syncpkg "ddplanner_backend/internal/sync"
	"ddplanner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SyncController struct {
	Reconciler *syncpkg.Reconciler
}

func NewSyncController(reconciler *syncpkg.Reconciler) *SyncController {
	return &SyncController{Reconciler: reconciler}
}

// Trigger godoc
// @Summary Push local plans to the remote mirror
// @Tags sync
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.SyncStatus}
// @Router /api/sync [post]
func (c *SyncController) Trigger(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Reconciler.SyncUser(claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, c.Reconciler.Status())
}

// Status godoc
// @Summary Reconciler status
// @Description Reports remote availability and pending mirror writes
// @Tags sync
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.SyncStatus}
// @Router /api/sync/status [get]
func (c *SyncController) Status(ctx *gin.Context) {
	util.Success(ctx, c.Reconciler.Status())
}
