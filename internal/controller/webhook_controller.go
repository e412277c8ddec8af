package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"ddplanner_backend/internal/model"
	"ddplanner_backend/internal/service"
	"ddplanner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WebhookController struct {
	WebhookService *service.WebhookService
	IsRelease      bool
}

func NewWebhookController(webhookService *service.WebhookService, isRelease bool) *WebhookController {
	return &WebhookController{WebhookService: webhookService, IsRelease: isRelease}
}

// Handle godoc
// @Summary Receive a Hotmart event
// @Description Processes purchase and subscription lifecycle events
// @Tags webhook
// @Accept  json
// @Produce  json
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/webhook [post]
func (c *WebhookController) Handle(ctx *gin.Context) {
	raw, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		util.BadRequest(ctx, util.ErrInvalidWebhook.Error())
		return
	}

	webhook, err := service.DecodeWebhook(raw)
	if err != nil {
		util.BadRequest(ctx, util.ErrInvalidWebhook.Error())
		return
	}

	if err := c.WebhookService.Process(webhook, raw); err != nil {
		if errors.Is(err, util.ErrInvalidWebhook) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"received": true})
}

// Reject godoc
// @Summary Webhook endpoint probe
// @Description The webhook only accepts POST
// @Tags webhook
// @Produce  json
// @Failure 405 {object} util.Response
// @Router /api/webhook [get]
func (c *WebhookController) Reject(ctx *gin.Context) {
	util.MethodNotAllowed(ctx, "Método não permitido. Use POST.")
}

// Test injects a synthetic approved purchase through the regular
// processing path. Disabled in release mode.
func (c *WebhookController) Test(ctx *gin.Context) {
	if c.IsRelease {
		util.NotFound(ctx)
		return
	}

	webhook := SyntheticPurchase(time.Now())
	raw, err := json.Marshal(webhook)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if err := c.WebhookService.Process(webhook, raw); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"received": true, "testData": webhook})
}

// SyntheticPurchase builds the approved-purchase payload the test
// endpoint replays. The transaction carries a TEST_ prefix so it is easy
// to spot in the webhook logs.
func SyntheticPurchase(now time.Time) *model.HotmartWebhook {
	webhook := &model.HotmartWebhook{Event: "PURCHASE_APPROVED"}
	webhook.Data.Buyer = model.HotmartBuyer{
		Email: "teste@exemplo.com",
		Name:  "Usuário Teste",
	}
	webhook.Data.Purchase = model.HotmartPurchase{
		Transaction: fmt.Sprintf("TEST_%d", now.UnixMilli()),
		Status:      "approved",
		Offer:       model.HotmartOffer{Code: "fshe1odk"},
	}
	webhook.Data.Subscription.Status = "active"
	webhook.Data.Subscription.Plan.Name = "Plano Mensal"
	return webhook
}

// Logs lists recent webhook deliveries for debugging. Disabled in
// release mode.
func (c *WebhookController) Logs(ctx *gin.Context) {
	if c.IsRelease {
		util.NotFound(ctx)
		return
	}

	logs, err := c.WebhookService.LogRepo.FindRecent(50)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, logs)
}
