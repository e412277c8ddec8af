package service

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"ddplanner_backend/internal/config"
	"ddplanner_backend/internal/model"
	"ddplanner_backend/internal/repository"
	"ddplanner_backend/internal/util"
	"ddplanner_backend/pkg/logger"
	"ddplanner_backend/pkg/monitoring"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// WebhookService processes Hotmart purchase events: provisioning
// accounts on approved purchases and winding subscriptions down on
// cancellations.
type WebhookService struct {
	UserRepo *repository.UserRepository
	SubRepo  *repository.SubscriptionRepository
	LogRepo  *repository.WebhookLogRepository
	Email    *EmailService
	Config   *config.Config
}

func NewWebhookService(
	userRepo *repository.UserRepository,
	subRepo *repository.SubscriptionRepository,
	logRepo *repository.WebhookLogRepository,
	email *EmailService,
	cfg *config.Config,
) *WebhookService {
	return &WebhookService{
		UserRepo: userRepo,
		SubRepo:  subRepo,
		LogRepo:  logRepo,
		Email:    email,
		Config:   cfg,
	}
}

// Validate checks the minimal payload shape Hotmart guarantees.
func Validate(w *model.HotmartWebhook) error {
	if w == nil || w.Event == "" || w.Data.Buyer.Email == "" || w.Data.Purchase.Transaction == "" {
		return util.ErrInvalidWebhook
	}
	return nil
}

// Process routes a validated webhook to its handler and records the
// outcome in the webhook log.
func (s *WebhookService) Process(webhook *model.HotmartWebhook, rawPayload []byte) error {
	if err := Validate(webhook); err != nil {
		event := "unknown"
		if webhook != nil && webhook.Event != "" {
			event = webhook.Event
		}
		monitoring.WebhookEvents.WithLabelValues(event, "invalid").Inc()
		return err
	}

	log := &model.WebhookLog{
		Event:         webhook.Event,
		TransactionID: webhook.Data.Purchase.Transaction,
		BuyerEmail:    webhook.Data.Buyer.Email,
		Payload:       string(rawPayload),
	}
	if err := s.LogRepo.Create(log); err != nil {
		logger.Log.Error("failed to record webhook", zap.Error(err))
	}

	var err error
	switch webhook.Event {
	case "PURCHASE_APPROVED", "PURCHASE_COMPLETE":
		err = s.handlePurchaseApproved(webhook)
	case "PURCHASE_CANCELLED", "PURCHASE_REFUNDED", "PURCHASE_CHARGEBACK":
		err = s.handlePurchaseCancelled(webhook)
	case "SUBSCRIPTION_CANCELLATION":
		err = s.handleSubscriptionCancellation(webhook)
	default:
		logger.Log.Info("webhook event ignored", zap.String("event", webhook.Event))
	}

	if err != nil {
		monitoring.WebhookEvents.WithLabelValues(webhook.Event, "error").Inc()
		if log.ID != 0 {
			if markErr := s.LogRepo.MarkFailed(log.ID, err.Error()); markErr != nil {
				logger.Log.Error("failed to mark webhook error", zap.Error(markErr))
			}
		}
		return err
	}

	monitoring.WebhookEvents.WithLabelValues(webhook.Event, "processed").Inc()
	if log.ID != 0 {
		if markErr := s.LogRepo.MarkProcessed(log.ID); markErr != nil {
			logger.Log.Error("failed to mark webhook processed", zap.Error(markErr))
		}
	}
	return nil
}

func (s *WebhookService) handlePurchaseApproved(webhook *model.HotmartWebhook) error {
	purchase := webhook.Data.Purchase
	buyer := webhook.Data.Buyer

	exists, err := s.SubRepo.ExistsByTransaction(purchase.Transaction)
	if err != nil {
		return err
	}
	if exists {
		logger.Log.Info("transaction already provisioned",
			zap.String("transaction", purchase.Transaction))
		return nil
	}

	user, password, isNew, err := s.findOrCreateUser(buyer)
	if err != nil {
		return err
	}

	plan := s.planForOffer(purchase.Offer.Code)
	start := time.Now()
	sub := &model.Subscription{
		UserID:        user.ID,
		Plan:          plan,
		Status:        model.SubscriptionActive,
		TransactionID: purchase.Transaction,
		OfferCode:     purchase.Offer.Code,
		StartDate:     start,
		EndDate:       subscriptionEnd(plan, start),
	}
	if err := s.SubRepo.Create(sub); err != nil {
		return err
	}

	logger.Log.Info("subscription provisioned",
		zap.String("transaction", purchase.Transaction),
		zap.String("plan", string(plan)),
		zap.Uint("user_id", user.ID))

	if isNew {
		if err := s.Email.SendWelcome(user.Name, user.Email, password); err != nil {
			// Credentials can be recovered through support; the
			// subscription itself is already provisioned.
			logger.Log.Error("failed to send welcome email",
				zap.String("email", user.Email), zap.Error(err))
		}
	}
	return nil
}

func (s *WebhookService) handlePurchaseCancelled(webhook *model.HotmartWebhook) error {
	purchase := webhook.Data.Purchase

	sub, err := s.SubRepo.FindByTransaction(purchase.Transaction)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Log.Warn("cancellation for unknown transaction",
			zap.String("transaction", purchase.Transaction))
		return nil
	}
	if err != nil {
		return err
	}

	sub.Status = mapHotmartStatus(purchase.Status)
	sub.EndDate = time.Now()
	if err := s.SubRepo.Update(sub); err != nil {
		return err
	}

	s.notifyCancellation(sub.UserID)
	return nil
}

func (s *WebhookService) handleSubscriptionCancellation(webhook *model.HotmartWebhook) error {
	purchase := webhook.Data.Purchase

	sub, err := s.SubRepo.FindByTransaction(purchase.Transaction)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Log.Warn("cancellation for unknown transaction",
			zap.String("transaction", purchase.Transaction))
		return nil
	}
	if err != nil {
		return err
	}

	// Access runs until the paid period ends, so the end date stays.
	sub.Status = model.SubscriptionCancelled
	if err := s.SubRepo.Update(sub); err != nil {
		return err
	}

	s.notifyCancellation(sub.UserID)
	return nil
}

func (s *WebhookService) findOrCreateUser(buyer model.HotmartBuyer) (*model.User, string, bool, error) {
	user, err := s.UserRepo.FindByEmail(buyer.Email)
	if err == nil {
		return user, "", false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", false, err
	}

	password, err := util.GeneratePassword(12)
	if err != nil {
		return nil, "", false, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", false, err
	}

	name := buyer.Name
	if name == "" {
		name = buyer.Email
	}

	user = &model.User{
		Name:     name,
		Email:    buyer.Email,
		Password: string(hashed),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, "", false, err
	}

	logger.Log.Info("user provisioned from purchase", zap.String("email", user.Email))
	return user, password, true, nil
}

func (s *WebhookService) notifyCancellation(userID uint) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		logger.Log.Warn("cancellation email skipped, user lookup failed",
			zap.Uint("user_id", userID), zap.Error(err))
		return
	}
	if err := s.Email.SendSubscriptionCancelled(user.Name, user.Email); err != nil {
		logger.Log.Error("failed to send cancellation email",
			zap.String("email", user.Email), zap.Error(err))
	}
}

func (s *WebhookService) planForOffer(offerCode string) model.SubscriptionPlan {
	if offerCode != "" && offerCode == s.Config.Hotmart.AnnualOfferCode {
		return model.PlanAnnual
	}
	return model.PlanMonthly
}

func subscriptionEnd(plan model.SubscriptionPlan, start time.Time) time.Time {
	if plan == model.PlanAnnual {
		return start.AddDate(1, 0, 0)
	}
	return start.AddDate(0, 1, 0)
}

func mapHotmartStatus(status string) model.SubscriptionStatus {
	switch strings.ToLower(status) {
	case "approved", "complete", "active":
		return model.SubscriptionActive
	case "cancelled", "canceled":
		return model.SubscriptionCancelled
	case "refunded", "chargeback":
		return model.SubscriptionRefunded
	case "expired":
		return model.SubscriptionExpired
	default:
		return model.SubscriptionActive
	}
}

// DecodeWebhook parses the raw body, keeping the original payload for
// the audit log.
func DecodeWebhook(raw []byte) (*model.HotmartWebhook, error) {
	var webhook model.HotmartWebhook
	if err := json.Unmarshal(raw, &webhook); err != nil {
		return nil, util.ErrInvalidWebhook
	}
	return &webhook, nil
}
