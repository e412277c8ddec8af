package repository

import (
	"errors"
	"time"

	"ddplanner_backend/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) Create(sub *model.Subscription) error {
	return r.DB.Create(sub).Error
}

func (r *SubscriptionRepository) Update(sub *model.Subscription) error {
	return r.DB.Save(sub).Error
}

func (r *SubscriptionRepository) FindByTransaction(transactionID string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Where("transaction_id = ?", transactionID).First(&sub).Error
	return &sub, err
}

// ExistsByTransaction is the webhook dedupe check.
func (r *SubscriptionRepository) ExistsByTransaction(transactionID string) (bool, error) {
	var sub model.Subscription
	err := r.DB.Select("id").Where("transaction_id = ?", transactionID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindActiveByUserID returns the user's newest still-valid subscription.
func (r *SubscriptionRepository) FindActiveByUserID(userID uint) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.Where("user_id = ? AND status = ? AND end_date > ?",
		userID, model.SubscriptionActive, time.Now()).
		Order("end_date DESC").
		First(&sub).Error
	return &sub, err
}

func (r *SubscriptionRepository) FindByUserID(userID uint) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&subs).Error
	return subs, err
}
