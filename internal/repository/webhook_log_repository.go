package repository

import (
	"ddplanner_backend/internal/model"

	"gorm.io/gorm"
)

type WebhookLogRepository struct {
	DB *gorm.DB
}

func NewWebhookLogRepository(db *gorm.DB) *WebhookLogRepository {
	return &WebhookLogRepository{DB: db}
}

func (r *WebhookLogRepository) Create(log *model.WebhookLog) error {
	return r.DB.Create(log).Error
}

func (r *WebhookLogRepository) MarkProcessed(id uint) error {
	return r.DB.Model(&model.WebhookLog{}).
		Where("id = ?", id).
		Update("processed", true).
		Error
}

func (r *WebhookLogRepository) MarkFailed(id uint, message string) error {
	return r.DB.Model(&model.WebhookLog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"processed":     false,
			"error_message": message,
		}).
		Error
}

func (r *WebhookLogRepository) FindRecent(limit int) ([]*model.WebhookLog, error) {
	var logs []*model.WebhookLog
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
