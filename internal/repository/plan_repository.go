package repository

import (
	"encoding/json"
	"fmt"

	"ddplanner_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanRepository mirrors plan documents into the remote MySQL store.
// The remote copy is advisory: every method may fail without
// compromising local durability, and callers treat errors as a
// degraded-sync signal rather than a hard failure.
type PlanRepository struct {
	DB *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

// Upsert writes or replaces the remote row for a plan.
func (r *PlanRepository) Upsert(userID uint, plan *model.StoredStudyPlan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan %s: %w", plan.ID, err)
	}

	record := model.StudyPlanRecord{
		ID:        plan.ID,
		UserID:    userID,
		Title:     plan.Title,
		Concurso:  plan.Concurso,
		Cargo:     plan.Cargo,
		TotalDays: plan.TotalDays,
		Payload:   string(payload),
		CreatedAt: plan.CreatedAt,
		UpdatedAt: plan.UpdatedAt,
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&record).Error
}

// FindByUserID decodes every remote plan belonging to the user.
func (r *PlanRepository) FindByUserID(userID uint) ([]model.StoredStudyPlan, error) {
	var records []model.StudyPlanRecord
	if err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	plans := make([]model.StoredStudyPlan, 0, len(records))
	for _, rec := range records {
		var plan model.StoredStudyPlan
		if err := json.Unmarshal([]byte(rec.Payload), &plan); err != nil {
			// Skip rows with unreadable payloads instead of failing
			// the whole read.
			continue
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// Delete is intentionally a no-op that reports success. Remote rows
// are retained for recovery; the local store is the source of truth
// for deletions.
func (r *PlanRepository) Delete(userID uint, planID string) error {
	return nil
}
