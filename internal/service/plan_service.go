package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"ddplanner_backend/internal/model"
	"ddplanner_backend/internal/planner"
	"ddplanner_backend/internal/store"
	syncpkg "ddplanner_backend/internal/sync"
	"ddplanner_backend/internal/util"
	"ddplanner_backend/pkg/logger"
	"ddplanner_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	statsCacheTTL = 5 * time.Minute

	actionCreated       = "created"
	actionUpdated       = "updated"
	actionCompletedTask = "completed_task"
	actionDeleted       = "deleted"
)

// PlanService generates study plans and manages their stored state
// through the reconciler.
type PlanService struct {
	Planner    *planner.Planner
	Reconciler *syncpkg.Reconciler
	Local      *store.LocalStore
	Cache      *redis.Client
}

func NewPlanService(p *planner.Planner, r *syncpkg.Reconciler, local *store.LocalStore, cache *redis.Client) *PlanService {
	return &PlanService{Planner: p, Reconciler: r, Local: local, Cache: cache}
}

// Create generates a schedule from the intake form and persists it.
func (s *PlanService) Create(userID uint, req model.StudyPlanRequest) (*model.StoredStudyPlan, error) {
	days, err := s.Planner.Generate(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	plan := &model.StoredStudyPlan{
		ID:             newPlanID(now),
		Title:          fmt.Sprintf("Plano %s - %s", req.Concurso, req.Cargo),
		Concurso:       req.Concurso,
		Cargo:          req.Cargo,
		CreatedAt:      now,
		UpdatedAt:      now,
		TotalDays:      len(days),
		CompletedTasks: []string{},
		Plans:          days,
		FormData:       req,
	}

	if err := s.Reconciler.SavePlan(userID, plan); err != nil {
		return nil, err
	}

	s.logActivity(userID, actionCreated, plan, fmt.Sprintf("Plano %q foi criado", plan.Title))
	s.invalidateStats(userID)
	monitoring.PlansGenerated.WithLabelValues(strings.ToLower(req.Concurso)).Inc()
	return plan, nil
}

// List returns the user's plans from the local cache.
func (s *PlanService) List(userID uint) ([]model.StoredStudyPlan, error) {
	return s.Reconciler.GetPlans(userID)
}

// ListWithSync reads through the remote mirror first, reconciling the
// local cache to it when it has data.
func (s *PlanService) ListWithSync(userID uint) ([]model.StoredStudyPlan, error) {
	return s.Reconciler.GetAllPlansWithSync(userID)
}

func (s *PlanService) Get(userID uint, planID string) (*model.StoredStudyPlan, error) {
	return s.Reconciler.GetPlan(userID, planID)
}

// GetWithSync reconciles the user's plans against the remote mirror
// before looking the plan up, so a plan created on another device is
// visible.
func (s *PlanService) GetWithSync(userID uint, planID string) (*model.StoredStudyPlan, error) {
	if _, err := s.Reconciler.GetAllPlansWithSync(userID); err != nil {
		logger.Log.Warn("sync before plan read failed", zap.Error(err))
	}
	return s.Reconciler.GetPlan(userID, planID)
}

// ToggleTask flips a "<day>-<slot>" completion key. Toggling the same
// key twice restores the previous state.
func (s *PlanService) ToggleTask(userID uint, planID, taskKey string) (*model.StoredStudyPlan, error) {
	plan, err := s.Reconciler.GetPlan(userID, planID)
	if err != nil {
		return nil, err
	}

	completed := false
	tasks := plan.CompletedTasks[:0:0]
	for _, key := range plan.CompletedTasks {
		if key == taskKey {
			completed = true
			continue
		}
		tasks = append(tasks, key)
	}
	if !completed {
		tasks = append(tasks, taskKey)
	}
	plan.CompletedTasks = tasks
	plan.UpdatedAt = time.Now()

	if err := s.Reconciler.SavePlan(userID, plan); err != nil {
		return nil, err
	}

	if !completed {
		s.logActivity(userID, actionCompletedTask, plan,
			fmt.Sprintf("Tarefa completada no plano %q", plan.Title))
	} else {
		s.logActivity(userID, actionUpdated, plan,
			fmt.Sprintf("Plano %q foi atualizado", plan.Title))
	}
	s.invalidateStats(userID)
	return plan, nil
}

// ReplaceTasks swaps the completion set wholesale, as the client sends
// the full list after local edits.
func (s *PlanService) ReplaceTasks(userID uint, planID string, tasks []string) (*model.StoredStudyPlan, error) {
	plan, err := s.Reconciler.GetPlan(userID, planID)
	if err != nil {
		return nil, err
	}

	previous := len(plan.CompletedTasks)
	if tasks == nil {
		tasks = []string{}
	}
	plan.CompletedTasks = tasks
	plan.UpdatedAt = time.Now()

	if err := s.Reconciler.SavePlan(userID, plan); err != nil {
		return nil, err
	}

	if len(tasks) > previous {
		s.logActivity(userID, actionCompletedTask, plan,
			fmt.Sprintf("Tarefa completada no plano %q", plan.Title))
	}
	s.logActivity(userID, actionUpdated, plan,
		fmt.Sprintf("Plano %q foi atualizado", plan.Title))
	s.invalidateStats(userID)
	return plan, nil
}

func (s *PlanService) Delete(userID uint, planID string) error {
	plan, err := s.Reconciler.GetPlan(userID, planID)
	if err != nil {
		return err
	}
	if err := s.Reconciler.DeletePlan(userID, planID); err != nil {
		return err
	}
	s.logActivity(userID, actionDeleted, plan, fmt.Sprintf("Plano %q foi removido", plan.Title))
	s.invalidateStats(userID)
	return nil
}

// Stats aggregates dashboard numbers, cached in Redis when available.
func (s *PlanService) Stats(ctx context.Context, userID uint) (*model.PlanStats, error) {
	key := statsCacheKey(userID)
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			var stats model.PlanStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("stats cache read failed", zap.Error(err))
		}
	}

	plans, err := s.Reconciler.GetPlans(userID)
	if err != nil {
		return nil, err
	}
	stats := computeStats(plans)

	if s.Cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, key, payload, statsCacheTTL).Err(); err != nil {
				logger.Log.Warn("stats cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}

// RecentActivity returns the newest entries of the user's feed.
func (s *PlanService) RecentActivity(userID uint) ([]model.ActivityLogEntry, error) {
	return s.Local.RecentActivity(userID, 10)
}

func computeStats(plans []model.StoredStudyPlan) *model.PlanStats {
	if len(plans) == 0 {
		return &model.PlanStats{}
	}

	subjects := make(map[string]struct{})
	var totalProgress, totalHours float64

	for _, plan := range plans {
		totalTasks := 0
		for _, day := range plan.Plans {
			if day.IsRestDay {
				continue
			}
			if day.IsSpecialDay || day.IsReviewDay {
				totalTasks += 3
			} else {
				totalTasks += 5
			}
		}

		completed := len(plan.CompletedTasks)
		if totalTasks > 0 {
			totalProgress += float64(completed) / float64(totalTasks) * 100
		}

		hoursPerDay := util.ParseLeadingInt(plan.FormData.HorasLiquidas)
		totalHours += float64(completed) * float64(hoursPerDay) / 5

		for _, subject := range plan.FormData.DisciplinasDificuldade {
			subjects[subject] = struct{}{}
		}
	}

	return &model.PlanStats{
		TotalPlans:        len(plans),
		ActivePlans:       len(plans),
		TotalHoursStudied: math.Round(totalHours*10) / 10,
		TotalSubjects:     len(subjects),
		AverageProgress:   int(math.Round(totalProgress / float64(len(plans)))),
	}
}

func (s *PlanService) logActivity(userID uint, action string, plan *model.StoredStudyPlan, detail string) {
	if err := s.Local.LogActivity(userID, action, plan.ID, plan.Title, detail); err != nil {
		logger.Log.Warn("failed to log activity", zap.Error(err))
	}
}

func (s *PlanService) invalidateStats(userID uint) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), statsCacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("stats cache invalidation failed", zap.Error(err))
	}
}

func statsCacheKey(userID uint) string {
	return fmt.Sprintf("ddplanner:stats:%d", userID)
}

const planIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func newPlanID(now time.Time) string {
	var b strings.Builder
	for i := 0; i < 9; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(planIDAlphabet))))
		if err != nil {
			n = big.NewInt(int64(i))
		}
		b.WriteByte(planIDAlphabet[n.Int64()])
	}
	return fmt.Sprintf("plan_%d_%s", now.UnixMilli(), b.String())
}
