package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"ddplanner_backend/internal/model"
	"ddplanner_backend/internal/util"
	"ddplanner_backend/pkg/database"
	"ddplanner_backend/pkg/logger"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	if logger.Log == nil {
		logger.Log = zap.NewNop()
	}

	db, err := database.InitLocalDB(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("InitLocalDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewLocalStore(db)
}

func samplePlan(id string) *model.StoredStudyPlan {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	return &model.StoredStudyPlan{
		ID:             id,
		Title:          "TJ CE - Técnico Judiciário",
		Concurso:       "TJ-CE",
		Cargo:          "Técnico Judiciário",
		CreatedAt:      now,
		UpdatedAt:      now,
		TotalDays:      90,
		CompletedTasks: []string{"1-0", "1-1"},
		Plans: []model.DayPlan{
			{Day: 1, WeekDay: 1, Date: "10/03/2025"},
		},
		FormData: model.StudyPlanRequest{
			Concurso:      "TJ-CE",
			Cargo:         "Técnico Judiciário",
			HorasLiquidas: "3 horas",
			TempoEstudo:   "90 dias",
		},
	}
}

func TestSaveAndGetPlanRoundTrip(t *testing.T) {
	s := newTestStore(t)
	plan := samplePlan("plan_1710057600000_abc123def")

	if err := s.SavePlan(7, plan); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	got, err := s.GetPlan(7, plan.ID)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if got.Title != plan.Title || got.TotalDays != plan.TotalDays {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if len(got.CompletedTasks) != 2 || got.CompletedTasks[0] != "1-0" {
		t.Errorf("completed tasks lost: %v", got.CompletedTasks)
	}
	if len(got.Plans) != 1 || got.Plans[0].Date != "10/03/2025" {
		t.Errorf("day plans lost: %v", got.Plans)
	}
}

// A row whose payload no longer decodes must not break the listing:
// the row is skipped with a warning and the rest is served.
func TestGetPlansSkipsCorruptPayloadWithWarning(t *testing.T) {
	s := newTestStore(t)
	if err := s.SavePlan(7, samplePlan("plan_ok")); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}
	if _, err := s.db.Exec(`
		INSERT INTO study_plans (id, user_id, title, concurso, cargo, total_days, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		"plan_bad", 7, "Plano quebrado", "TJ-CE", "Técnico Judiciário", 90,
		"{not json", "2025-03-09T08:00:00Z", "2025-03-09T08:00:00Z",
	); err != nil {
		t.Fatalf("seeding corrupt row: %v", err)
	}

	core, logs := observer.New(zap.WarnLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	plans, err := s.GetPlans(7)
	if err != nil {
		t.Fatalf("GetPlans: %v", err)
	}
	if len(plans) != 1 || plans[0].ID != "plan_ok" {
		t.Fatalf("got %d plans, want only the intact one", len(plans))
	}
	if logs.FilterMessage("skipping undecodable plan row").Len() != 1 {
		t.Error("corrupt row skipped silently")
	}
}

func TestSavePlanOverwrites(t *testing.T) {
	s := newTestStore(t)
	plan := samplePlan("plan_1")

	if err := s.SavePlan(7, plan); err != nil {
		t.Fatal(err)
	}

	plan.CompletedTasks = append(plan.CompletedTasks, "2-0")
	plan.UpdatedAt = plan.UpdatedAt.Add(time.Hour)
	if err := s.SavePlan(7, plan); err != nil {
		t.Fatal(err)
	}

	plans, err := s.GetPlans(7)
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 1 {
		t.Fatalf("got %d plans, want 1", len(plans))
	}
	if len(plans[0].CompletedTasks) != 3 {
		t.Errorf("overwrite lost tasks: %v", plans[0].CompletedTasks)
	}
}

func TestGetPlanScopedToUser(t *testing.T) {
	s := newTestStore(t)
	if err := s.SavePlan(7, samplePlan("plan_1")); err != nil {
		t.Fatal(err)
	}

	if _, err := s.GetPlan(8, "plan_1"); !errors.Is(err, util.ErrPlanNotFound) {
		t.Errorf("GetPlan for other user: err=%v, want ErrPlanNotFound", err)
	}
}

func TestDeletePlan(t *testing.T) {
	s := newTestStore(t)
	if err := s.SavePlan(7, samplePlan("plan_1")); err != nil {
		t.Fatal(err)
	}

	if err := s.DeletePlan(7, "plan_1"); err != nil {
		t.Fatalf("DeletePlan: %v", err)
	}
	if err := s.DeletePlan(7, "plan_1"); !errors.Is(err, util.ErrPlanNotFound) {
		t.Errorf("second delete: err=%v, want ErrPlanNotFound", err)
	}
}

func TestReplaceAll(t *testing.T) {
	s := newTestStore(t)
	if err := s.SavePlan(7, samplePlan("local_only")); err != nil {
		t.Fatal(err)
	}

	incoming := []model.StoredStudyPlan{*samplePlan("remote_a"), *samplePlan("remote_b")}
	incoming[1].CreatedAt = incoming[1].CreatedAt.Add(time.Minute)
	if err := s.ReplaceAll(7, incoming); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	plans, err := s.GetPlans(7)
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 2 {
		t.Fatalf("got %d plans, want 2", len(plans))
	}
	for _, p := range plans {
		if p.ID == "local_only" {
			t.Error("ReplaceAll kept a superseded local plan")
		}
	}
}

func TestActivityLogCap(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < activityLogCap+10; i++ {
		if err := s.LogActivity(7, "plan_created", "plan_1", "Plano", "detalhe"); err != nil {
			t.Fatalf("LogActivity: %v", err)
		}
	}

	all, err := s.RecentActivity(7, activityLogCap+10)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != activityLogCap {
		t.Errorf("history holds %d entries, want %d", len(all), activityLogCap)
	}

	feed, err := s.RecentActivity(7, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(feed) != 10 {
		t.Errorf("feed holds %d entries, want 10", len(feed))
	}
	if len(feed) > 1 && feed[0].ID < feed[1].ID {
		t.Error("feed is not newest first")
	}
}
