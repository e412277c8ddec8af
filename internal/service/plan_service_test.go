package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"ddplanner_backend/internal/model"
	"ddplanner_backend/internal/planner"
	"ddplanner_backend/internal/store"
	syncpkg "ddplanner_backend/internal/sync"
	"ddplanner_backend/internal/util"
	"ddplanner_backend/pkg/database"
	"ddplanner_backend/pkg/logger"

	"go.uber.org/zap"
)

func newTestPlanService(t *testing.T) *PlanService {
	t.Helper()
	if logger.Log == nil {
		logger.Log = zap.NewNop()
	}

	db, err := database.InitLocalDB(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("InitLocalDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	local := store.NewLocalStore(db)
	reconciler := syncpkg.NewReconciler(local, nil)
	return NewPlanService(planner.New(), reconciler, local, nil)
}

func validRequest() model.StudyPlanRequest {
	return model.StudyPlanRequest{
		Concurso:               "TJ-CE",
		Cargo:                  "Técnico Judiciário",
		HorasLiquidas:          "3 horas",
		DisciplinasDificuldade: []string{"DIREITO CONSTITUCIONAL"},
		PlataformaEstudo:       "Qconcursos",
		TempoEstudo:            "90 dias",
	}
}

func TestCreateGeneratesAndStores(t *testing.T) {
	svc := newTestPlanService(t)

	plan, err := svc.Create(7, validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !strings.HasPrefix(plan.ID, "plan_") {
		t.Errorf("plan ID = %q, want plan_ prefix", plan.ID)
	}
	if plan.TotalDays != 90 {
		t.Errorf("TotalDays = %d, want 90", plan.TotalDays)
	}
	if len(plan.Plans) != 90 {
		t.Errorf("generated %d days, want 90", len(plan.Plans))
	}
	if len(plan.CompletedTasks) != 0 {
		t.Errorf("new plan has %d completed tasks", len(plan.CompletedTasks))
	}
	if plan.Title != "Plano TJ-CE - Técnico Judiciário" {
		t.Errorf("Title = %q", plan.Title)
	}

	stored, err := svc.Get(7, plan.ID)
	if err != nil {
		t.Fatalf("Get after Create: %v", err)
	}
	if stored.ID != plan.ID || stored.TotalDays != 90 {
		t.Errorf("stored plan mismatch: %+v", stored)
	}
}

func TestCreateRejectsInvalidRequests(t *testing.T) {
	svc := newTestPlanService(t)

	tests := []struct {
		name    string
		mutate  func(*model.StudyPlanRequest)
		wantErr error
	}{
		{"unknown exam", func(r *model.StudyPlanRequest) { r.Concurso = "TRT-SP" }, util.ErrUnknownExam},
		{"zero hours", func(r *model.StudyPlanRequest) { r.HorasLiquidas = "zero" }, util.ErrInvalidHours},
		{"unsupported hours", func(r *model.StudyPlanRequest) { r.HorasLiquidas = "5 horas" }, util.ErrInvalidHours},
		{"bad period", func(r *model.StudyPlanRequest) { r.TempoEstudo = "60 dias" }, util.ErrInvalidPeriod},
		{"unknown platform", func(r *model.StudyPlanRequest) { r.PlataformaEstudo = "PlataformaInexistente" }, util.ErrInvalidPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			if _, err := svc.Create(7, req); !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestToggleTaskDoubleToggleRestoresState(t *testing.T) {
	svc := newTestPlanService(t)

	plan, err := svc.Create(7, validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	toggled, err := svc.ToggleTask(7, plan.ID, "1-0")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if len(toggled.CompletedTasks) != 1 || toggled.CompletedTasks[0] != "1-0" {
		t.Fatalf("after first toggle: %v", toggled.CompletedTasks)
	}

	restored, err := svc.ToggleTask(7, plan.ID, "1-0")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if len(restored.CompletedTasks) != 0 {
		t.Errorf("after double toggle: %v, want empty", restored.CompletedTasks)
	}
}

func TestToggleTaskKeepsOtherKeys(t *testing.T) {
	svc := newTestPlanService(t)

	plan, err := svc.Create(7, validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, key := range []string{"1-0", "1-1", "2-0"} {
		if _, err := svc.ToggleTask(7, plan.ID, key); err != nil {
			t.Fatalf("toggle %s: %v", key, err)
		}
	}

	updated, err := svc.ToggleTask(7, plan.ID, "1-1")
	if err != nil {
		t.Fatalf("untoggle: %v", err)
	}
	want := map[string]bool{"1-0": true, "2-0": true}
	if len(updated.CompletedTasks) != len(want) {
		t.Fatalf("CompletedTasks = %v", updated.CompletedTasks)
	}
	for _, key := range updated.CompletedTasks {
		if !want[key] {
			t.Errorf("unexpected key %q", key)
		}
	}
}

func TestReplaceTasks(t *testing.T) {
	svc := newTestPlanService(t)

	plan, err := svc.Create(7, validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.ReplaceTasks(7, plan.ID, []string{"1-0", "1-1", "1-2"})
	if err != nil {
		t.Fatalf("ReplaceTasks: %v", err)
	}
	if len(updated.CompletedTasks) != 3 {
		t.Errorf("CompletedTasks = %v", updated.CompletedTasks)
	}

	cleared, err := svc.ReplaceTasks(7, plan.ID, nil)
	if err != nil {
		t.Fatalf("ReplaceTasks clear: %v", err)
	}
	if len(cleared.CompletedTasks) != 0 {
		t.Errorf("after clear: %v", cleared.CompletedTasks)
	}
}

func TestDeleteRemovesPlan(t *testing.T) {
	svc := newTestPlanService(t)

	plan, err := svc.Create(7, validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(7, plan.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(7, plan.ID); !errors.Is(err, util.ErrPlanNotFound) {
		t.Errorf("Get after delete: %v, want ErrPlanNotFound", err)
	}
}

func TestComputeStats(t *testing.T) {
	days := []model.DayPlan{
		{Day: 1},
		{Day: 2},
		{Day: 3, IsReviewDay: true},
		{Day: 4, IsRestDay: true},
	}
	// slots: 5 + 5 + 3 = 13
	plans := []model.StoredStudyPlan{
		{
			Plans:          days,
			CompletedTasks: []string{"1-0", "1-1", "2-0"},
			FormData: model.StudyPlanRequest{
				HorasLiquidas:          "5 horas",
				DisciplinasDificuldade: []string{"DIREITO CONSTITUCIONAL", "LÍNGUA PORTUGUESA"},
			},
		},
	}

	stats := computeStats(plans)

	if stats.TotalPlans != 1 || stats.ActivePlans != 1 {
		t.Errorf("plan counts = %d/%d", stats.TotalPlans, stats.ActivePlans)
	}
	// 3 tasks at 5h/5 tasks per day = 3.0 hours
	if stats.TotalHoursStudied != 3.0 {
		t.Errorf("TotalHoursStudied = %v, want 3.0", stats.TotalHoursStudied)
	}
	if stats.TotalSubjects != 2 {
		t.Errorf("TotalSubjects = %d, want 2", stats.TotalSubjects)
	}
	// round(3/13*100) = 23
	if stats.AverageProgress != 23 {
		t.Errorf("AverageProgress = %d, want 23", stats.AverageProgress)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := computeStats(nil)
	if stats.TotalPlans != 0 || stats.TotalHoursStudied != 0 || stats.AverageProgress != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}

func TestStatsWithoutCacheReadsStore(t *testing.T) {
	svc := newTestPlanService(t)

	if _, err := svc.Create(7, validRequest()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	stats, err := svc.Stats(context.Background(), 7)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalPlans != 1 {
		t.Errorf("TotalPlans = %d, want 1", stats.TotalPlans)
	}
}

func TestRecentActivityLogsCreation(t *testing.T) {
	svc := newTestPlanService(t)

	plan, err := svc.Create(7, validRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	entries, err := svc.RecentActivity(7)
	if err != nil {
		t.Fatalf("RecentActivity: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Action != actionCreated || entries[0].PlanID != plan.ID {
		t.Errorf("entry = %+v", entries[0])
	}
}
