package controller

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"ddplanner_backend/internal/model"
	"ddplanner_backend/internal/planner"
	"ddplanner_backend/internal/service"
	"ddplanner_backend/internal/store"
	syncpkg "ddplanner_backend/internal/sync"
	"ddplanner_backend/internal/util"
	"ddplanner_backend/pkg/database"
	"ddplanner_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubRemote struct {
	plans map[uint][]model.StoredStudyPlan
}

func (s *stubRemote) Upsert(userID uint, plan *model.StoredStudyPlan) error { return nil }

func (s *stubRemote) FindByUserID(userID uint) ([]model.StoredStudyPlan, error) {
	return s.plans[userID], nil
}

func (s *stubRemote) Delete(userID uint, planID string) error { return nil }

func newPlanRouter(t *testing.T, remote syncpkg.RemoteStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if logger.Log == nil {
		logger.Log = zap.NewNop()
	}

	db, err := database.InitLocalDB(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("InitLocalDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	local := store.NewLocalStore(db)
	svc := service.NewPlanService(planner.New(), syncpkg.NewReconciler(local, remote), local, nil)
	ctrl := NewPlanController(svc)

	r := gin.New()
	r.GET("/api/plans/:id", func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: 7, Email: "aluno@exemplo.com"})
		ctrl.Get(c)
	})
	return r
}

func remotePlan(id string) model.StoredStudyPlan {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	return model.StoredStudyPlan{
		ID:             id,
		Title:          "Plano TJ-CE - Técnico Judiciário",
		Concurso:       "TJ-CE",
		TotalDays:      90,
		CreatedAt:      now,
		UpdatedAt:      now,
		CompletedTasks: []string{},
	}
}

// A plan created on another device exists only in the remote mirror.
// sync=true must reconcile before the lookup so the read succeeds;
// a plain read stays local and misses.
func TestGetPlanSyncQueryReconcilesRemote(t *testing.T) {
	remote := &stubRemote{plans: map[uint][]model.StoredStudyPlan{
		7: {remotePlan("plan_remote")},
	}}
	router := newPlanRouter(t, remote)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plans/plan_remote", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("plain read of a remote-only plan: status %d, want 404", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plans/plan_remote?sync=true", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("sync=true read: status %d, want 200", w.Code)
	}
}
