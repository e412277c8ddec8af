// Package sync keeps the local plan store and the remote mirror
// loosely consistent. The local store is authoritative for writes;
// the remote copy wins wholesale on non-empty reads.
package sync

import (
	"sync"
	"sync/atomic"
	"time"

	"ddplanner_backend/internal/model"
	"ddplanner_backend/internal/store"
	"ddplanner_backend/pkg/logger"
	"ddplanner_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// RemoteStore is the advisory mirror behind the reconciler.
type RemoteStore interface {
	Upsert(userID uint, plan *model.StoredStudyPlan) error
	FindByUserID(userID uint) ([]model.StoredStudyPlan, error)
	Delete(userID uint, planID string) error
}

// Reconciler routes plan operations through the local store and
// mirrors them to the remote one on a best-effort basis. A nil
// remote degrades every operation to local-only.
type Reconciler struct {
	local  *store.LocalStore
	remote RemoteStore

	pending  atomic.Int64
	inFlight atomic.Int64
	wg       sync.WaitGroup

	mu       sync.Mutex
	lastSync time.Time
}

func NewReconciler(local *store.LocalStore, remote RemoteStore) *Reconciler {
	return &Reconciler{local: local, remote: remote}
}

// SavePlan persists locally, then mirrors to the remote store in the
// background. The call succeeds as soon as the local write lands.
func (r *Reconciler) SavePlan(userID uint, plan *model.StoredStudyPlan) error {
	if err := r.local.SavePlan(userID, plan); err != nil {
		return err
	}

	if r.remote == nil {
		r.addPending(1)
		return nil
	}

	r.wg.Add(1)
	r.inFlight.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.inFlight.Add(-1)
		if err := r.remote.Upsert(userID, plan); err != nil {
			r.addPending(1)
			logger.Log.Warn("remote mirror failed",
				zap.String("plan_id", plan.ID),
				zap.Uint("user_id", userID),
				zap.Error(err))
		}
	}()
	return nil
}

// GetPlans returns the local view without touching the remote store.
func (r *Reconciler) GetPlans(userID uint) ([]model.StoredStudyPlan, error) {
	return r.local.GetPlans(userID)
}

// GetPlan loads one plan from the local store.
func (r *Reconciler) GetPlan(userID uint, planID string) (*model.StoredStudyPlan, error) {
	return r.local.GetPlan(userID, planID)
}

// GetAllPlansWithSync reconciles both stores and returns the winning
// set. A non-empty remote read replaces the local state wholesale;
// otherwise the local state stands and, when non-empty, is pushed to
// the remote store.
func (r *Reconciler) GetAllPlansWithSync(userID uint) ([]model.StoredStudyPlan, error) {
	local, err := r.local.GetPlans(userID)
	if err != nil {
		return nil, err
	}

	if r.remote == nil {
		return local, nil
	}

	remote, err := r.remote.FindByUserID(userID)
	if err != nil {
		logger.Log.Warn("remote read failed, serving local state",
			zap.Uint("user_id", userID), zap.Error(err))
		return local, nil
	}

	if len(remote) > 0 {
		if err := r.local.ReplaceAll(userID, remote); err != nil {
			logger.Log.Error("failed to adopt remote state",
				zap.Uint("user_id", userID), zap.Error(err))
			return local, nil
		}
		r.markSynced()
		return remote, nil
	}

	if len(local) > 0 {
		if err := r.pushAll(userID, local); err == nil {
			r.markSynced()
		}
	}
	return local, nil
}

// DeletePlan removes the plan locally. The remote delete is a
// documented no-op so the mirror retains a recovery copy.
func (r *Reconciler) DeletePlan(userID uint, planID string) error {
	if err := r.local.DeletePlan(userID, planID); err != nil {
		return err
	}
	if r.remote != nil {
		_ = r.remote.Delete(userID, planID)
	}
	return nil
}

// SyncUser pushes the user's full local state to the remote store.
// Without a remote nothing was synced, so the bookkeeping stays as-is.
func (r *Reconciler) SyncUser(userID uint) error {
	if r.remote == nil {
		return nil
	}
	plans, err := r.local.GetPlans(userID)
	if err != nil {
		return err
	}
	if err := r.pushAll(userID, plans); err != nil {
		return err
	}
	r.markSynced()
	r.setPending(0)
	return nil
}

// SyncAllUsers pushes every user with local plans. Used by the
// periodic scheduler.
func (r *Reconciler) SyncAllUsers() error {
	users, err := r.local.Users()
	if err != nil {
		return err
	}

	var firstErr error
	for _, userID := range users {
		if dropped, err := r.local.IntegrityCheck(userID); err != nil {
			logger.Log.Warn("integrity check failed",
				zap.Uint("user_id", userID), zap.Error(err))
		} else if dropped > 0 {
			logger.Log.Warn("dropped corrupt plan rows",
				zap.Uint("user_id", userID), zap.Int("dropped", dropped))
		}
		if err := r.SyncUser(userID); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Status reports the reconciler state.
func (r *Reconciler) Status() model.SyncStatus {
	r.mu.Lock()
	lastSync := r.lastSync
	r.mu.Unlock()

	return model.SyncStatus{
		RemoteAvailable:   r.remote != nil,
		PendingOperations: r.pending.Load(),
		LastSyncAt:        lastSync,
		Syncing:           r.inFlight.Load() > 0,
	}
}

// Flush waits for in-flight background mirrors. Called on shutdown.
func (r *Reconciler) Flush() {
	r.wg.Wait()
}

func (r *Reconciler) pushAll(userID uint, plans []model.StoredStudyPlan) error {
	if r.remote == nil {
		return nil
	}
	for i := range plans {
		if err := r.remote.Upsert(userID, &plans[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reconciler) markSynced() {
	r.mu.Lock()
	r.lastSync = time.Now()
	r.mu.Unlock()
}

func (r *Reconciler) addPending(delta int64) {
	monitoring.PendingSyncOps.Set(float64(r.pending.Add(delta)))
}

func (r *Reconciler) setPending(v int64) {
	r.pending.Store(v)
	monitoring.PendingSyncOps.Set(float64(v))
}
