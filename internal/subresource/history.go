package subresource

import (
	"context"

	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// HistoryAPI is the slice of the medical history service the editor
// needs
type HistoryAPI interface {
	GetAll(ctx context.Context, memberID string) ([]types.MedicalHistory, error)
	Create(ctx context.Context, memberID string, history *types.MedicalHistory) (*types.MedicalHistory, error)
	Update(ctx context.Context, memberID, historyID string, patch *types.MedicalHistory) (*types.MedicalHistory, error)
	Delete(ctx context.Context, memberID, historyID string) error
}

// HistoryEditor manages the medical history snapshots of exactly one
// member. Mutations are followed by a full refetch, matching the notes
// editor discipline.
type HistoryEditor struct {
	service  HistoryAPI
	logger   *logger.Logger
	memberID string

	snapshots []types.MedicalHistory
	pendingID string
}

// NewHistoryEditor creates a medical history editor scoped to one
// member
func NewHistoryEditor(service HistoryAPI, memberID string, log *logger.Logger) *HistoryEditor {
	return &HistoryEditor{
		service:  service,
		logger:   log,
		memberID: memberID,
	}
}

// Snapshots returns the currently loaded history snapshots
func (e *HistoryEditor) Snapshots() []types.MedicalHistory {
	return e.snapshots
}

// Load refetches the member's history snapshots
func (e *HistoryEditor) Load(ctx context.Context) error {
	snapshots, err := e.service.GetAll(ctx, e.memberID)
	if err != nil {
		return err
	}
	e.snapshots = snapshots
	return nil
}

// Add creates a new snapshot, then refetches the collection
func (e *HistoryEditor) Add(ctx context.Context, history *types.MedicalHistory) error {
	if _, err := e.service.Create(ctx, e.memberID, history); err != nil {
		return err
	}
	return e.Load(ctx)
}

// Edit patches an existing snapshot, then refetches the collection
func (e *HistoryEditor) Edit(ctx context.Context, historyID string, patch *types.MedicalHistory) error {
	if _, err := e.service.Update(ctx, e.memberID, historyID, patch); err != nil {
		return err
	}
	return e.Load(ctx)
}

// RequestDelete opens the confirmation step for a snapshot
func (e *HistoryEditor) RequestDelete(historyID string) {
	e.pendingID = historyID
}

// CancelDelete dismisses the confirmation without deleting
func (e *HistoryEditor) CancelDelete() {
	e.pendingID = ""
}

// ConfirmDelete issues the destructive call for the pending snapshot,
// then refetches. A 404 is tolerated and reconciled by the refetch.
func (e *HistoryEditor) ConfirmDelete(ctx context.Context) error {
	if e.pendingID == "" {
		return ErrNoPendingDelete
	}
	historyID := e.pendingID
	e.pendingID = ""

	if err := e.service.Delete(ctx, e.memberID, historyID); err != nil && !types.IsNotFound(err) {
		return err
	}
	return e.Load(ctx)
}
