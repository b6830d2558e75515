package listview

import (
	"context"
	"errors"

	"github.com/carebridge/navigator-console/pkg/types"
)

// ErrNoPendingDelete is returned when ConfirmDelete fires without a
// prior RequestDelete
var ErrNoPendingDelete = errors.New("no delete pending confirmation")

// RowDeleter drives the confirm-then-delete flow for a list screen's
// row action. The destructive call is never issued without an explicit
// confirmation step.
type RowDeleter struct {
	deleteFn    func(ctx context.Context, id string) error
	notFoundMsg string
	pendingID   string
}

// NewRowDeleter creates a row deleter. notFoundMsg is the
// screen-specific "already removed" wording shown when the row was
// deleted elsewhere first.
func NewRowDeleter(notFoundMsg string, deleteFn func(ctx context.Context, id string) error) *RowDeleter {
	return &RowDeleter{
		deleteFn:    deleteFn,
		notFoundMsg: notFoundMsg,
	}
}

// RequestDelete records the row awaiting confirmation and opens the
// confirm dialog
func (d *RowDeleter) RequestDelete(id string) {
	d.pendingID = id
}

// PendingID returns the row awaiting confirmation, empty when none
func (d *RowDeleter) PendingID() string {
	return d.pendingID
}

// CancelDelete dismisses the confirmation without deleting
func (d *RowDeleter) CancelDelete() {
	d.pendingID = ""
}

// ConfirmDelete issues the destructive call for the pending row. A 404
// means the row was already deleted elsewhere: the screen still removes
// the row and shows the specific "already removed" message instead of a
// generic failure. removed reports whether the row should leave the
// local list.
func (d *RowDeleter) ConfirmDelete(ctx context.Context) (removed bool, message string, err error) {
	if d.pendingID == "" {
		return false, "", ErrNoPendingDelete
	}
	id := d.pendingID
	d.pendingID = ""

	if err := d.deleteFn(ctx, id); err != nil {
		if types.IsNotFound(err) {
			return true, d.notFoundMsg, nil
		}
		return false, "", err
	}
	return true, "", nil
}
