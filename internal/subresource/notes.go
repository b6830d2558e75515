package subresource

import (
	"context"
	"errors"

	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// ErrNoPendingDelete is returned when ConfirmDelete fires without a
// prior RequestDelete
var ErrNoPendingDelete = errors.New("no delete pending confirmation")

// NotesAPI is the slice of the members service the notes editor needs
type NotesAPI interface {
	ListNotes(ctx context.Context, memberID string) ([]types.Note, error)
	CreateNote(ctx context.Context, memberID string, content string) (*types.Note, error)
	UpdateNote(ctx context.Context, memberID, noteID string, content string) (*types.Note, error)
	DeleteNote(ctx context.Context, memberID, noteID string) error
}

// NotesEditor manages the notes child collection of exactly one member.
// Every mutation is followed by a full refetch so the displayed list
// always matches server state.
type NotesEditor struct {
	service  NotesAPI
	logger   *logger.Logger
	memberID string

	notes     []types.Note
	pendingID string
}

// NewNotesEditor creates a notes editor scoped to one member
func NewNotesEditor(service NotesAPI, memberID string, log *logger.Logger) *NotesEditor {
	return &NotesEditor{
		service:  service,
		logger:   log,
		memberID: memberID,
	}
}

// Notes returns the currently loaded notes
func (e *NotesEditor) Notes() []types.Note {
	return e.notes
}

// Load refetches the member's notes
func (e *NotesEditor) Load(ctx context.Context) error {
	notes, err := e.service.ListNotes(ctx, e.memberID)
	if err != nil {
		return err
	}
	e.notes = notes
	return nil
}

// Add creates a note, then refetches the collection
func (e *NotesEditor) Add(ctx context.Context, content string) error {
	if content == "" {
		return types.NewValidationError(0, "Note content is required.", nil)
	}
	if _, err := e.service.CreateNote(ctx, e.memberID, content); err != nil {
		return err
	}
	return e.Load(ctx)
}

// Edit updates a note, then refetches the collection
func (e *NotesEditor) Edit(ctx context.Context, noteID, content string) error {
	if content == "" {
		return types.NewValidationError(0, "Note content is required.", nil)
	}
	if _, err := e.service.UpdateNote(ctx, e.memberID, noteID, content); err != nil {
		return err
	}
	return e.Load(ctx)
}

// RequestDelete opens the confirmation step for a note
func (e *NotesEditor) RequestDelete(noteID string) {
	e.pendingID = noteID
}

// CancelDelete dismisses the confirmation without deleting
func (e *NotesEditor) CancelDelete() {
	e.pendingID = ""
}

// ConfirmDelete issues the destructive call for the pending note, then
// refetches. A 404 is tolerated: the note was already removed, so the
// refetch alone reconciles the list.
func (e *NotesEditor) ConfirmDelete(ctx context.Context) error {
	if e.pendingID == "" {
		return ErrNoPendingDelete
	}
	noteID := e.pendingID
	e.pendingID = ""

	if err := e.service.DeleteNote(ctx, e.memberID, noteID); err != nil && !types.IsNotFound(err) {
		return err
	}
	return e.Load(ctx)
}
