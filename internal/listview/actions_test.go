package listview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/navigator-console/pkg/types"
)

func TestRowDeleter_ConfirmRequired(t *testing.T) {
	calls := 0
	deleter := NewRowDeleter("Row not found", func(ctx context.Context, id string) error {
		calls++
		return nil
	})

	_, _, err := deleter.ConfirmDelete(context.Background())
	assert.ErrorIs(t, err, ErrNoPendingDelete)
	assert.Zero(t, calls, "destructive call must wait for confirmation")

	deleter.RequestDelete("m1")
	assert.Equal(t, "m1", deleter.PendingID())

	deleter.CancelDelete()
	assert.Empty(t, deleter.PendingID())

	_, _, err = deleter.ConfirmDelete(context.Background())
	assert.ErrorIs(t, err, ErrNoPendingDelete)
	assert.Zero(t, calls, "cancel must drop the pending row")
}

func TestRowDeleter_ConfirmIssuesDelete(t *testing.T) {
	var gotID string
	deleter := NewRowDeleter("Row not found", func(ctx context.Context, id string) error {
		gotID = id
		return nil
	})

	deleter.RequestDelete("m1")
	removed, message, err := deleter.ConfirmDelete(context.Background())

	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, message)
	assert.Equal(t, "m1", gotID)
	assert.Empty(t, deleter.PendingID())
}

func TestRowDeleter_NotFoundStillRemovesRow(t *testing.T) {
	notFoundMsg := "Student not found. They may have already been deleted."
	deleter := NewRowDeleter(notFoundMsg, func(ctx context.Context, id string) error {
		return types.NewNotFoundError("Student not found")
	})

	deleter.RequestDelete("st-1")
	removed, message, err := deleter.ConfirmDelete(context.Background())

	require.NoError(t, err)
	assert.True(t, removed, "row deleted elsewhere should still leave the list")
	assert.Equal(t, notFoundMsg, message)
}

func TestRowDeleter_OtherErrorsKeepRow(t *testing.T) {
	serverErr := types.NewServerError(500, "upstream unavailable")
	deleter := NewRowDeleter("Row not found", func(ctx context.Context, id string) error {
		return serverErr
	})

	deleter.RequestDelete("m1")
	removed, message, err := deleter.ConfirmDelete(context.Background())

	assert.Equal(t, serverErr, err)
	assert.False(t, removed)
	assert.Empty(t, message)
}
