package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// notificationStub records mark calls without any server-side state
type notificationStub struct {
	items        []types.Notification
	markedIDs    []string
	markAllCalls int
	markErr      error
}

func (s *notificationStub) List(ctx context.Context) ([]types.Notification, error) {
	return append([]types.Notification(nil), s.items...), nil
}

func (s *notificationStub) MarkRead(ctx context.Context, id string) error {
	if s.markErr != nil {
		return s.markErr
	}
	s.markedIDs = append(s.markedIDs, id)
	return nil
}

func (s *notificationStub) MarkAllRead(ctx context.Context) error {
	s.markAllCalls++
	return nil
}

func newTestPoller(t *testing.T, stub *notificationStub) *Poller {
	t.Helper()
	poller := NewPoller(stub, logger.New("debug"))
	require.NoError(t, poller.Start(context.Background()))
	return poller
}

func TestPoller_UnreadCount(t *testing.T) {
	poller := newTestPoller(t, &notificationStub{items: []types.Notification{
		{ID: "n1", Title: "New appointment"},
		{ID: "n2", Title: "Report ready", IsRead: true},
		{ID: "n3", Title: "Plan expiring"},
	}})

	assert.Equal(t, 2, poller.UnreadCount())
	assert.Len(t, poller.Items(), 3)
}

func TestPoller_MarkReadFlipsOneItem(t *testing.T) {
	stub := &notificationStub{items: []types.Notification{
		{ID: "n1"},
		{ID: "n2"},
	}}
	poller := newTestPoller(t, stub)

	require.NoError(t, poller.MarkRead(context.Background(), "n1"))

	assert.Equal(t, []string{"n1"}, stub.markedIDs)
	assert.Equal(t, 1, poller.UnreadCount())
	items := poller.Items()
	assert.True(t, items[0].IsRead)
	assert.False(t, items[1].IsRead)
}

func TestPoller_MarkReadMissingOrReadIsNoOp(t *testing.T) {
	stub := &notificationStub{items: []types.Notification{
		{ID: "n1", IsRead: true},
	}}
	poller := newTestPoller(t, stub)

	require.NoError(t, poller.MarkRead(context.Background(), "ghost"))
	require.NoError(t, poller.MarkRead(context.Background(), "n1"))
	assert.Empty(t, stub.markedIDs, "no server call for missing or already-read items")
}

func TestPoller_MarkAllReadUsesOneBulkCall(t *testing.T) {
	stub := &notificationStub{items: []types.Notification{
		{ID: "n1"}, {ID: "n2"}, {ID: "n3"},
	}}
	poller := newTestPoller(t, stub)

	require.NoError(t, poller.MarkAllRead(context.Background()))

	assert.Equal(t, 1, stub.markAllCalls)
	assert.Empty(t, stub.markedIDs, "bulk mark must not issue per-item calls")
	assert.Zero(t, poller.UnreadCount())

	// Marking an individual item after the bulk pass stays quiet.
	require.NoError(t, poller.MarkRead(context.Background(), "n2"))
	assert.Empty(t, stub.markedIDs)
}

func TestPoller_OpenMarksReadBeforeReturningURL(t *testing.T) {
	stub := &notificationStub{items: []types.Notification{
		{ID: "n1", ActionURL: "/appointments/apt-9"},
	}}
	poller := newTestPoller(t, stub)

	url, err := poller.Open(context.Background(), "n1")

	require.NoError(t, err)
	assert.Equal(t, "/appointments/apt-9", url)
	assert.Equal(t, []string{"n1"}, stub.markedIDs)
	assert.Zero(t, poller.UnreadCount())
}

func TestPoller_OpenUnknownIDReturnsEmpty(t *testing.T) {
	stub := &notificationStub{}
	poller := newTestPoller(t, stub)

	url, err := poller.Open(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Empty(t, url)
	assert.Empty(t, stub.markedIDs)
}

func TestPoller_OpenFailedMarkWithholdsURL(t *testing.T) {
	stub := &notificationStub{
		items:   []types.Notification{{ID: "n1", ActionURL: "/members/m-1"}},
		markErr: types.NewServerError(500, "upstream unavailable"),
	}
	poller := newTestPoller(t, stub)

	url, err := poller.Open(context.Background(), "n1")

	require.Error(t, err)
	assert.Empty(t, url, "navigation waits for the read-state update")
}
