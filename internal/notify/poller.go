package notify

import (
	"context"
	"sync"

	"github.com/carebridge/navigator-console/pkg/interfaces"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// Poller is the notification widget controller. It fetches the
// unread-first list once per Start and keeps a local copy that is
// flipped optimistically on mark-read, an accepted
// eventual-consistency tradeoff to avoid a refetch per click.
type Poller struct {
	service interfaces.NotificationService
	logger  *logger.Logger

	mu    sync.Mutex
	items []types.Notification
}

// NewPoller creates a notification poller
func NewPoller(service interfaces.NotificationService, log *logger.Logger) *Poller {
	return &Poller{
		service: service,
		logger:  log,
	}
}

// Start fetches the notification list once
func (p *Poller) Start(ctx context.Context) error {
	items, err := p.service.List(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.items = items
	p.mu.Unlock()
	return nil
}

// Items returns the current local notification list
func (p *Poller) Items() []types.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := make([]types.Notification, len(p.items))
	copy(items, p.items)
	return items
}

// UnreadCount returns the number of locally unread notifications
func (p *Poller) UnreadCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	count := 0
	for _, item := range p.items {
		if !item.IsRead {
			count++
		}
	}
	return count
}

// MarkRead marks one notification read on the server, then flips only
// that item's local flag. An id that no longer exists locally is a
// no-op.
func (p *Poller) MarkRead(ctx context.Context, id string) error {
	p.mu.Lock()
	index := p.indexOfLocked(id)
	alreadyRead := index >= 0 && p.items[index].IsRead
	p.mu.Unlock()

	if index < 0 || alreadyRead {
		return nil
	}

	if err := p.service.MarkRead(ctx, id); err != nil {
		return err
	}

	p.mu.Lock()
	if index := p.indexOfLocked(id); index >= 0 {
		p.items[index].IsRead = true
	}
	p.mu.Unlock()
	return nil
}

// MarkAllRead marks everything read in one bulk server call, then flips
// every local flag, avoiding N sequential requests
func (p *Poller) MarkAllRead(ctx context.Context) error {
	if err := p.service.MarkAllRead(ctx); err != nil {
		return err
	}

	p.mu.Lock()
	for i := range p.items {
		p.items[i].IsRead = true
	}
	p.mu.Unlock()
	return nil
}

// Open marks the notification read and returns its action URL for
// navigation. The read-state update is awaited BEFORE the URL is
// handed back, so navigating away cannot race the update into the
// void.
func (p *Poller) Open(ctx context.Context, id string) (actionURL string, err error) {
	p.mu.Lock()
	index := p.indexOfLocked(id)
	if index >= 0 {
		actionURL = p.items[index].ActionURL
	}
	p.mu.Unlock()

	if index < 0 {
		return "", nil
	}

	if err := p.MarkRead(ctx, id); err != nil {
		return "", err
	}
	return actionURL, nil
}

// indexOfLocked finds a notification by id; callers must hold the lock
func (p *Poller) indexOfLocked(id string) int {
	for i := range p.items {
		if p.items[i].ID == id {
			return i
		}
	}
	return -1
}
