package listview

import (
	"context"
	"errors"
	"sync"

	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// State is the list screen lifecycle state
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// FetchParams is the flat parameter set handed to a screen's fetcher.
// Filters holds only keys with meaningful values; empty-string and
// false values never appear.
type FetchParams struct {
	Page    int
	Limit   int
	Search  string
	Filters map[string]string
}

// Fetcher loads one page of rows for a screen
type Fetcher[T any] func(ctx context.Context, params FetchParams) (*types.Result[[]T], error)

// Snapshot is an immutable view of the controller state, delivered to
// the listener on every transition
type Snapshot[T any] struct {
	State      State
	Items      []T
	Pagination *types.Pagination
	Err        error
}

// Controller owns the search term, filter map, page number and fetch
// lifecycle for one list screen. Only the newest in-flight fetch is
// authoritative: older responses are cancelled or discarded, so the
// visible list can never flicker back to stale data.
type Controller[T any] struct {
	fetcher  Fetcher[T]
	logger   *logger.Logger
	screen   string
	pageSize int
	listener func(Snapshot[T])

	mu         sync.Mutex
	page       int
	search     string
	filters    map[string]string
	state      State
	items      []T
	pagination *types.Pagination
	err        error
	seq        uint64
	cancelPrev context.CancelFunc
	closed     bool
	wg         sync.WaitGroup
}

// NewController creates a controller for one list screen
func NewController[T any](screen string, pageSize int, fetcher Fetcher[T], log *logger.Logger) *Controller[T] {
	return &Controller[T]{
		fetcher:  fetcher,
		logger:   log,
		screen:   screen,
		pageSize: pageSize,
		page:     1,
		filters:  make(map[string]string),
		state:    StateIdle,
	}
}

// SetListener registers the snapshot callback. Must be called before
// the first fetch.
func (c *Controller[T]) SetListener(listener func(Snapshot[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = listener
}

// Snapshot returns the current state
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Search replaces the search term, resets to the first page, and
// refetches
func (c *Controller[T]) Search(term string) {
	c.mu.Lock()
	c.search = term
	c.page = 1
	c.mu.Unlock()
	c.Refresh()
}

// SetFilter sets one filter key. An empty value means "no filter" and
// removes the key so it is never sent as an empty-string match.
func (c *Controller[T]) SetFilter(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" || value == "false" {
		delete(c.filters, key)
		return
	}
	c.filters[key] = value
}

// ApplyFilters resets to the first page and refetches with the current
// filter map
func (c *Controller[T]) ApplyFilters() {
	c.mu.Lock()
	c.page = 1
	c.mu.Unlock()
	c.Refresh()
}

// ClearFilters drops every filter, resets to the first page, and
// refetches
func (c *Controller[T]) ClearFilters() {
	c.mu.Lock()
	c.filters = make(map[string]string)
	c.page = 1
	c.mu.Unlock()
	c.Refresh()
}

// SetPage moves to the given page and refetches
func (c *Controller[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	c.Refresh()
}

// Refresh issues a fetch with the current parameters. Any in-flight
// fetch is cancelled and its late response discarded.
func (c *Controller[T]) Refresh() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	if c.cancelPrev != nil {
		c.cancelPrev()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancelPrev = cancel
	c.seq++
	seq := c.seq

	params := FetchParams{
		Page:    c.page,
		Limit:   c.pageSize,
		Search:  c.search,
		Filters: copyFilters(c.filters),
	}

	c.state = StateLoading
	c.err = nil
	notify := c.notifierLocked()
	c.mu.Unlock()
	notify()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()

		result, err := c.fetcher(ctx, params)
		c.apply(seq, result, err)
	}()
}

// Close disposes the controller. Pending fetches are cancelled and can
// no longer apply results.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.closed = true
	if c.cancelPrev != nil {
		c.cancelPrev()
		c.cancelPrev = nil
	}
	c.mu.Unlock()
	c.wg.Wait()
}

// apply installs a fetch outcome, unless a newer fetch superseded it or
// the controller was closed in the meantime
func (c *Controller[T]) apply(seq uint64, result *types.Result[[]T], err error) {
	c.mu.Lock()

	if c.closed || seq != c.seq {
		c.logger.WithScreen(c.screen).Debug("Discarding stale fetch result")
		c.mu.Unlock()
		return
	}

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.mu.Unlock()
			return
		}
		c.state = StateError
		c.err = err
	} else {
		c.state = StateSuccess
		c.items = result.Data
		c.pagination = result.Pagination
		c.err = nil
	}

	notify := c.notifierLocked()
	c.mu.Unlock()
	notify()
}

// snapshotLocked builds a snapshot; callers must hold the lock
func (c *Controller[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{
		State:      c.state,
		Items:      c.items,
		Pagination: c.pagination,
		Err:        c.err,
	}
}

// notifierLocked captures the listener and current snapshot while the
// lock is held, returning the delivery call to run after release. The
// listener therefore runs without the lock and may re-enter the
// controller.
func (c *Controller[T]) notifierLocked() func() {
	listener := c.listener
	if listener == nil {
		return func() {}
	}
	snapshot := c.snapshotLocked()
	return func() { listener(snapshot) }
}

// copyFilters returns a defensive copy of the filter map
func copyFilters(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
