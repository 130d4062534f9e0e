package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/salonova/booking-client/internal/core/ports"
	"github.com/salonova/booking-client/internal/pkg/metrics"
)

// MutationGuard suppresses a second identical mutation while the first is
// still in flight. Cross-process idempotence remains the server's job.
type MutationGuard interface {
	// Begin registers key as in flight; it returns false when the same key
	// is already outstanding.
	Begin(key string) bool
	End(key string)
}

// controller is the fetch-mutate-refetch pattern shared by all resource
// collections. The visible collection is only ever wholesale-replaced from
// a successful fetch; a failed mutation leaves it untouched. A failed fetch
// keeps the last-known collection available alongside the error message.
type controller[T any] struct {
	mu      sync.Mutex
	items   []T
	loading bool
	errMsg  string

	resource string
	list     func(ctx context.Context) ([]T, error)
	guard    MutationGuard
	notifier ports.Notifier
	log      zerolog.Logger
}

func newController[T any](
	resource string,
	list func(ctx context.Context) ([]T, error),
	guard MutationGuard,
	notifier ports.Notifier,
	log zerolog.Logger,
) controller[T] {
	return controller[T]{
		resource: resource,
		list:     list,
		guard:    guard,
		notifier: notifier,
		log:      log.With().Str("resource", resource).Logger(),
	}
}

// FetchAll reloads the collection from the server. On failure the last
// fetched collection stays visible and the error is kept in controller
// state so the caller can offer a retry.
func (c *controller[T]) FetchAll(ctx context.Context) {
	c.setLoading(true)
	items, err := c.list(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.errMsg = err.Error()
		metrics.FetchesTotal.WithLabelValues(c.resource, "error").Inc()
		c.log.Warn().Err(err).Msg("fetch failed, keeping stale collection")
		c.notifier.Error("Failed to fetch " + c.resource + ": " + err.Error())
		return
	}

	c.items = items
	c.errMsg = ""
	metrics.FetchesTotal.WithLabelValues(c.resource, "ok").Inc()
}

// Items returns a copy of the last successfully fetched collection, in
// server order.
func (c *controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loading reports whether a fetch is in progress.
func (c *controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the last fetch error message, or "" after a successful fetch.
func (c *controller[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

func (c *controller[T]) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// mutate performs a gateway mutation and, only on success, refetches the
// whole collection before reporting the outcome. Failures never escape as
// panics: they become a false return plus exactly one error notification.
func (c *controller[T]) mutate(ctx context.Context, op, id, successMsg, failMsg string, call func(context.Context) error) bool {
	key := c.resource + ":" + op + ":" + id
	if !c.guard.Begin(key) {
		metrics.DedupTotal.WithLabelValues("hit").Inc()
		c.log.Debug().Str("op", op).Str("id", id).Msg("identical mutation already in flight, suppressed")
		return false
	}
	defer c.guard.End(key)
	metrics.DedupTotal.WithLabelValues("miss").Inc()

	if err := call(ctx); err != nil {
		metrics.MutationsTotal.WithLabelValues(c.resource, op, "error").Inc()
		c.log.Warn().Err(err).Str("op", op).Str("id", id).Msg("mutation failed")
		c.notifier.Error(failMsg + ": " + err.Error())
		return false
	}

	metrics.MutationsTotal.WithLabelValues(c.resource, op, "ok").Inc()
	c.FetchAll(ctx)
	c.notifier.Success(successMsg)
	return true
}
