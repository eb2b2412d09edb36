package resource

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"lis-dashboard/pkg/jsonx"
)

// ErrStale is returned by Load when a newer Load replaced it; its
// result was discarded.
var ErrStale = errors.New("resource: superseded by a newer load")

type ListState[T any] struct {
	Items        []T
	Loading      bool
	Error        string
	Applied      map[string]string
	Pending      map[string]string
	FiltersOpen  bool
	DeleteTarget *T
	Busy         map[string]bool
}

// List tracks one list page: items, filters, delete confirmation and
// per-row busy flags. Safe for concurrent use.
type List[T any] struct {
	mu  sync.Mutex
	cfg Config[T]
	req Requester

	scope   map[string]string
	items   []T
	loading bool
	err     string
	applied map[string]string
	pending map[string]string
	open    bool
	target  *T
	busy    map[string]bool

	gen    uint64
	cancel context.CancelFunc
}

type ListOption[T any] func(*List[T])

// WithScope pins a query parameter on every load; filters cannot
// override it.
func WithScope[T any](param, value string) ListOption[T] {
	return func(l *List[T]) { l.scope[param] = value }
}

func NewList[T any](cfg Config[T], req Requester, opts ...ListOption[T]) *List[T] {
	l := &List[T]{
		cfg:     cfg,
		req:     req,
		scope:   map[string]string{},
		items:   []T{},
		applied: map[string]string{},
		pending: map[string]string{},
		busy:    map[string]bool{},
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *List[T]) Config() Config[T] { return l.cfg }

// Load fetches with the applied filters. A newer Load cancels this one
// and its late result is dropped with ErrStale.
func (l *List[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.loading = true
	l.err = ""
	path := l.cfg.Path + l.queryLocked()
	l.mu.Unlock()
	defer cancel()

	var raw jsonx.RawMessage
	err := l.req.Do(ctx, http.MethodGet, path, nil, &raw)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return ErrStale
	}
	l.cancel = nil
	l.loading = false
	if err != nil {
		l.err = err.Error()
		return err
	}
	items := []T{}
	if jsonx.IsArray(raw) {
		if err := jsonx.Unmarshal(raw, &items); err != nil {
			l.err = err.Error()
			return err
		}
	}
	l.items = items
	return nil
}

func (l *List[T]) queryLocked() string {
	q := url.Values{}
	for k, v := range l.applied {
		if strings.TrimSpace(v) != "" {
			q.Set(k, v)
		}
	}
	for k, v := range l.scope {
		q.Set(k, v)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// OpenFilters shows the popover seeded with the applied values.
func (l *List[T]) OpenFilters() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = clone(l.applied)
	l.open = true
}

// SetPendingFilter edits the popover without refetching.
func (l *List[T]) SetPendingFilter(param, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending[param] = value
}

// ApplyFilters commits the pending values, closes the popover and
// refetches.
func (l *List[T]) ApplyFilters(ctx context.Context) error {
	l.mu.Lock()
	l.applied = map[string]string{}
	for k, v := range l.pending {
		if v = strings.TrimSpace(v); v != "" {
			l.applied[k] = v
		}
	}
	l.pending = clone(l.applied)
	l.open = false
	l.mu.Unlock()
	return l.Load(ctx)
}

// ClearFilters resets applied and pending values and refetches.
func (l *List[T]) ClearFilters(ctx context.Context) error {
	l.mu.Lock()
	l.applied = map[string]string{}
	l.pending = map[string]string{}
	l.mu.Unlock()
	return l.Load(ctx)
}

// DismissFilters closes the popover without applying.
func (l *List[T]) DismissFilters() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.open = false
	l.pending = clone(l.applied)
}

func (l *List[T]) RequestDelete(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.target = &item
}

func (l *List[T]) CancelDelete() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.target = nil
}

// ConfirmDelete deletes the pending target. The dialog closes only on
// success; a failure sets the error banner and keeps the list as is.
func (l *List[T]) ConfirmDelete(ctx context.Context) error {
	l.mu.Lock()
	if l.target == nil {
		l.mu.Unlock()
		return nil
	}
	target := *l.target
	key := l.cfg.Key(&target)
	if l.busy[key] {
		l.mu.Unlock()
		return ErrBusy
	}
	l.busy[key] = true
	l.err = ""
	l.mu.Unlock()

	err := l.req.Do(ctx, http.MethodDelete, l.cfg.ItemPath(&target), nil, nil)

	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.busy, key)
	if err != nil {
		l.err = err.Error()
		return err
	}
	l.removeLocked(key)
	l.target = nil
	return nil
}

// Replace swaps the row with the same identity.
func (l *List[T]) Replace(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := l.cfg.Key(&item)
	for i := range l.items {
		if l.cfg.Key(&l.items[i]) == key {
			l.items[i] = item
			return
		}
	}
}

func (l *List[T]) Append(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, item)
}

func (l *List[T]) Remove(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.removeLocked(key)
}

func (l *List[T]) removeLocked(key string) {
	out := l.items[:0:0]
	for i := range l.items {
		if l.cfg.Key(&l.items[i]) != key {
			out = append(out, l.items[i])
		}
	}
	l.items = out
}

func (l *List[T]) SetError(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = msg
}

// TryBusy marks key busy, reporting false when it already was.
func (l *List[T]) TryBusy(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.busy[key] {
		return false
	}
	l.busy[key] = true
	return true
}

func (l *List[T]) Done(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.busy, key)
}

func (l *List[T]) IsBusy(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busy[key]
}

// Find returns a copy of the row with key.
func (l *List[T]) Find(key string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.cfg.Key(&l.items[i]) == key {
			return l.items[i], true
		}
	}
	var zero T
	return zero, false
}

// State returns a snapshot; mutating it does not affect the list.
func (l *List[T]) State() ListState[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	st := ListState[T]{
		Items:       append([]T{}, l.items...),
		Loading:     l.loading,
		Error:       l.err,
		Applied:     clone(l.applied),
		Pending:     clone(l.pending),
		FiltersOpen: l.open,
		Busy:        map[string]bool{},
	}
	for k, v := range l.busy {
		st.Busy[k] = v
	}
	if l.target != nil {
		t := *l.target
		st.DeleteTarget = &t
	}
	return st
}

// Keys lists the identities of the current rows in order.
func (l *List[T]) Keys() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.items))
	for i := range l.items {
		out = append(out, l.cfg.Key(&l.items[i]))
	}
	return out
}

func clone(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
