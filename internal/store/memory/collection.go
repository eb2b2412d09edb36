package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"lis-dashboard/internal/store"
)

// Collection keeps records in insertion order. Soft deleted rows stay
// in place, so their identities are never reused.
type Collection[T any] struct {
	mu     sync.RWMutex
	schema store.Schema[T]
	items  []T
	now    func() time.Time
}

var _ store.Collection[struct{}] = (*Collection[struct{}])(nil)

func NewCollection[T any](schema store.Schema[T], seed ...T) *Collection[T] {
	c := &Collection[T]{schema: schema, now: time.Now}
	c.Load(seed)
	return c
}

// Load replaces the contents with a copy of items.
func (c *Collection[T]) Load(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(make([]T, 0, len(items)), items...)
}

// Len counts live records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for i := range c.items {
		if c.live(i) {
			n++
		}
	}
	return n
}

func (c *Collection[T]) List(ctx context.Context, page store.Page, where ...store.Criterion) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for i := range c.items {
		if c.live(i) && c.schema.Matches(&c.items[i], where) {
			out = append(out, c.items[i])
		}
	}
	return store.Window(out, page), nil
}

func (c *Collection[T]) Search(ctx context.Context, columns []string, phrase string, limit int) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	phrase = strings.ToLower(phrase)
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, limit)
	for i := range c.items {
		if len(out) >= limit {
			break
		}
		if c.live(i) && c.schema.Hit(&c.items[i], columns, phrase) {
			out = append(out, c.items[i])
		}
	}
	return out, nil
}

func (c *Collection[T]) Get(ctx context.Context, key string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.find(key)
	if i < 0 {
		return nil, store.NotFound(c.schema.Label)
	}
	item := c.items[i]
	return &item, nil
}

func (c *Collection[T]) Insert(ctx context.Context, item *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.schema.Identity == store.SequenceKey {
		if err := c.schema.SetKey(item, strconv.FormatInt(c.nextSeq(), 10)); err != nil {
			return err
		}
	}
	if c.indexOf(c.schema.Key(item)) >= 0 {
		return store.Conflictf("%s %s already exists", c.schema.Label, c.schema.Key(item))
	}
	c.items = append(c.items, *item)
	return nil
}

func (c *Collection[T]) Replace(ctx context.Context, key string, item *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.find(key)
	if i < 0 {
		return store.NotFound(c.schema.Label)
	}
	c.items[i] = *item
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.find(key)
	if i < 0 {
		return store.NotFound(c.schema.Label)
	}
	if c.schema.SoftDelete != nil {
		*c.schema.SoftDelete(&c.items[i]) = gorm.DeletedAt{Time: c.now().UTC(), Valid: true}
		return nil
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	return nil
}

func (c *Collection[T]) Exists(ctx context.Context, column, value string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if c.live(i) && c.schema.Value(&c.items[i], column) == value {
			return true, nil
		}
	}
	return false, nil
}

func (c *Collection[T]) live(i int) bool { return !c.schema.Deleted(&c.items[i]) }

// find locates a live record; indexOf also sees deleted ones.
func (c *Collection[T]) find(key string) int {
	i := c.indexOf(key)
	if i >= 0 && !c.live(i) {
		return -1
	}
	return i
}

func (c *Collection[T]) indexOf(key string) int {
	for i := range c.items {
		if c.schema.Key(&c.items[i]) == key {
			return i
		}
	}
	return -1
}

// nextSeq is max(existing)+1, or 1 for an empty collection.
func (c *Collection[T]) nextSeq() int64 {
	var max int64
	for i := range c.items {
		n, err := strconv.ParseInt(c.schema.Key(&c.items[i]), 10, 64)
		if err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

func (c *Collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(make([]T, 0, len(c.items)), c.items...)
}
