package collectionmock

import (
	"context"
	"errors"

	"lis-dashboard/internal/store"
)

var errUnimplemented = errors.New("collectionmock: method not implemented")

// Collection is a function-backed mock that satisfies store.Collection[T].
// Reads default to errUnimplemented; writes default to a no-op.
type Collection[T any] struct {
	ListFn    func(ctx context.Context, page store.Page, where ...store.Criterion) ([]T, error)
	SearchFn  func(ctx context.Context, columns []string, phrase string, limit int) ([]T, error)
	GetFn     func(ctx context.Context, key string) (*T, error)
	InsertFn  func(ctx context.Context, item *T) error
	ReplaceFn func(ctx context.Context, key string, item *T) error
	DeleteFn  func(ctx context.Context, key string) error
	ExistsFn  func(ctx context.Context, column, value string) (bool, error)
}

var _ store.Collection[struct{}] = (*Collection[struct{}])(nil)

func (m *Collection[T]) List(ctx context.Context, page store.Page, where ...store.Criterion) ([]T, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, where...)
	}
	return nil, errUnimplemented
}

func (m *Collection[T]) Search(ctx context.Context, columns []string, phrase string, limit int) ([]T, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, columns, phrase, limit)
	}
	return nil, errUnimplemented
}

func (m *Collection[T]) Get(ctx context.Context, key string) (*T, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	return nil, errUnimplemented
}

func (m *Collection[T]) Insert(ctx context.Context, item *T) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, item)
	}
	return nil
}

func (m *Collection[T]) Replace(ctx context.Context, key string, item *T) error {
	if m.ReplaceFn != nil {
		return m.ReplaceFn(ctx, key, item)
	}
	return nil
}

func (m *Collection[T]) Delete(ctx context.Context, key string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, key)
	}
	return nil
}

func (m *Collection[T]) Exists(ctx context.Context, column, value string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, column, value)
	}
	return false, errUnimplemented
}
