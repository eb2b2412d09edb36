package uowmock

import (
	"context"
	"errors"

	"lis-dashboard/internal/store"
)

// Ensure compile-time compliance
var _ store.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies store.UnitOfWork.
// Fill in WithinTxFn, or use Passthrough; unfilled it returns errUnimplemented.
type UoW struct {
	WithinTxFn func(ctx context.Context, fn func(c store.Collections) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) WithWithinTx(fn func(context.Context, func(store.Collections) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}

// Passthrough runs every transaction body directly against c.
func Passthrough(c store.Collections) *UoW {
	return New().WithWithinTx(func(_ context.Context, fn func(store.Collections) error) error {
		return fn(c)
	})
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(c store.Collections) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
