package backend

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"lis-dashboard/internal/domain/approval"
	"lis-dashboard/internal/store"
	"lis-dashboard/internal/validation"
)

// entity serves the list/get/create/replace/patch/delete contract for
// one record type.
type entity[T any] struct {
	schema store.Schema[T]
	pick   func(store.Collections) store.Collection[T]
}

func (e entity[T]) serve(ctx context.Context, rt *Router, req request) (any, error) {
	if len(req.Rest) > 1 {
		return nil, errNoRoute
	}
	key, err := e.key(req.ID())
	if err != nil {
		return nil, err
	}
	mutable := !e.schema.ReadOnly

	switch {
	case req.Method == http.MethodGet && key == "":
		return e.list(ctx, rt, req)
	case req.Method == http.MethodGet:
		return e.get(ctx, rt, key)
	case req.Method == http.MethodPost && key == "" && mutable:
		return e.create(ctx, rt, req.Body)
	case req.Method == http.MethodPut && key != "" && mutable:
		return e.replace(ctx, rt, key, req.Body)
	case req.Method == http.MethodPatch && key != "" && e.schema.Approval != nil:
		return e.decide(ctx, rt, key, req.Body)
	case req.Method == http.MethodDelete && key != "" && mutable:
		return nil, e.remove(ctx, rt, key)
	}
	return nil, errNoRoute
}

// key normalizes numeric identities so "007" finds record 7.
func (e entity[T]) key(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if e.schema.ParseKey != nil {
		return e.schema.ParseKey(raw)
	}
	if e.schema.Identity != store.SequenceKey {
		return raw, nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return strconv.FormatInt(n, 10), nil
	}
	return raw, nil
}

func (e entity[T]) list(ctx context.Context, rt *Router, req request) ([]T, error) {
	page, err := e.schema.Page(req.Query)
	if err != nil {
		return nil, err
	}
	var out []T
	err = rt.uow.WithinTx(ctx, func(c store.Collections) error {
		var err error
		out, err = e.pick(c).List(ctx, page, e.schema.Criteria(req.Query)...)
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (e entity[T]) get(ctx context.Context, rt *Router, key string) (*T, error) {
	var out *T
	err := rt.uow.WithinTx(ctx, func(c store.Collections) error {
		var err error
		out, err = e.pick(c).Get(ctx, key)
		return err
	})
	return out, err
}

func (e entity[T]) create(ctx context.Context, rt *Router, body []byte) (*T, error) {
	item := new(T)
	if err := decode(body, item); err != nil {
		return nil, err
	}
	now := rt.now()

	switch e.schema.Identity {
	case store.ClientKey:
		k := strings.TrimSpace(e.schema.Key(item))
		if k == "" && e.schema.GenerateKey != nil {
			k = e.schema.GenerateKey(now)
		}
		if err := e.schema.SetKey(item, k); err != nil {
			return nil, err
		}
	case store.UUIDKey:
		if err := e.schema.SetKey(item, rt.newID()); err != nil {
			return nil, err
		}
	case store.SequenceKey:
		// assigned by the collection
		if err := e.schema.SetKey(item, ""); err != nil {
			return nil, err
		}
	}
	if e.schema.Approval != nil {
		e.schema.Approval(item).Reset()
	}
	if e.schema.Touch != nil {
		e.schema.Touch(item, now, true)
	}
	if err := rt.check(item); err != nil {
		return nil, err
	}

	err := rt.uow.WithinTx(ctx, func(c store.Collections) error {
		return e.pick(c).Insert(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	rt.log.Debug().Str("resource", e.schema.Resource).Str("key", e.schema.Key(item)).Msg("record created")
	return item, nil
}

// replace merges body over the stored record. Identity and the review
// lifecycle are never taken from the body.
func (e entity[T]) replace(ctx context.Context, rt *Router, key string, body []byte) (*T, error) {
	if e.schema.KeyChange != "" {
		in := new(T)
		if err := decode(body, in); err != nil {
			return nil, err
		}
		if k := strings.TrimSpace(e.schema.Key(in)); k != "" && k != key {
			return nil, store.BadRequestf("%s", e.schema.KeyChange)
		}
	}
	var out *T
	err := rt.uow.WithinTx(ctx, func(c store.Collections) error {
		col := e.pick(c)
		existing, err := col.Get(ctx, key)
		if err != nil {
			return err
		}
		merged, err := merge(existing, body)
		if err != nil {
			return err
		}
		if err := e.schema.SetKey(merged, key); err != nil {
			return err
		}
		if e.schema.Approval != nil {
			*e.schema.Approval(merged) = *e.schema.Approval(existing)
		}
		if e.schema.Touch != nil {
			e.schema.Touch(merged, rt.now(), false)
		}
		if err := rt.check(merged); err != nil {
			return err
		}
		if err := col.Replace(ctx, key, merged); err != nil {
			return err
		}
		out = merged
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// decide applies an approval decision to a pending record.
func (e entity[T]) decide(ctx context.Context, rt *Router, key string, body []byte) (*T, error) {
	var d approval.Decision
	if err := decode(body, &d); err != nil {
		return nil, err
	}
	if d.Status == "" {
		return nil, store.Invalid([]validation.FieldError{{Field: "approval_status", Message: "Required."}})
	}

	var out *T
	err := rt.uow.WithinTx(ctx, func(c store.Collections) error {
		col := e.pick(c)
		item, err := col.Get(ctx, key)
		if err != nil {
			return err
		}
		lc := e.schema.Approval(item)
		from := lc.Current()
		switch err := lc.Apply(d, rt.now()); {
		case errors.Is(err, approval.ErrUnknownStatus):
			return store.Invalid([]validation.FieldError{{
				Field:   "approval_status",
				Message: "Must be one of: pending_approval approved rejected.",
			}})
		case errors.Is(err, approval.ErrAlreadyDecided):
			return store.Conflictf("%s %s is already %s", e.schema.Label, key, from)
		case errors.Is(err, approval.ErrInvalidTransition):
			return store.Conflictf("%s %s cannot move from %s to %s", e.schema.Label, key, from, d.Status)
		case err != nil:
			return err
		}
		if err := col.Replace(ctx, key, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	rt.log.Info().Str("resource", e.schema.Resource).Str("key", key).Str("status", string(d.Status)).Msg("approval decided")
	return out, nil
}

func (e entity[T]) remove(ctx context.Context, rt *Router, key string) error {
	return rt.uow.WithinTx(ctx, func(c store.Collections) error {
		return e.pick(c).Delete(ctx, key)
	})
}
