package resource

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"lis-dashboard/pkg/jsonx"
)

var (
	// ErrValidation means Submit stopped on field errors; nothing was sent.
	ErrValidation   = errors.New("resource: form has field errors")
	ErrNotReviewing = errors.New("resource: form is not in review")
	ErrBusy         = errors.New("resource: request already in flight")
	ErrClosed       = errors.New("resource: form is closed")
)

type FormState[T any] struct {
	Open       bool
	Editing    *T
	Value      T
	Errors     map[string]string
	Reviewing  bool
	Submitting bool
	Error      string
}

// Form is the create/edit slide-over for one record type. Successful
// submits patch the attached list from the server response.
type Form[T any] struct {
	mu   sync.Mutex
	cfg  Config[T]
	req  Requester
	list *List[T]

	open       bool
	editing    *T
	value      T
	errors     map[string]string
	reviewing  bool
	submitting bool
	err        string
}

// NewForm binds a form to list, which may be nil.
func NewForm[T any](cfg Config[T], req Requester, list *List[T]) *Form[T] {
	return &Form[T]{cfg: cfg, req: req, list: list, errors: map[string]string{}}
}

func (f *Form[T]) OpenCreate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
	f.value = f.cfg.Empty()
	f.open = true
}

// OpenEdit loads a deep copy of item.
func (f *Form[T]) OpenEdit(item T) error {
	var cp T
	if err := jsonx.CopyByJSON(&cp, item); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
	f.editing = &item
	f.value = cp
	f.open = true
	return nil
}

// Update sets one field by its JSON name and clears that field's error.
// A value of the wrong type records "Invalid value." instead.
func (f *Form[T]) Update(field string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := map[string]any{}
	if err := jsonx.CopyByJSON(&m, f.value); err != nil {
		return err
	}
	m[field] = value
	var next T
	if err := jsonx.CopyByJSON(&next, m); err != nil {
		f.errors[field] = "Invalid value."
		return err
	}
	f.value = next
	delete(f.errors, field)
	return nil
}

// Validate runs the field rules and replaces the error map.
func (f *Form[T]) Validate() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return clone(f.validateLocked())
}

func (f *Form[T]) validateLocked() map[string]string {
	v := f.value
	errs := f.cfg.validator().Fields(&v)
	if errs == nil {
		errs = map[string]string{}
	}
	f.errors = errs
	return errs
}

// Submit validates, then saves: PUT for an edit, POST for a create.
// Creates that require review stop at the review step instead.
func (f *Form[T]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()
		return ErrClosed
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrBusy
	}
	if len(f.validateLocked()) > 0 {
		f.mu.Unlock()
		return ErrValidation
	}
	if f.editing == nil && f.cfg.RequiresReview {
		f.reviewing = true
		f.mu.Unlock()
		return nil
	}
	f.submitting = true
	f.mu.Unlock()
	return f.send(ctx)
}

// ConfirmReview performs the create shown in the review step.
func (f *Form[T]) ConfirmReview(ctx context.Context) error {
	f.mu.Lock()
	if !f.reviewing {
		f.mu.Unlock()
		return ErrNotReviewing
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrBusy
	}
	f.submitting = true
	f.mu.Unlock()
	return f.send(ctx)
}

func (f *Form[T]) BackToEdit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviewing = false
}

func (f *Form[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

// send expects the caller to have set submitting under the lock.
func (f *Form[T]) send(ctx context.Context) error {
	f.mu.Lock()
	f.err = ""
	value := f.value
	editing := f.editing
	f.mu.Unlock()

	var out T
	var err error
	if editing != nil {
		err = f.req.Do(ctx, http.MethodPut, f.cfg.ItemPath(editing), value, &out)
	} else {
		err = f.req.Do(ctx, http.MethodPost, f.cfg.Path, value, &out)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.err = err.Error()
		return err
	}
	if f.list != nil {
		if editing != nil {
			f.list.Replace(out)
		} else {
			f.list.Append(out)
		}
	}
	f.reset()
	return nil
}

func (f *Form[T]) reset() {
	var zero T
	f.open = false
	f.editing = nil
	f.value = zero
	f.errors = map[string]string{}
	f.reviewing = false
	f.err = ""
}

func (f *Form[T]) State() FormState[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := FormState[T]{
		Open:       f.open,
		Value:      f.value,
		Errors:     clone(f.errors),
		Reviewing:  f.reviewing,
		Submitting: f.submitting,
		Error:      f.err,
	}
	if f.editing != nil {
		e := *f.editing
		st.Editing = &e
	}
	return st
}
