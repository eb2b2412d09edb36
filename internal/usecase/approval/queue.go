// Package approval drives the pending-approval pages: a list scoped to
// pending records with per-row approve and reject actions.
package approval

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	domain "lis-dashboard/internal/domain/approval"
	"lis-dashboard/internal/resource"
)

var (
	ErrNotPending = errors.New("approval: record is not pending")
	ErrNoDialog   = errors.New("approval: no confirmation open")
)

// Actions reports which row controls are enabled. Only pending rows
// with no request in flight can be decided.
type Actions struct {
	Approve bool
	Reject  bool
}

type QueueState[T any] struct {
	List resource.ListState[T]
	// Confirming is the row awaiting approve confirmation.
	Confirming *T
	// Rejecting is the row whose reject dialog is open.
	Rejecting *T
	Reason    string
}

type Queue[T any] struct {
	cfg  resource.Config[T]
	req  resource.Requester
	list *resource.List[T]

	review     bool
	approvedBy string

	mu         sync.Mutex
	confirming *T
	rejecting  *T
	reason     string
}

type Option[T any] func(*Queue[T])

// WithApproveReview adds a confirmation step before approving.
func WithApproveReview[T any]() Option[T] { return func(q *Queue[T]) { q.review = true } }

// WithApprover records who approves.
func WithApprover[T any](name string) Option[T] {
	return func(q *Queue[T]) { q.approvedBy = strings.TrimSpace(name) }
}

// NewQueue returns a queue for a record type with an approval lifecycle.
func NewQueue[T any](cfg resource.Config[T], req resource.Requester, opts ...Option[T]) *Queue[T] {
	q := &Queue[T]{
		cfg:  cfg,
		req:  req,
		list: resource.NewList(cfg, req, resource.WithScope[T]("approval_status", string(domain.StatusPending))),
	}
	for _, o := range opts {
		o(q)
	}
	return q
}

func (q *Queue[T]) List() *resource.List[T] { return q.list }

func (q *Queue[T]) Load(ctx context.Context) error { return q.list.Load(ctx) }

func (q *Queue[T]) pending(item *T) bool {
	if q.cfg.Approval == nil {
		return false
	}
	lc := q.cfg.Approval(item)
	return lc != nil && lc.Pending()
}

func (q *Queue[T]) Actions(item T) Actions {
	if !q.pending(&item) || q.list.IsBusy(q.cfg.Key(&item)) {
		return Actions{}
	}
	return Actions{Approve: true, Reject: true}
}

// Approve approves item, or opens the confirmation when the queue
// reviews approvals.
func (q *Queue[T]) Approve(ctx context.Context, item T) error {
	if !q.pending(&item) {
		return ErrNotPending
	}
	if q.review {
		q.mu.Lock()
		q.confirming = &item
		q.mu.Unlock()
		return nil
	}
	return q.decide(ctx, item, q.approval())
}

func (q *Queue[T]) ConfirmApprove(ctx context.Context) error {
	q.mu.Lock()
	target := q.confirming
	q.mu.Unlock()
	if target == nil {
		return ErrNoDialog
	}
	if err := q.decide(ctx, *target, q.approval()); err != nil {
		return err
	}
	q.mu.Lock()
	q.confirming = nil
	q.mu.Unlock()
	return nil
}

func (q *Queue[T]) CancelApprove() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.confirming = nil
}

func (q *Queue[T]) approval() domain.Decision {
	d := domain.Decision{Status: domain.StatusApproved}
	if q.approvedBy != "" {
		by := q.approvedBy
		d.ApprovedBy = &by
	}
	return d
}

// OpenReject opens the reason dialog for item.
func (q *Queue[T]) OpenReject(item T) error {
	if !q.pending(&item) {
		return ErrNotPending
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.rejecting = &item
	q.reason = ""
	return nil
}

func (q *Queue[T]) SetRejectReason(reason string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.reason = reason
}

// ConfirmReject sends the rejection; a blank reason is omitted. The
// dialog stays open when the request fails.
func (q *Queue[T]) ConfirmReject(ctx context.Context) error {
	q.mu.Lock()
	target, reason := q.rejecting, strings.TrimSpace(q.reason)
	q.mu.Unlock()
	if target == nil {
		return ErrNoDialog
	}
	d := domain.Decision{Status: domain.StatusRejected}
	if reason != "" {
		d.RejectionReason = &reason
	}
	if err := q.decide(ctx, *target, d); err != nil {
		return err
	}
	q.mu.Lock()
	q.rejecting = nil
	q.reason = ""
	q.mu.Unlock()
	return nil
}

func (q *Queue[T]) CancelReject() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.rejecting = nil
	q.reason = ""
}

func (q *Queue[T]) decide(ctx context.Context, item T, d domain.Decision) error {
	key := q.cfg.Key(&item)
	if !q.list.TryBusy(key) {
		return resource.ErrBusy
	}
	defer q.list.Done(key)

	q.list.SetError("")
	if err := q.req.Do(ctx, http.MethodPatch, q.cfg.ItemPath(&item), d, nil); err != nil {
		q.list.SetError(err.Error())
		return err
	}
	q.list.Remove(key)
	return nil
}

func (q *Queue[T]) State() QueueState[T] {
	st := QueueState[T]{List: q.list.State()}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.confirming != nil {
		c := *q.confirming
		st.Confirming = &c
	}
	if q.rejecting != nil {
		r := *q.rejecting
		st.Rejecting = &r
	}
	st.Reason = q.reason
	return st
}
