package approval

import (
	"errors"
	"testing"
	"time"
)

func strp(s string) *string { return &s }

func TestLifecycle_Apply(t *testing.T) {
	now := time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   Lifecycle
		in      Decision
		wantErr error
		check   func(t *testing.T, l Lifecycle)
	}{
		{
			name:  "pending -> approved stamps approved_at",
			start: Lifecycle{ApprovalStatus: StatusPending, RejectionReason: strp("old")},
			in:    Decision{Status: StatusApproved, ApprovedBy: strp("  jdc ")},
			check: func(t *testing.T, l Lifecycle) {
				if l.ApprovalStatus != StatusApproved {
					t.Fatalf("status = %s", l.ApprovalStatus)
				}
				if l.ApprovedAt == nil || !l.ApprovedAt.Equal(now) {
					t.Fatalf("approved_at = %v, want %v", l.ApprovedAt, now)
				}
				if l.ApprovedBy == nil || *l.ApprovedBy != "jdc" {
					t.Fatalf("approved_by = %v", l.ApprovedBy)
				}
				if l.RejectionReason != nil {
					t.Fatalf("rejection_reason should be cleared")
				}
			},
		},
		{
			name:  "unset status counts as pending",
			start: Lifecycle{},
			in:    Decision{Status: StatusRejected, RejectionReason: strp("Incomplete")},
			check: func(t *testing.T, l Lifecycle) {
				if l.ApprovalStatus != StatusRejected {
					t.Fatalf("status = %s", l.ApprovalStatus)
				}
				if l.ApprovedAt != nil {
					t.Fatalf("approved_at must stay nil on reject")
				}
				if l.RejectionReason == nil || *l.RejectionReason != "Incomplete" {
					t.Fatalf("reason = %v", l.RejectionReason)
				}
			},
		},
		{
			name:  "blank reason is dropped",
			start: Lifecycle{ApprovalStatus: StatusPending},
			in:    Decision{Status: StatusRejected, RejectionReason: strp("   ")},
			check: func(t *testing.T, l Lifecycle) {
				if l.RejectionReason != nil {
					t.Fatalf("reason = %q, want nil", *l.RejectionReason)
				}
			},
		},
		{
			name:    "approved is terminal",
			start:   Lifecycle{ApprovalStatus: StatusApproved},
			in:      Decision{Status: StatusPending},
			wantErr: ErrAlreadyDecided,
		},
		{
			name:    "rejected is terminal",
			start:   Lifecycle{ApprovalStatus: StatusRejected},
			in:      Decision{Status: StatusApproved},
			wantErr: ErrAlreadyDecided,
		},
		{
			name:    "pending -> pending is not a transition",
			start:   Lifecycle{ApprovalStatus: StatusPending},
			in:      Decision{Status: StatusPending},
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "unknown status",
			start:   Lifecycle{ApprovalStatus: StatusPending},
			in:      Decision{Status: "archived"},
			wantErr: ErrUnknownStatus,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			l := tt.start
			err := l.Apply(tt.in, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err=%v, got %v", tt.wantErr, err)
				}
				if l != tt.start {
					t.Fatalf("lifecycle mutated on error: %+v", l)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			tt.check(t, l)
		})
	}
}

func TestLifecycle_Reset(t *testing.T) {
	at := time.Now()
	l := Lifecycle{ApprovalStatus: StatusApproved, ApprovedAt: &at, ApprovedBy: strp("x")}
	l.Reset()
	if l.ApprovalStatus != StatusPending || l.ApprovedAt != nil || l.ApprovedBy != nil {
		t.Fatalf("reset left state behind: %+v", l)
	}
}
