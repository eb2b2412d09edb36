package approval

import (
	"errors"
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending_approval"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	ErrUnknownStatus     = errors.New("unknown approval status")
	ErrInvalidTransition = errors.New("invalid approval transition")
	ErrAlreadyDecided    = errors.New("approval already decided")
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Lifecycle is embedded in every record that goes through review.
// Columns are flattened into the parent table.
type Lifecycle struct {
	ApprovalStatus  Status     `gorm:"column:approval_status;size:32;index" json:"approval_status" validate:"omitempty,oneof=pending_approval approved rejected"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approved_at"`
	ApprovedBy      *string    `gorm:"column:approved_by;size:64" json:"approved_by" validate:"omitempty,max=64"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text" json:"rejection_reason"`
}

// Current treats an unset status as pending.
func (l Lifecycle) Current() Status {
	if l.ApprovalStatus == "" {
		return StatusPending
	}
	return l.ApprovalStatus
}

func (l Lifecycle) Pending() bool { return l.Current() == StatusPending }

// Reset puts a freshly created record into the review queue.
func (l *Lifecycle) Reset() {
	*l = Lifecycle{ApprovalStatus: StatusPending}
}

type Decision struct {
	Status          Status  `json:"approval_status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
}

// Apply moves a pending record to approved or rejected.
// Decided records never move again.
func (l *Lifecycle) Apply(d Decision, now time.Time) error {
	if !d.Status.Valid() {
		return ErrUnknownStatus
	}
	if !l.Pending() {
		return ErrAlreadyDecided
	}
	switch d.Status {
	case StatusApproved:
		at := now.UTC()
		l.ApprovalStatus = StatusApproved
		l.ApprovedAt = &at
		l.ApprovedBy = trimmed(d.ApprovedBy)
		l.RejectionReason = nil
	case StatusRejected:
		l.ApprovalStatus = StatusRejected
		l.ApprovedAt = nil
		l.RejectionReason = trimmed(d.RejectionReason)
		if d.ApprovedBy != nil {
			l.ApprovedBy = trimmed(d.ApprovedBy)
		}
	default:
		return ErrInvalidTransition
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
