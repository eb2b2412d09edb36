// Package resource holds the generic list and form controllers shared
// by every record page of the dashboard.
package resource

import (
	"context"
	"net/url"

	"lis-dashboard/internal/domain/approval"
	"lis-dashboard/internal/store"
	"lis-dashboard/internal/validation"
)

// Requester is the part of the resource client the controllers need.
type Requester interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// Config describes one record type to the controllers.
type Config[T any] struct {
	Path  string
	Label string
	Key   func(*T) string
	Empty func() T
	// RequiresReview adds a confirmation step before create.
	RequiresReview bool
	// Approval is nil for records without a review lifecycle.
	Approval  func(*T) *approval.Lifecycle
	Validator *validation.Validator
}

// ItemPath is the path of one record.
func (c Config[T]) ItemPath(item *T) string {
	return c.Path + "/" + url.PathEscape(c.Key(item))
}

// FromSchema derives a controller config from a store schema.
func FromSchema[T any](s store.Schema[T], requiresReview bool) Config[T] {
	return Config[T]{
		Path:           "/" + s.Resource,
		Label:          s.Label,
		Key:            s.Key,
		Empty:          func() T { var zero T; return zero },
		RequiresReview: requiresReview,
		Approval:       s.Approval,
	}
}

var (
	Projects      = FromSchema(store.Projects, true)
	Programs      = FromSchema(store.Programs, true)
	Applications  = FromSchema(store.Applications, false)
	Beneficiaries = FromSchema(store.Beneficiaries, false)
	Lots          = FromSchema(store.Lots, false)

	CoOwners           = FromSchema(store.CoOwners, false)
	EmploymentProfiles = FromSchema(store.EmploymentProfiles, false)
	Properties         = FromSchema(store.Properties, false)
	ProgramClasses     = FromSchema(store.ProgramClasses, false)
)

func (c Config[T]) validator() *validation.Validator {
	if c.Validator != nil {
		return c.Validator
	}
	return defaultValidator
}

var defaultValidator = validation.New()
