package store

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"lis-dashboard/internal/domain/approval"
	"lis-dashboard/internal/validation"
)

type Identity int

const (
	// ClientKey identities come in the request body.
	ClientKey Identity = iota
	// UUIDKey identities are generated by the server.
	UUIDKey
	// SequenceKey identities are the next integer.
	SequenceKey
)

// Filter maps a list query parameter to a column predicate.
type Filter struct {
	Param   string
	Column  string
	Mode    Match
	Int     bool
	Default string
}

// Schema describes one record type to every layer that stores,
// serves or edits it.
type Schema[T any] struct {
	Resource  string
	Label     string
	Table     string
	KeyColumn string
	Identity  Identity
	ReadOnly  bool

	Key    func(*T) string
	SetKey func(*T, string) error
	// ParseKey normalizes an identity taken from a path segment.
	ParseKey func(string) (string, error)
	// GenerateKey fills a blank client identity on create; nil leaves
	// it to validation.
	GenerateKey func(now time.Time) string
	// KeyChange, when set, is the bad request detail for a PUT body
	// naming another identity. Otherwise the body identity is ignored.
	KeyChange string
	// Columns exposes filterable and searchable values by column name.
	Columns       map[string]func(*T) string
	Filters       []Filter
	SearchColumns []string

	// Touch stamps server owned timestamps.
	Touch func(item *T, now time.Time, created bool)
	// Approval is nil for records without a review lifecycle.
	Approval func(*T) *approval.Lifecycle
	// SoftDelete is nil for records that are removed outright.
	SoftDelete func(*T) *gorm.DeletedAt
	// Paged lists honour skip and limit.
	Paged bool
}

// Deleted reports whether item carries a deletion stamp.
func (s Schema[T]) Deleted(item *T) bool {
	return s.SoftDelete != nil && s.SoftDelete(item).Valid
}

// Page reads skip and limit. Limit defaults to DefaultPageLimit.
func (s Schema[T]) Page(q url.Values) (Page, error) {
	if !s.Paged {
		return All, nil
	}
	p := Page{Limit: DefaultPageLimit}
	var fields []validation.FieldError
	if v := strings.TrimSpace(q.Get("skip")); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			fields = append(fields, validation.FieldError{Field: "skip", Message: "Must be an integer."})
		case n < 0:
			fields = append(fields, validation.FieldError{Field: "skip", Message: "Must be >= 0."})
		default:
			p.Skip = n
		}
	}
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			fields = append(fields, validation.FieldError{Field: "limit", Message: "Must be an integer."})
		case n < 1:
			fields = append(fields, validation.FieldError{Field: "limit", Message: "Must be >= 1."})
		default:
			p.Limit = n
		}
	}
	if len(fields) > 0 {
		return All, Invalid(fields)
	}
	return p, nil
}

func (s Schema[T]) Value(item *T, column string) string {
	if f, ok := s.Columns[column]; ok {
		return f(item)
	}
	return ""
}

// Criteria turns list query parameters into predicates. Blank values
// and unparsable integers are ignored.
func (s Schema[T]) Criteria(q url.Values) []Criterion {
	out := make([]Criterion, 0, len(s.Filters))
	for _, f := range s.Filters {
		v := strings.TrimSpace(q.Get(f.Param))
		if v == "" {
			continue
		}
		if f.Int {
			n, err := strconv.Atoi(v)
			if err != nil {
				continue
			}
			v = strconv.Itoa(n)
		}
		if f.Mode == Contains {
			v = strings.ToLower(v)
		}
		out = append(out, Criterion{Column: f.Column, Mode: f.Mode, Value: v, Default: f.Default})
	}
	return out
}

// Matches evaluates criteria against an in-memory record.
func (s Schema[T]) Matches(item *T, where []Criterion) bool {
	for _, c := range where {
		v := strings.TrimSpace(s.Value(item, c.Column))
		if v == "" {
			v = c.Default
		}
		switch c.Mode {
		case Contains:
			if !strings.Contains(strings.ToLower(v), c.Value) {
				return false
			}
		default:
			if v != c.Value {
				return false
			}
		}
	}
	return true
}

// Hit reports whether any column contains the lowercased phrase.
func (s Schema[T]) Hit(item *T, columns []string, phrase string) bool {
	for _, col := range columns {
		if strings.Contains(strings.ToLower(s.Value(item, col)), phrase) {
			return true
		}
	}
	return false
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func i64(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}

func parseSeq(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, BadRequestf("invalid id %q", s)
	}
	return n, nil
}
