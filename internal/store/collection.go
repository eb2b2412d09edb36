package store

import "context"

type Match int

const (
	Exact Match = iota
	Contains
)

// Criterion narrows a list. Contains is case-insensitive; Default
// stands in for an empty stored value.
type Criterion struct {
	Column  string
	Mode    Match
	Value   string
	Default string
}

// DefaultPageLimit is the list size when no limit is asked for.
const DefaultPageLimit = 100

// Page windows a list. A zero Limit means every matching row.
type Page struct {
	Skip  int
	Limit int
}

// All is the unbounded page.
var All = Page{}

// Window applies p to rows already in list order.
func Window[T any](rows []T, p Page) []T {
	if p.Skip > 0 {
		if p.Skip >= len(rows) {
			return rows[:0]
		}
		rows = rows[p.Skip:]
	}
	if p.Limit > 0 && p.Limit < len(rows) {
		rows = rows[:p.Limit]
	}
	return rows
}

// Collection is the storage port for one record type. Soft deleted
// rows are invisible to every method except Insert's identity check.
type Collection[T any] interface {
	List(ctx context.Context, page Page, where ...Criterion) ([]T, error)
	// Search ORs a case-insensitive substring match over columns.
	Search(ctx context.Context, columns []string, phrase string, limit int) ([]T, error)
	Get(ctx context.Context, key string) (*T, error)
	// Insert stores item; sequence identities are assigned in place.
	Insert(ctx context.Context, item *T) error
	Replace(ctx context.Context, key string, item *T) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, column, value string) (bool, error)
}
