package mysql

import (
	"context"
	"errors"
	"strings"

	"lis-dashboard/internal/store"

	"gorm.io/gorm"
)

// Collection stores one record type in its own table.
type Collection[T any] struct {
	db     *gorm.DB
	schema store.Schema[T]
}

func NewCollection[T any](db *gorm.DB, schema store.Schema[T]) *Collection[T] {
	return &Collection[T]{db: db, schema: schema}
}

func (r *Collection[T]) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.schema.Table)
}

// counted binds the model so gorm.DeletedAt scoping also applies to
// Count, which has no destination to infer it from.
func (r *Collection[T]) counted(ctx context.Context) *gorm.DB {
	return r.table(ctx).Model(new(T))
}

func (r *Collection[T]) List(ctx context.Context, page store.Page, where ...store.Criterion) ([]T, error) {
	q := r.table(ctx)
	for _, c := range where {
		q = applyCriterion(q, c)
	}
	if page.Skip > 0 {
		q = q.Offset(page.Skip)
	}
	if page.Limit > 0 {
		q = q.Limit(page.Limit)
	}
	out := []T{}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Collection[T]) Search(ctx context.Context, columns []string, phrase string, limit int) ([]T, error) {
	out := []T{}
	if len(columns) == 0 {
		return out, nil
	}
	pattern := likePattern(strings.ToLower(phrase))
	conds := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		conds = append(conds, "LOWER("+col+") LIKE ? ESCAPE '!'")
		args = append(args, pattern)
	}
	err := r.table(ctx).
		Where(strings.Join(conds, " OR "), args...).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Collection[T]) Get(ctx context.Context, key string) (*T, error) {
	var out T
	err := r.table(ctx).Where(r.schema.KeyColumn+" = ?", key).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.NotFound(r.schema.Label)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Collection[T]) Insert(ctx context.Context, item *T) error {
	if r.schema.Identity == store.SequenceKey {
		// zero key lets AUTO_INCREMENT assign it
		if err := r.schema.SetKey(item, ""); err != nil {
			return err
		}
	} else {
		// deleted rows still hold their primary key
		var n int64
		err := r.counted(ctx).Unscoped().Where(r.schema.KeyColumn+" = ?", r.schema.Key(item)).Count(&n).Error
		if err != nil {
			return err
		}
		if n > 0 {
			return store.Conflictf("%s %s already exists", r.schema.Label, r.schema.Key(item))
		}
	}
	return r.table(ctx).Create(item).Error
}

func (r *Collection[T]) Replace(ctx context.Context, key string, item *T) error {
	found, err := r.Exists(ctx, r.schema.KeyColumn, key)
	if err != nil {
		return err
	}
	if !found {
		return store.NotFound(r.schema.Label)
	}
	return r.table(ctx).Save(item).Error
}

func (r *Collection[T]) Delete(ctx context.Context, key string) error {
	res := r.table(ctx).Where(r.schema.KeyColumn+" = ?", key).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.NotFound(r.schema.Label)
	}
	return nil
}

func (r *Collection[T]) Exists(ctx context.Context, column, value string) (bool, error) {
	var n int64
	if err := r.counted(ctx).Where(column+" = ?", value).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// applyCriterion mirrors store.Schema.Matches in SQL.
func applyCriterion(q *gorm.DB, c store.Criterion) *gorm.DB {
	col := "TRIM(" + c.Column + ")"
	if c.Default != "" {
		col = "COALESCE(NULLIF(TRIM(" + c.Column + "), ''), '" + strings.ReplaceAll(c.Default, "'", "''") + "')"
	}
	if c.Mode == store.Contains {
		return q.Where("LOWER("+col+") LIKE ? ESCAPE '!'", likePattern(c.Value))
	}
	return q.Where(col+" = ?", c.Value)
}

// likePattern wraps s in wildcards, escaping LIKE metacharacters with '!'.
func likePattern(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(s) + "%"
}
