// Package store provides typed persistence over gorm.
package store

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/ahmetcoskunkizilkaya/workforce-backend/internal/apperr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrConstraintViolation = apperr.New(apperr.KindConflict, "constraint_violation", "record already exists")

// ListOptions narrows a List call. Page and Limit of zero disable pagination.
type ListOptions struct {
	Page    int
	Limit   int
	Filters map[string]any
	Preload []string
	Order   string
}

type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"perPage"`
	TotalPages int   `json:"lastPage"`
}

type UpdateResult[T any] struct {
	Affected int64
	Record   *T
}

type DeleteResult[T any] struct {
	Removed bool
	Prior   *T
}

// Repo is a typed CRUD repository for one model.
type Repo[T any] struct {
	db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) *Repo[T] {
	return &Repo[T]{db: db}
}

// WithTx returns a repository bound to tx.
func (r *Repo[T]) WithTx(tx *gorm.DB) *Repo[T] {
	return &Repo[T]{db: tx}
}

func (r *Repo[T]) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *Repo[T]) Create(ctx context.Context, rec *T) error {
	return Translate(r.conn(ctx).Create(rec).Error)
}

func (r *Repo[T]) CreateMany(ctx context.Context, recs []T) error {
	if len(recs) == 0 {
		return nil
	}
	return Translate(r.conn(ctx).Create(&recs).Error)
}

// GetByID reports found=false instead of an error when no row matches.
func (r *Repo[T]) GetByID(ctx context.Context, id uint, preload ...string) (*T, bool, error) {
	var rec T
	q := r.conn(ctx)
	for _, p := range preload {
		q = q.Preload(p)
	}
	err := q.First(&rec, id).Error
	return found(&rec, err)
}

func (r *Repo[T]) FindOne(ctx context.Context, conds map[string]any, preload ...string) (*T, bool, error) {
	var rec T
	q := r.conn(ctx)
	for _, p := range preload {
		q = q.Preload(p)
	}
	err := q.Where(conds).First(&rec).Error
	return found(&rec, err)
}

func (r *Repo[T]) FindAll(ctx context.Context, conds map[string]any) ([]T, error) {
	var recs []T
	q := r.conn(ctx)
	if len(conds) > 0 {
		q = q.Where(conds)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	return recs, nil
}

func (r *Repo[T]) List(ctx context.Context, opts ListOptions) (*Page[T], error) {
	var total int64
	var recs []T

	q := r.conn(ctx).Model(new(T))
	if len(opts.Filters) > 0 {
		q = q.Where(opts.Filters)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, apperr.Storage(err)
	}

	for _, p := range opts.Preload {
		q = q.Preload(p)
	}
	order := opts.Order
	if order == "" {
		order = r.primaryKey(ctx) + " ASC"
	}
	q = q.Order(order)

	page := &Page[T]{Total: total, Page: 1, Limit: int(total), TotalPages: 1}
	if opts.Limit > 0 {
		if opts.Page < 1 {
			opts.Page = 1
		}
		q = q.Limit(opts.Limit).Offset((opts.Page - 1) * opts.Limit)
		page.Page = opts.Page
		page.Limit = opts.Limit
		page.TotalPages = int(math.Ceil(float64(total) / float64(opts.Limit)))
	}

	if err := q.Find(&recs).Error; err != nil {
		return nil, apperr.Storage(err)
	}
	if recs == nil {
		recs = []T{}
	}
	page.Data = recs
	return page, nil
}

// Update applies changes to the row with id. Zero affected rows is not an error.
func (r *Repo[T]) Update(ctx context.Context, id uint, changes map[string]any) (*UpdateResult[T], error) {
	res := &UpdateResult[T]{}
	if len(changes) > 0 {
		tx := r.conn(ctx).Model(new(T)).Where(r.primaryKey(ctx)+" = ?", id).Updates(changes)
		if err := Translate(tx.Error); err != nil {
			return nil, err
		}
		res.Affected = tx.RowsAffected
	}

	rec, ok, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ok {
		res.Record = rec
	}
	return res, nil
}

func (r *Repo[T]) Delete(ctx context.Context, id uint) (*DeleteResult[T], error) {
	prior, ok, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &DeleteResult[T]{}, nil
	}

	tx := r.conn(ctx).Delete(new(T), id)
	if tx.Error != nil {
		return nil, apperr.Storage(tx.Error)
	}
	return &DeleteResult[T]{Removed: tx.RowsAffected > 0, Prior: prior}, nil
}

func (r *Repo[T]) DeleteWhere(ctx context.Context, query string, args ...any) (int64, error) {
	tx := r.conn(ctx).Where(query, args...).Delete(new(T))
	if tx.Error != nil {
		return 0, apperr.Storage(tx.Error)
	}
	return tx.RowsAffected, nil
}

// Upsert inserts rec or, when conflictCols already exist, updates updateCols.
func (r *Repo[T]) Upsert(ctx context.Context, rec *T, conflictCols, updateCols []string) error {
	cols := make([]clause.Column, len(conflictCols))
	for i, c := range conflictCols {
		cols[i] = clause.Column{Name: c}
	}
	err := r.conn(ctx).Clauses(clause.OnConflict{
		Columns:   cols,
		DoUpdates: clause.AssignmentColumns(updateCols),
	}).Create(rec).Error
	return Translate(err)
}

// Taken reports whether another row already holds value in column.
func (r *Repo[T]) Taken(ctx context.Context, column string, value any, excludeID uint) (bool, error) {
	var count int64
	q := r.conn(ctx).Model(new(T)).Where(column+" = ?", value)
	if excludeID != 0 {
		q = q.Where(r.primaryKey(ctx)+" <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, apperr.Storage(err)
	}
	return count > 0, nil
}

func (r *Repo[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(new(T)).Where(r.primaryKey(ctx)+" = ?", id).Count(&count).Error; err != nil {
		return false, apperr.Storage(err)
	}
	return count > 0, nil
}

func (r *Repo[T]) primaryKey(ctx context.Context) string {
	stmt := &gorm.Statement{DB: r.conn(ctx)}
	if err := stmt.Parse(new(T)); err == nil && stmt.Schema.PrioritizedPrimaryField != nil {
		return stmt.Schema.PrioritizedPrimaryField.DBName
	}
	return "id"
}

func found[T any](rec *T, err error) (*T, bool, error) {
	if err == nil {
		return rec, true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	return nil, false, apperr.Storage(err)
}

// Translate maps unique violations to ErrConstraintViolation and other
// failures to storage errors.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return ErrConstraintViolation.With(err)
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperr.Storage(err)
}

func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "Duplicate entry")
}
