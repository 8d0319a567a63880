// Package store is the typed persistence layer for budgeting data. Every
// read and write is scoped to a user id; a record owned by another user is
// reported as not found.
package store

import (
	"context"
	"errors"

	apperrors "budgetwise/internal/errors"

	"gorm.io/gorm"
)

// Store wraps a gorm handle, which may be a pool or an open transaction.
type Store struct {
	db *gorm.DB
}

// New returns a Store over db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for callers that persist non-budget
// records (users, audit logs) in the same transaction.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// WithContext returns a Store whose queries observe ctx.
func (s *Store) WithContext(ctx context.Context) *Store {
	return &Store{db: s.db.WithContext(ctx)}
}

// Transaction runs fn inside a database transaction. Called on a Store that
// is already inside a transaction, it opens a savepoint, so fn can fail and
// roll back without aborting the enclosing work.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) scoped(userID string) *gorm.DB {
	return s.db.Where("user_id = ?", userID)
}

// lookupErr maps a single-row lookup failure to notFound or a store error.
func lookupErr(err error, notFound *apperrors.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperrors.Store(err)
}

func writeErr(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Store(err)
}

// IsDuplicate reports whether err came from a unique constraint.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
