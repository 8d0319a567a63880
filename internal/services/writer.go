package services

import (
	"context"
	"errors"
	"time"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/serial"
	"budgetwise/internal/store"

	"gorm.io/gorm"
)

// DefaultOperationTimeout bounds the wait for a user's write slot.
const DefaultOperationTimeout = 15 * time.Second

// Writer runs budget mutations one at a time per user, each inside a single
// database transaction. All services of a process share one Writer.
type Writer struct {
	store   *store.Store
	locks   *serial.Keyed
	timeout time.Duration
}

// NewWriter builds a Writer over db. A zero timeout selects
// DefaultOperationTimeout.
func NewWriter(db *gorm.DB, locks *serial.Keyed, timeout time.Duration) *Writer {
	if locks == nil {
		locks = serial.NewKeyed()
	}
	if timeout <= 0 {
		timeout = DefaultOperationTimeout
	}
	return &Writer{store: store.New(db), locks: locks, timeout: timeout}
}

// Read returns a Store for read-only queries.
func (w *Writer) Read(ctx context.Context) *store.Store {
	return w.store.WithContext(ctx)
}

// Write runs fn in a transaction while holding userID's write slot. If the
// slot cannot be acquired in time the operation fails with OPERATION_TIMEOUT
// and fn never runs.
func (w *Writer) Write(ctx context.Context, userID string, fn func(st *store.Store) error) error {
	acquireCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	ran := false
	err := w.locks.Do(acquireCtx, userID, func() error {
		ran = true
		return w.store.Transaction(ctx, fn)
	})
	if err == nil {
		return nil
	}
	if !ran {
		return apperrors.Wrap(apperrors.ErrBusy, err)
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return apperrors.Store(err)
	}
	return err
}
