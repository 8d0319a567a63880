package services

import (
	"time"

	"budgetwise/internal/calendar"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// ActivityProjector books signed transaction amounts against category
// balances. Activity lands in the month the money moved; available always
// lands in the current month, where the user can still act on it.
type ActivityProjector struct{}

// Apply adds delta for a transaction dated date. Negate delta to reverse an
// earlier Apply.
func (ActivityProjector) Apply(st *store.Store, userID string, cat *models.Category, date time.Time, delta int64, current calendar.Month) error {
	if delta == 0 {
		return nil
	}
	txMonth := calendar.MonthOf(date)
	if availableMonth(date, current) == txMonth {
		_, err := st.AddToBalance(userID, cat, txMonth, store.BalanceDelta{Activity: delta, Available: delta})
		return err
	}

	if _, err := st.AddToBalance(userID, cat, txMonth, store.BalanceDelta{Activity: delta}); err != nil {
		return err
	}
	_, err := st.AddToBalance(userID, cat, current, store.BalanceDelta{Available: delta})
	return err
}

// availableMonth is the month whose available a transaction dated date
// changes: its own month unless that is before current.
func availableMonth(date time.Time, current calendar.Month) calendar.Month {
	txMonth := calendar.MonthOf(date)
	if txMonth.Before(current) {
		return current
	}
	return txMonth
}

// ApplyCurrent books delta as activity of the current month.
func (ActivityProjector) ApplyCurrent(st *store.Store, userID string, cat *models.Category, delta int64, current calendar.Month) error {
	if delta == 0 {
		return nil
	}
	_, err := st.AddToBalance(userID, cat, current, store.BalanceDelta{Activity: delta, Available: delta})
	return err
}
