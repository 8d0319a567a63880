package services

import (
	"budgetwise/internal/calendar"
	"budgetwise/internal/store"
)

// ReadyToAssignCalculator computes the money of a budget not yet given a job.
type ReadyToAssignCalculator struct{}

// Compute returns the working balance of the budget's active cash accounts
// minus the positive available of its categories in month m. When m has no
// balance rows the latest month that has rows is used. Overspent categories
// are not subtracted: that money already left the cash accounts.
func (ReadyToAssignCalculator) Compute(st *store.Store, userID, budgetID string, m calendar.Month) (int64, error) {
	cash, err := st.CashWorkingSum(userID, budgetID)
	if err != nil {
		return 0, err
	}

	n, err := st.CountBalances(userID, budgetID, m)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		latest, ok, err := st.LatestBalanceMonth(userID, budgetID)
		if err != nil {
			return 0, err
		}
		if !ok {
			return cash, nil
		}
		m = latest
	}

	assigned, err := st.PositiveAvailableSum(userID, budgetID, m)
	if err != nil {
		return 0, err
	}
	return cash - assigned, nil
}
