package services

import (
	"budgetwise/internal/store"
)

// BalanceProjector derives an account's cleared, uncleared and working
// balances from its starting balance and transactions. It never reads
// category state.
type BalanceProjector struct{}

// Recompute rewrites the projected balances of accountID.
func (BalanceProjector) Recompute(st *store.Store, userID, accountID string) (store.AccountBalances, error) {
	account, err := st.GetAccount(userID, accountID)
	if err != nil {
		return store.AccountBalances{}, err
	}
	txs, err := st.AccountTransactions(userID, accountID)
	if err != nil {
		return store.AccountBalances{}, err
	}

	var clearedSum, unclearedSum int64
	for _, t := range txs {
		if t.IsCleared {
			clearedSum += t.Amount
		} else {
			unclearedSum += t.Amount
		}
	}

	b := store.AccountBalances{
		Cleared:   account.StartingBalance + clearedSum,
		Uncleared: unclearedSum,
	}
	b.Working = b.Cleared + b.Uncleared

	if err := st.SetAccountBalances(userID, accountID, b); err != nil {
		return store.AccountBalances{}, err
	}
	return b, nil
}
