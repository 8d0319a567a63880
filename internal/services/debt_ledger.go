package services

import (
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// DebtLedger keeps one debt row per credit card outflow.
type DebtLedger struct{}

// Create records a new debt row. covered is clamped to [0, debt].
func (DebtLedger) Create(st *store.Store, t *models.Transaction, spending *models.Category, payment *models.Category, card *models.Account, debt, covered int64) (*models.CreditCardDebt, error) {
	if debt <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "debt amount must be positive")
	}
	row := &models.CreditCardDebt{
		UserID:              t.UserID,
		BudgetID:            t.BudgetID,
		TransactionID:       t.ID,
		CreditCardAccountID: card.ID,
		PaymentCategoryID:   payment.ID,
		DebtAmount:          debt,
		CoveredAmount:       clamp(covered, 0, debt),
	}
	if spending != nil {
		row.OriginalCategoryID = &spending.ID
	}
	if err := st.CreateDebt(row); err != nil {
		return nil, err
	}
	return row, nil
}

// Get returns the debt row of a transaction, or nil.
func (DebtLedger) Get(st *store.Store, userID, transactionID string) (*models.CreditCardDebt, error) {
	return st.DebtByTransaction(userID, transactionID)
}

// Uncovered lists a spending category's open debts, oldest first.
func (DebtLedger) Uncovered(st *store.Store, userID, categoryID string) ([]models.CreditCardDebt, error) {
	return st.UncoveredDebts(userID, categoryID)
}

// AddCoverage raises a row's covered amount without exceeding its debt.
func (DebtLedger) AddCoverage(st *store.Store, userID, debtID string, amount int64) error {
	if amount <= 0 {
		return nil
	}
	return st.AddCoverage(userID, debtID, amount)
}

// Update rewrites an existing row after its transaction changed.
func (DebtLedger) Update(st *store.Store, row *models.CreditCardDebt) error {
	row.CoveredAmount = clamp(row.CoveredAmount, 0, row.DebtAmount)
	return st.SaveDebt(row)
}

// DeleteByTransaction removes the row of a transaction if there is one.
func (DebtLedger) DeleteByTransaction(st *store.Store, userID, transactionID string) error {
	return st.DeleteDebtByTransaction(userID, transactionID)
}

// Summary totals the debts tied to a category. Payment categories are
// summed by the debts they hold, other categories by the debts they caused.
func (DebtLedger) Summary(st *store.Store, userID string, cat *models.Category) (store.DebtTotals, error) {
	if cat.IsCreditCardPayment {
		return st.DebtTotalsByPaymentCategory(userID, cat.ID)
	}
	return st.DebtTotalsBySpendingCategory(userID, cat.ID)
}

func clamp(v, lo, hi int64) int64 {
	return max(lo, min(v, hi))
}
