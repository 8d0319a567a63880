package store

import (
	"errors"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"

	"gorm.io/gorm"
)

// DebtTotals aggregates debt rows.
type DebtTotals struct {
	Entries   int64 `json:"entries"`
	Debt      int64 `json:"debt"`
	Covered   int64 `json:"covered"`
	Uncovered int64 `json:"uncovered"`
}

// CreateDebt inserts d.
func (s *Store) CreateDebt(d *models.CreditCardDebt) error {
	return writeErr(s.db.Create(d).Error)
}

// DebtByTransaction returns the debt row of a transaction, or nil.
func (s *Store) DebtByTransaction(userID, transactionID string) (*models.CreditCardDebt, error) {
	var d models.CreditCardDebt
	err := s.scoped(userID).Where("transaction_id = ?", transactionID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return &d, nil
}

// SaveDebt writes every column of d.
func (s *Store) SaveDebt(d *models.CreditCardDebt) error {
	return writeErr(s.db.Save(d).Error)
}

// DeleteDebtByTransaction removes the debt row of a transaction. Deleting a
// row that does not exist is not an error.
func (s *Store) DeleteDebtByTransaction(userID, transactionID string) error {
	return writeErr(s.scoped(userID).Where("transaction_id = ?", transactionID).Delete(&models.CreditCardDebt{}).Error)
}

// UncoveredDebts returns the debts whose spending category is categoryID
// and that are not fully covered, oldest first.
func (s *Store) UncoveredDebts(userID, categoryID string) ([]models.CreditCardDebt, error) {
	var rows []models.CreditCardDebt
	err := s.scoped(userID).
		Where("original_category_id = ? AND covered_amount < debt_amount", categoryID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return rows, nil
}

// AddCoverage raises covered_amount by amount, capped at debt_amount.
func (s *Store) AddCoverage(userID, debtID string, amount int64) error {
	res := s.scoped(userID).Model(&models.CreditCardDebt{}).Where("id = ?", debtID).Update(
		"covered_amount",
		gorm.Expr("CASE WHEN covered_amount + ? > debt_amount THEN debt_amount ELSE covered_amount + ? END", amount, amount),
	)
	if res.Error != nil {
		return apperrors.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.WithMessage(apperrors.ErrNotFound, "Debt row not found")
	}
	return nil
}

// DebtTotalsByPaymentCategory sums the debts earmarked in a payment category.
func (s *Store) DebtTotalsByPaymentCategory(userID, categoryID string) (DebtTotals, error) {
	return s.debtTotals(userID, "payment_category_id", categoryID)
}

// DebtTotalsBySpendingCategory sums the debts a spending category originated.
func (s *Store) DebtTotalsBySpendingCategory(userID, categoryID string) (DebtTotals, error) {
	return s.debtTotals(userID, "original_category_id", categoryID)
}

func (s *Store) debtTotals(userID, column, categoryID string) (DebtTotals, error) {
	var t DebtTotals
	err := s.scoped(userID).Model(&models.CreditCardDebt{}).
		Where(column+" = ?", categoryID).
		Select("COUNT(*) AS entries, COALESCE(SUM(debt_amount), 0) AS debt, COALESCE(SUM(covered_amount), 0) AS covered").
		Scan(&t).Error
	if err != nil {
		return DebtTotals{}, apperrors.Store(err)
	}
	t.Uncovered = t.Debt - t.Covered
	return t, nil
}
