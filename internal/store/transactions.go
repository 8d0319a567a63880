package store

import (
	"time"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/pagination"

	"gorm.io/gorm"
)

// TransactionFilter narrows a transaction listing. Zero fields are ignored.
type TransactionFilter struct {
	BudgetID   string
	AccountID  string
	CategoryID *string
	FromDate   *time.Time
	ToDate     *time.Time
	Cleared    *bool
}

func (f TransactionFilter) apply(q *gorm.DB) *gorm.DB {
	if f.BudgetID != "" {
		q = q.Where("budget_id = ?", f.BudgetID)
	}
	if f.AccountID != "" {
		q = q.Where("account_id = ?", f.AccountID)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Cleared != nil {
		q = q.Where("is_cleared = ?", *f.Cleared)
	}
	return q
}

// CreateTransaction inserts t.
func (s *Store) CreateTransaction(t *models.Transaction) error {
	return writeErr(s.db.Create(t).Error)
}

// GetTransaction loads one transaction owned by userID.
func (s *Store) GetTransaction(userID, transactionID string) (*models.Transaction, error) {
	var t models.Transaction
	if err := s.scoped(userID).Where("id = ?", transactionID).First(&t).Error; err != nil {
		return nil, lookupErr(err, apperrors.ErrTransactionNotFound)
	}
	return &t, nil
}

// SaveTransaction writes every column of t.
func (s *Store) SaveTransaction(t *models.Transaction) error {
	return writeErr(s.db.Save(t).Error)
}

// DeleteTransaction removes one transaction row.
func (s *Store) DeleteTransaction(userID, transactionID string) error {
	res := s.scoped(userID).Where("id = ?", transactionID).Delete(&models.Transaction{})
	if res.Error != nil {
		return apperrors.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// AccountTransactions returns every transaction on the account.
func (s *Store) AccountTransactions(userID, accountID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.scoped(userID).Where("account_id = ?", accountID).Find(&txs).Error; err != nil {
		return nil, apperrors.Store(err)
	}
	return txs, nil
}

// TransferCounterpart returns the other row sharing transferID, or nil.
func (s *Store) TransferCounterpart(userID, transferID, transactionID string) (*models.Transaction, error) {
	var txs []models.Transaction
	err := s.scoped(userID).
		Where("transfer_id = ? AND id <> ?", transferID, transactionID).
		Limit(1).
		Find(&txs).Error
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if len(txs) == 0 {
		return nil, nil
	}
	return &txs[0], nil
}

// ListTransactions returns one page of transactions, newest first.
func (s *Store) ListTransactions(userID string, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := filter.apply(s.scoped(userID).Model(&models.Transaction{}))

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Store(err)
	}

	var txs []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).Find(&txs).Error; err != nil {
		return nil, apperrors.Store(err)
	}

	result := pagination.NewPageResponse(txs, page, totalItems)
	return &result, nil
}

// CountCategoryTransactions counts transactions categorized to categoryID.
func (s *Store) CountCategoryTransactions(userID, categoryID string) (int64, error) {
	var n int64
	err := s.scoped(userID).Model(&models.Transaction{}).Where("category_id = ?", categoryID).Count(&n).Error
	if err != nil {
		return 0, apperrors.Store(err)
	}
	return n, nil
}
