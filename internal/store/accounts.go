package store

import (
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
)

// AccountBalances are the projected columns of an account.
type AccountBalances struct {
	Cleared   int64
	Uncleared int64
	Working   int64
}

// CreateAccount inserts a.
func (s *Store) CreateAccount(a *models.Account) error {
	return writeErr(s.db.Create(a).Error)
}

// GetAccount loads one account owned by userID.
func (s *Store) GetAccount(userID, accountID string) (*models.Account, error) {
	var a models.Account
	if err := s.scoped(userID).Where("id = ?", accountID).First(&a).Error; err != nil {
		return nil, lookupErr(err, apperrors.ErrAccountNotFound)
	}
	return &a, nil
}

// ListAccounts returns the budget's accounts in display order.
func (s *Store) ListAccounts(userID, budgetID string) ([]models.Account, error) {
	var accounts []models.Account
	err := s.scoped(userID).
		Where("budget_id = ?", budgetID).
		Order("display_order ASC, created_at ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return accounts, nil
}

// SaveAccount writes every column of a.
func (s *Store) SaveAccount(a *models.Account) error {
	return writeErr(s.db.Save(a).Error)
}

// SetAccountBalances overwrites the projected balance columns.
func (s *Store) SetAccountBalances(userID, accountID string, b AccountBalances) error {
	res := s.scoped(userID).Model(&models.Account{}).Where("id = ?", accountID).Updates(map[string]any{
		"cleared_balance":   b.Cleared,
		"uncleared_balance": b.Uncleared,
		"working_balance":   b.Working,
	})
	if res.Error != nil {
		return apperrors.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

// CashWorkingSum totals the working balance of the budget's active cash accounts.
func (s *Store) CashWorkingSum(userID, budgetID string) (int64, error) {
	var total int64
	err := s.scoped(userID).Model(&models.Account{}).
		Where("budget_id = ? AND type = ? AND is_active = ?", budgetID, models.AccountTypeCash, true).
		Select("COALESCE(SUM(working_balance), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Store(err)
	}
	return total, nil
}
