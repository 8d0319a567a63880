package store

import (
	"errors"

	"budgetwise/internal/calendar"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"

	"gorm.io/gorm"
)

// BalanceDelta is a signed change to the monetary columns of a balance row.
type BalanceDelta struct {
	Assigned  int64
	Activity  int64
	Available int64
}

// IsZero reports whether applying d would change nothing.
func (d BalanceDelta) IsZero() bool {
	return d.Assigned == 0 && d.Activity == 0 && d.Available == 0
}

// GetBalance returns the row for (category, month), or nil when absent.
func (s *Store) GetBalance(userID, categoryID string, m calendar.Month) (*models.CategoryBalance, error) {
	var b models.CategoryBalance
	err := s.scoped(userID).
		Where("category_id = ? AND year = ? AND month = ?", categoryID, m.Year, m.Month).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return &b, nil
}

// EnsureBalance returns the row for (category, month), creating a zero row
// when absent.
func (s *Store) EnsureBalance(userID string, cat *models.Category, m calendar.Month) (*models.CategoryBalance, error) {
	b, err := s.GetBalance(userID, cat.ID, m)
	if err != nil || b != nil {
		return b, err
	}
	b = &models.CategoryBalance{
		UserID:     userID,
		BudgetID:   cat.BudgetID,
		CategoryID: cat.ID,
		Year:       m.Year,
		Month:      m.Month,
	}
	if err := s.db.Create(b).Error; err != nil {
		return nil, apperrors.Store(err)
	}
	return b, nil
}

// AddToBalance applies d to the (category, month) row, creating it first if
// needed, and returns the row as it stands afterwards.
func (s *Store) AddToBalance(userID string, cat *models.Category, m calendar.Month, d BalanceDelta) (*models.CategoryBalance, error) {
	b, err := s.EnsureBalance(userID, cat, m)
	if err != nil {
		return nil, err
	}
	if d.IsZero() {
		return b, nil
	}
	err = s.scoped(userID).Model(&models.CategoryBalance{}).Where("id = ?", b.ID).Updates(map[string]any{
		"assigned":  gorm.Expr("assigned + ?", d.Assigned),
		"activity":  gorm.Expr("activity + ?", d.Activity),
		"available": gorm.Expr("available + ?", d.Available),
	}).Error
	if err != nil {
		return nil, apperrors.Store(err)
	}
	b.Assigned += d.Assigned
	b.Activity += d.Activity
	b.Available += d.Available
	return b, nil
}

// SaveBalance writes every column of b.
func (s *Store) SaveBalance(b *models.CategoryBalance) error {
	return writeErr(s.db.Save(b).Error)
}

// ListBalances returns a budget's rows for one month.
func (s *Store) ListBalances(userID, budgetID string, m calendar.Month) ([]models.CategoryBalance, error) {
	var rows []models.CategoryBalance
	err := s.scoped(userID).
		Where("budget_id = ? AND year = ? AND month = ?", budgetID, m.Year, m.Month).
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return rows, nil
}

// CountBalances counts a budget's rows in one month.
func (s *Store) CountBalances(userID, budgetID string, m calendar.Month) (int64, error) {
	var n int64
	err := s.scoped(userID).Model(&models.CategoryBalance{}).
		Where("budget_id = ? AND year = ? AND month = ?", budgetID, m.Year, m.Month).
		Count(&n).Error
	if err != nil {
		return 0, apperrors.Store(err)
	}
	return n, nil
}

// PositiveAvailableSum totals the positive available of a budget's rows in one month.
func (s *Store) PositiveAvailableSum(userID, budgetID string, m calendar.Month) (int64, error) {
	var total int64
	err := s.scoped(userID).Model(&models.CategoryBalance{}).
		Where("budget_id = ? AND year = ? AND month = ? AND available > 0", budgetID, m.Year, m.Month).
		Select("COALESCE(SUM(available), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Store(err)
	}
	return total, nil
}

// LatestBalanceMonth returns the most recent month holding rows for the
// budget. ok is false when the budget has none.
func (s *Store) LatestBalanceMonth(userID, budgetID string) (m calendar.Month, ok bool, err error) {
	var rows []models.CategoryBalance
	err = s.scoped(userID).
		Where("budget_id = ?", budgetID).
		Order("year DESC, month DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return calendar.Month{}, false, apperrors.Store(err)
	}
	if len(rows) == 0 {
		return calendar.Month{}, false, nil
	}
	return calendar.Month{Year: rows[0].Year, Month: rows[0].Month}, true, nil
}

// LatestBalanceBefore returns the category's most recent row strictly before
// m, or nil.
func (s *Store) LatestBalanceBefore(userID, categoryID string, m calendar.Month) (*models.CategoryBalance, error) {
	var rows []models.CategoryBalance
	err := s.scoped(userID).
		Where("category_id = ?", categoryID).
		Where("year < ? OR (year = ? AND month < ?)", m.Year, m.Year, m.Month).
		Order("year DESC, month DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
