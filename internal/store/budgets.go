package store

import (
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
)

// CreateBudget inserts b, reporting a name clash as DUPLICATE_BUDGET_NAME.
func (s *Store) CreateBudget(b *models.Budget) error {
	if err := s.db.Create(b).Error; err != nil {
		if IsDuplicate(err) {
			return apperrors.ErrDuplicateBudgetName
		}
		return apperrors.Store(err)
	}
	return nil
}

// GetBudget loads one budget owned by userID.
func (s *Store) GetBudget(userID, budgetID string) (*models.Budget, error) {
	var b models.Budget
	if err := s.scoped(userID).Where("id = ?", budgetID).First(&b).Error; err != nil {
		return nil, lookupErr(err, apperrors.ErrBudgetNotFound)
	}
	return &b, nil
}

// ListBudgets returns the user's budgets ordered by name.
func (s *Store) ListBudgets(userID string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.scoped(userID).Order("name ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Store(err)
	}
	return budgets, nil
}

// SaveBudget writes every column of b.
func (s *Store) SaveBudget(b *models.Budget) error {
	if err := s.db.Save(b).Error; err != nil {
		if IsDuplicate(err) {
			return apperrors.ErrDuplicateBudgetName
		}
		return apperrors.Store(err)
	}
	return nil
}

// DeleteBudget removes the budget and every record below it. Children go
// first so the delete also works where foreign keys are not enforced.
func (s *Store) DeleteBudget(userID, budgetID string) error {
	children := []any{
		&models.CreditCardDebt{},
		&models.Transaction{},
		&models.CategoryBalance{},
		&models.AutoAssignItem{},
		&models.Category{},
		&models.CategoryGroup{},
		&models.Account{},
	}
	for _, model := range children {
		if err := s.scoped(userID).Where("budget_id = ?", budgetID).Delete(model).Error; err != nil {
			return apperrors.Store(err)
		}
	}
	res := s.scoped(userID).Where("id = ?", budgetID).Delete(&models.Budget{})
	if res.Error != nil {
		return apperrors.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}
