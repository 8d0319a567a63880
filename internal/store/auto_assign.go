package store

import (
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
)

// CreateAutoAssignItems inserts the items of one configuration.
func (s *Store) CreateAutoAssignItems(items []models.AutoAssignItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := s.db.Create(&items).Error; err != nil {
		if IsDuplicate(err) {
			return apperrors.ErrDuplicateAutoAssignName
		}
		return apperrors.Store(err)
	}
	return nil
}

// ListAutoAssignItems returns every item of every configuration in a budget.
func (s *Store) ListAutoAssignItems(userID, budgetID string) ([]models.AutoAssignItem, error) {
	var items []models.AutoAssignItem
	err := s.scoped(userID).
		Where("budget_id = ?", budgetID).
		Order("name ASC, created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return items, nil
}

// AutoAssignItems returns the items of one named configuration.
func (s *Store) AutoAssignItems(userID, budgetID, name string) ([]models.AutoAssignItem, error) {
	var items []models.AutoAssignItem
	err := s.scoped(userID).
		Where("budget_id = ? AND name = ?", budgetID, name).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return items, nil
}

// DeleteAutoAssignItems removes a named configuration and reports how many
// items it had.
func (s *Store) DeleteAutoAssignItems(userID, budgetID, name string) (int64, error) {
	res := s.scoped(userID).Where("budget_id = ? AND name = ?", budgetID, name).Delete(&models.AutoAssignItem{})
	if res.Error != nil {
		return 0, apperrors.Store(res.Error)
	}
	return res.RowsAffected, nil
}
