package store

import (
	"errors"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"

	"gorm.io/gorm"
)

// CreateCategoryGroup inserts g.
func (s *Store) CreateCategoryGroup(g *models.CategoryGroup) error {
	return writeErr(s.db.Create(g).Error)
}

// GetCategoryGroup loads one group owned by userID.
func (s *Store) GetCategoryGroup(userID, groupID string) (*models.CategoryGroup, error) {
	var g models.CategoryGroup
	if err := s.scoped(userID).Where("id = ?", groupID).First(&g).Error; err != nil {
		return nil, lookupErr(err, apperrors.ErrCategoryGroupNotFound)
	}
	return &g, nil
}

// SystemGroup returns the budget's system group with the given name; nil when absent.
func (s *Store) SystemGroup(userID, budgetID, name string) (*models.CategoryGroup, error) {
	var g models.CategoryGroup
	err := s.scoped(userID).
		Where("budget_id = ? AND name = ? AND is_system_group = ?", budgetID, name, true).
		First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return &g, nil
}

// ListCategoryGroups returns a budget's groups with their categories, both in display order.
func (s *Store) ListCategoryGroups(userID, budgetID string) ([]models.CategoryGroup, error) {
	var groups []models.CategoryGroup
	err := s.scoped(userID).
		Where("budget_id = ?", budgetID).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, name ASC")
		}).
		Order("display_order ASC, name ASC").
		Find(&groups).Error
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return groups, nil
}

// SaveCategoryGroup writes every column of g.
func (s *Store) SaveCategoryGroup(g *models.CategoryGroup) error {
	return writeErr(s.db.Omit("Categories").Save(g).Error)
}

// DeleteCategoryGroup removes one group row.
func (s *Store) DeleteCategoryGroup(userID, groupID string) error {
	return writeErr(s.scoped(userID).Where("id = ?", groupID).Delete(&models.CategoryGroup{}).Error)
}

// NextGroupOrder returns one past the highest display order in the budget.
func (s *Store) NextGroupOrder(userID, budgetID string) (int, error) {
	last := -1
	err := s.scoped(userID).Model(&models.CategoryGroup{}).
		Where("budget_id = ?", budgetID).
		Select("COALESCE(MAX(display_order), -1)").
		Scan(&last).Error
	if err != nil {
		return 0, apperrors.Store(err)
	}
	return last + 1, nil
}

// CreateCategory inserts c.
func (s *Store) CreateCategory(c *models.Category) error {
	return writeErr(s.db.Create(c).Error)
}

// GetCategory loads one category owned by userID.
func (s *Store) GetCategory(userID, categoryID string) (*models.Category, error) {
	var c models.Category
	if err := s.scoped(userID).Where("id = ?", categoryID).First(&c).Error; err != nil {
		return nil, lookupErr(err, apperrors.ErrCategoryNotFound)
	}
	return &c, nil
}

// FindCategory looks a category up by name within a budget; nil when absent.
func (s *Store) FindCategory(userID, budgetID, name string) (*models.Category, error) {
	var c models.Category
	err := s.scoped(userID).Where("budget_id = ? AND name = ?", budgetID, name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return &c, nil
}

// ListCategories returns the categories of a budget, optionally limited to one group.
func (s *Store) ListCategories(userID, budgetID, groupID string) ([]models.Category, error) {
	q := s.scoped(userID)
	if budgetID != "" {
		q = q.Where("budget_id = ?", budgetID)
	}
	if groupID != "" {
		q = q.Where("category_group_id = ?", groupID)
	}
	var cats []models.Category
	if err := q.Order("display_order ASC, name ASC").Find(&cats).Error; err != nil {
		return nil, apperrors.Store(err)
	}
	return cats, nil
}

// HiddenFrom returns the categories that were hidden out of groupID.
func (s *Store) HiddenFrom(userID, groupID string) ([]models.Category, error) {
	var cats []models.Category
	if err := s.scoped(userID).Where("hidden_from_group_id = ?", groupID).Find(&cats).Error; err != nil {
		return nil, apperrors.Store(err)
	}
	return cats, nil
}

// GetCategoryGroups loads the given groups; missing ids are simply absent.
func (s *Store) GetCategoryGroups(userID string, ids []string) ([]models.CategoryGroup, error) {
	var groups []models.CategoryGroup
	if len(ids) == 0 {
		return groups, nil
	}
	if err := s.scoped(userID).Where("id IN ?", ids).Find(&groups).Error; err != nil {
		return nil, apperrors.Store(err)
	}
	return groups, nil
}

// GetCategories loads the given categories; missing ids are simply absent.
func (s *Store) GetCategories(userID string, ids []string) ([]models.Category, error) {
	var cats []models.Category
	if len(ids) == 0 {
		return cats, nil
	}
	if err := s.scoped(userID).Where("id IN ?", ids).Find(&cats).Error; err != nil {
		return nil, apperrors.Store(err)
	}
	return cats, nil
}

// SaveCategory writes every column of c.
func (s *Store) SaveCategory(c *models.Category) error {
	return writeErr(s.db.Save(c).Error)
}

// SetCategoryOrder updates only display_order.
func (s *Store) SetCategoryOrder(userID, categoryID string, order int) error {
	return writeErr(s.scoped(userID).Model(&models.Category{}).
		Where("id = ?", categoryID).
		Update("display_order", order).Error)
}

// SetGroupOrder updates only display_order.
func (s *Store) SetGroupOrder(userID, groupID string, order int) error {
	return writeErr(s.scoped(userID).Model(&models.CategoryGroup{}).
		Where("id = ?", groupID).
		Update("display_order", order).Error)
}

// DeleteCategory removes the category together with its balances and
// auto-assign items.
func (s *Store) DeleteCategory(userID, categoryID string) error {
	if err := s.scoped(userID).Where("category_id = ?", categoryID).Delete(&models.CategoryBalance{}).Error; err != nil {
		return apperrors.Store(err)
	}
	if err := s.scoped(userID).Where("category_id = ?", categoryID).Delete(&models.AutoAssignItem{}).Error; err != nil {
		return apperrors.Store(err)
	}
	return writeErr(s.scoped(userID).Where("id = ?", categoryID).Delete(&models.Category{}).Error)
}

// CountGroupCategories counts the categories currently in groupID.
func (s *Store) CountGroupCategories(userID, groupID string) (int64, error) {
	var n int64
	err := s.scoped(userID).Model(&models.Category{}).Where("category_group_id = ?", groupID).Count(&n).Error
	if err != nil {
		return 0, apperrors.Store(err)
	}
	return n, nil
}

// NextCategoryOrder returns one past the highest display order in the group.
func (s *Store) NextCategoryOrder(userID, groupID string) (int, error) {
	last := -1
	err := s.scoped(userID).Model(&models.Category{}).
		Where("category_group_id = ?", groupID).
		Select("COALESCE(MAX(display_order), -1)").
		Scan(&last).Error
	if err != nil {
		return 0, apperrors.Store(err)
	}
	return last + 1, nil
}
