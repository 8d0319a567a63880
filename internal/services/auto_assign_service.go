package services

import (
	"context"
	"strings"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// autoAssignService manages named auto-assign configurations. Applying one
// is an assignment and lives in the assignment service.
type autoAssignService struct {
	writer *Writer
}

// NewAutoAssignService creates a new AutoAssignServicer.
func NewAutoAssignService(writer *Writer) AutoAssignServicer {
	return &autoAssignService{writer: writer}
}

func validateItems(items []AutoAssignItemInput) error {
	if len(items) == 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one item is required")
	}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.Amount <= 0 {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "item amounts must be greater than zero")
		}
		if seen[item.CategoryID] {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "a category may appear only once")
		}
		seen[item.CategoryID] = true
	}
	return nil
}

// buildItems checks that every item targets a visible category of the budget.
func buildItems(st *store.Store, userID, budgetID, name string, in []AutoAssignItemInput) ([]models.AutoAssignItem, error) {
	ids := make([]string, 0, len(in))
	for _, item := range in {
		ids = append(ids, item.CategoryID)
	}
	cats, err := st.GetCategories(userID, ids)
	if err != nil {
		return nil, err
	}
	if len(cats) != len(ids) {
		return nil, apperrors.ErrCategoryNotFound
	}
	hidden, err := st.SystemGroup(userID, budgetID, models.HiddenCategoriesGroup)
	if err != nil {
		return nil, err
	}
	for _, c := range cats {
		if c.BudgetID != budgetID {
			return nil, apperrors.ErrCrossBudget
		}
		if hidden != nil && c.CategoryGroupID == hidden.ID {
			return nil, apperrors.ErrHiddenCategoryAutoAssign
		}
	}

	items := make([]models.AutoAssignItem, 0, len(in))
	for _, item := range in {
		items = append(items, models.AutoAssignItem{
			UserID:     userID,
			BudgetID:   budgetID,
			Name:       name,
			CategoryID: item.CategoryID,
			Amount:     item.Amount,
		})
	}
	return items, nil
}

func toConfig(budgetID, name string, items []models.AutoAssignItem) AutoAssignConfig {
	cfg := AutoAssignConfig{Name: name, BudgetID: budgetID, Items: items}
	for _, item := range items {
		cfg.Total += item.Amount
	}
	return cfg
}

// CreateConfig saves a new named configuration.
func (s *autoAssignService) CreateConfig(ctx context.Context, userID, budgetID, name string, items []AutoAssignItemInput) (*AutoAssignConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}

	var cfg AutoAssignConfig
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		if _, err := st.GetBudget(userID, budgetID); err != nil {
			return err
		}
		existing, err := st.AutoAssignItems(userID, budgetID, name)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return apperrors.ErrDuplicateAutoAssignName
		}
		rows, err := buildItems(st, userID, budgetID, name, items)
		if err != nil {
			return err
		}
		if err := st.CreateAutoAssignItems(rows); err != nil {
			return err
		}
		cfg = toConfig(budgetID, name, rows)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetBudgetConfigs lists a budget's configurations, ordered by name.
func (s *autoAssignService) GetBudgetConfigs(ctx context.Context, userID, budgetID string) ([]AutoAssignConfig, error) {
	st := s.writer.Read(ctx)
	if _, err := st.GetBudget(userID, budgetID); err != nil {
		return nil, err
	}
	items, err := st.ListAutoAssignItems(userID, budgetID)
	if err != nil {
		return nil, err
	}

	configs := []AutoAssignConfig{}
	for _, item := range items {
		if n := len(configs); n == 0 || configs[n-1].Name != item.Name {
			configs = append(configs, AutoAssignConfig{Name: item.Name, BudgetID: budgetID})
		}
		last := &configs[len(configs)-1]
		last.Items = append(last.Items, item)
		last.Total += item.Amount
	}
	return configs, nil
}

// GetConfig retrieves one configuration by name.
func (s *autoAssignService) GetConfig(ctx context.Context, userID, budgetID, name string) (*AutoAssignConfig, error) {
	st := s.writer.Read(ctx)
	if _, err := st.GetBudget(userID, budgetID); err != nil {
		return nil, err
	}
	items, err := st.AutoAssignItems(userID, budgetID, name)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrAutoAssignNotFound
	}
	cfg := toConfig(budgetID, name, items)
	return &cfg, nil
}

// UpdateConfig renames a configuration and/or replaces its items. A nil
// items slice keeps the current items.
func (s *autoAssignService) UpdateConfig(ctx context.Context, userID, budgetID, name string, newName *string, items []AutoAssignItemInput) (*AutoAssignConfig, error) {
	target := name
	if newName != nil {
		target = strings.TrimSpace(*newName)
		if target == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name cannot be empty")
		}
	}
	if items != nil {
		if err := validateItems(items); err != nil {
			return nil, err
		}
	}

	var cfg AutoAssignConfig
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		current, err := st.AutoAssignItems(userID, budgetID, name)
		if err != nil {
			return err
		}
		if len(current) == 0 {
			return apperrors.ErrAutoAssignNotFound
		}
		if target != name {
			clash, err := st.AutoAssignItems(userID, budgetID, target)
			if err != nil {
				return err
			}
			if len(clash) > 0 {
				return apperrors.ErrDuplicateAutoAssignName
			}
		}

		if items == nil {
			items = make([]AutoAssignItemInput, 0, len(current))
			for _, item := range current {
				items = append(items, AutoAssignItemInput{CategoryID: item.CategoryID, Amount: item.Amount})
			}
		}
		rows, err := buildItems(st, userID, budgetID, target, items)
		if err != nil {
			return err
		}
		if _, err := st.DeleteAutoAssignItems(userID, budgetID, name); err != nil {
			return err
		}
		if err := st.CreateAutoAssignItems(rows); err != nil {
			return err
		}
		cfg = toConfig(budgetID, target, rows)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DeleteConfig removes a configuration.
func (s *autoAssignService) DeleteConfig(ctx context.Context, userID, budgetID, name string) error {
	return s.writer.Write(ctx, userID, func(st *store.Store) error {
		n, err := st.DeleteAutoAssignItems(userID, budgetID, name)
		if err != nil {
			return err
		}
		if n == 0 {
			return apperrors.ErrAutoAssignNotFound
		}
		return nil
	})
}
