package services

import (
	"context"
	"strings"

	"budgetwise/internal/calendar"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// categoryService handles category-related business logic. Monetary edits
// go through the assignment service.
type categoryService struct {
	writer *Writer
	ledger DebtLedger
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(writer *Writer) CategoryServicer {
	return &categoryService{writer: writer}
}

// CreateCategory adds a category at the end of a user group.
func (s *categoryService) CreateCategory(ctx context.Context, userID, groupID, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	var category *models.Category
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		group, err := st.GetCategoryGroup(userID, groupID)
		if err != nil {
			return err
		}
		if group.IsSystemGroup {
			return apperrors.ErrSystemGroupCategory
		}
		order, err := st.NextCategoryOrder(userID, groupID)
		if err != nil {
			return err
		}
		category = &models.Category{
			UserID:          userID,
			BudgetID:        group.BudgetID,
			CategoryGroupID: group.ID,
			Name:            name,
			DisplayOrder:    order,
		}
		return st.CreateCategory(category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func withBalances(st *store.Store, userID, budgetID string, cats []models.Category, m calendar.Month) ([]CategoryWithBalance, error) {
	rows, err := st.ListBalances(userID, budgetID, m)
	if err != nil {
		return nil, err
	}
	byCategory := make(map[string]models.CategoryBalance, len(rows))
	for _, r := range rows {
		byCategory[r.CategoryID] = r
	}

	out := make([]CategoryWithBalance, 0, len(cats))
	for _, c := range cats {
		b := byCategory[c.ID]
		out = append(out, CategoryWithBalance{
			Category:  c,
			Year:      m.Year,
			Month:     m.Month,
			Assigned:  b.Assigned,
			Activity:  b.Activity,
			Available: b.Available,
		})
	}
	return out, nil
}

// GetGroupCategories lists a group's categories with their balances for m.
func (s *categoryService) GetGroupCategories(ctx context.Context, userID, groupID string, m calendar.Month) ([]CategoryWithBalance, error) {
	st := s.writer.Read(ctx)
	group, err := st.GetCategoryGroup(userID, groupID)
	if err != nil {
		return nil, err
	}
	cats, err := st.ListCategories(userID, group.BudgetID, group.ID)
	if err != nil {
		return nil, err
	}
	return withBalances(st, userID, group.BudgetID, cats, m)
}

// GetBudgetCategories lists a budget's categories with their balances for m.
func (s *categoryService) GetBudgetCategories(ctx context.Context, userID, budgetID string, m calendar.Month) ([]CategoryWithBalance, error) {
	st := s.writer.Read(ctx)
	if _, err := st.GetBudget(userID, budgetID); err != nil {
		return nil, err
	}
	cats, err := st.ListCategories(userID, budgetID, "")
	if err != nil {
		return nil, err
	}
	return withBalances(st, userID, budgetID, cats, m)
}

// GetCategoryByID retrieves a category by ID for a specific user.
func (s *categoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*models.Category, error) {
	return s.writer.Read(ctx).GetCategory(userID, categoryID)
}

// DeleteCategory deletes a category no transaction refers to. Payment
// categories cannot be deleted.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	return s.writer.Write(ctx, userID, func(st *store.Store) error {
		cat, err := st.GetCategory(userID, categoryID)
		if err != nil {
			return err
		}
		if cat.IsCreditCardPayment {
			return apperrors.ErrPaymentCategoryProtected
		}
		n, err := st.CountCategoryTransactions(userID, categoryID)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperrors.ErrCategoryInUse
		}
		return st.DeleteCategory(userID, categoryID)
	})
}

// ReorderCategories sets display_order to each category's position in
// categoryIDs. Repeating the same call changes nothing.
func (s *categoryService) ReorderCategories(ctx context.Context, userID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category_ids is required")
	}
	return s.writer.Write(ctx, userID, func(st *store.Store) error {
		cats, err := st.GetCategories(userID, categoryIDs)
		if err != nil {
			return err
		}
		if len(cats) != len(uniq(categoryIDs)) {
			return apperrors.ErrCategoryNotFound
		}
		for _, c := range cats[1:] {
			if c.BudgetID != cats[0].BudgetID {
				return apperrors.ErrCrossBudget
			}
		}
		for i, id := range categoryIDs {
			if err := st.SetCategoryOrder(userID, id, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetDebtSummary totals the card debt a category holds or caused.
func (s *categoryService) GetDebtSummary(ctx context.Context, userID, categoryID string) (*DebtSummary, error) {
	st := s.writer.Read(ctx)
	cat, err := st.GetCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}
	totals, err := s.ledger.Summary(st, userID, cat)
	if err != nil {
		return nil, err
	}
	return &DebtSummary{CategoryID: cat.ID, IsPaymentCategory: cat.IsCreditCardPayment, Totals: totals}, nil
}
