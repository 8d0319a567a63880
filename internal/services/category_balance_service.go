package services

import (
	"context"

	"budgetwise/internal/calendar"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// categoryBalanceService exposes balance rows directly.
type categoryBalanceService struct {
	writer      *Writer
	assignments AssignmentServicer
}

// NewCategoryBalanceService creates a new CategoryBalanceServicer.
func NewCategoryBalanceService(writer *Writer, assignments AssignmentServicer) CategoryBalanceServicer {
	return &categoryBalanceService{writer: writer, assignments: assignments}
}

// GetBalance returns the category's row for m. A month without a row reads
// as zeros.
func (s *categoryBalanceService) GetBalance(ctx context.Context, userID, categoryID string, m calendar.Month) (*models.CategoryBalance, error) {
	st := s.writer.Read(ctx)
	cat, err := st.GetCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}
	b, err := st.GetBalance(userID, categoryID, m)
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = &models.CategoryBalance{
			UserID:     userID,
			BudgetID:   cat.BudgetID,
			CategoryID: cat.ID,
			Year:       m.Year,
			Month:      m.Month,
		}
	}
	return b, nil
}

// UpdateBalance applies the monetary fields of patch to month m. Coverage
// and Ready to Assign are settled in m as well.
func (s *categoryBalanceService) UpdateBalance(ctx context.Context, userID, categoryID string, patch CategoryPatch, ud calendar.UserDate, m calendar.Month) (*CategoryUpdate, error) {
	patch.Name, patch.DisplayOrder = nil, nil
	ud.Current = m
	return s.assignments.UpdateCategory(ctx, userID, categoryID, patch, ud)
}

// EnsureMonth creates a row for every category of the budget that has none
// in m. A new row carries forward the positive available of the category's
// latest earlier month. It returns the rows it created.
func (s *categoryBalanceService) EnsureMonth(ctx context.Context, userID, budgetID string, m calendar.Month) ([]models.CategoryBalance, error) {
	created := []models.CategoryBalance{}
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		if _, err := st.GetBudget(userID, budgetID); err != nil {
			return err
		}
		cats, err := st.ListCategories(userID, budgetID, "")
		if err != nil {
			return err
		}
		existing, err := st.ListBalances(userID, budgetID, m)
		if err != nil {
			return err
		}
		have := make(map[string]bool, len(existing))
		for _, b := range existing {
			have[b.CategoryID] = true
		}

		for i := range cats {
			if have[cats[i].ID] {
				continue
			}
			prev, err := st.LatestBalanceBefore(userID, cats[i].ID, m)
			if err != nil {
				return err
			}
			var carry int64
			if prev != nil {
				carry = max(0, prev.Available)
			}
			b, err := st.AddToBalance(userID, &cats[i], m, store.BalanceDelta{Available: carry})
			if err != nil {
				return err
			}
			created = append(created, *b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
