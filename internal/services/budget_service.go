package services

import (
	"context"
	"strings"

	"budgetwise/internal/calendar"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	writer *Writer
	rta    ReadyToAssignCalculator
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(writer *Writer) BudgetServicer {
	return &budgetService{writer: writer}
}

func applyBudgetInput(b *models.Budget, in BudgetInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
		}
		b.Name = name
	}
	if in.Currency != nil {
		b.Currency = strings.ToUpper(*in.Currency)
	}
	if in.CurrencyPlacement != nil {
		switch *in.CurrencyPlacement {
		case models.CurrencyPlacementBefore, models.CurrencyPlacementAfter:
			b.CurrencyPlacement = *in.CurrencyPlacement
		default:
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "currency_placement must be before or after")
		}
	}
	if in.NumberFormat != nil {
		b.NumberFormat = *in.NumberFormat
	}
	if in.DateFormat != nil {
		b.DateFormat = *in.DateFormat
	}
	if in.Theme != nil {
		b.Theme = *in.Theme
	}
	return nil
}

// CreateBudget creates a budget together with its system category groups.
func (s *budgetService) CreateBudget(ctx context.Context, userID string, in BudgetInput) (*models.Budget, error) {
	if in.Name == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	budget := &models.Budget{
		UserID:            userID,
		Currency:          "USD",
		CurrencyPlacement: models.CurrencyPlacementBefore,
		NumberFormat:      "1,234.56",
		DateFormat:        "YYYY-MM-DD",
		Theme:             "light",
	}
	if err := applyBudgetInput(budget, in); err != nil {
		return nil, err
	}

	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		if err := st.CreateBudget(budget); err != nil {
			return err
		}
		for i, name := range []string{models.CreditCardPaymentsGroup, models.HiddenCategoriesGroup} {
			group := &models.CategoryGroup{
				UserID:        userID,
				BudgetID:      budget.ID,
				Name:          name,
				DisplayOrder:  i,
				IsSystemGroup: true,
				IsHidden:      name == models.HiddenCategoriesGroup,
			}
			if err := st.CreateCategoryGroup(group); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return budget, nil
}

// GetUserBudgets lists the user's budgets.
func (s *budgetService) GetUserBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	return s.writer.Read(ctx).ListBudgets(userID)
}

// GetBudgetByID retrieves a budget by ID for a specific user.
func (s *budgetService) GetBudgetByID(ctx context.Context, userID, budgetID string) (*models.Budget, error) {
	return s.writer.Read(ctx).GetBudget(userID, budgetID)
}

// UpdateBudget updates a budget's settings.
func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID string, in BudgetInput) (*models.Budget, error) {
	var budget *models.Budget
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		var err error
		if budget, err = st.GetBudget(userID, budgetID); err != nil {
			return err
		}
		if err := applyBudgetInput(budget, in); err != nil {
			return err
		}
		return st.SaveBudget(budget)
	})
	if err != nil {
		return nil, err
	}
	return budget, nil
}

// DeleteBudget deletes a budget and everything in it.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	return s.writer.Write(ctx, userID, func(st *store.Store) error {
		return st.DeleteBudget(userID, budgetID)
	})
}

// GetReadyToAssign computes the budget's Ready-to-Assign for the user's month.
func (s *budgetService) GetReadyToAssign(ctx context.Context, userID, budgetID string, ud calendar.UserDate) (*ReadyToAssign, error) {
	st := s.writer.Read(ctx)
	if _, err := st.GetBudget(userID, budgetID); err != nil {
		return nil, err
	}
	rta, err := s.rta.Compute(st, userID, budgetID, ud.Current)
	if err != nil {
		return nil, err
	}
	return &ReadyToAssign{BudgetID: budgetID, Month: ud.Current, ReadyToAssign: rta}, nil
}
