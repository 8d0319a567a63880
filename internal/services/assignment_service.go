package services

import (
	"context"
	"strings"

	"budgetwise/internal/calendar"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// assignmentService moves money into, out of and between categories. Any
// increase of a category's money is offered to its uncovered card debts.
type assignmentService struct {
	writer   *Writer
	coverage CoverageEngine
	rta      ReadyToAssignCalculator
}

// NewAssignmentService creates a new AssignmentServicer.
func NewAssignmentService(writer *Writer) AssignmentServicer {
	return &assignmentService{writer: writer}
}

func validateMoveAmount(amount int64) error {
	if amount < 0 {
		return apperrors.ErrNegativeAssignment
	}
	if amount == 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	return nil
}

func (s *assignmentService) cover(ctx context.Context, st *store.Store, userID string, cat *models.Category, amount int64, current calendar.Month) {
	if amount <= 0 {
		return
	}
	guardCoverage(ctx, st, userID, "category", cat.ID, func(inner *store.Store) error {
		_, err := s.coverage.CoverAssignment(inner, userID, cat, amount, current)
		return err
	})
}

// UpdateCategory applies a partial update to a category and to its balance
// in the user's current month. Setting assigned moves available by the same
// difference; setting activity does too; setting available overrides it.
func (s *assignmentService) UpdateCategory(ctx context.Context, userID, categoryID string, patch CategoryPatch, ud calendar.UserDate) (*CategoryUpdate, error) {
	if patch.Assigned != nil && *patch.Assigned < 0 {
		return nil, apperrors.ErrNegativeAssignment
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name cannot be empty")
	}

	var result *CategoryUpdate
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		cat, err := st.GetCategory(userID, categoryID)
		if err != nil {
			return err
		}

		if cat.IsCreditCardPayment {
			if patch.Name != nil && strings.TrimSpace(*patch.Name) != cat.Name {
				return apperrors.ErrPaymentCategoryProtected
			}
			if patch.Activity != nil {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "activity of a payment category follows card spending")
			}
		}

		changed := false
		if patch.Name != nil && strings.TrimSpace(*patch.Name) != cat.Name {
			cat.Name = strings.TrimSpace(*patch.Name)
			changed = true
		}
		if patch.DisplayOrder != nil && *patch.DisplayOrder != cat.DisplayOrder {
			cat.DisplayOrder = *patch.DisplayOrder
			changed = true
		}
		if changed {
			if err := st.SaveCategory(cat); err != nil {
				return err
			}
		}

		result = &CategoryUpdate{Category: cat}
		if patch.HasMoney() {
			bal, err := st.EnsureBalance(userID, cat, ud.Current)
			if err != nil {
				return err
			}

			var increase int64
			if patch.Assigned != nil {
				delta := *patch.Assigned - bal.Assigned
				bal.Assigned = *patch.Assigned
				bal.Available += delta
				increase = max(0, delta)
			}
			if patch.Activity != nil {
				delta := *patch.Activity - bal.Activity
				bal.Activity = *patch.Activity
				bal.Available += delta
			}
			if patch.Available != nil {
				bal.Available = *patch.Available
			}
			if err := st.SaveBalance(bal); err != nil {
				return err
			}
			s.cover(ctx, st, userID, cat, increase, ud.Current)
			result.Balance = bal
		}

		rta, err := s.rta.Compute(st, userID, cat.BudgetID, ud.Current)
		if err != nil {
			return err
		}
		result.ReadyToAssign = rta
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MoveMoney moves assigned money between two categories of one budget. The
// source must have at least amount available.
func (s *assignmentService) MoveMoney(ctx context.Context, userID, fromCategoryID, toCategoryID string, amount int64, ud calendar.UserDate) (*MoneyMove, error) {
	if err := validateMoveAmount(amount); err != nil {
		return nil, err
	}
	if fromCategoryID == toCategoryID {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source and destination must differ")
	}

	var result *MoneyMove
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		src, err := st.GetCategory(userID, fromCategoryID)
		if err != nil {
			return err
		}
		dst, err := st.GetCategory(userID, toCategoryID)
		if err != nil {
			return err
		}
		if src.BudgetID != dst.BudgetID {
			return apperrors.ErrCrossBudget
		}

		available, err := availableIn(st, userID, src.ID, ud.Current)
		if err != nil {
			return err
		}
		if available < amount {
			return apperrors.ErrInsufficientAvailable
		}

		srcBal, err := st.AddToBalance(userID, src, ud.Current, store.BalanceDelta{Assigned: -amount, Available: -amount})
		if err != nil {
			return err
		}
		dstBal, err := st.AddToBalance(userID, dst, ud.Current, store.BalanceDelta{Assigned: amount, Available: amount})
		if err != nil {
			return err
		}
		s.cover(ctx, st, userID, dst, amount, ud.Current)

		rta, err := s.rta.Compute(st, userID, src.BudgetID, ud.Current)
		if err != nil {
			return err
		}
		result = &MoneyMove{Source: srcBal, Destination: dstBal, ReadyToAssign: rta}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MoveToReadyToAssign un-assigns amount from a category.
func (s *assignmentService) MoveToReadyToAssign(ctx context.Context, userID, categoryID string, amount int64, ud calendar.UserDate) (*MoneyMove, error) {
	if err := validateMoveAmount(amount); err != nil {
		return nil, err
	}

	var result *MoneyMove
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		cat, err := st.GetCategory(userID, categoryID)
		if err != nil {
			return err
		}
		available, err := availableIn(st, userID, cat.ID, ud.Current)
		if err != nil {
			return err
		}
		if available < amount {
			return apperrors.ErrInsufficientAvailable
		}

		bal, err := st.AddToBalance(userID, cat, ud.Current, store.BalanceDelta{Assigned: -amount, Available: -amount})
		if err != nil {
			return err
		}
		rta, err := s.rta.Compute(st, userID, cat.BudgetID, ud.Current)
		if err != nil {
			return err
		}
		result = &MoneyMove{Source: bal, ReadyToAssign: rta}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PullFromReadyToAssign assigns amount from the budget's pool to a category.
func (s *assignmentService) PullFromReadyToAssign(ctx context.Context, userID, categoryID string, amount int64, ud calendar.UserDate) (*MoneyMove, error) {
	if err := validateMoveAmount(amount); err != nil {
		return nil, err
	}

	var result *MoneyMove
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		cat, err := st.GetCategory(userID, categoryID)
		if err != nil {
			return err
		}
		pool, err := s.rta.Compute(st, userID, cat.BudgetID, ud.Current)
		if err != nil {
			return err
		}
		if pool < amount {
			return apperrors.ErrInsufficientReadyToAssign
		}

		bal, err := st.AddToBalance(userID, cat, ud.Current, store.BalanceDelta{Assigned: amount, Available: amount})
		if err != nil {
			return err
		}
		s.cover(ctx, st, userID, cat, amount, ud.Current)

		rta, err := s.rta.Compute(st, userID, cat.BudgetID, ud.Current)
		if err != nil {
			return err
		}
		result = &MoneyMove{Destination: bal, ReadyToAssign: rta}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyAutoAssign adds every item of the named configuration to its
// category's assigned for the user's current month.
func (s *assignmentService) ApplyAutoAssign(ctx context.Context, userID, budgetID, name string, ud calendar.UserDate) (*AutoAssignResult, error) {
	var result *AutoAssignResult
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		if _, err := st.GetBudget(userID, budgetID); err != nil {
			return err
		}
		items, err := st.AutoAssignItems(userID, budgetID, name)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return apperrors.ErrAutoAssignNotFound
		}

		cats, err := categoriesByID(st, userID, items)
		if err != nil {
			return err
		}
		hidden, err := st.SystemGroup(userID, budgetID, models.HiddenCategoriesGroup)
		if err != nil {
			return err
		}

		applied := make([]AppliedCategory, 0, len(items))
		for _, item := range items {
			cat := cats[item.CategoryID]
			if hidden != nil && cat.CategoryGroupID == hidden.ID {
				return apperrors.ErrHiddenCategoryAutoAssign
			}
			bal, err := st.AddToBalance(userID, cat, ud.Current, store.BalanceDelta{Assigned: item.Amount, Available: item.Amount})
			if err != nil {
				return err
			}
			applied = append(applied, AppliedCategory{
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
				Amount:       item.Amount,
				Assigned:     bal.Assigned,
				Available:    bal.Available,
			})
		}
		for _, a := range applied {
			s.cover(ctx, st, userID, cats[a.CategoryID], a.Amount, ud.Current)
		}

		rta, err := s.rta.Compute(st, userID, budgetID, ud.Current)
		if err != nil {
			return err
		}
		result = &AutoAssignResult{
			Success:           true,
			AppliedCount:      len(applied),
			ReadyToAssign:     rta,
			AppliedCategories: applied,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// categoriesByID loads the categories referenced by items, failing if any
// is missing.
func categoriesByID(st *store.Store, userID string, items []models.AutoAssignItem) (map[string]*models.Category, error) {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.CategoryID)
	}
	cats, err := st.GetCategories(userID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Category, len(cats))
	for i := range cats {
		byID[cats[i].ID] = &cats[i]
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, apperrors.ErrCategoryNotFound
		}
	}
	return byID, nil
}
