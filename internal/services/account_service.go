package services

import (
	"context"
	"strings"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// accountService handles account-related business logic.
type accountService struct {
	writer   *Writer
	balances BalanceProjector
	coverage CoverageEngine
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(writer *Writer) AccountServicer {
	return &accountService{writer: writer}
}

// CreateAccount opens an account. A credit account gets its payment
// category in the "Credit Card Payments" group.
func (s *accountService) CreateAccount(ctx context.Context, userID string, in AccountInput) (*models.Account, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	switch in.Type {
	case models.AccountTypeCash, models.AccountTypeCredit, models.AccountTypeTracking:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be cash, credit or tracking")
	}

	account := &models.Account{
		UserID:          userID,
		BudgetID:        in.BudgetID,
		Name:            name,
		Type:            in.Type,
		StartingBalance: in.StartingBalance,
		ClearedBalance:  in.StartingBalance,
		WorkingBalance:  in.StartingBalance,
		IsActive:        true,
		DisplayOrder:    in.DisplayOrder,
	}

	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		if _, err := st.GetBudget(userID, in.BudgetID); err != nil {
			return err
		}
		if err := st.CreateAccount(account); err != nil {
			return err
		}
		if !account.IsCredit() {
			return nil
		}

		group, err := st.SystemGroup(userID, in.BudgetID, models.CreditCardPaymentsGroup)
		if err != nil {
			return err
		}
		if group == nil {
			return apperrors.WithMessage(apperrors.ErrCategoryGroupNotFound, "budget has no Credit Card Payments group")
		}
		order, err := st.NextCategoryOrder(userID, group.ID)
		if err != nil {
			return err
		}
		payment := &models.Category{
			UserID:              userID,
			BudgetID:            in.BudgetID,
			CategoryGroupID:     group.ID,
			Name:                models.PaymentCategoryName(name),
			DisplayOrder:        order,
			IsCreditCardPayment: true,
			LinkedAccountID:     &account.ID,
		}
		if err := st.CreateCategory(payment); err != nil {
			return err
		}
		account.PaymentCategoryID = &payment.ID
		return st.SaveAccount(account)
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetBudgetAccounts lists a budget's accounts.
func (s *accountService) GetBudgetAccounts(ctx context.Context, userID, budgetID string) ([]models.Account, error) {
	st := s.writer.Read(ctx)
	if _, err := st.GetBudget(userID, budgetID); err != nil {
		return nil, err
	}
	return st.ListAccounts(userID, budgetID)
}

// GetAccountByID retrieves an account by ID for a specific user.
func (s *accountService) GetAccountByID(ctx context.Context, userID, accountID string) (*models.Account, error) {
	return s.writer.Read(ctx).GetAccount(userID, accountID)
}

// UpdateAccount edits an account. Renaming a credit account renames its
// payment category; changing the starting balance re-projects balances.
func (s *accountService) UpdateAccount(ctx context.Context, userID, accountID string, patch AccountPatch) (*models.Account, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name cannot be empty")
	}

	var account *models.Account
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		var err error
		if account, err = st.GetAccount(userID, accountID); err != nil {
			return err
		}

		var payment *models.Category
		if patch.Name != nil && strings.TrimSpace(*patch.Name) != account.Name {
			if account.IsCredit() {
				if payment, err = s.coverage.PaymentCategory(st, userID, account); err != nil {
					return err
				}
			}
			account.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.IsActive != nil {
			account.IsActive = *patch.IsActive
		}
		if patch.DisplayOrder != nil {
			account.DisplayOrder = *patch.DisplayOrder
		}
		reproject := patch.StartingBalance != nil && *patch.StartingBalance != account.StartingBalance
		if reproject {
			account.StartingBalance = *patch.StartingBalance
		}
		if err := st.SaveAccount(account); err != nil {
			return err
		}

		if payment != nil {
			payment.Name = models.PaymentCategoryName(account.Name)
			if err := st.SaveCategory(payment); err != nil {
				return err
			}
		}
		if reproject {
			b, err := s.balances.Recompute(st, userID, account.ID)
			if err != nil {
				return err
			}
			account.ClearedBalance, account.UnclearedBalance, account.WorkingBalance = b.Cleared, b.Uncleared, b.Working
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}
