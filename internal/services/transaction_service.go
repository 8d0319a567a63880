package services

import (
	"context"
	"time"

	"budgetwise/internal/calendar"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/pagination"
	"budgetwise/internal/store"
	"budgetwise/internal/uuid"
)

// ReadyToAssignCategoryID is accepted in place of a category id and means
// the transaction is income to Ready-to-Assign.
const ReadyToAssignCategoryID = "ready-to-assign"

// transactionService runs the transaction lifecycle. Every write applies
// category activity first, then card coverage, then account balances.
type transactionService struct {
	writer   *Writer
	balances BalanceProjector
	activity ActivityProjector
	coverage CoverageEngine
	rta      ReadyToAssignCalculator
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(writer *Writer) TransactionServicer {
	return &transactionService{writer: writer}
}

func normalizeCategoryID(id *string) *string {
	if id == nil || *id == "" || *id == ReadyToAssignCategoryID {
		return nil
	}
	v := *id
	return &v
}

// resolveDate parses a client date, defaulting to the user's today, and
// rejects days after it.
func resolveDate(raw string, ud calendar.UserDate) (time.Time, error) {
	if raw == "" {
		return ud.Today, nil
	}
	d, err := calendar.ParseDate(raw)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	if ud.IsFuture(d) {
		return time.Time{}, apperrors.ErrFutureDated
	}
	return d, nil
}

// category loads the category a transaction on account may use.
func (s *transactionService) category(st *store.Store, userID string, account *models.Account, id *string) (*models.Category, error) {
	if id == nil {
		return nil, nil
	}
	if account.Type == models.AccountTypeTracking {
		return nil, apperrors.ErrTrackingCategory
	}
	cat, err := st.GetCategory(userID, *id)
	if err != nil {
		return nil, err
	}
	if cat.BudgetID != account.BudgetID {
		return nil, apperrors.ErrCrossBudget
	}
	return cat, nil
}

func loadCategory(st *store.Store, userID string, id *string) (*models.Category, error) {
	if id == nil {
		return nil, nil
	}
	return st.GetCategory(userID, *id)
}

// CreateTransaction records a transaction and brings every aggregate it
// touches up to date.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, in TransactionInput, ud calendar.UserDate) (*TransactionResult, error) {
	if in.AccountID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}
	date, err := resolveDate(in.Date, ud)
	if err != nil {
		return nil, err
	}

	var result *TransactionResult
	err = s.writer.Write(ctx, userID, func(st *store.Store) error {
		account, err := st.GetAccount(userID, in.AccountID)
		if err != nil {
			return err
		}
		t := &models.Transaction{
			UserID:     userID,
			BudgetID:   account.BudgetID,
			AccountID:  account.ID,
			Date:       date,
			Amount:     in.Amount,
			Memo:       in.Memo,
			Payee:      in.Payee,
			CategoryID: normalizeCategoryID(in.CategoryID),
			IsCleared:  in.IsCleared,
		}
		if err := s.insert(ctx, st, userID, account, t, ud.Current); err != nil {
			return err
		}
		rta, err := s.rta.Compute(st, userID, account.BudgetID, ud.Current)
		if err != nil {
			return err
		}
		result = &TransactionResult{Transaction: t, ReadyToAssign: rta}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *transactionService) insert(ctx context.Context, st *store.Store, userID string, account *models.Account, t *models.Transaction, current calendar.Month) error {
	cat, err := s.category(st, userID, account, t.CategoryID)
	if err != nil {
		return err
	}
	if err := st.CreateTransaction(t); err != nil {
		return err
	}
	if cat != nil {
		if err := s.activity.Apply(st, userID, cat, t.Date, t.Amount, current); err != nil {
			return err
		}
	}
	if account.IsCredit() && t.IsOutflow() {
		guardCoverage(ctx, st, userID, "transaction", t.ID, func(inner *store.Store) error {
			_, err := s.coverage.OnOutflowCreate(inner, userID, t, account, cat, current)
			return err
		})
	}
	_, err = s.balances.Recompute(st, userID, account.ID)
	return err
}

// CreateTransfer writes the two legs of a transfer. A transfer to a credit
// account is a card payment, so its outflow is charged to the card's
// payment category.
func (s *transactionService) CreateTransfer(ctx context.Context, userID string, in TransferInput, ud calendar.UserDate) (*TransactionResult, error) {
	if in.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if in.FromAccountID == in.ToAccountID {
		return nil, apperrors.ErrSameAccountTransfer
	}
	date, err := resolveDate(in.Date, ud)
	if err != nil {
		return nil, err
	}

	var result *TransactionResult
	err = s.writer.Write(ctx, userID, func(st *store.Store) error {
		from, err := st.GetAccount(userID, in.FromAccountID)
		if err != nil {
			return err
		}
		to, err := st.GetAccount(userID, in.ToAccountID)
		if err != nil {
			return err
		}
		if from.BudgetID != to.BudgetID {
			return apperrors.ErrCrossBudget
		}

		outCategory := normalizeCategoryID(in.CategoryID)
		if to.IsCredit() {
			payment, err := s.coverage.PaymentCategory(st, userID, to)
			if err != nil {
				return err
			}
			outCategory = &payment.ID
		}
		if from.Type == models.AccountTypeTracking {
			outCategory = nil
		}

		transferID := uuid.New()
		out := &models.Transaction{
			UserID:     userID,
			BudgetID:   from.BudgetID,
			AccountID:  from.ID,
			Date:       date,
			Amount:     -in.Amount,
			Memo:       in.Memo,
			Payee:      "Transfer : " + to.Name,
			CategoryID: outCategory,
			IsCleared:  in.IsCleared,
			TransferID: &transferID,
		}
		inflow := &models.Transaction{
			UserID:     userID,
			BudgetID:   to.BudgetID,
			AccountID:  to.ID,
			Date:       date,
			Amount:     in.Amount,
			Memo:       in.Memo,
			Payee:      "Transfer : " + from.Name,
			IsCleared:  in.IsCleared,
			TransferID: &transferID,
		}
		if err := s.insert(ctx, st, userID, from, out, ud.Current); err != nil {
			return err
		}
		if err := s.insert(ctx, st, userID, to, inflow, ud.Current); err != nil {
			return err
		}

		rta, err := s.rta.Compute(st, userID, from.BudgetID, ud.Current)
		if err != nil {
			return err
		}
		result = &TransactionResult{Transaction: out, Counterpart: inflow, ReadyToAssign: rta}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetAccountTransactions retrieves a paginated list of an account's transactions.
func (s *transactionService) GetAccountTransactions(ctx context.Context, userID, accountID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	st := s.writer.Read(ctx)
	if _, err := st.GetAccount(userID, accountID); err != nil {
		return nil, err
	}
	return st.ListTransactions(userID, store.TransactionFilter{AccountID: accountID}, page)
}

// GetBudgetTransactions retrieves a paginated, filtered list of a budget's transactions.
func (s *transactionService) GetBudgetTransactions(ctx context.Context, userID, budgetID string, page pagination.PageRequest, filter store.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	st := s.writer.Read(ctx)
	if _, err := st.GetBudget(userID, budgetID); err != nil {
		return nil, err
	}
	filter.BudgetID = budgetID
	return st.ListTransactions(userID, filter, page)
}

// GetTransactionByID retrieves a transaction by ID for a specific user.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error) {
	return s.writer.Read(ctx).GetTransaction(userID, transactionID)
}

func (p TransactionPatch) touchesMoney() bool {
	return p.AccountID != nil || p.Date != nil || p.Amount != nil || p.CategoryID != nil || p.ClearCategory
}

// UpdateTransaction applies a partial update. The old transaction's
// category activity is reversed before the new one is applied, so an update
// that changes nothing leaves every aggregate as it was.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, patch TransactionPatch, ud calendar.UserDate) (*TransactionResult, error) {
	var result *TransactionResult
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		old, err := st.GetTransaction(userID, transactionID)
		if err != nil {
			return err
		}
		if old.TransferID != nil && patch.touchesMoney() {
			return apperrors.ErrTransactionNotEditable
		}

		updated := *old
		if patch.AccountID != nil {
			updated.AccountID = *patch.AccountID
		}
		if patch.Date != nil {
			d, err := resolveDate(*patch.Date, ud)
			if err != nil {
				return err
			}
			updated.Date = d
		}
		if patch.Amount != nil {
			updated.Amount = *patch.Amount
		}
		if patch.Memo != nil {
			updated.Memo = *patch.Memo
		}
		if patch.Payee != nil {
			updated.Payee = *patch.Payee
		}
		if patch.ClearCategory {
			updated.CategoryID = nil
		} else if patch.CategoryID != nil {
			updated.CategoryID = normalizeCategoryID(patch.CategoryID)
		}
		if patch.IsCleared != nil {
			updated.IsCleared = *patch.IsCleared
		}
		if patch.IsReconciled != nil {
			updated.IsReconciled = *patch.IsReconciled
		}

		oldAccount, err := st.GetAccount(userID, old.AccountID)
		if err != nil {
			return err
		}
		newAccount := oldAccount
		if updated.AccountID != old.AccountID {
			if newAccount, err = st.GetAccount(userID, updated.AccountID); err != nil {
				return err
			}
			if newAccount.BudgetID != oldAccount.BudgetID {
				return apperrors.ErrCrossBudget
			}
		}

		oldCat, err := loadCategory(st, userID, old.CategoryID)
		if err != nil {
			return err
		}
		newCat, err := s.category(st, userID, newAccount, updated.CategoryID)
		if err != nil {
			return err
		}

		if oldCat != nil {
			if err := s.activity.Apply(st, userID, oldCat, old.Date, -old.Amount, ud.Current); err != nil {
				return err
			}
		}
		if newCat != nil {
			if err := s.activity.Apply(st, userID, newCat, updated.Date, updated.Amount, ud.Current); err != nil {
				return err
			}
		}
		if err := st.SaveTransaction(&updated); err != nil {
			return err
		}

		guardCoverage(ctx, st, userID, "transaction", updated.ID, func(inner *store.Store) error {
			row, err := s.coverage.ledger.Get(inner, userID, updated.ID)
			if err != nil {
				return err
			}
			outflow := newAccount.IsCredit() && updated.IsOutflow()
			switch {
			case row != nil && outflow:
				return s.coverage.OnOutflowUpdate(inner, userID, row, &updated, newAccount, newCat, ud.Current)
			case row != nil:
				return s.coverage.OnOutflowDelete(inner, userID, row, ud.Current)
			case outflow:
				_, err := s.coverage.OnOutflowCreate(inner, userID, &updated, newAccount, newCat, ud.Current)
				return err
			}
			return nil
		})

		if _, err := s.balances.Recompute(st, userID, newAccount.ID); err != nil {
			return err
		}
		if oldAccount.ID != newAccount.ID {
			if _, err := s.balances.Recompute(st, userID, oldAccount.ID); err != nil {
				return err
			}
		}

		rta, err := s.rta.Compute(st, userID, newAccount.BudgetID, ud.Current)
		if err != nil {
			return err
		}
		result = &TransactionResult{Transaction: &updated, ReadyToAssign: rta}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteTransaction removes a transaction and undoes its effects. Deleting
// either leg of a transfer removes both.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string, ud calendar.UserDate) (*TransactionResult, error) {
	var result *TransactionResult
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		t, err := st.GetTransaction(userID, transactionID)
		if err != nil {
			return err
		}
		if err := s.remove(ctx, st, userID, t, ud.Current); err != nil {
			return err
		}

		result = &TransactionResult{Transaction: t}
		if t.TransferID != nil {
			peer, err := st.TransferCounterpart(userID, *t.TransferID, t.ID)
			if err != nil {
				return err
			}
			if peer != nil {
				if err := s.remove(ctx, st, userID, peer, ud.Current); err != nil {
					return err
				}
				result.Counterpart = peer
			}
		}

		rta, err := s.rta.Compute(st, userID, t.BudgetID, ud.Current)
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

func (s *transactionService) remove(ctx context.Context, st *store.Store, userID string, t *models.Transaction, current calendar.Month) error {
	cat, err := loadCategory(st, userID, t.CategoryID)
	if err != nil {
		return err
	}
	if cat != nil {
		if err := s.activity.Apply(st, userID, cat, t.Date, -t.Amount, current); err != nil {
			return err
		}
	}

	guardCoverage(ctx, st, userID, "transaction", t.ID, func(inner *store.Store) error {
		row, err := s.coverage.ledger.Get(inner, userID, t.ID)
		if err != nil || row == nil {
			return err
		}
		return s.coverage.OnOutflowDelete(inner, userID, row, current)
	})
	if err := s.coverage.ledger.DeleteByTransaction(st, userID, t.ID); err != nil {
		return err
	}

	if err := st.DeleteTransaction(userID, t.ID); err != nil {
		return err
	}
	_, err = s.balances.Recompute(st, userID, t.AccountID)
	return err
}

// ToggleCleared flips the cleared flag. Only account balances change.
func (s *transactionService) ToggleCleared(ctx context.Context, userID, transactionID string, ud calendar.UserDate) (*TransactionResult, error) {
	var result *TransactionResult
	err := s.writer.Write(ctx, userID, func(st *store.Store) error {
		t, err := st.GetTransaction(userID, transactionID)
		if err != nil {
			return err
		}
		t.IsCleared = !t.IsCleared
		if err := st.SaveTransaction(t); err != nil {
			return err
		}
		if _, err := s.balances.Recompute(st, userID, t.AccountID); err != nil {
			return err
		}
		rta, err := s.rta.Compute(st, userID, t.BudgetID, ud.Current)
		if err != nil {
			return err
		}
		result = &TransactionResult{Transaction: t, ReadyToAssign: rta}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
