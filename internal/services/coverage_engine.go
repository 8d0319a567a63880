package services

import (
	"context"
	"errors"
	"fmt"

	"budgetwise/internal/calendar"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/logger"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// CoverageEngine mirrors credit card spending into the card's payment
// category. The spending category is charged by the activity projector; this
// engine only raises the payment category and keeps the debt ledger in step.
type CoverageEngine struct {
	activity ActivityProjector
	ledger   DebtLedger
}

// PaymentCategory resolves the payment category of a credit account through
// its payment_category_id, falling back to the "<name> Payment" naming rule
// for accounts created before the link existed.
func (e CoverageEngine) PaymentCategory(st *store.Store, userID string, card *models.Account) (*models.Category, error) {
	if card.PaymentCategoryID != nil {
		cat, err := st.GetCategory(userID, *card.PaymentCategoryID)
		if err == nil {
			return cat, nil
		}
		if !errors.Is(err, apperrors.ErrCategoryNotFound) {
			return nil, err
		}
	}
	cat, err := st.FindCategory(userID, card.BudgetID, models.PaymentCategoryName(card.Name))
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound,
			fmt.Sprintf("payment category for account %q not found", card.Name))
	}
	return cat, nil
}

func availableIn(st *store.Store, userID, categoryID string, m calendar.Month) (int64, error) {
	b, err := st.GetBalance(userID, categoryID, m)
	if err != nil || b == nil {
		return 0, err
	}
	return b.Available, nil
}

// OnOutflowCreate records the debt of a new credit outflow t, whose amount
// has already been charged to spending. The covered part is what spending
// had available before the charge, capped at the outflow.
func (e CoverageEngine) OnOutflowCreate(st *store.Store, userID string, t *models.Transaction, card *models.Account, spending *models.Category, current calendar.Month) (*models.CreditCardDebt, error) {
	debt := -t.Amount
	payment, err := e.PaymentCategory(st, userID, card)
	if err != nil {
		return nil, err
	}

	var covered int64
	if spending != nil {
		// The charge already reduced this month's available.
		available, err := availableIn(st, userID, spending.ID, availableMonth(t.Date, current))
		if err != nil {
			return nil, err
		}
		covered = min(debt, max(0, available+debt))
	}

	row, err := e.ledger.Create(st, t, spending, payment, card, debt, covered)
	if err != nil {
		return nil, err
	}
	if err := e.activity.ApplyCurrent(st, userID, payment, row.CoveredAmount, current); err != nil {
		return nil, err
	}
	return row, nil
}

// OnOutflowUpdate re-derives the coverage of a credit outflow whose
// transaction changed to t (still an outflow on card). The old coverage is
// taken back from the old payment category first. With an unchanged
// spending category the new coverage may reuse the old covered amount plus
// whatever spending has available now; a new spending category is treated
// like a fresh outflow against that category.
func (e CoverageEngine) OnOutflowUpdate(st *store.Store, userID string, row *models.CreditCardDebt, t *models.Transaction, card *models.Account, spending *models.Category, current calendar.Month) error {
	if err := e.reverse(st, userID, row, current); err != nil {
		return err
	}
	payment, err := e.PaymentCategory(st, userID, card)
	if err != nil {
		return err
	}

	debt := -t.Amount
	var covered int64
	if spending != nil {
		available, err := availableIn(st, userID, spending.ID, availableMonth(t.Date, current))
		if err != nil {
			return err
		}
		sameSpending := row.OriginalCategoryID != nil && *row.OriginalCategoryID == spending.ID
		if sameSpending {
			covered = min(debt, row.CoveredAmount+max(0, available))
		} else {
			covered = min(debt, max(0, available+debt))
		}
	}

	row.DebtAmount = debt
	row.CoveredAmount = covered
	row.CreditCardAccountID = card.ID
	row.PaymentCategoryID = payment.ID
	row.OriginalCategoryID = nil
	if spending != nil {
		row.OriginalCategoryID = &spending.ID
	}
	if err := e.ledger.Update(st, row); err != nil {
		return err
	}
	return e.activity.ApplyCurrent(st, userID, payment, row.CoveredAmount, current)
}

// OnOutflowDelete takes back a row's coverage and removes the row.
func (e CoverageEngine) OnOutflowDelete(st *store.Store, userID string, row *models.CreditCardDebt, current calendar.Month) error {
	if err := e.reverse(st, userID, row, current); err != nil {
		return err
	}
	return e.ledger.DeleteByTransaction(st, userID, row.TransactionID)
}

func (e CoverageEngine) reverse(st *store.Store, userID string, row *models.CreditCardDebt, current calendar.Month) error {
	if row.CoveredAmount == 0 {
		return nil
	}
	payment, err := st.GetCategory(userID, row.PaymentCategoryID)
	if err != nil {
		return err
	}
	return e.activity.ApplyCurrent(st, userID, payment, -row.CoveredAmount, current)
}

// CoverAssignment flows money newly assigned to cat into the payment
// categories of cat's uncovered debts, oldest debt first. It returns how much
// was moved.
func (e CoverageEngine) CoverAssignment(st *store.Store, userID string, cat *models.Category, amount int64, current calendar.Month) (int64, error) {
	if amount <= 0 || cat.IsCreditCardPayment {
		return 0, nil
	}
	rows, err := e.ledger.Uncovered(st, userID, cat.ID)
	if err != nil {
		return 0, err
	}

	payments := make(map[string]*models.Category)
	remaining := amount
	for i := range rows {
		if remaining == 0 {
			break
		}
		row := &rows[i]
		move := min(remaining, row.Uncovered())
		if move <= 0 {
			continue
		}

		payment, ok := payments[row.PaymentCategoryID]
		if !ok {
			payment, err = st.GetCategory(userID, row.PaymentCategoryID)
			if err != nil {
				return amount - remaining, err
			}
			payments[row.PaymentCategoryID] = payment
		}

		if err := e.activity.ApplyCurrent(st, userID, payment, move, current); err != nil {
			return amount - remaining, err
		}
		if err := e.ledger.AddCoverage(st, userID, row.ID, move); err != nil {
			return amount - remaining, err
		}
		remaining -= move
	}
	return amount - remaining, nil
}

// guardCoverage runs fn in a savepoint. Coverage is an overlay on top of an
// otherwise complete write, so its failure is logged and rolled back alone.
func guardCoverage(ctx context.Context, st *store.Store, userID, subject, subjectID string, fn func(st *store.Store) error) {
	if err := st.Transaction(ctx, fn); err != nil {
		logger.For(userID).Warnw("Credit card coverage failed",
			"subject", subject,
			"subject_id", subjectID,
			"error", err,
		)
	}
}
