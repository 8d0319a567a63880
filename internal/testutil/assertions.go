package testutil

import (
	"errors"
	"testing"

	"budgetwise/internal/calendar"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"

	"gorm.io/gorm"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Balance loads the (category, month) row; a missing row reads as zeros.
func Balance(t *testing.T, db *gorm.DB, categoryID string, m calendar.Month) models.CategoryBalance {
	t.Helper()

	var rows []models.CategoryBalance
	err := db.Where("category_id = ? AND year = ? AND month = ?", categoryID, m.Year, m.Month).Find(&rows).Error
	if err != nil {
		t.Fatalf("failed to load balance: %v", err)
	}
	if len(rows) == 0 {
		return models.CategoryBalance{CategoryID: categoryID, Year: m.Year, Month: m.Month}
	}
	return rows[0]
}

// AssertBalance checks assigned, activity and available of a balance row.
func AssertBalance(t *testing.T, db *gorm.DB, categoryID string, m calendar.Month, assigned, activity, available int64) {
	t.Helper()

	b := Balance(t, db, categoryID, m)
	if b.Assigned != assigned || b.Activity != activity || b.Available != available {
		t.Errorf("balance %s %s: got assigned=%d activity=%d available=%d, want %d/%d/%d",
			categoryID, m, b.Assigned, b.Activity, b.Available, assigned, activity, available)
	}
}

// AssertAccount checks the projected balances of an account and that
// working equals cleared plus uncleared.
func AssertAccount(t *testing.T, db *gorm.DB, accountID string, cleared, uncleared int64) {
	t.Helper()

	var a models.Account
	if err := db.Where("id = ?", accountID).First(&a).Error; err != nil {
		t.Fatalf("failed to load account: %v", err)
	}
	if a.ClearedBalance != cleared || a.UnclearedBalance != uncleared || a.WorkingBalance != cleared+uncleared {
		t.Errorf("account %s: got cleared=%d uncleared=%d working=%d, want %d/%d/%d",
			accountID, a.ClearedBalance, a.UnclearedBalance, a.WorkingBalance, cleared, uncleared, cleared+uncleared)
	}
}

// Debt loads the debt row of a transaction, or nil.
func Debt(t *testing.T, db *gorm.DB, transactionID string) *models.CreditCardDebt {
	t.Helper()

	var rows []models.CreditCardDebt
	if err := db.Where("transaction_id = ?", transactionID).Find(&rows).Error; err != nil {
		t.Fatalf("failed to load debt: %v", err)
	}
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}
