package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgetwise/internal/calendar"
	"budgetwise/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// May2025 is the current month of the end-to-end scenarios.
var May2025 = calendar.Month{Year: 2025, Month: 5}

// Today returns a user date on the given day of May 2025.
func Today(day int) calendar.UserDate {
	return calendar.At(Date(2025, 5, day))
}

// Date returns midnight UTC of the given day.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithEmail(t, db, fmt.Sprintf("user%d@test.com", n), fmt.Sprintf("user%d", n))
}

// CreateTestUserWithEmail creates a user with the given email and username.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Username: username,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBudget creates a budget with its two system groups.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:            userID,
		Name:              fmt.Sprintf("Test Budget %d", nextID()),
		Currency:          "USD",
		CurrencyPlacement: models.CurrencyPlacementBefore,
		NumberFormat:      "1,234.56",
		DateFormat:        "YYYY-MM-DD",
		Theme:             "light",
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
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
		if err := db.Create(group).Error; err != nil {
			t.Fatalf("failed to create system group: %v", err)
		}
	}
	return budget
}

// SystemGroup returns one of the budget's system groups.
func SystemGroup(t *testing.T, db *gorm.DB, budget *models.Budget, name string) *models.CategoryGroup {
	t.Helper()

	var group models.CategoryGroup
	if err := db.Where("budget_id = ? AND name = ?", budget.ID, name).First(&group).Error; err != nil {
		t.Fatalf("failed to load system group %q: %v", name, err)
	}
	return &group
}

// CreateTestCategoryGroup creates a user group in the budget.
func CreateTestCategoryGroup(t *testing.T, db *gorm.DB, budget *models.Budget) *models.CategoryGroup {
	t.Helper()

	group := &models.CategoryGroup{
		UserID:       budget.UserID,
		BudgetID:     budget.ID,
		Name:         fmt.Sprintf("Test Group %d", nextID()),
		DisplayOrder: 10,
	}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("failed to create test category group: %v", err)
	}
	return group
}

// CreateTestCategory creates a spending category in group.
func CreateTestCategory(t *testing.T, db *gorm.DB, group *models.CategoryGroup) *models.Category {
	t.Helper()
	return CreateTestCategoryNamed(t, db, group, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryNamed creates a spending category with the given name.
func CreateTestCategoryNamed(t *testing.T, db *gorm.DB, group *models.CategoryGroup, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:          group.UserID,
		BudgetID:        group.BudgetID,
		CategoryGroupID: group.ID,
		Name:            name,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestCashAccount creates an active cash account with the given
// starting balance (in cents).
func CreateTestCashAccount(t *testing.T, db *gorm.DB, budget *models.Budget, starting int64) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:          budget.UserID,
		BudgetID:        budget.ID,
		Name:            fmt.Sprintf("Test Checking %d", nextID()),
		Type:            models.AccountTypeCash,
		StartingBalance: starting,
		ClearedBalance:  starting,
		WorkingBalance:  starting,
		IsActive:        true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test cash account: %v", err)
	}
	return account
}

// CreateTestTrackingAccount creates an active tracking account.
func CreateTestTrackingAccount(t *testing.T, db *gorm.DB, budget *models.Budget) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:   budget.UserID,
		BudgetID: budget.ID,
		Name:     fmt.Sprintf("Test Brokerage %d", nextID()),
		Type:     models.AccountTypeTracking,
		IsActive: true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test tracking account: %v", err)
	}
	return account
}

// CreateTestCreditAccount creates a credit account and its payment category
// in the "Credit Card Payments" group.
func CreateTestCreditAccount(t *testing.T, db *gorm.DB, budget *models.Budget) (*models.Account, *models.Category) {
	t.Helper()

	account := &models.Account{
		UserID:   budget.UserID,
		BudgetID: budget.ID,
		Name:     fmt.Sprintf("Test Visa %d", nextID()),
		Type:     models.AccountTypeCredit,
		IsActive: true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test credit account: %v", err)
	}

	group := SystemGroup(t, db, budget, models.CreditCardPaymentsGroup)
	payment := &models.Category{
		UserID:              budget.UserID,
		BudgetID:            budget.ID,
		CategoryGroupID:     group.ID,
		Name:                models.PaymentCategoryName(account.Name),
		IsCreditCardPayment: true,
		LinkedAccountID:     &account.ID,
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create payment category: %v", err)
	}

	account.PaymentCategoryID = &payment.ID
	if err := db.Save(account).Error; err != nil {
		t.Fatalf("failed to link payment category: %v", err)
	}
	return account, payment
}

// CreateTestBalance writes a balance row for (category, month).
func CreateTestBalance(t *testing.T, db *gorm.DB, category *models.Category, m calendar.Month, assigned, activity, available int64) *models.CategoryBalance {
	t.Helper()

	row := &models.CategoryBalance{
		UserID:     category.UserID,
		BudgetID:   category.BudgetID,
		CategoryID: category.ID,
		Year:       m.Year,
		Month:      m.Month,
		Assigned:   assigned,
		Activity:   activity,
		Available:  available,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test balance: %v", err)
	}
	return row
}

// CreateTestTransaction inserts a raw transaction row without running any
// projections.
func CreateTestTransaction(t *testing.T, db *gorm.DB, account *models.Account, date time.Time, amount int64, categoryID *string, cleared bool) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:     account.UserID,
		BudgetID:   account.BudgetID,
		AccountID:  account.ID,
		Date:       date,
		Amount:     amount,
		CategoryID: categoryID,
		IsCleared:  cleared,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
