package services

import (
	"context"

	"budgetwise/internal/calendar"
	"budgetwise/internal/models"
	"budgetwise/internal/pagination"
	"budgetwise/internal/store"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, username, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}

// BudgetInput carries the fields accepted when creating or updating a budget.
type BudgetInput struct {
	Name              *string
	Currency          *string
	CurrencyPlacement *models.CurrencyPlacement
	NumberFormat      *string
	DateFormat        *string
	Theme             *string
}

// ReadyToAssign is the unallocated money of a budget in one month.
type ReadyToAssign struct {
	BudgetID      string         `json:"budget_id"`
	Month         calendar.Month `json:"month"`
	ReadyToAssign int64          `json:"ready_to_assign"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(ctx context.Context, userID string, in BudgetInput) (*models.Budget, error)
	GetUserBudgets(ctx context.Context, userID string) ([]models.Budget, error)
	GetBudgetByID(ctx context.Context, userID, budgetID string) (*models.Budget, error)
	UpdateBudget(ctx context.Context, userID, budgetID string, in BudgetInput) (*models.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error
	GetReadyToAssign(ctx context.Context, userID, budgetID string, ud calendar.UserDate) (*ReadyToAssign, error)
}

// AccountInput carries the fields accepted when creating an account.
type AccountInput struct {
	BudgetID        string
	Name            string
	Type            models.AccountType
	StartingBalance int64
	DisplayOrder    int
}

// AccountPatch carries the editable account fields; nil means unchanged.
type AccountPatch struct {
	Name            *string
	IsActive        *bool
	DisplayOrder    *int
	StartingBalance *int64
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(ctx context.Context, userID string, in AccountInput) (*models.Account, error)
	GetBudgetAccounts(ctx context.Context, userID, budgetID string) ([]models.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID string) (*models.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID string, patch AccountPatch) (*models.Account, error)
}

// CategoryGroupServicer defines the contract for category group management.
type CategoryGroupServicer interface {
	CreateGroup(ctx context.Context, userID, budgetID, name string) (*models.CategoryGroup, error)
	GetBudgetGroups(ctx context.Context, userID, budgetID string) ([]models.CategoryGroup, error)
	UpdateGroup(ctx context.Context, userID, groupID string, name *string, displayOrder *int) (*models.CategoryGroup, error)
	DeleteGroup(ctx context.Context, userID, groupID string) error
	SetHidden(ctx context.Context, userID, groupID string, hidden bool) (*models.CategoryGroup, error)
	ReorderGroups(ctx context.Context, userID string, groupIDs []string) error
}

// CategoryWithBalance is a category together with its balance for one month.
type CategoryWithBalance struct {
	models.Category
	Year      int   `json:"year"`
	Month     int   `json:"month"`
	Assigned  int64 `json:"assigned"`
	Activity  int64 `json:"activity"`
	Available int64 `json:"available"`
}

// DebtSummary reports the card debt linked to a category.
type DebtSummary struct {
	CategoryID        string           `json:"category_id"`
	IsPaymentCategory bool             `json:"is_payment_category"`
	Totals            store.DebtTotals `json:"totals"`
}

// CategoryServicer defines the contract for category management.
type CategoryServicer interface {
	CreateCategory(ctx context.Context, userID, groupID, name string) (*models.Category, error)
	GetGroupCategories(ctx context.Context, userID, groupID string, m calendar.Month) ([]CategoryWithBalance, error)
	GetBudgetCategories(ctx context.Context, userID, budgetID string, m calendar.Month) ([]CategoryWithBalance, error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
	ReorderCategories(ctx context.Context, userID string, categoryIDs []string) error
	GetDebtSummary(ctx context.Context, userID, categoryID string) (*DebtSummary, error)
}

// CategoryPatch carries a partial category update. Name and DisplayOrder
// are metadata; the rest change the balance row of the target month.
type CategoryPatch struct {
	Name         *string
	DisplayOrder *int
	Assigned     *int64
	Activity     *int64
	Available    *int64
}

// HasMoney reports whether the patch touches a monetary field.
func (p CategoryPatch) HasMoney() bool {
	return p.Assigned != nil || p.Activity != nil || p.Available != nil
}

// CategoryUpdate is the outcome of a category update.
type CategoryUpdate struct {
	Category      *models.Category        `json:"category"`
	Balance       *models.CategoryBalance `json:"balance,omitempty"`
	ReadyToAssign int64                   `json:"ready_to_assign"`
}

// MoneyMove is the outcome of a move between categories or the RTA pool.
type MoneyMove struct {
	Source        *models.CategoryBalance `json:"source,omitempty"`
	Destination   *models.CategoryBalance `json:"destination,omitempty"`
	ReadyToAssign int64                   `json:"ready_to_assign"`
}

// AppliedCategory is one category touched by an auto-assign run.
type AppliedCategory struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Amount       int64  `json:"amount"`
	Assigned     int64  `json:"assigned"`
	Available    int64  `json:"available"`
}

// AutoAssignResult is the outcome of applying an auto-assign configuration.
type AutoAssignResult struct {
	Success           bool              `json:"success"`
	AppliedCount      int               `json:"applied_count"`
	ReadyToAssign     int64             `json:"ready_to_assign"`
	AppliedCategories []AppliedCategory `json:"applied_categories"`
}

// AssignmentServicer defines the contract for moving money into, out of and
// between categories.
type AssignmentServicer interface {
	UpdateCategory(ctx context.Context, userID, categoryID string, patch CategoryPatch, ud calendar.UserDate) (*CategoryUpdate, error)
	MoveMoney(ctx context.Context, userID, fromCategoryID, toCategoryID string, amount int64, ud calendar.UserDate) (*MoneyMove, error)
	MoveToReadyToAssign(ctx context.Context, userID, categoryID string, amount int64, ud calendar.UserDate) (*MoneyMove, error)
	PullFromReadyToAssign(ctx context.Context, userID, categoryID string, amount int64, ud calendar.UserDate) (*MoneyMove, error)
	ApplyAutoAssign(ctx context.Context, userID, budgetID, name string, ud calendar.UserDate) (*AutoAssignResult, error)
}

// CategoryBalanceServicer defines the contract for direct balance access.
type CategoryBalanceServicer interface {
	GetBalance(ctx context.Context, userID, categoryID string, m calendar.Month) (*models.CategoryBalance, error)
	UpdateBalance(ctx context.Context, userID, categoryID string, patch CategoryPatch, ud calendar.UserDate, m calendar.Month) (*CategoryUpdate, error)
	EnsureMonth(ctx context.Context, userID, budgetID string, m calendar.Month) ([]models.CategoryBalance, error)
}

// AutoAssignItemInput is one (category, amount) line of a configuration.
type AutoAssignItemInput struct {
	CategoryID string
	Amount     int64
}

// AutoAssignConfig is a named set of auto-assign items.
type AutoAssignConfig struct {
	Name     string                  `json:"name"`
	BudgetID string                  `json:"budget_id"`
	Total    int64                   `json:"total"`
	Items    []models.AutoAssignItem `json:"items"`
}

// AutoAssignServicer defines the contract for auto-assign configurations.
type AutoAssignServicer interface {
	CreateConfig(ctx context.Context, userID, budgetID, name string, items []AutoAssignItemInput) (*AutoAssignConfig, error)
	GetBudgetConfigs(ctx context.Context, userID, budgetID string) ([]AutoAssignConfig, error)
	GetConfig(ctx context.Context, userID, budgetID, name string) (*AutoAssignConfig, error)
	UpdateConfig(ctx context.Context, userID, budgetID, name string, newName *string, items []AutoAssignItemInput) (*AutoAssignConfig, error)
	DeleteConfig(ctx context.Context, userID, budgetID, name string) error
}

// TransactionInput carries a new transaction. CategoryID may be nil or the
// literal "ready-to-assign" for income.
type TransactionInput struct {
	AccountID  string
	Date       string
	Amount     int64
	Memo       string
	Payee      string
	CategoryID *string
	IsCleared  bool
}

// TransferInput carries a transfer between two accounts of one budget.
type TransferInput struct {
	FromAccountID string
	ToAccountID   string
	Date          string
	Amount        int64
	Memo          string
	CategoryID    *string
	IsCleared     bool
}

// TransactionPatch carries a partial transaction update; nil means
// unchanged. ClearCategory sets the category to none.
type TransactionPatch struct {
	AccountID     *string
	Date          *string
	Amount        *int64
	Memo          *string
	Payee         *string
	CategoryID    *string
	ClearCategory bool
	IsCleared     *bool
	IsReconciled  *bool
}

// TransactionResult is the outcome of a transaction write.
type TransactionResult struct {
	Transaction   *models.Transaction `json:"transaction"`
	Counterpart   *models.Transaction `json:"counterpart,omitempty"`
	ReadyToAssign int64               `json:"ready_to_assign"`
}

// TransactionServicer defines the contract for the transaction lifecycle.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, userID string, in TransactionInput, ud calendar.UserDate) (*TransactionResult, error)
	CreateTransfer(ctx context.Context, userID string, in TransferInput, ud calendar.UserDate) (*TransactionResult, error)
	GetAccountTransactions(ctx context.Context, userID, accountID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetBudgetTransactions(ctx context.Context, userID, budgetID string, page pagination.PageRequest, filter store.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, patch TransactionPatch, ud calendar.UserDate) (*TransactionResult, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string, ud calendar.UserDate) (*TransactionResult, error)
	ToggleCleared(ctx context.Context, userID, transactionID string, ud calendar.UserDate) (*TransactionResult, error)
}
