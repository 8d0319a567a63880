package models

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeCash     AccountType = "cash"
	AccountTypeCredit   AccountType = "credit"
	AccountTypeTracking AccountType = "tracking"
)

// Account holds the projected balances of one account. ClearedBalance,
// UnclearedBalance and WorkingBalance are derived from StartingBalance and
// the account's transactions and are only written by the balance projector.
type Account struct {
	Base
	UserID           string      `gorm:"type:uuid;not null;index" json:"user_id"`
	BudgetID         string      `gorm:"type:uuid;not null;index" json:"budget_id"`
	Name             string      `gorm:"not null" json:"name"`
	Type             AccountType `gorm:"not null" json:"type"`
	StartingBalance  int64       `gorm:"type:bigint;not null;default:0" json:"starting_balance"`
	ClearedBalance   int64       `gorm:"type:bigint;not null;default:0" json:"cleared_balance"`
	UnclearedBalance int64       `gorm:"type:bigint;not null;default:0" json:"uncleared_balance"`
	WorkingBalance   int64       `gorm:"type:bigint;not null;default:0" json:"working_balance"`
	IsActive         bool        `gorm:"not null;default:true" json:"is_active"`
	DisplayOrder     int         `gorm:"not null;default:0" json:"display_order"`

	// Set for credit accounts only.
	PaymentCategoryID *string `gorm:"type:uuid" json:"payment_category_id,omitempty"`
}

// IsCredit reports whether spending on the account creates card debt.
func (a *Account) IsCredit() bool {
	return a.Type == AccountTypeCredit
}

// PaymentCategoryName is the name of the payment category paired with a credit account.
func PaymentCategoryName(accountName string) string {
	return accountName + " Payment"
}
