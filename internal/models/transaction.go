package models

import "time"

// Transaction is a signed movement of money on an account; outflows are
// negative. A nil CategoryID means income to Ready-to-Assign.
type Transaction struct {
	Base
	UserID       string    `gorm:"type:uuid;not null;index" json:"user_id"`
	BudgetID     string    `gorm:"type:uuid;not null;index" json:"budget_id"`
	AccountID    string    `gorm:"type:uuid;not null;index" json:"account_id"`
	Date         time.Time `gorm:"type:date;not null" json:"date"`
	Amount       int64     `gorm:"type:bigint;not null" json:"amount"`
	Memo         string    `json:"memo"`
	Payee        string    `json:"payee"`
	CategoryID   *string   `gorm:"type:uuid;index" json:"category_id"`
	IsCleared    bool      `gorm:"not null;default:false" json:"is_cleared"`
	IsReconciled bool      `gorm:"not null;default:false" json:"is_reconciled"`
	TransferID   *string   `gorm:"type:uuid;index" json:"transfer_id,omitempty"`
}

// IsOutflow reports whether the transaction removes money from its account.
func (t *Transaction) IsOutflow() bool {
	return t.Amount < 0
}

// CreditCardDebt tracks how much of one credit card outflow has been
// earmarked in the card's payment category.
type CreditCardDebt struct {
	Base
	UserID              string  `gorm:"type:uuid;not null;index" json:"user_id"`
	BudgetID            string  `gorm:"type:uuid;not null;index" json:"budget_id"`
	TransactionID       string  `gorm:"type:uuid;not null;uniqueIndex" json:"transaction_id"`
	CreditCardAccountID string  `gorm:"type:uuid;not null" json:"credit_card_account_id"`
	OriginalCategoryID  *string `gorm:"type:uuid;index" json:"original_category_id"`
	PaymentCategoryID   string  `gorm:"type:uuid;not null;index" json:"payment_category_id"`
	DebtAmount          int64   `gorm:"type:bigint;not null" json:"debt_amount"`
	CoveredAmount       int64   `gorm:"type:bigint;not null;default:0" json:"covered_amount"`
}

// Uncovered is the part of the debt not yet backed by the payment category.
func (d *CreditCardDebt) Uncovered() int64 {
	return d.DebtAmount - d.CoveredAmount
}
