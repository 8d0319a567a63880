package models

// Names of the groups every budget is created with.
const (
	CreditCardPaymentsGroup = "Credit Card Payments"
	HiddenCategoriesGroup   = "Hidden Categories"
)

// CategoryGroup groups categories for display. System groups are managed by
// the engine and reject user edits.
type CategoryGroup struct {
	Base
	UserID        string `gorm:"type:uuid;not null;index" json:"user_id"`
	BudgetID      string `gorm:"type:uuid;not null;index" json:"budget_id"`
	Name          string `gorm:"not null" json:"name"`
	DisplayOrder  int    `gorm:"not null;default:0" json:"display_order"`
	IsSystemGroup bool   `gorm:"not null;default:false" json:"is_system_group"`
	IsHidden      bool   `gorm:"not null;default:false" json:"is_hidden"`

	Categories []Category `gorm:"foreignKey:CategoryGroupID" json:"categories,omitempty"`
}

// Category is an envelope money can be assigned to.
type Category struct {
	Base
	UserID              string  `gorm:"type:uuid;not null;index" json:"user_id"`
	BudgetID            string  `gorm:"type:uuid;not null;index" json:"budget_id"`
	CategoryGroupID     string  `gorm:"type:uuid;not null;index" json:"category_group_id"`
	Name                string  `gorm:"not null" json:"name"`
	DisplayOrder        int     `gorm:"not null;default:0" json:"display_order"`
	IsCreditCardPayment bool    `gorm:"not null;default:false" json:"is_credit_card_payment"`
	LinkedAccountID     *string `gorm:"type:uuid" json:"linked_account_id,omitempty"`

	// Group the category was in before it was hidden.
	HiddenFromGroupID *string `gorm:"type:uuid" json:"hidden_from_group_id,omitempty"`
}

// CategoryBalance is the per-month state of a category.
type CategoryBalance struct {
	Base
	UserID     string `gorm:"type:uuid;not null;index" json:"user_id"`
	BudgetID   string `gorm:"type:uuid;not null;index:idx_category_balances_budget_month" json:"budget_id"`
	CategoryID string `gorm:"type:uuid;not null;uniqueIndex:uq_category_balances_month" json:"category_id"`
	Year       int    `gorm:"not null;uniqueIndex:uq_category_balances_month;index:idx_category_balances_budget_month" json:"year"`
	Month      int    `gorm:"not null;uniqueIndex:uq_category_balances_month;index:idx_category_balances_budget_month" json:"month"`
	Assigned   int64  `gorm:"type:bigint;not null;default:0" json:"assigned"`
	Activity   int64  `gorm:"type:bigint;not null;default:0" json:"activity"`
	Available  int64  `gorm:"type:bigint;not null;default:0" json:"available"`
}
