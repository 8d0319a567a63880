package models

// CurrencyPlacement controls whether the symbol precedes or follows amounts.
type CurrencyPlacement string

const (
	CurrencyPlacementBefore CurrencyPlacement = "before"
	CurrencyPlacementAfter  CurrencyPlacement = "after"
)

// Budget is the root of a namespace; every other budgeting record hangs off it.
type Budget struct {
	Base
	UserID            string            `gorm:"type:uuid;not null;uniqueIndex:uq_budgets_user_name" json:"user_id"`
	Name              string            `gorm:"not null;uniqueIndex:uq_budgets_user_name" json:"name"`
	Currency          string            `gorm:"not null;default:'USD'" json:"currency"`
	CurrencyPlacement CurrencyPlacement `gorm:"not null;default:'before'" json:"currency_placement"`
	NumberFormat      string            `gorm:"not null;default:'1,234.56'" json:"number_format"`
	DateFormat        string            `gorm:"not null;default:'YYYY-MM-DD'" json:"date_format"`
	Theme             string            `gorm:"not null;default:'light'" json:"theme"`
}
