package models

// AutoAssignItem is one line of a named auto-assign configuration. A
// configuration is the set of items sharing (budget, name).
type AutoAssignItem struct {
	Base
	UserID     string `gorm:"type:uuid;not null;index" json:"user_id"`
	BudgetID   string `gorm:"type:uuid;not null;uniqueIndex:uq_auto_assign_item" json:"budget_id"`
	Name       string `gorm:"not null;uniqueIndex:uq_auto_assign_item" json:"name"`
	CategoryID string `gorm:"type:uuid;not null;uniqueIndex:uq_auto_assign_item" json:"category_id"`
	Amount     int64  `gorm:"type:bigint;not null" json:"amount"`
}

// TableName keeps the table name used by the migrations.
func (AutoAssignItem) TableName() string {
	return "auto_assign_configurations"
}
