package models

import "time"

// TransactionType represents the kind of ledger entry.
type TransactionType string

const (
	TransactionTypeIncome          TransactionType = "income"
	TransactionTypeExpense         TransactionType = "expense"
	TransactionTypeAssetAdjustment TransactionType = "asset_adjustment"
)

// Transaction represents one ledger entry. Income and expense entries store
// the positive magnitude the user supplied (the sign is implied by the
// type); asset adjustments store the signed amount verbatim and carry no
// category.
type Transaction struct {
	Base
	UserID          uint            `gorm:"not null" json:"user_id"`
	Type            TransactionType `gorm:"not null" json:"type"`
	Amount          float64         `gorm:"not null" json:"amount"`
	CategoryID      *uint           `json:"category_id,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	TransactionDate time.Time       `gorm:"autoCreateTime" json:"transaction_date"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
