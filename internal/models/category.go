package models

// Category is a named, typed bucket used to classify transactions.
// Names are stored lower-cased and are unique per (user, name, type);
// the composite index also closes the race between two messages
// auto-creating the same category.
type Category struct {
	Base
	UserID uint            `gorm:"not null;uniqueIndex:idx_categories_user_name_type" json:"user_id"`
	Name   string          `gorm:"not null;uniqueIndex:idx_categories_user_name_type" json:"name"`
	Type   TransactionType `gorm:"not null;uniqueIndex:idx_categories_user_name_type" json:"type"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}
