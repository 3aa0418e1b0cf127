package models

// User represents a WhatsApp user, keyed by the sender address the
// messaging transport reports. Users are created lazily on the first
// inbound message from an unseen number.
type User struct {
	Base
	// Column named explicitly: the default naming strategy would split the
	// field into whats_app_number, diverging from the SQL migrations.
	WhatsAppNumber string `gorm:"column:whatsapp_number;uniqueIndex;not null" json:"whatsapp_number"`

	// Relationships. Deleting a user deletes its categories and transactions.
	Categories   []Category    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"transactions,omitempty"`
}
