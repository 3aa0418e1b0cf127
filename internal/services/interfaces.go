// Package services contains the business logic for users, categories,
// ledger entries, and reports. Services operate on the *gorm.DB they are
// constructed with, so callers can bind them either to the shared pool or
// to a per-request transaction.
package services

import (
	"bytes"
	"time"

	"github.com/WynstelleID/finance-bot/internal/models"
)

// UserServicer handles user resolution by WhatsApp number.
type UserServicer interface {
	GetOrCreateByNumber(number string) (*models.User, error)
	GetByNumber(number string) (*models.User, error)
}

// CategoryServicer handles category management.
type CategoryServicer interface {
	Find(userID uint, name string, categoryType models.TransactionType) (*models.Category, error)
	FindOrCreate(userID uint, name string, categoryType models.TransactionType) (*models.Category, error)
	Create(userID uint, name string, categoryType models.TransactionType) (*models.Category, error)
	Rename(userID uint, oldName, newName string, categoryType models.TransactionType) (*models.Category, error)
	Delete(userID uint, name string, categoryType models.TransactionType) error
}

// Totals holds per-type amount sums for a user.
type Totals struct {
	Income     float64
	Expense    float64
	Adjustment float64
}

// NetAssets returns income - expenses + adjustments.
func (t Totals) NetAssets() float64 {
	return t.Income - t.Expense + t.Adjustment
}

// LedgerServicer handles transaction recording and retrieval.
type LedgerServicer interface {
	Record(userID uint, transactionType models.TransactionType, amount float64, categoryID *uint, notes *string) (*models.Transaction, error)
	Delete(userID, transactionID uint) (*models.Transaction, error)
	ListRecent(userID uint, limit int) ([]models.Transaction, error)
	Totals(userID uint) (Totals, error)
}

// ReportGenerator turns an aggregated report into a spreadsheet file.
// Implementations live in internal/spreadsheet.
type ReportGenerator interface {
	Generate(rep *Report) (*bytes.Buffer, error)
}

// ReportServicer computes period-bounded reports and delegates file
// generation to a ReportGenerator.
type ReportServicer interface {
	Build(user *models.User, period Period, now time.Time) (*Report, error)
	Generate(user *models.User, period Period, now time.Time) (*bytes.Buffer, *Report, error)
}
