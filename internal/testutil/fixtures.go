package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/WynstelleID/finance-bot/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique WhatsApp number.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	number := fmt.Sprintf("whatsapp:+628%010d", nextID())
	return CreateTestUserWithNumber(t, db, number)
}

// CreateTestUserWithNumber creates a user with the given WhatsApp number.
func CreateTestUserWithNumber(t *testing.T, db *gorm.DB, number string) *models.User {
	t.Helper()

	user := &models.User{WhatsAppNumber: number}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category of the given type with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID uint, categoryType models.TransactionType) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, userID, fmt.Sprintf("category%d", nextID()), categoryType)
}

// CreateTestCategoryWithName creates a category with the given name and type.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, userID uint, name string, categoryType models.TransactionType) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Type:   categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction of the given type and amount.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, txType models.TransactionType, amount float64, categoryID *uint) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, userID, txType, amount, categoryID, time.Now())
}

// CreateTestTransactionAt creates a transaction with an explicit transaction date.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, userID uint, txType models.TransactionType, amount float64, categoryID *uint, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:          userID,
		Type:            txType,
		Amount:          amount,
		CategoryID:      categoryID,
		TransactionDate: date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
