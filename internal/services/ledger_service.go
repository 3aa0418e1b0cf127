package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/WynstelleID/finance-bot/internal/errors"
	"github.com/WynstelleID/finance-bot/internal/models"
)

// ledgerService handles transaction-related business logic.
type ledgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return &ledgerService{db: db}
}

// Record inserts a ledger entry. Income and expense entries must carry a
// strictly positive amount and a category; asset adjustments carry any
// amount and no category.
func (s *ledgerService) Record(
	userID uint,
	transactionType models.TransactionType,
	amount float64,
	categoryID *uint,
	notes *string,
) (*models.Transaction, error) {
	switch transactionType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
		if amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		if categoryID == nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
		}
	case models.TransactionTypeAssetAdjustment:
		if categoryID != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "asset adjustments carry no category")
		}
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported transaction type")
	}

	transaction := &models.Transaction{
		UserID:     userID,
		Type:       transactionType,
		Amount:     amount,
		CategoryID: categoryID,
		Notes:      notes,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// Delete removes the transaction with the given ID if it belongs to the
// user, returning the deleted row for confirmation messages.
// Returns ErrTransactionNotFound when absent or owned by another user.
func (s *ledgerService) Delete(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// ListRecent returns up to limit transactions for the user, newest first,
// with categories preloaded.
func (s *ledgerService) ListRecent(userID uint, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("transaction_date DESC, id DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// Totals sums amounts per transaction type for the user.
func (s *ledgerService) Totals(userID uint) (Totals, error) {
	var totals Totals
	for _, item := range []struct {
		transactionType models.TransactionType
		dest            *float64
	}{
		{models.TransactionTypeIncome, &totals.Income},
		{models.TransactionTypeExpense, &totals.Expense},
		{models.TransactionTypeAssetAdjustment, &totals.Adjustment},
	} {
		err := s.db.Model(&models.Transaction{}).
			Where("user_id = ? AND type = ?", userID, item.transactionType).
			Select("COALESCE(SUM(amount), 0)").
			Scan(item.dest).Error
		if err != nil {
			return Totals{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return totals, nil
}
