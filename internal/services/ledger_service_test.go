package services

import (
	"testing"
	"time"

	"github.com/WynstelleID/finance-bot/internal/models"
	"github.com/WynstelleID/finance-bot/internal/testutil"
)

func TestLedgerServiceRecord(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewLedgerService(db)

	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID, models.TransactionTypeIncome)

	t.Run("records_income", func(t *testing.T) {
		notes := "bonus"
		tx, err := service.Record(user.ID, models.TransactionTypeIncome, 500, &category.ID, &notes)
		testutil.AssertNoError(t, err)
		if tx.ID == 0 {
			t.Error("expected persisted transaction")
		}
		if tx.TransactionDate.IsZero() {
			t.Error("expected transaction date to be set")
		}
	})

	t.Run("rejects_non_positive_income", func(t *testing.T) {
		_, err := service.Record(user.ID, models.TransactionTypeIncome, 0, &category.ID, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = service.Record(user.ID, models.TransactionTypeExpense, -5, &category.ID, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("income_requires_category", func(t *testing.T) {
		_, err := service.Record(user.ID, models.TransactionTypeIncome, 100, nil, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("asset_adjustment_allows_negative_amount", func(t *testing.T) {
		tx, err := service.Record(user.ID, models.TransactionTypeAssetAdjustment, -50, nil, nil)
		testutil.AssertNoError(t, err)
		if tx.Amount != -50 {
			t.Errorf("expected amount -50, got %v", tx.Amount)
		}
	})

	t.Run("asset_adjustment_rejects_category", func(t *testing.T) {
		_, err := service.Record(user.ID, models.TransactionTypeAssetAdjustment, 10, &category.ID, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unsupported_type", func(t *testing.T) {
		_, err := service.Record(user.ID, models.TransactionType("transfer"), 10, nil, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestLedgerServiceDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewLedgerService(db)

	owner := testutil.CreateTestUser(t, db)
	stranger := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, owner.ID, models.TransactionTypeIncome)
	tx := testutil.CreateTestTransaction(t, db, owner.ID, models.TransactionTypeIncome, 100, &category.ID)

	t.Run("other_users_cannot_delete", func(t *testing.T) {
		_, err := service.Delete(stranger.ID, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

		var count int64
		db.Model(&models.Transaction{}).Where("id = ?", tx.ID).Count(&count)
		if count != 1 {
			t.Error("expected transaction to survive foreign delete attempt")
		}
	})

	t.Run("owner_delete_returns_row_with_category", func(t *testing.T) {
		deleted, err := service.Delete(owner.ID, tx.ID)
		testutil.AssertNoError(t, err)
		if deleted.Category == nil || deleted.Category.ID != category.ID {
			t.Errorf("expected preloaded category, got %+v", deleted.Category)
		}

		var count int64
		db.Model(&models.Transaction{}).Where("id = ?", tx.ID).Count(&count)
		if count != 0 {
			t.Error("expected transaction removed")
		}
	})

	t.Run("missing_id", func(t *testing.T) {
		_, err := service.Delete(owner.ID, 99999)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestLedgerServiceListRecent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewLedgerService(db)

	user := testutil.CreateTestUser(t, db)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		testutil.CreateTestTransactionAt(t, db, user.ID, models.TransactionTypeAssetAdjustment,
			float64(i+1), nil, base.Add(time.Duration(i)*time.Hour))
	}

	t.Run("newest_first_with_limit", func(t *testing.T) {
		transactions, err := service.ListRecent(user.ID, 3)
		testutil.AssertNoError(t, err)
		if len(transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(transactions))
		}
		if transactions[0].Amount != 4 || transactions[2].Amount != 2 {
			t.Errorf("expected newest-first ordering, got amounts %v, %v, %v",
				transactions[0].Amount, transactions[1].Amount, transactions[2].Amount)
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		transactions, err := service.ListRecent(other.ID, 10)
		testutil.AssertNoError(t, err)
		if len(transactions) != 0 {
			t.Errorf("expected no transactions for other user, got %d", len(transactions))
		}
	})
}

func TestLedgerServiceTotals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewLedgerService(db)

	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID, models.TransactionTypeIncome)
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 1000, &category.ID)
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, 300, &category.ID)
	testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeAssetAdjustment, -50, nil)

	totals, err := service.Totals(user.ID)
	testutil.AssertNoError(t, err)
	if totals.Income != 1000 || totals.Expense != 300 || totals.Adjustment != -50 {
		t.Errorf("unexpected totals: %+v", totals)
	}
	if totals.NetAssets() != 650 {
		t.Errorf("expected net assets 650, got %v", totals.NetAssets())
	}

	t.Run("empty_user_sums_to_zero", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		totals, err := service.Totals(other.ID)
		testutil.AssertNoError(t, err)
		if totals != (Totals{}) {
			t.Errorf("expected zero totals, got %+v", totals)
		}
	})
}
