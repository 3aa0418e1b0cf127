package services

import (
	"testing"

	"github.com/WynstelleID/finance-bot/internal/testutil"
)

func TestUserServiceGetOrCreateByNumber(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewUserService(db)

	t.Run("creates_on_first_contact", func(t *testing.T) {
		user, err := service.GetOrCreateByNumber("whatsapp:+628111")
		testutil.AssertNoError(t, err)
		if user.ID == 0 {
			t.Error("expected persisted user")
		}
	})

	t.Run("column_name_matches_sql_migrations", func(t *testing.T) {
		testutil.CreateTestUserWithNumber(t, db, "whatsapp:+628333")

		var number string
		err := db.Raw("SELECT whatsapp_number FROM users WHERE whatsapp_number = ?",
			"whatsapp:+628333").Scan(&number).Error
		testutil.AssertNoError(t, err)
		if number != "whatsapp:+628333" {
			t.Errorf("expected stored number, got %q", number)
		}
	})

	t.Run("returns_existing_user", func(t *testing.T) {
		first, err := service.GetOrCreateByNumber("whatsapp:+628222")
		testutil.AssertNoError(t, err)

		second, err := service.GetOrCreateByNumber("whatsapp:+628222")
		testutil.AssertNoError(t, err)
		if first.ID != second.ID {
			t.Errorf("expected same user, got IDs %d and %d", first.ID, second.ID)
		}
	})
}

func TestUserServiceGetByNumber(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewUserService(db)

	t.Run("found", func(t *testing.T) {
		created := testutil.CreateTestUser(t, db)

		user, err := service.GetByNumber(created.WhatsAppNumber)
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %d, got %d", created.ID, user.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := service.GetByNumber("whatsapp:+000")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
