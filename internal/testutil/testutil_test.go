package testutil_test

import (
	"testing"
	"time"

	"sosio/internal/errors"
	"sosio/internal/models"
	"sosio/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"members", "transactions", "loans", "investments", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	testutil.CreateTestMember(t, first)

	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	var count int64
	second.Model(&models.Member{}).Count(&count)
	if count != 0 {
		t.Errorf("expected empty second database, found %d members", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	member := testutil.CreateTestMember(t, db)
	if member.ID == 0 {
		t.Fatal("member should have a non-zero ID")
	}
	if member.Password == testutil.TestPassword {
		t.Error("fixture password should be hashed")
	}

	tx := testutil.CreateTestTransaction(t, db, member.ID, 42.5, time.Now())
	if tx.Amount != 42.5 {
		t.Errorf("expected amount 42.5, got %f", tx.Amount)
	}

	rows := testutil.CreateTestTransactions(t, db, member.ID, 3)
	if len(rows) != 3 {
		t.Errorf("expected 3 transactions, got %d", len(rows))
	}

	loan := testutil.CreateTestLoan(t, db, member.ID, 1200, 600, models.LoanStatusActive)
	if loan.Status != models.LoanStatusActive {
		t.Errorf("expected active loan, got %s", loan.Status)
	}

	inv := testutil.CreateTestInvestment(t, db, member.ID, 250)
	if inv.Amount != 250 {
		t.Errorf("expected amount 250, got %f", inv.Amount)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrUserNotFound, "custom message")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}

func TestAssertNewestFirst(t *testing.T) {
	now := time.Now()
	testutil.AssertNewestFirst(t, []time.Time{now, now, now.Add(-time.Hour)})
}
