package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"sosio/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of every fixture member.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestMember creates a member with a hashed password and unique email.
func CreateTestMember(t *testing.T, db *gorm.DB) *models.Member {
	t.Helper()
	email := fmt.Sprintf("member%d@test.com", nextID())
	return CreateTestMemberWithEmail(t, db, email)
}

// CreateTestMemberWithEmail creates a member with the given email and no
// fullname or codename, so login derives both.
func CreateTestMemberWithEmail(t *testing.T, db *gorm.DB, email string) *models.Member {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	member := &models.Member{
		Email:    email,
		Password: string(hash),
		Role:     models.RoleMember,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test member: %v", err)
	}
	return member
}

// CreateLegacyMember creates a member whose password column holds plaintext,
// as rows imported from the legacy store do.
func CreateLegacyMember(t *testing.T, db *gorm.DB, email, password string) *models.Member {
	t.Helper()

	member := &models.Member{Email: email, Password: password, Role: models.RoleMember}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create legacy member: %v", err)
	}
	return member
}

// SetBalance sets the cached balance of a member.
func SetBalance(t *testing.T, db *gorm.DB, memberID uint, balance float64) {
	t.Helper()

	if err := db.Model(&models.Member{}).Where("id = ?", memberID).Update("balance", balance).Error; err != nil {
		t.Fatalf("failed to set balance: %v", err)
	}
}

// CreateTestTransaction creates a transaction dated at the given time.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Type:        "Deposit",
		Amount:      amount,
		Date:        date,
		Status:      "completed",
		Description: fmt.Sprintf("Test transaction %d", nextID()),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestTransactions creates n transactions one day apart, oldest first.
func CreateTestTransactions(t *testing.T, db *gorm.DB, userID uint, n int) []models.Transaction {
	t.Helper()

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rows := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, models.Transaction{
			UserID:      userID,
			Type:        "Deposit",
			Amount:      float64(i + 1),
			Date:        start.AddDate(0, 0, i),
			Description: fmt.Sprintf("Bulk transaction %d", i),
		})
	}
	if err := db.CreateInBatches(&rows, 100).Error; err != nil {
		t.Fatalf("failed to create test transactions: %v", err)
	}
	return rows
}

// CreateTestLoan creates a loan with the given amounts and status.
func CreateTestLoan(t *testing.T, db *gorm.DB, userID uint, principal, remaining float64, status string) *models.Loan {
	t.Helper()

	due := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	loan := &models.Loan{
		UserID:         userID,
		Type:           "Personal",
		Principal:      principal,
		Remaining:      remaining,
		MonthlyPayment: principal / 12,
		DueDate:        &due,
		Status:         status,
	}
	if err := db.Create(loan).Error; err != nil {
		t.Fatalf("failed to create test loan: %v", err)
	}
	return loan
}

// CreateTestInvestment creates a holding with the given amount.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID uint, amount float64) *models.Investment {
	t.Helper()

	n := nextID()
	inv := &models.Investment{
		UserID:     userID,
		Name:       fmt.Sprintf("Test Fund %d", n),
		Amount:     amount,
		ReturnRate: 5.5,
		Type:       "Mutual Fund",
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}
