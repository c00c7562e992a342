// Package pagination holds the fixed row caps applied to per-member
// listings and the GORM scope that enforces them.
package pagination

import "gorm.io/gorm"

// Row caps for transaction listings.
const (
	DashboardLimit = 10
	HistoryLimit   = 500
)

// Recent returns a GORM scope that orders rows newest first by their date
// column and keeps at most limit rows. Ties on date fall back to the
// highest id so the order is stable. A non-positive limit means no cap.
func Recent(limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Order("date DESC").Order("id DESC")
		if limit > 0 {
			db = db.Limit(limit)
		}
		return db
	}
}

// ForUser returns a GORM scope restricting rows to one member.
func ForUser(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
