package models

// Investment represents a single holding in a member's portfolio.
type Investment struct {
	Base
	UserID     uint    `gorm:"not null;index" json:"-"`
	Name       string  `gorm:"size:255;not null" json:"name"`
	Amount     float64 `gorm:"type:decimal(15,2);not null" json:"amount"`
	ReturnRate float64 `gorm:"type:decimal(7,4);not null;default:0" json:"returnRate"`
	Type       string  `gorm:"size:64" json:"type"`
}
