package models

// Audit actions.
const (
	AuditLoginSucceeded = "login_succeeded"
	AuditLoginFailed    = "login_failed"
)

// AuditLog records authentication events for security review.
// MemberID is zero when the attempted email matched no member.
type AuditLog struct {
	Base
	MemberID  uint   `gorm:"not null;default:0;index" json:"member_id"`
	Email     string `gorm:"size:255" json:"email"`
	Action    string `gorm:"size:64;not null" json:"action"`
	IPAddress string `gorm:"size:64" json:"ip_address"`
	Detail    string `gorm:"size:255" json:"detail,omitempty"`
}
