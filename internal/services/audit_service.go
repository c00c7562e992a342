package services

import (
	"gorm.io/gorm"

	"sosio/internal/logger"
	"sosio/internal/models"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(memberID uint, email, action, ipAddress, detail string) {
	entry := &models.AuditLog{
		MemberID:  memberID,
		Email:     email,
		Action:    action,
		IPAddress: ipAddress,
		Detail:    detail,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"member_id", memberID,
			"action", action,
		)
	}
}
