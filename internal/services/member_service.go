package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "sosio/internal/errors"
	"sosio/internal/logger"
	"sosio/internal/models"
)

// memberService handles member lookup and authentication.
type memberService struct {
	db          *gorm.DB
	allowLegacy bool
	bcryptCost  int
}

// MemberOption customizes a member service.
type MemberOption func(*memberService)

// WithLegacyPasswords lets members whose stored password is not a bcrypt
// hash log in with that value; the stored value is re-hashed on success.
func WithLegacyPasswords(enabled bool) MemberOption {
	return func(s *memberService) { s.allowLegacy = enabled }
}

// WithBcryptCost overrides the bcrypt cost used for new hashes.
func WithBcryptCost(cost int) MemberOption {
	return func(s *memberService) { s.bcryptCost = cost }
}

// NewMemberService creates a new MemberServicer.
func NewMemberService(db *gorm.DB, opts ...MemberOption) MemberServicer {
	s := &memberService{db: db, bcryptCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateMember provisions a member with a bcrypt-hashed password.
func (s *memberService) CreateMember(ctx context.Context, input NewMember) (*models.Member, error) {
	if input.Email == "" || input.Password == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Member{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabase, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	role := input.Role
	if role == "" {
		role = models.RoleMember
	}
	member := &models.Member{
		Email:    input.Email,
		Password: string(hash),
		Fullname: input.Fullname,
		Codename: input.Codename,
		Role:     role,
		Balance:  input.Balance,
	}
	if err := s.db.WithContext(ctx).Create(member).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDatabase, err)
	}
	return member, nil
}

// Authenticate looks up a member by exact email and verifies the password.
// A missing account and a wrong password are reported as distinct errors.
// On ErrIncorrectPassword the matched member is returned alongside the error.
func (s *memberService) Authenticate(ctx context.Context, email, password string) (*models.Member, error) {
	if email == "" || password == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	var member models.Member
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoAccount
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if !s.verifyPassword(ctx, &member, password) {
		return &member, apperrors.ErrIncorrectPassword
	}
	return &member, nil
}

// GetProfile retrieves a member by ID.
func (s *memberService) GetProfile(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	if err := s.db.WithContext(ctx).First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrDatabase, err)
	}
	return &member, nil
}

func (s *memberService) verifyPassword(ctx context.Context, member *models.Member, password string) bool {
	if isBcryptHash(member.Password) {
		return bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)) == nil
	}
	if !s.allowLegacy {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(member.Password), []byte(password)) != 1 {
		return false
	}
	s.upgradePassword(ctx, member, password)
	return true
}

// upgradePassword replaces a legacy stored password with its bcrypt hash.
// Failure is logged and leaves the legacy value in place.
func (s *memberService) upgradePassword(ctx context.Context, member *models.Member, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		logger.Get().Errorw("failed to hash legacy password", "member_id", member.ID, "error", err)
		return
	}
	err = s.db.WithContext(ctx).Model(&models.Member{}).
		Where("id = ?", member.ID).
		Update("password", string(hash)).Error
	if err != nil {
		logger.Get().Errorw("failed to store upgraded password", "member_id", member.ID, "error", err)
		return
	}
	member.Password = string(hash)
	logger.Get().Infow("upgraded legacy password", "member_id", member.ID)
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}
