package middleware

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"sosio/internal/config"
	apperrors "sosio/internal/errors"
	"sosio/internal/models"
)

const (
	tokenIssuer = "sosio-api"

	// MemberIDKey is the gin context key holding the authenticated member ID.
	MemberIDKey = "memberID"
)

// getJWTKey returns the JWT key from configuration
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	MemberID uint   `json:"member_id"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token for a member, valid for the configured
// JWT expiration.
func GenerateToken(member *models.Member) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		MemberID: member.ID,
		Email:    member.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.Get().JWTExpirationDur)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatUint(uint64(member.ID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// ParseToken validates a signed token and returns its claims.
func ParseToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// RequireMemberAccess guards per-member routes. When AUTH_REQUIRED is off it
// passes every request through. Otherwise the bearer token must be valid and
// its member must own the :userId in the path.
func RequireMemberAccess(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.Get().AuthRequired {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			_ = c.Error(apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			_ = c.Error(apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid or expired token"))
			c.Abort()
			return
		}

		// a malformed id is left for the handler to reject with 400
		if raw := c.Param(param); raw != "" {
			if owner, err := strconv.ParseUint(raw, 10, 64); err == nil && owner != uint64(claims.MemberID) {
				_ = c.Error(apperrors.ErrForbidden)
				c.Abort()
				return
			}
		}

		c.Set(MemberIDKey, claims.MemberID)
		c.Next()
	}
}
