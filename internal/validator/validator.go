// Package validator validates member input outside a request, with the
// custom member_role and codename rules.
package validator

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"sosio/internal/models"
)

var codenameRegex = regexp.MustCompile(`^[A-Z0-9]{2,3}$`)

var (
	standalone     *validator.Validate
	standaloneOnce sync.Once
)

// Struct validates v's `validate` tags, including the custom rules.
func Struct(v interface{}) error {
	standaloneOnce.Do(func() {
		standalone = validator.New(validator.WithRequiredStructEnabled())
		registerAll(standalone)
	})
	return standalone.Struct(v)
}

func registerAll(v *validator.Validate) {
	_ = v.RegisterValidation("member_role", validateMemberRole)
	_ = v.RegisterValidation("codename", validateCodename)
}

func validateMemberRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.RoleMember, models.RoleAdmin:
		return true
	}
	return false
}

func validateCodename(fl validator.FieldLevel) bool {
	return codenameRegex.MatchString(fl.Field().String())
}
