package users

import (
	"regexp"
	"strings"

	"github.com/LuizaMunis/HealthCare-sub000/errors"
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateNewUser(create *NewUser) error {
	if strings.TrimSpace(create.FullName) == "" {
		return errors.Validation("nome_completo", "is required")
	}
	if create.Email == "" {
		return errors.Validation("email", "is required")
	}
	if !emailRegexp.MatchString(create.Email) {
		return errors.Validation("email", "is not a valid email address")
	}
	if len(create.Password) < 6 {
		return errors.Validation("senha", "must be at least 6 characters long")
	}
	return nil
}
