// Package validation holds the pure form validators. Each validator returns a
// per-field error map; an empty map means the input is acceptable. Messages
// keep the wording shown inline in the UI.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"
)

// ErrorMap maps field name to a human-readable error message.
type ErrorMap map[string]string

var (
	nameRe = regexp.MustCompile(config.NamePattern)
	roomRe = regexp.MustCompile(config.RoomPattern)

	validate = newValidate()
)

func newValidate() *validator.Validate {
	v := validator.New()
	// Character-class rules the builtin tags cannot express.
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("roomcode", func(fl validator.FieldLevel) bool {
		return roomRe.MatchString(fl.Field().String())
	})
	return v
}

// ValidateIdentity checks the login/profile form. Room is required for
// students only; for any other role it is ignored entirely.
func ValidateIdentity(name, room string, role models.Role) ErrorMap {
	errs := ErrorMap{}

	if strings.TrimSpace(name) == "" {
		errs["name"] = "Full name is required"
	} else if validate.Var(name, "personname") != nil {
		errs["name"] = "Name must contain only letters and spaces (2-60 characters)"
	}

	if role == models.RoleStudent {
		if strings.TrimSpace(room) == "" {
			errs["room"] = "Room number is required for students"
		} else if validate.Var(room, "roomcode") != nil {
			errs["room"] = "Room number must be 2-10 characters (letters, numbers, hyphens, spaces allowed)"
		}
	}

	return errs
}

// ValidateSubmission checks the complaint form. Category and priority come
// from closed sets in the UI and need no validation here.
func ValidateSubmission(title, description string) ErrorMap {
	errs := ErrorMap{}

	titleRule := fmt.Sprintf("min=%d,max=%d", config.TitleMinLen, config.TitleMaxLen)
	if validate.Var(strings.TrimSpace(title), titleRule) != nil {
		errs["title"] = fmt.Sprintf("Title must be %d-%d characters", config.TitleMinLen, config.TitleMaxLen)
	}

	descRule := fmt.Sprintf("min=%d,max=%d", config.DescriptionMinLen, config.DescriptionMaxLen)
	if validate.Var(strings.TrimSpace(description), descRule) != nil {
		errs["description"] = fmt.Sprintf("Description must be %d-%d characters", config.DescriptionMinLen, config.DescriptionMaxLen)
	}

	return errs
}
