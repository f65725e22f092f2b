package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/validation"
)

func TestValidateIdentity(t *testing.T) {
	tests := []struct {
		name       string
		inputName  string
		inputRoom  string
		role       models.Role
		wantFields []string
	}{
		{
			name:      "valid student",
			inputName: "Alice Smith",
			inputRoom: "B-12",
			role:      models.RoleStudent,
		},
		{
			name:      "staff needs no room",
			inputName: "Bob",
			inputRoom: "",
			role:      models.RoleStaff,
		},
		{
			name:       "digits in name rejected",
			inputName:  "Bob123",
			inputRoom:  "B-12",
			role:       models.RoleStudent,
			wantFields: []string{"name"},
		},
		{
			name:       "empty name required",
			inputName:  "   ",
			inputRoom:  "B-12",
			role:       models.RoleStudent,
			wantFields: []string{"name"},
		},
		{
			name:       "single letter name too short",
			inputName:  "A",
			inputRoom:  "B-12",
			role:       models.RoleStudent,
			wantFields: []string{"name"},
		},
		{
			name:       "name over sixty characters rejected",
			inputName:  strings.Repeat("a", 61),
			inputRoom:  "B-12",
			role:       models.RoleStudent,
			wantFields: []string{"name"},
		},
		{
			name:       "student without room rejected",
			inputName:  "Alice",
			inputRoom:  "",
			role:       models.RoleStudent,
			wantFields: []string{"room"},
		},
		{
			name:       "room with illegal characters rejected",
			inputName:  "Alice",
			inputRoom:  "B_12!",
			role:       models.RoleStudent,
			wantFields: []string{"room"},
		},
		{
			name:       "room too long rejected",
			inputName:  "Alice",
			inputRoom:  "ABCDEFGHIJK",
			role:       models.RoleStudent,
			wantFields: []string{"room"},
		},
		{
			name:      "admin ignores bad room entirely",
			inputName: "Alice",
			inputRoom: "!!!!",
			role:      models.RoleAdmin,
		},
		{
			name:       "both fields bad",
			inputName:  "X",
			inputRoom:  "!",
			role:       models.RoleStudent,
			wantFields: []string{"name", "room"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateIdentity(tt.inputName, tt.inputRoom, tt.role)
			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		wantFields  []string
	}{
		{
			name:        "valid submission",
			title:       "Leaky faucet in room",
			description: "Water drips constantly from the bathroom tap",
		},
		{
			name:        "lengths measured after trimming",
			title:       "   abcd    ",
			description: "   short    ",
			wantFields:  []string{"title", "description"},
		},
		{
			name:        "title at lower bound",
			title:       "abcde",
			description: "abcdefghij",
		},
		{
			name:        "title over upper bound",
			title:       strings.Repeat("t", 101),
			description: "a perfectly fine description",
			wantFields:  []string{"title"},
		},
		{
			name:        "description over upper bound",
			title:       "Broken window latch",
			description: strings.Repeat("d", 1001),
			wantFields:  []string{"description"},
		},
		{
			name:        "empty fields",
			title:       "",
			description: "",
			wantFields:  []string{"title", "description"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateSubmission(tt.title, tt.description)
			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}
