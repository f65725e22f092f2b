package models_test

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hostelhub/backend/internal/models"
)

// TestComplaintEnsureID_GeneratesUUID verifies that EnsureID assigns a valid UUID.
func TestComplaintEnsureID_GeneratesUUID(t *testing.T) {
	// Arrange
	c := &models.Complaint{
		StudentName: "Alice",
		StudentRoom: "B-12",
		Title:       "Leaky faucet in room",
		Status:      models.StatusPending,
	}
	assert.Empty(t, c.ID, "Complaint ID should be empty before EnsureID")

	// Act
	c.EnsureID()

	// Assert
	assert.NotEmpty(t, c.ID, "Complaint ID must be populated after EnsureID")
	parsed, err := uuid.Parse(c.ID)
	assert.NoError(t, err, "Complaint ID must be a valid UUID string")
	assert.NotEqual(t, uuid.Nil, parsed)
}

// TestComplaintEnsureID_PreservesExistingID verifies an existing ID is never overwritten.
func TestComplaintEnsureID_PreservesExistingID(t *testing.T) {
	existingID := uuid.New().String()
	c := &models.Complaint{ID: existingID, Title: "Broken chair"}

	c.EnsureID()

	assert.Equal(t, existingID, c.ID, "EnsureID should preserve existing ID")
}

// TestComplaintEnsureID_UniquePerRecord verifies distinct records get distinct IDs.
func TestComplaintEnsureID_UniquePerRecord(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		c := &models.Complaint{Title: "Flickering light"}
		c.EnsureID()
		assert.NotContains(t, seen, c.ID, "Each complaint should get a unique ID")
		seen[c.ID] = true
	}
}

// TestComplaintJSONTags verifies the persisted JSON shape stays stable.
func TestComplaintJSONTags(t *testing.T) {
	typ := reflect.TypeOf(models.Complaint{})

	expected := map[string]string{
		"ID":          "id",
		"StudentName": "studentName",
		"StudentRoom": "studentRoom",
		"Title":       "title",
		"Category":    "category",
		"Priority":    "priority",
		"Description": "description",
		"Status":      "status",
		"Date":        "date",
		"CreatedAt":   "createdAt",
	}
	for field, tag := range expected {
		f, found := typ.FieldByName(field)
		assert.True(t, found, "%s field should exist", field)
		assert.Contains(t, f.Tag.Get("json"), tag, "%s should keep its json tag", field)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, models.StatusPending.Valid())
	assert.True(t, models.StatusResolved.Valid())
	assert.False(t, models.Status("Closed").Valid())
	assert.False(t, models.Status("").Valid())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, models.RoleStudent.Valid())
	assert.True(t, models.RoleAdmin.Valid())
	assert.True(t, models.RoleStaff.Valid())
	assert.False(t, models.Role("Warden").Valid())
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, models.PriorityLow.Valid())
	assert.True(t, models.PriorityMedium.Valid())
	assert.True(t, models.PriorityHigh.Valid())
	assert.False(t, models.Priority("Critical").Valid())
}
