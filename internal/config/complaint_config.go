package config

import (
	"time"

	"hostelhub/backend/internal/models"
)

const (
	// Submission limits (lengths after trimming)
	TitleMinLen       = 5
	TitleMaxLen       = 100
	DescriptionMinLen = 10
	DescriptionMaxLen = 1000

	// Identity patterns
	NamePattern = `^[A-Za-z\s]{2,60}$`
	RoomPattern = `^[A-Za-z0-9\- ]{2,10}$`

	// Persisted keys
	SessionKey    = "user"
	ComplaintsKey = "complaints"

	// Session token
	TokenTTL    = 72 * time.Hour
	TokenIssuer = "hostelhub-service"

	// Display format for Complaint.Date, matching the original dashboard
	DateDisplayLayout = "1/2/2006, 3:04:05 PM"
)

// Categories is the closed set of maintenance-issue classifications.
var Categories = []string{
	"Plumbing & Water",
	"Electrical & Lights",
	"Cleaning & Hygiene",
	"Furniture & Bedding",
	"WiFi & Internet",
	"Others",
}

// CategoryDescriptions holds the short blurb shown next to each category.
var CategoryDescriptions = map[string]string{
	"Plumbing & Water":    "Leaky taps, blocked drains, low water pressure",
	"Electrical & Lights": "Faulty wiring, flickering bulbs, no power",
	"Cleaning & Hygiene":  "Dirty bathrooms, garbage overflow, pest problems",
	"Furniture & Bedding": "Broken beds, damaged chairs, missing mattress",
	"WiFi & Internet":     "Slow connection, no signal, router problems",
	"Others":              "Any other maintenance or hostel-related concern",
}

// PriorityRank fixes the ordering used by priority sort: higher rank first.
var PriorityRank = map[models.Priority]int{
	models.PriorityLow:    0,
	models.PriorityMedium: 1,
	models.PriorityHigh:   2,
}

// ValidCategory reports whether cat is one of the fixed categories.
func ValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}
