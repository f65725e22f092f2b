package models

// Event types pushed to the notification sinks.
const (
	EventLogin          = "login"
	EventLogout         = "logout"
	EventProfileUpdated = "profile_updated"
	EventComplaintNew   = "complaint_submitted"
	EventStatusChanged  = "status_changed"
)

// Event is a fire-and-forget notification about a state change. Delivery is
// best-effort: sinks may drop events and no sink ever reports back.
type Event struct {
	Type        string `json:"type"`
	ComplaintID string `json:"complaint_id,omitempty"`
	Status      Status `json:"status,omitempty"`
	Message     string `json:"message"`
}
