package models

// Role identifies which part of the application a logged-in user sees.
// It is self-asserted at login; there is no server-side authorization check.
type Role string

const (
	RoleStudent Role = "Student"
	RoleAdmin   Role = "Admin"
	RoleStaff   Role = "Staff"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleStaff:
		return true
	}
	return false
}

// Session is the currently logged-in user's identity.
// It is persisted as a single JSON record under the "user" key.
type Session struct {
	Name       string `json:"name"`
	Room       string `json:"room"`
	Role       Role   `json:"role"`
	ProfilePic string `json:"profilePic,omitempty"` // data-URI, optional
}

// IsStudent reports whether the session belongs to a student.
// Only students carry a room number; for other roles Room is empty.
func (s *Session) IsStudent() bool {
	return s.Role == RoleStudent
}
