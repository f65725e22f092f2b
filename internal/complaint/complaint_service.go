// Package complaint provides the core logic for the complaint lifecycle:
// submission, status transitions and the derived views shown on the student
// and admin dashboards.
package complaint

import (
	"fmt"
	"strings"
	"time"

	"hostelhub/backend/internal/assets"
	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/notify"
	"hostelhub/backend/internal/storage"
	"hostelhub/backend/internal/validation"
	"hostelhub/backend/pkg/apperror"
)

// Service handles the business logic for complaints.
type Service struct {
	Storage  storage.Storage
	Assets   *assets.Store
	Notifier notify.Sink
}

// NewService creates a new complaint service. Assets may be nil, in which
// case images stay inline in the records.
func NewService(s storage.Storage, a *assets.Store, n notify.Sink) *Service {
	return &Service{Storage: s, Assets: a, Notifier: n}
}

// Submission is the student-supplied part of a new complaint.
type Submission struct {
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Priority    models.Priority `json:"priority"`
	Description string          `json:"description"`
	Image       string          `json:"image"` // data-URI, optional
}

// Submit validates the submission and, when valid, appends a new Pending
// complaint owned by the session's student. A non-empty error map means the
// submission was rejected and the collection is unchanged.
func (s *Service) Submit(sess *models.Session, sub Submission) (*models.Complaint, validation.ErrorMap, error) {
	if errs := validation.ValidateSubmission(sub.Title, sub.Description); len(errs) > 0 {
		return nil, errs, nil
	}

	category := sub.Category
	if !config.ValidCategory(category) {
		category = "Others"
	}
	priority := sub.Priority
	if !priority.Valid() {
		priority = models.PriorityLow
	}

	image := sub.Image
	if image != "" && s.Assets != nil {
		ref, err := s.Assets.Put(image)
		if err != nil {
			return nil, nil, err
		}
		image = ref
	}

	now := time.Now()
	c := models.Complaint{
		StudentName: sess.Name,
		StudentRoom: sess.Room,
		Title:       strings.TrimSpace(sub.Title),
		Category:    category,
		Priority:    priority,
		Description: strings.TrimSpace(sub.Description),
		Image:       image,
		Status:      models.StatusPending,
		Date:        now.Format(config.DateDisplayLayout),
		CreatedAt:   now,
	}
	c.EnsureID()

	if err := s.Storage.AppendComplaint(c); err != nil {
		return nil, nil, err
	}

	s.Notifier.Notify(models.Event{
		Type:        models.EventComplaintNew,
		ComplaintID: c.ID,
		Status:      c.Status,
		Message:     fmt.Sprintf("New complaint submitted: %q by %s (Room %s)", c.Title, c.StudentName, c.StudentRoom),
	})
	return &c, nil, nil
}

// SetStatus transitions the complaint with the given id to status. Both
// directions are legal and re-setting the current status is allowed; an
// unknown id is a silent no-op in the store.
func (s *Service) SetStatus(id string, status models.Status) error {
	if !status.Valid() {
		return apperror.ErrInvalidInput
	}
	if err := s.Storage.UpdateComplaintStatus(id, status); err != nil {
		return err
	}

	s.Notifier.Notify(models.Event{
		Type:        models.EventStatusChanged,
		ComplaintID: id,
		Status:      status,
		Message:     fmt.Sprintf("Status change notification: complaint %s is now %s", id, status),
	})
	return nil
}

// ForStudent returns the read-only projection of the collection owned by the
// session's student, keyed by exact (name, room) equality.
func (s *Service) ForStudent(sess *models.Session) []models.Complaint {
	all := s.Storage.LoadComplaints()
	own := make([]models.Complaint, 0)
	for _, c := range all {
		if c.StudentName == sess.Name && c.StudentRoom == sess.Room {
			own = append(own, c)
		}
	}
	return own
}

// List applies the filter/sort pipeline to the full collection.
func (s *Service) List(p ListParams) []models.Complaint {
	return p.Apply(s.Storage.LoadComplaints())
}

// Summary holds the admin dashboard counters.
type Summary struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
}

// Summarize counts the collection by status.
func (s *Service) Summarize() Summary {
	var sum Summary
	for _, c := range s.Storage.LoadComplaints() {
		sum.Total++
		switch c.Status {
		case models.StatusPending:
			sum.Pending++
		case models.StatusResolved:
			sum.Resolved++
		}
	}
	return sum
}
