// Package session manages the login lifecycle: creating or merging the
// persisted session record, profile updates and logout.
package session

import (
	"fmt"
	"strings"

	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/notify"
	"hostelhub/backend/internal/storage"
	"hostelhub/backend/internal/validation"
	"hostelhub/backend/pkg/apperror"
)

// Service handles the session lifecycle over the injected store.
type Service struct {
	Storage  storage.Storage
	Notifier notify.Sink
}

// NewService creates a new session service.
func NewService(s storage.Storage, n notify.Sink) *Service {
	return &Service{Storage: s, Notifier: n}
}

// Login validates the identity and persists the session. When a session with
// a case-insensitively matching name already exists it is merged: name and
// room are refreshed, the stored role is kept. Complaints already attributed
// to a student are never touched. A non-empty error map means the login was
// rejected.
func (s *Service) Login(name, room string, role models.Role) (*models.Session, validation.ErrorMap, error) {
	if !role.Valid() {
		return nil, nil, apperror.ErrInvalidInput
	}
	if errs := validation.ValidateIdentity(name, room, role); len(errs) > 0 {
		return nil, errs, nil
	}

	name = strings.TrimSpace(name)
	if role == models.RoleStudent {
		room = strings.TrimSpace(room)
	} else {
		room = ""
	}

	sess := s.Storage.LoadSession()
	if sess != nil && strings.EqualFold(sess.Name, name) {
		sess.Name = name
		sess.Room = room
	} else {
		sess = &models.Session{Name: name, Room: room, Role: role}
	}

	if err := s.Storage.SaveSession(sess); err != nil {
		return nil, nil, err
	}
	if err := s.Storage.SeedComplaints(); err != nil {
		return nil, nil, err
	}

	s.Notifier.Notify(models.Event{
		Type:    models.EventLogin,
		Message: fmt.Sprintf("Login notification for %s (%s)", sess.Name, sess.Role),
	})
	return sess, nil, nil
}

// Current returns the persisted session, or nil when nobody is logged in.
func (s *Service) Current() *models.Session {
	return s.Storage.LoadSession()
}

// UpdateProfile re-validates the identity and updates name, room and profile
// picture on the existing session. The role never changes here.
func (s *Service) UpdateProfile(name, room, profilePic string) (*models.Session, validation.ErrorMap, error) {
	sess := s.Storage.LoadSession()
	if sess == nil {
		return nil, nil, apperror.ErrUnauthorized
	}

	if errs := validation.ValidateIdentity(name, room, sess.Role); len(errs) > 0 {
		return nil, errs, nil
	}

	sess.Name = strings.TrimSpace(name)
	if sess.IsStudent() {
		sess.Room = strings.TrimSpace(room)
	} else {
		sess.Room = ""
	}
	sess.ProfilePic = profilePic

	if err := s.Storage.SaveSession(sess); err != nil {
		return nil, nil, err
	}

	s.Notifier.Notify(models.Event{
		Type:    models.EventProfileUpdated,
		Message: fmt.Sprintf("Profile updated for %s", sess.Name),
	})
	return sess, nil, nil
}

// Logout destroys the persisted state entirely: session, complaints, assets.
func (s *Service) Logout() error {
	if err := s.Storage.ClearAll(); err != nil {
		return err
	}
	s.Notifier.Notify(models.Event{
		Type:    models.EventLogout,
		Message: "Logout notification",
	})
	return nil
}
