// Package storage owns the durable complaint collection and the session
// record. Both live as whole JSON values on the key-value substrate; every
// mutation is a whole-collection read, transform, write. Absent or malformed
// persisted values are read as empty defaults, never surfaced as errors.
package storage

import (
	"context"
	"encoding/json"
	"log"

	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/kvstore"
	"hostelhub/backend/internal/models"
)

// Storage is the mutation surface for the persisted state. View-model code
// depends on this interface, never on the substrate directly.
type Storage interface {
	LoadComplaints() []models.Complaint
	SaveComplaints(list []models.Complaint) error
	AppendComplaint(c models.Complaint) error
	UpdateComplaintStatus(id string, status models.Status) error
	// SeedComplaints writes an empty collection iff none is persisted yet.
	SeedComplaints() error

	LoadSession() *models.Session
	SaveSession(s *models.Session) error

	// ClearAll wipes the whole persisted state. Backs logout.
	ClearAll() error
}

// Service implements Storage over an injected kvstore.
type Service struct {
	KV  kvstore.Store
	Ctx context.Context
}

// NewStorageService Constructor
func NewStorageService(kv kvstore.Store) *Service {
	return &Service{
		KV:  kv,
		Ctx: context.Background(),
	}
}

// LoadComplaints reads the full persisted collection. An absent or unparsable
// value yields an empty slice; read failures are logged, never propagated.
func (s *Service) LoadComplaints() []models.Complaint {
	raw, err := s.KV.Get(s.Ctx, config.ComplaintsKey)
	if err != nil {
		if err != kvstore.ErrNotFound {
			log.Printf("ERROR: Failed to read complaints, treating as empty: %v", err)
		}
		return []models.Complaint{}
	}

	var list []models.Complaint
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("WARNING: Malformed complaints value, treating as empty: %v", err)
		return []models.Complaint{}
	}
	if list == nil {
		list = []models.Complaint{}
	}
	return list
}

// SaveComplaints serializes and persists the full collection, replacing prior
// content. There is no partial update.
func (s *Service) SaveComplaints(list []models.Complaint) error {
	if list == nil {
		list = []models.Complaint{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.KV.Set(s.Ctx, config.ComplaintsKey, string(raw))
}

// AppendComplaint adds c to the end of the persisted collection.
func (s *Service) AppendComplaint(c models.Complaint) error {
	return s.SaveComplaints(append(s.LoadComplaints(), c))
}

// UpdateComplaintStatus replaces the status of the complaint with the given id.
// Unknown ids are a silent no-op and leave the collection untouched.
func (s *Service) UpdateComplaintStatus(id string, status models.Status) error {
	list := s.LoadComplaints()
	found := false
	for i := range list {
		if list[i].ID == id {
			list[i].Status = status
			found = true
		}
	}
	if !found {
		return nil
	}
	return s.SaveComplaints(list)
}

// SeedComplaints persists an empty collection when the key is absent, so a
// fresh login starts from "[]" rather than a missing value. An existing
// value, even a malformed one, is left alone.
func (s *Service) SeedComplaints() error {
	if _, err := s.KV.Get(s.Ctx, config.ComplaintsKey); err == nil {
		return nil
	} else if err != kvstore.ErrNotFound {
		return err
	}
	return s.KV.Set(s.Ctx, config.ComplaintsKey, "[]")
}

// LoadSession returns the persisted session, or nil when absent or malformed.
func (s *Service) LoadSession() *models.Session {
	raw, err := s.KV.Get(s.Ctx, config.SessionKey)
	if err != nil {
		if err != kvstore.ErrNotFound {
			log.Printf("ERROR: Failed to read session, treating as absent: %v", err)
		}
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		log.Printf("WARNING: Malformed session value, treating as absent: %v", err)
		return nil
	}
	if sess.Name == "" {
		return nil
	}
	return &sess
}

// SaveSession persists the session as a single record, replacing any prior one.
func (s *Service) SaveSession(sess *models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.KV.Set(s.Ctx, config.SessionKey, string(raw))
}

// ClearAll wipes every persisted key: session, complaints and detached assets.
func (s *Service) ClearAll() error {
	return s.KV.Clear(s.Ctx)
}
