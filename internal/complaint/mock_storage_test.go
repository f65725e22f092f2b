package complaint_test

import (
	"github.com/stretchr/testify/mock"

	"hostelhub/backend/internal/models"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) LoadComplaints() []models.Complaint {
	args := m.Called()
	return args.Get(0).([]models.Complaint)
}

func (m *MockStorage) SaveComplaints(list []models.Complaint) error {
	args := m.Called(list)
	return args.Error(0)
}

func (m *MockStorage) AppendComplaint(c models.Complaint) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockStorage) UpdateComplaintStatus(id string, status models.Status) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockStorage) SeedComplaints() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockStorage) LoadSession() *models.Session {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.Session)
}

func (m *MockStorage) SaveSession(s *models.Session) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockStorage) ClearAll() error {
	args := m.Called()
	return args.Error(0)
}
