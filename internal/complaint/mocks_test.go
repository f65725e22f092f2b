package complaint_test

import (
	"github.com/stretchr/testify/mock"

	"hostelhub/backend/internal/models"
)

type MockSink struct {
	mock.Mock
}

func (m *MockSink) Notify(e models.Event) {
	m.Called(e)
}
