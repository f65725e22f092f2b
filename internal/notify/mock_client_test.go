package notify_test

import (
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/notify"
)

// mockClient is a channel-backed subscriber for hub tests.
type mockClient struct {
	id     string
	Send   chan models.Event
	closed bool
}

func newMockClient(id string) *mockClient {
	return &mockClient{
		id:   id,
		Send: make(chan models.Event, 8),
	}
}

func (c *mockClient) GetID() string                       { return c.id }
func (c *mockClient) GetSendChannel() chan<- models.Event { return c.Send }
func (c *mockClient) Run()                                {}
func (c *mockClient) Close()                              { c.closed = true }

var _ notify.Client = (*mockClient)(nil)
