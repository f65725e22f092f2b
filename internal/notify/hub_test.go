package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/notify"
)

func TestHub_RegisterUnregister(t *testing.T) {
	hub := notify.NewHub()
	clientA := newMockClient("admin_A")

	go hub.Run()

	hub.RegisterCh <- clientA
	time.Sleep(100 * time.Millisecond)
	assert.Contains(t, hub.Clients, "admin_A")

	hub.UnregisterCh <- clientA
	time.Sleep(100 * time.Millisecond)
	assert.NotContains(t, hub.Clients, "admin_A")
	assert.True(t, clientA.closed, "unregister closes the client")
}

func TestHub_BroadcastsToAllClients(t *testing.T) {
	hub := notify.NewHub()
	clientA := newMockClient("admin_A")
	clientB := newMockClient("admin_B")

	go hub.Run()

	hub.RegisterCh <- clientA
	hub.RegisterCh <- clientB
	time.Sleep(100 * time.Millisecond)

	hub.Notify(models.Event{Type: models.EventStatusChanged, ComplaintID: "c-1", Status: models.StatusResolved})
	time.Sleep(100 * time.Millisecond)

	for _, client := range []*mockClient{clientA, clientB} {
		select {
		case e := <-client.Send:
			assert.Equal(t, "c-1", e.ComplaintID)
			assert.Equal(t, models.StatusResolved, e.Status)
		default:
			t.Errorf("client %s did not receive the event", client.GetID())
		}
	}
}

func TestHub_DropsSlowClients(t *testing.T) {
	hub := notify.NewHub()
	slow := &mockClient{id: "slow", Send: make(chan models.Event)} // unbuffered, never read

	go hub.Run()

	hub.RegisterCh <- slow
	time.Sleep(100 * time.Millisecond)

	hub.Notify(models.Event{Type: models.EventComplaintNew})
	time.Sleep(100 * time.Millisecond)

	assert.NotContains(t, hub.Clients, "slow", "a blocked subscriber is dropped, not waited on")
	assert.True(t, slow.closed)
}

func TestHub_NotifyNeverBlocksWithoutRun(t *testing.T) {
	hub := notify.NewHub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Notify(models.Event{Type: models.EventLogin})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked while the hub was not running")
	}
}
