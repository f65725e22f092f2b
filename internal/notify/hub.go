package notify

import (
	"log"

	"hostelhub/backend/internal/models"
)

// Client is one live event subscriber, regardless of transport.
type Client interface {
	// GetID returns the unique identifier of this connection.
	GetID() string
	// GetSendChannel returns the channel the hub pushes events into.
	GetSendChannel() chan<- models.Event
	// Run starts the client's pumps.
	Run()
	// Close shuts down the client's connection and channels.
	Close()
}

// Hub broadcasts events to every registered client. All state is owned by the
// Run goroutine; the channels are the only way in.
type Hub struct {
	Clients map[string]Client

	EventCh      chan models.Event
	RegisterCh   chan Client
	UnregisterCh chan Client
}

// NewHub creates an idle hub; call Run to start dispatching.
func NewHub() *Hub {
	return &Hub{
		Clients:      make(map[string]Client),
		EventCh:      make(chan models.Event, 64),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
	}
}

// Notify implements Sink. Events are dropped rather than blocking the caller
// when the hub is saturated or not running.
func (h *Hub) Notify(e models.Event) {
	select {
	case h.EventCh <- e:
	default:
		log.Printf("WARNING: Event hub full, dropping %s event", e.Type)
	}
}

// Run is the hub dispatcher loop.
func (h *Hub) Run() {
	log.Println("Notification hub started.")

	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client.GetID()] = client
			log.Printf("Subscriber %s registered.", client.GetID())

		case client := <-h.UnregisterCh:
			if _, ok := h.Clients[client.GetID()]; ok {
				delete(h.Clients, client.GetID())
				client.Close()
			}

		case e := <-h.EventCh:
			for id, client := range h.Clients {
				select {
				case client.GetSendChannel() <- e:
				default:
					// Slow subscriber: drop it instead of stalling the hub.
					delete(h.Clients, id)
					client.Close()
				}
			}
		}
	}
}
