// Package notify delivers fire-and-forget notifications about complaint and
// session events. Sinks never retry and never report delivery back to the
// caller; losing an event is acceptable by design of the original system,
// where "email" notifications were log lines.
package notify

import (
	"log"

	"hostelhub/backend/internal/models"
)

// Sink receives events. Implementations must not block the caller.
type Sink interface {
	Notify(e models.Event)
}

// LogSink writes the simulated email line for every event.
type LogSink struct{}

func (LogSink) Notify(e models.Event) {
	log.Printf("Email sent: %s", e.Message)
}

// MultiSink fans one event out to several sinks.
type MultiSink []Sink

func (m MultiSink) Notify(e models.Event) {
	for _, s := range m {
		s.Notify(e)
	}
}
