package handler

import (
	"hostelhub/backend/internal/assets"
	"hostelhub/backend/internal/complaint"
	"hostelhub/backend/internal/notify"
	"hostelhub/backend/internal/session"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	Sessions   *session.Service
	Complaints *complaint.Service
	Assets     *assets.Store
	Hub        *notify.Hub
	JWTSecret  []byte
}

func NewHandler(sessions *session.Service, complaints *complaint.Service, a *assets.Store, hub *notify.Hub, jwtSecret []byte) *Handler {
	return &Handler{
		Sessions:   sessions,
		Complaints: complaints,
		Assets:     a,
		Hub:        hub,
		JWTSecret:  jwtSecret,
	}
}
