// Package handler wires the HTTP surface to the domain services.
package handler

import (
	"hostelhelper/backend/internal/analytics"
	"hostelhelper/backend/internal/chat"
	"hostelhelper/backend/internal/complaint"
	"hostelhelper/backend/internal/session"
	"hostelhelper/backend/internal/storage"
)

// Handler carries every dependency the route handlers need.
type Handler struct {
	Storage    storage.Storage
	Sessions   *session.Provider
	Complaints *complaint.Service
	Chat       *chat.Engine
	Hub        *chat.Hub
	Analytics  *analytics.Service
}

func NewHandler(s storage.Storage, sessions *session.Provider, complaints *complaint.Service, engine *chat.Engine, hub *chat.Hub, stats *analytics.Service) *Handler {
	return &Handler{
		Storage:    s,
		Sessions:   sessions,
		Complaints: complaints,
		Chat:       engine,
		Hub:        hub,
		Analytics:  stats,
	}
}
