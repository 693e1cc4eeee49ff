package session

import (
	"github.com/dawood1123/Lumina-study-app/internal/assistant"
	"github.com/dawood1123/Lumina-study-app/internal/config"
)

type SessionContainer struct {
	Session *Session
	Handler *Handler
}

func NewSessionContainer(generator assistant.Service) *SessionContainer {
	s := New(generator)
	s.Subscribe(func(snap Snapshot) {
		entry := config.Log.WithField("phase", snap.Phase)
		if snap.Result != nil {
			entry = entry.WithField("result_id", snap.Result.ID).WithField("mode", snap.Result.Mode)
		}
		if snap.Error != "" {
			entry = entry.WithField("error", snap.Error)
		}
		entry.Debug("session transition")
	})

	return &SessionContainer{
		Session: s,
		Handler: NewHandler(s),
	}
}
