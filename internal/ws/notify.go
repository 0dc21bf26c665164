package ws

import (
	"encoding/json"
	"time"

	"linktern/internal/repository"
)

type ApplicationSubmittedEvent struct {
	Type         string `json:"type"`
	InternshipID string `json:"internship_id"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Timestamp    string `json:"timestamp"`
}

// Notifier adapts the hub to the application usecase's notifier port.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyApplicationSubmitted(it repository.Internship) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ApplicationSubmittedEvent{
		Type:         "application_submitted",
		InternshipID: it.ID.String(),
		Title:        it.Title,
		Company:      it.Company,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
