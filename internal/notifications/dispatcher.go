package notifications

import (
	"encoding/json"

	"instaclone/internal/middleware"
	"instaclone/internal/models"
	"instaclone/internal/observability"
)

// envelope is the wire shape pushed over the websocket.
type envelope struct {
	Event   string               `json:"event"`
	Payload *models.Notification `json:"payload"`
}

// Dispatcher pushes notifications to recipients through the presence
// directory. Delivery is fire-and-forget: an offline recipient or a slow
// connection drops the notification and the triggering request is never
// affected.
type Dispatcher struct {
	directory *Directory
}

// NewDispatcher creates a Dispatcher backed by the given directory.
func NewDispatcher(directory *Directory) *Dispatcher {
	return &Dispatcher{directory: directory}
}

// Directory exposes the underlying presence directory for connection
// handlers.
func (d *Dispatcher) Directory() *Directory {
	return d.directory
}

// Dispatch delivers n to its recipient if they are online. It never returns
// an error; every outcome is counted instead.
func (d *Dispatcher) Dispatch(n *models.Notification) {
	if n == nil || n.Recipient == 0 {
		return
	}

	client := d.directory.Lookup(n.Recipient)
	if client == nil {
		observability.NotificationsDispatched.WithLabelValues("dropped_offline").Inc()
		return
	}

	message, err := json.Marshal(envelope{Event: "notification", Payload: n})
	if err != nil {
		middleware.Logger.Error("notification marshal failed", "recipient", n.Recipient, "error", err)
		observability.NotificationsDispatched.WithLabelValues("dropped_marshal").Inc()
		return
	}

	if client.TrySend(message) {
		observability.NotificationsDispatched.WithLabelValues("delivered").Inc()
	} else {
		observability.NotificationsDispatched.WithLabelValues("dropped_backpressure").Inc()
	}
}
