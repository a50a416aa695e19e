// Package notifications delivers real-time events to connected users. The
// Directory tracks who is online, and the Dispatcher pushes notification
// payloads to them on a best-effort basis.
package notifications

import (
	"sync"

	"instaclone/internal/observability"
)

// Directory maps userID -> the single live notification client for that
// user. Connecting a second time replaces the first connection: the stale
// client's send channel is closed, which shuts its write pump down.
type Directory struct {
	mu      sync.RWMutex
	clients map[uint]*Client
}

// NewDirectory creates an empty presence directory.
func NewDirectory() *Directory {
	return &Directory{clients: make(map[uint]*Client)}
}

// Register installs c as the live connection for its user. If another
// connection is already registered for the user it is evicted.
func (d *Directory) Register(c *Client) {
	d.mu.Lock()
	prev := d.clients[c.UserID]
	d.clients[c.UserID] = c
	d.mu.Unlock()

	if prev != nil && prev != c {
		close(prev.Send)
	} else {
		observability.ActiveWebSockets.Inc()
	}
}

// Unregister removes c if it is still the registered connection for its
// user. A client evicted by a newer connection is a no-op here.
func (d *Directory) Unregister(c *Client) {
	d.mu.Lock()
	current, ok := d.clients[c.UserID]
	if ok && current == c {
		delete(d.clients, c.UserID)
	}
	d.mu.Unlock()

	if ok && current == c {
		observability.ActiveWebSockets.Dec()
	}
}

// Lookup returns the live client for userID, or nil if the user is offline.
func (d *Directory) Lookup(userID uint) *Client {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.clients[userID]
}

// Online reports whether userID has a live connection.
func (d *Directory) Online(userID uint) bool {
	return d.Lookup(userID) != nil
}

// Count returns the number of connected users.
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.clients)
}
