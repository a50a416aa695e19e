package models

// NotificationType discriminates the real-time notification payloads.
type NotificationType string

const (
	// NotificationTypeLike is emitted when a post gains a like.
	NotificationTypeLike NotificationType = "like"
	// NotificationTypeDislike is emitted when a like is withdrawn.
	NotificationTypeDislike NotificationType = "dislike"
)

// Notification is a transient event produced by a state change and handed
// to the dispatcher for best-effort delivery. It is never persisted and has
// no identity: if the recipient is offline it is dropped.
type Notification struct {
	Type        NotificationType `json:"type"`
	UserID      uint             `json:"userId"`
	UserDetails UserSummary      `json:"userDetails"`
	PostID      uint             `json:"postId"`
	Message     string           `json:"message"`

	// Recipient addresses delivery; it is not part of the wire payload.
	Recipient uint `json:"-"`
}
