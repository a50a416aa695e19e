package models

import "time"

// Follow represents a follow edge from one user to another.
// The edge is a single row, so "A follows B" and "B is followed by A" can
// never disagree: followers and following are two queries over the same
// table. A user never follows themselves (enforced at the service layer).
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;index;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID uint      `gorm:"not null;index;uniqueIndex:idx_follower_following" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
