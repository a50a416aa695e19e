package database

import "instaclone/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Notification is deliberately absent: notifications are transient values and
// never hit storage.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Bookmark{},
		&models.Follow{},
	}
}
