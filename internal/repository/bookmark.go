// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"instaclone/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookmarkRepository defines the interface for bookmark membership operations
type BookmarkRepository interface {
	IsBookmarked(ctx context.Context, userID, postID uint) (bool, error)
	Add(ctx context.Context, userID, postID uint) error
	Remove(ctx context.Context, userID, postID uint) error
	ListPosts(ctx context.Context, userID uint) ([]*models.Post, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) IsBookmarked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *bookmarkRepository) Add(ctx context.Context, userID, postID uint) error {
	bookmark := &models.Bookmark{UserID: userID, PostID: postID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(bookmark).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *bookmarkRepository) Remove(ctx context.Context, userID, postID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Bookmark{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *bookmarkRepository) ListPosts(ctx context.Context, userID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("posts.*").
		Joins("JOIN bookmarks ON bookmarks.post_id = posts.id").
		Where("bookmarks.user_id = ? AND posts.deleted_at IS NULL", userID).
		Order("bookmarks.created_at DESC").
		Preload("User").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
