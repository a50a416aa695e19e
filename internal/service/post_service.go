// Package service implements the application's business logic over the
// repository layer.
package service

import (
	"context"
	"strings"

	"instaclone/internal/models"
	"instaclone/internal/repository"
)

// PostService implements the post-centric interactions: creation, feeds,
// like and bookmark toggles, and the ownership-checked cascading delete.
type PostService struct {
	postRepo     repository.PostRepository
	bookmarkRepo repository.BookmarkRepository
	userRepo     repository.UserRepository
}

// CreatePostInput carries the fields for a new post. The image reference,
// when present, is the storable ref produced by the image service.
type CreatePostInput struct {
	UserID   uint
	Caption  string
	ImageURL string
}

// NewPostService returns a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	bookmarkRepo repository.BookmarkRepository,
	userRepo repository.UserRepository,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		bookmarkRepo: bookmarkRepo,
		userRepo:     userRepo,
	}
}

const maxCaptionLen = 2200

// CreatePost validates and persists a new post for the author.
// At least one of caption and image must be present.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	caption := strings.TrimSpace(in.Caption)
	if caption == "" && in.ImageURL == "" {
		return nil, models.NewValidationError("At least one of caption and image is required")
	}
	if len(caption) > maxCaptionLen {
		return nil, models.NewValidationError("Caption too long (max 2200 characters)")
	}

	if _, err := s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Caption:  caption,
		ImageURL: in.ImageURL,
		UserID:   in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// ListPosts returns the newest-first feed with authors and comment authors
// attached.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.List(ctx, limit, offset, currentUserID)
}

// GetUserPosts returns the newest-first posts authored by userID.
func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

// GetPost returns a single post or NotFound.
func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

// ToggleLike flips the caller's like membership on the post. When the actor
// is not the author it also returns a notification addressed to the author:
// type "like" when the post was just liked, "dislike" when unliked. The
// notification is a value; delivering it is the dispatcher's job and never
// affects this operation's outcome.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*models.Post, *models.Notification, error) {
	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		return nil, nil, err
	}

	isLiked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, nil, err
	}

	if isLiked {
		err = s.postRepo.Unlike(ctx, userID, postID)
	} else {
		err = s.postRepo.Like(ctx, userID, postID)
	}
	if err != nil {
		return nil, nil, err
	}

	updated, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, nil, err
	}

	var notification *models.Notification
	if post.UserID != userID {
		actor, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, nil, err
		}
		notification = &models.Notification{
			UserID:      userID,
			UserDetails: actor.Summary(),
			PostID:      postID,
			Recipient:   post.UserID,
		}
		if isLiked {
			notification.Type = models.NotificationTypeDislike
			notification.Message = "Your post was disliked"
		} else {
			notification.Type = models.NotificationTypeLike
			notification.Message = "Your post was liked"
		}
	}

	return updated, notification, nil
}

// ToggleBookmark flips the caller's bookmark membership on the post.
// Bookmarks never notify anyone.
func (s *PostService) ToggleBookmark(ctx context.Context, userID, postID uint) (bool, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return false, err
	}

	isBookmarked, err := s.bookmarkRepo.IsBookmarked(ctx, userID, postID)
	if err != nil {
		return false, err
	}

	if isBookmarked {
		if err := s.bookmarkRepo.Remove(ctx, userID, postID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.bookmarkRepo.Add(ctx, userID, postID); err != nil {
		return false, err
	}
	return true, nil
}

// GetBookmarkedPosts returns the caller's saved posts, most recently saved
// first.
func (s *PostService) GetBookmarkedPosts(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.bookmarkRepo.ListPosts(ctx, userID)
}

// DeletePost deletes the post and cascades to its comments, likes, and
// bookmarks. Only the author may delete; re-deleting an absent post yields
// NotFound.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("You are not authorized to delete this post")
	}
	return s.postRepo.DeleteCascade(ctx, postID)
}
