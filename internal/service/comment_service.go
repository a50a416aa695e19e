package service

import (
	"context"
	"strings"

	"instaclone/internal/models"
	"instaclone/internal/repository"
)

// CommentService implements comment creation and listing.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

const maxCommentLen = 2200

// AddComment validates the text, appends the comment to the post, and
// returns the post with the new comment attached.
func (s *CommentService) AddComment(ctx context.Context, userID, postID uint, text string) (*models.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	if len(text) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 2200 characters)")
	}

	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   text,
		UserID: userID,
		PostID: postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID, userID)
}

// ListComments returns the post's comments oldest-first with their authors
// attached.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}
