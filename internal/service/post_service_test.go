package service

import (
	"context"
	"strings"
	"testing"

	"instaclone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostValidation(t *testing.T) {
	svc := NewPostService(nil, nil, nil)

	tests := []struct {
		name    string
		input   CreatePostInput
		message string
	}{
		{
			name:    "NoCaptionNoImage",
			input:   CreatePostInput{UserID: 1},
			message: "At least one of caption and image is required",
		},
		{
			name:    "WhitespaceOnlyCaption",
			input:   CreatePostInput{UserID: 1, Caption: "   \n\t  "},
			message: "At least one of caption and image is required",
		},
		{
			name:    "CaptionTooLong",
			input:   CreatePostInput{UserID: 1, Caption: strings.Repeat("a", maxCaptionLen+1)},
			message: "Caption too long (max 2200 characters)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePost(context.Background(), tt.input)
			require.Error(t, err)

			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.CodeValidation, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestCreatePostTrimsCaption(t *testing.T) {
	var created *models.Post
	postRepo := &postRepoStub{
		CreateFn: func(_ context.Context, post *models.Post) error {
			post.ID = 7
			created = post
			return nil
		},
		GetByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, Caption: created.Caption, UserID: created.UserID}, nil
		},
	}
	userRepo := &userRepoStub{
		GetByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "author"}, nil
		},
	}

	svc := NewPostService(postRepo, nil, userRepo)
	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:  1,
		Caption: "  sunset  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "sunset", post.Caption)
	assert.Equal(t, uint(1), post.UserID)
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	userRepo := &userRepoStub{
		GetByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		},
	}

	svc := NewPostService(nil, nil, userRepo)
	_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 99, Caption: "hi"})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

// toggleLikeFixture wires a post service whose like-state flips through the
// stub, mimicking the membership table.
func toggleLikeFixture(authorID uint, liked *bool) *PostService {
	postRepo := &postRepoStub{
		GetByIDFn: func(_ context.Context, id uint, currentUserID uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: authorID, Liked: *liked && currentUserID != 0}, nil
		},
		IsLikedFn: func(_ context.Context, _, _ uint) (bool, error) {
			return *liked, nil
		},
		LikeFn: func(_ context.Context, _, _ uint) error {
			*liked = true
			return nil
		},
		UnlikeFn: func(_ context.Context, _, _ uint) error {
			*liked = false
			return nil
		},
	}
	userRepo := &userRepoStub{
		GetByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "actor", Avatar: "a.png"}, nil
		},
	}
	return NewPostService(postRepo, nil, userRepo)
}

func TestToggleLikeEmitsNotification(t *testing.T) {
	liked := false
	svc := toggleLikeFixture(2, &liked)
	ctx := context.Background()

	post, notif, err := svc.ToggleLike(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, post.Liked)

	require.NotNil(t, notif)
	assert.Equal(t, models.NotificationTypeLike, notif.Type)
	assert.Equal(t, uint(1), notif.UserID)
	assert.Equal(t, uint(10), notif.PostID)
	assert.Equal(t, uint(2), notif.Recipient)
	assert.Equal(t, "actor", notif.UserDetails.Username)
	assert.Equal(t, "Your post was liked", notif.Message)
}

func TestToggleLikeSecondCallUnlikes(t *testing.T) {
	liked := true
	svc := toggleLikeFixture(2, &liked)

	post, notif, err := svc.ToggleLike(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.False(t, post.Liked)

	require.NotNil(t, notif)
	assert.Equal(t, models.NotificationTypeDislike, notif.Type)
	assert.Equal(t, "Your post was disliked", notif.Message)
	assert.Equal(t, uint(2), notif.Recipient)
}

func TestToggleLikeOwnPostEmitsNothing(t *testing.T) {
	liked := false
	svc := toggleLikeFixture(1, &liked)

	post, notif, err := svc.ToggleLike(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.True(t, post.Liked)
	assert.Nil(t, notif)
}

func TestToggleLikeMissingPost(t *testing.T) {
	postRepo := &postRepoStub{
		GetByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		},
	}
	svc := NewPostService(postRepo, nil, nil)

	_, notif, err := svc.ToggleLike(context.Background(), 1, 999)
	assert.Nil(t, notif)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestToggleBookmark(t *testing.T) {
	bookmarked := false
	postRepo := &postRepoStub{
		GetByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 2}, nil
		},
	}
	bookmarkRepo := &bookmarkRepoStub{
		IsBookmarkedFn: func(_ context.Context, _, _ uint) (bool, error) {
			return bookmarked, nil
		},
		AddFn: func(_ context.Context, _, _ uint) error {
			bookmarked = true
			return nil
		},
		RemoveFn: func(_ context.Context, _, _ uint) error {
			bookmarked = false
			return nil
		},
	}
	svc := NewPostService(postRepo, bookmarkRepo, nil)
	ctx := context.Background()

	nowBookmarked, err := svc.ToggleBookmark(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, nowBookmarked)

	nowBookmarked, err = svc.ToggleBookmark(ctx, 1, 10)
	require.NoError(t, err)
	assert.False(t, nowBookmarked)
}

func TestDeletePostOwnership(t *testing.T) {
	cascaded := false
	postRepo := &postRepoStub{
		GetByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 2}, nil
		},
		DeleteCascadeFn: func(_ context.Context, _ uint) error {
			cascaded = true
			return nil
		},
	}
	svc := NewPostService(postRepo, nil, nil)
	ctx := context.Background()

	t.Run("NonAuthorIsForbidden", func(t *testing.T) {
		err := svc.DeletePost(ctx, 1, 10)
		require.Error(t, err)
		assert.False(t, cascaded)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeForbidden, appErr.Code)
	})

	t.Run("AuthorDeletes", func(t *testing.T) {
		require.NoError(t, svc.DeletePost(ctx, 2, 10))
		assert.True(t, cascaded)
	})
}
