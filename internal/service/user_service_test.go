package service

import (
	"context"
	"testing"

	"instaclone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(nil, nil)

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{name: "MissingUsername", input: RegisterInput{Email: "a@b.com", Password: "longenough"}},
		{name: "MissingEmail", input: RegisterInput{Username: "a", Password: "longenough"}},
		{name: "BadEmail", input: RegisterInput{Username: "a", Email: "not-an-email", Password: "longenough"}},
		{name: "ShortPassword", input: RegisterInput{Username: "a", Email: "a@b.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.input)
			require.Error(t, err)

			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.CodeValidation, appErr.Code)
		})
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	var created *models.User
	userRepo := &userRepoStub{
		CreateFn: func(_ context.Context, user *models.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	svc := NewUserService(userRepo, nil)

	user, err := svc.Register(context.Background(), RegisterInput{
		Username: "newbie",
		Email:    "newbie@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEqual(t, "password123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
	assert.Equal(t, uint(1), user.ID)
}

func TestRegisterDuplicateSurfacesConflict(t *testing.T) {
	userRepo := &userRepoStub{
		CreateFn: func(_ context.Context, _ *models.User) error {
			return models.NewConflictError("Username or email already taken")
		},
	}
	svc := NewUserService(userRepo, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "dupe",
		Email:    "dupe@example.com",
		Password: "password123",
	})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRepo := &userRepoStub{
		GetByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			if email == "known@example.com" {
				return &models.User{ID: 3, Email: email, Password: string(hash)}, nil
			}
			return nil, models.NewNotFoundError("User", email)
		},
	}
	svc := NewUserService(userRepo, nil)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "known@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, uint(3), user.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "known@example.com", "wrong")
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	})

	t.Run("UnknownEmailSameMessage", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@example.com", "whatever")
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	})
}

func TestToggleFollow(t *testing.T) {
	following := false
	userRepo := &userRepoStub{
		GetByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			if id > 100 {
				return nil, models.NewNotFoundError("User", id)
			}
			return &models.User{ID: id}, nil
		},
	}
	followRepo := &followRepoStub{
		IsFollowingFn: func(_ context.Context, _, _ uint) (bool, error) {
			return following, nil
		},
		FollowFn: func(_ context.Context, _, _ uint) error {
			following = true
			return nil
		},
		UnfollowFn: func(_ context.Context, _, _ uint) error {
			following = false
			return nil
		},
	}
	svc := NewUserService(userRepo, followRepo)
	ctx := context.Background()

	t.Run("SelfFollowRejected", func(t *testing.T) {
		_, err := svc.ToggleFollow(ctx, 1, 1)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	})

	t.Run("UnknownTargetRejected", func(t *testing.T) {
		_, err := svc.ToggleFollow(ctx, 1, 999)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("ToggleFlipsMembership", func(t *testing.T) {
		nowFollowing, err := svc.ToggleFollow(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, nowFollowing)

		nowFollowing, err = svc.ToggleFollow(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, nowFollowing)
	})
}

func TestUpdateProfileKeepsUnsetFields(t *testing.T) {
	stored := &models.User{ID: 1, Username: "orig", Bio: "old bio", Avatar: "old.png"}
	userRepo := &userRepoStub{
		GetByIDFn: func(_ context.Context, _ uint) (*models.User, error) {
			u := *stored
			return &u, nil
		},
		UpdateFn: func(_ context.Context, user *models.User) error {
			stored = user
			return nil
		},
	}
	svc := NewUserService(userRepo, nil)

	user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID: 1,
		Bio:    "new bio",
	})
	require.NoError(t, err)

	assert.Equal(t, "new bio", user.Bio)
	assert.Equal(t, "orig", user.Username)
	assert.Equal(t, "old.png", user.Avatar)
}
