package service

import (
	"context"
	"net/mail"
	"strings"

	"instaclone/internal/models"
	"instaclone/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService implements registration, authentication, profiles, and the
// follow graph.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UpdateProfileInput carries the mutable profile fields. Empty fields are
// left unchanged.
type UpdateProfileInput struct {
	UserID   uint
	Username string
	Bio      string
	Gender   string
	Avatar   string
}

// Profile is a user together with their follow graph neighborhoods.
type Profile struct {
	User      *models.User  `json:"user"`
	Followers []models.User `json:"followers"`
	Following []models.User `json:"following"`
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, models.NewValidationError("Username, email, and password are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, models.NewValidationError("Invalid email address")
	}
	if len(in.Password) < 8 {
		return nil, models.NewValidationError("Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and returns the account.
// Both unknown email and wrong password surface as the same validation
// error so the endpoint does not leak which accounts exist.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, models.NewValidationError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewValidationError("Invalid credentials")
	}
	return user, nil
}

// GetProfile returns the user together with their followers and following
// lists and counts. currentUserID controls the computed Following flag.
func (s *UserService) GetProfile(ctx context.Context, userID, currentUserID uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.Followers(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.Following(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FollowersCount = len(followers)
	user.FollowingCount = len(following)
	if currentUserID != 0 && currentUserID != userID {
		user.Following, err = s.followRepo.IsFollowing(ctx, currentUserID, userID)
		if err != nil {
			return nil, err
		}
	}

	return &Profile{
		User:      user,
		Followers: followers,
		Following: following,
	}, nil
}

// UpdateProfile applies the non-empty fields to the caller's profile.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if username := strings.TrimSpace(in.Username); username != "" {
		user.Username = username
	}
	if in.Bio != "" {
		user.Bio = in.Bio
	}
	if in.Gender != "" {
		user.Gender = in.Gender
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetSuggestedUsers returns other accounts the caller might follow.
func (s *UserService) GetSuggestedUsers(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	return s.userRepo.ListSuggested(ctx, userID, limit)
}

// ToggleFollow flips the follow edge from userID to targetID. The edge is a
// single row, so both directions of the relationship change together or not
// at all. Self-follow is rejected.
func (s *UserService) ToggleFollow(ctx context.Context, userID, targetID uint) (bool, error) {
	if userID == targetID {
		return false, models.NewValidationError("You cannot follow or unfollow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return false, err
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return false, err
	}

	isFollowing, err := s.followRepo.IsFollowing(ctx, userID, targetID)
	if err != nil {
		return false, err
	}

	if isFollowing {
		if err := s.followRepo.Unfollow(ctx, userID, targetID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.followRepo.Follow(ctx, userID, targetID); err != nil {
		return false, err
	}
	return true, nil
}
