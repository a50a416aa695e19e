package service

import (
	"context"

	"instaclone/internal/models"
)

// Function-field stubs keep each test's behavior next to its assertions.
// Unconfigured methods panic so a test never silently depends on one.

type postRepoStub struct {
	CreateFn          func(ctx context.Context, post *models.Post) error
	GetByIDFn         func(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	GetByUserIDFn     func(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	ListFn            func(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	DeleteCascadeFn   func(ctx context.Context, id uint) error
	IsLikedFn         func(ctx context.Context, userID, postID uint) (bool, error)
	GetLikedPostIDsFn func(ctx context.Context, userID uint, postIDs []uint) ([]uint, error)
	LikeFn            func(ctx context.Context, userID, postID uint) error
	UnlikeFn          func(ctx context.Context, userID, postID uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.CreateFn(ctx, post)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.GetByIDFn(ctx, id, currentUserID)
}

func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.GetByUserIDFn(ctx, userID, limit, offset, currentUserID)
}

func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.ListFn(ctx, limit, offset, currentUserID)
}

func (s *postRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.DeleteCascadeFn(ctx, id)
}

func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.IsLikedFn(ctx, userID, postID)
}

func (s *postRepoStub) GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	return s.GetLikedPostIDsFn(ctx, userID, postIDs)
}

func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.LikeFn(ctx, userID, postID)
}

func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.UnlikeFn(ctx, userID, postID)
}

type userRepoStub struct {
	CreateFn        func(ctx context.Context, user *models.User) error
	GetByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	UpdateFn        func(ctx context.Context, user *models.User) error
	ListSuggestedFn func(ctx context.Context, excludeUserID uint, limit int) ([]models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.CreateFn(ctx, user)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.GetByIDFn(ctx, id)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.GetByEmailFn(ctx, email)
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.UpdateFn(ctx, user)
}

func (s *userRepoStub) ListSuggested(ctx context.Context, excludeUserID uint, limit int) ([]models.User, error) {
	return s.ListSuggestedFn(ctx, excludeUserID, limit)
}

type bookmarkRepoStub struct {
	IsBookmarkedFn func(ctx context.Context, userID, postID uint) (bool, error)
	AddFn          func(ctx context.Context, userID, postID uint) error
	RemoveFn       func(ctx context.Context, userID, postID uint) error
	ListPostsFn    func(ctx context.Context, userID uint) ([]*models.Post, error)
}

func (s *bookmarkRepoStub) IsBookmarked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.IsBookmarkedFn(ctx, userID, postID)
}

func (s *bookmarkRepoStub) Add(ctx context.Context, userID, postID uint) error {
	return s.AddFn(ctx, userID, postID)
}

func (s *bookmarkRepoStub) Remove(ctx context.Context, userID, postID uint) error {
	return s.RemoveFn(ctx, userID, postID)
}

func (s *bookmarkRepoStub) ListPosts(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.ListPostsFn(ctx, userID)
}

type commentRepoStub struct {
	CreateFn     func(ctx context.Context, comment *models.Comment) error
	GetByIDFn    func(ctx context.Context, id uint) (*models.Comment, error)
	ListByPostFn func(ctx context.Context, postID uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.CreateFn(ctx, comment)
}

func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.GetByIDFn(ctx, id)
}

func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.ListByPostFn(ctx, postID)
}

type followRepoStub struct {
	IsFollowingFn func(ctx context.Context, followerID, followingID uint) (bool, error)
	FollowFn      func(ctx context.Context, followerID, followingID uint) error
	UnfollowFn    func(ctx context.Context, followerID, followingID uint) error
	FollowersFn   func(ctx context.Context, userID uint) ([]models.User, error)
	FollowingFn   func(ctx context.Context, userID uint) ([]models.User, error)
	CountsFn      func(ctx context.Context, userID uint) (int64, int64, error)
}

func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.IsFollowingFn(ctx, followerID, followingID)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followingID uint) error {
	return s.FollowFn(ctx, followerID, followingID)
}

func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followingID uint) error {
	return s.UnfollowFn(ctx, followerID, followingID)
}

func (s *followRepoStub) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.FollowersFn(ctx, userID)
}

func (s *followRepoStub) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.FollowingFn(ctx, userID)
}

func (s *followRepoStub) Counts(ctx context.Context, userID uint) (int64, int64, error) {
	return s.CountsFn(ctx, userID)
}
