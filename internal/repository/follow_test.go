package repository

import (
	"context"
	"testing"

	"instaclone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	t.Run("FollowCreatesEdge", func(t *testing.T) {
		require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))

		following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, following)

		// The edge is directional.
		reverse, err := repo.IsFollowing(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		assert.False(t, reverse)
	})

	t.Run("EdgeIsVisibleFromBothSides", func(t *testing.T) {
		followers, err := repo.Followers(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, followers, 1)
		assert.Equal(t, "alice", followers[0].Username)

		following, err := repo.Following(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, following, 1)
		assert.Equal(t, "bob", following[0].Username)
	})

	t.Run("FollowIsIdempotent", func(t *testing.T) {
		require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))

		var count int64
		require.NoError(t, db.Model(&models.Follow{}).
			Where("follower_id = ? AND following_id = ?", alice.ID, bob.ID).
			Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Counts", func(t *testing.T) {
		require.NoError(t, repo.Follow(ctx, carol.ID, bob.ID))

		followers, following, err := repo.Counts(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), followers)
		assert.Equal(t, int64(0), following)
	})

	t.Run("UnfollowRemovesBothViews", func(t *testing.T) {
		require.NoError(t, repo.Unfollow(ctx, alice.ID, bob.ID))

		isFollowing, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, isFollowing)

		followers, err := repo.Followers(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, followers, 1)
		assert.Equal(t, "carol", followers[0].Username)
	})

	t.Run("UnfollowAbsentIsNoop", func(t *testing.T) {
		require.NoError(t, repo.Unfollow(ctx, alice.ID, bob.ID))
	})
}
