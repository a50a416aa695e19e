// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"instaclone/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := createSocialMesh(db, users, posts); err != nil {
		return fmt.Errorf("failed to create social mesh: %w", err)
	}
	log.Println("✓ follows, likes, comments, and bookmarks created")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE bookmarks, likes, follows, comments, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// Always include a predictable login for manual testing.
	if count >= 1 {
		user := models.User{
			Username: "test",
			Email:    "test@example.com",
			Password: string(hashedPassword),
			Bio:      "Just here for the pictures.",
			Avatar:   "https://i.pravatar.cc/150?u=test",
		}
		if err := db.Where(models.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	for i := len(users); i < count; i++ {
		user := models.User{
			Username: gofakeit.Username(),
			Email:    gofakeit.Email(),
			Password: string(hashedPassword),
			Bio:      gofakeit.Sentence(8),
			Gender:   gofakeit.RandomString([]string{"male", "female", ""}),
			Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		}
		if err := db.Create(&user).Error; err != nil {
			// Random usernames can collide; skip and move on.
			continue
		}
		users = append(users, user)
	}

	return users, nil
}

func createPosts(db *gorm.DB, users []models.User, count int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	posts := make([]models.Post, 0, count)

	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]
		post := models.Post{
			Caption:  gofakeit.Sentence(r.Intn(12) + 3),
			ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
			UserID:   author.ID,
		}
		// A small share of posts are caption-only.
		if r.Intn(10) == 0 {
			post.ImageURL = ""
		}
		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}

// createSocialMesh wires users together with follows and sprinkles likes,
// comments, and bookmarks across the posts.
func createSocialMesh(db *gorm.DB, users []models.User, posts []models.Post) error {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, u := range users {
		for i := 0; i < r.Intn(6); i++ {
			target := users[r.Intn(len(users))]
			if target.ID == u.ID {
				continue
			}
			follow := models.Follow{FollowerID: u.ID, FollowingID: target.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error; err != nil {
				return err
			}
		}
	}

	for _, p := range posts {
		for i := 0; i < r.Intn(5); i++ {
			liker := users[r.Intn(len(users))]
			like := models.Like{UserID: liker.ID, PostID: p.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return err
			}
		}

		for i := 0; i < r.Intn(3); i++ {
			commenter := users[r.Intn(len(users))]
			comment := models.Comment{
				Text:   gofakeit.Sentence(r.Intn(10) + 2),
				UserID: commenter.ID,
				PostID: p.ID,
			}
			if err := db.Create(&comment).Error; err != nil {
				return err
			}
		}

		if r.Intn(4) == 0 {
			saver := users[r.Intn(len(users))]
			bookmark := models.Bookmark{UserID: saver.ID, PostID: p.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&bookmark).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
