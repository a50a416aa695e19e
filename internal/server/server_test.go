package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"instaclone/internal/config"
	"instaclone/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestApp boots the full HTTP stack against an in-memory SQLite store
// with no Redis, exercising the same wiring production uses.
func newTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Bookmark{},
		&models.Follow{},
	))

	cfg := &config.Config{
		Port:                 "0",
		Env:                  "test",
		JWTSecret:            "integration-test-secret",
		ImageUploadDir:       t.TempDir(),
		ImageMaxUploadSizeMB: 5,
	}

	srv, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)
	return app, srv
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}
	return resp, parsed
}

// registerUser signs up a user through the API and returns their token and id.
func registerUser(t *testing.T, app *fiber.App, username string) (string, uint) {
	t.Helper()

	resp, body := doJSON(t, app, "POST", "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register %s: %v", username, body)

	token := body["token"].(string)
	user := body["user"].(map[string]any)
	return token, uint(user["id"].(float64))
}

func createPost(t *testing.T, app *fiber.App, token, caption string) uint {
	t.Helper()

	resp, body := doJSON(t, app, "POST", "/api/v1/post", token, map[string]string{
		"caption": caption,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create post: %v", body)

	post := body["post"].(map[string]any)
	return uint(post["id"].(float64))
}
