package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cortado/internal/config"
	"cortado/internal/database"
	"cortado/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestServer builds a Server over an in-memory sqlite database with the
// full route table mounted. No Redis client is attached, so every read goes
// straight to the database.
func setupTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A pooled second connection would see an empty in-memory database.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	if err := database.EnsureSettings(db); err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	s := &Server{
		config:       &config.Config{Port: "0", SessionTTLDays: 30, Env: "test"},
		db:           db,
		userRepo:     repository.NewUserRepository(db),
		profileRepo:  repository.NewProfileRepository(db),
		settingsRepo: repository.NewSettingsRepository(db),
		blogRepo:     repository.NewBlogRepository(db),
		sessionRepo:  repository.NewSessionRepository(db),
	}

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app
}

// jsonRequest builds a JSON request, optionally carrying a session cookie.
func jsonRequest(method, path, body string, cookie *http.Cookie) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

// registerUser registers a fresh account through the API and returns its
// session cookie.
func registerUser(t *testing.T, app *fiber.App, username string) *http.Cookie {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"password":"Password123!"}`, username)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/register", body, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", username, resp.StatusCode)
	}

	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatalf("register %s: no session cookie set", username)
	return nil
}
