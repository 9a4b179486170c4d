package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"bloglist/internal/config"
	"bloglist/internal/database"
	"bloglist/internal/models"
	"bloglist/internal/seed"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestServer builds a fiber app over a fresh in-memory database.
func newTestServer(t *testing.T) (*fiber.App, *seed.Factory, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(dsn)
	require.NoError(t, err)

	cfg := &config.Config{
		APIURL:       "http://bloglist.test",
		HTTPTimeout:  "10s",
		SessionStore: "memory",
		Port:         "0",
		JWTSecret:    "test_secret",
		Env:          "development",
	}
	srv := NewServer(cfg, db)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app, seed.NewFactory(db), db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// loginAs creates the user (if needed) and returns a valid token.
func loginAs(t *testing.T, app *fiber.App, factory *seed.Factory, username string) string {
	t.Helper()

	if _, err := factory.CreateUser(context.Background(), username, username, "sekret"); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}

	resp := doJSON(t, app, http.MethodPost, "/api/login", "", map[string]string{
		"username": username, "password": "sekret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.Session
	decode(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}
