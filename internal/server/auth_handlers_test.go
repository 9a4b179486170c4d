package server

import (
	"net/http"
	"testing"

	"bloglist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	app, factory, _ := newTestServer(t)
	loginAs(t, app, factory, "alice")

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			body:           map[string]string{"username": "alice", "password": "sekret"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			body:           map[string]string{"username": "alice", "password": "wrong"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown user",
			body:           map[string]string{"username": "nobody", "password": "sekret"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/login", "", tt.body)
			defer resp.Body.Close()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestLoginReturnsUsernameAndToken(t *testing.T) {
	app, factory, _ := newTestServer(t)
	loginAs(t, app, factory, "alice")

	resp := doJSON(t, app, http.MethodPost, "/api/login", "", map[string]string{
		"username": "alice", "password": "sekret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session models.Session
	decode(t, resp, &session)
	assert.Equal(t, "alice", session.Username)
	assert.NotEmpty(t, session.Token)
}

func TestCreateUserHandler(t *testing.T) {
	app, _, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/users", "", map[string]string{
		"username": "bob", "name": "Bob", "password": "sekret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	decode(t, resp, &user)
	assert.Equal(t, "bob", user.Username)
	assert.NotEmpty(t, user.ID)

	// Duplicate username is rejected.
	resp = doJSON(t, app, http.MethodPost, "/api/users", "", map[string]string{
		"username": "bob", "name": "Bob II", "password": "sekret",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateUserValidation(t *testing.T) {
	app, _, _ := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "missing username", body: map[string]string{"password": "sekret"}},
		{name: "missing password", body: map[string]string{"username": "bob"}},
		{name: "short password", body: map[string]string{"username": "bob", "password": "ab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/users", "", tt.body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestAuthRequiredRejections(t *testing.T) {
	app, _, _ := newTestServer(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/api/blogs", nil)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
