package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloglist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req["username"] == "alice" && req["password"] == "sekret" {
			_ = json.NewEncoder(w).Encode(map[string]string{
				"username": "alice", "name": "Alice", "token": "jwt-token",
			})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Invalid username or password"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())

	session, err := client.Login(context.Background(), "alice", "sekret")
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, "jwt-token", session.Token)

	_, err = client.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.Equal(t, models.CodeAuthError, models.CodeOf(err))
	assert.EqualError(t, err, "Wrong credentials.")
}

func TestLoginUnreachableService(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", http.DefaultClient)

	_, err := client.Login(context.Background(), "alice", "sekret")
	require.Error(t, err)
	assert.Equal(t, models.CodeAuthError, models.CodeOf(err))
}

func TestGetAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/blogs", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "listing needs no credential")
		_ = json.NewEncoder(w).Encode([]models.Blog{
			{ID: "1", Title: "first", Likes: 3},
			{ID: "2", Title: "second", Likes: 5},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	client.SetToken("jwt-token")

	blogs, err := client.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "first", blogs[0].Title)
}

func TestGetAllFailureIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())

	_, err := client.GetAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, models.CodeFetchError, models.CodeOf(err))
}

func TestCreateSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))

		var in CreateBlogInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Blog{ID: "new", Title: in.Title, Author: in.Author, URL: in.URL})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	client.SetToken("jwt-token")

	blog, err := client.Create(context.Background(), CreateBlogInput{Title: "A new blog", Author: "Matti Luukkainen", URL: "https://fullstackopen.com"})
	require.NoError(t, err)
	assert.Equal(t, "new", blog.ID)
	assert.Equal(t, 0, blog.Likes)
}

func TestCreateRejectionIsCreateError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Title is required"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())

	_, err := client.Create(context.Background(), CreateBlogInput{})
	require.Error(t, err)
	assert.Equal(t, models.CodeCreateError, models.CodeOf(err))
	assert.EqualError(t, err, "Title is required")
}

func TestUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/blogs/42", r.URL.Path)

		var in UpdateBlogInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(models.Blog{ID: "42", Title: in.Title, Likes: in.Likes})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())

	blog, err := client.Update(context.Background(), "42", UpdateBlogInput{Title: "t", Likes: 8})
	require.NoError(t, err)
	assert.Equal(t, 8, blog.Likes)
}

func TestUpdateVanishedTargetIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())

	_, err := client.Update(context.Background(), "gone", UpdateBlogInput{Likes: 1})
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.CodeOf(err))
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     *models.ErrorResponse
		wantCode string
	}{
		{name: "no content succeeds", status: http.StatusNoContent},
		{
			name:     "forbidden is delete error",
			status:   http.StatusForbidden,
			body:     &models.ErrorResponse{Error: "You can only delete your own blogs"},
			wantCode: models.CodeDeleteError,
		},
		{
			name:     "vanished target is not found",
			status:   http.StatusNotFound,
			wantCode: models.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				w.WriteHeader(tt.status)
				if tt.body != nil {
					_ = json.NewEncoder(w).Encode(tt.body)
				}
			}))
			defer srv.Close()

			client := NewClient(srv.URL, srv.Client())
			client.SetToken("jwt-token")

			err := client.Delete(context.Background(), "1")
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, models.CodeOf(err))
			}
		})
	}
}

func TestSetTokenEmptyReturnsToAnonymous(t *testing.T) {
	client := NewClient("http://localhost", nil)
	client.SetToken("jwt-token")
	require.Equal(t, "jwt-token", client.Token())

	client.SetToken("")
	assert.Empty(t, client.Token())
}
