// Package api implements the REST client for the remote blog store and
// auth service. It owns the bearer credential used on mutating calls and
// maps HTTP failures onto the application's error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"bloglist/internal/models"
)

// Client is a typed consumer of the remote blog store API.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// CreateBlogInput is the payload for creating a blog.
type CreateBlogInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// UpdateBlogInput is the payload for updating a blog. Only likes ever
// change, but the full record is sent, matching the remote contract.
type UpdateBlogInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// NewClient creates a Client for the given base URL. httpClient must carry
// the configured timeout; pass nil to use http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// SetToken installs the bearer credential used on subsequent requests.
// An empty token returns the client to anonymous mode.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the currently installed bearer credential.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login exchanges credentials for a session at POST /api/login.
func (c *Client) Login(ctx context.Context, username, password string) (*models.Session, error) {
	body := map[string]string{"username": username, "password": password}
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/login", body, false)
	if err != nil {
		return nil, models.NewAuthError("Authentication service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, models.NewAuthError("Wrong credentials.")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, models.NewAuthError(errorMessage(resp))
	}

	var session models.Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, models.NewAuthError("Malformed login response")
	}
	return &session, nil
}

// GetAll fetches every blog from GET /api/blogs.
func (c *Client) GetAll(ctx context.Context) ([]models.Blog, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/blogs", nil, false)
	if err != nil {
		return nil, models.NewFetchError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, models.NewFetchError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var blogs []models.Blog
	if err := json.NewDecoder(resp.Body).Decode(&blogs); err != nil {
		return nil, models.NewFetchError(err)
	}
	return blogs, nil
}

// Create posts a new blog to POST /api/blogs. Requires a bearer credential.
func (c *Client) Create(ctx context.Context, in CreateBlogInput) (*models.Blog, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/blogs", in, true)
	if err != nil {
		return nil, models.NewCreateError(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, models.NewCreateError(errorMessage(resp))
	}

	var blog models.Blog
	if err := json.NewDecoder(resp.Body).Decode(&blog); err != nil {
		return nil, models.NewCreateError("Malformed create response")
	}
	return &blog, nil
}

// Update replaces the blog record at PUT /api/blogs/{id}.
func (c *Client) Update(ctx context.Context, id string, in UpdateBlogInput) (*models.Blog, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/api/blogs/"+id, in, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, models.NewNotFoundError("blog", id)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("update blog %s: %s", id, errorMessage(resp))
	}

	var blog models.Blog
	if err := json.NewDecoder(resp.Body).Decode(&blog); err != nil {
		return nil, fmt.Errorf("update blog %s: %w", id, err)
	}
	return &blog, nil
}

// Delete removes the blog at DELETE /api/blogs/{id}. Requires a bearer
// credential; the server independently enforces ownership.
func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/blogs/"+id, nil, true)
	if err != nil {
		return models.NewDeleteError(err.Error())
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusNotFound:
		return models.NewNotFoundError("blog", id)
	default:
		return models.NewDeleteError(errorMessage(resp))
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, authed bool) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return c.http.Do(req)
}

// errorMessage extracts the server's error message from a failed response,
// falling back to the HTTP status text.
func errorMessage(resp *http.Response) string {
	var er models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Error != "" {
		return er.Error
	}
	return http.StatusText(resp.StatusCode)
}
