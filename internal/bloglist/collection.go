// Package bloglist owns the client-visible collection of blogs. Every
// mutation round-trips through the remote store and then refetches the
// whole collection, so the displayed order and like counts never drift
// from server authority; the cost is one extra round trip per mutation.
package bloglist

import (
	"context"
	"sort"
	"sync"

	"bloglist/internal/api"
	"bloglist/internal/authz"
	"bloglist/internal/models"
	"bloglist/internal/observability"
)

// BlogAPI is the slice of the API client the collection manager depends on.
type BlogAPI interface {
	GetAll(ctx context.Context) ([]models.Blog, error)
	Create(ctx context.Context, in api.CreateBlogInput) (*models.Blog, error)
	Update(ctx context.Context, id string, in api.UpdateBlogInput) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
}

// Collection is the ordered client-side view of all blogs, sorted
// descending by likes. Each operation either fully succeeds and the
// collection reflects the new remote state, or fails and the prior
// collection is retained unchanged.
type Collection struct {
	api    BlogAPI
	logger *observability.ClientLogger

	mu    sync.Mutex
	blogs []models.Blog
}

// NewCollection creates an empty Collection backed by a.
func NewCollection(a BlogAPI) *Collection {
	return &Collection{
		api:    a,
		logger: observability.NewClientLogger("bloglist"),
	}
}

// LoadAll fetches all blogs, sorts them descending by likes and replaces
// the held collection. On failure the prior collection is retained.
func (c *Collection) LoadAll(ctx context.Context) ([]models.Blog, error) {
	blogs, err := c.reload(ctx)
	if err != nil {
		c.logger.LogError("load", err)
		return nil, err
	}
	c.logger.LogOperation("load", map[string]interface{}{"count": len(blogs)})
	return blogs, nil
}

// Blogs returns a copy of the current collection.
func (c *Collection) Blogs() []models.Blog {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Blog, len(c.blogs))
	copy(out, c.blogs)
	return out
}

// Create posts a new blog and then reloads the whole collection rather than
// inserting locally. Returns the created blog as the server recorded it.
func (c *Collection) Create(ctx context.Context, title, author, url string) (*models.Blog, error) {
	if title == "" {
		return nil, models.NewCreateError("Title is required")
	}

	blog, err := c.api.Create(ctx, api.CreateBlogInput{Title: title, Author: author, URL: url})
	if err != nil {
		c.logger.LogError("create", err)
		return nil, err
	}

	if _, err := c.reload(ctx); err != nil {
		c.logger.LogError("create", err)
		return nil, err
	}
	c.logger.LogOperation("create", map[string]interface{}{"id": blog.ID, "title": blog.Title})
	return blog, nil
}

// Like increments the target blog's like count by exactly 1 from the
// server-observed value, not the possibly stale local one, then reloads.
// A target missing server-side yields a NOT_FOUND error.
func (c *Collection) Like(ctx context.Context, id string) (*models.Blog, error) {
	blogs, err := c.api.GetAll(ctx)
	if err != nil {
		c.logger.LogError("like", err)
		return nil, err
	}

	var target *models.Blog
	for i := range blogs {
		if blogs[i].ID == id {
			target = &blogs[i]
			break
		}
	}
	if target == nil {
		err := models.NewNotFoundError("blog", id)
		c.logger.LogError("like", err)
		return nil, err
	}

	updated, err := c.api.Update(ctx, id, api.UpdateBlogInput{
		Title:  target.Title,
		Author: target.Author,
		URL:    target.URL,
		Likes:  target.Likes + 1,
	})
	if err != nil {
		c.logger.LogError("like", err)
		return nil, err
	}

	if _, err := c.reload(ctx); err != nil {
		c.logger.LogError("like", err)
		return nil, err
	}
	c.logger.LogOperation("like", map[string]interface{}{"id": updated.ID, "likes": updated.Likes})
	return updated, nil
}

// Delete removes the blog after checking ownership locally; the check only
// gates the attempt, the server independently enforces ownership. On
// success the collection is reloaded.
func (c *Collection) Delete(ctx context.Context, id string, session *models.Session) error {
	c.mu.Lock()
	var target *models.Blog
	for i := range c.blogs {
		if c.blogs[i].ID == id {
			target = &c.blogs[i]
			break
		}
	}
	if target != nil && !authz.CanDelete(*target, session) {
		c.mu.Unlock()
		err := models.NewDeleteError("You can only delete your own blogs")
		c.logger.LogError("delete", err)
		return err
	}
	c.mu.Unlock()

	if err := c.api.Delete(ctx, id); err != nil {
		c.logger.LogError("delete", err)
		return err
	}

	if _, err := c.reload(ctx); err != nil {
		c.logger.LogError("delete", err)
		return err
	}
	c.logger.LogOperation("delete", map[string]interface{}{"id": id})
	return nil
}

// reload fetches, sorts and swaps in the new collection. The sort is
// stable: ties on likes keep the order the fetch returned them in.
func (c *Collection) reload(ctx context.Context) ([]models.Blog, error) {
	blogs, err := c.api.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sortByLikes(blogs)

	c.mu.Lock()
	c.blogs = blogs
	c.mu.Unlock()
	return blogs, nil
}

func sortByLikes(blogs []models.Blog) {
	sort.SliceStable(blogs, func(i, j int) bool {
		return blogs[i].Likes > blogs[j].Likes
	})
}
