package repository

import (
	"context"
	"errors"

	"bloglist/internal/models"

	"gorm.io/gorm"
)

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	List(ctx context.Context) ([]models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id string) error
}

// blogRepository implements BlogRepository
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return err
	}
	// Reload with the owner preloaded so the response carries user identity.
	return r.db.WithContext(ctx).Preload("User").First(blog, "id = ?", blog.ID).Error
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).Preload("User").First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) List(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.WithContext(ctx).Preload("User").Order("created_at ASC").Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	// Updates with a map: struct-based Updates skips zero values, which
	// would make likes=0 unwritable.
	return r.db.WithContext(ctx).Model(blog).
		Select("title", "author", "url", "likes").
		Updates(map[string]interface{}{
			"title":  blog.Title,
			"author": blog.Author,
			"url":    blog.URL,
			"likes":  blog.Likes,
		}).Error
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Blog{}, "id = ?", id).Error
}
