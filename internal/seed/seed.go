// Package seed provides helpers to create demo data for the dev server.
// These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"math/rand"

	"bloglist/internal/models"
	"bloglist/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoUsername and DemoPassword identify the fixed account the seed always
// creates, so a freshly seeded server is immediately usable.
const (
	DemoUsername = "root"
	DemoPassword = "salainen"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	userRepo repository.UserRepository
	blogRepo repository.BlogRepository
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		userRepo: repository.NewUserRepository(db),
		blogRepo: repository.NewBlogRepository(db),
	}
}

// CreateUser persists a user with the given credentials.
func (f *Factory) CreateUser(ctx context.Context, username, name, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{Username: username, Name: name, Password: string(hashed)}
	if err := f.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateBlog persists a blog owned by user with a random like count.
func (f *Factory) CreateBlog(ctx context.Context, user *models.User, likes int) (*models.Blog, error) {
	blog := &models.Blog{
		Title:  gofakeit.Sentence(4),
		Author: gofakeit.Name(),
		URL:    fmt.Sprintf("https://%s/%s", gofakeit.DomainName(), gofakeit.Word()),
		Likes:  likes,
		UserID: user.ID,
	}
	if err := f.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// Seed populates the database with the demo user plus a handful of fake
// users and blogs. Idempotence is not attempted; run against a fresh DB.
func Seed(ctx context.Context, db *gorm.DB, userCount, blogsPerUser int) error {
	f := NewFactory(db)

	demo, err := f.CreateUser(ctx, DemoUsername, "Superuser", DemoPassword)
	if err != nil {
		return err
	}
	users := []*models.User{demo}

	for i := 0; i < userCount; i++ {
		user, err := f.CreateUser(ctx, gofakeit.Username(), gofakeit.Name(), gofakeit.Password(true, true, true, false, false, 12))
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	for _, user := range users {
		for i := 0; i < blogsPerUser; i++ {
			if _, err := f.CreateBlog(ctx, user, rand.Intn(20)); err != nil {
				return err
			}
		}
	}
	return nil
}
