// Package server contains the HTTP handlers for the dev blog API the
// client runs against.
package server

import (
	"time"

	"bloglist/internal/config"
	"bloglist/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Server holds handler dependencies.
type Server struct {
	config   *config.Config
	userRepo repository.UserRepository
	blogRepo repository.BlogRepository
}

// NewServer creates a Server with repositories backed by db.
func NewServer(cfg *config.Config, db *gorm.DB) *Server {
	return &Server{
		config:   cfg,
		userRepo: repository.NewUserRepository(db),
		blogRepo: repository.NewBlogRepository(db),
	}
}

// SetupMiddleware attaches application middleware to the fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	prometheus := fiberprometheus.New("bloglist")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)
}

// SetupRoutes registers all API routes.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/login", s.Login)
	api.Post("/users", s.CreateUser)

	api.Get("/blogs", s.ListBlogs)
	api.Post("/blogs", s.AuthRequired, s.CreateBlog)
	api.Put("/blogs/:id", s.UpdateBlog)
	api.Delete("/blogs/:id", s.AuthRequired, s.DeleteBlog)
}

// generateToken creates a signed JWT for the given user.
func (s *Server) generateToken(userID, username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
