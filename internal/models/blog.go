// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog represents a single blog entry. The same struct is used on the
// client (decoded from the API) and on the dev server (persisted via gorm).
type Blog struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Author    string         `json:"author"`
	URL       string         `json:"url"`
	Likes     int            `gorm:"not null;default:0" json:"likes"`
	UserID    string         `gorm:"index" json:"-"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns a UUID identifier when none was provided.
func (b *Blog) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
