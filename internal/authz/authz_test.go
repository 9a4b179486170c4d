package authz

import (
	"testing"

	"bloglist/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanDelete(t *testing.T) {
	blog := models.Blog{
		ID:    "b1",
		Title: "A new blog",
		User:  models.User{Username: "alice"},
	}

	tests := []struct {
		name    string
		session *models.Session
		want    bool
	}{
		{
			name:    "owner may delete",
			session: &models.Session{Username: "alice", Token: "t"},
			want:    true,
		},
		{
			name:    "other user may not delete",
			session: &models.Session{Username: "root", Token: "t"},
			want:    false,
		},
		{
			name:    "anonymous may not delete",
			session: nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDelete(blog, tt.session))
		})
	}
}
