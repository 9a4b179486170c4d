// Package authz decides which affordances the current user may see.
package authz

import "bloglist/internal/models"

// CanDelete reports whether session may delete blog: the session must be
// present and name the blog's owner. Pure identity comparison; the server
// remains the true authority and may still reject.
func CanDelete(blog models.Blog, session *models.Session) bool {
	if session == nil {
		return false
	}
	return blog.User.Username == session.Username
}
