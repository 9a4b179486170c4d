package models

// Session is the authenticated identity held by the client: the username it
// logged in as plus the bearer credential for mutating calls. It is exactly
// the record persisted to session storage across restarts.
type Session struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Token    string `json:"token"`
}
