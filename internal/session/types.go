package session

// UserData is the session payload for a logged-in customer or admin.
type UserData struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// IsAdmin reports whether the session user may reach the dashboard.
func (u *UserData) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
