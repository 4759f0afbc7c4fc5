package session

import (
	"encoding/gob"
	"fmt"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

const (
	sessionName = "bellavista_session"
	userKey     = "user"
	cartKey     = "cart_id"
)

// Manager manages visitor sessions: the optional logged-in user and the
// cart id that keys the visitor's server-side cart.
type Manager struct {
	store sessions.Store
}

// NewManager creates a new session manager
func NewManager(secret string) *Manager {
	gob.Register(&UserData{})

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // carts should survive a casual month away
		HttpOnly: true,
		Secure:   false, // behind TLS termination in production
		SameSite: 2,     // Lax mode
	}

	return &Manager{store: store}
}

// SetUser stores the logged-in user in the session.
func (m *Manager) SetUser(c echo.Context, user *UserData) error {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	session.Values[userKey] = user

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetUser retrieves the logged-in user, or nil when anonymous.
func (m *Manager) GetUser(c echo.Context) *UserData {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return nil
	}

	user, ok := session.Values[userKey].(*UserData)
	if !ok {
		return nil
	}
	return user
}

// ClearUser logs the visitor out without touching the cart id.
func (m *Manager) ClearUser(c echo.Context) error {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	delete(session.Values, userKey)

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// CartID returns the session's cart id, minting one on first use.
func (m *Manager) CartID(c echo.Context) (string, error) {
	session, err := m.store.Get(c.Request(), sessionName)
	if err != nil {
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	if id, ok := session.Values[cartKey].(string); ok && id != "" {
		return id, nil
	}

	id := ulid.Make().String()
	session.Values[cartKey] = id

	if err := session.Save(c.Request(), c.Response()); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return id, nil
}
