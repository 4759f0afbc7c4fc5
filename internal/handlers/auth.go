package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bellavista/storefront/internal/auth"
	"github.com/bellavista/storefront/internal/session"
	"github.com/bellavista/storefront/storage"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	storage  *storage.Storage
	auth     *auth.Service
	sessions *session.Manager
}

func NewAuthHandler(storage *storage.Storage, authService *auth.Service, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{storage: storage, auth: authService, sessions: sessions}
}

// UserView is the account shape returned to clients. The password hash
// never leaves the handler layer.
type UserView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates an account and logs the visitor in.
func (h *AuthHandler) HandleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	user, err := h.auth.Register(c.Request().Context(), auth.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			return echo.NewHTTPError(http.StatusConflict, auth.ErrEmailTaken.Error())
		case errors.Is(err, auth.ErrPasswordTooShort):
			return echo.NewHTTPError(http.StatusBadRequest, auth.ErrPasswordTooShort.Error())
		default:
			slog.Error("failed to register user", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Error creando la cuenta")
		}
	}

	if err := h.sessions.SetUser(c, &session.UserData{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}); err != nil {
		slog.Error("failed to start session", "error", err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"user": UserView{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin authenticates an email/password pair.
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	user, err := h.auth.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		}
		slog.Error("failed to authenticate user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error iniciando sesión")
	}

	if err := h.sessions.SetUser(c, &session.UserData{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}); err != nil {
		slog.Error("failed to start session", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error iniciando sesión")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user": UserView{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	})
}

// HandleLogout ends the login session. The cart id stays so the cart
// survives logout.
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	if err := h.sessions.ClearUser(c); err != nil {
		slog.Error("failed to clear session", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error cerrando sesión")
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// HandleForgotPassword issues a reset token. The response is identical
// whether or not the email exists.
func (h *AuthHandler) HandleForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	token, err := h.auth.CreatePasswordReset(c.Request().Context(), req.Email)
	if err != nil {
		slog.Error("failed to create password reset", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error procesando la solicitud")
	}
	if token != "" {
		// Delivery happens out of band; the token only shows up in debug logs.
		slog.Debug("password reset token issued", "email", req.Email)
	}

	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

func (h *AuthHandler) requireUser(c echo.Context) (*session.UserData, error) {
	user := h.sessions.GetUser(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Inicia sesión para continuar")
	}
	return user, nil
}

// HandleGetProfile returns the logged-in user's account record.
func (h *AuthHandler) HandleGetProfile(c echo.Context) error {
	sessionUser, err := h.requireUser(c)
	if err != nil {
		return err
	}

	user, err := h.storage.Queries.GetUserByID(c.Request().Context(), sessionUser.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Inicia sesión para continuar")
		}
		slog.Error("failed to load profile", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error obteniendo el perfil")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"user": UserView{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			Role:    user.Role,
			Phone:   fromNull(user.Phone),
			Address: fromNull(user.Address),
			City:    fromNull(user.City),
			Country: fromNull(user.Country),
		},
	})
}

type profileRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// HandleUpdateProfile updates contact details, keeping existing name and
// email when the request leaves them blank.
func (h *AuthHandler) HandleUpdateProfile(c echo.Context) error {
	sessionUser, err := h.requireUser(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	err = h.auth.UpdateProfile(c.Request().Context(), sessionUser.ID, auth.ProfileParams{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	})
	if err != nil {
		slog.Error("failed to update profile", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error actualizando el perfil")
	}

	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// HandleChangePassword verifies the current password before replacing it.
func (h *AuthHandler) HandleChangePassword(c echo.Context) error {
	sessionUser, err := h.requireUser(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	err = h.auth.ChangePassword(c.Request().Context(), sessionUser.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrWrongPassword):
			return echo.NewHTTPError(http.StatusBadRequest, auth.ErrWrongPassword.Error())
		case errors.Is(err, auth.ErrPasswordTooShort):
			return echo.NewHTTPError(http.StatusBadRequest, auth.ErrPasswordTooShort.Error())
		default:
			slog.Error("failed to change password", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Error cambiando la contraseña")
		}
	}

	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// HandleGetSettings returns the stored preference blob, or an empty object
// when the user never saved one.
func (h *AuthHandler) HandleGetSettings(c echo.Context) error {
	sessionUser, err := h.requireUser(c)
	if err != nil {
		return err
	}

	row, err := h.storage.Queries.GetUserSettings(c.Request().Context(), sessionUser.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusOK, map[string]any{"settings": map[string]any{}})
		}
		slog.Error("failed to load settings", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error obteniendo la configuración")
	}

	settings := map[string]any{}
	if err := json.Unmarshal([]byte(row.Preferences), &settings); err != nil {
		slog.Warn("stored settings are not valid json", "user_id", sessionUser.ID)
		settings = map[string]any{}
	}

	return c.JSON(http.StatusOK, map[string]any{"settings": settings})
}

type settingsRequest struct {
	Settings map[string]any `json:"settings"`
}

// HandleSaveSettings replaces the user's preference blob.
func (h *AuthHandler) HandleSaveSettings(c echo.Context) error {
	sessionUser, err := h.requireUser(c)
	if err != nil {
		return err
	}

	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if req.Settings == nil {
		req.Settings = map[string]any{}
	}

	if err := h.auth.SaveSettings(c.Request().Context(), sessionUser.ID, req.Settings); err != nil {
		slog.Error("failed to save settings", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error guardando la configuración")
	}

	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
