package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bellavista/storefront/storage/db"
	"github.com/oklog/ulid/v2"
)

var (
	ErrEmailTaken         = errors.New("el correo ya está registrado")
	ErrInvalidCredentials = errors.New("correo o contraseña incorrectos")
	ErrWrongPassword      = errors.New("la contraseña actual no es correcta")
)

// Service wraps the user credential and profile operations.
type Service struct {
	queries *db.Queries
}

func NewService(queries *db.Queries) *Service {
	return &Service{queries: queries}
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates a user with a freshly derived password hash.
func (s *Service) Register(ctx context.Context, params RegisterParams) (db.User, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" {
		return db.User{}, errors.New("email is required")
	}

	if _, err := s.queries.GetUserByEmail(ctx, email); err == nil {
		return db.User{}, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return db.User{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := HashPassword(params.Password)
	if err != nil {
		return db.User{}, err
	}

	role := params.Role
	if role == "" {
		role = "customer"
	}

	now := time.Now().UTC()
	user, err := s.queries.CreateUser(ctx, db.CreateUserParams{
		ID:           ulid.Make().String(),
		Name:         strings.TrimSpace(params.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return db.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate checks an email/password pair against the stored hash.
func (s *Service) Authenticate(ctx context.Context, email, password string) (db.User, error) {
	user, err := s.queries.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.User{}, ErrInvalidCredentials
		}
		return db.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return db.User{}, ErrInvalidCredentials
	}
	return user, nil
}

type ProfileParams struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	Country string
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, params ProfileParams) error {
	user, err := s.queries.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		name = user.Name
	}
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" {
		email = user.Email
	}

	err = s.queries.UpdateUserProfile(ctx, db.UpdateUserProfileParams{
		Name:      name,
		Email:     email,
		Phone:     nullString(params.Phone),
		Address:   nullString(params.Address),
		City:      nullString(params.City),
		Country:   nullString(params.Country),
		UpdatedAt: time.Now().UTC(),
		ID:        userID,
	})
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, nextPassword string) error {
	user, err := s.queries.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	if !VerifyPassword(currentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := HashPassword(nextPassword)
	if err != nil {
		return err
	}

	err = s.queries.UpdateUserPassword(ctx, db.UpdateUserPasswordParams{
		PasswordHash: hash,
		UpdatedAt:    time.Now().UTC(),
		ID:           userID,
	})
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// SaveSettings stores the user's preference blob as JSON.
func (s *Service) SaveSettings(ctx context.Context, userID string, settings map[string]any) error {
	preferences, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	err = s.queries.UpsertUserSettings(ctx, db.UpsertUserSettingsParams{
		UserID:      userID,
		Preferences: string(preferences),
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// CreatePasswordReset stores a reset token for the account, if it exists.
// A missing account yields an empty token and no error so the endpoint
// can't be used to probe registered emails.
func (s *Service) CreatePasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.queries.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := NewResetToken()
	if err != nil {
		return "", err
	}

	err = s.queries.UpsertPasswordReset(ctx, db.UpsertPasswordResetParams{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}
	return token, nil
}

// EnsureAdmin creates the bootstrap admin account when it doesn't exist.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) {
	if email == "" || password == "" {
		return
	}

	if _, err := s.queries.GetUserByEmail(ctx, strings.ToLower(email)); err == nil {
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to check admin account", "error", err)
		return
	}

	if _, err := s.Register(ctx, RegisterParams{
		Name:     "Administrador",
		Email:    email,
		Password: password,
		Role:     "admin",
	}); err != nil {
		slog.Error("failed to create admin account", "error", err)
		return
	}
	slog.Info("created bootstrap admin account", "email", email)
}

func nullString(value string) sql.NullString {
	value = strings.TrimSpace(value)
	return sql.NullString{String: value, Valid: value != ""}
}
