// Package services contains the application services of the hackline client:
// session lifecycle, story fetching/creation, and favorites synchronization.
// Services operate on the plain model types and reach the remote service
// only through the narrow client.Client contract.
package services

import (
	"context"
	"fmt"

	"hackline/internal/client"
	"hackline/internal/common"
	"hackline/internal/logging"
	"hackline/internal/models"
)

// SessionService creates or restores the current authenticated user.
//
// Contract:
//   - Signup: register a new account, return a fully-populated User with a
//     freshly issued token.
//   - Login: authenticate with username/password.
//   - Restore: re-establish a session from previously stored credentials.
//     A stale or rejected token is an expected condition, not an error:
//     Restore returns (nil, nil) so callers can fall back to a fresh login
//     without matching error types.
//
// Every returned User has its OwnStories and Favorites built from the
// session payload; one malformed story record fails the whole operation.
type SessionService interface {
	Signup(ctx context.Context, username, password, name string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Restore(ctx context.Context, token, username string) (*models.User, error)
}

type sessionService struct {
	client client.Client
	log    logging.Logger
}

// NewSessionService constructs a SessionService bound to the given API client.
func NewSessionService(c client.Client, log logging.Logger) SessionService {
	return &sessionService{client: c, log: log.With("component", "session")}
}

func (s *sessionService) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("signup: username and password are required: %w", common.ErrValidation)
	}

	record, token, err := s.client.Signup(ctx, username, password, name)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	user, err := models.NewUser(record, token)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return user, nil
}

func (s *sessionService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("login: username and password are required: %w", common.ErrValidation)
	}

	record, token, err := s.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	user, err := models.NewUser(record, token)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return user, nil
}

// Restore swallows failures on purpose: an expired stored credential is a
// recoverable condition for the caller, not an exceptional one. Failures
// are logged at debug level for diagnostics.
func (s *sessionService) Restore(ctx context.Context, token, username string) (*models.User, error) {
	if token == "" || username == "" {
		return nil, nil
	}

	record, err := s.client.UserProfile(ctx, token, username)
	if err != nil {
		s.log.Debug(ctx, "session restore failed", "username", username, "err", err)
		return nil, nil
	}

	user, err := models.NewUser(record, token)
	if err != nil {
		s.log.Debug(ctx, "session restore: bad user payload", "username", username, "err", err)
		return nil, nil
	}
	return user, nil
}
