// Package services contains the application services of the Paygate client:
// the auth controller, the payment orchestrator, and the history reconciler.
// Services return values and errors; rendering stays in the cli package.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/STORMGAMER0/Paygate/internal/client/api"
	"github.com/STORMGAMER0/Paygate/internal/client/models"
	"github.com/STORMGAMER0/Paygate/internal/client/session"
	"github.com/STORMGAMER0/Paygate/internal/common"
	"github.com/STORMGAMER0/Paygate/internal/logging"
)

// AuthService drives the login/register/logout flows and owns the session
// transition they cause.
//
// Contract:
//   - Login: authenticate, then commit token+user to the session store in one
//     step. A failed login leaves the session exactly as it was.
//   - Register: create the account; registration never authenticates.
//   - Logout: purely local, clears the session store; no network call is
//     involved so it cannot fail on connectivity.
//   - Invalidate: drop the session after a request reported it unauthorized.
//   - Profile: fetch the authenticated user's record.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Register(ctx context.Context, email string, password []byte, fullName string) error
	Logout(ctx context.Context) error
	Invalidate(ctx context.Context) error
	Profile(ctx context.Context) (*models.User, error)
}

type authService struct {
	client   api.Client
	sessions *session.Store
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the API client and the
// session store.
func NewAuthService(client api.Client, sessions *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, sessions: sessions, log: log.With("component", "auth")}
}

// Login authenticates against the server and, only on success, commits the
// returned token and user to the session store. The commit is atomic: a
// failure on either side leaves the previous session in place.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	token, user, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, err
	}

	if err := a.sessions.Set(ctx, token, user); err != nil {
		return nil, fmt.Errorf("commit session: %w", err)
	}

	a.log.Info(ctx, "logged in", "email", user.Email, "role", user.Role)
	return user, nil
}

// Register creates a new account. The session is untouched either way: the
// server contract grants no token on registration.
func (a *authService) Register(ctx context.Context, email string, password []byte, fullName string) error {
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)
	if email == "" || len(password) == 0 || fullName == "" {
		return fmt.Errorf("%w: email, password and full name are required", common.ErrValidation)
	}

	if err := a.client.Register(ctx, email, string(password), fullName); err != nil {
		return err
	}
	a.log.Info(ctx, "registered", "email", email)
	return nil
}

// Logout clears the session unconditionally. It never performs a network
// call, so from the user's point of view it cannot fail.
func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

// Invalidate is Logout under a different intent: a request came back
// 401-equivalent, so the held token is no longer honored and both the cache
// and durable storage must drop it.
func (a *authService) Invalidate(ctx context.Context) error {
	a.log.Warn(ctx, "session no longer honored by server, clearing")
	return a.sessions.Clear(ctx)
}

// Profile fetches the current user's record from the server.
func (a *authService) Profile(ctx context.Context) (*models.User, error) {
	return a.client.Profile(ctx)
}
