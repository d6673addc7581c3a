// Package services contains the console's application services. They sit
// between the REPL views and the remote directory, the overlay and the
// session token.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/common"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

// TokenStore persists the session token.
type TokenStore interface {
	Token(ctx context.Context) (string, bool)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// AuthService gates the console.
//
// Contract:
//   - Login: exchange credentials with the directory and persist the token.
//   - Logout: forget the token; it is not revoked remotely.
//   - Authenticated: report whether a token is present.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
	Authenticated(ctx context.Context) bool
}

type authService struct {
	dir    client.Directory
	tokens TokenStore
	logger logging.Logger
}

func NewAuthService(dir client.Directory, tokens TokenStore, logger logging.Logger) AuthService {
	return &authService{dir: dir, tokens: tokens, logger: logger.With("module", "auth_service")}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return fmt.Errorf("login: %w: email and password are required", common.ErrorValidation)
	}

	token, err := a.dir.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	if err := a.tokens.Save(ctx, token); err != nil {
		return err
	}

	a.logger.Info(ctx, "logged in", "email", email)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.tokens.Clear(ctx); err != nil {
		return err
	}
	a.logger.Info(ctx, "logged out")
	return nil
}

func (a *authService) Authenticated(ctx context.Context) bool {
	_, ok := a.tokens.Token(ctx)
	return ok
}
