// Package directory is the in-memory user directory behind the stub server.
// Writes are answered but never stored, the same way public demo
// directories behave.
package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/common"
	"github.com/dmitrijs2005/userdesk/internal/server/auth"
)

const avatarURL = "https://reqres.in/img/faces/%d-image.jpg"

// SeedUsers returns the fixed dataset the stub directory serves.
func SeedUsers() []models.User {
	names := []struct{ first, last string }{
		{"George", "Bluth"},
		{"Janet", "Weaver"},
		{"Emma", "Wong"},
		{"Eve", "Holt"},
		{"Charles", "Morris"},
		{"Tracey", "Ramos"},
		{"Michael", "Lawson"},
		{"Lindsay", "Ferguson"},
		{"Tobias", "Funke"},
		{"Byron", "Fields"},
		{"George", "Edwards"},
		{"Rachel", "Howell"},
	}

	users := make([]models.User, 0, len(names))
	for i, n := range names {
		id := i + 1
		users = append(users, models.User{
			ID:        id,
			Email:     strings.ToLower(n.first + "." + n.last + "@reqres.in"),
			FirstName: n.first,
			LastName:  n.last,
			Avatar:    fmt.Sprintf(avatarURL, id),
		})
	}
	return users
}

// UpdatedUser is the answer to an update: the merged record and a timestamp.
type UpdatedUser struct {
	models.User
	UpdatedAt time.Time `json:"updatedAt"`
}

type Directory struct {
	users         []models.User
	perPage       int
	passwordHash  []byte
	secretKey     []byte
	tokenValidity time.Duration
	now           func() time.Time
}

// New builds a directory over users. Every user can log in with password.
func New(users []models.User, perPage int, password string, secretKey string, tokenValidity time.Duration) (*Directory, error) {
	if perPage < 1 {
		return nil, fmt.Errorf("%w: per page must be positive", common.ErrorValidation)
	}

	hash, err := auth.HashPassword([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &Directory{
		users:         users,
		perPage:       perPage,
		passwordHash:  hash,
		secretKey:     []byte(secretKey),
		tokenValidity: tokenValidity,
		now:           time.Now,
	}, nil
}

// Page returns 1-based page n. Pages past the end are empty but still
// report the totals.
func (d *Directory) Page(_ context.Context, n int) models.UserPage {
	if n < 1 {
		n = 1
	}
	total := len(d.users)
	totalPages := (total + d.perPage - 1) / d.perPage

	from := total
	if n <= totalPages {
		from = (n - 1) * d.perPage
	}
	to := min(from+d.perPage, total)

	return models.UserPage{
		Page:       n,
		PerPage:    d.perPage,
		Total:      total,
		TotalPages: totalPages,
		Data:       append([]models.User{}, d.users[from:to]...),
	}
}

func (d *Directory) Get(_ context.Context, id int) (models.User, error) {
	for _, u := range d.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, common.ErrorNotFound
}

// Update answers as if patch had been applied. Nothing is stored.
func (d *Directory) Update(ctx context.Context, id int, patch models.UserPatch) (UpdatedUser, error) {
	u, err := d.Get(ctx, id)
	if err != nil {
		return UpdatedUser{}, err
	}
	return UpdatedUser{User: patch.ApplyTo(u), UpdatedAt: d.now().UTC()}, nil
}

// Delete accepts any id. Nothing is removed.
func (d *Directory) Delete(_ context.Context, _ int) error {
	return nil
}

// Login checks the credentials and issues a signed token.
func (d *Directory) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("%w: missing email or username", common.ErrorValidation)
	}
	if password == "" {
		return "", fmt.Errorf("%w: missing password", common.ErrorValidation)
	}

	known := false
	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			known = true
			break
		}
	}
	if !known {
		return "", fmt.Errorf("%w: user not found", common.ErrorUnauthorized)
	}
	if !auth.CheckPassword(d.passwordHash, []byte(password)) {
		return "", fmt.Errorf("%w: invalid credentials", common.ErrorUnauthorized)
	}

	return auth.GenerateToken(strings.ToLower(email), d.secretKey, d.tokenValidity)
}

// Authenticate verifies a token issued by Login and returns the email it
// was issued to.
func (d *Directory) Authenticate(_ context.Context, token string) (string, error) {
	return auth.GetEmailFromToken(token, d.secretKey)
}
