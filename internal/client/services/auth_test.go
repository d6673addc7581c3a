package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/overlay"
	"github.com/dmitrijs2005/userdesk/internal/client/session"
	"github.com/dmitrijs2005/userdesk/internal/common"
	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *client.Database {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ---- fake directory ----

type fakeDirectory struct {
	pages map[int]*models.UserPage
	users map[int]models.User

	LoginToken string
	LoginErr   error
	UpdateErr  error
	DeleteErr  error
	ListErr    error

	LastLoginEmail    string
	LastLoginPassword string
	LastUpdateID      int
	LastUpdatePatch   models.UserPatch
	UpdateCalls       int
	LastDeleteID      int
}

func (f *fakeDirectory) ListUsers(_ context.Context, page int) (*models.UserPage, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	p, ok := f.pages[page]
	if !ok {
		return &models.UserPage{Page: page, TotalPages: len(f.pages)}, nil
	}
	// fresh copy on every call, the directory never remembers writes
	cp := *p
	cp.Data = append([]models.User(nil), p.Data...)
	return &cp, nil
}

func (f *fakeDirectory) GetUser(_ context.Context, id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	return &u, nil
}

func (f *fakeDirectory) UpdateUser(_ context.Context, id int, patch models.UserPatch) error {
	f.UpdateCalls++
	f.LastUpdateID, f.LastUpdatePatch = id, patch
	return f.UpdateErr
}

func (f *fakeDirectory) DeleteUser(_ context.Context, id int) error {
	f.LastDeleteID = id
	return f.DeleteErr
}

func (f *fakeDirectory) Login(_ context.Context, email, password string) (string, error) {
	f.LastLoginEmail, f.LastLoginPassword = email, password
	return f.LoginToken, f.LoginErr
}

// ---- tests ----

func newAuth(t *testing.T, dir *fakeDirectory) (AuthService, *session.Store) {
	t.Helper()
	tokens := session.NewStore(setupDB(t).Metadata())
	return NewAuthService(dir, tokens, logging.Discard()), tokens
}

func TestAuthService_Login_SavesToken(t *testing.T) {
	dir := &fakeDirectory{LoginToken: "QpwL5tke4Pnpja7X4"}
	auth, tokens := newAuth(t, dir)
	ctx := context.Background()

	require.False(t, auth.Authenticated(ctx))
	require.NoError(t, auth.Login(ctx, " eve.holt@reqres.in ", []byte("cityslicka")))

	assert.Equal(t, "eve.holt@reqres.in", dir.LastLoginEmail)
	assert.Equal(t, "cityslicka", dir.LastLoginPassword)
	assert.True(t, auth.Authenticated(ctx))

	tok, ok := tokens.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "QpwL5tke4Pnpja7X4", tok)
}

func TestAuthService_Login_RejectedKeepsGateClosed(t *testing.T) {
	dir := &fakeDirectory{LoginErr: client.ErrUnauthorized}
	auth, _ := newAuth(t, dir)
	ctx := context.Background()

	err := auth.Login(ctx, "eve.holt@reqres.in", []byte("wrong"))
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, auth.Authenticated(ctx))
}

func TestAuthService_Login_Validation(t *testing.T) {
	dir := &fakeDirectory{LoginToken: "t"}
	auth, _ := newAuth(t, dir)

	require.ErrorIs(t, auth.Login(context.Background(), "", []byte("x")), common.ErrorValidation)
	require.ErrorIs(t, auth.Login(context.Background(), "a@b.c", nil), common.ErrorValidation)
	assert.Empty(t, dir.LastLoginEmail, "directory must not be called")
}

func TestAuthService_Logout(t *testing.T) {
	dir := &fakeDirectory{LoginToken: "tok"}
	auth, _ := newAuth(t, dir)
	ctx := context.Background()

	require.NoError(t, auth.Login(ctx, "a@b.c", []byte("pw")))
	require.NoError(t, auth.Logout(ctx))
	assert.False(t, auth.Authenticated(ctx))
}

func TestAuthService_Login_NetworkErrorPassesThrough(t *testing.T) {
	netErr := errors.Join(client.ErrNetwork, errors.New("connection refused"))
	auth, _ := newAuth(t, &fakeDirectory{LoginErr: netErr})

	err := auth.Login(context.Background(), "a@b.c", []byte("pw"))
	require.ErrorIs(t, err, client.ErrNetwork)
}

var _ Overlay = (*overlay.Store)(nil)
