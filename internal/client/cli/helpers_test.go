package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/overlay"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
	"github.com/dmitrijs2005/userdesk/internal/client/session"
	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

// fakeDirectory serves two fixed pages and, like the real directory, never
// remembers writes.
type fakeDirectory struct {
	users   []models.User
	perPage int
	// totalPages, when set, replaces the computed page count.
	totalPages int

	loginToken string
	loginErr   error
	getErr     error
	updateErr  error
	deleteErr  error

	updates []models.UserPatch
	deletes []int
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		perPage:    3,
		loginToken: "QpwL5tke4Pnpja7X4",
		users: []models.User{
			{ID: 1, Email: "george.bluth@reqres.in", FirstName: "George", LastName: "Bluth", Avatar: "1.jpg"},
			{ID: 2, Email: "janet.weaver@reqres.in", FirstName: "Jane", LastName: "Weaver", Avatar: "2.jpg"},
			{ID: 3, Email: "emma.wong@reqres.in", FirstName: "Emma", LastName: "Wong", Avatar: "3.jpg"},
			{ID: 7, Email: "michael.lawson@reqres.in", FirstName: "Michael", LastName: "Lawson", Avatar: "7.jpg"},
			{ID: 8, Email: "lindsay.ferguson@reqres.in", FirstName: "Lindsay", LastName: "Ferguson", Avatar: "8.jpg"},
			{ID: 9, Email: "tobias.funke@reqres.in", FirstName: "Tobias", LastName: "Funke", Avatar: "9.jpg"},
		},
	}
}

func (f *fakeDirectory) ListUsers(_ context.Context, page int) (*models.UserPage, error) {
	total := len(f.users)
	pages := (total + f.perPage - 1) / f.perPage
	if f.totalPages != 0 {
		pages = f.totalPages
	}
	from := min((page-1)*f.perPage, total)
	to := min(from+f.perPage, total)
	return &models.UserPage{
		Page: page, PerPage: f.perPage, Total: total, TotalPages: pages,
		Data: append([]models.User(nil), f.users[from:to]...),
	}, nil
}

func (f *fakeDirectory) GetUser(_ context.Context, id int) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeDirectory) UpdateUser(_ context.Context, _ int, patch models.UserPatch) error {
	f.updates = append(f.updates, patch)
	return f.updateErr
}

func (f *fakeDirectory) DeleteUser(_ context.Context, id int) error {
	f.deletes = append(f.deletes, id)
	return f.deleteErr
}

func (f *fakeDirectory) Login(_ context.Context, _, _ string) (string, error) {
	return f.loginToken, f.loginErr
}

type testEnv struct {
	app     *App
	dir     *fakeDirectory
	out     *bytes.Buffer
	tokens  *session.Store
	overlay *overlay.Store
}

// newTestEnv builds an App over real services, an in-memory store and a
// fake directory. input feeds every prompt.
func newTestEnv(t *testing.T, loggedIn bool, input ...string) *testEnv {
	t.Helper()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dir := newFakeDirectory()
	tokens := session.NewStore(db.Metadata())
	ov := overlay.NewStore(db.Metadata(), logging.Discard())
	if loggedIn {
		require.NoError(t, tokens.Save(ctx, "saved-token"))
	}

	out := &bytes.Buffer{}
	app := &App{
		auth:   services.NewAuthService(dir, tokens, logging.Discard()),
		users:  services.NewUserService(dir, ov, services.UserServiceOptions{}, logging.Discard()),
		logger: logging.Discard(),
		reader: readerFromLines(input...),
		out:    out,
	}
	return &testEnv{app: app, dir: dir, out: out, tokens: tokens, overlay: ov}
}

func idsOf(users []models.User) []int {
	ids := make([]int, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}
