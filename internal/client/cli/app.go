package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/config"
	"github.com/dmitrijs2005/userdesk/internal/client/overlay"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
	"github.com/dmitrijs2005/userdesk/internal/client/session"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	users  services.UserService
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
	db     *client.Database

	nav  navigator
	list listView
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.StoreDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "dsn", c.StoreDSN, "error", err)
		return nil, err
	}

	dir, err := client.NewHTTPClient(c.DirectoryURL, c.APIKey, c.RequestTimeout, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	repo := db.Metadata()
	tokens := session.NewStore(repo)
	dir.UseTokens(tokens)

	auth := services.NewAuthService(dir, tokens, logger)
	users := services.NewUserService(dir, overlay.NewStore(repo, logger),
		services.UserServiceOptions{PurgeOverlayOnDelete: c.PurgeOverlayOnDelete}, logger)

	return &App{
		config: c,
		auth:   auth,
		users:  users,
		logger: logger.With("module", "cli"),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		db:     db,
	}, nil
}

// Run blocks in the REPL until the user exits or input ends. A saved
// session opens the user list right away.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	printlnFn("Welcome to userdesk (type 'help' for commands)")
	if a.isLoggedIn(ctx) {
		_ = a.List(ctx, nil)
	} else {
		printlnFn("Not logged in. Type 'login' to start.")
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) close(ctx context.Context) {
	a.nav.leave()
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn(ctx, "closing local store", "error", err)
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.Authenticated(ctx)
}

func (a *App) status() string {
	switch a.nav.view {
	case viewList:
		if !a.list.loaded {
			return "(list)"
		}
		return fmt.Sprintf("(page %d/%d)", a.list.page, a.list.totalPages)
	case viewEdit:
		return fmt.Sprintf("(edit #%d)", a.nav.subject)
	default:
		return ""
	}
}
