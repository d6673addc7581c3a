// Package server runs the stub user directory: an in-memory dataset served
// over HTTP with login, paging, update and delete endpoints. It exists for
// local development of the console and for end-to-end tests.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/dmitrijs2005/userdesk/internal/server/config"
	"github.com/dmitrijs2005/userdesk/internal/server/directory"
	"github.com/dmitrijs2005/userdesk/internal/server/httpapi"
)

type App struct {
	config *config.Config
	logger logging.Logger
	dir    *directory.Directory
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stdout, c.LogLevel)

	dir, err := directory.New(directory.SeedUsers(), c.PerPage, c.Password, c.SecretKey, c.TokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("directory init error: %w", err)
	}

	return &App{config: c, logger: logger, dir: dir}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.New(app.config.EndpointAddr, app.dir, app.config.APIKey, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is done or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
