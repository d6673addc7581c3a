package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/fatih/color"
)

var (
	errLoginRequired = errors.New("no saved session, type 'login'")
	errUsage         = errors.New("usage")
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
)

func (a *App) notifySuccess(format string, args ...any) {
	fmt.Fprintln(a.out, successColor.Sprintf("✔ "+format, args...))
}

func (a *App) notifyInfo(format string, args ...any) {
	fmt.Fprintln(a.out, infoColor.Sprintf(format, args...))
}

// notifyError logs err and shows title plus a short user-facing reason.
func (a *App) notifyError(ctx context.Context, title string, err error) {
	if a.logger != nil && !errors.Is(err, errUsage) && !errors.Is(err, errLoginRequired) {
		a.logger.Error(ctx, title, "error", err)
	}
	fmt.Fprintln(a.out, errorColor.Sprintf("✘ %s: %s", title, reason(err)))
}

// reason turns an error into the text shown to the operator.
func reason(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timed out"
	case errors.Is(err, client.ErrNetwork):
		return "directory unreachable, check the address and your connection"
	case errors.Is(err, client.ErrNotFound):
		return "user not found"
	case errors.Is(err, client.ErrUnauthorized):
		return "rejected by the directory, log in again"
	default:
		return err.Error()
	}
}
