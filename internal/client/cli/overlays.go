package cli

import (
	"context"
	"fmt"
)

// Overlays lists the locally saved edits, or forgets them all with
// "overlays clear".
func (a *App) Overlays(ctx context.Context, args []string) error {
	if !a.isLoggedIn(ctx) {
		a.notifyError(ctx, "Login required", errLoginRequired)
		return errLoginRequired
	}

	if len(args) > 0 {
		if args[0] != "clear" {
			err := fmt.Errorf("%w: overlays [clear]", errUsage)
			a.notifyError(ctx, "overlays", err)
			return err
		}
		if !GetConfirmation(a.reader, "Forget all local edits?", a.out) {
			a.notifyInfo("Nothing cleared.")
			return nil
		}
		if err := a.users.ClearOverlays(ctx); err != nil {
			a.notifyError(ctx, "Could not clear local edits", err)
			return err
		}
		a.notifySuccess("Local edits cleared.")
		return nil
	}

	entries, err := a.users.Overlays(ctx)
	if err != nil {
		a.notifyError(ctx, "Could not read local edits", err)
		return err
	}
	renderOverlays(a.out, entries)
	return nil
}
