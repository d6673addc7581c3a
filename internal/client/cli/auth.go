package cli

import (
	"context"

	"github.com/dmitrijs2005/userdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for email and password, exchanges them for a session token
// and opens the first page of users. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, password); err != nil {
		a.notifyError(ctx, "Login failed", err)
		return err
	}

	a.notifySuccess("Logged in as %s.", email)
	a.list.reset()
	return a.showPage(ctx, 1)
}

// Logout forgets the session token and closes the open view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.notifyError(ctx, "Logout failed", err)
		return err
	}
	a.nav.leave()
	a.list.reset()
	a.notifySuccess("Logged out.")
	return nil
}
