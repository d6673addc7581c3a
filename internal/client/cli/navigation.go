package cli

import (
	"context"
)

const (
	viewList = "list"
	viewEdit = "edit"
)

// navigator tracks the open view. Entering a view cancels the context of
// the previous one, so a late result can never land in a view the user has
// already left.
type navigator struct {
	view    string
	subject int
	cancel  context.CancelFunc
}

func (n *navigator) enter(parent context.Context, view string, subject int) context.Context {
	n.leave()
	ctx, cancel := context.WithCancel(parent)
	n.view, n.subject, n.cancel = view, subject, cancel
	return ctx
}

func (n *navigator) leave() {
	if n.cancel != nil {
		n.cancel()
	}
	n.view, n.subject, n.cancel = "", 0, nil
}

// open is the session gate: every protected navigation re-checks that a
// token is saved before the view is entered.
func (a *App) open(ctx context.Context, view string, subject int) (context.Context, bool) {
	if !a.isLoggedIn(ctx) {
		a.nav.leave()
		a.notifyError(ctx, "Login required", errLoginRequired)
		return nil, false
	}
	return a.nav.enter(ctx, view, subject), true
}
