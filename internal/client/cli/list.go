package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
)

// listView is the state of the user list: the page on screen and the
// pagination bounds reported by the directory.
type listView struct {
	page       int
	totalPages int
	users      []models.User
	loaded     bool
}

// load fetches page through the overlay. The view is left untouched when
// the fetch fails or ctx is done by the time the result arrives.
func (v *listView) load(ctx context.Context, users services.UserService, page int) error {
	p, err := users.List(ctx, page)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	v.page = p.Page
	if v.page < 1 {
		v.page = page
	}
	v.totalPages = max(p.TotalPages, 1)
	v.users = p.Data
	v.loaded = true
	return nil
}

func (v *listView) remove(id int) bool {
	for i, u := range v.users {
		if u.ID == id {
			v.users = append(v.users[:i:i], v.users[i+1:]...)
			return true
		}
	}
	return false
}

func (v *listView) reset() {
	*v = listView{}
}

// showPage navigates to the list view and renders page.
func (a *App) showPage(ctx context.Context, page int) error {
	viewCtx, ok := a.open(ctx, viewList, 0)
	if !ok {
		return errLoginRequired
	}

	if err := a.list.load(viewCtx, a.users, page); err != nil {
		a.notifyError(ctx, fmt.Sprintf("Could not load page %d", page), err)
		return err
	}

	a.render()
	return nil
}

func (a *App) render() {
	renderUsers(a.out, a.list.users)
	renderPager(a.out, a.list.page, a.list.totalPages)
}

// List shows the requested page, or the current one (1 on first use).
func (a *App) List(ctx context.Context, args []string) error {
	page := 1
	if a.list.loaded {
		page = a.list.page
	}
	if len(args) > 0 {
		n, err := parsePage(args)
		if err != nil {
			a.notifyError(ctx, "list [page]", err)
			return err
		}
		page = n
	}
	return a.showPage(ctx, page)
}

func (a *App) Next(ctx context.Context) error {
	if !a.list.loaded {
		return a.showPage(ctx, 1)
	}
	if a.list.page >= a.list.totalPages {
		a.notifyInfo("Already on the last page.")
		return nil
	}
	return a.showPage(ctx, a.list.page+1)
}

func (a *App) Prev(ctx context.Context) error {
	if !a.list.loaded {
		return a.showPage(ctx, 1)
	}
	if a.list.page <= 1 {
		a.notifyInfo("Already on the first page.")
		return nil
	}
	return a.showPage(ctx, a.list.page-1)
}

// Page jumps to page N within the bounds of the last listing.
func (a *App) Page(ctx context.Context, args []string) error {
	n, err := parsePage(args)
	if err != nil {
		a.notifyError(ctx, "page N", err)
		return err
	}
	if a.list.loaded && n > a.list.totalPages {
		err := fmt.Errorf("%w: page %d is out of range 1..%d", errUsage, n, a.list.totalPages)
		a.notifyError(ctx, "page N", err)
		return err
	}
	return a.showPage(ctx, n)
}

// Delete asks for confirmation, deletes the user in the directory and drops
// it from the page on screen.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		a.notifyError(ctx, "delete ID", err)
		return err
	}

	viewCtx, ok := a.open(ctx, viewList, 0)
	if !ok {
		return errLoginRequired
	}

	if !GetConfirmation(a.reader, fmt.Sprintf("Delete user #%d?", id), a.out) {
		a.notifyInfo("Delete cancelled.")
		return nil
	}

	if err := a.users.Delete(viewCtx, id); err != nil {
		a.notifyError(ctx, fmt.Sprintf("Could not delete user #%d", id), err)
		return err
	}
	if viewCtx.Err() != nil {
		return viewCtx.Err()
	}

	a.list.remove(id)
	a.notifySuccess("User #%d deleted.", id)
	if a.list.loaded {
		a.render()
	}
	return nil
}
