package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
)

// editView is the form for one user, seeded from the overlaid record.
type editView struct {
	user models.User
}

// prompt asks for each editable field, showing the current value. An empty
// answer keeps it. The returned patch holds only the fields that changed.
func (v *editView) prompt(a *App) (models.UserPatch, error) {
	var patch models.UserPatch

	fields := []struct {
		label   string
		current string
		set     func(string)
	}{
		{"First name", v.user.FirstName, func(s string) { patch.FirstName = models.Str(s) }},
		{"Last name", v.user.LastName, func(s string) { patch.LastName = models.Str(s) }},
		{"Email", v.user.Email, func(s string) { patch.Email = models.Str(s) }},
	}

	for _, f := range fields {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.label, f.current), a.out)
		if err != nil {
			return models.UserPatch{}, err
		}
		if answer != "" && answer != f.current {
			f.set(answer)
		}
	}
	return patch, nil
}

// Edit opens the edit form for a user. A failed fetch returns to the list;
// a saved edit returns to the list, which is fetched again with the edit
// applied.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		a.notifyError(ctx, "edit ID", err)
		return err
	}

	viewCtx, ok := a.open(ctx, viewEdit, id)
	if !ok {
		return errLoginRequired
	}

	u, err := a.users.Get(viewCtx, id)
	if err != nil {
		a.notifyError(ctx, fmt.Sprintf("Could not load user #%d", id), err)
		_ = a.backToList(ctx)
		return err
	}
	if viewCtx.Err() != nil {
		return viewCtx.Err()
	}

	v := editView{user: *u}
	a.notifyInfo("Editing #%d %s <%s>. Press Enter to keep a value.", u.ID, u.FullName(), u.Email)

	patch, err := v.prompt(a)
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		a.notifyInfo("Nothing changed.")
		return a.backToList(ctx)
	}
	if err := services.ValidatePatch(patch); err != nil {
		a.notifyError(ctx, "Invalid input", err)
		return err
	}

	if err := a.users.Update(viewCtx, id, patch); err != nil {
		a.notifyError(ctx, fmt.Sprintf("Could not update user #%d", id), err)
		return err
	}

	a.notifySuccess("User #%d updated.", id)
	return a.backToList(ctx)
}

// backToList reopens the list on the page last shown.
func (a *App) backToList(ctx context.Context) error {
	page := 1
	if a.list.loaded {
		page = a.list.page
	}
	return a.showPage(ctx, page)
}
