package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/common"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

// Overlay layers local edits onto directory records.
type Overlay interface {
	Apply(ctx context.Context, u models.User) models.User
	ApplyAll(ctx context.Context, users []models.User) []models.User
	Write(ctx context.Context, id int, patch models.UserPatch) error
	Remove(ctx context.Context, id int) error
	Entries(ctx context.Context) (map[int]models.UserPatch, error)
	Clear(ctx context.Context) error
}

// UserService is the only path from the views to user records. Every read
// has the overlay applied; every accepted update is recorded in it.
type UserService interface {
	List(ctx context.Context, page int) (*models.UserPage, error)
	Get(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, id int, patch models.UserPatch) error
	Delete(ctx context.Context, id int) error
	Overlays(ctx context.Context) (map[int]models.UserPatch, error)
	ClearOverlays(ctx context.Context) error
}

type UserServiceOptions struct {
	// PurgeOverlayOnDelete drops the local edits of a user once the
	// directory accepted its deletion.
	PurgeOverlayOnDelete bool
}

type userService struct {
	dir     client.Directory
	overlay Overlay
	opts    UserServiceOptions
	logger  logging.Logger
}

func NewUserService(dir client.Directory, overlay Overlay, opts UserServiceOptions, logger logging.Logger) UserService {
	return &userService{dir: dir, overlay: overlay, opts: opts, logger: logger.With("module", "user_service")}
}

func (s *userService) List(ctx context.Context, page int) (*models.UserPage, error) {
	p, err := s.dir.ListUsers(ctx, page)
	if err != nil {
		return nil, err
	}
	p.Data = s.overlay.ApplyAll(ctx, p.Data)
	return p, nil
}

func (s *userService) Get(ctx context.Context, id int) (*models.User, error) {
	u, err := s.dir.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	merged := s.overlay.Apply(ctx, *u)
	return &merged, nil
}

// ValidatePatch checks the editable fields that are set: none may be blank
// and the email must look like an address.
func ValidatePatch(p models.UserPatch) error {
	if p.IsEmpty() {
		return fmt.Errorf("%w: nothing to update", common.ErrorValidation)
	}
	for name, v := range map[string]*string{"first name": p.FirstName, "last name": p.LastName, "email": p.Email} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrorValidation, name)
		}
	}
	if p.Email != nil {
		if e := *p.Email; !strings.Contains(e, "@") || strings.ContainsAny(e, " \t") {
			return fmt.Errorf("%w: %q is not a valid email", common.ErrorValidation, *p.Email)
		}
	}
	return nil
}

// Update sends patch to the directory and, once accepted, records it in the
// overlay so later reads show it even though the directory forgets it.
func (s *userService) Update(ctx context.Context, id int, patch models.UserPatch) error {
	if err := ValidatePatch(patch); err != nil {
		return err
	}

	if err := s.dir.UpdateUser(ctx, id, patch); err != nil {
		return err
	}

	if err := s.overlay.Write(ctx, id, patch); err != nil {
		return fmt.Errorf("user %d updated remotely but not saved locally: %w", id, err)
	}

	s.logger.Info(ctx, "user updated", "user_id", id, "fields", patch.Fields())
	return nil
}

// Delete removes the user in the directory. Its overlay entry is kept unless
// PurgeOverlayOnDelete is set.
func (s *userService) Delete(ctx context.Context, id int) error {
	if err := s.dir.DeleteUser(ctx, id); err != nil {
		return err
	}

	if s.opts.PurgeOverlayOnDelete {
		if err := s.overlay.Remove(ctx, id); err != nil {
			s.logger.Warn(ctx, "overlay purge failed", "user_id", id, "error", err)
		}
	}

	s.logger.Info(ctx, "user deleted", "user_id", id)
	return nil
}

func (s *userService) Overlays(ctx context.Context) (map[int]models.UserPatch, error) {
	return s.overlay.Entries(ctx)
}

func (s *userService) ClearOverlays(ctx context.Context) error {
	return s.overlay.Clear(ctx)
}
