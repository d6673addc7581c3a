package client

import (
	"context"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// Directory is the remote user directory. Writes are accepted but the
// directory is not required to persist them.
type Directory interface {
	ListUsers(ctx context.Context, page int) (*models.UserPage, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	UpdateUser(ctx context.Context, id int, patch models.UserPatch) error
	DeleteUser(ctx context.Context, id int) error
	Login(ctx context.Context, email, password string) (string, error)
}
