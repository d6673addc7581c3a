// Package session persists the console's login token. A token being present
// is what the console treats as "logged in"; its content is opaque.
package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/userdesk/internal/common"
)

type Store struct {
	repo metadata.Repository
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// Token returns the saved token. Store errors count as "no token".
func (s *Store) Token(ctx context.Context) (string, bool) {
	v, err := s.repo.Get(ctx, common.MetadataKeyToken)
	if err != nil || len(v) == 0 {
		return "", false
	}
	return string(v), true
}

func (s *Store) Save(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("save token: %w", common.ErrorValidation)
	}
	if err := s.repo.Set(ctx, common.MetadataKeyToken, []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.MetadataKeyToken); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
