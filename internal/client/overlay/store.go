// Package overlay keeps locally persisted field edits and layers them onto
// records fetched from the directory. Every read path of the console goes
// through Store so edits are applied consistently.
package overlay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/userdesk/internal/common"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

// ErrCorrupt marks a stored overlay document that cannot be decoded. Readers
// log it and continue with an empty overlay.
var ErrCorrupt = errors.New("overlay store corrupt")

// document is the persisted form: decimal user id -> patch.
type document map[string]models.UserPatch

type Store struct {
	repo   metadata.Repository
	logger logging.Logger
}

func NewStore(repo metadata.Repository, logger logging.Logger) *Store {
	return &Store{repo: repo, logger: logger.With("module", "overlay")}
}

func decode(raw []byte) (document, error) {
	doc := document{}
	if len(raw) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return document{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if doc == nil {
		doc = document{}
	}
	return doc, nil
}

// load never fails: a missing, unreadable or corrupt document is empty.
func (s *Store) load(ctx context.Context) document {
	raw, err := s.repo.Get(ctx, common.MetadataKeyOverlay)
	if err != nil {
		s.logger.Warn(ctx, "overlay unavailable, using empty", "error", err)
		return document{}
	}
	doc, err := decode(raw)
	if err != nil {
		s.logger.Warn(ctx, "overlay unreadable, using empty", "error", err)
	}
	return doc
}

// Read returns the entry for id and whether one exists.
func (s *Store) Read(ctx context.Context, id int) (models.UserPatch, bool) {
	p, ok := s.load(ctx)[strconv.Itoa(id)]
	if !ok || p.IsEmpty() {
		return models.UserPatch{}, false
	}
	return p, true
}

// Apply replaces exactly the fields named in the entry for u.ID.
func (s *Store) Apply(ctx context.Context, u models.User) models.User {
	p, ok := s.Read(ctx, u.ID)
	if !ok {
		return u
	}
	return p.ApplyTo(u)
}

// ApplyAll is Apply over a slice, loading the document once. The input slice
// is not modified.
func (s *Store) ApplyAll(ctx context.Context, users []models.User) []models.User {
	out := make([]models.User, len(users))
	copy(out, users)
	if len(out) == 0 {
		return out
	}

	doc := s.load(ctx)
	if len(doc) == 0 {
		return out
	}
	for i, u := range out {
		if p, ok := doc[strconv.Itoa(u.ID)]; ok {
			out[i] = p.ApplyTo(u)
		}
	}
	return out
}

// Write merges patch into the entry for id, last write per field wins.
func (s *Store) Write(ctx context.Context, id int, patch models.UserPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	key := strconv.Itoa(id)
	err := s.repo.Update(ctx, common.MetadataKeyOverlay, func(current []byte) ([]byte, error) {
		doc, err := decode(current)
		if err != nil {
			s.logger.Warn(ctx, "discarding unreadable overlay", "error", err)
		}
		doc[key] = doc[key].Merge(patch)
		return json.Marshal(doc)
	})
	if err != nil {
		return fmt.Errorf("write overlay for user %d: %w", id, err)
	}

	s.logger.Debug(ctx, "overlay written", "user_id", id, "fields", patch.Fields())
	return nil
}

// Remove drops the entry for id. Removing an absent entry is not an error.
func (s *Store) Remove(ctx context.Context, id int) error {
	key := strconv.Itoa(id)
	err := s.repo.Update(ctx, common.MetadataKeyOverlay, func(current []byte) ([]byte, error) {
		doc, err := decode(current)
		if err != nil {
			s.logger.Warn(ctx, "discarding unreadable overlay", "error", err)
		}
		delete(doc, key)
		return json.Marshal(doc)
	})
	if err != nil {
		return fmt.Errorf("remove overlay for user %d: %w", id, err)
	}
	return nil
}

// Entries returns every stored entry keyed by user id. Keys that are not
// decimal ids are skipped.
func (s *Store) Entries(ctx context.Context) (map[int]models.UserPatch, error) {
	raw, err := s.repo.Get(ctx, common.MetadataKeyOverlay)
	if err != nil {
		return nil, fmt.Errorf("read overlay: %w", err)
	}
	doc, err := decode(raw)
	if err != nil {
		return nil, err
	}

	out := make(map[int]models.UserPatch, len(doc))
	for k, p := range doc {
		id, err := strconv.Atoi(k)
		if err != nil || p.IsEmpty() {
			continue
		}
		out[id] = p
	}
	return out, nil
}

// IDs returns the ids of Entries in ascending order.
func IDs(entries map[int]models.UserPatch) []int {
	ids := make([]int, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clear forgets every entry.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.MetadataKeyOverlay); err != nil {
		return fmt.Errorf("clear overlay: %w", err)
	}
	return nil
}
