package store

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/gigs/internal/form"
	"github.com/desertthunder/gigs/internal/models"
	"github.com/desertthunder/gigs/internal/shared"
)

// DefaultKey is the blob key the collection is stored under.
const DefaultKey = "concertTrackerData"

// ThemeKey is the blob key holding the remembered UI theme.
const ThemeKey = "theme"

//go:embed seed.json
var seedData []byte

// Blobs is the keyed persistence the store writes through.
// [repositories.BlobRepository] implements it.
type Blobs interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// Store holds the concert collection and mirrors it to [Blobs].
type Store struct {
	blobs    Blobs
	key      string
	logger   *log.Logger
	concerts []models.Concert
}

// New creates a Store over blobs. An empty key uses [DefaultKey]; a nil logger uses the shared default.
//
// Call [Store.Load] before reading.
func New(blobs Blobs, key string, logger *log.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Store{blobs: blobs, key: key, logger: shared.WithLogger(logger, "component", "store")}
}

// Load reads the collection from the blob.
//
// A missing blob seeds the built-in dataset and persists it. An unreadable blob
// falls back to the seeded dataset in memory without overwriting what is stored.
func (s *Store) Load() {
	concerts, err := s.read()
	switch {
	case errors.Is(err, shared.ErrBlobNotFound):
		s.logger.Info("no stored concerts, seeding defaults", "key", s.key)
		s.concerts = Seed()
		s.save()
		return
	case err != nil:
		s.logger.Error("failed to load stored concerts, using defaults", "key", s.key, "error", err)
		s.concerts = Seed()
		return
	}

	s.concerts = concerts
	s.logger.Debug("loaded concerts", "count", len(concerts))
}

// Reload re-reads the collection from the blob.
//
// Unlike [Store.Load] it never seeds: when the blob cannot be read or decoded
// the current collection is kept as is.
func (s *Store) Reload() {
	concerts, err := s.read()
	if err != nil {
		s.logger.Error("failed to reload stored concerts, keeping current", "key", s.key, "error", err)
		return
	}

	s.concerts = concerts
	s.logger.Debug("reloaded concerts", "count", len(concerts))
}

func (s *Store) read() ([]models.Concert, error) {
	data, err := s.blobs.Get(s.key)
	if err != nil {
		return nil, err
	}

	var concerts []models.Concert
	if err := json.Unmarshal(data, &concerts); err != nil {
		return nil, fmt.Errorf("failed to decode stored concerts: %w", err)
	}
	if concerts == nil {
		concerts = []models.Concert{}
	}
	return concerts, nil
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []models.Concert {
	return slices.Clone(s.concerts)
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.concerts) }

// Get returns the record with id.
func (s *Store) Get(id string) (models.Concert, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Concert{}, false
	}
	return s.concerts[i], true
}

// Add derives c's stored fields, assigns a fresh id when it has none, appends it and persists.
func (s *Store) Add(c models.Concert) (models.Concert, error) {
	c, err := form.Derive(c)
	if err != nil {
		return models.Concert{}, err
	}

	if c.ID == "" {
		c.ID = shared.GenerateID()
	} else if s.index(c.ID) >= 0 {
		return models.Concert{}, fmt.Errorf("%w: %s", shared.ErrDuplicateID, c.ID)
	}

	s.concerts = append(s.concerts, c)
	s.save()
	return c, nil
}

// Update replaces the record with c.ID by c in full and persists.
func (s *Store) Update(c models.Concert) (models.Concert, error) {
	i := s.index(c.ID)
	if i < 0 {
		return models.Concert{}, fmt.Errorf("%w: %s", shared.ErrConcertNotFound, c.ID)
	}

	c, err := form.Derive(c)
	if err != nil {
		return models.Concert{}, err
	}

	s.concerts[i] = c
	s.save()
	return c, nil
}

// Delete removes the record with id, keeping the others in their relative order, and persists.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", shared.ErrConcertNotFound, id)
	}

	s.concerts = slices.Delete(s.concerts, i, i+1)
	s.save()
	return nil
}

// Replace swaps the whole collection for cs, deriving each record and filling missing ids.
// Nothing changes when any record is invalid or ids collide.
func (s *Store) Replace(cs []models.Concert) error {
	next, err := s.prepare(cs, nil)
	if err != nil {
		return err
	}

	s.concerts = next
	s.save()
	return nil
}

// Append adds cs after the existing records. Only cs is derived, so stored
// records are kept verbatim. Nothing changes when any record is invalid or
// its id is already taken.
func (s *Store) Append(cs []models.Concert) error {
	taken := make(map[string]struct{}, len(s.concerts))
	for _, c := range s.concerts {
		taken[c.ID] = struct{}{}
	}

	added, err := s.prepare(cs, taken)
	if err != nil {
		return err
	}

	s.concerts = append(s.concerts, added...)
	s.save()
	return nil
}

// prepare derives cs and fills missing ids, rejecting ids found in taken or repeated within cs.
func (s *Store) prepare(cs []models.Concert, taken map[string]struct{}) ([]models.Concert, error) {
	out := make([]models.Concert, 0, len(cs))
	seen := make(map[string]struct{}, len(cs)+len(taken))
	for id := range taken {
		seen[id] = struct{}{}
	}

	for i, c := range cs {
		c, err := form.Derive(c)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if c.ID == "" {
			c.ID = shared.GenerateID()
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("record %d: %w: %s", i+1, shared.ErrDuplicateID, c.ID)
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

// Theme returns the remembered theme, or "" when none is stored.
func (s *Store) Theme() string {
	data, err := s.blobs.Get(ThemeKey)
	if err != nil {
		if !errors.Is(err, shared.ErrBlobNotFound) {
			s.logger.Warn("failed to read theme", "error", err)
		}
		return ""
	}
	return string(data)
}

// SetTheme remembers theme.
func (s *Store) SetTheme(theme string) {
	if err := s.blobs.Put(ThemeKey, []byte(theme)); err != nil {
		s.logger.Error("failed to save theme", "error", err)
	}
}

// Reset forgets the stored collection and theme, then loads again, which seeds
// the built-in dataset.
func (s *Store) Reset() error {
	for _, key := range []string{s.key, ThemeKey} {
		if err := s.blobs.Delete(key); err != nil && !errors.Is(err, shared.ErrBlobNotFound) {
			return fmt.Errorf("failed to reset %s: %w", key, err)
		}
	}

	s.logger.Info("reset stored concerts", "key", s.key)
	s.Load()
	return nil
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.concerts, func(c models.Concert) bool { return c.ID == id })
}

// save mirrors the collection to the blob. Failures are logged, never returned.
func (s *Store) save() {
	data, err := json.Marshal(s.concerts)
	if err != nil {
		s.logger.Error("failed to encode concerts", "error", err)
		return
	}
	if err := s.blobs.Put(s.key, data); err != nil {
		s.logger.Error("failed to persist concerts", "key", s.key, "error", err)
		return
	}
	s.logger.Debug("persisted concerts", "count", len(s.concerts))
}

// Seed returns the built-in dataset with fresh ids and derived fields.
func Seed() []models.Concert {
	var raw []models.Concert
	if err := json.Unmarshal(seedData, &raw); err != nil {
		panic(fmt.Sprintf("failed to parse embedded seed data: %v", err))
	}

	concerts := make([]models.Concert, 0, len(raw))
	for _, c := range raw {
		c, err := form.Derive(c)
		if err != nil {
			panic(fmt.Sprintf("invalid embedded seed record %q: %v", c.Band, err))
		}
		c.ID = shared.GenerateID()
		concerts = append(concerts, c)
	}
	return concerts
}
