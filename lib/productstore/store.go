package productstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"apptendo/lib/catalog"

	"github.com/titanous/json5"
)

// Store is the name -> record cache. It is append-only: once a name is in
// the store its record never changes.
type Store struct {
	records map[string]catalog.Record
}

func New() *Store {
	return &Store{records: map[string]catalog.Record{}}
}

// the on-disk shape, category is kept as its label
type fileRecord struct {
	ReleaseDate string `json:"release date"`
	Category    string `json:"category"`
}

// Load reads the cache at path. A missing or unreadable file is logged
// and an empty store is returned in its place.
func Load(path string) *Store {
	store := New()

	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Info("no product cache found, starting with an empty store", "path", path)
		return store
	}
	if err != nil {
		slog.Warn("could not read product cache, starting with an empty store", "path", path, "err", err)
		return store
	}

	var raw map[string]fileRecord
	err = json5.Unmarshal(contents, &raw)
	if err != nil {
		slog.Warn("could not parse product cache, starting with an empty store", "path", path, "err", err)
		return store
	}

	for name, r := range raw {
		category, err := catalog.ParseCategory(r.Category)
		if err != nil {
			slog.Warn("cached product has unknown category", "name", name, "category", r.Category)
		}
		record := catalog.Record{
			ReleaseDate: r.ReleaseDate,
			Category:    category,
		}
		if err != nil {
			record.RawLabel = r.Category
		}
		store.records[name] = record
	}
	slog.Info("loaded product cache", "path", path, "records", len(store.records))
	return store
}

func (s *Store) Has(name string) bool {
	_, ok := s.records[name]
	return ok
}

func (s *Store) Get(name string) (catalog.Record, bool) {
	r, ok := s.records[name]
	return r, ok
}

// Add inserts record under name unless the name is already taken.
func (s *Store) Add(name string, record catalog.Record) bool {
	if s.Has(name) {
		return false
	}
	s.records[name] = record
	return true
}

func (s *Store) Len() int {
	return len(s.records)
}

// Records returns every record sorted by name.
func (s *Store) Records() []catalog.NamedRecord {
	out := make([]catalog.NamedRecord, 0, len(s.records))
	for name, r := range s.records {
		out = append(out, catalog.NamedRecord{Name: name, Record: r})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Write replaces the file at path with the full contents of the store.
func (s *Store) Write(path string) error {
	out := make(map[string]fileRecord, len(s.records))
	for name, r := range s.records {
		out[name] = fileRecord{
			ReleaseDate: r.ReleaseDate,
			Category:    r.CategoryLabel(),
		}
	}
	contents, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode product cache: %w", err)
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write product cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(contents)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("write product cache: %w", err)
	}
	// CreateTemp opens with 0600, the cache is meant to be readable
	err = tmp.Chmod(0644)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("write product cache: %w", err)
	}
	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("write product cache: %w", err)
	}

	err = os.Rename(tmp.Name(), path)
	if err != nil {
		return fmt.Errorf("write product cache: %w", err)
	}
	return nil
}
