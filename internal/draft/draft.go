// Package draft persists in-progress wizard values to disk. The demo
// wires Store.Save as the wizard's per-advance sink so a half-finished
// form survives a closed terminal.
package draft

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"
	"github.com/mark3labs/stepform/internal/logger"
	"gopkg.in/yaml.v3"
)

// Draft is the on-disk shape of a saved draft.
type Draft struct {
	Title   string            `yaml:"title"`
	SavedAt time.Time         `yaml:"saved_at"`
	Values  map[string]string `yaml:"values"`
}

// Store writes drafts for one named wizard into a directory.
type Store struct {
	dir   string
	title string
}

// NewStore creates a store for the wizard named title, writing under
// dir. The filename is the slugged title, so two wizards with the same
// title share a draft slot.
func NewStore(dir, title string) *Store {
	return &Store{dir: dir, title: title}
}

// Path returns the draft file path for this store's wizard.
func (s *Store) Path() string {
	name := slug.Make(s.title)
	if name == "" {
		name = "unnamed-draft"
	}
	return filepath.Join(s.dir, name+".yml")
}

// Save writes the current values as a draft, creating the directory if
// needed. Failures are logged and swallowed in Sink; callers that care
// use Save directly.
func (s *Store) Save(values map[string]string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating draft directory: %w", err)
	}

	data, err := yaml.Marshal(Draft{
		Title:   s.title,
		SavedAt: time.Now().UTC(),
		Values:  values,
	})
	if err != nil {
		return fmt.Errorf("marshaling draft: %w", err)
	}

	path := s.Path()
	logger.Debug("Writing draft to %s", path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing draft file: %w", err)
	}
	return nil
}

// Sink adapts Save to the wizard's per-advance callback signature.
// Draft persistence is best-effort; a failed write never interrupts
// the wizard.
func (s *Store) Sink(values map[string]string) {
	if err := s.Save(values); err != nil {
		logger.Warn("Failed to save draft: %v", err)
	}
}

// Load reads the draft back, for seeding a reopened wizard's initial
// values. A missing file returns an empty draft, not an error.
func (s *Store) Load() (*Draft, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return &Draft{Title: s.title, Values: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("reading draft file: %w", err)
	}

	var d Draft
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing draft file: %w", err)
	}
	if d.Values == nil {
		d.Values = map[string]string{}
	}
	return &d, nil
}

// Discard removes the draft file, typically after a successful submit.
func (s *Store) Discard() error {
	err := os.Remove(s.Path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing draft file: %w", err)
	}
	return nil
}
