// Package drafts persists the editor buffer between sessions so unsaved
// work survives a quit or crash.
//
// A Store keeps a single JSON record (draft.json) under its directory. The
// directory is created 0700 and the record written 0600 because drafts can
// hold anything the user typed.
package drafts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/treykane/md-cards/internal/logging"
)

const draftFileName = "draft.json"

var log = logging.New("drafts")

// ErrNoDraft is returned by Load when no draft has been saved.
var ErrNoDraft = errors.New("no saved draft")

// Record is the on-disk draft.
type Record struct {
	// SourcePath is the Markdown file the buffer was opened from, if any.
	SourcePath string    `json:"source_path,omitempty"`
	Content    string    `json:"content"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Store reads and writes the draft under a directory.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore returns a Store rooted at dir. The directory is created lazily on
// the first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// Path returns the draft file location.
func (s *Store) Path() string {
	return filepath.Join(s.dir, draftFileName)
}

// Save writes content as the current draft and returns the stored record.
func (s *Store) Save(content, sourcePath string) (Record, error) {
	record := Record{
		SourcePath: sourcePath,
		Content:    content,
		UpdatedAt:  s.now().UTC(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return Record{}, err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return Record{}, fmt.Errorf("create drafts dir: %w", err)
	}

	// Write through a temp file so a crash mid-write never leaves a
	// truncated draft behind.
	tmp, err := os.CreateTemp(s.dir, ".draft-*.json")
	if err != nil {
		return Record{}, fmt.Errorf("write draft: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return Record{}, fmt.Errorf("write draft: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return Record{}, fmt.Errorf("write draft: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return Record{}, fmt.Errorf("write draft: %w", err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return Record{}, fmt.Errorf("write draft: %w", err)
	}
	log.Debug("saved draft", "path", s.Path(), "bytes", len(content))
	return record, nil
}

// Load returns the saved draft, or ErrNoDraft when none exists.
func (s *Store) Load() (Record, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, ErrNoDraft
		}
		return Record{}, fmt.Errorf("read draft: %w", err)
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, fmt.Errorf("parse draft: %w", err)
	}
	return record, nil
}

// Clear removes the saved draft. Clearing a missing draft is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove draft: %w", err)
	}
	return nil
}
