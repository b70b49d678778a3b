package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/punch/internal/domain"
)

// FileStore keeps the whole session log in a single JSON document.
// A missing file loads as the empty log; a malformed file is a fatal
// error, no repair is attempted.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// On-disk layout. Timestamps serialize as RFC 3339 instants; null
// logout/end marks an open session or break.
type fileDoc struct {
	Sessions  []fileSession `json:"sessions"`
	LastReset *time.Time    `json:"lastReset"`
}

type fileSession struct {
	ID     string      `json:"id,omitempty"`
	Login  time.Time   `json:"login"`
	Logout *time.Time  `json:"logout"`
	Breaks []fileBreak `json:"breaks"`
}

type fileBreak struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end"`
}

func (f *FileStore) Load(ctx context.Context) (domain.Log, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Log{}, nil
	}
	if err != nil {
		return domain.Log{}, fmt.Errorf("reading %s: %w", f.path, err)
	}

	var doc fileDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Log{}, fmt.Errorf("decoding %s: %w", f.path, err)
	}

	log := domain.Log{LastReset: doc.LastReset}
	for _, s := range doc.Sessions {
		sess := domain.Session{ID: s.ID, Login: s.Login, Logout: s.Logout}
		for _, b := range s.Breaks {
			sess.Breaks = append(sess.Breaks, domain.Break{Start: b.Start, End: b.End})
		}
		log.Sessions = append(log.Sessions, sess)
	}
	return log, nil
}

func (f *FileStore) Save(ctx context.Context, log domain.Log) error {
	doc := fileDoc{Sessions: []fileSession{}, LastReset: log.LastReset}
	for _, s := range log.Sessions {
		rec := fileSession{ID: s.ID, Login: s.Login, Logout: s.Logout, Breaks: []fileBreak{}}
		for _, b := range s.Breaks {
			rec.Breaks = append(rec.Breaks, fileBreak{Start: b.Start, End: b.End})
		}
		doc.Sessions = append(doc.Sessions, rec)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session log: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	// Write-then-rename so an interrupted save never truncates the log.
	tmp, err := os.CreateTemp(dir, ".punch-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	return nil
}
