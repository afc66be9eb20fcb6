package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/store"
)

const exportPrefix = "beyond_backup_"

// ExportFileName returns the backup file name for the given day.
func ExportFileName(day string) string {
	return exportPrefix + day + ".json"
}

// Export pretty-prints the full collection to w.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	data, err := s.ExportBytes(ctx)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ExportBytes returns the pretty-printed collection.
func (s *Service) ExportBytes(ctx context.Context) ([]byte, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []entry.Entry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// ExportFile writes beyond_backup_<today>.json into dir and returns its path.
func (s *Service) ExportFile(ctx context.Context, dir string) (string, error) {
	data, err := s.ExportBytes(ctx)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("app: export dir: %w", err)
	}
	path := filepath.Join(dir, ExportFileName(s.Today()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("app: export: %w", err)
	}
	return path, nil
}

// Import merges entries from a backup. Entries whose timestamp is already
// stored are skipped; same-day duplicates are kept as they are.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	if s.Persistence == nil {
		return 0, ErrNoPersistence
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("app: import: %w", err)
	}
	incoming, err := store.Decode(data)
	if err != nil {
		return 0, fmt.Errorf("app: import: %w", err)
	}
	entries := s.Persistence.Load(ctx)
	added := 0
	for _, e := range incoming {
		if e.Date == "" || e.Text == "" || entry.IndexOf(entries, e.Timestamp) >= 0 {
			continue
		}
		entries = append(entries, e)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	if err := s.Persistence.Save(ctx, entries); err != nil {
		return 0, err
	}
	return added, nil
}
