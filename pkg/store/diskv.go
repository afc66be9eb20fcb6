package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/beyond/pkg/entry"
)

// Persistence is the single key/value slot holding every journal entry.
type Persistence interface {
	// Load returns the stored entries. A missing or unreadable slot is an
	// empty journal.
	Load(ctx context.Context) []entry.Entry
	// Save overwrites the slot with entries.
	Save(ctx context.Context, entries []entry.Entry) error
	Watch(ctx context.Context) (<-chan Event, error)
	Path() string
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	key := cfg.Key()
	if key == "" {
		key = DefaultKey
	}
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:  basePath,
			TempDir:   filepath.Join(basePath, tempDirName),
			Transform: flatTransform,
			// Other processes rewrite the slot, so reads always go to disk.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		key:      key,
	}, nil
}

const tempDirName = ".tmp"

type persistence struct {
	d        *diskv.Diskv
	basePath string
	key      string
}

func flatTransform(string) []string {
	return []string{}
}

func (p *persistence) Path() string {
	return filepath.Join(p.basePath, p.key)
}

func (p *persistence) Load(ctx context.Context) []entry.Entry {
	if !p.d.Has(p.key) {
		return []entry.Entry{}
	}
	val, err := p.d.Read(p.key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %v\n", p.key, err)
		return []entry.Entry{}
	}
	entries, err := Decode(val)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", p.key, err)
		return []entry.Entry{}
	}
	return entries
}

func (p *persistence) Save(ctx context.Context, entries []entry.Entry) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := p.d.Write(p.key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", p.key, err)
	}
	return nil
}

// Encode serializes entries in the persisted layout.
func Encode(entries []entry.Entry) ([]byte, error) {
	if entries == nil {
		entries = []entry.Entry{}
	}
	return json.Marshal(entries)
}

// Decode parses the persisted layout. Empty input is an empty journal.
func Decode(data []byte) ([]entry.Entry, error) {
	if len(data) == 0 {
		return []entry.Entry{}, nil
	}
	var entries []entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	if entries == nil {
		entries = []entry.Entry{}
	}
	return entries, nil
}
