package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/store"
	"tableflip.dev/beyond/pkg/streak"
)

// Service provides the journal operations shared by the CLI and the TUI.
// Every call reads a fresh snapshot from persistence; nothing is cached.
type Service struct {
	Persistence store.Persistence
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
	// Location decides which calendar day "now" falls on. Defaults to time.Local.
	Location *time.Location
}

var (
	ErrNoPersistence  = errors.New("app: no persistence configured")
	ErrEmptyText      = errors.New("app: write something before saving")
	ErrAlreadyWritten = errors.New("app: today's entry already exists")
	ErrNotFound       = errors.New("app: entry not found")
)

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *Service) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

// Today returns the current calendar day string.
func (s *Service) Today() string {
	return entry.Day(s.now(), s.location())
}

// Entries returns the stored collection in stored order.
func (s *Service) Entries(ctx context.Context) ([]entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Load(ctx), nil
}

// History returns the entries, most recent first.
func (s *Service) History(ctx context.Context) ([]entry.Entry, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return entry.SortByTimestampDesc(entries), nil
}

// HasEntryToday reports whether today's entry was already written.
func (s *Service) HasEntryToday(ctx context.Context) (bool, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return false, err
	}
	return entry.HasDay(entries, s.Today()), nil
}

// Streak returns the current streak.
func (s *Service) Streak(ctx context.Context) (int, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return 0, err
	}
	return streak.Calculate(entries, s.Today()), nil
}

// Write appends today's entry. Blank text and a second entry on the same day
// are rejected without touching the store.
func (s *Service) Write(ctx context.Context, text string) (entry.Entry, error) {
	if s.Persistence == nil {
		return entry.Entry{}, ErrNoPersistence
	}
	if strings.TrimSpace(text) == "" {
		return entry.Entry{}, ErrEmptyText
	}
	entries := s.Persistence.Load(ctx)
	e := entry.New(text, s.now(), s.location())
	if entry.HasDay(entries, e.Date) {
		return entry.Entry{}, ErrAlreadyWritten
	}
	for entry.IndexOf(entries, e.Timestamp) >= 0 {
		e.Timestamp++
	}
	entries = append(entries, e)
	if err := s.Persistence.Save(ctx, entries); err != nil {
		return entry.Entry{}, err
	}
	return e, nil
}

// Find returns the entry with the given timestamp.
func (s *Service) Find(ctx context.Context, timestamp int64) (entry.Entry, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return entry.Entry{}, err
	}
	if i := entry.IndexOf(entries, timestamp); i >= 0 {
		return entries[i], nil
	}
	return entry.Entry{}, ErrNotFound
}

// Delete removes exactly the entry with the given timestamp.
func (s *Service) Delete(ctx context.Context, timestamp int64) error {
	entries, err := s.Entries(ctx)
	if err != nil {
		return err
	}
	kept := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Timestamp == timestamp {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == len(entries) {
		return ErrNotFound
	}
	return s.Persistence.Save(ctx, kept)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
