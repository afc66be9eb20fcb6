// Package mcp exposes the journal to Model Context Protocol clients.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/beyond/pkg/app"
	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/streak"
)

// Service adapts the journal service to MCP tool and resource handlers.
type Service struct {
	App       *app.Service
	Formatter entry.Formatter
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Timestamp  int64  `json:"timestamp"`
	Label      string `json:"label"`
	Text       string `json:"text"`
	CreatedISO string `json:"created"`
}

// StreakDTO summarises the streak as of today.
type StreakDTO struct {
	Today   string `json:"today"`
	Current int    `json:"current"`
	Longest int    `json:"longest"`
	Written bool   `json:"writtenToday"`
	Entries int    `json:"entries"`
}

// NewService builds a service wrapper around the journal.
func NewService(svc *app.Service, f entry.Formatter) *Service {
	return &Service{App: svc, Formatter: f}
}

func (s *Service) toDTO(e entry.Entry) EntryDTO {
	loc := s.App.Location
	if loc == nil {
		loc = time.Local
	}
	return EntryDTO{
		ID:         strconv.FormatInt(e.Timestamp, 10),
		Date:       e.Date,
		Timestamp:  e.Timestamp,
		Label:      s.Formatter.Label(e),
		Text:       e.Text,
		CreatedISO: e.Time(loc).Format(time.RFC3339),
	}
}

func parseID(id string) (int64, error) {
	ts, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid entry id %q", id)
	}
	return ts, nil
}

// WriteToday stores today's entry.
func (s *Service) WriteToday(ctx context.Context, text string) (EntryDTO, error) {
	e, err := s.App.Write(ctx, text)
	if err != nil {
		return EntryDTO{}, err
	}
	return s.toDTO(e), nil
}

// ListEntries returns up to limit entries, newest first. A limit <= 0 returns
// everything.
func (s *Service) ListEntries(ctx context.Context, limit int) ([]EntryDTO, error) {
	history, err := s.App.History(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	out := make([]EntryDTO, 0, len(history))
	for _, e := range history {
		out = append(out, s.toDTO(e))
	}
	return out, nil
}

// SearchEntries does a case-insensitive substring match over entry text.
func (s *Service) SearchEntries(ctx context.Context, query string, limit int) ([]EntryDTO, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, errors.New("query is required")
	}
	history, err := s.App.History(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0)
	for _, e := range history {
		if !strings.Contains(strings.ToLower(e.Text), query) && !strings.Contains(e.Date, query) {
			continue
		}
		out = append(out, s.toDTO(e))
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// EntryByID fetches a single entry by its timestamp identifier.
func (s *Service) EntryByID(ctx context.Context, id string) (EntryDTO, error) {
	ts, err := parseID(id)
	if err != nil {
		return EntryDTO{}, err
	}
	e, err := s.App.Find(ctx, ts)
	if err != nil {
		return EntryDTO{}, err
	}
	return s.toDTO(e), nil
}

// DeleteEntry removes the entry with the given identifier.
func (s *Service) DeleteEntry(ctx context.Context, id string) (EntryDTO, error) {
	dto, err := s.EntryByID(ctx, id)
	if err != nil {
		return EntryDTO{}, err
	}
	if err := s.App.Delete(ctx, dto.Timestamp); err != nil {
		return EntryDTO{}, err
	}
	return dto, nil
}

// Streak reports the current and longest runs.
func (s *Service) Streak(ctx context.Context) (StreakDTO, error) {
	entries, err := s.App.Entries(ctx)
	if err != nil {
		return StreakDTO{}, err
	}
	today := s.App.Today()
	return StreakDTO{
		Today:   today,
		Current: streak.Calculate(entries, today),
		Longest: streak.Longest(entries),
		Written: entry.HasDay(entries, today),
		Entries: len(entries),
	}, nil
}

// Backup returns the export document and its suggested file name.
func (s *Service) Backup(ctx context.Context) (string, string, error) {
	b, err := s.App.ExportBytes(ctx)
	if err != nil {
		return "", "", err
	}
	return app.ExportFileName(s.App.Today()), string(b), nil
}
