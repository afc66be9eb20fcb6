package export

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/beyond/pkg/app"
	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/store"
)

func init() {
	color.NoColor = true
}

var fixedNow = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

func newService() (*app.Service, []entry.Entry) {
	entries := []entry.Entry{
		{Date: "2026-10-18", Timestamp: fixedNow.AddDate(0, 0, -1).UnixMilli(), Text: "one"},
		{Date: "2026-10-19", Timestamp: fixedNow.UnixMilli(), Text: "two"},
	}
	return &app.Service{
		Persistence: store.NewMemory(entries...),
		Clock:       func() time.Time { return fixedNow },
		Location:    time.UTC,
	}, entries
}

func TestExportFile(t *testing.T) {
	svc, entries := newService()
	dir := t.TempDir()
	var out bytes.Buffer
	e := Export{Service: svc, Dir: dir, Out: &out}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	path := filepath.Join(dir, "beyond_backup_2026-10-19.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected backup file: %v", err)
	}
	var got []entry.Entry
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("backup is not JSON: %v", err)
	}
	if len(got) != len(entries) || got[1].Text != "two" {
		t.Fatalf("unexpected backup %#v", got)
	}
	if !strings.Contains(out.String(), path) {
		t.Fatalf("expected path in output, got %q", out.String())
	}
}

func TestExportStdout(t *testing.T) {
	svc, _ := newService()
	var out bytes.Buffer
	e := Export{Service: svc, Stdout: true, Out: &out}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	want, _ := svc.ExportBytes(context.Background())
	if out.String() != string(want) {
		t.Fatalf("stdout export differs:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestExportClipboard(t *testing.T) {
	svc, _ := newService()
	var copied string
	e := Export{
		Service:   svc,
		Clipboard: true,
		Copy: func(s string) error {
			copied = s
			return nil
		},
		Out: &bytes.Buffer{},
	}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if !strings.HasPrefix(copied, "[\n  {") {
		t.Fatalf("expected indented JSON on the clipboard, got %q", copied)
	}
}
