package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/beyond/pkg/entry"
)

type testConfig struct {
	path string
	key  string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Key() string {
	return t.key
}

func sample() []entry.Entry {
	return []entry.Entry{
		{Date: "2026-10-18", Timestamp: 1792300000000, Text: "yesterday"},
		{Date: "2026-10-19", Timestamp: 1792390000000, Text: "today \"quoted\""},
	}
}

func TestLoadMissingSlotIsEmpty(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	got := p.Load(context.Background())
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	p, err := Load(testConfig{path: t.TempDir(), key: "beyond_data"})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	want := sample()
	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	first := p.Load(ctx)
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("expected %#v, got %#v", want, first)
	}

	if err := p.Save(ctx, p.Load(ctx)); err != nil {
		t.Fatalf("resave: %v", err)
	}
	if second := p.Load(ctx); !reflect.DeepEqual(first, second) {
		t.Fatalf("save(load()) changed the slot: %#v vs %#v", first, second)
	}
}

func TestPersistedLayout(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base, key: "beyond_data"})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Save(context.Background(), sample()[:1]); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(base, "beyond_data"))
	if err != nil {
		t.Fatalf("read slot: %v", err)
	}
	want := `[{"date":"2026-10-18","timestamp":1792300000000,"text":"yesterday"}]`
	if string(raw) != want {
		t.Fatalf("unexpected layout:\n got %s\nwant %s", raw, want)
	}
	if p.Path() != filepath.Join(base, "beyond_data") {
		t.Fatalf("unexpected path %s", p.Path())
	}
}

func TestLoadMalformedSlotIsEmpty(t *testing.T) {
	for name, body := range map[string]string{
		"garbage": "not json at all",
		"object":  `{"date":"2026-10-19"}`,
		"empty":   "",
		"null":    "null",
	} {
		t.Run(name, func(t *testing.T) {
			base := t.TempDir()
			if err := os.WriteFile(filepath.Join(base, DefaultKey), []byte(body), 0o644); err != nil {
				t.Fatalf("seed slot: %v", err)
			}
			p, err := Load(testConfig{path: base})
			if err != nil {
				t.Fatalf("load persistence: %v", err)
			}
			if got := p.Load(context.Background()); len(got) != 0 {
				t.Fatalf("expected empty journal, got %#v", got)
			}
		})
	}
}

func TestMemoryClonesOnSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(sample()...)
	got := m.Load(ctx)
	got[0].Text = "mutated"
	if m.Load(ctx)[0].Text != "yesterday" {
		t.Fatalf("Load leaked internal slice")
	}
}

func TestPersistenceWatchEmitsSlotChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Save(ctx, sample()); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventSlotChanged || evt.Type == EventInvalidated {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for slot change event")
		}
	}
}

func TestThrottleSendsNothingAfterStop(t *testing.T) {
	for i := 0; i < 200; i++ {
		events := make(chan Event, 4)
		send := func(ev Event) {
			select {
			case events <- ev:
			default:
			}
		}
		throttle := newEventThrottle(time.Millisecond)
		throttle.Enqueue(Event{Type: EventSlotChanged}, send)
		time.Sleep(time.Duration(i%3) * time.Millisecond)
		throttle.Stop()
		close(events)

		throttle.Enqueue(Event{Type: EventSlotChanged}, send)
		throttle.flush(send)
	}
}

func TestPersistenceWatchCancelAfterSave(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	for i := 0; i < 20; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		ch, err := p.Watch(ctx)
		if err != nil {
			cancel()
			t.Fatalf("watch: %v", err)
		}
		if err := p.Save(ctx, sample()); err != nil {
			cancel()
			t.Fatalf("save: %v", err)
		}
		time.Sleep(100 * time.Millisecond)
		cancel()

		deadline := time.After(2 * time.Second)
	drain:
		for {
			select {
			case _, ok := <-ch:
				if !ok {
					break drain
				}
			case <-deadline:
				t.Fatal("timed out waiting for the watch channel to close")
			}
		}
	}
}

func TestMemoryWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewMemory()
	ch, err := m.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := m.Save(ctx, sample()); err != nil {
		t.Fatalf("save: %v", err)
	}
	select {
	case evt := <-ch:
		if evt.Type != EventSlotChanged {
			t.Fatalf("unexpected event %v", evt.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for memory event")
	}
	cancel()
	for range ch {
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BEYOND_CONFIG_PATH", dir)
	t.Setenv("BEYOND_PATH", filepath.Join(dir, "db"))
	t.Setenv("BEYOND_LOCALE", "en_US")
	t.Setenv("BEYOND_SWIPE_CELL_PX", "12")
	t.Chdir(dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "db") {
		t.Fatalf("unexpected path %s", cfg.BasePath())
	}
	if cfg.Key() != DefaultKey {
		t.Fatalf("unexpected key %s", cfg.Key())
	}
	if cfg.Locale != "en_US" || cfg.CellPx != 12 {
		t.Fatalf("env overrides not applied: %#v", cfg)
	}
	loc, err := cfg.Location()
	if err != nil || loc != time.Local {
		t.Fatalf("expected local zone, got %v %v", loc, err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	body := "path: " + filepath.Join(dir, "journal") + "\nkey: slot\ntimezone: UTC\nswipe:\n  cell_px: 8\n"
	if err := os.WriteFile(filepath.Join(dir, ".beyond.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BEYOND_CONFIG_PATH", dir)
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Key() != "slot" || cfg.CellPx != 8 {
		t.Fatalf("config file not applied: %#v", cfg)
	}
	loc, err := cfg.Location()
	if err != nil || loc.String() != "UTC" {
		t.Fatalf("expected UTC, got %v %v", loc, err)
	}
}
