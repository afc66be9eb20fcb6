package commands

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/beyond/pkg/entry"
)

func init() {
	color.NoColor = true
}

func setupEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("BEYOND_CONFIG_PATH", dir)
	t.Setenv("BEYOND_PATH", dir+"/journal")
	t.Setenv("BEYOND_TIMEZONE", "UTC")
	t.Setenv("BEYOND_LOCALE", "en_US")
	t.Setenv("BEYOND_EXPORT_DIR", dir)
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("beyond %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestCommandTree(t *testing.T) {
	root := New()
	for _, name := range []string{"write", "streak", "list", "show", "delete", "export", "import", "ui", "mcp", "info", "demo", "version", "completion"} {
		if c, _, err := root.Find([]string{name}); err != nil || c.Name() != name {
			t.Fatalf("expected subcommand %q, got %v, %v", name, c, err)
		}
	}
}

func TestWriteStreakListDelete(t *testing.T) {
	setupEnv(t)

	run(t, "write", "--on", "2026-10-18", "first", "day")

	var written struct {
		Entry  entry.Entry `json:"entry"`
		Streak int         `json:"streak"`
	}
	out := run(t, "write", "--on", "2026-10-19", "--json", "second")
	if err := json.Unmarshal([]byte(out), &written); err != nil {
		t.Fatalf("write --json: %v\n%s", err, out)
	}
	if written.Entry.Date != "2026-10-19" || written.Entry.Text != "second" || written.Streak != 2 {
		t.Fatalf("unexpected write output %#v", written)
	}

	out = run(t, "write", "--on", "2026-10-19", "--json", "again")
	if !strings.Contains(out, `"code":"already_written"`) {
		t.Fatalf("expected already_written error, got %s", out)
	}

	var history []entry.Entry
	out = run(t, "list", "--json")
	if err := json.Unmarshal([]byte(out), &history); err != nil {
		t.Fatalf("list --json: %v\n%s", err, out)
	}
	if len(history) != 2 || history[0].Text != "second" || history[1].Text != "first day" {
		t.Fatalf("unexpected history %#v", history)
	}

	out = run(t, "streak", "--on", "2026-10-20", "--all", "--json")
	if !strings.Contains(out, `"current": 2`) || !strings.Contains(out, `"longest": 2`) {
		t.Fatalf("unexpected streak output %s", out)
	}

	id := strconv.FormatInt(history[1].Timestamp, 10)
	out = run(t, "show", id)
	if !strings.Contains(out, "Sun 18 October 2026") || !strings.Contains(out, "first day") {
		t.Fatalf("unexpected show output %s", out)
	}

	run(t, "delete", "--yes", id)
	out = run(t, "list", "--json")
	history = nil
	if err := json.Unmarshal([]byte(out), &history); err != nil {
		t.Fatalf("list --json: %v\n%s", err, out)
	}
	if len(history) != 1 || history[0].Text != "second" {
		t.Fatalf("expected one entry after delete, got %#v", history)
	}

	out = run(t, "show", "--json", id)
	if !strings.Contains(out, `"code":"not_found"`) {
		t.Fatalf("expected not_found error, got %s", out)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	setupEnv(t)
	run(t, "write", "--on", "2026-10-17", "one")
	run(t, "write", "--on", "2026-10-18", "two")

	doc := run(t, "export", "--stdout")
	var exported []entry.Entry
	if err := json.Unmarshal([]byte(doc), &exported); err != nil {
		t.Fatalf("export --stdout: %v\n%s", err, doc)
	}
	if len(exported) != 2 {
		t.Fatalf("expected two exported entries, got %#v", exported)
	}

	t.Setenv("BEYOND_PATH", t.TempDir())
	cmd := New()
	var buf bytes.Buffer
	cmd.SetArgs([]string{"import", "--json", "-"})
	cmd.SetIn(strings.NewReader(doc))
	cmd.SetOut(&buf)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(buf.String(), `"imported": 2`) {
		t.Fatalf("unexpected import output %s", buf.String())
	}
}

func TestDemoFlags(t *testing.T) {
	setupEnv(t)
	out := run(t, "demo", "--days", "6", "--skip", "3")
	if !strings.Contains(out, "added 4 sample entries") {
		t.Fatalf("unexpected demo output %s", out)
	}

	var history []entry.Entry
	out = run(t, "list", "--json")
	if err := json.Unmarshal([]byte(out), &history); err != nil {
		t.Fatalf("list --json: %v\n%s", err, out)
	}
	if len(history) != 4 {
		t.Fatalf("expected four sample entries, got %#v", history)
	}
}

func TestCompletionsFor(t *testing.T) {
	f := entry.NewFormatter("en_US", time.UTC)
	ts := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC).UnixMilli()
	got := completionsFor([]entry.Entry{{Date: "2026-10-19", Timestamp: ts, Text: "a\nlong   note"}}, f)
	want := strconv.FormatInt(ts, 10) + "\tMon 19 October 2026: a long note"
	if len(got) != 1 || got[0] != want {
		t.Fatalf("completionsFor = %q, want %q", got, want)
	}
}
