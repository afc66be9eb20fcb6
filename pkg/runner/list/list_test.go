package list

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
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

func past(offset int, text string) entry.Entry {
	t := fixedNow.AddDate(0, 0, offset)
	return entry.Entry{Date: t.Format(entry.LayoutDay), Timestamp: t.UnixMilli(), Text: text}
}

func newService(entries ...entry.Entry) *app.Service {
	return &app.Service{
		Persistence: store.NewMemory(entries...),
		Clock:       func() time.Time { return fixedNow },
		Location:    time.UTC,
	}
}

func TestListNewestFirst(t *testing.T) {
	var out bytes.Buffer
	l := List{
		Service:   newService(past(-2, "older"), past(-1, "newer")),
		Formatter: entry.NewFormatter("en_US", time.UTC),
		ShowID:    true,
		Out:       &out,
	}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "History - 2 entries") {
		t.Fatalf("expected title with count:\n%s", got)
	}
	if strings.Index(got, "newer") > strings.Index(got, "older") {
		t.Fatalf("expected newest row first:\n%s", got)
	}
	if !strings.Contains(got, "Sun 18 October 2026") {
		t.Fatalf("expected formatted label:\n%s", got)
	}
	if id := strconv.FormatInt(past(-1, "").Timestamp, 10); !strings.Contains(got, id) {
		t.Fatalf("expected timestamp id %s:\n%s", id, got)
	}
}

func TestListEmpty(t *testing.T) {
	var out bytes.Buffer
	l := List{Service: newService(), Out: &out}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if !strings.Contains(out.String(), "none") {
		t.Fatalf("expected empty marker:\n%s", out.String())
	}
}

func TestListJSONLimit(t *testing.T) {
	var out bytes.Buffer
	l := List{
		Service: newService(past(-3, "a"), past(-2, "b"), past(-1, "c")),
		Limit:   2,
		JSON:    true,
		Out:     &out,
	}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	var got []entry.Entry
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(got) != 2 || got[0].Text != "c" || got[1].Text != "b" {
		t.Fatalf("unexpected rows %#v", got)
	}
}

func TestListSince(t *testing.T) {
	var out bytes.Buffer
	l := List{
		Service: newService(past(-9, "too old"), past(-6, "in"), past(0, "today")),
		Since:   "1w",
		Out:     &out,
	}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "History, last 1w - 2 entries") {
		t.Fatalf("expected window title:\n%s", got)
	}
	if strings.Contains(got, "too old") {
		t.Fatalf("expected entries outside the window to be dropped:\n%s", got)
	}

	l.Since = "soon"
	if err := l.Do(context.Background()); err == nil {
		t.Fatalf("expected error for a bad window")
	}
}
