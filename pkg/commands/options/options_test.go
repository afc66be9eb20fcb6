package options

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"tableflip.dev/beyond/pkg/app"
)

func TestGetOn(t *testing.T) {
	loc := time.UTC

	o := &OnOptions{}
	if on, err := o.GetOn(loc); on != nil || err != nil {
		t.Fatalf("expected nil for an empty flag, got %v, %v", on, err)
	}

	o.OnString = "2026-10-18"
	on, err := o.GetOn(loc)
	if err != nil {
		t.Fatalf("GetOn failed: %v", err)
	}
	if want := time.Date(2026, time.October, 18, 12, 0, 0, 0, loc); !on.Equal(want) {
		t.Fatalf("GetOn = %v, want %v", on, want)
	}

	o.OnString = "10/18"
	on, err = o.GetOn(loc)
	if err != nil {
		t.Fatalf("GetOn short form failed: %v", err)
	}
	if on.Month() != time.October || on.Day() != 18 || on.Year() != time.Now().In(loc).Year() {
		t.Fatalf("unexpected short form day %v", on)
	}

	o.OnString = "yesterday"
	if _, err := o.GetOn(loc); err == nil {
		t.Fatalf("expected error for an unparseable day")
	}
}

func TestClock(t *testing.T) {
	o := &OnOptions{OnString: "2026-02-28"}
	clock, err := o.Clock(time.UTC)
	if err != nil || clock == nil {
		t.Fatalf("Clock = %p, %v", clock, err)
	}
	if got := clock().Format("2006-01-02"); got != "2026-02-28" {
		t.Fatalf("clock day = %s", got)
	}

	clock, err = (&OnOptions{}).Clock(time.UTC)
	if clock != nil || err != nil {
		t.Fatalf("expected no clock without --on")
	}
}

func TestParseTimestamp(t *testing.T) {
	if ts, err := ParseTimestamp("1792395000000"); err != nil || ts != 1792395000000 {
		t.Fatalf("ParseTimestamp = %d, %v", ts, err)
	}
	if _, err := ParseTimestamp("abc"); err == nil {
		t.Fatalf("expected error for a non-numeric id")
	}
}

func TestHandleError(t *testing.T) {
	boom := errors.New("boom")

	plain := &OutputOptions{}
	if err := plain.HandleError(boom); err != boom {
		t.Fatalf("expected error passthrough, got %v", err)
	}

	var out bytes.Buffer
	js := &OutputOptions{JSON: true, Out: &out}
	if err := js.HandleError(fmt.Errorf("write: %w", app.ErrAlreadyWritten)); err != nil {
		t.Fatalf("expected error to be swallowed, got %v", err)
	}
	want := `{"code":"already_written","error":"write: app: today's entry already exists"}` + "\n"
	if out.String() != want {
		t.Fatalf("HandleError wrote %q, want %q", out.String(), want)
	}

	if err := js.HandleError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
