// Package swipe implements the swipe-to-reveal gesture for history rows.
//
// Positions are in pixels. Offsets are never positive: rows slide left only.
package swipe

// State is the gesture state of one row.
type State int

const (
	Closed State = iota
	Dragging
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Dragging:
		return "dragging"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

const (
	// MaxDrag is the furthest a row may be dragged.
	MaxDrag = -100
	// Threshold is the displacement past which a release opens the row.
	Threshold = -50
	// OpenOffset is where an open row rests.
	OpenOffset = -80
	// TapSlop is the largest movement still treated as a tap.
	TapSlop = 5
)

// Result is what a release did to a row.
type Result int

const (
	ResultClosed Result = iota
	ResultOpen
	ResultTap
)

func (r Result) String() string {
	switch r {
	case ResultOpen:
		return "open"
	case ResultTap:
		return "tap"
	default:
		return "closed"
	}
}

// Row is the gesture machine for a single row.
type Row struct {
	state  State
	startX int
	base   int
	offset int
	// wasOpen records whether the current drag began on an open row.
	wasOpen bool
}

// State returns the current state.
func (r *Row) State() State {
	return r.state
}

// Offset returns the current visual offset.
func (r *Row) Offset() int {
	return r.offset
}

// WasOpen reports whether the last gesture started on an open row.
func (r *Row) WasOpen() bool {
	return r.wasOpen
}

// Start begins a drag at x.
func (r *Row) Start(x int) {
	r.wasOpen = r.state == Open
	r.base = 0
	if r.wasOpen {
		r.base = OpenOffset
	}
	r.startX = x
	r.offset = r.base
	r.state = Dragging
}

// Move follows the pointer. It is a no-op unless dragging.
func (r *Row) Move(x int) {
	if r.state != Dragging {
		return
	}
	r.offset = clamp(r.base + x - r.startX)
}

// End releases the drag at x and snaps the row.
func (r *Row) End(x int) Result {
	if r.state != Dragging {
		return ResultClosed
	}
	dx := x - r.startX
	if abs(dx) < TapSlop {
		r.Close()
		return ResultTap
	}
	if clamp(r.base+dx) < Threshold {
		r.state = Open
		r.offset = OpenOffset
		return ResultOpen
	}
	r.Close()
	return ResultClosed
}

// Reveal snaps the row open without a drag.
func (r *Row) Reveal() {
	r.state = Open
	r.offset = OpenOffset
}

// Close snaps the row back to zero.
func (r *Row) Close() {
	r.state = Closed
	r.offset = 0
}

func clamp(offset int) int {
	if offset < MaxDrag {
		return MaxDrag
	}
	if offset > 0 {
		return 0
	}
	return offset
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
