package swipe

// Outcome describes a finished gesture.
type Outcome struct {
	ID      int64
	Result  Result
	WasOpen bool
}

// Tracker owns the rows of one list and guarantees at most one row is open or
// dragging at a time. Rows are keyed by entry timestamp.
type Tracker struct {
	rows     map[int64]*Row
	active   int64
	open     int64
	dragging bool
	opened   bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{rows: make(map[int64]*Row)}
}

func (t *Tracker) row(id int64) *Row {
	if t.rows == nil {
		t.rows = make(map[int64]*Row)
	}
	r, ok := t.rows[id]
	if !ok {
		r = &Row{}
		t.rows[id] = r
	}
	return r
}

// Start begins a drag on id. Any other open row closes first.
func (t *Tracker) Start(id int64, x int) {
	if t.opened && t.open != id {
		t.row(t.open).Close()
		t.opened = false
	}
	if t.dragging && t.active != id {
		t.row(t.active).Close()
	}
	t.row(id).Start(x)
	t.active, t.dragging = id, true
}

// Move follows the pointer for the active drag.
func (t *Tracker) Move(x int) {
	if !t.dragging {
		return
	}
	t.row(t.active).Move(x)
}

// End releases the active drag. ok is false when nothing was being dragged.
func (t *Tracker) End(x int) (Outcome, bool) {
	if !t.dragging {
		return Outcome{}, false
	}
	id := t.active
	r := t.row(id)
	res := r.End(x)
	t.dragging = false
	if res == ResultOpen {
		t.open, t.opened = id, true
	} else if t.opened && t.open == id {
		t.opened = false
	}
	return Outcome{ID: id, Result: res, WasOpen: r.WasOpen()}, true
}

// Reveal opens id, closing any other open row.
func (t *Tracker) Reveal(id int64) {
	if t.opened && t.open != id {
		t.row(t.open).Close()
	}
	t.row(id).Reveal()
	t.open, t.opened = id, true
}

// Close closes id if it is open or dragging.
func (t *Tracker) Close(id int64) {
	if r, ok := t.rows[id]; ok {
		r.Close()
	}
	if t.opened && t.open == id {
		t.opened = false
	}
	if t.dragging && t.active == id {
		t.dragging = false
	}
}

// CloseAll closes every row.
func (t *Tracker) CloseAll() {
	for _, r := range t.rows {
		r.Close()
	}
	t.opened, t.dragging = false, false
}

// Open returns the open row, if any.
func (t *Tracker) Open() (int64, bool) {
	return t.open, t.opened
}

// Dragging returns the row being dragged, if any.
func (t *Tracker) Dragging() (int64, bool) {
	return t.active, t.dragging
}

// State returns the state of id. Unknown rows are closed.
func (t *Tracker) State(id int64) State {
	if r, ok := t.rows[id]; ok {
		return r.State()
	}
	return Closed
}

// Offset returns the visual offset of id.
func (t *Tracker) Offset(id int64) int {
	if r, ok := t.rows[id]; ok {
		return r.Offset()
	}
	return 0
}

// Retain forgets rows whose id is not in keep.
func (t *Tracker) Retain(keep map[int64]struct{}) {
	for id := range t.rows {
		if _, ok := keep[id]; ok {
			continue
		}
		delete(t.rows, id)
		if t.opened && t.open == id {
			t.opened = false
		}
		if t.dragging && t.active == id {
			t.dragging = false
		}
	}
}
