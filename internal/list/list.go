// Package list holds the focus and viewport bookkeeping shared by list
// widgets: which row has input focus, which window of rows is visible, and
// how navigation input moves the focus around.
package list

// NoFocus marks an absent focus index, both as the reported focus of an empty
// list and as the "not given" value for focus arguments.
const NoFocus = -1

// Direction names a navigation request.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	PageUp
	PageDown
	Home
	End
)

var directionNames = map[Direction]string{
	Up:       "up",
	Down:     "down",
	Left:     "left",
	Right:    "right",
	PageUp:   "page-up",
	PageDown: "page-down",
	Home:     "home",
	End:      "end",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// Orientation selects the axis along which single-step moves apply.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// Options configures a List.
type Options struct {
	Orientation Orientation
	// Cycle wraps single-step moves from one end of the list to the other.
	Cycle bool
	// Size is the number of rows visible at once; <= 0 shows every row.
	Size int
}

// List tracks focus and the visible window over a sequence of Length rows.
type List struct {
	Length         int
	Focus          int
	ViewportOffset int
	Size           int
	Orientation    Orientation
	Cycle          bool
}

// New constructs an empty list.
func New(opts Options) *List {
	return &List{
		Focus:       NoFocus,
		Size:        opts.Size,
		Orientation: opts.Orientation,
		Cycle:       opts.Cycle,
	}
}

// Layout replaces the row count and places focus on the given index. Out of
// range indexes fall back to the first row.
func (l *List) Layout(length, focus int) {
	if length < 0 {
		length = 0
	}
	l.Length = length
	if length == 0 {
		l.Focus = NoFocus
		l.ViewportOffset = 0
		return
	}
	if focus < 0 || focus >= length {
		focus = 0
	}
	l.Focus = focus
	l.EnsureFocusVisible()
}

// FocusIndex returns the focused row or NoFocus.
func (l *List) FocusIndex() int {
	if l.Length == 0 || l.Focus < 0 || l.Focus >= l.Length {
		return NoFocus
	}
	return l.Focus
}

// SetFocus focuses the given row, reporting whether focus changed.
func (l *List) SetFocus(index int) bool {
	if index < 0 || index >= l.Length {
		return false
	}
	old := l.Focus
	l.Focus = index
	l.EnsureFocusVisible()
	return old != l.Focus
}

// Resize changes the visible window size.
func (l *List) Resize(size int) {
	l.Size = size
	l.EnsureFocusVisible()
}

// VisibleRange returns the half-open range of row indexes inside the window.
func (l *List) VisibleRange() (start, end int) {
	if l.Length == 0 {
		return 0, 0
	}
	if l.Size <= 0 {
		return 0, l.Length
	}
	start = l.ViewportOffset
	end = start + l.Size
	if end > l.Length {
		end = l.Length
	}
	return start, end
}

// Move applies a navigation request and reports whether focus changed.
// Single steps along the other axis are accepted but never move.
func (l *List) Move(dir Direction) bool {
	if l.Length == 0 {
		l.Focus = NoFocus
		return false
	}
	var moved bool
	switch dir {
	case Up, Left:
		if !l.onAxis(dir) {
			return false
		}
		moved = l.step(-1)
	case Down, Right:
		if !l.onAxis(dir) {
			return false
		}
		moved = l.step(1)
	case PageUp:
		moved = l.moveBy(-l.pageSize())
	case PageDown:
		moved = l.moveBy(l.pageSize())
	case Home:
		moved = l.moveTo(0)
	case End:
		moved = l.moveTo(l.Length - 1)
	}
	l.EnsureFocusVisible()
	return moved
}

// Wheel translates mouse wheel notches into single-step moves along the
// list's axis. Negative deltas move backwards.
func (l *List) Wheel(delta int) bool {
	if delta == 0 || l.Length == 0 {
		return false
	}
	moved := false
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	for i := 0; i < delta; i++ {
		if l.step(step) {
			moved = true
		}
	}
	l.EnsureFocusVisible()
	return moved
}

func (l *List) onAxis(dir Direction) bool {
	switch dir {
	case Up, Down:
		return l.Orientation == Vertical
	case Left, Right:
		return l.Orientation == Horizontal
	}
	return true
}

func (l *List) step(delta int) bool {
	old := l.Focus
	next := l.Focus + delta
	if l.Focus < 0 {
		next = 0
	}
	switch {
	case next < 0 && l.Cycle:
		next = l.Length - 1
	case next < 0:
		next = 0
	case next >= l.Length && l.Cycle:
		next = 0
	case next >= l.Length:
		next = l.Length - 1
	}
	l.Focus = next
	return old != l.Focus
}

func (l *List) moveTo(index int) bool {
	old := l.Focus
	l.Focus = index
	return old != l.Focus
}

func (l *List) moveBy(delta int) bool {
	old := l.Focus
	if l.Focus < 0 {
		l.Focus = 0
	}
	l.Focus += delta
	if l.Focus < 0 {
		l.Focus = 0
	}
	if l.Focus >= l.Length {
		l.Focus = l.Length - 1
	}
	return l.Focus != old
}

func (l *List) pageSize() int {
	size := l.Size
	if size <= 0 || size > l.Length {
		size = l.Length
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureFocusVisible adjusts the viewport offset so the focused row stays
// inside the window.
func (l *List) EnsureFocusVisible() {
	if l.Length == 0 {
		l.Focus = NoFocus
		l.ViewportOffset = 0
		return
	}
	if l.Focus < 0 {
		l.Focus = 0
	}
	if l.Focus >= l.Length {
		l.Focus = l.Length - 1
	}
	if l.Size <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := l.Length - l.Size
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Focus < l.ViewportOffset {
		l.ViewportOffset = l.Focus
	}
	upper := l.ViewportOffset + l.Size - 1
	if l.Focus > upper {
		l.ViewportOffset = l.Focus - l.Size + 1
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}
