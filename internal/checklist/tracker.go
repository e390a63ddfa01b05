package checklist

// Tracker owns the ordered set of currently checked records.
//
// A bulk rebuild orders records by store index. Incremental toggles append
// newly checked records at the end and remove unchecked ones by identity, so
// after any toggle the order reflects toggle history rather than index order.
type Tracker struct {
	items []*Record
}

// Rebuild replaces the set with the checked records of rows, in index order.
// A record that appears at several indices is tracked once, at its first.
func (t *Tracker) Rebuild(rows []*Record) {
	t.items = make([]*Record, 0, len(rows))
	seen := make(map[*Record]struct{}, len(rows))
	for _, r := range rows {
		if r == nil || !r.State {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		t.items = append(t.items, r)
	}
}

// Add appends r unless it is already tracked.
func (t *Tracker) Add(r *Record) {
	if r == nil || t.indexOf(r) >= 0 {
		return
	}
	t.items = append(t.items, r)
}

// Remove drops r from the set. Records that are not tracked are ignored.
func (t *Tracker) Remove(r *Record) {
	idx := t.indexOf(r)
	if idx < 0 {
		return
	}
	// cap is clipped so callers holding the previous slice keep their view
	t.items = append(t.items[:idx:idx], t.items[idx+1:]...)
}

// Contains reports whether r is tracked.
func (t *Tracker) Contains(r *Record) bool {
	return t.indexOf(r) >= 0
}

// Len returns the number of checked records.
func (t *Tracker) Len() int {
	return len(t.items)
}

// Items returns the checked records. The slice is shared with the tracker.
func (t *Tracker) Items() []*Record {
	return t.items
}

func (t *Tracker) indexOf(r *Record) int {
	if r == nil {
		return -1
	}
	for i, item := range t.items {
		if item == r {
			return i
		}
	}
	return -1
}
