package checklist

import "strings"

// Element is a minimal visual node: a space separated class list and text.
type Element struct {
	class string
	text  string
}

// Class returns the element's full class string.
func (e *Element) Class() string {
	return e.class
}

// SetClass replaces the class string.
func (e *Element) SetClass(class string) {
	e.class = strings.Join(strings.Fields(class), " ")
}

// HasClass reports whether every class in names is present.
func (e *Element) HasClass(names string) bool {
	fields := strings.Fields(names)
	if len(fields) == 0 {
		return false
	}
	have := strings.Fields(e.class)
	for _, want := range fields {
		found := false
		for _, c := range have {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// AddClass appends each class in names that is not already present.
func (e *Element) AddClass(names string) {
	have := strings.Fields(e.class)
	for _, name := range strings.Fields(names) {
		if !containsField(have, name) {
			have = append(have, name)
		}
	}
	e.class = strings.Join(have, " ")
}

// RemoveClass drops each class in names.
func (e *Element) RemoveClass(names string) {
	drop := strings.Fields(names)
	have := strings.Fields(e.class)
	kept := have[:0]
	for _, c := range have {
		if !containsField(drop, c) {
			kept = append(kept, c)
		}
	}
	e.class = strings.Join(kept, " ")
}

// Text returns the element's text content.
func (e *Element) Text() string {
	return e.text
}

// SetText replaces the text content.
func (e *Element) SetText(text string) {
	e.text = text
}

func containsField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

// View is the reusable visual object bound to one visible slot. Its Title and
// Indicator sub-elements are built once, on first render, and only have their
// content updated afterwards.
type View struct {
	// Slot is the view's position inside the visible window.
	Slot int
	// Index is the store index of the record currently displayed, or -1.
	Index int

	Container *Element
	Wrapper   *Element
	Indicator *Element
	Title     *Element

	State bool
	Value any

	className string
	focused   bool
	built     bool
}

// Built reports whether the view's structure has been constructed.
func (v *View) Built() bool {
	return v.built
}

// Checked reports whether the view currently shows the checked state. The
// container's checked class alone is not conclusive when a record's class
// name equals it.
func (v *View) Checked() bool {
	return v.State
}
