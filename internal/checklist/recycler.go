package checklist

// Recycler hands out the pool of row views and renders records into them.
// A view's structure is built at most once; later renders only touch the
// cached title text, indicator class, and container class.
type Recycler struct {
	classes Classes
	views   []*View
	builds  int
}

func newRecycler(classes Classes) *Recycler {
	return &Recycler{classes: classes}
}

// Slot returns the view for a visible slot, creating it on first use.
func (r *Recycler) Slot(slot int) *View {
	if slot < 0 {
		return nil
	}
	for len(r.views) <= slot {
		r.views = append(r.views, &View{
			Slot:      len(r.views),
			Index:     -1,
			Container: &Element{class: classItem},
		})
	}
	return r.views[slot]
}

// Pool returns every view created so far, in slot order.
func (r *Recycler) Pool() []*View {
	return r.views
}

// Builds returns how many times view structure has been constructed.
func (r *Recycler) Builds() int {
	return r.builds
}

// Render binds rec at store index to v.
func (r *Recycler) Render(v *View, rec *Record, index int, focused bool) {
	if v == nil {
		return
	}
	if rec == nil {
		rec = &Record{}
	}
	v.Index = index
	v.className = rec.ClassName
	v.focused = focused

	if v.built {
		v.Title.SetText(rec.Title)
	} else {
		r.build(v, rec)
	}
	r.applyState(v, rec.State)
	v.State = rec.State
	v.Value = rec.Value
}

func (r *Recycler) build(v *View, rec *Record) {
	v.Indicator = &Element{}
	v.Wrapper = &Element{class: classBoxWrapper}
	v.Title = &Element{class: classTitle, text: rec.Title}
	v.built = true
	r.builds++
}

// applyState maps a checked flag onto a view's appearance. Both rendering
// and toggling go through here so they always agree. The container class is
// recomposed from the bound record's class name, so unchecking never strips
// a record class that happens to equal the checked class.
func (r *Recycler) applyState(v *View, state bool) {
	class := classItem
	if v.className != "" {
		class += " " + v.className
	}
	if v.focused {
		class += " " + classFocus
	}
	v.Container.SetClass(class)
	if state {
		v.Container.AddClass(r.classes.Checked)
	}
	if v.Indicator == nil {
		return
	}
	if state {
		v.Indicator.SetClass(r.classes.IconActive)
	} else {
		v.Indicator.SetClass(r.classes.Icon)
	}
}
