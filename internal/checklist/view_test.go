package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementClassList(t *testing.T) {
	e := &Element{}
	e.SetClass("  item   danger ")
	assert.Equal(t, "item danger", e.Class())

	e.AddClass("checked item")
	assert.Equal(t, "item danger checked", e.Class())
	assert.True(t, e.HasClass("checked danger"))
	assert.False(t, e.HasClass("focus"))
	assert.False(t, e.HasClass(""))

	e.RemoveClass("danger missing")
	assert.Equal(t, "item checked", e.Class())
}

func TestRecyclerBuildsOncePerSlot(t *testing.T) {
	r := newRecycler(DefaultClasses())
	v := r.Slot(1)
	assert.Len(t, r.Pool(), 2)
	assert.False(t, v.Built())

	r.Render(v, &Record{Title: "first", Value: 1, State: true}, 4, true)
	assert.True(t, v.Built())
	assert.Equal(t, 1, r.Builds())
	assert.Equal(t, 4, v.Index)
	assert.True(t, v.Checked())
	assert.Equal(t, 1, v.Value)
	assert.Equal(t, "item focus checked", v.Container.Class())

	title := v.Title
	r.Render(v, &Record{Title: "second", Value: "x"}, 5, false)
	assert.Same(t, title, v.Title)
	assert.Equal(t, "second", v.Title.Text())
	assert.Equal(t, DefaultClassIcon, v.Indicator.Class())
	assert.Equal(t, "item", v.Container.Class())
	assert.Equal(t, 1, r.Builds())

	assert.Nil(t, r.Slot(-1))
	r.Render(nil, &Record{}, 0, false)
}
