package checklist

const (
	DefaultClassIcon       = "theme-icon theme-icon-checkbox"
	DefaultClassIconActive = "theme-icon theme-icon-checkbox-active"
	DefaultClassChecked    = "checked"

	classItem       = "item"
	classFocus      = "focus"
	classTitle      = "title"
	classBoxWrapper = "checkBoxWrapper"
)

// Classes names the visual classes applied to checkbox indicators and row
// containers. A Classes value is copied into each checklist at construction.
type Classes struct {
	Icon       string
	IconActive string
	Checked    string
}

// DefaultClasses returns the stock class names.
func DefaultClasses() Classes {
	return Classes{
		Icon:       DefaultClassIcon,
		IconActive: DefaultClassIconActive,
		Checked:    DefaultClassChecked,
	}
}

// withDefaults fills empty fields from DefaultClasses.
func (c Classes) withDefaults() Classes {
	def := DefaultClasses()
	if c.Icon == "" {
		c.Icon = def.Icon
	}
	if c.IconActive == "" {
		c.IconActive = def.IconActive
	}
	if c.Checked == "" {
		c.Checked = def.Checked
	}
	return c
}

// Options configures a CheckList.
type Options struct {
	Classes Classes
	Keys    *KeyMap
}
