package checklist

// Record is one logical row of checklist data. Records are owned by the
// checklist and shared by pointer with the checked set, so toggling a record
// in place is visible through both.
type Record struct {
	Title string
	Value any
	// ClassName is added to the row container. It is kept even when it
	// equals the checklist's checked class and the row is unchecked.
	ClassName string
	State     bool
	// DefaultState is the State captured at the most recent full data load
	// and restored by ResetData.
	DefaultState bool
}
