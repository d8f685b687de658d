package board

import (
	"time"

	"github.com/muurk/fleetmaint/internal/vehicle"
)

// EditState tracks which vehicle is targeted for editing and the working
// copies of its editable fields.
//
// selected points into the ListState that owns the record; it is re-bound
// whenever the list is replaced.
type EditState struct {
	selected *vehicle.Vehicle
	person   string
	date     time.Time
}

// Select targets v and seeds the working copies from it. A missing or
// unparsable estimate seeds the date with now, so a vehicle without an
// estimate opens with today's date rather than an empty field.
func (e *EditState) Select(v *vehicle.Vehicle, now time.Time) {
	if v == nil {
		e.Clear()
		return
	}

	e.selected = v
	e.person = v.Person

	date, err := vehicle.ParseEstimate(v.EstimatedDate)
	if err != nil {
		date = now
	}
	e.date = date
}

// SetPerson replaces the working person. No validation.
func (e *EditState) SetPerson(person string) {
	e.person = person
}

// SetDate replaces the working date. No validation.
func (e *EditState) SetDate(date time.Time) {
	e.date = date
}

// Clear returns to "no selection"
func (e *EditState) Clear() {
	e.selected = nil
	e.person = ""
	e.date = time.Time{}
}

// HasSelection reports whether a vehicle is targeted
func (e *EditState) HasSelection() bool {
	return e.selected != nil
}

// Selected returns a copy of the targeted vehicle
func (e *EditState) Selected() (vehicle.Vehicle, bool) {
	if e.selected == nil {
		return vehicle.Vehicle{}, false
	}
	return *e.selected, true
}

// Person returns the working person
func (e *EditState) Person() string {
	return e.person
}

// Date returns the working date
func (e *EditState) Date() time.Time {
	return e.date
}

// Patch builds the wire patch from the working copies
func (e *EditState) Patch() vehicle.Patch {
	return vehicle.Patch{
		Person:        e.person,
		EstimatedDate: vehicle.FormatEstimate(e.date),
	}
}

// rebind points the selection at the record with the same id in list.
// When the record is gone the selection is cleared, unless keep is set (an
// open dialog keeps its target until it closes).
func (e *EditState) rebind(list *ListState, keep bool) {
	if e.selected == nil {
		return
	}
	if v, _ := list.find(e.selected.ID); v != nil {
		e.selected = v
		return
	}
	if keep {
		detached := *e.selected
		e.selected = &detached
		return
	}
	e.Clear()
}
