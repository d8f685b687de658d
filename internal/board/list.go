package board

import (
	"go.uber.org/zap"

	"github.com/muurk/fleetmaint/internal/logging"
	"github.com/muurk/fleetmaint/internal/vehicle"
)

// ListState holds the fetched collection and whether a fetch attempt has
// completed. The zero value is empty and unfulfilled.
type ListState struct {
	vehicles  []vehicle.Vehicle
	fulfilled bool
}

// Replace swaps in the result of a fetch attempt. A failed attempt leaves an
// empty, fulfilled list; previous entries are never kept.
func (l *ListState) Replace(vehicles []vehicle.Vehicle, err error) {
	l.fulfilled = true

	if err != nil {
		l.vehicles = []vehicle.Vehicle{}
		return
	}

	l.vehicles = make([]vehicle.Vehicle, len(vehicles))
	copy(l.vehicles, vehicles)

	seen := make(map[string]struct{}, len(l.vehicles))
	for _, v := range l.vehicles {
		if _, dup := seen[v.ID]; dup {
			logging.Warn("Duplicate vehicle id in list response", zap.String("vehicle_id", v.ID))
		}
		seen[v.ID] = struct{}{}
	}
}

// IsFulfilled reports whether a fetch attempt (success or failure) has completed
func (l *ListState) IsFulfilled() bool {
	return l.fulfilled
}

// IsLoading is the inverse of IsFulfilled
func (l *ListState) IsLoading() bool {
	return !l.fulfilled
}

// Len returns the number of vehicles
func (l *ListState) Len() int {
	return len(l.vehicles)
}

// Vehicles returns a copy of the collection in server order
func (l *ListState) Vehicles() []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, len(l.vehicles))
	copy(out, l.vehicles)
	return out
}

// at returns a reference to the i-th record
func (l *ListState) at(i int) (*vehicle.Vehicle, bool) {
	if i < 0 || i >= len(l.vehicles) {
		return nil, false
	}
	return &l.vehicles[i], true
}

// find returns a reference to the record with the given id and its index
func (l *ListState) find(id string) (*vehicle.Vehicle, int) {
	for i := range l.vehicles {
		if l.vehicles[i].ID == id {
			return &l.vehicles[i], i
		}
	}
	return nil, -1
}
