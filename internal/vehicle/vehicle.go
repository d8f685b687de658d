package vehicle

import "strings"

// Vehicle is a single vehicle as delivered by the vehicles API.
//
// Optional fields use their zero value for "absent", except Km where zero is a
// real reading and nil means unknown.
type Vehicle struct {
	ID        string `json:"id" yaml:"id"`               // Server-assigned opaque identifier
	DisplayID int    `json:"displayId" yaml:"displayId"` // Human-facing label, not unique

	Make        string `json:"make" yaml:"make"`
	Model       string `json:"model" yaml:"model"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Km    *float64 `json:"km,omitempty" yaml:"km,omitempty"`
	Image string   `json:"image,omitempty" yaml:"image,omitempty"` // Image URI, empty renders a placeholder

	// EstimatedDate is the pending maintenance estimate in EstimateLayout.
	EstimatedDate string `json:"estimatedDate,omitempty" yaml:"estimatedDate,omitempty"`
	Person        string `json:"person,omitempty" yaml:"person,omitempty"`
}

// Patch is the partial update sent for a vehicle. The server merges it into
// the stored record.
type Patch struct {
	Person        string `json:"person"`
	EstimatedDate string `json:"estimatedDate"`
}

// Title returns "Make Model".
func (v Vehicle) Title() string {
	return strings.TrimSpace(v.Make + " " + v.Model)
}

// HasEstimate reports whether the vehicle carries a pending maintenance estimate.
func (v Vehicle) HasEstimate() bool {
	return strings.TrimSpace(v.EstimatedDate) != ""
}

// KnownKm returns the odometer reading and whether it is known.
func (v Vehicle) KnownKm() (float64, bool) {
	if v.Km == nil {
		return 0, false
	}
	return *v.Km, true
}

// Apply merges a patch into the vehicle.
func (v *Vehicle) Apply(p Patch) {
	v.Person = p.Person
	v.EstimatedDate = p.EstimatedDate
}

// Km is a convenience for building records with a known reading.
func Km(km float64) *float64 {
	return &km
}
