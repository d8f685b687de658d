// Package vehicle defines the vehicle record exchanged with the vehicles API.
//
// A Vehicle is the JSON object returned by GET /vehicles. Only two of its
// fields are ever written back by the client: Person and EstimatedDate, sent
// together as a Patch to PATCH /vehicles/{id}.
//
// # Estimate Dates
//
// Estimated maintenance dates travel as text in a fixed year/day/month layout:
//
//	2024/15/03   // 15 March 2024
//
// The ordering is part of the wire contract and is not ISO 8601. Use
// ParseEstimate and FormatEstimate rather than time.Parse with a guessed
// layout:
//
//	t, err := vehicle.ParseEstimate(v.EstimatedDate)
//	if err != nil {
//	    // no estimate, or text in another layout
//	}
//	patch := vehicle.Patch{Person: "Alice", EstimatedDate: vehicle.FormatEstimate(t)}
package vehicle
