// Package server implements a small vehicles API for local development and
// end-to-end tests of the fleetmaint client.
//
// # Endpoints
//
//	GET   /vehicles        JSON array of vehicles in insertion order
//	PATCH /vehicles/{id}   body {"person": "...", "estimatedDate": "YYYY/DD/MM"}
//	GET   /health          {"alive": true}
//
// PATCH merges only person and estimatedDate into the stored record and
// answers with the updated vehicle. An unparseable date is rejected with 400;
// an empty one clears the estimate. Unknown ids give 404.
//
// Vehicles live in memory. They are seeded either from DefaultSeed or from a
// JSON or YAML file passed to LoadSeed.
package server
