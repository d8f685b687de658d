// Package gateway is the HTTP client for the vehicles API.
//
// It performs the only I/O of the application: listing vehicles and patching
// the two editable fields of one vehicle.
//
//	client := gateway.NewClient("https://api.example.com")
//
//	vehicles, err := client.ListVehicles(ctx)      // GET   {base}/vehicles
//	err = client.UpdateVehicle(ctx, "a1", vehicle.Patch{
//	    Person:        "Bob",
//	    EstimatedDate: "2025/01/01",
//	})                                              // PATCH {base}/vehicles/a1
//
// # Error Handling
//
// Failures are *GatewayError values. Callers branch on Kind only:
//
//	if gateway.IsFetchFailed(err) { ... }
//	if gateway.IsUpdateFailed(err) { ... }
//
// Cause (network, timeout, status, decode, request) is kept for logs.
//
// # Timeouts and Retries
//
// There are none by default. A hung request blocks until the caller's context
// is cancelled or SetTimeout has been used.
package gateway
