// Package board keeps the list, the selection and the edit form consistent
// across the fetch → select → edit → submit → refetch cycle.
//
// A Board has three slots:
//   - ListState: the fetched vehicles plus a fulfilment flag
//   - EditState: the targeted vehicle and working copies of person and date
//   - Phase: idle, editing or submitting
//
// # Lifecycle
//
//	b := board.New()
//	_ = b.Load(ctx, client)          // list replaced wholesale, failure → empty
//
//	_ = b.Activate(0)                // editing; working copy seeded from record
//	_ = b.SetPerson("Bob")
//	_ = b.SetDate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local))
//
//	_, err := b.Submit(ctx, client)  // submitting → PATCH → one GET → idle
//
// Asynchronous front-ends split Submit into BeginSubmit, CompleteSubmit and
// ApplyLoad so the network calls can run off the event loop.
//
// # Kept behaviours
//
// A vehicle without an estimate opens with today's date. Dismissing the
// dialog keeps the working copy; Reopen shows it again. A failed fetch looks
// exactly like an empty fleet. A failed save is logged and leaves the dialog
// open with the user's values.
//
// # Concurrency
//
// Only one save may be in flight: BeginSubmit returns ErrSubmitInFlight while
// submitting. Loads are not de-duplicated; when two overlap, whichever
// completes last wins.
package board
