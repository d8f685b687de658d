package board

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/fleetmaint/internal/logging"
	"github.com/muurk/fleetmaint/internal/vehicle"
)

// Gateway is the remote side of the board: one list call, one patch call.
// *gateway.Client implements it.
type Gateway interface {
	ListVehicles(ctx context.Context) ([]vehicle.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, patch vehicle.Patch) error
}

// Phase is the edit lifecycle state
type Phase int

const (
	// PhaseIdle: no dialog; the list may be loading or loaded
	PhaseIdle Phase = iota
	// PhaseEditing: a vehicle is selected and its working copy is mutable
	PhaseEditing
	// PhaseSubmitting: a patch (or the reload that follows it) is in flight
	PhaseSubmitting
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// State machine violations
var (
	ErrNotEditing      = errors.New("no vehicle is being edited")
	ErrNoSelection     = errors.New("no vehicle selected")
	ErrSubmitInFlight  = errors.New("a save is already in progress")
	ErrIndexOutOfRange = errors.New("vehicle index out of range")
	ErrUnknownVehicle  = errors.New("vehicle not found")
)

// Submission is what BeginSubmit hands to the caller to send
type Submission struct {
	VehicleID string
	DisplayID int
	Patch     vehicle.Patch
}

// Board is the view-state container: the fetched list, the selection with
// its working copies, and the edit phase. All mutation goes through its
// methods so "editing implies a selection" always holds.
//
// A Board is not safe for concurrent use; it is driven from one event loop.
type Board struct {
	list  ListState
	edit  EditState
	phase Phase

	// reloadPending is set between a successful patch and the list reload
	reloadPending bool
	lastErr       error

	now func() time.Time
}

// Option configures a Board
type Option func(*Board)

// WithClock overrides the clock used to seed a missing estimate date
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		b.now = now
	}
}

// New creates an idle board with an empty, unfulfilled list
func New(opts ...Option) *Board {
	b := &Board{
		list: ListState{vehicles: []vehicle.Vehicle{}},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load fetches the list once and applies the result. The error is returned
// for the caller's information; the board has already absorbed it.
func (b *Board) Load(ctx context.Context, gw Gateway) error {
	vehicles, err := gw.ListVehicles(ctx)
	b.ApplyLoad(vehicles, err)
	return err
}

// ApplyLoad applies a completed fetch. It completes a pending post-save
// reload, returning the board to idle.
func (b *Board) ApplyLoad(vehicles []vehicle.Vehicle, err error) {
	if err != nil {
		logging.Warn("Vehicle list load failed", zap.Error(err))
	} else {
		logging.Info("Vehicle list loaded", zap.Int("count", len(vehicles)))
	}

	b.list.Replace(vehicles, err)

	if b.reloadPending {
		b.reloadPending = false
		b.phase = PhaseIdle
	}

	b.edit.rebind(&b.list, b.DialogVisible())
}

// Activate selects the i-th vehicle and opens the dialog, reseeding the
// working copy from the record.
func (b *Board) Activate(i int) error {
	if b.phase == PhaseSubmitting {
		return ErrSubmitInFlight
	}

	v, ok := b.list.at(i)
	if !ok {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	b.edit.Select(v, b.now())
	b.phase = PhaseEditing
	b.lastErr = nil

	logging.Debug("Vehicle selected",
		zap.String("vehicle_id", v.ID),
		zap.Int("display_id", v.DisplayID),
	)
	return nil
}

// ActivateID is Activate by vehicle id
func (b *Board) ActivateID(id string) error {
	_, i := b.list.find(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownVehicle, id)
	}
	return b.Activate(i)
}

// Reopen shows the dialog again for the remembered selection without
// reseeding, so the last edited values come back.
func (b *Board) Reopen() error {
	switch b.phase {
	case PhaseSubmitting:
		return ErrSubmitInFlight
	case PhaseEditing:
		return nil
	}
	if !b.edit.HasSelection() {
		return ErrNoSelection
	}
	b.phase = PhaseEditing
	return nil
}

// Dismiss closes the dialog without saving. The working copy is kept.
func (b *Board) Dismiss() error {
	if b.phase == PhaseSubmitting {
		return ErrSubmitInFlight
	}
	b.phase = PhaseIdle
	return nil
}

// Clear drops the selection and its working copy
func (b *Board) Clear() error {
	if b.phase == PhaseSubmitting {
		return ErrSubmitInFlight
	}
	b.edit.Clear()
	b.phase = PhaseIdle
	return nil
}

// SetPerson updates the working person
func (b *Board) SetPerson(person string) error {
	if err := b.requireEditing(); err != nil {
		return err
	}
	b.edit.SetPerson(person)
	return nil
}

// SetDate updates the working date
func (b *Board) SetDate(date time.Time) error {
	if err := b.requireEditing(); err != nil {
		return err
	}
	b.edit.SetDate(date)
	return nil
}

// BeginSubmit moves to submitting and returns the patch to send.
// Only one submission can be in flight.
func (b *Board) BeginSubmit() (Submission, error) {
	if err := b.requireEditing(); err != nil {
		return Submission{}, err
	}

	selected, _ := b.edit.Selected()
	sub := Submission{
		VehicleID: selected.ID,
		DisplayID: selected.DisplayID,
		Patch:     b.edit.Patch(),
	}

	b.phase = PhaseSubmitting
	b.lastErr = nil

	logging.Info("Submitting vehicle update",
		zap.String("vehicle_id", sub.VehicleID),
		zap.String("person", sub.Patch.Person),
		zap.String("estimated_date", sub.Patch.EstimatedDate),
	)
	return sub, nil
}

// CompleteSubmit records the patch outcome. On success it returns true and
// the caller must reload the list; the board stays submitting until that
// reload is applied. On failure the dialog stays open with its values.
func (b *Board) CompleteSubmit(err error) (reload bool) {
	if b.phase != PhaseSubmitting || b.reloadPending {
		return false
	}

	selected, _ := b.edit.Selected()

	if err != nil {
		logging.Error("Vehicle update failed",
			zap.String("vehicle_id", selected.ID),
			zap.Error(err),
		)
		b.lastErr = err
		b.phase = PhaseEditing
		return false
	}

	logging.Info("Vehicle update accepted", zap.String("vehicle_id", selected.ID))
	b.reloadPending = true
	return true
}

// Submit runs the whole save cycle synchronously: patch, then exactly one
// reload on success. The returned error is the patch error, if any. A failed
// reload still counts as a save; the selection is then cleared, so callers
// report from the returned Submission.
func (b *Board) Submit(ctx context.Context, gw Gateway) (Submission, error) {
	sub, err := b.BeginSubmit()
	if err != nil {
		return Submission{}, err
	}

	updateErr := gw.UpdateVehicle(ctx, sub.VehicleID, sub.Patch)
	if !b.CompleteSubmit(updateErr) {
		return sub, updateErr
	}

	_ = b.Load(ctx, gw)
	return sub, nil
}

func (b *Board) requireEditing() error {
	switch b.phase {
	case PhaseEditing:
		return nil
	case PhaseSubmitting:
		return ErrSubmitInFlight
	default:
		return ErrNotEditing
	}
}

// Phase returns the current edit phase
func (b *Board) Phase() Phase {
	return b.phase
}

// DialogVisible reports whether the edit dialog is shown
func (b *Board) DialogVisible() bool {
	return b.phase == PhaseEditing || b.phase == PhaseSubmitting
}

// ReloadPending reports whether a saved patch is waiting for its list reload
func (b *Board) ReloadPending() bool {
	return b.reloadPending
}

// LastError returns the most recent update failure since the last selection
func (b *Board) LastError() error {
	return b.lastErr
}

// Vehicles returns a copy of the current list
func (b *Board) Vehicles() []vehicle.Vehicle {
	return b.list.Vehicles()
}

// Len returns the number of listed vehicles
func (b *Board) Len() int {
	return b.list.Len()
}

// IsFulfilled reports whether a fetch attempt has completed
func (b *Board) IsFulfilled() bool {
	return b.list.IsFulfilled()
}

// IsLoading reports whether no fetch attempt has completed yet
func (b *Board) IsLoading() bool {
	return b.list.IsLoading()
}

// Selected returns the targeted vehicle, if any
func (b *Board) Selected() (vehicle.Vehicle, bool) {
	return b.edit.Selected()
}

// SelectedIndex returns the list position of the targeted vehicle, or -1
func (b *Board) SelectedIndex() int {
	v, ok := b.edit.Selected()
	if !ok {
		return -1
	}
	_, i := b.list.find(v.ID)
	return i
}

// EditedPerson returns the working person
func (b *Board) EditedPerson() string {
	return b.edit.Person()
}

// EditedDate returns the working date
func (b *Board) EditedDate() time.Time {
	return b.edit.Date()
}
