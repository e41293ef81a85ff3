package reorder

import (
	"errors"
	"fmt"

	"tripdeck/internal/models"
	"tripdeck/internal/store"
)

// MoveState tracks a conflicting move through its lifecycle: applied
// optimistically, then awaiting confirmation, then committed or rolled back.
type MoveState int

const (
	MoveApplied MoveState = iota
	MoveAwaitingConfirm
	MoveCommitted
	MoveRolledBack
)

// Pending is a conflicting move whose time adjustment has not been decided
// yet. Snapshot holds the day exactly as it was before the move; Cancel
// restores it wholesale.
type Pending struct {
	DayID    string
	Snapshot models.DaySchedule
	Proposal Proposal
	State    MoveState
}

// ErrMoveInFlight is returned when a move is begun on a different day while
// another day's pending move is still awaiting a decision.
var ErrMoveInFlight = errors.New("another reorder is awaiting confirmation")

// Engine applies position moves against the schedule store. At most one
// pending move exists at a time; a new conflicting move on the same day
// replaces the previous one.
type Engine struct {
	store   *store.Store
	pending *Pending
}

func New(st *store.Store) *Engine {
	return &Engine{store: st}
}

// MoveItem relocates itemID within its day to target position and commits
// the new order immediately. When the moved item's times conflict with its
// new neighbors, the pre-move day is staged for rollback and the returned
// Pending carries the suggested time window; the caller must present it and
// then Commit or Cancel. A nil Pending with nil error means the move either
// was a no-op or needed no time adjustment.
func (e *Engine) MoveItem(dayID, itemID string, target int) (*Pending, error) {
	if e.pending != nil && e.pending.DayID != dayID {
		return nil, ErrMoveInFlight
	}

	day, ok := e.store.Day(dayID)
	if !ok {
		return nil, nil
	}

	result := Move(day.Items, itemID, target)
	if !result.Changed {
		return nil, nil
	}

	if result.Proposal == nil {
		e.pending = nil
		if err := e.store.ReplaceDayItems(dayID, result.Items); err != nil {
			return nil, err
		}
		return nil, nil
	}

	// Optimistic commit: the reordered list lands now, the time change waits
	// for the user.
	snapshot := day.Clone()
	if err := e.store.ReplaceDayItems(dayID, result.Items); err != nil {
		return nil, err
	}
	e.pending = &Pending{
		DayID:    dayID,
		Snapshot: snapshot,
		Proposal: *result.Proposal,
		State:    MoveApplied,
	}
	return e.pending, nil
}

// Await marks the pending move as presented to the user.
func (e *Engine) Await() *Pending {
	if e.pending != nil {
		e.pending.State = MoveAwaitingConfirm
	}
	return e.pending
}

// Pending returns the in-flight move, if any.
func (e *Engine) Pending() *Pending {
	return e.pending
}

// Commit persists the user-confirmed item (times possibly edited away from
// the proposal) and clears the staged snapshot.
func (e *Engine) Commit(item models.ItineraryItem) error {
	if e.pending == nil {
		return fmt.Errorf("no reorder awaiting confirmation")
	}
	dayID := e.pending.DayID
	if err := e.store.UpsertItem(dayID, item); err != nil {
		return err
	}
	e.pending.State = MoveCommitted
	e.pending = nil
	return nil
}

// Cancel restores the staged pre-move day, item order and every item's
// times included, and clears the pending move.
func (e *Engine) Cancel() error {
	if e.pending == nil {
		return nil
	}
	if err := e.store.ReplaceDay(e.pending.Snapshot); err != nil {
		return err
	}
	e.pending.State = MoveRolledBack
	e.pending = nil
	return nil
}
