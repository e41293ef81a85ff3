// Package reorder moves an itinerary item to a new position within its day
// and detects whether the item's declared times now collide with its new
// neighbors. Reordering and re-timing are one atomic user intention: a
// conflicting move is applied optimistically, and cancelling the follow-up
// time prompt rolls the whole day back.
package reorder

import (
	"fmt"

	"tripdeck/internal/models"
	"tripdeck/internal/timeutil"
)

// Proposal is a suggested time window for a moved item whose declared times
// conflict with its new neighbors. It is presented as an editable suggestion,
// never auto-applied.
type Proposal struct {
	ItemID   string
	NewStart string // HH:MM
	NewEnd   string // HH:MM
}

// Result describes the outcome of a position move.
type Result struct {
	Changed  bool
	Items    []models.ItineraryItem
	Moved    models.ItineraryItem
	Proposal *Proposal // nil when the moved item fits between its neighbors
}

// Move relocates the item with itemID to target position, preserving the
// relative order of every other item. Unknown ids and no-op moves return
// Changed=false. target is clamped to the list bounds.
func Move(items []models.ItineraryItem, itemID string, target int) Result {
	src := -1
	for i, item := range items {
		if item.ID == itemID {
			src = i
			break
		}
	}
	if src == -1 {
		return Result{Items: items}
	}

	if target < 0 {
		target = 0
	}
	if target > len(items)-1 {
		target = len(items) - 1
	}
	if target == src {
		return Result{Items: items}
	}

	next := make([]models.ItineraryItem, 0, len(items))
	for i, item := range items {
		if i != src {
			next = append(next, item)
		}
	}
	next = append(next[:target], append([]models.ItineraryItem{items[src]}, next[target:]...)...)

	moved := next[target]
	result := Result{Changed: true, Items: next, Moved: moved}

	start, err := timeutil.Minutes(moved.StartTime)
	if err != nil {
		// Well-formed times are enforced at the form boundary; without a
		// parseable start there is nothing to compare.
		return result
	}
	end := start
	if moved.EndTime != "" {
		if e, err := timeutil.Minutes(moved.EndTime); err == nil {
			end = e
		}
	}
	duration := end - start

	// Neighbor bounds. A missing predecessor is unbounded low, a missing
	// successor unbounded high, so an item moved to a list edge can never
	// conflict on that side.
	hasPrev := target > 0
	hasNext := target < len(next)-1

	pEnd := 0
	if hasPrev {
		prev := next[target-1]
		bound := prev.EndTime
		if bound == "" {
			bound = prev.StartTime
		}
		if m, err := timeutil.Minutes(bound); err == nil {
			pEnd = m
		} else {
			hasPrev = false
		}
	}

	nStart := 0
	if hasNext {
		if m, err := timeutil.Minutes(next[target+1].StartTime); err == nil {
			nStart = m
		} else {
			hasNext = false
		}
	}

	// Conflict iff the declared start falls outside [pEnd, nStart).
	tooEarly := hasPrev && start < pEnd
	tooLate := hasNext && start >= nStart
	if !tooEarly && !tooLate {
		return result
	}

	newStart := start
	if tooEarly {
		newStart = pEnd
	}
	if tooLate {
		newStart = nStart - duration
		if newStart < 0 {
			newStart = 0
		}
	}
	// With neighbors on both sides the predecessor boundary wins: if the
	// clamped window still overlaps the successor, snap to the predecessor.
	if hasPrev && hasNext && newStart+duration > nStart {
		newStart = pEnd
	}

	result.Proposal = &Proposal{
		ItemID:   moved.ID,
		NewStart: timeutil.HHMM(newStart),
		NewEnd:   timeutil.HHMM(newStart + duration),
	}
	return result
}

// Position returns the index of an item within its day's manual order.
func Position(items []models.ItineraryItem, itemID string) (int, error) {
	for i, item := range items {
		if item.ID == itemID {
			return i, nil
		}
	}
	return 0, fmt.Errorf("item not found: %s", itemID)
}
