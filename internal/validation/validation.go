// Package validation checks a schedule document for integrity problems:
// malformed times, missing required fields, duplicate ids, unknown
// categories, and days out of display order. It reports; it never mutates.
package validation

import (
	"fmt"

	"tripdeck/internal/models"
	"tripdeck/internal/timeutil"
)

// ConflictType classifies a detected problem.
type ConflictType string

const (
	ConflictInvalidTime     ConflictType = "invalid_time"
	ConflictMissingActivity ConflictType = "missing_activity"
	ConflictMissingStart    ConflictType = "missing_start"
	ConflictEndBeforeStart  ConflictType = "end_before_start"
	ConflictDuplicateItemID ConflictType = "duplicate_item_id"
	ConflictUnknownCategory ConflictType = "unknown_category"
	ConflictDayOutOfOrder   ConflictType = "day_out_of_order"
	ConflictNegativeAmount  ConflictType = "negative_amount"
	ConflictDuplicateCostID ConflictType = "duplicate_cost_id"
)

// Conflict is one detected problem.
type Conflict struct {
	Type        ConflictType
	Description string
	DayID       string
	ItemID      string
}

// Result collects every conflict found in one pass.
type Result struct {
	Conflicts []Conflict
}

// HasConflicts reports whether anything was found.
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable summary.
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No problems detected."
	}
	report := "Problems detected:\n"
	for _, c := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", c.Description)
	}
	return report
}

// Validator validates schedule documents.
type Validator struct{}

// New creates a new Validator.
func New() *Validator {
	return &Validator{}
}

// ValidateSchedule checks every day and item in the document. Item ids are
// expected to be unique across the whole trip, not just within a day,
// because cost operations look items up globally.
func (v *Validator) ValidateSchedule(days []models.DaySchedule) Result {
	result := Result{Conflicts: []Conflict{}}

	seenItems := make(map[string]string) // item id -> day id
	for _, d := range days {
		prevStart := ""
		for _, item := range d.Items {
			if owner, dup := seenItems[item.ID]; dup {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDuplicateItemID,
					Description: fmt.Sprintf("item id %q appears in both %s and %s", item.ID, owner, d.ID),
					DayID:       d.ID,
					ItemID:      item.ID,
				})
			} else {
				seenItems[item.ID] = d.ID
			}

			result.Conflicts = append(result.Conflicts, v.validateItem(d.ID, item)...)

			if prevStart != "" && item.StartTime != "" &&
				timeutil.Compare(item.StartTime, prevStart) < 0 {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDayOutOfOrder,
					Description: fmt.Sprintf("%s: item %q (%s) is listed after a later start time", d.ID, item.Activity, item.StartTime),
					DayID:       d.ID,
					ItemID:      item.ID,
				})
			}
			if item.StartTime != "" {
				prevStart = item.StartTime
			}
		}
	}

	return result
}

func (v *Validator) validateItem(dayID string, item models.ItineraryItem) []Conflict {
	var conflicts []Conflict

	add := func(typ ConflictType, format string, args ...any) {
		conflicts = append(conflicts, Conflict{
			Type:        typ,
			Description: fmt.Sprintf("%s: %s", dayID, fmt.Sprintf(format, args...)),
			DayID:       dayID,
			ItemID:      item.ID,
		})
	}

	if item.Activity == "" {
		add(ConflictMissingActivity, "item %s has no activity", item.ID)
	}

	if item.StartTime == "" {
		add(ConflictMissingStart, "item %q has no start time", item.Activity)
	} else if !timeutil.IsHHMM(item.StartTime) {
		add(ConflictInvalidTime, "item %q has malformed start time %q", item.Activity, item.StartTime)
	}

	if item.EndTime != "" {
		if !timeutil.IsHHMM(item.EndTime) {
			add(ConflictInvalidTime, "item %q has malformed end time %q", item.Activity, item.EndTime)
		} else if timeutil.IsHHMM(item.StartTime) && timeutil.Compare(item.EndTime, item.StartTime) < 0 {
			add(ConflictEndBeforeStart, "item %q ends (%s) before it starts (%s)", item.Activity, item.EndTime, item.StartTime)
		}
	}

	if item.Category != "" && !item.Category.Valid() {
		add(ConflictUnknownCategory, "item %q has unknown category %q", item.Activity, item.Category)
	}

	seenCosts := make(map[string]bool)
	for _, c := range item.Costs {
		if c.Amount < 0 {
			add(ConflictNegativeAmount, "cost %q on %q has negative amount %v", c.Item, item.Activity, c.Amount)
		}
		if seenCosts[c.ID] {
			add(ConflictDuplicateCostID, "cost id %q duplicated on %q", c.ID, item.Activity)
		}
		seenCosts[c.ID] = true
	}

	return conflicts
}
