package models

// Category classifies an itinerary item for display purposes.
type Category string

const (
	CategoryTransport Category = "transport"
	CategoryFood      Category = "food"
	CategoryActivity  Category = "activity"
	CategoryShopping  Category = "shopping"
	CategoryConcert   Category = "concert"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryActivity,
		CategoryFood,
		CategoryShopping,
		CategoryTransport,
		CategoryConcert,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTransport, CategoryFood, CategoryActivity, CategoryShopping, CategoryConcert:
		return true
	}
	return false
}

// Glyph returns a short marker for tables and the TUI.
func (c Category) Glyph() string {
	switch c {
	case CategoryTransport:
		return "✈"
	case CategoryFood:
		return "🍜"
	case CategoryShopping:
		return "🛍"
	case CategoryConcert:
		return "💎"
	default:
		return "🎡"
	}
}

// CostDetail is one expense line attached to an itinerary item. It is owned
// exclusively by its parent item; there is no cross-item sharing.
type CostDetail struct {
	ID     string  `json:"id"`
	Item   string  `json:"item"` // e.g. "Lunch set"
	Amount float64 `json:"amount"`
	Payer  string  `json:"payer"`
}

// ItineraryItem is one scheduled activity within a day.
//
// StartTime and EndTime are wall-clock "HH:MM" strings; EndTime may be empty.
// Duration is always derived, never stored.
type ItineraryItem struct {
	ID           string       `json:"id"`
	StartTime    string       `json:"startTime"`
	EndTime      string       `json:"endTime,omitempty"`
	Activity     string       `json:"activity"`
	Location     string       `json:"location,omitempty"`
	Category     Category     `json:"category,omitempty"`
	LastEditedBy string       `json:"lastEditedBy,omitempty"`
	Costs        []CostDetail `json:"costs,omitempty"`
}

// EffectiveCategory resolves an absent category to the default.
func (i ItineraryItem) EffectiveCategory() Category {
	if i.Category == "" {
		return CategoryActivity
	}
	return i.Category
}

// Clone returns a deep copy of the item.
func (i ItineraryItem) Clone() ItineraryItem {
	out := i
	if i.Costs != nil {
		out.Costs = make([]CostDetail, len(i.Costs))
		copy(out.Costs, i.Costs)
	}
	return out
}

// DaySchedule is one calendar day of the trip. Items within a day carry two
// logical orders: display order (sorted by start time) and manual order (array
// position, used while reordering).
type DaySchedule struct {
	ID        string          `json:"id"`
	DateLabel string          `json:"dateLabel"` // e.g. "12/20 Fri."
	DayLabel  string          `json:"dayLabel"`  // e.g. "Day 1"
	Items     []ItineraryItem `json:"items"`
}

// Clone returns a deep copy of the day.
func (d DaySchedule) Clone() DaySchedule {
	out := d
	out.Items = make([]ItineraryItem, len(d.Items))
	for i, item := range d.Items {
		out.Items[i] = item.Clone()
	}
	return out
}

// CloneSchedule deep-copies a whole schedule document.
func CloneSchedule(days []DaySchedule) []DaySchedule {
	out := make([]DaySchedule, len(days))
	for i, d := range days {
		out[i] = d.Clone()
	}
	return out
}
