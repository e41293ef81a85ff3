package expenses

import (
	"strings"
	"testing"

	"tripdeck/internal/models"
)

func testDays() []models.DaySchedule {
	return []models.DaySchedule{{
		ID:       "day1",
		DayLabel: "Day 1",
		Items: []models.ItineraryItem{{
			ID:       "i1",
			Activity: "Lunch",
			Costs: []models.CostDetail{
				{ID: "c1", Item: "Ramen set", Amount: 1200, Payer: "A"},
				{ID: "c2", Item: "Gyoza", Amount: 300},
			},
		}},
	}}
}

func TestViewListsEntriesAndPayerTotals(t *testing.T) {
	m := New(80, 24)
	m.SetDays(testDays(), "JPY")

	view := m.View()
	for _, want := range []string{"Ramen set", "Trip total: ¥1500", "¥1200", "Unknown"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewEmptyWithoutCosts(t *testing.T) {
	m := New(80, 24)
	m.SetDays([]models.DaySchedule{{ID: "day1"}}, "JPY")

	if got := m.View(); got != "No costs recorded yet." {
		t.Errorf("empty view = %q", got)
	}
}
