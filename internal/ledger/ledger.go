// Package ledger aggregates the cost entries attached to itinerary items:
// trip-wide flattening, totals, and a by-payer breakdown. Amounts live in the
// document as plain numbers in the trip's selected currency; go-money
// supplies symbol and fraction metadata at the display boundary.
package ledger

import (
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"

	"tripdeck/internal/models"
)

// UnknownPayer is the bucket for cost entries with a missing payer.
const UnknownPayer = "Unknown"

// Entry is one cost line annotated with where in the trip it was incurred.
type Entry struct {
	models.CostDetail
	DayLabel string
	Activity string
	ItemID   string
}

// PayerTotal is one payer's summed spending.
type PayerTotal struct {
	Payer  string
	Amount float64
}

// Flatten collects every cost entry across every item and day, in document
// order.
func Flatten(days []models.DaySchedule) []Entry {
	var all []Entry
	for _, d := range days {
		for _, item := range d.Items {
			for _, c := range item.Costs {
				all = append(all, Entry{
					CostDetail: c,
					DayLabel:   d.DayLabel,
					Activity:   item.Activity,
					ItemID:     item.ID,
				})
			}
		}
	}
	return all
}

// Total sums every cost amount across the whole trip.
func Total(days []models.DaySchedule) float64 {
	var sum float64
	for _, e := range Flatten(days) {
		sum += e.Amount
	}
	return sum
}

// ItemTotal sums one item's own cost list.
func ItemTotal(item models.ItineraryItem) float64 {
	var sum float64
	for _, c := range item.Costs {
		sum += c.Amount
	}
	return sum
}

// ByPayer groups cost amounts by payer, ordered by each payer's first
// occurrence. An empty payer lands in the UnknownPayer bucket.
func ByPayer(days []models.DaySchedule) []PayerTotal {
	index := make(map[string]int)
	var totals []PayerTotal
	for _, e := range Flatten(days) {
		payer := e.Payer
		if payer == "" {
			payer = UnknownPayer
		}
		i, ok := index[payer]
		if !ok {
			i = len(totals)
			index[payer] = i
			totals = append(totals, PayerTotal{Payer: payer})
		}
		totals[i].Amount += e.Amount
	}
	return totals
}

// Symbol returns the display symbol for a currency code; unknown codes fall
// back to "$".
func Symbol(code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return "$"
	}
	return cur.Grapheme
}

// Format renders an amount with the currency's symbol and fraction digits,
// e.g. ¥1200 or $12.50.
func Format(amount float64, code string) string {
	fraction := 2
	if cur := money.GetCurrency(code); cur != nil {
		fraction = cur.Fraction
	}
	return fmt.Sprintf("%s%s", Symbol(code), strconv.FormatFloat(amount, 'f', fraction, 64))
}
