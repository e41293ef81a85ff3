package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"tripdeck/internal/models"
	"tripdeck/internal/timeutil"
)

// Currencies is the closed set the trip can be priced in.
var Currencies = []string{"JPY", "TWD", "USD", "KRW"}

// DefaultCurrency is used when no currency has been selected yet.
const DefaultCurrency = "JPY"

// ErrUnauthenticated is returned by mutations that require a capability-gate
// session when none exists.
var ErrUnauthenticated = errors.New("editor session required")

// Store owns the single schedule document. It is constructed once at startup
// from the persistence collaborator and flushed on every mutation; Close does
// a final flush.
//
// Store is not safe for concurrent use by multiple goroutines. All mutations
// happen on discrete user-triggered events processed to completion; there are
// no concurrent writers.
type Store struct {
	kv       KV
	days     []models.DaySchedule
	currency string
	user     string
}

// Open loads the schedule document, current user, and currency from kv. A
// malformed schedule document is reported and the seeded default is kept; no
// partial merge is attempted.
func Open(kv KV) (*Store, error) {
	s := &Store{
		kv:       kv,
		days:     models.DefaultSchedule(),
		currency: DefaultCurrency,
	}

	data, err := kv.Get(KeySchedule)
	switch {
	case err == nil:
		var days []models.DaySchedule
		if jsonErr := json.Unmarshal(data, &days); jsonErr != nil {
			fmt.Fprintf(os.Stderr, "tripdeck: failed to parse saved schedule, keeping default: %v\n", jsonErr)
		} else {
			s.days = days
		}
	case errors.Is(err, ErrNotFound):
		// First run, keep the seed.
	default:
		return nil, fmt.Errorf("failed to read schedule: %w", err)
	}

	if data, err := kv.Get(KeyUser); err == nil {
		s.user = string(data)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	if data, err := kv.Get(KeyCurrency); err == nil {
		s.currency = string(data)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to read currency: %w", err)
	}

	return s, nil
}

// Close flushes the document a final time and releases the backend.
func (s *Store) Close() error {
	if err := s.saveSchedule(); err != nil {
		return err
	}
	return s.kv.Close()
}

func (s *Store) saveSchedule() error {
	data, err := json.MarshalIndent(s.days, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize schedule: %w", err)
	}
	if err := s.kv.Set(KeySchedule, data); err != nil {
		return fmt.Errorf("failed to write schedule: %w", err)
	}
	return nil
}

// Days returns a deep copy of the whole schedule in trip order.
func (s *Store) Days() []models.DaySchedule {
	return models.CloneSchedule(s.days)
}

// Day returns a deep copy of one day by id.
func (s *Store) Day(dayID string) (models.DaySchedule, bool) {
	for _, d := range s.days {
		if d.ID == dayID {
			return d.Clone(), true
		}
	}
	return models.DaySchedule{}, false
}

// FindItem locates an item by its globally-unique id across all days.
func (s *Store) FindItem(itemID string) (models.ItineraryItem, string, bool) {
	for _, d := range s.days {
		for _, item := range d.Items {
			if item.ID == itemID {
				return item.Clone(), d.ID, true
			}
		}
	}
	return models.ItineraryItem{}, "", false
}

// sortItems re-establishes display order: ascending start time. The
// comparison is minute-based with string order as a stable fallback, so an
// unpadded "9:00" cannot silently misplace an item.
func sortItems(items []models.ItineraryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return timeutil.Compare(items[i].StartTime, items[j].StartTime) < 0
	})
}

// UpsertItem inserts the item into the day if its id is absent, otherwise
// replaces it in place, then re-sorts the day by start time. Unknown day ids
// are a silent no-op.
func (s *Store) UpsertItem(dayID string, item models.ItineraryItem) error {
	next := models.CloneSchedule(s.days)
	for di := range next {
		if next[di].ID != dayID {
			continue
		}
		day := &next[di]
		replaced := false
		for ii := range day.Items {
			if day.Items[ii].ID == item.ID {
				day.Items[ii] = item.Clone()
				replaced = true
				break
			}
		}
		if !replaced {
			day.Items = append(day.Items, item.Clone())
		}
		sortItems(day.Items)
		break
	}
	s.days = next
	return s.saveSchedule()
}

// DeleteItem removes an item by identity. Unknown ids are a silent no-op.
func (s *Store) DeleteItem(dayID, itemID string) error {
	next := models.CloneSchedule(s.days)
	for di := range next {
		if next[di].ID != dayID {
			continue
		}
		day := &next[di]
		kept := day.Items[:0]
		for _, item := range day.Items {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		day.Items = kept
		break
	}
	s.days = next
	return s.saveSchedule()
}

// SetItemCosts replaces an item's cost list wholesale. Item ids are globally
// unique, so the owning day is found by scanning all days.
func (s *Store) SetItemCosts(itemID string, costs []models.CostDetail) error {
	next := models.CloneSchedule(s.days)
	for di := range next {
		for ii := range next[di].Items {
			if next[di].Items[ii].ID == itemID {
				cloned := make([]models.CostDetail, len(costs))
				copy(cloned, costs)
				next[di].Items[ii].Costs = cloned
				s.days = next
				return s.saveSchedule()
			}
		}
	}
	// Unknown item: silent no-op.
	return nil
}

// DeleteCostFromItem removes one cost entry by identity. This is the one
// gated cost operation: editor is the session name and must be non-empty.
func (s *Store) DeleteCostFromItem(editor, itemID, costID string) error {
	if editor == "" {
		return ErrUnauthenticated
	}
	next := models.CloneSchedule(s.days)
	for di := range next {
		for ii := range next[di].Items {
			item := &next[di].Items[ii]
			if item.ID != itemID {
				continue
			}
			kept := item.Costs[:0]
			for _, c := range item.Costs {
				if c.ID != costID {
					kept = append(kept, c)
				}
			}
			item.Costs = kept
			s.days = next
			return s.saveSchedule()
		}
	}
	return nil
}

// ReplaceDayItems overwrites a day's item slice without re-sorting. Manual
// order is authoritative while a reorder is in flight.
func (s *Store) ReplaceDayItems(dayID string, items []models.ItineraryItem) error {
	next := models.CloneSchedule(s.days)
	for di := range next {
		if next[di].ID == dayID {
			cloned := make([]models.ItineraryItem, len(items))
			for i, item := range items {
				cloned[i] = item.Clone()
			}
			next[di].Items = cloned
			break
		}
	}
	s.days = next
	return s.saveSchedule()
}

// ReplaceDay restores a whole day, order and times included. Used for
// reorder rollback.
func (s *Store) ReplaceDay(day models.DaySchedule) error {
	next := models.CloneSchedule(s.days)
	for di := range next {
		if next[di].ID == day.ID {
			next[di] = day.Clone()
			break
		}
	}
	s.days = next
	return s.saveSchedule()
}

// Snapshot serializes the full schedule document, suitable for backups.
func (s *Store) Snapshot() ([]byte, error) {
	data, err := json.MarshalIndent(s.days, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize schedule: %w", err)
	}
	return data, nil
}

// RestoreSnapshot replaces the whole schedule with a previously exported
// document. The data must parse as a complete schedule; nothing is merged.
func (s *Store) RestoreSnapshot(data []byte) error {
	var days []models.DaySchedule
	if err := json.Unmarshal(data, &days); err != nil {
		return fmt.Errorf("not a valid schedule document: %w", err)
	}
	s.days = days
	return s.saveSchedule()
}

// Reset discards every edit and reseeds the default schedule.
func (s *Store) Reset() error {
	s.days = models.DefaultSchedule()
	return s.saveSchedule()
}

// Currency returns the trip's selected currency.
func (s *Store) Currency() string {
	return s.currency
}

// SetCurrency selects one of the supported currencies.
func (s *Store) SetCurrency(cur string) error {
	valid := false
	for _, c := range Currencies {
		if c == cur {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported currency %q (one of %v)", cur, Currencies)
	}
	s.currency = cur
	if err := s.kv.Set(KeyCurrency, []byte(cur)); err != nil {
		return fmt.Errorf("failed to write currency: %w", err)
	}
	return nil
}

// CurrentUser returns the persisted session name, empty when logged out.
func (s *Store) CurrentUser() string {
	return s.user
}

// SetCurrentUser persists the session name; an empty name clears the key.
func (s *Store) SetCurrentUser(name string) error {
	s.user = name
	if name == "" {
		if err := s.kv.Delete(KeyUser); err != nil {
			return fmt.Errorf("failed to clear user: %w", err)
		}
		return nil
	}
	if err := s.kv.Set(KeyUser, []byte(name)); err != nil {
		return fmt.Errorf("failed to write user: %w", err)
	}
	return nil
}
