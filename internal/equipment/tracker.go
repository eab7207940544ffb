package equipment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"RigSafe/internal/store"
)

// DefaultStorageKey holds the whole collection as one JSON array.
const DefaultStorageKey = "equipment_entries"

var (
	ErrDuplicateID = errors.New("Equipment ID already exists")
	ErrNotFound    = errors.New("Equipment not found")
)

// Tracker runs every mutation as load-whole-list, modify, save-whole-list
// against a single storage key. Two concurrent writers can lose an update;
// that is a known property of the single-key collection design, accepted
// for the collection sizes involved.
type Tracker struct {
	Store store.Store
	Key   string
	Now   func() time.Time
}

func NewTracker(s store.Store) *Tracker {
	return &Tracker{Store: s, Key: DefaultStorageKey, Now: time.Now}
}

func (t *Tracker) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// List loads the stored collection; an absent key is an empty collection.
func (t *Tracker) List(ctx context.Context) ([]Entry, error) {
	raw, ok, err := t.Store.Get(ctx, t.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to load equipment data: %w", err)
	}
	if !ok {
		return []Entry{}, nil
	}
	var list []Entry
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to load equipment data: %w", err)
	}
	return list, nil
}

func (t *Tracker) save(ctx context.Context, list []Entry) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to save equipment data: %w", err)
	}
	if err := t.Store.Set(ctx, t.Key, raw); err != nil {
		return fmt.Errorf("failed to save equipment data: %w", err)
	}
	return nil
}

// Add rejects a duplicate id before anything is written.
func (t *Tracker) Add(ctx context.Context, f Form) (Entry, error) {
	list, err := t.List(ctx)
	if err != nil {
		return Entry{}, err
	}
	for _, e := range list {
		if e.ID == f.ID {
			return Entry{}, ErrDuplicateID
		}
	}
	entry, err := newEntry(f, t.now())
	if err != nil {
		return Entry{}, err
	}
	list = append(list, entry)
	if err := t.save(ctx, list); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Update holds the fields that may change on an existing entry; nil means
// leave as is.
type Update struct {
	Type          *string  `json:"type"`
	WLLTonnes     *float64 `json:"wll_tonnes"`
	Manufacturer  *string  `json:"manufacturer"`
	Size          *string  `json:"size"`
	LastTestDate  *string  `json:"last_test_date"`
	TestAuthority *string  `json:"test_authority"`
	Notes         *string  `json:"notes"`
}

// UpdateEntry merges the supplied fields into the entry. A changed test
// date recomputes the due dates and rugby tags before the merge lands.
func (t *Tracker) UpdateEntry(ctx context.Context, id string, upd Update) (Entry, error) {
	list, err := t.List(ctx)
	if err != nil {
		return Entry{}, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		e := &list[i]
		if upd.LastTestDate != nil && *upd.LastTestDate != e.LastTestDate {
			quarterly, annual, derr := TestDates(*upd.LastTestDate)
			if derr != nil {
				return Entry{}, derr
			}
			tag, nextTag, derr := RugbyTags(*upd.LastTestDate)
			if derr != nil {
				return Entry{}, derr
			}
			e.LastTestDate = *upd.LastTestDate
			e.NextQuarterlyDate = quarterly
			e.NextAnnualDate = annual
			e.RugbyTag = tag
			e.NextRugbyTag = nextTag
		}
		if upd.Type != nil {
			e.Type = *upd.Type
		}
		if upd.WLLTonnes != nil {
			e.WLLTonnes = *upd.WLLTonnes
		}
		if upd.Manufacturer != nil {
			e.Manufacturer = *upd.Manufacturer
		}
		if upd.Size != nil {
			e.Size = *upd.Size
		}
		if upd.TestAuthority != nil {
			e.TestAuthority = *upd.TestAuthority
		}
		if upd.Notes != nil {
			e.Notes = *upd.Notes
		}
		if err := t.save(ctx, list); err != nil {
			return Entry{}, err
		}
		return *e, nil
	}
	return Entry{}, ErrNotFound
}

// Delete removes an entry by id.
func (t *Tracker) Delete(ctx context.Context, id string) error {
	list, err := t.List(ctx)
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, e := range list {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(list) {
		return ErrNotFound
	}
	return t.save(ctx, kept)
}

// RecordTest always appends to the history; only a test date strictly more
// recent than the current one moves the entry's current state forward. A
// fail result is recorded but changes nothing else.
func (t *Tracker) RecordTest(ctx context.Context, id string, rec TestRecord) (Entry, error) {
	list, err := t.List(ctx)
	if err != nil {
		return Entry{}, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		e := &list[i]
		e.TestHistory = append(e.TestHistory, rec)

		newDate, derr := time.Parse(DateLayout, rec.Date)
		curDate, cerr := time.Parse(DateLayout, e.LastTestDate)
		if derr == nil && cerr == nil && newDate.After(curDate) {
			quarterly, annual, err := TestDates(rec.Date)
			if err != nil {
				return Entry{}, err
			}
			tag, nextTag, err := RugbyTags(rec.Date)
			if err != nil {
				return Entry{}, err
			}
			e.LastTestDate = rec.Date
			if rec.Authority != "" {
				e.TestAuthority = rec.Authority
			}
			e.NextQuarterlyDate = quarterly
			e.NextAnnualDate = annual
			e.RugbyTag = tag
			e.NextRugbyTag = nextTag
		}
		if err := t.save(ctx, list); err != nil {
			return Entry{}, err
		}
		return *e, nil
	}
	return Entry{}, ErrNotFound
}
