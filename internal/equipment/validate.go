package equipment

import "time"

// Form carries the user-supplied fields for a new or updated entry; derived
// fields are never accepted from the caller.
type Form struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	WLLTonnes     float64 `json:"wll_tonnes"`
	Manufacturer  string  `json:"manufacturer"`
	Size          string  `json:"size"`
	LastTestDate  string  `json:"last_test_date"`
	TestAuthority string  `json:"test_authority"`
	Notes         string  `json:"notes"`
}

// Validation is returned as data, never as an error: field problems are a
// normal outcome of user input.
type Validation struct {
	IsValid bool              `json:"is_valid"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Field length limits; optional fields are only checked when present.
const (
	maxIDLen            = 20
	maxManufacturerLen  = 30
	maxSizeLen          = 30
	maxTestAuthorityLen = 40
	maxNotesLen         = 200
)

// Validate applies the field rules against a reference time (the test date
// may not be in the future).
func Validate(f Form, now time.Time) Validation {
	errs := map[string]string{}

	if f.ID == "" {
		errs["id"] = "Equipment ID is required"
	} else if len(f.ID) > maxIDLen {
		errs["id"] = "Equipment ID must be 20 characters or fewer"
	}
	if f.Type == "" {
		errs["type"] = "Equipment type is required"
	}
	if f.WLLTonnes <= 0 {
		errs["wll_tonnes"] = "WLL must be greater than zero"
	}
	if f.LastTestDate == "" {
		errs["last_test_date"] = "Last test date is required"
	} else if t, err := time.Parse(DateLayout, f.LastTestDate); err != nil {
		errs["last_test_date"] = "Last test date must be YYYY-MM-DD"
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if t.After(today) {
			errs["last_test_date"] = "Last test date cannot be in the future"
		}
	}
	if len(f.Manufacturer) > maxManufacturerLen {
		errs["manufacturer"] = "Manufacturer must be 30 characters or fewer"
	}
	if len(f.Size) > maxSizeLen {
		errs["size"] = "Size must be 30 characters or fewer"
	}
	if len(f.TestAuthority) > maxTestAuthorityLen {
		errs["test_authority"] = "Test authority must be 40 characters or fewer"
	}
	if len(f.Notes) > maxNotesLen {
		errs["notes"] = "Notes must be 200 characters or fewer"
	}

	if len(errs) > 0 {
		return Validation{Errors: errs}
	}
	return Validation{IsValid: true}
}

// newEntry builds a full entry from a validated form, computing every
// derived field.
func newEntry(f Form, now time.Time) (Entry, error) {
	quarterly, annual, err := TestDates(f.LastTestDate)
	if err != nil {
		return Entry{}, err
	}
	tag, nextTag, err := RugbyTags(f.LastTestDate)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		ID:                f.ID,
		Type:              f.Type,
		WLLTonnes:         f.WLLTonnes,
		Manufacturer:      f.Manufacturer,
		Size:              f.Size,
		LastTestDate:      f.LastTestDate,
		TestAuthority:     f.TestAuthority,
		Notes:             f.Notes,
		DateAdded:         now.Format(DateLayout),
		Status:            "active",
		NextQuarterlyDate: quarterly,
		NextAnnualDate:    annual,
		RugbyTag:          tag,
		NextRugbyTag:      nextTag,
		TestHistory:       []TestRecord{},
	}, nil
}
