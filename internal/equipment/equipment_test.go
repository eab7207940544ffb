package equipment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRugbyTags_QuarterColours(t *testing.T) {
	cases := []struct {
		date    string
		current string
		next    string
	}{
		{"2024-01-01", "Red", "Green"},
		{"2024-03-31", "Red", "Green"},
		{"2024-04-01", "Green", "Blue"},
		{"2024-06-15", "Green", "Blue"},
		{"2024-07-01", "Blue", "Yellow"},
		{"2024-09-30", "Blue", "Yellow"},
		{"2024-10-01", "Yellow", "Red"},
		{"2024-12-31", "Yellow", "Red"},
		{"1999-02-14", "Red", "Green"},
	}
	for _, c := range cases {
		current, next, err := RugbyTags(c.date)
		require.NoError(t, err, c.date)
		assert.Equal(t, c.current, current, c.date)
		assert.Equal(t, c.next, next, c.date)
	}
}

func TestRugbyTags_BadDate(t *testing.T) {
	_, _, err := RugbyTags("15/03/2024")
	assert.Error(t, err)
}

func TestTestDates(t *testing.T) {
	quarterly, annual, err := TestDates("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-04-15", quarterly)
	assert.Equal(t, "2025-01-15", annual)
}

func TestTestDates_MonthEndRollover(t *testing.T) {
	// Nov 30 + 3 calendar months normalizes through Feb 30 to Mar 2.
	quarterly, _, err := TestDates("2024-11-30")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", quarterly)

	// Aug 31 + 3 calendar months normalizes through Nov 31 to Dec 1.
	quarterly, annual, err := TestDates("2024-08-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-01", quarterly)
	assert.Equal(t, "2025-08-31", annual)
}

func entryDueOn(date string) Entry {
	return Entry{ID: "SL-1", Type: "chainSling", NextQuarterlyDate: date}
}

func TestStatus_Boundaries(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	s := Status(entryDueOn("2025-07-01"), now) // exactly 30 days out
	assert.Equal(t, StatusDueSoon, s.Code)
	assert.Equal(t, 30, s.DaysUntilDue)

	s = Status(entryDueOn("2025-07-02"), now) // 31 days out
	assert.Equal(t, StatusCurrent, s.Code)
	assert.Equal(t, 31, s.DaysUntilDue)

	s = Status(entryDueOn("2025-06-01"), now) // due today
	assert.Equal(t, StatusDueSoon, s.Code)
	assert.Equal(t, 0, s.DaysUntilDue)

	s = Status(entryDueOn("2025-05-31"), now) // one day past
	assert.Equal(t, StatusOverdue, s.Code)
	assert.Equal(t, -1, s.DaysUntilDue)
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	list := []Entry{
		entryDueOn("2025-09-01"),
		entryDueOn("2025-06-10"),
		entryDueOn("2025-06-20"),
		entryDueOn("2025-01-01"),
	}
	s := Summarize(list, now)
	assert.Equal(t, Summary{Total: 4, Current: 1, DueSoon: 2, Overdue: 1}, s)
}

func TestFilters(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a := entryDueOn("2025-09-01")
	a.Type = "shackle"
	b := entryDueOn("2025-01-01")
	list := []Entry{a, b}

	assert.Len(t, FilterByStatus(list, "all", now), 2)
	assert.Len(t, FilterByStatus(list, StatusOverdue, now), 1)
	assert.Empty(t, FilterByStatus(list, StatusDueSoon, now))

	assert.Len(t, FilterByType(list, "all"), 2)
	assert.Len(t, FilterByType(list, "shackle"), 1)
	assert.Empty(t, FilterByType(list, "hook"))
}

func TestValidate(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	valid := Form{ID: "SL-001", Type: "chainSling", WLLTonnes: 3.15, LastTestDate: "2025-05-01"}
	assert.True(t, Validate(valid, now).IsValid)

	v := Validate(Form{}, now)
	require.False(t, v.IsValid)
	assert.Contains(t, v.Errors, "id")
	assert.Contains(t, v.Errors, "type")
	assert.Contains(t, v.Errors, "wll_tonnes")
	assert.Contains(t, v.Errors, "last_test_date")
}

func TestValidate_FutureDateRejected(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := Form{ID: "SL-001", Type: "chainSling", WLLTonnes: 1, LastTestDate: "2025-06-02"}
	v := Validate(f, now)
	require.False(t, v.IsValid)
	assert.Contains(t, v.Errors["last_test_date"], "future")

	// The reference day itself is allowed.
	f.LastTestDate = "2025-06-01"
	assert.True(t, Validate(f, now).IsValid)
}

func TestValidate_LengthLimits(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f := Form{
		ID:            strings.Repeat("x", 21),
		Type:          "chainSling",
		WLLTonnes:     1,
		LastTestDate:  "2025-05-01",
		Manufacturer:  strings.Repeat("m", 31),
		Size:          strings.Repeat("s", 31),
		TestAuthority: strings.Repeat("a", 41),
		Notes:         strings.Repeat("n", 201),
	}
	v := Validate(f, now)
	require.False(t, v.IsValid)
	assert.Len(t, v.Errors, 5)

	// Limits are only enforced when the field is present.
	f = Form{ID: "SL-001", Type: "chainSling", WLLTonnes: 1, LastTestDate: "2025-05-01"}
	assert.True(t, Validate(f, now).IsValid)
}

func TestExportCSV(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	e := Entry{
		ID:                "SL-001",
		Type:              "chainSling",
		WLLTonnes:         3.15,
		Manufacturer:      `Acme "Heavy" Ltd`,
		Size:              "10mm",
		LastTestDate:      "2025-05-01",
		TestAuthority:     "LiftCert",
		NextQuarterlyDate: "2025-08-01",
		NextAnnualDate:    "2026-05-01",
		RugbyTag:          "Green",
	}
	out := ExportCSV([]Entry{e}, now)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		`"ID","Type","WLL","Manufacturer","Size","Last Test Date","Next Quarterly","Next Annual","Status","Rugby Tag","Test Authority","Notes"`,
		lines[0])
	// Human type label, unconditional quoting, doubled embedded quotes.
	assert.Contains(t, lines[1], `"Chain Sling"`)
	assert.Contains(t, lines[1], `"Acme ""Heavy"" Ltd"`)
	assert.Contains(t, lines[1], `"Current"`)
	assert.Equal(t, 12, len(strings.Split(lines[1], `","`)))
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "Wire Rope Sling", TypeLabel("wireRopeSling"))
	assert.Equal(t, "mystery", TypeLabel("mystery"))
}
