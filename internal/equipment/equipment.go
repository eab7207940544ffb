package equipment

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for every date field.
const DateLayout = "2006-01-02"

// Entry is one piece of rigging gear under compliance tracking. Dates are
// stored as YYYY-MM-DD strings, matching the serialized collection format.
type Entry struct {
	ID                string       `json:"id"`
	Type              string       `json:"type"`
	WLLTonnes         float64      `json:"wll_tonnes"`
	Manufacturer      string       `json:"manufacturer,omitempty"`
	Size              string       `json:"size,omitempty"`
	LastTestDate      string       `json:"last_test_date"`
	TestAuthority     string       `json:"test_authority,omitempty"`
	Notes             string       `json:"notes,omitempty"`
	DateAdded         string       `json:"date_added"`
	Status            string       `json:"status"`
	NextQuarterlyDate string       `json:"next_quarterly_date"`
	NextAnnualDate    string       `json:"next_annual_date"`
	RugbyTag          string       `json:"rugby_tag"`
	NextRugbyTag      string       `json:"next_rugby_tag"`
	TestHistory       []TestRecord `json:"test_history"`
}

// TestRecord is immutable once appended to an entry's history.
type TestRecord struct {
	Date      string `json:"date"`
	Type      string `json:"type"` // "quarterly" or "annual"
	Authority string `json:"authority"`
	Notes     string `json:"notes,omitempty"`
	Result    string `json:"result"` // "pass" or "fail"
}

// StatusInfo is derived on read and never stored.
type StatusInfo struct {
	Code         string `json:"code"`
	Label        string `json:"label"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	DaysUntilDue int    `json:"days_until_due"`
}

type Summary struct {
	Total   int `json:"total"`
	Current int `json:"current"`
	DueSoon int `json:"due_soon"`
	Overdue int `json:"overdue"`
}

const (
	StatusCurrent = "current"
	StatusDueSoon = "due-soon"
	StatusOverdue = "overdue"
)

// rugbyTagColors is a calendar-quarter convention: the tag tells you which
// quarter of the year the gear was last tested, not how long ago.
var rugbyTagColors = [4]string{"Red", "Green", "Blue", "Yellow"}

// EquipmentType is catalog reference data for the type enum.
type EquipmentType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var equipmentTypes = []EquipmentType{
	{ID: "chainSling", Label: "Chain Sling"},
	{ID: "wireRopeSling", Label: "Wire Rope Sling"},
	{ID: "roundSling", Label: "Round Sling"},
	{ID: "webbingSling", Label: "Webbing Sling"},
	{ID: "shackle", Label: "Shackle"},
	{ID: "hook", Label: "Hook"},
	{ID: "eyebolt", Label: "Eye Bolt"},
	{ID: "turnbuckle", Label: "Turnbuckle"},
	{ID: "liftingClamp", Label: "Lifting Clamp"},
	{ID: "spreaderBeam", Label: "Spreader Beam"},
	{ID: "liftingPoint", Label: "Lifting Point"},
	{ID: "other", Label: "Other"},
}

// Types returns the equipment-type catalog in display order.
func Types() []EquipmentType {
	out := make([]EquipmentType, len(equipmentTypes))
	copy(out, equipmentTypes)
	return out
}

// TypeLabel returns the human label for a type id, falling back to the raw
// id for values the catalog does not know.
func TypeLabel(id string) string {
	for _, t := range equipmentTypes {
		if t.ID == id {
			return t.Label
		}
	}
	return id
}

// RugbyTags derives the colour tags from the calendar quarter containing
// lastTestDate: Jan-Mar Red, Apr-Jun Green, Jul-Sep Blue, Oct-Dec Yellow.
func RugbyTags(lastTestDate string) (current, next string, err error) {
	t, err := time.Parse(DateLayout, lastTestDate)
	if err != nil {
		return "", "", fmt.Errorf("invalid test date: %w", err)
	}
	quarter := (int(t.Month()) - 1) / 3
	return rugbyTagColors[quarter], rugbyTagColors[(quarter+1)%4], nil
}

// TestDates derives the next quarterly and annual due dates using calendar
// month arithmetic. Month-end inputs normalize forward the way time.AddDate
// does (for example Nov 30 + 3 months lands on Mar 2).
func TestDates(lastTestDate string) (quarterly, annual string, err error) {
	t, err := time.Parse(DateLayout, lastTestDate)
	if err != nil {
		return "", "", fmt.Errorf("invalid test date: %w", err)
	}
	return t.AddDate(0, 3, 0).Format(DateLayout), t.AddDate(0, 12, 0).Format(DateLayout), nil
}

// Status classifies an entry against its next quarterly due date: overdue
// below 0 days, due-soon at 0-30, current above 30.
func Status(e Entry, now time.Time) StatusInfo {
	due, err := time.Parse(DateLayout, e.NextQuarterlyDate)
	if err != nil {
		return StatusInfo{Code: StatusOverdue, Label: "Overdue", Icon: "alert-circle", Color: "#D32F2F"}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(due.Sub(today).Hours() / 24)
	switch {
	case days < 0:
		return StatusInfo{Code: StatusOverdue, Label: "Overdue", Icon: "alert-circle", Color: "#D32F2F", DaysUntilDue: days}
	case days <= 30:
		return StatusInfo{Code: StatusDueSoon, Label: "Due Soon", Icon: "clock", Color: "#F9A825", DaysUntilDue: days}
	default:
		return StatusInfo{Code: StatusCurrent, Label: "Current", Icon: "check-circle", Color: "#2E7D32", DaysUntilDue: days}
	}
}

// Summarize counts entries by derived status.
func Summarize(list []Entry, now time.Time) Summary {
	s := Summary{Total: len(list)}
	for _, e := range list {
		switch Status(e, now).Code {
		case StatusCurrent:
			s.Current++
		case StatusDueSoon:
			s.DueSoon++
		case StatusOverdue:
			s.Overdue++
		}
	}
	return s
}

// FilterByStatus keeps entries whose derived status matches; "all" passes
// everything through.
func FilterByStatus(list []Entry, status string, now time.Time) []Entry {
	if status == "all" {
		return list
	}
	var out []Entry
	for _, e := range list {
		if Status(e, now).Code == status {
			out = append(out, e)
		}
	}
	return out
}

// FilterByType keeps entries of one equipment type; "all" passes everything.
func FilterByType(list []Entry, typ string) []Entry {
	if typ == "all" {
		return list
	}
	var out []Entry
	for _, e := range list {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
