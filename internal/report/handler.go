package report

import (
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	"RigSafe/internal/equipment"
)

// Handler renders the equipment register as a compliance report PDF.
type Handler struct {
	Tracker *equipment.Tracker
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	list, err := h.Tracker.List(r.Context())
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	now := time.Now()
	summary := equipment.Summarize(list, now)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Rigging Equipment Compliance Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Items: %d total, %d current, %d due soon, %d overdue",
		summary.Total, summary.Current, summary.DueSoon, summary.Overdue))
	pdf.Ln(10)

	headers := []string{"ID", "Type", "WLL (t)", "Last Test", "Next Quarterly", "Status", "Rugby Tag", "Authority"}
	widths := []float64{28, 42, 20, 28, 30, 26, 24, 40}

	pdf.SetFont("Helvetica", "B", 10)
	for i, hname := range headers {
		pdf.CellFormat(widths[i], 7, hname, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, e := range list {
		status := equipment.Status(e, now)
		cells := []string{
			e.ID,
			equipment.TypeLabel(e.Type),
			fmt.Sprintf("%g", e.WLLTonnes),
			e.LastTestDate,
			e.NextQuarterlyDate,
			status.Label,
			e.RugbyTag,
			e.TestAuthority,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"compliance-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
