package equipment

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the register as a single worksheet with the same
// columns as the CSV export.
func ExportXLSX(list []Entry, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Equipment Register"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, name := range csvColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}

	for row, e := range list {
		values := []interface{}{
			e.ID,
			TypeLabel(e.Type),
			e.WLLTonnes,
			e.Manufacturer,
			e.Size,
			e.LastTestDate,
			e.NextQuarterlyDate,
			e.NextAnnualDate,
			Status(e, now).Label,
			e.RugbyTag,
			e.TestAuthority,
			e.Notes,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "L", 16)
	return f, nil
}

// suggestedFilename stamps the export with the current date.
func suggestedFilename(ext string, now time.Time) string {
	return fmt.Sprintf("equipment-register-%s.%s", now.Format(DateLayout), ext)
}
