// Package spreadsheet renders report rows into an xlsx workbook.
package spreadsheet

import (
	"fmt"
	"io"

	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Timesheets Report"

// reportHeaders is the export column order.
var reportHeaders = []string{
	"Employee ID",
	"Name",
	"Department",
	"Sub Department",
	"Post",
	"Duty",
	"Date",
	"Hours",
	"Status",
}

// WriteTimesheetReport writes the export rows as an xlsx workbook to w, one
// row per (employee, timesheet, entry) tuple.
func WriteTimesheetReport(w io.Writer, rows []domain.ReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header %q: %w", header, err)
		}
	}
	lastHeaderCell, _ := excelize.CoordinatesToCellName(len(reportHeaders), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeaderCell, headerStyle); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	for i, row := range rows {
		values := []interface{}{
			row.EmployeeID,
			row.Name,
			row.Department,
			row.SubDepartment,
			row.Post,
			row.Duty,
			row.Date.Format("2006-01-02"),
			row.Hours.InexactFloat64(),
			string(row.Status),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to resolve data cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write report row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "I", 18); err != nil {
		return fmt.Errorf("failed to set column widths: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
