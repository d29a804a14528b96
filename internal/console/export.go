package console

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance"

// ExportAttendance writes records to a new spreadsheet at fileName,
// replacing any existing file.
func ExportAttendance(records []attendance.AttendanceResponse, fileName string) error {
	if !strings.EqualFold(filepath.Ext(fileName), ".xlsx") {
		return fmt.Errorf("%w: export file must end in .xlsx", ErrUsage)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}

	headers := []string{"ID", "Date", "Employee ID", "Full Name", "Department", "Status"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return fmt.Errorf("error writing header: %w", err)
		}
	}

	for i, r := range records {
		row := []interface{}{r.ID, r.Date, r.EmployeeID, r.FullName, r.Department, r.Status}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(fileName); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}
