package xlsxexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"staffdesk/internal/domain"
)

var attendanceColumns = []string{"Date", "Check In", "Check Out", "Hours", "Status"}

var locationColumns = []string{"Recorded At", "Latitude", "Longitude", "Accuracy (m)"}

// AttendanceSheet renders one employee's month of attendance as an XLSX workbook.
func AttendanceSheet(emp *domain.Employee, records []domain.Attendance, year int, month time.Month) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	title := fmt.Sprintf("Attendance - %s (%s) - %s %d", emp.FullName, emp.EmpCode, month, year)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, fmt.Errorf("xlsxexport.AttendanceSheet: %w", err)
	}
	if err := setRow(f, sheet, 3, toAny(attendanceColumns)); err != nil {
		return nil, err
	}

	for i, rec := range records {
		row := []interface{}{
			rec.Day.Format("2006-01-02"),
			formatClock(rec.CheckIn),
			formatClock(rec.CheckOut),
			formatHours(rec.CheckIn, rec.CheckOut),
			string(rec.Status),
		}
		if err := setRow(f, sheet, 4+i, row); err != nil {
			return nil, err
		}
	}

	return writeBuffer(f)
}

// LocationSheet renders an employee's location history as an XLSX workbook.
func LocationSheet(emp *domain.Employee, pings []domain.LocationPing) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	title := fmt.Sprintf("Location History - %s (%s)", emp.FullName, emp.EmpCode)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, fmt.Errorf("xlsxexport.LocationSheet: %w", err)
	}
	if err := setRow(f, sheet, 3, toAny(locationColumns)); err != nil {
		return nil, err
	}

	for i, ping := range pings {
		row := []interface{}{
			ping.RecordedAt.Format(time.RFC3339),
			ping.Latitude,
			ping.Longitude,
			ping.Accuracy,
		}
		if err := setRow(f, sheet, 4+i, row); err != nil {
			return nil, err
		}
	}

	return writeBuffer(f)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("xlsxexport.setRow: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("xlsxexport.setRow: %w", err)
	}
	return nil
}

func writeBuffer(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func toAny(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}

func formatHours(in, out *time.Time) string {
	if in == nil || out == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", out.Sub(*in).Hours())
}
