package xlsxexport_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"staffdesk/internal/domain"
	"staffdesk/internal/xlsxexport"
)

func employee() *domain.Employee {
	return &domain.Employee{EmpCode: "EMP042", FullName: "Asha Verma"}
}

func TestAttendanceSheet(t *testing.T) {
	in := time.Date(2025, 3, 3, 9, 30, 0, 0, time.UTC)
	out := time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC)
	records := []domain.Attendance{
		{Day: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), CheckIn: &in, CheckOut: &out, Status: domain.AttendancePresent},
		{Day: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), Status: domain.AttendanceAbsent},
	}

	data, err := xlsxexport.AttendanceSheet(employee(), records, 2025, time.March)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 5)

	assert.Contains(t, rows[0][0], "EMP042")
	assert.Equal(t, "Date", rows[2][0])
	assert.Equal(t, "2025-03-03", rows[3][0])
	assert.Equal(t, "09:30", rows[3][1])
	assert.Equal(t, "8.5", rows[3][3])
	assert.Equal(t, "present", rows[3][4])
	assert.Equal(t, "absent", rows[4][4])
}

func TestLocationSheet(t *testing.T) {
	pings := []domain.LocationPing{
		{Latitude: 18.5204, Longitude: 73.8567, Accuracy: 12, RecordedAt: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)},
	}

	data, err := xlsxexport.LocationSheet(employee(), pings)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 4)
	assert.Equal(t, "Recorded At", rows[2][0])
	assert.Equal(t, "2025-03-03T10:00:00Z", rows[3][0])
}

func TestAttendanceSheet_EmptyMonth(t *testing.T) {
	data, err := xlsxexport.AttendanceSheet(employee(), nil, 2025, time.April)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
