package helper

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	v1 "github.com/kintai-tools/kingtime-go/kingtime/v1"
	"github.com/kintai-tools/kingtime-go/kingtime/v1/common"
)

func record(t *testing.T, at string, code common.Code) v1.TimeRecordDTO {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, at)
	require.NoError(t, err)
	return v1.TimeRecordDTO{Time: common.NewJSTTime(parsed), Code: code}
}

func TestStatusLine(t *testing.T) {
	in := record(t, "2016-05-01T09:00:00+09:00", common.CodeIn)
	breakStart := record(t, "2016-05-01T12:00:00+09:00", common.CodeBreakStart)
	breakEnd := record(t, "2016-05-01T13:00:00+09:00", common.CodeBreakEnd)
	out := record(t, "2016-05-01T18:00:00+09:00", common.CodeOut)

	tests := []struct {
		name    string
		records []v1.TimeRecordDTO
		want    string
	}{
		{"no punches", nil, StatusNotAtWork},
		{"clocked in", []v1.TimeRecordDTO{in}, StatusAtWork},
		{"on break", []v1.TimeRecordDTO{in, breakStart}, StatusOff},
		{"back from break", []v1.TimeRecordDTO{in, breakStart, breakEnd}, StatusAtWork},
		{"clocked out", []v1.TimeRecordDTO{in, breakStart, breakEnd, out}, StatusOff},
		{"unordered input is sorted first", []v1.TimeRecordDTO{out, breakEnd, in, breakStart}, StatusOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusLine(tt.records))
		})
	}
}

func TestSortByTime(t *testing.T) {
	records := []v1.TimeRecordDTO{
		record(t, "2016-05-01T18:00:00+09:00", common.CodeOut),
		record(t, "2016-05-01T09:00:00+09:00", common.CodeIn),
		record(t, "2016-05-01T12:00:00+09:00", common.CodeBreakStart),
	}

	SortByTime(records)

	assert.Equal(t, common.CodeIn, records[0].Code)
	assert.Equal(t, common.CodeBreakStart, records[1].Code)
	assert.Equal(t, common.CodeOut, records[2].Code)
}

func TestParseRange(t *testing.T) {
	now := time.Date(2016, 5, 1, 23, 30, 0, 0, common.JST)

	start, end, err := ParseRange(nil, now)
	require.NoError(t, err)
	assert.Equal(t, "2016-05-01", start.String())
	assert.Equal(t, "2016-05-01", end.String())

	start, end, err = ParseRange([]string{"2016-04-01"}, now)
	require.NoError(t, err)
	assert.Equal(t, "2016-04-01", start.String())
	assert.Equal(t, "2016-04-01", end.String())

	start, end, err = ParseRange([]string{"2016-04-01", "2016-04-30"}, now)
	require.NoError(t, err)
	assert.Equal(t, "2016-04-01", start.String())
	assert.Equal(t, "2016-04-30", end.String())

	_, _, err = ParseRange([]string{"2016-04-30", "2016-04-01"}, now)
	require.Error(t, err)

	_, _, err = ParseRange([]string{"04/01/2016"}, now)
	require.Error(t, err)

	_, _, err = ParseRange([]string{"2016-04-01", "2016-04-02", "2016-04-03"}, now)
	require.Error(t, err)
}

func TestWriteXLSX(t *testing.T) {
	date, err := common.ParseDateOnly("2016-05-01")
	require.NoError(t, err)

	groups := []v1.DailyWorkingsDTO{
		{
			Date: date,
			DailyWorkings: []v1.DailyWorkingDTO{
				{
					Date:        date,
					EmployeeKey: "K1",
					TimeRecord: []v1.TimeRecordDTO{
						record(t, "2016-05-01T18:00:00+09:00", common.CodeOut),
						record(t, "2016-05-01T09:00:00+09:00", common.CodeIn),
					},
				},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "records.xlsx")
	require.NoError(t, WriteXLSX(path, groups))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("TimeRecords", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Date", get("A1"))
	// rows come out time-ordered
	assert.Equal(t, "2016-05-01", get("A2"))
	assert.Equal(t, "K1", get("B2"))
	assert.Equal(t, "09:00:00", get("C2"))
	assert.Equal(t, "in", get("D2"))
	assert.Equal(t, "out", get("D3"))
}
