package helper

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	v1 "github.com/kintai-tools/kingtime-go/kingtime/v1"
	"github.com/kintai-tools/kingtime-go/kingtime/v1/common"
)

const exportSheet = "TimeRecords"

// WriteXLSX writes one row per punch into an .xlsx workbook.
func WriteXLSX(path string, groups []v1.DailyWorkingsDTO) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("prepare sheet: %w", err)
	}

	headers := []string{"Date", "Employee Key", "Time", "Code"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, h)
	}

	row := 2
	for _, group := range groups {
		for _, dw := range group.DailyWorkings {
			records := make([]v1.TimeRecordDTO, len(dw.TimeRecord))
			copy(records, dw.TimeRecord)
			SortByTime(records)

			for _, r := range records {
				f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), dw.Date.String())
				f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), dw.EmployeeKey)
				f.SetCellValue(exportSheet, fmt.Sprintf("C%d", row), r.Time.In(common.JST).Format("15:04:05"))
				f.SetCellValue(exportSheet, fmt.Sprintf("D%d", row), r.Code.String())
				row++
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
