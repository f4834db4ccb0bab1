package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/clinicadesk/clinicadesk/internal/apperrors"
)

// workbookName is the single spreadsheet artifact holding every entity as
// its own sheet.
const workbookName = "backup.xlsx"

// writeWorkbook renders the collected record sets into one workbook, one
// sheet per entity. The same export profiles drive both the CSV and the
// workbook output, so the two can never disagree about columns.
func writeWorkbook(path string, sets []entitySet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, set := range sets {
		sheet := set.profile.Name
		if i == 0 {
			// Rename the default sheet instead of leaving it empty.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
			}
		}

		if err := writeSheet(f, sheet, set); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrIO, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, set entitySet) error {
	if set.records == nil || len(set.records.Rows) == 0 {
		return nil
	}

	headers := filterColumns(set.records.Columns, set.profile.Exclude)

	for col, header := range headers {
		if err := setCell(f, sheet, col+1, 1, header); err != nil {
			return err
		}
	}

	for rowIdx, row := range set.records.Rows {
		for col, header := range headers {
			if err := setCell(f, sheet, col+1, rowIdx+2, row[header]); err != nil {
				return err
			}
		}
	}

	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s!%s: %w", sheet, cell, err)
	}
	return nil
}
