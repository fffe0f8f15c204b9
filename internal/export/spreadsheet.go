package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Reporte"

// SpreadsheetRenderer writes reports as .xlsx workbooks.
type SpreadsheetRenderer struct{}

func (SpreadsheetRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (SpreadsheetRenderer) Extension() string { return "xlsx" }

func (SpreadsheetRenderer) Render(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export: style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("export: style: %w", err)
	}

	row := 1
	if err := setRow(f, row, []string{t.Title}, nil, 0); err != nil {
		return err
	}
	row++
	if err := setRow(f, row, []string{t.Subtitle}, nil, 0); err != nil {
		return err
	}
	row += 2
	if err := setRow(f, row, t.Headers, nil, 0); err != nil {
		return err
	}
	if err := styleRow(f, row, len(t.Headers), bold); err != nil {
		return err
	}
	for _, r := range t.Rows {
		row++
		if err := setRow(f, row, r, t.Numeric, money); err != nil {
			return err
		}
	}
	if len(t.Footer) > 0 {
		row++
		if err := setRow(f, row, t.Footer, t.Numeric, money); err != nil {
			return err
		}
		if err := styleRow(f, row, len(t.Footer), bold); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetName, "A", "H", 18); err != nil {
		return fmt.Errorf("export: column width: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []string, numeric map[int]bool, moneyStyle int) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("export: cell name: %w", err)
		}
		var value any = v
		if numeric[col] && v != "" {
			if n, err := strconv.ParseFloat(v, 64); err == nil {
				value = n
			}
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("export: set %s: %w", cell, err)
		}
		if numeric[col] {
			if err := f.SetCellStyle(sheetName, cell, cell, moneyStyle); err != nil {
				return fmt.Errorf("export: style %s: %w", cell, err)
			}
		}
	}
	return nil
}

func styleRow(f *excelize.File, row, cols, style int) error {
	if cols == 0 {
		return nil
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(cols, row)
	if err := f.SetCellStyle(sheetName, first, last, style); err != nil {
		return fmt.Errorf("export: style row %d: %w", row, err)
	}
	return nil
}
