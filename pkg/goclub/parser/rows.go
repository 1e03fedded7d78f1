// Package parser reads season workbooks and normalizes their rows into game records.
package parser

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Layout describes where the game table sits in a workbook.
type Layout struct {
	// Sheet is the worksheet holding the results.
	Sheet string
	// Columns are the 1-based sheet columns mapped, in order, onto the record fields.
	Columns []int
	// SkipRows is the number of title rows above the column header row.
	SkipRows int
}

// Sheet holds the selected raw cells of a workbook's game table.
type Sheet struct {
	// Rows are the selected cells of every data row below the header.
	Rows [][]string
	// Date1904 is set when the workbook counts date serials from 1904.
	Date1904 bool
}

// ReadFile opens an xlsx file and extracts the rows described by layout.
func ReadFile(path string, layout Layout) (Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Sheet{}, err
	}
	defer f.Close()

	return ExtractRows(f, layout)
}

// ReadBytes extracts rows from an xlsx document held in memory.
func ReadBytes(data []byte, layout Layout) (Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Sheet{}, err
	}
	defer f.Close()

	return ExtractRows(f, layout)
}

// ExtractRows returns the selected columns of every data row below the header.
// Cell values are raw: numbers and dates come back unformatted.
// Rows where every selected cell is blank are skipped.
func ExtractRows(f *excelize.File, layout Layout) (Sheet, error) {
	rows, err := f.GetRows(layout.Sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Sheet{}, err
	}

	props, err := f.GetWorkbookProps()
	if err != nil {
		return Sheet{}, err
	}
	sheet := Sheet{Date1904: props.Date1904 != nil && *props.Date1904}

	// One column header row follows the skipped title rows.
	first := layout.SkipRows + 1

	for rowIdx := first; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cells := make([]string, len(layout.Columns))
		hasData := false

		for i, col := range layout.Columns {
			if col < 1 || col > len(row) {
				continue
			}
			cells[i] = strings.TrimSpace(row[col-1])
			if cells[i] != "" {
				hasData = true
			}
		}

		if hasData {
			sheet.Rows = append(sheet.Rows, cells)
		}
	}

	return sheet, nil
}
