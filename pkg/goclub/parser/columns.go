package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseColumnSpec parses a column selection such as "B:E,G,P,Q,W".
// It returns 1-based column numbers in the order they are listed.
func ParseColumnSpec(spec string) ([]int, error) {
	var cols []int

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(strings.ReplaceAll(part, "$", ""))
		if part == "" {
			continue
		}

		bounds := strings.Split(part, ":")
		switch len(bounds) {
		case 1:
			col, err := excelize.ColumnNameToNumber(bounds[0])
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", part, err)
			}
			cols = append(cols, col)
		case 2:
			start, err := excelize.ColumnNameToNumber(bounds[0])
			if err != nil {
				return nil, fmt.Errorf("column range %q: %w", part, err)
			}
			end, err := excelize.ColumnNameToNumber(bounds[1])
			if err != nil {
				return nil, fmt.Errorf("column range %q: %w", part, err)
			}
			if start > end {
				return nil, fmt.Errorf("column range %q is reversed", part)
			}
			for col := start; col <= end; col++ {
				cols = append(cols, col)
			}
		default:
			return nil, fmt.Errorf("malformed column range %q", part)
		}
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("empty column spec %q", spec)
	}
	return cols, nil
}
