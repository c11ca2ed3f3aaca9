package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/conspirant/kcet-planner-go/internal/options"
)

const sheetName = "Options"

var xlsxColumns = []string{
	"priority", "collegeCode", "collegeName", "branchCode", "branchName",
	"location", "collegeCourse", "fees", "notes",
	"placement", "infrastructure", "hostel", "other",
}

// RenderXLSX writes the option list as a single-sheet workbook with one
// column per entry field, comments split into their own columns.
func RenderXLSX(entries []options.Entry) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for i, col := range xlsxColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to name header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, e := range entries {
		values := []any{
			e.Priority, e.CollegeCode, e.CollegeName, e.BranchCode, e.BranchName,
			e.Location, e.CollegeCourse, e.Fees, e.Notes,
			e.Comments.Placement, e.Comments.Infrastructure, e.Comments.Hostel, e.Comments.Other,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to name cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row+1, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// atoiDefault parses s as an int, falling back when it is empty or junk.
func atoiDefault(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
