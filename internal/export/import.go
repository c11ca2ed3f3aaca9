package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/conspirant/kcet-planner-go/internal/options"
)

// ImportXLSX reads an option list back from a workbook produced by
// RenderXLSX or assembled by hand. The reader is deliberately permissive:
// column order is taken from the header row, missing columns fall back to
// defaults (priority from row position, a fresh id), and malformed cells
// never reject the workbook. Only a file excelize cannot open at all is an
// error.
func ImportXLSX(r io.Reader) ([]options.Entry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := sheetName
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		// Fall back to the first sheet whatever it is called.
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return []options.Entry{}, nil
	}

	colIndex := make(map[string]int)
	for i, h := range rows[0] {
		colIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	get := func(row []string, name string) string {
		i, ok := colIndex[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	entries := make([]options.Entry, 0, len(rows)-1)
	for n, row := range rows[1:] {
		collegeCode := get(row, "collegecode")
		branchCode := get(row, "branchcode")
		collegeCourse := get(row, "collegecourse")
		if collegeCourse == "" {
			collegeCourse = collegeCode + branchCode
		}
		entries = append(entries, options.Entry{
			ID:            uuid.NewString(),
			Priority:      atoiDefault(get(row, "priority"), n+1),
			CollegeCode:   collegeCode,
			CollegeName:   get(row, "collegename"),
			BranchCode:    branchCode,
			BranchName:    get(row, "branchname"),
			Location:      get(row, "location"),
			CollegeCourse: collegeCourse,
			Fees:          atoiDefault(get(row, "fees"), 0),
			Notes:         get(row, "notes"),
			Comments: options.Comments{
				Placement:      get(row, "placement"),
				Infrastructure: get(row, "infrastructure"),
				Hostel:         get(row, "hostel"),
				Other:          get(row, "other"),
			},
		})
	}
	return entries, nil
}
