// Package export renders the option list as a PDF worksheet or an XLSX
// workbook, and reads option lists back from uploaded XLSX files.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/conspirant/kcet-planner-go/internal/options"
)

// PDFParams carries the header fields printed above the option table.
type PDFParams struct {
	Rank     int
	Category string
}

var rankPrinter = message.NewPrinter(language.English)

// RenderPDF produces the printable option worksheet: a landscape table of
// every entry in priority order with a rank/category header and a footer
// note. The layout mirrors the KEA option entry sheet so candidates can
// copy rows across during their slot.
func RenderPDF(entries []options.Entry, p PDFParams) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "KCET Option Entry Worksheet", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	header := fmt.Sprintf("Rank: %s    Category: %s    Generated: %s",
		rankPrinter.Sprintf("%d", p.Rank),
		p.Category,
		time.Now().Format("02 Jan 2006 15:04"),
	)
	pdf.CellFormat(0, 7, header, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	cols := []struct {
		title string
		width float64
	}{
		{"College Course", 28},
		{"Option No", 20},
		{"College Name", 78},
		{"Location", 30},
		{"Course Name", 52},
		{"Fees", 22},
		{"Comments", 47},
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range cols {
		pdf.CellFormat(c.width, 8, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, e := range entries {
		fees := "-"
		if e.Fees > 0 {
			fees = rankPrinter.Sprintf("%d", e.Fees)
		}
		cells := []string{
			e.CollegeCourse,
			fmt.Sprintf("%d", e.Priority),
			truncate(e.CollegeName, 55),
			truncate(e.Location, 20),
			truncate(e.BranchName, 36),
			fees,
			truncate(flattenComments(e.Comments), 32),
		}
		for i, c := range cols {
			align := "L"
			if i == 1 || i == 5 {
				align = "R"
			}
			pdf.CellFormat(c.width, 7, cells[i], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Verify cutoff ranks on the official KEA portal before final submission.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// flattenComments joins the non-empty comment fields into one line for the
// narrow PDF column.
func flattenComments(c options.Comments) string {
	var parts []string
	if c.Placement != "" {
		parts = append(parts, "Placement: "+c.Placement)
	}
	if c.Infrastructure != "" {
		parts = append(parts, "Infra: "+c.Infrastructure)
	}
	if c.Hostel != "" {
		parts = append(parts, "Hostel: "+c.Hostel)
	}
	if c.Other != "" {
		parts = append(parts, "Other: "+c.Other)
	}
	return strings.Join(parts, " | ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
