package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/conspirant/kcet-planner-go/internal/errors"
	"github.com/conspirant/kcet-planner-go/internal/export"
)

// handleExportPDF renders the worksheet PDF. Rank and category come from
// query parameters so the download link stays a plain GET.
func (s *Server) handleExportPDF(c *gin.Context) {
	rank, _ := strconv.Atoi(c.Query("rank"))
	params := export.PDFParams{Rank: rank, Category: c.Query("category")}

	entries := s.session(c.Param("profile")).Entries()
	data, err := export.RenderPDF(entries, params)
	if err != nil {
		s.metrics.RecordExport("pdf", "error")
		s.respondFromError(c, "export", err)
		return
	}
	s.metrics.RecordExport("pdf", "success")

	c.Header("Content-Disposition", `attachment; filename="kcet-options.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// handleExportXLSX renders the workbook. Not gated: the spreadsheet is the
// free tier of export.
func (s *Server) handleExportXLSX(c *gin.Context) {
	entries := s.session(c.Param("profile")).Entries()
	data, err := export.RenderXLSX(entries)
	if err != nil {
		s.metrics.RecordExport("xlsx", "error")
		s.respondFromError(c, "export", err)
		return
	}
	s.metrics.RecordExport("xlsx", "success")

	c.Header("Content-Disposition", `attachment; filename="kcet-options.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// handleImportXLSX replaces the list with the uploaded workbook's rows.
func (s *Server) handleImportXLSX(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		s.respondFromError(c, "export", apperrors.NewValidationError("file", "multipart file field is required"))
		return
	}

	f, err := file.Open()
	if err != nil {
		s.metrics.RecordExport("xlsx_import", "error")
		s.respondFromError(c, "export", err)
		return
	}
	defer func() { _ = f.Close() }()

	entries, err := export.ImportXLSX(f)
	if err != nil {
		s.metrics.RecordExport("xlsx_import", "error")
		s.respondFromError(c, "export", apperrors.NewValidationError("file", err.Error()))
		return
	}
	s.metrics.RecordExport("xlsx_import", "success")

	list := s.session(c.Param("profile"))
	list.Replace(entries)
	c.JSON(http.StatusOK, gin.H{"options": list.Entries(), "count": list.Len()})
}
