package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conspirant/kcet-planner-go/internal/cutoff"
	apperrors "github.com/conspirant/kcet-planner-go/internal/errors"
	"github.com/conspirant/kcet-planner-go/internal/options"
)

type analysisRequest struct {
	Rank     int    `json:"rank"`
	Category string `json:"category"`
	Year     string `json:"year"`
	Round    string `json:"round"`
}

type autogenRequest struct {
	Rank        int      `json:"rank"`
	Category    string   `json:"category"`
	BranchCodes []string `json:"branchCodes"`
}

type recommendRequest struct {
	Year     string `json:"year"`
	Round    string `json:"round"`
	Course   string `json:"course"`
	Category string `json:"category"`
	Rank     int    `json:"rank"`
}

// handleAnalysis runs the chance analysis over the profile's option list.
func (s *Server) handleAnalysis(c *gin.Context) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondFromError(c, "analysis", apperrors.NewValidationError("body", err.Error()))
		return
	}
	if req.Rank <= 0 {
		s.respondFromError(c, "analysis", apperrors.NewValidationError("rank", "rank must be positive"))
		return
	}
	if s.dataset.Empty() {
		s.respondFromError(c, "analysis", apperrors.ErrDatasetUnavailable)
		return
	}

	entries := s.session(c.Param("profile")).Entries()
	inputs := make([]cutoff.AnalysisInput, 0, len(entries))
	for _, e := range entries {
		inputs = append(inputs, cutoff.AnalysisInput{
			Combination:   e.CollegeCourse,
			InstituteCode: e.CollegeCode,
			Course:        e.BranchCode,
		})
	}

	result := s.analyzer.Analyze(inputs, req.Rank, req.Category, req.Year, req.Round)
	for _, row := range result.Rows {
		s.metrics.RecordMatch(row.MatchType)
	}
	c.JSON(http.StatusOK, result)
}

// handleAutoGenerate replaces the profile's list with generated picks for
// the requested branches, nearest reachable cutoffs first.
func (s *Server) handleAutoGenerate(c *gin.Context) {
	var req autogenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondFromError(c, "autogenerate", apperrors.NewValidationError("body", err.Error()))
		return
	}
	if req.Rank <= 0 {
		s.respondFromError(c, "autogenerate", apperrors.NewValidationError("rank", "rank must be positive"))
		return
	}
	if len(req.BranchCodes) == 0 {
		s.respondFromError(c, "autogenerate", apperrors.NewValidationError("branchCodes", "at least one branch is required"))
		return
	}
	if s.dataset.Empty() {
		s.respondFromError(c, "autogenerate", apperrors.ErrDatasetUnavailable)
		return
	}

	seeds := cutoff.AutoGenerate(s.dataset, req.Rank, req.Category, req.BranchCodes)
	entries := make([]options.Entry, 0, len(seeds))
	for _, seed := range seeds {
		college, ok := s.catalog.CollegeByCode(seed.InstituteCode)
		if !ok {
			// Dataset references a college the catalog does not carry.
			college.Code = seed.InstituteCode
			college.Name = seed.Institute
		}
		branchName := seed.Course
		if branch, ok := s.catalog.BranchByCode(seed.Course); ok {
			branchName = branch.Name
		}
		entries = append(entries, options.NewEntry(
			college.Code, college.Name, seed.Course, branchName, college.Location, college.Fees,
		))
	}

	list := s.session(c.Param("profile"))
	list.Replace(entries)
	c.JSON(http.StatusOK, gin.H{"options": list.Entries(), "count": list.Len()})
}

// handleRecommendations serves the grouped college suggestions.
func (s *Server) handleRecommendations(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondFromError(c, "recommendations", apperrors.NewValidationError("body", err.Error()))
		return
	}
	if s.dataset.Empty() {
		s.respondFromError(c, "recommendations", apperrors.ErrDatasetUnavailable)
		return
	}

	recs := cutoff.Recommend(s.dataset, cutoff.RecommendParams{
		UserRank: req.Rank,
		Year:     req.Year,
		Round:    req.Round,
		Course:   req.Course,
		Category: req.Category,
	})
	if recs == nil {
		recs = []cutoff.Recommendation{}
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs, "count": len(recs)})
}
