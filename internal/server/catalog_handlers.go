package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleColleges serves the college list, filtered by ?q=.
func (s *Server) handleColleges(c *gin.Context) {
	colleges := s.catalog.SearchColleges(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"colleges": colleges, "count": len(colleges)})
}

// handleBranches serves the branch list, filtered by ?q=.
func (s *Server) handleBranches(c *gin.Context) {
	branches := s.catalog.SearchBranches(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"branches": branches, "count": len(branches)})
}

// Facet handlers back the cascading year/round/course/category selects.

func (s *Server) handleYears(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"years": s.dataset.Years()})
}

func (s *Server) handleRounds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rounds": s.dataset.Rounds(c.Query("year"))})
}

func (s *Server) handleCourses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"courses": s.dataset.Courses(c.Query("year"), c.Query("round"))})
}

func (s *Server) handleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": s.dataset.Categories(c.Query("year"), c.Query("round"), c.Query("course")),
	})
}
