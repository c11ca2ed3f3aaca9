package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/conspirant/kcet-planner-go/internal/errors"
	"github.com/conspirant/kcet-planner-go/internal/options"
)

var snapshotWrapper = apperrors.NewWrapper("options", "snapshot")

type addOptionRequest struct {
	CollegeCode string `json:"collegeCode"`
	BranchCode  string `json:"branchCode"`
}

type priorityRequest struct {
	Priority *int `json:"priority"`
}

type reorderRequest struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

// handleListOptions returns the profile's current list, filtered by ?q=.
func (s *Server) handleListOptions(c *gin.Context) {
	list := s.session(c.Param("profile"))
	entries := list.Search(c.Query("q"))
	if entries == nil {
		entries = []options.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"options": entries, "count": len(entries)})
}

// handleAddOption appends a college/branch pair resolved through the
// catalog.
func (s *Server) handleAddOption(c *gin.Context) {
	var req addOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondFromError(c, "options", apperrors.NewValidationError("body", err.Error()))
		return
	}

	college, ok := s.catalog.CollegeByCode(req.CollegeCode)
	if !ok {
		s.respondFromError(c, "options", apperrors.NewValidationError("collegeCode", "unknown college code"))
		return
	}
	branch, ok := s.catalog.BranchByCode(req.BranchCode)
	if !ok {
		s.respondFromError(c, "options", apperrors.NewValidationError("branchCode", "unknown branch code"))
		return
	}

	entry := s.session(c.Param("profile")).Add(
		options.NewEntry(college.Code, college.Name, branch.Code, branch.Name, college.Location, college.Fees),
	)
	c.JSON(http.StatusCreated, entry)
}

// handleSetPriority changes one entry's priority. Priority zero removes
// the entry, preserving the old wire contract; negative values are
// rejected.
func (s *Server) handleSetPriority(c *gin.Context) {
	var req priorityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Priority == nil {
		s.respondFromError(c, "options", apperrors.NewValidationError("priority", "priority is required"))
		return
	}

	list := s.session(c.Param("profile"))
	id := c.Param("id")

	if *req.Priority == 0 {
		list.Remove(id)
		c.JSON(http.StatusOK, gin.H{"options": list.Entries()})
		return
	}
	if err := list.SetPriority(id, *req.Priority); err != nil {
		s.respondFromError(c, "options", apperrors.NewValidationError("priority", err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": list.Entries()})
}

// handleReorder moves an entry between positions (zero-based indexes).
func (s *Server) handleReorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.From == nil || req.To == nil {
		s.respondFromError(c, "options", apperrors.NewValidationError("body", "from and to are required"))
		return
	}

	list := s.session(c.Param("profile"))
	list.Move(*req.From, *req.To)
	c.JSON(http.StatusOK, gin.H{"options": list.Entries()})
}

// handleSetNotes updates notes and autosaves the snapshot.
func (s *Server) handleSetNotes(c *gin.Context) {
	var req notesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondFromError(c, "options", apperrors.NewValidationError("body", err.Error()))
		return
	}

	profileID := c.Param("profile")
	list := s.session(profileID)
	list.SetNotes(c.Param("id"), req.Notes)
	s.persist(c.Request.Context(), profileID, list)
	c.JSON(http.StatusOK, gin.H{"options": list.Entries()})
}

// handleSetComments updates structured comments and autosaves.
func (s *Server) handleSetComments(c *gin.Context) {
	var req options.Comments
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondFromError(c, "options", apperrors.NewValidationError("body", err.Error()))
		return
	}

	profileID := c.Param("profile")
	list := s.session(profileID)
	list.SetComments(c.Param("id"), req)
	s.persist(c.Request.Context(), profileID, list)
	c.JSON(http.StatusOK, gin.H{"options": list.Entries()})
}

// handleClearOptions empties the list and drops the persisted snapshot.
func (s *Server) handleClearOptions(c *gin.Context) {
	profileID := c.Param("profile")
	list := s.session(profileID)
	list.Clear()

	ctx := c.Request.Context()
	if err := s.db.DeleteOptions(ctx, profileID); err != nil {
		s.metrics.RecordSnapshotOp("delete", "error")
		s.respondFromError(c, "options", snapshotWrapper.Wrap(err, "could not clear the saved option list"))
		return
	}
	s.metrics.RecordSnapshotOp("delete", "success")
	if s.mirror != nil {
		s.mirror.SnapshotDeleted(ctx, profileID)
	}
	c.JSON(http.StatusOK, gin.H{"options": []options.Entry{}})
}

// handleSaveOptions persists the current list as a snapshot.
func (s *Server) handleSaveOptions(c *gin.Context) {
	profileID := c.Param("profile")
	list := s.session(profileID)
	entries := list.Entries()

	ctx := c.Request.Context()
	if err := s.db.SaveOptions(ctx, profileID, entries); err != nil {
		s.metrics.RecordSnapshotOp("save", "error")
		s.respondFromError(c, "options", snapshotWrapper.Wrap(err, "could not save the option list"))
		return
	}
	s.metrics.RecordSnapshotOp("save", "success")
	if s.mirror != nil {
		s.mirror.SnapshotSaved(ctx, profileID, entries)
	}
	c.JSON(http.StatusOK, gin.H{"saved": len(entries)})
}

// handleLoadOptions replaces the in-memory list with the persisted
// snapshot. A missing or unreadable snapshot hydrates an empty list.
func (s *Server) handleLoadOptions(c *gin.Context) {
	profileID := c.Param("profile")

	entries, malformed, err := s.db.LoadOptions(c.Request.Context(), profileID)
	if err != nil {
		s.metrics.RecordSnapshotOp("load", "error")
		s.respondFromError(c, "options", snapshotWrapper.Wrap(err, "could not load the saved option list"))
		return
	}
	if malformed {
		s.metrics.RecordSnapshotOp("load", "malformed")
		s.log.WithField("profile_id", profileID).Warnf("discarded malformed snapshot")
	} else {
		s.metrics.RecordSnapshotOp("load", "success")
	}

	list := s.session(profileID)
	list.Replace(entries)
	c.JSON(http.StatusOK, gin.H{"options": list.Entries(), "count": list.Len()})
}

// persist autosaves the list after note/comment edits. Failures are logged
// and counted, never surfaced: the in-memory edit already succeeded.
func (s *Server) persist(ctx context.Context, profileID string, list *options.List) {
	entries := list.Entries()
	if err := s.db.SaveOptions(ctx, profileID, entries); err != nil {
		s.metrics.RecordSnapshotOp("save", "error")
		s.log.WithField("profile_id", profileID).WithError(err).Warnf("autosave failed")
		return
	}
	s.metrics.RecordSnapshotOp("save", "success")
	if s.mirror != nil {
		s.mirror.SnapshotSaved(ctx, profileID, entries)
	}
}
