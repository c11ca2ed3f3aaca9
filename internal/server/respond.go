package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/conspirant/kcet-planner-go/internal/errors"
)

// errorBody is the JSON error envelope: {"error": ..., "details": ...}.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, message, details string) {
	c.JSON(status, errorBody{Error: message, Details: details})
}

// respondFromError maps domain errors onto HTTP statuses.
func (s *Server) respondFromError(c *gin.Context, module string, err error) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		s.metrics.RecordHTTPError("validation", module)
		respondError(c, http.StatusBadRequest, "invalid request", validationErr.Error())
	case errors.Is(err, apperrors.ErrInvalidInput):
		s.metrics.RecordHTTPError("validation", module)
		respondError(c, http.StatusBadRequest, "invalid request", err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		s.metrics.RecordHTTPError("not_found", module)
		respondError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, apperrors.ErrEntitlementRequired):
		s.metrics.RecordHTTPError("entitlement", module)
		respondError(c, http.StatusPaymentRequired, "payment required", err.Error())
	case errors.Is(err, apperrors.ErrSignatureMismatch):
		s.metrics.RecordHTTPError("signature", module)
		respondError(c, http.StatusBadRequest, "invalid signature", "checkout signature verification failed")
	case errors.Is(err, apperrors.ErrDatasetUnavailable):
		s.metrics.RecordHTTPError("unavailable", module)
		respondError(c, http.StatusServiceUnavailable, "cutoff data unavailable", "no cutoff dataset is loaded")
	default:
		s.metrics.RecordHTTPError("internal", module)
		s.log.WithModule(module).WithError(err).Errorf("request failed")
		respondError(c, http.StatusInternalServerError, "internal error", apperrors.GetUserMessage(err))
	}
}
