package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/conspirant/kcet-planner-go/internal/errors"
	"github.com/conspirant/kcet-planner-go/internal/storage"
)

type orderRequest struct {
	Amount *int64 `json:"amount"`
}

type grantRequest struct {
	Feature           string `json:"feature"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// handleCreateOrder proxies order creation to the payment provider.
// The request carries the amount in paise.
func (s *Server) handleCreateOrder(c *gin.Context) {
	if s.orders == nil {
		s.metrics.RecordOrder("provider_error")
		respondError(c, http.StatusInternalServerError, "payments unavailable", "payment provider is not configured")
		return
	}

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount == nil {
		s.metrics.RecordOrder("invalid")
		respondError(c, http.StatusBadRequest, "invalid request", "amount is required")
		return
	}

	order, err := s.orders.CreateOrder(*req.Amount, "kcet-planner")
	if err != nil {
		if isValidation(err) {
			s.metrics.RecordOrder("invalid")
			respondError(c, http.StatusBadRequest, "invalid request", err.Error())
			return
		}
		s.metrics.RecordOrder("provider_error")
		respondError(c, http.StatusInternalServerError, "order creation failed", err.Error())
		return
	}
	s.metrics.RecordOrder("created")
	c.JSON(http.StatusOK, order)
}

// handleListEntitlements reports which paid features a profile holds, plus
// the current prices for locked ones.
func (s *Server) handleListEntitlements(c *gin.Context) {
	features, err := s.db.Entitlements(c.Request.Context(), c.Param("profile"))
	if err != nil {
		s.respondFromError(c, "payment", err)
		return
	}
	if features == nil {
		features = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"entitlements": features,
		"prices": gin.H{
			storage.FeaturePDF:       s.cfg.PDFPricePaise,
			storage.FeatureAnalytics: s.cfg.AnalyticsPricePaise,
		},
	})
}

// handleGrantEntitlement unlocks a feature after verifying the Razorpay
// checkout signature. The signature proves the payment completed against
// our API secret; a bare client-side flag is not accepted.
func (s *Server) handleGrantEntitlement(c *gin.Context) {
	var req grantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondFromError(c, "payment", apperrors.NewValidationError("body", err.Error()))
		return
	}
	if !storage.ValidFeature(req.Feature) {
		s.metrics.EntitlementGrants.WithLabelValues(req.Feature, "rejected").Inc()
		s.respondFromError(c, "payment", apperrors.NewValidationError("feature", "unknown feature"))
		return
	}
	if s.orders == nil {
		respondError(c, http.StatusInternalServerError, "payments unavailable", "payment provider is not configured")
		return
	}

	if err := s.orders.VerifyCheckoutSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature); err != nil {
		s.metrics.EntitlementGrants.WithLabelValues(req.Feature, "rejected").Inc()
		s.respondFromError(c, "payment", err)
		return
	}

	profileID := c.Param("profile")
	if err := s.db.GrantEntitlement(c.Request.Context(), profileID, req.Feature, req.RazorpayOrderID, req.RazorpayPaymentID); err != nil {
		s.respondFromError(c, "payment", err)
		return
	}
	s.metrics.EntitlementGrants.WithLabelValues(req.Feature, "granted").Inc()
	c.JSON(http.StatusOK, gin.H{"granted": req.Feature})
}

// requireEntitlement gates a route on a stored entitlement.
func (s *Server) requireEntitlement(feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		has, err := s.db.HasEntitlement(c.Request.Context(), c.Param("profile"), feature)
		if err != nil {
			s.respondFromError(c, "payment", err)
			c.Abort()
			return
		}
		if !has {
			s.respondFromError(c, "payment",
				fmt.Errorf("%w: %s", apperrors.ErrEntitlementRequired, feature))
			c.Abort()
			return
		}
		c.Next()
	}
}

func isValidation(err error) bool {
	var validationErr *apperrors.ValidationError
	return errors.As(err, &validationErr) || errors.Is(err, apperrors.ErrInvalidInput)
}
