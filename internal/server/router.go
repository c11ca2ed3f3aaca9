package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/conspirant/kcet-planner-go/internal/buildinfo"
	"github.com/conspirant/kcet-planner-go/internal/storage"
)

// Routes registers all HTTP routes on the router.
func (s *Server) Routes(router *gin.Engine, registry *prometheus.Registry) {
	// Wrong-method requests on known paths must answer 405, not 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, "method not allowed", "")
	})

	// Liveness Probe - only that the process is running, never dependencies
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": buildinfo.Version})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness Probe - full dependency check
	readyHandler := func(c *gin.Context) {
		if err := s.db.Ready(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"reason": err.Error(),
			})
			return
		}

		snapshotCount, _ := s.db.CountSnapshots(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"status":   "ready",
			"database": "connected",
			"data": gin.H{
				"colleges":  len(s.catalog.Colleges()),
				"branches":  len(s.catalog.Branches()),
				"cutoffs":   s.dataset.Len(),
				"snapshots": snapshotCount,
			},
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// Prometheus metrics endpoint, optionally behind Basic Auth
	metricsAuth := metricsAuthMiddleware(s.cfg.MetricsUsername, s.cfg.MetricsPassword)
	router.GET("/metrics", metricsAuth, gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	api.Use(requestContextMiddleware())
	{
		api.GET("/colleges", s.handleColleges)
		api.GET("/branches", s.handleBranches)

		cutoffs := api.Group("/cutoffs")
		{
			cutoffs.GET("/years", s.handleYears)
			cutoffs.GET("/rounds", s.handleRounds)
			cutoffs.GET("/courses", s.handleCourses)
			cutoffs.GET("/categories", s.handleCategories)
		}

		api.POST("/recommendations", s.handleRecommendations)
		api.POST("/orders", s.handleCreateOrder)

		profile := api.Group("/profiles/:profile")
		profile.Use(profileContextMiddleware())
		{
			profile.GET("/options", s.handleListOptions)
			profile.POST("/options", s.handleAddOption)
			profile.DELETE("/options", s.handleClearOptions)
			profile.PUT("/options/:id/priority", s.handleSetPriority)
			profile.PUT("/options/:id/notes", s.handleSetNotes)
			profile.PUT("/options/:id/comments", s.handleSetComments)
			profile.POST("/options/reorder", s.handleReorder)
			profile.POST("/options/save", s.handleSaveOptions)
			profile.POST("/options/load", s.handleLoadOptions)
			profile.POST("/options/autogenerate", s.handleAutoGenerate)

			profile.POST("/analysis", s.requireEntitlement(storage.FeatureAnalytics), s.handleAnalysis)

			profile.GET("/export/pdf", s.requireEntitlement(storage.FeaturePDF), s.handleExportPDF)
			profile.GET("/export/xlsx", s.handleExportXLSX)
			profile.POST("/import/xlsx", s.handleImportXLSX)

			profile.GET("/entitlements", s.handleListEntitlements)
			profile.POST("/entitlements", s.handleGrantEntitlement)
		}
	}
}
