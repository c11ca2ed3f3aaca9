// Package server implements the HTTP API: reference data lookups, cutoff
// facets, per-profile option list management, analysis and recommendation
// endpoints, export/import, and payment-backed entitlements.
package server

import (
	"context"
	"sync"

	"github.com/conspirant/kcet-planner-go/internal/catalog"
	"github.com/conspirant/kcet-planner-go/internal/cutoff"
	"github.com/conspirant/kcet-planner-go/internal/logger"
	"github.com/conspirant/kcet-planner-go/internal/metrics"
	"github.com/conspirant/kcet-planner-go/internal/options"
	"github.com/conspirant/kcet-planner-go/internal/payment"
	"github.com/conspirant/kcet-planner-go/internal/storage"
)

// OrderService creates payment orders and verifies checkout signatures.
// Implemented by payment.Service; faked in tests.
type OrderService interface {
	CreateOrder(amountPaise int64, receipt string) (*payment.Order, error)
	VerifyCheckoutSignature(orderID, paymentID, signature string) error
}

// SnapshotMirror receives snapshot lifecycle events for off-host backup.
// Optional; a nil mirror disables mirroring.
type SnapshotMirror interface {
	SnapshotSaved(ctx context.Context, profileID string, entries []options.Entry)
	SnapshotDeleted(ctx context.Context, profileID string)
}

// Config carries the handler-level settings.
type Config struct {
	PDFPricePaise       int64
	AnalyticsPricePaise int64
	MetricsUsername     string
	MetricsPassword     string
}

// Server holds the wired dependencies behind the HTTP handlers.
type Server struct {
	cfg      Config
	catalog  *catalog.Catalog
	dataset  *cutoff.Dataset
	analyzer *cutoff.Analyzer
	db       *storage.DB
	orders   OrderService
	mirror   SnapshotMirror
	metrics  *metrics.Metrics
	log      *logger.Logger

	mu       sync.Mutex
	sessions map[string]*options.List
}

// New creates a server. orders and mirror may be nil when the matching
// feature is not configured.
func New(cfg Config, cat *catalog.Catalog, dataset *cutoff.Dataset, analyzer *cutoff.Analyzer, db *storage.DB, orders OrderService, mirror SnapshotMirror, m *metrics.Metrics, log *logger.Logger) *Server {
	return &Server{
		cfg:      cfg,
		catalog:  cat,
		dataset:  dataset,
		analyzer: analyzer,
		db:       db,
		orders:   orders,
		mirror:   mirror,
		metrics:  m,
		log:      log.WithModule("server"),
		sessions: make(map[string]*options.List),
	}
}

// session returns the in-memory option list for a profile, creating it on
// first use. Lists live for the process lifetime; state is hydrated from
// storage only through the explicit load endpoint.
func (s *Server) session(profileID string) *options.List {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.sessions[profileID]
	if !ok {
		list = options.NewList()
		s.sessions[profileID] = list
	}
	return list
}
