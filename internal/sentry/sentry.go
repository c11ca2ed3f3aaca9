// Package sentry wires the Sentry Go SDK to Better Stack's error tracking
// backend. Better Stack speaks the Sentry ingest protocol, so the SDK is
// pointed at its host through a synthesized DSN.
package sentry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config holds the error tracking settings.
type Config struct {
	// Token is the Better Stack Errors application token. Leaving it empty
	// disables error tracking entirely.
	Token string

	// Host is the ingesting host, e.g. "errors.betterstack.com".
	Host string

	// Environment names the deployment (production, staging, ...).
	Environment string

	// Release is the application version reported with each event.
	Release string

	// SampleRate controls error sampling, 0 < rate <= 1. Zero means 1.
	SampleRate float64

	// Debug turns on SDK debug logging.
	Debug bool
}

// Initialize configures the global Sentry client. With an empty token it is
// a no-op and the process runs without error tracking.
func Initialize(cfg Config) error {
	if cfg.Token == "" {
		return nil
	}
	if cfg.Host == "" {
		return fmt.Errorf("sentry host is required when token is provided")
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = 1.0
	}

	// Better Stack ignores the project ID but the SDK requires one in the DSN.
	dsn := fmt.Sprintf("https://%s@%s/1", cfg.Token, cfg.Host)

	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		SampleRate:       sampleRate,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
	})
}

// IsEnabled reports whether a client was initialized.
func IsEnabled() bool {
	return sentry.CurrentHub().Client() != nil
}

// Flush drains buffered events, returning false on timeout.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
