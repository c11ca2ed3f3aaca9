package sentry

import (
	"testing"
	"time"
)

func TestInitialize_EmptyTokenDisables(t *testing.T) {
	// No t.Parallel(): IsEnabled reads the SDK's global hub.

	if err := Initialize(Config{Token: ""}); err != nil {
		t.Errorf("Expected nil error for empty token, got %v", err)
	}

	if IsEnabled() {
		t.Error("Expected IsEnabled() to return false when token is empty")
	}
}

func TestInitialize_MissingHost(t *testing.T) {
	t.Parallel()

	if err := Initialize(Config{Token: "test-token", Host: ""}); err == nil {
		t.Error("Expected error when host is missing")
	}
}

func TestInitialize_ValidConfig(t *testing.T) {
	// No t.Parallel(): Initialize mutates the SDK's global hub.

	err := Initialize(Config{
		Token:       "test-token",
		Host:        "errors.betterstack.com",
		Environment: "test",
		Release:     "v0.0.0-test",
		SampleRate:  1.0,
	})
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	if !IsEnabled() {
		t.Error("Expected IsEnabled() to return true after Initialize")
	}

	Flush(time.Second)
}

func TestInitialize_ZeroSampleRateDefaults(t *testing.T) {
	// No t.Parallel(): shares the SDK's global hub.

	err := Initialize(Config{
		Token:      "test-token",
		Host:       "errors.betterstack.com",
		SampleRate: 0,
	})
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	Flush(time.Second)
}
