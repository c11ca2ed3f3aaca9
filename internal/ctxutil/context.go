// Package ctxutil provides type-safe context value management.
// Uses private key types to prevent collisions.
package ctxutil

import (
	"context"
)

type contextKey string

const (
	profileIDKey contextKey = "ctxutil.profileID"
	requestIDKey contextKey = "ctxutil.requestID"
)

// WithProfileID adds a planner profile ID to the context.
// Profile IDs scope option lists and entitlements to a single applicant.
func WithProfileID(ctx context.Context, profileID string) context.Context {
	return context.WithValue(ctx, profileIDKey, profileID)
}

// GetProfileID retrieves the profile ID from the context.
// Returns the profile ID if found, empty string otherwise.
func GetProfileID(ctx context.Context) string {
	if v := ctx.Value(profileIDKey); v != nil {
		if profileID, ok := v.(string); ok && profileID != "" {
			return profileID
		}
	}
	return ""
}

// WithRequestID adds a request ID to the context for log correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
// Returns the request ID if found, empty string otherwise.
func GetRequestID(ctx context.Context) string {
	if v := ctx.Value(requestIDKey); v != nil {
		if requestID, ok := v.(string); ok && requestID != "" {
			return requestID
		}
	}
	return ""
}
