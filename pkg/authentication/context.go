// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/personnel-service/internal/types"
)

// Define private custom types to avoid collisions
type contextKey struct{}
type actorKey struct{}

var (
	userContextKey  = contextKey{}
	actorContextKey = actorKey{}
)

// WithUserID returns a new context with the given user ID derived from the parent context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

// GetUserID retrieves the user ID from the context.
// Returns an empty string and false if the user ID is not present.
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userContextKey).(string)
	return id, ok
}

// WithActor returns a new context carrying the resolved request actor.
func WithActor(ctx context.Context, actor *types.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

// GetActor retrieves the resolved actor from the context.
func GetActor(ctx context.Context) (*types.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(*types.Actor)
	return actor, ok
}
