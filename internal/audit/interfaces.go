// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
)

// Entry is one immutable audit event. Meta carries action-specific details.
type Entry struct {
	ActorType  string
	ActorID    string
	Action     string
	TargetType string
	TargetID   string
	Meta       map[string]interface{}
}

// RecorderInterface appends entries to the audit log. Every state-changing
// operation in the service emits exactly one entry.
type RecorderInterface interface {
	Record(ctx context.Context, e Entry) error
}
