// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package support

import (
	"context"
	"time"

	"github.com/canonical/personnel-service/internal/audit"
	"github.com/canonical/personnel-service/internal/types"
)

// StorageInterface is the subset of the storage operations this package needs.
type StorageInterface interface {
	CreateSupportCode(ctx context.Context, c *types.SupportVerifyCode) (*types.SupportVerifyCode, error)
	ConsumeSupportCode(ctx context.Context, actorAccountID, code string, now time.Time) (bool, error)
	SetAccountActive(ctx context.Context, id string, active bool) error
}

type AuditInterface interface {
	Record(ctx context.Context, e audit.Entry) error
}

type ServiceInterface interface {
	Generate(ctx context.Context, actor *types.Actor) (string, time.Duration, error)
	Validate(ctx context.Context, actor *types.Actor, code string) (bool, error)
	SetAccountActive(ctx context.Context, actor *types.Actor, accountID string, active bool) error
}
