// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package shares

import (
	"context"

	"github.com/canonical/personnel-service/internal/audit"
	"github.com/canonical/personnel-service/internal/types"
)

// StorageInterface is the subset of the storage operations this package needs.
type StorageInterface interface {
	GetServiceMemberByID(ctx context.Context, id string) (*types.ServiceMember, error)
	CreateShare(ctx context.Context, g *types.ShareGrant) (*types.ShareGrant, error)
	GetShareByID(ctx context.Context, id string) (*types.ShareGrant, error)
	ListSharesForServiceMember(ctx context.Context, serviceMemberID string) ([]*types.ShareGrant, error)
	DecideShare(ctx context.Context, id, decision string) (*types.ShareGrant, error)
}

type AuditInterface interface {
	Record(ctx context.Context, e audit.Entry) error
}

type ServiceInterface interface {
	GrantToAccount(ctx context.Context, actor *types.Actor, serviceMemberID, targetAccountID, permission string) (*types.ShareGrant, error)
	GrantToOrg(ctx context.Context, actor *types.Actor, serviceMemberID, targetOrgID string) (*types.ShareGrant, error)
	Decide(ctx context.Context, actor *types.Actor, shareID, decision, reason string) (*types.ShareGrant, error)
	ListForServiceMember(ctx context.Context, actor *types.Actor, serviceMemberID string) ([]*types.ShareGrant, error)
}
