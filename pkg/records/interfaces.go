// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package records

import (
	"context"
	"encoding/json"
	"time"

	"github.com/canonical/personnel-service/internal/audit"
	"github.com/canonical/personnel-service/internal/dashboard"
	"github.com/canonical/personnel-service/internal/policy"
	"github.com/canonical/personnel-service/internal/types"
)

// StorageInterface is the subset of the storage operations this package needs.
type StorageInterface interface {
	CreateServiceMember(ctx context.Context, m *types.ServiceMember) (*types.ServiceMember, error)
	GetServiceMemberByID(ctx context.Context, id string) (*types.ServiceMember, error)
	ListAccessibleServiceMembers(ctx context.Context, accountID string) ([]*types.ServiceMember, error)
	UpdateServiceMemberSTP(ctx context.Context, id string, stp json.RawMessage) error
	DeleteServiceMember(ctx context.Context, id string) error
	SetClaimCode(ctx context.Context, id, code string) error
	RedeemClaimCode(ctx context.Context, code, actorAccountID string) (*types.ServiceMember, error)
}

// AuthorizerInterface is the subset of the authorization gate this package needs.
type AuthorizerInterface interface {
	AuthorizeServiceMember(ctx context.Context, actor *types.Actor, action policy.Action, serviceMemberID string) (*types.ServiceMember, error)
}

type AuditInterface interface {
	Record(ctx context.Context, e audit.Entry) error
}

type ServiceInterface interface {
	Create(ctx context.Context, actor *types.Actor, branch, component string, stp json.RawMessage) (*types.ServiceMember, error)
	Get(ctx context.Context, actor *types.Actor, id string) (*types.ServiceMember, error)
	ListAccessible(ctx context.Context, actor *types.Actor) ([]*types.ServiceMember, error)
	UpdateSTP(ctx context.Context, actor *types.Actor, id string, stp json.RawMessage) (*types.ServiceMember, error)
	Delete(ctx context.Context, actor *types.Actor, id string) error
	IssueClaimCode(ctx context.Context, actor *types.Actor, id string) (string, error)
	RedeemClaimCode(ctx context.Context, actor *types.Actor, code string) (*types.ServiceMember, error)
	Dashboard(ctx context.Context, actor *types.Actor, id string, now time.Time) (*dashboard.Cards, error)
}
