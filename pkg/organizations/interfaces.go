// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"time"

	"github.com/canonical/personnel-service/internal/audit"
	"github.com/canonical/personnel-service/internal/dashboard"
	"github.com/canonical/personnel-service/internal/types"
)

// StorageInterface is the subset of the storage operations this package needs.
type StorageInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	SetOrganizationVerified(ctx context.Context, id string) error
	SetOrganizationApproved(ctx context.Context, id string) error
	ListServiceMembersByOrg(ctx context.Context, orgID string) ([]*types.ServiceMember, error)
}

type AuditInterface interface {
	Record(ctx context.Context, e audit.Entry) error
}

type ServiceInterface interface {
	Request(ctx context.Context, actor *types.Actor, req *OrgCreateRequest) (*types.Organization, error)
	Verify(ctx context.Context, actor *types.Actor, orgID string) (*types.Organization, error)
	Approve(ctx context.Context, actor *types.Actor, orgID string) (*types.Organization, error)
	Roster(ctx context.Context, actor *types.Actor, orgID string) ([]*types.ServiceMember, error)
	DashboardSummary(ctx context.Context, actor *types.Actor, orgID string, now time.Time) (*dashboard.OrgDashboard, error)
}
