// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package organizations handles the organization intake flow (request,
// verify, approve), the org roster, and the aggregated org dashboard.
package organizations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/personnel-service/internal/audit"
	"github.com/canonical/personnel-service/internal/dashboard"
	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/monitoring"
	"github.com/canonical/personnel-service/internal/policy"
	"github.com/canonical/personnel-service/internal/tracing"
	"github.com/canonical/personnel-service/internal/types"
)

var (
	ErrNotAuthorized = errors.New("not authorized for organization management")
	ErrWrongOrg      = errors.New("actor does not belong to this organization")
)

type OrgCreateRequest struct {
	Name               string
	Base               string
	CommandTeam        string
	TierCode           string
	UnitMemorandumNote string
}

type Service struct {
	storage StorageInterface
	auditor AuditInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	auditor AuditInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		auditor: auditor,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Request submits an organization for the intake flow. Any authenticated
// account may submit; verification and approval stay with owner/admin.
func (s *Service) Request(ctx context.Context, actor *types.Actor, req *OrgCreateRequest) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Request")
	defer span.End()

	org, err := s.storage.CreateOrganization(ctx, &types.Organization{
		Name:        req.Name,
		Base:        req.Base,
		CommandTeam: req.CommandTeam,
		TierCode:    req.TierCode,
		IsVerified:  false,
		IsApproved:  false,
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, actor.ID, "org.request.create", org.ID, map[string]interface{}{
		"unit_memorandum_note": req.UnitMemorandumNote,
	})

	return org, nil
}

func (s *Service) Verify(ctx context.Context, actor *types.Actor, orgID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Verify")
	defer span.End()

	if err := requireAdminOrOwner(actor); err != nil {
		return nil, err
	}

	if err := s.storage.SetOrganizationVerified(ctx, orgID); err != nil {
		return nil, err
	}

	s.audit(ctx, actor.ID, "org.verify", orgID, nil)

	return s.storage.GetOrganizationByID(ctx, orgID)
}

// Approve requires prior verification; the conditional update in storage
// enforces the ordering.
func (s *Service) Approve(ctx context.Context, actor *types.Actor, orgID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Approve")
	defer span.End()

	if err := requireAdminOrOwner(actor); err != nil {
		return nil, err
	}

	if err := s.storage.SetOrganizationApproved(ctx, orgID); err != nil {
		return nil, err
	}

	s.audit(ctx, actor.ID, "org.approve", orgID, nil)

	return s.storage.GetOrganizationByID(ctx, orgID)
}

// Roster lists the organization's service member records for roster
// management. Org-scoped actors only see their own organization.
func (s *Service) Roster(ctx context.Context, actor *types.Actor, orgID string) ([]*types.ServiceMember, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.Roster")
	defer span.End()

	if err := s.orgScopeCheck(actor, policy.ActionOrgManageRoster, orgID); err != nil {
		return nil, err
	}

	return s.storage.ListServiceMembersByOrg(ctx, orgID)
}

// DashboardSummary aggregates red/amber/green readiness state across all of
// the organization's records.
func (s *Service) DashboardSummary(ctx context.Context, actor *types.Actor, orgID string, now time.Time) (*dashboard.OrgDashboard, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.DashboardSummary")
	defer span.End()

	if err := s.orgScopeCheck(actor, policy.ActionOrgDashboard, orgID); err != nil {
		return nil, err
	}

	members, err := s.storage.ListServiceMembersByOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list org service members: %w", err)
	}

	payloads := make([]json.RawMessage, 0, len(members))
	for _, m := range members {
		payloads = append(payloads, m.STPData)
	}

	summary := dashboard.BuildOrgDashboard(payloads, now)
	return &summary, nil
}

func (s *Service) orgScopeCheck(actor *types.Actor, action policy.Action, orgID string) error {
	role := policy.Role(actor.Role)
	if !policy.Decide(role, action).Allowed {
		return ErrNotAuthorized
	}
	if role == policy.RoleOrg && !policy.CanOrgAccess(actor.OrganizationID, orgID) {
		return ErrWrongOrg
	}
	return nil
}

func requireAdminOrOwner(actor *types.Actor) error {
	role := policy.Role(actor.Role)
	if role != policy.RoleAdmin && role != policy.RoleOwner {
		return ErrNotAuthorized
	}
	return nil
}

func (s *Service) audit(ctx context.Context, actorID, action, targetID string, meta map[string]interface{}) {
	err := s.auditor.Record(ctx, audit.Entry{
		ActorType:  "account",
		ActorID:    actorID,
		Action:     action,
		TargetType: "organization",
		TargetID:   targetID,
		Meta:       meta,
	})
	if err != nil {
		s.logger.Errorf("failed to record audit entry %s: %v", action, err)
	}
}

var _ ServiceInterface = (*Service)(nil)
