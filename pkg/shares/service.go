// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package shares implements the share grant lifecycle: direct account
// shares, pending organization shares, and the one-shot org decision.
package shares

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/personnel-service/internal/audit"
	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/monitoring"
	"github.com/canonical/personnel-service/internal/policy"
	"github.com/canonical/personnel-service/internal/tracing"
	"github.com/canonical/personnel-service/internal/types"
)

var (
	ErrNotController     = errors.New("not record controller")
	ErrInvalidPermission = errors.New("permission must be view or edit")
	ErrInvalidDecision   = errors.New("decision must be accepted or denied")
	ErrDecisionForbidden = errors.New("org decision not permitted for role")
)

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

// GrantToAccount creates an account-targeted share. There is no counterparty
// acceptance step, so the grant lands in accepted status immediately.
func (s *Service) GrantToAccount(ctx context.Context, actor *types.Actor, serviceMemberID, targetAccountID, permission string) (*types.ShareGrant, error) {
	ctx, span := s.tracer.Start(ctx, "shares.Service.GrantToAccount")
	defer span.End()

	if permission == "" {
		permission = types.SharePermissionView
	}
	if permission != types.SharePermissionView && permission != types.SharePermissionEdit {
		return nil, ErrInvalidPermission
	}

	if err := s.controllerCheck(ctx, actor, serviceMemberID); err != nil {
		return nil, err
	}

	grant, err := s.storage.CreateShare(ctx, &types.ShareGrant{
		ServiceMemberID: serviceMemberID,
		Target:          types.AccountTarget(targetAccountID),
		Permission:      permission,
		Status:          types.ShareStatusAccepted,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create share: %w", err)
	}

	s.audit(ctx, actor.ID, "share.account.grant", "service_member", serviceMemberID, map[string]interface{}{
		"permission": permission,
	})

	return grant, nil
}

// GrantToOrg creates an organization-targeted share. Permission is locked to
// edit and the grant waits in pending until an org decision. A grant after a
// prior denial creates a fresh row.
func (s *Service) GrantToOrg(ctx context.Context, actor *types.Actor, serviceMemberID, targetOrgID string) (*types.ShareGrant, error) {
	ctx, span := s.tracer.Start(ctx, "shares.Service.GrantToOrg")
	defer span.End()

	if err := s.controllerCheck(ctx, actor, serviceMemberID); err != nil {
		return nil, err
	}

	grant, err := s.storage.CreateShare(ctx, &types.ShareGrant{
		ServiceMemberID: serviceMemberID,
		Target:          types.OrgTarget(targetOrgID),
		Permission:      types.SharePermissionEdit,
		Status:          types.ShareStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create share: %w", err)
	}

	s.audit(ctx, actor.ID, "share.org.request", "service_member", serviceMemberID, map[string]interface{}{
		"target_org_id": targetOrgID,
	})

	return grant, nil
}

// Decide settles a pending org-targeted share. The conditional update in
// storage guarantees a pending grant is decided at most once.
func (s *Service) Decide(ctx context.Context, actor *types.Actor, shareID, decision, reason string) (*types.ShareGrant, error) {
	ctx, span := s.tracer.Start(ctx, "shares.Service.Decide")
	defer span.End()

	role := policy.Role(actor.Role)
	if role != policy.RoleOrg && role != policy.RoleAdmin && role != policy.RoleOwner {
		return nil, ErrDecisionForbidden
	}

	if decision != types.ShareStatusAccepted && decision != types.ShareStatusDenied {
		return nil, ErrInvalidDecision
	}

	grant, err := s.storage.DecideShare(ctx, shareID, decision)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, actor.ID, "share.org."+decision, "share", grant.ID, map[string]interface{}{
		"reason": reason,
	})

	return grant, nil
}

func (s *Service) ListForServiceMember(ctx context.Context, actor *types.Actor, serviceMemberID string) ([]*types.ShareGrant, error) {
	ctx, span := s.tracer.Start(ctx, "shares.Service.ListForServiceMember")
	defer span.End()

	if err := s.controllerCheck(ctx, actor, serviceMemberID); err != nil {
		return nil, err
	}

	return s.storage.ListSharesForServiceMember(ctx, serviceMemberID)
}

func (s *Service) controllerCheck(ctx context.Context, actor *types.Actor, serviceMemberID string) error {
	member, err := s.storage.GetServiceMemberByID(ctx, serviceMemberID)
	if err != nil {
		return err
	}
	if !policy.CanControl(actor.ID, member) {
		return ErrNotController
	}
	return nil
}

func (s *Service) audit(ctx context.Context, actorID, action, targetType, targetID string, meta map[string]interface{}) {
	err := s.auditor.Record(ctx, audit.Entry{
		ActorType:  "account",
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Meta:       meta,
	})
	if err != nil {
		s.logger.Errorf("failed to record audit entry %s: %v", action, err)
	}
}

var _ ServiceInterface = (*Service)(nil)
