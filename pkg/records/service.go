// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package records manages service member records: creation, STP payload
// updates, deletion, control transfer via claim codes, and the per-record
// dashboard.
package records

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/personnel-service/internal/audit"
	"github.com/canonical/personnel-service/internal/branch"
	"github.com/canonical/personnel-service/internal/dashboard"
	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/monitoring"
	"github.com/canonical/personnel-service/internal/policy"
	"github.com/canonical/personnel-service/internal/tracing"
	"github.com/canonical/personnel-service/internal/types"
)

var ErrNotController = errors.New("only the record creator can issue a claim code")

const claimCodeBytes = 24

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	auditor AuditInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	auditor AuditInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		auditor: auditor,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Create validates the branch and component pair and persists a new record.
// The actor becomes the creator and initial controller; the subject stays
// unset until a claim code is redeemed.
func (s *Service) Create(ctx context.Context, actor *types.Actor, br, component string, stp json.RawMessage) (*types.ServiceMember, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.Create")
	defer span.End()

	if err := branch.Validate(br, component); err != nil {
		return nil, err
	}

	member := &types.ServiceMember{
		CreatorAccountID: actor.ID,
		OrganizationID:   actor.OrganizationID,
		Branch:           br,
		Component:        component,
		STPData:          stp,
	}

	created, err := s.storage.CreateServiceMember(ctx, member)
	if err != nil {
		return nil, fmt.Errorf("failed to create service member: %w", err)
	}

	s.audit(ctx, actor.ID, "service_member.create", created.ID, map[string]interface{}{
		"branch":    created.Branch,
		"component": created.Component,
	})

	return created, nil
}

func (s *Service) Get(ctx context.Context, actor *types.Actor, id string) (*types.ServiceMember, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.Get")
	defer span.End()

	return s.authz.AuthorizeServiceMember(ctx, actor, policy.ActionServiceMemberRead, id)
}

// ListAccessible returns the records the actor controls plus those shared
// with the actor's account in accepted status.
func (s *Service) ListAccessible(ctx context.Context, actor *types.Actor) ([]*types.ServiceMember, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.ListAccessible")
	defer span.End()

	return s.storage.ListAccessibleServiceMembers(ctx, actor.ID)
}

func (s *Service) UpdateSTP(ctx context.Context, actor *types.Actor, id string, stp json.RawMessage) (*types.ServiceMember, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.UpdateSTP")
	defer span.End()

	member, err := s.authz.AuthorizeServiceMember(ctx, actor, policy.ActionServiceMemberWriteSTP, id)
	if err != nil {
		return nil, err
	}

	if err := s.storage.UpdateServiceMemberSTP(ctx, id, stp); err != nil {
		return nil, fmt.Errorf("failed to update stp data: %w", err)
	}

	member.STPData = stp

	s.audit(ctx, actor.ID, "service_member.update_stp", id, nil)

	return member, nil
}

func (s *Service) Delete(ctx context.Context, actor *types.Actor, id string) error {
	ctx, span := s.tracer.Start(ctx, "records.Service.Delete")
	defer span.End()

	if _, err := s.authz.AuthorizeServiceMember(ctx, actor, policy.ActionServiceMemberDelete, id); err != nil {
		return err
	}

	if err := s.storage.DeleteServiceMember(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service member: %w", err)
	}

	s.audit(ctx, actor.ID, "service_member.delete", id, nil)

	return nil
}

// IssueClaimCode mints a control-transfer code for a record that has no
// subject yet. Only the creator may issue; issuing again overwrites any
// previously issued code.
func (s *Service) IssueClaimCode(ctx context.Context, actor *types.Actor, id string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.IssueClaimCode")
	defer span.End()

	member, err := s.storage.GetServiceMemberByID(ctx, id)
	if err != nil {
		return "", err
	}

	if member.CreatorAccountID != actor.ID {
		return "", ErrNotController
	}

	code, err := generateClaimCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate claim code: %w", err)
	}

	if err := s.storage.SetClaimCode(ctx, id, code); err != nil {
		return "", err
	}

	s.audit(ctx, actor.ID, "service_member.claim_code.issue", id, nil)

	return code, nil
}

// RedeemClaimCode links the actor as the record's subject and clears the
// code, atomically. A code redeems at most once.
func (s *Service) RedeemClaimCode(ctx context.Context, actor *types.Actor, code string) (*types.ServiceMember, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.RedeemClaimCode")
	defer span.End()

	member, err := s.storage.RedeemClaimCode(ctx, code, actor.ID)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, actor.ID, "service_member.claim", member.ID, nil)

	return member, nil
}

func (s *Service) Dashboard(ctx context.Context, actor *types.Actor, id string, now time.Time) (*dashboard.Cards, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.Dashboard")
	defer span.End()

	member, err := s.authz.AuthorizeServiceMember(ctx, actor, policy.ActionServiceMemberRead, id)
	if err != nil {
		return nil, err
	}

	cards := dashboard.BuildCards(member.STPData, now)
	return &cards, nil
}

func (s *Service) audit(ctx context.Context, actorID, action, targetID string, meta map[string]interface{}) {
	err := s.auditor.Record(ctx, audit.Entry{
		ActorType:  "account",
		ActorID:    actorID,
		Action:     action,
		TargetType: "service_member",
		TargetID:   targetID,
		Meta:       meta,
	})
	if err != nil {
		s.logger.Errorf("failed to record audit entry %s: %v", action, err)
	}
}

func generateClaimCode() (string, error) {
	buf := make([]byte, claimCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

var _ ServiceInterface = (*Service)(nil)
