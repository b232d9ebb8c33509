// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package support issues and validates the short-lived numeric codes that
// gate privileged support actions on accounts.
package support

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/canonical/personnel-service/internal/audit"
	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/monitoring"
	"github.com/canonical/personnel-service/internal/policy"
	"github.com/canonical/personnel-service/internal/tracing"
	"github.com/canonical/personnel-service/internal/types"
)

var ErrNotAuthorized = errors.New("support actions require owner or admin role")

type Service struct {
	storage StorageInterface
	auditor AuditInterface
	codeTTL time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	auditor AuditInterface,
	codeTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		auditor: auditor,
		codeTTL: codeTTL,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Generate mints a 6-digit zero-padded code bound to the actor, valid for
// the configured TTL and usable once. Multiple outstanding codes per actor
// are permitted.
func (s *Service) Generate(ctx context.Context, actor *types.Actor) (string, time.Duration, error) {
	ctx, span := s.tracer.Start(ctx, "support.Service.Generate")
	defer span.End()

	role := policy.Role(actor.Role)
	if role != policy.RoleOwner && role != policy.RoleAdmin {
		return "", 0, ErrNotAuthorized
	}

	code, err := generateNumericCode()
	if err != nil {
		return "", 0, fmt.Errorf("failed to generate verification code: %w", err)
	}

	_, err = s.storage.CreateSupportCode(ctx, &types.SupportVerifyCode{
		ActorAccountID: actor.ID,
		Code:           code,
		IsUsed:         false,
		ExpiresAt:      time.Now().UTC().Add(s.codeTTL),
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to persist verification code: %w", err)
	}

	return code, s.codeTTL, nil
}

// Validate consumes a code if it matches the actor, is unused and has not
// expired. The match and the used flag flip happen in one conditional
// update, so concurrent validations of the same code never both succeed.
func (s *Service) Validate(ctx context.Context, actor *types.Actor, code string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "support.Service.Validate")
	defer span.End()

	ok, err := s.storage.ConsumeSupportCode(ctx, actor.ID, code, time.Now().UTC())
	if err != nil {
		return false, err
	}

	if !ok {
		s.logger.Security().VerificationFailure(actor.ID)
	}

	return ok, nil
}

// SetAccountActive deactivates or reactivates an account. Callers must have
// passed code verification upstream.
func (s *Service) SetAccountActive(ctx context.Context, actor *types.Actor, accountID string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "support.Service.SetAccountActive")
	defer span.End()

	if !policy.Decide(policy.Role(actor.Role), policy.ActionSupportAccount).Allowed {
		return ErrNotAuthorized
	}

	if err := s.storage.SetAccountActive(ctx, accountID, active); err != nil {
		return err
	}

	action := "support.account.deactivate"
	if active {
		action = "support.account.reactivate"
	}

	err := s.auditor.Record(ctx, audit.Entry{
		ActorType:  "account",
		ActorID:    actor.ID,
		Action:     action,
		TargetType: "account",
		TargetID:   accountID,
	})
	if err != nil {
		s.logger.Errorf("failed to record audit entry %s: %v", action, err)
	}

	return nil
}

func generateNumericCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

var _ ServiceInterface = (*Service)(nil)
