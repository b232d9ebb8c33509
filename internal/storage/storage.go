// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/personnel-service/internal/db"
	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/monitoring"
	"github.com/canonical/personnel-service/internal/tracing"
	"github.com/canonical/personnel-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

const serviceMemberColumns = "id, creator_account_id, subject_account_id, organization_id, branch, component, stp_data, claim_code, created_at, updated_at"

func scanServiceMember(row sq.RowScanner) (*types.ServiceMember, error) {
	var m types.ServiceMember
	var subject, org, claim sql.NullString
	var stp []byte

	err := row.Scan(&m.ID, &m.CreatorAccountID, &subject, &org, &m.Branch, &m.Component, &stp, &claim, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}

	m.SubjectAccountID = subject.String
	m.OrganizationID = org.String
	m.ClaimCode = claim.String
	m.STPData = json.RawMessage(stp)

	return &m, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *Storage) CreateServiceMember(ctx context.Context, m *types.ServiceMember) (*types.ServiceMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateServiceMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate service member ID: %w", err)
	}

	stp := m.STPData
	if stp == nil {
		stp = json.RawMessage("{}")
	}

	created, err := scanServiceMember(
		s.db.Statement(ctx).
			Insert("service_members").
			Columns("id", "creator_account_id", "subject_account_id", "organization_id", "branch", "component", "stp_data").
			Values(id.String(), m.CreatorAccountID, nullable(m.SubjectAccountID), nullable(m.OrganizationID), m.Branch, m.Component, []byte(stp)).
			Suffix("RETURNING " + serviceMemberColumns).
			QueryRowContext(ctx),
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert service member: %w", err)
	}

	return created, nil
}

func (s *Storage) GetServiceMemberByID(ctx context.Context, id string) (*types.ServiceMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetServiceMemberByID")
	defer span.End()

	m, err := scanServiceMember(
		s.db.Statement(ctx).
			Select(serviceMemberColumns).
			From("service_members").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service member: %w", err)
	}

	return m, nil
}

// ListAccessibleServiceMembers returns records the account controls plus
// records shared to it through an accepted account share.
func (s *Storage) ListAccessibleServiceMembers(ctx context.Context, accountID string) ([]*types.ServiceMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAccessibleServiceMembers")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(serviceMemberColumns).
		From("service_members").
		Where(sq.Or{
			sq.And{sq.Eq{"creator_account_id": accountID}, sq.Eq{"subject_account_id": nil}},
			sq.Eq{"subject_account_id": accountID},
			sq.Expr("id IN (SELECT service_member_id FROM service_member_shares WHERE target_account_id = ? AND status = ?)", accountID, types.ShareStatusAccepted),
		}).
		OrderBy("created_at ASC")

	return s.queryServiceMembers(ctx, query)
}

func (s *Storage) ListServiceMembersByOrg(ctx context.Context, orgID string) ([]*types.ServiceMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListServiceMembersByOrg")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(serviceMemberColumns).
		From("service_members").
		Where(sq.Eq{"organization_id": orgID}).
		OrderBy("created_at ASC")

	return s.queryServiceMembers(ctx, query)
}

func (s *Storage) queryServiceMembers(ctx context.Context, query sq.SelectBuilder) ([]*types.ServiceMember, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list service members: %w", err)
	}
	defer rows.Close()

	var members []*types.ServiceMember
	for rows.Next() {
		m, err := scanServiceMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) UpdateServiceMemberSTP(ctx context.Context, id string, stp json.RawMessage) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateServiceMemberSTP")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("service_members").
		Set("stp_data", []byte(stp)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update stp data: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteServiceMember(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteServiceMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("service_members").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete service member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// SetClaimCode stores a claim code on a record. The update is conditional on
// the record not having a subject yet, which makes a concurrent issue/redeem
// pair resolve to exactly one winner.
func (s *Storage) SetClaimCode(ctx context.Context, id, code string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetClaimCode")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("service_members").
		Set("claim_code", code).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where("subject_account_id IS NULL").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set claim code: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		// Either the record is gone or a subject is already linked.
		if _, err := s.GetServiceMemberByID(ctx, id); err != nil {
			return err
		}
		return ErrAlreadyLinked
	}

	return nil
}

// RedeemClaimCode links the actor as the record subject and clears the code
// in a single conditional update. Exactly one of two concurrent redemptions
// can succeed.
func (s *Storage) RedeemClaimCode(ctx context.Context, code, actorAccountID string) (*types.ServiceMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RedeemClaimCode")
	defer span.End()

	m, err := scanServiceMember(
		s.db.Statement(ctx).
			Update("service_members").
			Set("subject_account_id", actorAccountID).
			Set("claim_code", nil).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"claim_code": code}).
			Where("subject_account_id IS NULL").
			Suffix("RETURNING " + serviceMemberColumns).
			QueryRowContext(ctx),
	)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to redeem claim code: %w", err)
	}

	// No row matched: distinguish an unknown code from a code attached to a
	// record that acquired a subject in the meantime.
	var id string
	err = s.db.Statement(ctx).
		Select("id").
		From("service_members").
		Where(sq.Eq{"claim_code": code}).
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve claim code: %w", err)
	}

	return nil, ErrAlreadyClaimed
}
