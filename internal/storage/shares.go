// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/personnel-service/internal/types"
)

const shareColumns = "id, service_member_id, target_account_id, target_org_id, permission, status, created_at"

func scanShare(row sq.RowScanner) (*types.ShareGrant, error) {
	var g types.ShareGrant
	var account, org sql.NullString

	err := row.Scan(&g.ID, &g.ServiceMemberID, &account, &org, &g.Permission, &g.Status, &g.CreatedAt)
	if err != nil {
		return nil, err
	}

	switch {
	case account.Valid:
		g.Target = types.AccountTarget(account.String)
	case org.Valid:
		g.Target = types.OrgTarget(org.String)
	}

	return &g, nil
}

func shareTargetColumns(t types.ShareTarget) (sql.NullString, sql.NullString) {
	if t.Kind == types.ShareTargetAccount {
		return nullable(t.ID), sql.NullString{}
	}
	return sql.NullString{}, nullable(t.ID)
}

func (s *Storage) CreateShare(ctx context.Context, g *types.ShareGrant) (*types.ShareGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateShare")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate share ID: %w", err)
	}

	targetAccount, targetOrg := shareTargetColumns(g.Target)

	created, err := scanShare(
		s.db.Statement(ctx).
			Insert("service_member_shares").
			Columns("id", "service_member_id", "target_account_id", "target_org_id", "permission", "status").
			Values(id.String(), g.ServiceMemberID, targetAccount, targetOrg, g.Permission, g.Status).
			Suffix("RETURNING " + shareColumns).
			QueryRowContext(ctx),
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert share: %w", err)
	}

	return created, nil
}

func (s *Storage) GetShareByID(ctx context.Context, id string) (*types.ShareGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetShareByID")
	defer span.End()

	g, err := scanShare(
		s.db.Statement(ctx).
			Select(shareColumns).
			From("service_member_shares").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get share: %w", err)
	}

	return g, nil
}

// FindAcceptedAccountShare is the lookup backing share-based access checks.
func (s *Storage) FindAcceptedAccountShare(ctx context.Context, serviceMemberID, accountID string) (*types.ShareGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindAcceptedAccountShare")
	defer span.End()

	g, err := scanShare(
		s.db.Statement(ctx).
			Select(shareColumns).
			From("service_member_shares").
			Where(sq.Eq{
				"service_member_id": serviceMemberID,
				"target_account_id": accountID,
				"status":            types.ShareStatusAccepted,
			}).
			OrderBy("created_at DESC").
			Limit(1).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account share: %w", err)
	}

	return g, nil
}

func (s *Storage) ListSharesForServiceMember(ctx context.Context, serviceMemberID string) ([]*types.ShareGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSharesForServiceMember")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(shareColumns).
		From("service_member_shares").
		Where(sq.Eq{"service_member_id": serviceMemberID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	defer rows.Close()

	var shares []*types.ShareGrant
	for rows.Next() {
		g, err := scanShare(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		shares = append(shares, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return shares, nil
}

// DecideShare moves a pending org share to a terminal status. The status
// check and write are one conditional update so concurrent decisions on the
// same grant resolve to exactly one winner.
func (s *Storage) DecideShare(ctx context.Context, id, decision string) (*types.ShareGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DecideShare")
	defer span.End()

	g, err := scanShare(
		s.db.Statement(ctx).
			Update("service_member_shares").
			Set("status", decision).
			Where(sq.Eq{"id": id, "status": types.ShareStatusPending}).
			Where("target_org_id IS NOT NULL").
			Suffix("RETURNING " + shareColumns).
			QueryRowContext(ctx),
	)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to decide share: %w", err)
	}

	// No row matched: missing grant, wrong target kind, or already decided.
	existing, err := s.GetShareByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Target.Kind != types.ShareTargetOrg {
		return nil, ErrNotFound
	}

	return nil, ErrAlreadyDecided
}
