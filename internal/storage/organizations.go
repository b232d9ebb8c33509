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

const organizationColumns = "id, name, base, command_team, tier_code, is_verified, is_approved, created_at"

func scanOrganization(row sq.RowScanner) (*types.Organization, error) {
	var o types.Organization

	err := row.Scan(&o.ID, &o.Name, &o.Base, &o.CommandTeam, &o.TierCode, &o.IsVerified, &o.IsApproved, &o.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &o, nil
}

func (s *Storage) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	created, err := scanOrganization(
		s.db.Statement(ctx).
			Insert("organizations").
			Columns("id", "name", "base", "command_team", "tier_code", "is_verified", "is_approved").
			Values(id.String(), o.Name, o.Base, o.CommandTeam, o.TierCode, o.IsVerified, o.IsApproved).
			Suffix("RETURNING " + organizationColumns).
			QueryRowContext(ctx),
	)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	return created, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByID")
	defer span.End()

	o, err := scanOrganization(
		s.db.Statement(ctx).
			Select(organizationColumns).
			From("organizations").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return o, nil
}

func (s *Storage) GetOrganizationByName(ctx context.Context, name string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByName")
	defer span.End()

	o, err := scanOrganization(
		s.db.Statement(ctx).
			Select(organizationColumns).
			From("organizations").
			Where(sq.Eq{"name": name}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization by name: %w", err)
	}

	return o, nil
}

func (s *Storage) SetOrganizationVerified(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetOrganizationVerified")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("organizations").
		Set("is_verified", true).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify organization: %w", err)
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

// SetOrganizationApproved flips approval, conditional on the organization
// being verified already.
func (s *Storage) SetOrganizationApproved(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetOrganizationApproved")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("organizations").
		Set("is_approved", true).
		Where(sq.Eq{"id": id, "is_verified": true}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to approve organization: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		// Distinguish a missing organization from an unverified one.
		if _, err := s.GetOrganizationByID(ctx, id); err != nil {
			return err
		}
		return ErrNotVerified
	}

	return nil
}
