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

const accountColumns = "id, email, role, organization_id, tier_code, is_active, created_at"

func scanAccount(row sq.RowScanner) (*types.Account, error) {
	var a types.Account
	var org sql.NullString

	err := row.Scan(&a.ID, &a.Email, &a.Role, &org, &a.TierCode, &a.IsActive, &a.CreatedAt)
	if err != nil {
		return nil, err
	}

	a.OrganizationID = org.String

	return &a, nil
}

func (s *Storage) GetAccountByID(ctx context.Context, id string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccountByID")
	defer span.End()

	a, err := scanAccount(
		s.db.Statement(ctx).
			Select(accountColumns).
			From("accounts").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return a, nil
}

func (s *Storage) CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAccount")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account ID: %w", err)
	}

	created, err := scanAccount(
		s.db.Statement(ctx).
			Insert("accounts").
			Columns("id", "email", "role", "organization_id", "tier_code", "is_active").
			Values(id.String(), a.Email, a.Role, nullable(a.OrganizationID), a.TierCode, a.IsActive).
			Suffix("RETURNING " + accountColumns).
			QueryRowContext(ctx),
	)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	return created, nil
}

func (s *Storage) SetAccountActive(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetAccountActive")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("accounts").
		Set("is_active", active).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update account status: %w", err)
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
