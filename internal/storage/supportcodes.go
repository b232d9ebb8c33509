// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/personnel-service/internal/types"
)

const supportCodeColumns = "id, actor_account_id, code, is_used, expires_at, created_at"

func (s *Storage) CreateSupportCode(ctx context.Context, c *types.SupportVerifyCode) (*types.SupportVerifyCode, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSupportCode")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate support code ID: %w", err)
	}

	var created types.SupportVerifyCode
	err = s.db.Statement(ctx).
		Insert("support_verify_codes").
		Columns("id", "actor_account_id", "code", "is_used", "expires_at").
		Values(id.String(), c.ActorAccountID, c.Code, false, c.ExpiresAt).
		Suffix("RETURNING " + supportCodeColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.ActorAccountID, &created.Code, &created.IsUsed, &created.ExpiresAt, &created.CreatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert support code: %w", err)
	}

	return &created, nil
}

// ConsumeSupportCode matches and marks a code used in one conditional
// update. Two concurrent validations of the same code cannot both succeed.
func (s *Storage) ConsumeSupportCode(ctx context.Context, actorAccountID, code string, now time.Time) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ConsumeSupportCode")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("support_verify_codes").
		Set("is_used", true).
		Where(sq.Eq{
			"actor_account_id": actorAccountID,
			"code":             code,
			"is_used":          false,
		}).
		Where(sq.Gt{"expires_at": now}).
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to consume support code: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}
