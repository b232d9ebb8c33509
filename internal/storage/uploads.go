// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/personnel-service/internal/types"
)

const uploadColumns = "id, service_member_id, spot_key, filename, content_type, size_bytes, storage_path, created_at"

func scanUpload(row sq.RowScanner) (*types.UploadFile, error) {
	var f types.UploadFile

	err := row.Scan(&f.ID, &f.ServiceMemberID, &f.SpotKey, &f.Filename, &f.ContentType, &f.SizeBytes, &f.StoragePath, &f.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &f, nil
}

// ListUploadsForSpot returns the files of one slot oldest-first. With
// forUpdate set the rows are locked for the enclosing transaction, which
// serializes concurrent check-evict-insert sequences on the same slot.
func (s *Storage) ListUploadsForSpot(ctx context.Context, serviceMemberID, spotKey string, forUpdate bool) ([]*types.UploadFile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUploadsForSpot")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(uploadColumns).
		From("upload_files").
		Where(sq.Eq{
			"service_member_id": serviceMemberID,
			"spot_key":          spotKey,
		}).
		OrderBy("created_at ASC")

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	defer rows.Close()

	var files []*types.UploadFile
	for rows.Next() {
		f, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upload: %w", err)
		}
		files = append(files, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return files, nil
}

func (s *Storage) InsertUpload(ctx context.Context, f *types.UploadFile) (*types.UploadFile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertUpload")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate upload ID: %w", err)
	}

	created, err := scanUpload(
		s.db.Statement(ctx).
			Insert("upload_files").
			Columns("id", "service_member_id", "spot_key", "filename", "content_type", "size_bytes", "storage_path").
			Values(id.String(), f.ServiceMemberID, f.SpotKey, f.Filename, f.ContentType, f.SizeBytes, f.StoragePath).
			Suffix("RETURNING " + uploadColumns).
			QueryRowContext(ctx),
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert upload: %w", err)
	}

	return created, nil
}

func (s *Storage) DeleteUpload(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUpload")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("upload_files").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete upload: %w", err)
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
