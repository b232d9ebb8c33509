// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package uploads attaches files to named spots on a service member record,
// holding each spot to a bounded count with explicit oldest-first rotation.
package uploads

import (
	"context"
	"fmt"

	"github.com/canonical/personnel-service/internal/audit"
	"github.com/canonical/personnel-service/internal/db"
	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/monitoring"
	"github.com/canonical/personnel-service/internal/policy"
	"github.com/canonical/personnel-service/internal/tracing"
	"github.com/canonical/personnel-service/internal/types"
)

type UploadRequest struct {
	ServiceMemberID string
	SpotKey         string
	ConfirmRotate   bool
	Filename        string
	ContentType     string
	Content         []byte
}

type UploadResult struct {
	Uploaded             bool     `json:"uploaded"`
	FileID               string   `json:"file_id,omitempty"`
	Filename             string   `json:"filename,omitempty"`
	RequiresConfirmation bool     `json:"requires_confirmation,omitempty"`
	Message              string   `json:"message,omitempty"`
	MaxFiles             int      `json:"max_files,omitempty"`
	CurrentFiles         []string `json:"current_files,omitempty"`
}

type Service struct {
	storage    StorageInterface
	files      FileStoreInterface
	authz      AuthorizerInterface
	auditor    AuditInterface
	dbClient   db.DBClientInterface
	maxPerSpot int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	files FileStoreInterface,
	authz AuthorizerInterface,
	auditor AuditInterface,
	dbClient db.DBClientInterface,
	maxPerSpot int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    storage,
		files:      files,
		authz:      authz,
		auditor:    auditor,
		dbClient:   dbClient,
		maxPerSpot: maxPerSpot,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// UploadToSpot adds a file to a spot. A full spot returns a confirmation
// prompt without mutating anything; with ConfirmRotate set the oldest file
// is evicted first. The list and the mutation run in one transaction with
// the spot rows locked, so concurrent uploads to the same spot serialize.
func (s *Service) UploadToSpot(ctx context.Context, actor *types.Actor, req *UploadRequest) (*UploadResult, error) {
	ctx, span := s.tracer.Start(ctx, "uploads.Service.UploadToSpot")
	defer span.End()

	if _, err := s.authz.AuthorizeServiceMember(ctx, actor, policy.ActionServiceMemberUpload, req.ServiceMemberID); err != nil {
		return nil, err
	}

	var result *UploadResult
	err := s.dbClient.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.storage.ListUploadsForSpot(txCtx, req.ServiceMemberID, req.SpotKey, true)
		if err != nil {
			return err
		}

		if len(existing) >= s.maxPerSpot {
			if !req.ConfirmRotate {
				names := make([]string, 0, len(existing))
				for _, f := range existing {
					names = append(names, f.Filename)
				}
				result = &UploadResult{
					RequiresConfirmation: true,
					Message:              "Spot is full. Confirm rotate to delete oldest file and add new one.",
					MaxFiles:             s.maxPerSpot,
					CurrentFiles:         names,
				}
				return nil
			}

			oldest := existing[0]
			if err := s.storage.DeleteUpload(txCtx, oldest.ID); err != nil {
				return fmt.Errorf("failed to evict oldest upload: %w", err)
			}
			if err := s.files.Remove(txCtx, oldest.StoragePath); err != nil {
				s.logger.Warnf("failed to remove file %s: %v", oldest.StoragePath, err)
			}
			s.audit(txCtx, actor.ID, "upload.rotate.delete_oldest", "upload_file", oldest.ID, map[string]interface{}{
				"spot_key": req.SpotKey,
				"filename": oldest.Filename,
			})
		}

		path, err := s.files.Save(txCtx, req.ServiceMemberID, req.SpotKey, req.Filename, req.Content)
		if err != nil {
			return fmt.Errorf("failed to store file: %w", err)
		}

		contentType := req.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		inserted, err := s.storage.InsertUpload(txCtx, &types.UploadFile{
			ServiceMemberID: req.ServiceMemberID,
			SpotKey:         req.SpotKey,
			Filename:        req.Filename,
			ContentType:     contentType,
			SizeBytes:       int64(len(req.Content)),
			StoragePath:     path,
		})
		if err != nil {
			return fmt.Errorf("failed to insert upload: %w", err)
		}

		s.audit(txCtx, actor.ID, "upload.add", "service_member", req.ServiceMemberID, map[string]interface{}{
			"spot_key": req.SpotKey,
			"filename": req.Filename,
		})

		result = &UploadResult{
			Uploaded: true,
			FileID:   inserted.ID,
			Filename: inserted.Filename,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) ListSpot(ctx context.Context, actor *types.Actor, serviceMemberID, spotKey string) ([]*types.UploadFile, error) {
	ctx, span := s.tracer.Start(ctx, "uploads.Service.ListSpot")
	defer span.End()

	if _, err := s.authz.AuthorizeServiceMember(ctx, actor, policy.ActionServiceMemberRead, serviceMemberID); err != nil {
		return nil, err
	}

	return s.storage.ListUploadsForSpot(ctx, serviceMemberID, spotKey, false)
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
