// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package uploads

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/personnel-service/internal/policy"
	"github.com/canonical/personnel-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package uploads -destination ./mock_uploads.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package uploads -destination ./mock_db.go -source=../../internal/db/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package uploads -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package uploads -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package uploads -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const maxPerSpot = 3

type testMocks struct {
	storage *MockStorageInterface
	files   *MockFileStoreInterface
	authz   *MockAuthorizerInterface
	auditor *MockAuditInterface
	db      *MockDBClientInterface
	tracer  *MockTracingInterface
	logger  *MockLoggerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *testMocks) {
	m := &testMocks{
		storage: NewMockStorageInterface(ctrl),
		files:   NewMockFileStoreInterface(ctrl),
		authz:   NewMockAuthorizerInterface(ctrl),
		auditor: NewMockAuditInterface(ctrl),
		db:      NewMockDBClientInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(m.storage, m.files, m.authz, m.auditor, m.db, maxPerSpot, m.tracer, mockMonitor, m.logger)
	return s, m
}

func passthroughTx(m *testMocks) {
	m.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func existingFiles(n int) []*types.UploadFile {
	files := make([]*types.UploadFile, 0, n)
	for i := 0; i < n; i++ {
		files = append(files, &types.UploadFile{
			ID:          "file-" + string(rune('a'+i)),
			Filename:    "doc" + string(rune('a'+i)) + ".pdf",
			StoragePath: "/uploads/doc" + string(rune('a'+i)) + ".pdf",
		})
	}
	return files
}

func TestService_UploadToSpot(t *testing.T) {
	actor := &types.Actor{ID: "account-1", Role: "user"}
	memberID := "sm-1"
	req := func(confirm bool) *UploadRequest {
		return &UploadRequest{
			ServiceMemberID: memberID,
			SpotKey:         "dd214",
			ConfirmRotate:   confirm,
			Filename:        "new.pdf",
			ContentType:     "application/pdf",
			Content:         []byte("%PDF-1.7"),
		}
	}

	t.Run("spot has room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)

		m.tracer.EXPECT().Start(gomock.Any(), "uploads.Service.UploadToSpot").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		m.authz.EXPECT().AuthorizeServiceMember(gomock.Any(), actor, policy.ActionServiceMemberUpload, memberID).
			Return(&types.ServiceMember{ID: memberID}, nil)
		passthroughTx(m)
		m.storage.EXPECT().ListUploadsForSpot(gomock.Any(), memberID, "dd214", true).
			Return(existingFiles(2), nil)
		m.files.EXPECT().Save(gomock.Any(), memberID, "dd214", "new.pdf", []byte("%PDF-1.7")).
			Return("/uploads/new.pdf", nil)
		m.storage.EXPECT().InsertUpload(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f *types.UploadFile) (*types.UploadFile, error) {
				if f.SizeBytes != int64(len("%PDF-1.7")) {
					return nil, errors.New("wrong size")
				}
				f.ID = "file-new"
				return f, nil
			})
		m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.UploadToSpot(context.Background(), actor, req(false))
		if err != nil {
			t.Fatalf("expected no error but got %v", err)
		}
		if !result.Uploaded || result.FileID != "file-new" {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("full spot without confirmation prompts and does not mutate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)

		m.tracer.EXPECT().Start(gomock.Any(), "uploads.Service.UploadToSpot").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		m.authz.EXPECT().AuthorizeServiceMember(gomock.Any(), actor, policy.ActionServiceMemberUpload, memberID).
			Return(&types.ServiceMember{ID: memberID}, nil)
		passthroughTx(m)
		m.storage.EXPECT().ListUploadsForSpot(gomock.Any(), memberID, "dd214", true).
			Return(existingFiles(3), nil)

		result, err := s.UploadToSpot(context.Background(), actor, req(false))
		if err != nil {
			t.Fatalf("expected no error but got %v", err)
		}
		if !result.RequiresConfirmation {
			t.Fatal("expected a confirmation prompt")
		}
		if result.Uploaded {
			t.Error("nothing should be uploaded without confirmation")
		}
		if len(result.CurrentFiles) != 3 {
			t.Errorf("expected 3 current files, got %d", len(result.CurrentFiles))
		}
		if result.MaxFiles != maxPerSpot {
			t.Errorf("expected max files %d, got %d", maxPerSpot, result.MaxFiles)
		}
	})

	t.Run("full spot with confirmation evicts oldest then inserts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		files := existingFiles(3)

		m.tracer.EXPECT().Start(gomock.Any(), "uploads.Service.UploadToSpot").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		m.authz.EXPECT().AuthorizeServiceMember(gomock.Any(), actor, policy.ActionServiceMemberUpload, memberID).
			Return(&types.ServiceMember{ID: memberID}, nil)
		passthroughTx(m)
		m.storage.EXPECT().ListUploadsForSpot(gomock.Any(), memberID, "dd214", true).
			Return(files, nil)
		m.storage.EXPECT().DeleteUpload(gomock.Any(), files[0].ID).Return(nil)
		m.files.EXPECT().Remove(gomock.Any(), files[0].StoragePath).Return(nil)
		m.files.EXPECT().Save(gomock.Any(), memberID, "dd214", "new.pdf", gomock.Any()).
			Return("/uploads/new.pdf", nil)
		m.storage.EXPECT().InsertUpload(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f *types.UploadFile) (*types.UploadFile, error) {
				f.ID = "file-new"
				return f, nil
			})
		m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		result, err := s.UploadToSpot(context.Background(), actor, req(true))
		if err != nil {
			t.Fatalf("expected no error but got %v", err)
		}
		if !result.Uploaded {
			t.Errorf("expected upload after rotation, got %+v", result)
		}
	})

	t.Run("file removal failure does not abort rotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)
		files := existingFiles(3)

		m.tracer.EXPECT().Start(gomock.Any(), "uploads.Service.UploadToSpot").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		m.authz.EXPECT().AuthorizeServiceMember(gomock.Any(), actor, policy.ActionServiceMemberUpload, memberID).
			Return(&types.ServiceMember{ID: memberID}, nil)
		passthroughTx(m)
		m.storage.EXPECT().ListUploadsForSpot(gomock.Any(), memberID, "dd214", true).
			Return(files, nil)
		m.storage.EXPECT().DeleteUpload(gomock.Any(), files[0].ID).Return(nil)
		m.files.EXPECT().Remove(gomock.Any(), files[0].StoragePath).Return(errors.New("file missing"))
		m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())
		m.files.EXPECT().Save(gomock.Any(), memberID, "dd214", "new.pdf", gomock.Any()).
			Return("/uploads/new.pdf", nil)
		m.storage.EXPECT().InsertUpload(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f *types.UploadFile) (*types.UploadFile, error) {
				f.ID = "file-new"
				return f, nil
			})
		m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		result, err := s.UploadToSpot(context.Background(), actor, req(true))
		if err != nil {
			t.Fatalf("expected no error but got %v", err)
		}
		if !result.Uploaded {
			t.Errorf("expected upload despite removal failure, got %+v", result)
		}
	})

	t.Run("authorization denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)

		m.tracer.EXPECT().Start(gomock.Any(), "uploads.Service.UploadToSpot").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		m.authz.EXPECT().AuthorizeServiceMember(gomock.Any(), actor, policy.ActionServiceMemberUpload, memberID).
			Return(nil, errors.New("not authorized for this resource"))

		if _, err := s.UploadToSpot(context.Background(), actor, req(false)); err == nil {
			t.Error("expected error but got none")
		}
	})

	t.Run("transaction failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newTestService(ctrl)

		m.tracer.EXPECT().Start(gomock.Any(), "uploads.Service.UploadToSpot").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		m.authz.EXPECT().AuthorizeServiceMember(gomock.Any(), actor, policy.ActionServiceMemberUpload, memberID).
			Return(&types.ServiceMember{ID: memberID}, nil)
		passthroughTx(m)
		m.storage.EXPECT().ListUploadsForSpot(gomock.Any(), memberID, "dd214", true).
			Return(nil, errors.New("lock timeout"))

		if _, err := s.UploadToSpot(context.Background(), actor, req(false)); err == nil {
			t.Error("expected error but got none")
		}
	})
}

func TestService_ListSpot(t *testing.T) {
	actor := &types.Actor{ID: "account-1", Role: "user"}
	memberID := "sm-1"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	m.tracer.EXPECT().Start(gomock.Any(), "uploads.Service.ListSpot").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	m.authz.EXPECT().AuthorizeServiceMember(gomock.Any(), actor, policy.ActionServiceMemberRead, memberID).
		Return(&types.ServiceMember{ID: memberID}, nil)
	m.storage.EXPECT().ListUploadsForSpot(gomock.Any(), memberID, "dd214", false).
		Return(existingFiles(2), nil)

	files, err := s.ListSpot(context.Background(), actor, memberID, "dd214")
	if err != nil {
		t.Fatalf("expected no error but got %v", err)
	}
	if len(files) != 2 {
		t.Errorf("expected 2 files, got %d", len(files))
	}
}
