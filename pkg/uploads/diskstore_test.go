// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package uploads

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/personnel-service/internal/logging"
)

func tracingPassthrough(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
	return ctx, trace.SpanFromContext(ctx)
}

func newTestDiskStore(t *testing.T, ctrl *gomock.Controller) *DiskStore {
	t.Helper()

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(tracingPassthrough).AnyTimes()

	store, err := NewDiskStore(t.TempDir(), mockTracer, logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("failed to create disk store: %v", err)
	}
	return store
}

func TestDiskStore_SaveAndRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newTestDiskStore(t, ctrl)

	path, err := store.Save(context.Background(), "sm-1", "dd214", "form.pdf", []byte("content"))
	if err != nil {
		t.Fatalf("expected no error but got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("saved file unreadable: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("expected saved content, got %q", data)
	}
	if filepath.Base(path) != "sm-1_dd214_form.pdf" {
		t.Errorf("unexpected file name %q", filepath.Base(path))
	}

	if err := store.Remove(context.Background(), path); err != nil {
		t.Fatalf("expected no error but got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected file to be gone")
	}
}

func TestDiskStore_SaveSanitizesNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newTestDiskStore(t, ctrl)

	path, err := store.Save(context.Background(), "sm-1", "awards.citation", "../../etc/passwd", []byte("x"))
	if err != nil {
		t.Fatalf("expected no error but got %v", err)
	}
	if filepath.Base(path) != "sm-1_awards_citation_passwd" {
		t.Errorf("unexpected file name %q", filepath.Base(path))
	}
}

func TestDiskStore_RemoveMissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newTestDiskStore(t, ctrl)

	if err := store.Remove(context.Background(), filepath.Join(t.TempDir(), "missing.pdf")); err != nil {
		t.Errorf("expected missing files to be tolerated, got %v", err)
	}
}
