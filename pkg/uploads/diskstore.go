// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package uploads

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/tracing"
)

// DiskStore keeps upload content on the local filesystem under a single
// base directory.
type DiskStore struct {
	dir string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewDiskStore(dir string, tracer tracing.TracingInterface, logger logging.LoggerInterface) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}

	return &DiskStore{
		dir:    dir,
		tracer: tracer,
		logger: logger,
	}, nil
}

func (d *DiskStore) Save(ctx context.Context, serviceMemberID, spotKey, filename string, content []byte) (string, error) {
	_, span := d.tracer.Start(ctx, "uploads.DiskStore.Save")
	defer span.End()

	name := fmt.Sprintf("%s_%s_%s", serviceMemberID, strings.ReplaceAll(spotKey, ".", "_"), filepath.Base(filename))
	path := filepath.Join(d.dir, name)

	if err := os.WriteFile(path, content, 0o640); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}

func (d *DiskStore) Remove(ctx context.Context, storagePath string) error {
	_, span := d.tracer.Start(ctx, "uploads.DiskStore.Remove")
	defer span.End()

	if err := os.Remove(storagePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

var _ FileStoreInterface = (*DiskStore)(nil)
