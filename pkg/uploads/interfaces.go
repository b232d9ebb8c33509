// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package uploads

import (
	"context"

	"github.com/canonical/personnel-service/internal/audit"
	"github.com/canonical/personnel-service/internal/policy"
	"github.com/canonical/personnel-service/internal/types"
)

// StorageInterface is the subset of the storage operations this package needs.
type StorageInterface interface {
	ListUploadsForSpot(ctx context.Context, serviceMemberID, spotKey string, forUpdate bool) ([]*types.UploadFile, error)
	InsertUpload(ctx context.Context, f *types.UploadFile) (*types.UploadFile, error)
	DeleteUpload(ctx context.Context, id string) error
}

type AuthorizerInterface interface {
	AuthorizeServiceMember(ctx context.Context, actor *types.Actor, action policy.Action, serviceMemberID string) (*types.ServiceMember, error)
}

type AuditInterface interface {
	Record(ctx context.Context, e audit.Entry) error
}

// FileStoreInterface persists and evicts upload content, keyed by a storage
// path returned at save time.
type FileStoreInterface interface {
	Save(ctx context.Context, serviceMemberID, spotKey, filename string, content []byte) (string, error)
	Remove(ctx context.Context, storagePath string) error
}

type ServiceInterface interface {
	UploadToSpot(ctx context.Context, actor *types.Actor, req *UploadRequest) (*UploadResult, error)
	ListSpot(ctx context.Context, actor *types.Actor, serviceMemberID, spotKey string) ([]*types.UploadFile, error)
}
