// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/canonical/personnel-service/internal/types"
)

type StorageInterface interface {
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)
	CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error)
	SetAccountActive(ctx context.Context, id string, active bool) error

	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	GetOrganizationByName(ctx context.Context, name string) (*types.Organization, error)
	SetOrganizationVerified(ctx context.Context, id string) error
	SetOrganizationApproved(ctx context.Context, id string) error

	CreateServiceMember(ctx context.Context, m *types.ServiceMember) (*types.ServiceMember, error)
	GetServiceMemberByID(ctx context.Context, id string) (*types.ServiceMember, error)
	ListAccessibleServiceMembers(ctx context.Context, accountID string) ([]*types.ServiceMember, error)
	ListServiceMembersByOrg(ctx context.Context, orgID string) ([]*types.ServiceMember, error)
	UpdateServiceMemberSTP(ctx context.Context, id string, stp json.RawMessage) error
	DeleteServiceMember(ctx context.Context, id string) error
	SetClaimCode(ctx context.Context, id, code string) error
	RedeemClaimCode(ctx context.Context, code, actorAccountID string) (*types.ServiceMember, error)

	CreateShare(ctx context.Context, g *types.ShareGrant) (*types.ShareGrant, error)
	GetShareByID(ctx context.Context, id string) (*types.ShareGrant, error)
	FindAcceptedAccountShare(ctx context.Context, serviceMemberID, accountID string) (*types.ShareGrant, error)
	ListSharesForServiceMember(ctx context.Context, serviceMemberID string) ([]*types.ShareGrant, error)
	DecideShare(ctx context.Context, id, decision string) (*types.ShareGrant, error)

	CreateSupportCode(ctx context.Context, c *types.SupportVerifyCode) (*types.SupportVerifyCode, error)
	ConsumeSupportCode(ctx context.Context, actorAccountID, code string, now time.Time) (bool, error)

	ListUploadsForSpot(ctx context.Context, serviceMemberID, spotKey string, forUpdate bool) ([]*types.UploadFile, error)
	InsertUpload(ctx context.Context, f *types.UploadFile) (*types.UploadFile, error)
	DeleteUpload(ctx context.Context, id string) error
}
