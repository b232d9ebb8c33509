// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/personnel-service/internal/policy"
	"github.com/canonical/personnel-service/internal/types"
)

type AuthorizerInterface interface {
	// AuthorizeServiceMember resolves whether the actor may perform the
	// action on the record, returning the record on success.
	AuthorizeServiceMember(ctx context.Context, actor *types.Actor, action policy.Action, serviceMemberID string) (*types.ServiceMember, error)
}

type StorageInterface interface {
	GetServiceMemberByID(ctx context.Context, id string) (*types.ServiceMember, error)
	FindAcceptedAccountShare(ctx context.Context, serviceMemberID, accountID string) (*types.ShareGrant, error)
}
