// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/policy"
	"github.com/canonical/personnel-service/internal/storage"
	"github.com/canonical/personnel-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_authorization.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestAuthorizer_AuthorizeServiceMember(t *testing.T) {
	memberID := "sm-1"
	subjectID := "account-subject"
	creatorID := "account-creator"
	orgID := "org-1"

	member := func() *types.ServiceMember {
		return &types.ServiceMember{
			ID:               memberID,
			SubjectAccountID: subjectID,
			CreatorAccountID: creatorID,
			OrganizationID:   orgID,
		}
	}
	unclaimed := func() *types.ServiceMember {
		return &types.ServiceMember{
			ID:               memberID,
			CreatorAccountID: creatorID,
			OrganizationID:   orgID,
		}
	}

	testCases := []struct {
		name        string
		actor       *types.Actor
		action      policy.Action
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
		expectGrant bool
	}{
		{
			name:   "role policy denies before any lookup",
			actor:  &types.Actor{ID: "account-x", Role: "user"},
			action: policy.ActionServiceMemberDelete,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			},
			expectedErr: ErrNotAuthorized,
		},
		{
			name:   "subject controls the record",
			actor:  &types.Actor{ID: subjectID, Role: "user"},
			action: policy.ActionServiceMemberWriteSTP,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).Return(member(), nil)
			},
			expectGrant: true,
		},
		{
			name:   "creator controls while unclaimed",
			actor:  &types.Actor{ID: creatorID, Role: "user"},
			action: policy.ActionServiceMemberShare,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).Return(unclaimed(), nil)
			},
			expectGrant: true,
		},
		{
			name:   "creator loses control after claim",
			actor:  &types.Actor{ID: creatorID, Role: "user"},
			action: policy.ActionServiceMemberWriteSTP,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).Return(member(), nil)
				mockStorage.EXPECT().FindAcceptedAccountShare(gomock.Any(), memberID, creatorID).Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			},
			expectedErr: ErrNotAuthorized,
		},
		{
			name:   "org visibility grants read only",
			actor:  &types.Actor{ID: "account-x", Role: "org", OrganizationID: orgID},
			action: policy.ActionServiceMemberRead,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).Return(member(), nil)
			},
			expectGrant: true,
		},
		{
			name:   "org visibility does not grant writes",
			actor:  &types.Actor{ID: "account-x", Role: "org", OrganizationID: orgID},
			action: policy.ActionServiceMemberWriteSTP,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			},
			expectedErr: ErrNotAuthorized,
		},
		{
			name:   "different org gets no visibility",
			actor:  &types.Actor{ID: "account-x", Role: "org", OrganizationID: "org-2"},
			action: policy.ActionServiceMemberRead,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).Return(member(), nil)
				mockStorage.EXPECT().FindAcceptedAccountShare(gomock.Any(), memberID, "account-x").Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			},
			expectedErr: ErrNotAuthorized,
		},
		{
			name:   "accepted view share grants read",
			actor:  &types.Actor{ID: "account-x", Role: "user"},
			action: policy.ActionServiceMemberRead,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).Return(member(), nil)
				mockStorage.EXPECT().FindAcceptedAccountShare(gomock.Any(), memberID, "account-x").
					Return(&types.ShareGrant{Permission: types.SharePermissionView}, nil)
			},
			expectGrant: true,
		},
		{
			name:   "view share does not grant writes",
			actor:  &types.Actor{ID: "account-x", Role: "user"},
			action: policy.ActionServiceMemberWriteSTP,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).Return(member(), nil)
				mockStorage.EXPECT().FindAcceptedAccountShare(gomock.Any(), memberID, "account-x").
					Return(&types.ShareGrant{Permission: types.SharePermissionView}, nil)
				mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			},
			expectedErr: ErrNotAuthorized,
		},
		{
			name:   "edit share grants writes",
			actor:  &types.Actor{ID: "account-x", Role: "user"},
			action: policy.ActionServiceMemberUpload,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).Return(member(), nil)
				mockStorage.EXPECT().FindAcceptedAccountShare(gomock.Any(), memberID, "account-x").
					Return(&types.ShareGrant{Permission: types.SharePermissionEdit}, nil)
			},
			expectGrant: true,
		},
		{
			name:   "controller may delete",
			actor:  &types.Actor{ID: subjectID, Role: "owner"},
			action: policy.ActionServiceMemberDelete,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).Return(member(), nil)
			},
			expectGrant: true,
		},
		{
			name:   "delete never reaches the share rung",
			actor:  &types.Actor{ID: "account-x", Role: "owner"},
			action: policy.ActionServiceMemberDelete,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).Return(member(), nil)
				mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			},
			expectedErr: ErrNotAuthorized,
		},
		{
			name:   "record not found",
			actor:  &types.Actor{ID: "account-x", Role: "user"},
			action: policy.ActionServiceMemberRead,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:   "share lookup failure propagates",
			actor:  &types.Actor{ID: "account-x", Role: "user"},
			action: policy.ActionServiceMemberRead,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).Return(member(), nil)
				mockStorage.EXPECT().FindAcceptedAccountShare(gomock.Any(), memberID, "account-x").
					Return(nil, errors.New("connection reset"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.AuthorizeServiceMember").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			a := NewAuthorizer(mockStorage, mockTracer, mockMonitor, mockLogger)

			got, err := a.AuthorizeServiceMember(context.Background(), tc.actor, tc.action, memberID)

			if tc.expectGrant {
				if err != nil {
					t.Fatalf("expected grant but got error: %v", err)
				}
				if got == nil || got.ID != memberID {
					t.Errorf("expected the loaded record, got %+v", got)
				}
				return
			}

			if err == nil {
				t.Fatal("expected error but got none")
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v but got %v", tc.expectedErr, err)
			}
			if got != nil {
				t.Errorf("expected no record on denial, got %+v", got)
			}
		})
	}
}

func TestAuthorizer_DeleteRequiresOwner(t *testing.T) {
	for _, role := range []string{"admin", "org", "user"} {
		t.Run(role, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.AuthorizeServiceMember").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())

			a := NewAuthorizer(mockStorage, mockTracer, mockMonitor, mockLogger)

			_, err := a.AuthorizeServiceMember(context.Background(), &types.Actor{ID: "account-x", Role: role}, policy.ActionServiceMemberDelete, "sm-1")
			if !errors.Is(err, ErrNotAuthorized) {
				t.Errorf("expected ErrNotAuthorized for role %q, got %v", role, err)
			}
		})
	}
}
