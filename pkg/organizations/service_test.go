// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/personnel-service/internal/storage"
	"github.com/canonical/personnel-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package organizations -destination ./mock_organizations.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organizations -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organizations -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organizations -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockAuditInterface, *MockTracingInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockAudit := NewMockAuditInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	s := NewService(mockStorage, mockAudit, mockTracer, mockMonitor, mockLogger)
	return s, mockStorage, mockAudit, mockTracer
}

func TestService_Request(t *testing.T) {
	actor := &types.Actor{ID: "account-1", Role: "user"}
	req := &OrgCreateRequest{
		Name:        "3rd Battalion",
		Base:        "Fort Campbell",
		CommandTeam: "LTC Smith / CSM Jones",
		TierCode:    "T2",
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, mockAudit, mockTracer := newTestService(ctrl)

		mockTracer.EXPECT().Start(gomock.Any(), "organizations.Service.Request").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockStorage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *types.Organization) (*types.Organization, error) {
				if o.IsVerified || o.IsApproved {
					return nil, errors.New("new orgs must start unverified and unapproved")
				}
				o.ID = "org-1"
				return o, nil
			})
		mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		org, err := s.Request(context.Background(), actor, req)
		if err != nil {
			t.Fatalf("expected no error but got %v", err)
		}
		if org.ID != "org-1" || org.Name != req.Name {
			t.Errorf("unexpected organization: %+v", org)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, _, mockTracer := newTestService(ctrl)

		mockTracer.EXPECT().Start(gomock.Any(), "organizations.Service.Request").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockStorage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).
			Return(nil, storage.ErrDuplicateKey)

		if _, err := s.Request(context.Background(), actor, req); !errors.Is(err, storage.ErrDuplicateKey) {
			t.Errorf("expected ErrDuplicateKey but got %v", err)
		}
	})
}

func TestService_VerifyAndApprove(t *testing.T) {
	orgID := "org-1"
	admin := &types.Actor{ID: "account-admin", Role: "admin"}

	testCases := []struct {
		name        string
		actor       *types.Actor
		setupMocks  func(*MockStorageInterface, *MockAuditInterface)
		call        func(*Service, *types.Actor) error
		span        string
		expectedErr error
	}{
		{
			name:  "admin verifies",
			actor: admin,
			span:  "organizations.Service.Verify",
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().SetOrganizationVerified(gomock.Any(), orgID).Return(nil)
				mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).
					Return(&types.Organization{ID: orgID, IsVerified: true}, nil)
			},
			call: func(s *Service, actor *types.Actor) error {
				_, err := s.Verify(context.Background(), actor, orgID)
				return err
			},
		},
		{
			name:  "org role cannot verify",
			actor: &types.Actor{ID: "account-org", Role: "org", OrganizationID: orgID},
			span:  "organizations.Service.Verify",
			setupMocks: func(*MockStorageInterface, *MockAuditInterface) {},
			call: func(s *Service, actor *types.Actor) error {
				_, err := s.Verify(context.Background(), actor, orgID)
				return err
			},
			expectedErr: ErrNotAuthorized,
		},
		{
			name:  "admin approves verified org",
			actor: admin,
			span:  "organizations.Service.Approve",
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().SetOrganizationApproved(gomock.Any(), orgID).Return(nil)
				mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
				mockStorage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).
					Return(&types.Organization{ID: orgID, IsVerified: true, IsApproved: true}, nil)
			},
			call: func(s *Service, actor *types.Actor) error {
				_, err := s.Approve(context.Background(), actor, orgID)
				return err
			},
		},
		{
			name:  "approval requires prior verification",
			actor: admin,
			span:  "organizations.Service.Approve",
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().SetOrganizationApproved(gomock.Any(), orgID).
					Return(storage.ErrNotVerified)
			},
			call: func(s *Service, actor *types.Actor) error {
				_, err := s.Approve(context.Background(), actor, orgID)
				return err
			},
			expectedErr: storage.ErrNotVerified,
		},
		{
			name:  "user cannot approve",
			actor: &types.Actor{ID: "account-user", Role: "user"},
			span:  "organizations.Service.Approve",
			setupMocks: func(*MockStorageInterface, *MockAuditInterface) {},
			call: func(s *Service, actor *types.Actor) error {
				_, err := s.Approve(context.Background(), actor, orgID)
				return err
			},
			expectedErr: ErrNotAuthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockAudit, mockTracer := newTestService(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), tc.span).
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAudit)

			err := tc.call(s, tc.actor)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v but got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("expected no error but got %v", err)
			}
		})
	}
}

func TestService_Roster(t *testing.T) {
	orgID := "org-1"

	testCases := []struct {
		name        string
		actor       *types.Actor
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:  "org role sees own roster",
			actor: &types.Actor{ID: "account-org", Role: "org", OrganizationID: orgID},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListServiceMembersByOrg(gomock.Any(), orgID).
					Return([]*types.ServiceMember{{ID: "sm-1"}}, nil)
			},
		},
		{
			name:        "org role denied for another org",
			actor:       &types.Actor{ID: "account-org", Role: "org", OrganizationID: "org-2"},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrWrongOrg,
		},
		{
			name:  "admin sees any roster",
			actor: &types.Actor{ID: "account-admin", Role: "admin"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListServiceMembersByOrg(gomock.Any(), orgID).
					Return([]*types.ServiceMember{{ID: "sm-1"}}, nil)
			},
		},
		{
			name:        "user denied",
			actor:       &types.Actor{ID: "account-user", Role: "user"},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrNotAuthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, mockTracer := newTestService(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "organizations.Service.Roster").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			members, err := s.Roster(context.Background(), tc.actor, orgID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v but got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error but got %v", err)
			}
			if len(members) != 1 {
				t.Errorf("expected 1 member, got %d", len(members))
			}
		})
	}
}

func TestService_DashboardSummary(t *testing.T) {
	orgID := "org-1"
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	actor := &types.Actor{ID: "account-org", Role: "org", OrganizationID: orgID}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, _, mockTracer := newTestService(ctrl)

	expired := now.AddDate(0, 0, -10).Format(time.RFC3339)
	current := now.AddDate(0, 0, 90).Format(time.RFC3339)

	mockTracer.EXPECT().Start(gomock.Any(), "organizations.Service.DashboardSummary").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().ListServiceMembersByOrg(gomock.Any(), orgID).
		Return([]*types.ServiceMember{
			{ID: "sm-1", STPData: json.RawMessage(`{"fitness": {"expiration_date": "` + expired + `"}}`)},
			{ID: "sm-2", STPData: json.RawMessage(`{"fitness": {"expiration_date": "` + current + `"}}`)},
		}, nil)

	summary, err := s.DashboardSummary(context.Background(), actor, orgID, now)
	if err != nil {
		t.Fatalf("expected no error but got %v", err)
	}
	if summary.TotalPersonnel != 2 {
		t.Errorf("expected 2 personnel, got %d", summary.TotalPersonnel)
	}
	if summary.FitnessSummary.OverallStatus != "red" {
		t.Errorf("expected red overall fitness, got %q", summary.FitnessSummary.OverallStatus)
	}
}
