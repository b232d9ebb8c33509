// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package records

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/personnel-service/internal/branch"
	"github.com/canonical/personnel-service/internal/policy"
	"github.com/canonical/personnel-service/internal/storage"
	"github.com/canonical/personnel-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package records -destination ./mock_records.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package records -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package records -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package records -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface, *MockTracingInterface, *MockLoggerInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockAudit := NewMockAuditInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	s := NewService(mockStorage, mockAuthz, mockAudit, mockTracer, mockMonitor, mockLogger)
	return s, mockStorage, mockAuthz, mockAudit, mockTracer, mockLogger
}

func TestService_Create(t *testing.T) {
	actor := &types.Actor{ID: "account-1", Role: "user", OrganizationID: "org-1"}
	stp := json.RawMessage(`{"rank": "SGT"}`)

	testCases := []struct {
		name        string
		branch      string
		component   string
		setupMocks  func(*MockStorageInterface, *MockAuditInterface)
		expectedErr error
	}{
		{
			name:      "success",
			branch:    "Army",
			component: "Active",
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().CreateServiceMember(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *types.ServiceMember) (*types.ServiceMember, error) {
						if m.CreatorAccountID != actor.ID {
							return nil, errors.New("wrong creator")
						}
						if m.SubjectAccountID != "" {
							return nil, errors.New("subject must start unset")
						}
						if m.OrganizationID != actor.OrganizationID {
							return nil, errors.New("wrong organization")
						}
						m.ID = "sm-1"
						return m, nil
					})
				mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:        "unsupported branch",
			branch:      "Militia",
			component:   "Active",
			setupMocks:  func(*MockStorageInterface, *MockAuditInterface) {},
			expectedErr: branch.ErrUnsupportedBranch,
		},
		{
			name:        "invalid combination",
			branch:      "Space Force",
			component:   "Reserve",
			setupMocks:  func(*MockStorageInterface, *MockAuditInterface) {},
			expectedErr: branch.ErrInvalidCombination,
		},
		{
			name:      "storage failure",
			branch:    "Navy",
			component: "Reserve",
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().CreateServiceMember(gomock.Any(), gomock.Any()).Return(nil, errors.New("storage error"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, mockAudit, mockTracer, _ := newTestService(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "records.Service.Create").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAudit)

			created, err := s.Create(context.Background(), actor, tc.branch, tc.component, stp)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v but got %v", tc.expectedErr, err)
				}
				return
			}
			if tc.name == "storage failure" {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error but got %v", err)
			}
			if created.ID != "sm-1" {
				t.Errorf("expected persisted record, got %+v", created)
			}
		})
	}
}

func TestService_IssueClaimCode(t *testing.T) {
	creatorID := "account-creator"
	actor := &types.Actor{ID: creatorID, Role: "user"}
	memberID := "sm-1"

	testCases := []struct {
		name        string
		actor       *types.Actor
		setupMocks  func(*MockStorageInterface, *MockAuditInterface)
		expectedErr error
		expectCode  bool
	}{
		{
			name:  "success",
			actor: actor,
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).
					Return(&types.ServiceMember{ID: memberID, CreatorAccountID: creatorID}, nil)
				mockStorage.EXPECT().SetClaimCode(gomock.Any(), memberID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, code string) error {
						if len(code) != 32 {
							return errors.New("unexpected code length")
						}
						return nil
					})
				mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectCode: true,
		},
		{
			name:  "non-creator cannot issue",
			actor: &types.Actor{ID: "account-other", Role: "user"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).
					Return(&types.ServiceMember{ID: memberID, CreatorAccountID: creatorID}, nil)
			},
			expectedErr: ErrNotController,
		},
		{
			name:  "already linked",
			actor: actor,
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).
					Return(&types.ServiceMember{ID: memberID, CreatorAccountID: creatorID}, nil)
				mockStorage.EXPECT().SetClaimCode(gomock.Any(), memberID, gomock.Any()).
					Return(storage.ErrAlreadyLinked)
			},
			expectedErr: storage.ErrAlreadyLinked,
		},
		{
			name:  "record not found",
			actor: actor,
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().GetServiceMemberByID(gomock.Any(), memberID).
					Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, mockAudit, mockTracer, _ := newTestService(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "records.Service.IssueClaimCode").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAudit)

			code, err := s.IssueClaimCode(context.Background(), tc.actor, memberID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v but got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error but got %v", err)
			}
			if tc.expectCode && code == "" {
				t.Error("expected a claim code")
			}
		})
	}
}

func TestService_RedeemClaimCode(t *testing.T) {
	actor := &types.Actor{ID: "account-new", Role: "user"}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuditInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().RedeemClaimCode(gomock.Any(), "code-1", actor.ID).
					Return(&types.ServiceMember{ID: "sm-1", SubjectAccountID: actor.ID}, nil)
				mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "already claimed",
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().RedeemClaimCode(gomock.Any(), "code-1", actor.ID).
					Return(nil, storage.ErrAlreadyClaimed)
			},
			expectedErr: storage.ErrAlreadyClaimed,
		},
		{
			name: "unknown code",
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().RedeemClaimCode(gomock.Any(), "code-1", actor.ID).
					Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, mockAudit, mockTracer, _ := newTestService(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "records.Service.RedeemClaimCode").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAudit)

			member, err := s.RedeemClaimCode(context.Background(), actor, "code-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v but got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error but got %v", err)
			}
			if member.SubjectAccountID != actor.ID {
				t.Errorf("expected actor as subject, got %+v", member)
			}
		})
	}
}

func TestService_UpdateSTP(t *testing.T) {
	actor := &types.Actor{ID: "account-1", Role: "user"}
	memberID := "sm-1"
	stp := json.RawMessage(`{"rank": "SSG"}`)

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface)
		expectErr  bool
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().AuthorizeServiceMember(gomock.Any(), actor, policy.ActionServiceMemberWriteSTP, memberID).
					Return(&types.ServiceMember{ID: memberID}, nil)
				mockStorage.EXPECT().UpdateServiceMemberSTP(gomock.Any(), memberID, stp).Return(nil)
				mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "authorization denied",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().AuthorizeServiceMember(gomock.Any(), actor, policy.ActionServiceMemberWriteSTP, memberID).
					Return(nil, errors.New("not authorized for this resource"))
			},
			expectErr: true,
		},
		{
			name: "storage failure",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().AuthorizeServiceMember(gomock.Any(), actor, policy.ActionServiceMemberWriteSTP, memberID).
					Return(&types.ServiceMember{ID: memberID}, nil)
				mockStorage.EXPECT().UpdateServiceMemberSTP(gomock.Any(), memberID, stp).Return(errors.New("storage error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockAuthz, mockAudit, mockTracer, _ := newTestService(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "records.Service.UpdateSTP").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAuthz, mockAudit)

			member, err := s.UpdateSTP(context.Background(), actor, memberID, stp)

			if tc.expectErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error but got %v", err)
			}
			if string(member.STPData) != string(stp) {
				t.Errorf("expected updated payload on the returned record")
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	actor := &types.Actor{ID: "account-1", Role: "owner"}
	memberID := "sm-1"

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, mockStorage, mockAuthz, mockAudit, mockTracer, _ := newTestService(ctrl)

		mockTracer.EXPECT().Start(gomock.Any(), "records.Service.Delete").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockAuthz.EXPECT().AuthorizeServiceMember(gomock.Any(), actor, policy.ActionServiceMemberDelete, memberID).
			Return(&types.ServiceMember{ID: memberID}, nil)
		mockStorage.EXPECT().DeleteServiceMember(gomock.Any(), memberID).Return(nil)
		mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		if err := s.Delete(context.Background(), actor, memberID); err != nil {
			t.Errorf("expected no error but got %v", err)
		}
	})

	t.Run("denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, _, mockAuthz, _, mockTracer, _ := newTestService(ctrl)

		mockTracer.EXPECT().Start(gomock.Any(), "records.Service.Delete").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockAuthz.EXPECT().AuthorizeServiceMember(gomock.Any(), actor, policy.ActionServiceMemberDelete, memberID).
			Return(nil, errors.New("not authorized for this resource"))

		if err := s.Delete(context.Background(), actor, memberID); err == nil {
			t.Error("expected error but got none")
		}
	})
}

func TestService_Dashboard(t *testing.T) {
	actor := &types.Actor{ID: "account-1", Role: "user"}
	memberID := "sm-1"
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, mockAuthz, _, mockTracer, _ := newTestService(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "records.Service.Dashboard").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockAuthz.EXPECT().AuthorizeServiceMember(gomock.Any(), actor, policy.ActionServiceMemberRead, memberID).
		Return(&types.ServiceMember{ID: memberID, STPData: json.RawMessage(`{"branch": "Navy", "rank": "PO1"}`)}, nil)

	cards, err := s.Dashboard(context.Background(), actor, memberID, now)
	if err != nil {
		t.Fatalf("expected no error but got %v", err)
	}
	if cards.Perstats.Rank != "PO1" {
		t.Errorf("expected rank PO1, got %q", cards.Perstats.Rank)
	}
	if cards.Fitness.TestType != "PRT" {
		t.Errorf("expected PRT for Navy, got %q", cards.Fitness.TestType)
	}
}
