// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package support

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package support -destination ./mock_support.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package support -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package support -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package support -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const codeTTL = 5 * time.Minute

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockAuditInterface, *MockTracingInterface, *MockLoggerInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	mockAudit := NewMockAuditInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	s := NewService(mockStorage, mockAudit, codeTTL, mockTracer, mockMonitor, mockLogger)
	return s, mockStorage, mockAudit, mockTracer, mockLogger
}

func TestService_Generate(t *testing.T) {
	codeFormat := regexp.MustCompile(`^\d{6}$`)

	testCases := []struct {
		name        string
		actor       *types.Actor
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:  "owner generates",
			actor: &types.Actor{ID: "account-owner", Role: "owner"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateSupportCode(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *types.SupportVerifyCode) (*types.SupportVerifyCode, error) {
						if !codeFormat.MatchString(c.Code) {
							return nil, errors.New("code is not a 6-digit zero-padded string")
						}
						if c.IsUsed {
							return nil, errors.New("code must start unused")
						}
						if c.ActorAccountID != "account-owner" {
							return nil, errors.New("code bound to wrong actor")
						}
						return c, nil
					})
			},
		},
		{
			name:  "admin generates",
			actor: &types.Actor{ID: "account-admin", Role: "admin"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateSupportCode(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *types.SupportVerifyCode) (*types.SupportVerifyCode, error) {
						return c, nil
					})
			},
		},
		{
			name:        "org denied",
			actor:       &types.Actor{ID: "account-org", Role: "org"},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrNotAuthorized,
		},
		{
			name:        "user denied",
			actor:       &types.Actor{ID: "account-user", Role: "user"},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrNotAuthorized,
		},
		{
			name:  "storage failure",
			actor: &types.Actor{ID: "account-owner", Role: "owner"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateSupportCode(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("storage error"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, mockTracer, _ := newTestService(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "support.Service.Generate").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			code, ttl, err := s.Generate(context.Background(), tc.actor)

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
			if !codeFormat.MatchString(code) {
				t.Errorf("expected a 6-digit code, got %q", code)
			}
			if ttl != codeTTL {
				t.Errorf("expected TTL %v, got %v", codeTTL, ttl)
			}
		})
	}
}

func TestService_Validate(t *testing.T) {
	actor := &types.Actor{ID: "account-admin", Role: "admin"}

	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *MockLoggerInterface)
		expectOK   bool
		expectErr  bool
	}{
		{
			name: "valid code consumed",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ConsumeSupportCode(gomock.Any(), actor.ID, "123456", gomock.Any()).
					Return(true, nil)
			},
			expectOK: true,
		},
		{
			name: "invalid code rejected and logged",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ConsumeSupportCode(gomock.Any(), actor.ID, "123456", gomock.Any()).
					Return(false, nil)
				mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			},
		},
		{
			name: "storage failure",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ConsumeSupportCode(gomock.Any(), actor.ID, "123456", gomock.Any()).
					Return(false, errors.New("storage error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, mockTracer, mockLogger := newTestService(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "support.Service.Validate").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			ok, err := s.Validate(context.Background(), actor, "123456")

			if tc.expectErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error but got %v", err)
			}
			if ok != tc.expectOK {
				t.Errorf("expected ok=%v, got %v", tc.expectOK, ok)
			}
		})
	}
}

func TestService_SetAccountActive(t *testing.T) {
	testCases := []struct {
		name        string
		actor       *types.Actor
		active      bool
		setupMocks  func(*MockStorageInterface, *MockAuditInterface)
		expectedErr error
	}{
		{
			name:   "admin deactivates",
			actor:  &types.Actor{ID: "account-admin", Role: "admin"},
			active: false,
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().SetAccountActive(gomock.Any(), "account-target", false).Return(nil)
				mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "owner reactivates",
			actor:  &types.Actor{ID: "account-owner", Role: "owner"},
			active: true,
			setupMocks: func(mockStorage *MockStorageInterface, mockAudit *MockAuditInterface) {
				mockStorage.EXPECT().SetAccountActive(gomock.Any(), "account-target", true).Return(nil)
				mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:        "user denied",
			actor:       &types.Actor{ID: "account-user", Role: "user"},
			active:      false,
			setupMocks:  func(*MockStorageInterface, *MockAuditInterface) {},
			expectedErr: ErrNotAuthorized,
		},
		{
			name:        "org denied",
			actor:       &types.Actor{ID: "account-org", Role: "org"},
			active:      false,
			setupMocks:  func(*MockStorageInterface, *MockAuditInterface) {},
			expectedErr: ErrNotAuthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockAudit, mockTracer, _ := newTestService(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "support.Service.SetAccountActive").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAudit)

			err := s.SetAccountActive(context.Background(), tc.actor, "account-target", tc.active)

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
