// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/storage"
	"github.com/canonical/personnel-service/internal/types"
	"github.com/canonical/personnel-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_identity.go -source=./middleware.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	accountID := "account-1"

	testCases := []struct {
		name           string
		header         string
		setupMocks     func(*MockStorageInterface, *MockLoggerInterface)
		expectedStatus int
		expectActor    bool
	}{
		{
			name:   "active account becomes actor",
			header: accountID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).
					Return(&types.Account{ID: accountID, Role: "user", OrganizationID: "org-1", IsActive: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectActor:    true,
		},
		{
			name:           "missing header",
			header:         "",
			setupMocks:     func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "unknown account",
			header: accountID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).
					Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "deactivated account",
			header: accountID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).
					Return(&types.Account{ID: accountID, Role: "user", IsActive: false}, nil)
				mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "storage failure",
			header: accountID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetAccountByID(gomock.Any(), accountID).
					Return(nil, errors.New("connection reset"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
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

			mockTracer.EXPECT().Start(gomock.Any(), "identity.Middleware.HTTPMiddleware").DoAndReturn(
				func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				})
			tc.setupMocks(mockStorage, mockLogger)

			var gotActor *types.Actor
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotActor, _ = authentication.GetActor(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/service-members", nil)
			if tc.header != "" {
				req.Header.Set(HeaderName, tc.header)
			}

			rr := httptest.NewRecorder()
			NewMiddleware(mockStorage, mockTracer, mockMonitor, mockLogger).HTTPMiddleware(next).ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
			if tc.expectActor {
				if gotActor == nil {
					t.Fatal("expected actor in context")
				}
				if gotActor.ID != accountID || gotActor.Role != "user" || gotActor.OrganizationID != "org-1" {
					t.Errorf("unexpected actor: %+v", gotActor)
				}
			} else if gotActor != nil {
				t.Errorf("expected no actor, got %+v", gotActor)
			}
		})
	}
}
