// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package shares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/personnel-service/internal/storage"
	"github.com/canonical/personnel-service/internal/types"
	"github.com/canonical/personnel-service/pkg/authentication"
)

func serveWithActor(t *testing.T, api *API, method, target, body string, actor *types.Actor) *httptest.ResponseRecorder {
	t.Helper()

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if actor != nil {
		req = req.WithContext(authentication.WithActor(req.Context(), actor))
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestAPI_ToAccount(t *testing.T) {
	actor := &types.Actor{ID: "account-1", Role: "user"}

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"service_member_id": "sm-1", "target_account_id": "account-2", "permission": "view"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GrantToAccount(gomock.Any(), actor, "sm-1", "account-2", "view").
					Return(&types.ShareGrant{ID: "share-1", Status: types.ShareStatusAccepted}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing target",
			body:           `{"service_member_id": "sm-1"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not controller",
			body: `{"service_member_id": "sm-1", "target_account_id": "account-2"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GrantToAccount(gomock.Any(), actor, "sm-1", "account-2", "").
					Return(nil, ErrNotController)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "invalid permission",
			body: `{"service_member_id": "sm-1", "target_account_id": "account-2", "permission": "root"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().GrantToAccount(gomock.Any(), actor, "sm-1", "account-2", "root").
					Return(nil, ErrInvalidPermission)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tc.setupMocks(mockService)

			rr := serveWithActor(t, NewAPI(mockService, mockLogger), http.MethodPost, "/api/v0/shares/to-account", tc.body, actor)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_OrgDecision(t *testing.T) {
	actor := &types.Actor{ID: "account-org", Role: "org", OrganizationID: "org-1"}

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "accepted",
			body: `{"share_id": "share-1", "decision": "accepted"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Decide(gomock.Any(), actor, "share-1", "accepted", "").
					Return(&types.ShareGrant{ID: "share-1", Status: types.ShareStatusAccepted}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "already decided",
			body: `{"share_id": "share-1", "decision": "denied"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Decide(gomock.Any(), actor, "share-1", "denied", "").
					Return(nil, storage.ErrAlreadyDecided)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "invalid decision",
			body: `{"share_id": "share-1", "decision": "maybe"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Decide(gomock.Any(), actor, "share-1", "maybe", "").
					Return(nil, ErrInvalidDecision)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tc.setupMocks(mockService)

			rr := serveWithActor(t, NewAPI(mockService, mockLogger), http.MethodPost, "/api/v0/shares/org-decision", tc.body, actor)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
