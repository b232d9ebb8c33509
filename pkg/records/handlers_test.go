// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package records

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/personnel-service/internal/authorization"
	"github.com/canonical/personnel-service/internal/branch"
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

func TestAPI_Create(t *testing.T) {
	actor := &types.Actor{ID: "account-1", Role: "user"}

	testCases := []struct {
		name           string
		body           string
		actor          *types.Actor
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:  "success",
			body:  `{"branch": "Army", "component": "Active", "stp_data": {"rank": "SGT"}}`,
			actor: actor,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Create(gomock.Any(), actor, "Army", "Active", gomock.Any()).
					Return(&types.ServiceMember{ID: "sm-1", Branch: "Army", Component: "Active"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "no actor",
			body:           `{"branch": "Army", "component": "Active"}`,
			actor:          nil,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed body",
			body:           `{"branch": `,
			actor:          actor,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing branch",
			body:           `{"component": "Active"}`,
			actor:          actor,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "invalid combination",
			body:  `{"branch": "Space Force", "component": "Reserve"}`,
			actor: actor,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Create(gomock.Any(), actor, "Space Force", "Reserve", gomock.Any()).
					Return(nil, branch.ErrInvalidCombination)
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

			rr := serveWithActor(t, NewAPI(mockService, mockLogger), http.MethodPost, "/api/v0/service-members", tc.body, tc.actor)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_ServiceErrorMapping(t *testing.T) {
	actor := &types.Actor{ID: "account-1", Role: "user"}

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "denied", err: authorization.ErrNotAuthorized, expectedStatus: http.StatusForbidden},
		{name: "not controller", err: ErrNotController, expectedStatus: http.StatusForbidden},
		{name: "not found", err: storage.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "already linked", err: storage.ErrAlreadyLinked, expectedStatus: http.StatusConflict},
		{name: "already claimed", err: storage.ErrAlreadyClaimed, expectedStatus: http.StatusConflict},
		{name: "unknown error", err: storage.ErrDuplicateKey, expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			if tc.expectedStatus == http.StatusInternalServerError {
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			}
			mockService.EXPECT().IssueClaimCode(gomock.Any(), actor, "sm-1").Return("", tc.err)

			rr := serveWithActor(t, NewAPI(mockService, mockLogger), http.MethodPost, "/api/v0/service-members/sm-1/issue-claim", "", actor)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}

			var envelope map[string]interface{}
			if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("malformed error envelope: %v", err)
			}
			if int(envelope["status"].(float64)) != tc.expectedStatus {
				t.Errorf("envelope status mismatch: %v", envelope)
			}
		})
	}
}

func TestAPI_Claim(t *testing.T) {
	actor := &types.Actor{ID: "account-2", Role: "user"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockService.EXPECT().RedeemClaimCode(gomock.Any(), actor, "code-abc").
		Return(&types.ServiceMember{ID: "sm-1", SubjectAccountID: actor.ID}, nil)

	rr := serveWithActor(t, NewAPI(mockService, mockLogger), http.MethodPost, "/api/v0/service-members/claim/code-abc", "", actor)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp ServiceMemberResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("malformed response: %v", err)
	}
	if resp.ID != "sm-1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
