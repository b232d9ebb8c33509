// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package shares

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/storage"
	"github.com/canonical/personnel-service/internal/types"
	"github.com/canonical/personnel-service/pkg/authentication"
)

type ShareToAccountRequest struct {
	ServiceMemberID string `json:"service_member_id" validate:"required"`
	TargetAccountID string `json:"target_account_id" validate:"required"`
	Permission      string `json:"permission"`
}

type ShareToOrgRequest struct {
	ServiceMemberID string `json:"service_member_id" validate:"required"`
	TargetOrgID     string `json:"target_org_id" validate:"required"`
}

type ShareDecisionRequest struct {
	ShareID  string `json:"share_id" validate:"required"`
	Decision string `json:"decision" validate:"required"`
	Reason   string `json:"reason"`
}

type ShareResponse struct {
	ID              string    `json:"id"`
	ServiceMemberID string    `json:"service_member_id"`
	TargetKind      string    `json:"target_kind"`
	TargetID        string    `json:"target_id"`
	Permission      string    `json:"permission"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func newShareResponse(g *types.ShareGrant) ShareResponse {
	return ShareResponse{
		ID:              g.ID,
		ServiceMemberID: g.ServiceMemberID,
		TargetKind:      string(g.Target.Kind),
		TargetID:        g.Target.ID,
		Permission:      g.Permission,
		Status:          g.Status,
		CreatedAt:       g.CreatedAt,
	}
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/shares/to-account", a.toAccount)
	mux.Post("/api/v0/shares/to-org", a.toOrg)
	mux.Post("/api/v0/shares/org-decision", a.orgDecision)
	mux.Get("/api/v0/service-members/{id}/shares", a.listForServiceMember)
}

func (a *API) toAccount(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	var req ShareToAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	grant, err := a.service.GrantToAccount(r.Context(), actor, req.ServiceMemberID, req.TargetAccountID, req.Permission)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, newShareResponse(grant))
}

func (a *API) toOrg(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	var req ShareToOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	grant, err := a.service.GrantToOrg(r.Context(), actor, req.ServiceMemberID, req.TargetOrgID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, newShareResponse(grant))
}

func (a *API) orgDecision(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	var req ShareDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	grant, err := a.service.Decide(r.Context(), actor, req.ShareID, req.Decision, req.Reason)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, newShareResponse(grant))
}

func (a *API) listForServiceMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	grants, err := a.service.ListForServiceMember(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	resp := make([]ShareResponse, 0, len(grants))
	for _, g := range grants {
		resp = append(resp, newShareResponse(g))
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotController), errors.Is(err, ErrDecisionForbidden):
		a.writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrAlreadyDecided):
		a.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidPermission), errors.Is(err, ErrInvalidDecision):
		a.writeError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("internal error: %v", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	a.writeJSON(w, status, map[string]interface{}{
		"status":  status,
		"message": message,
	})
}
