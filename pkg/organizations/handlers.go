// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

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

type OrgCreateRequestBody struct {
	Name               string `json:"name" validate:"required"`
	Base               string `json:"base"`
	CommandTeam        string `json:"command_team"`
	TierCode           string `json:"tier_code"`
	UnitMemorandumNote string `json:"unit_memorandum_note"`
}

type OrganizationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Base        string    `json:"base,omitempty"`
	CommandTeam string    `json:"command_team,omitempty"`
	TierCode    string    `json:"tier_code,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
}

func newOrganizationResponse(o *types.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		Base:        o.Base,
		CommandTeam: o.CommandTeam,
		TierCode:    o.TierCode,
		IsVerified:  o.IsVerified,
		IsApproved:  o.IsApproved,
		CreatedAt:   o.CreatedAt,
	}
}

type RosterEntry struct {
	ID        string `json:"id"`
	Branch    string `json:"branch"`
	Component string `json:"component"`
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
	mux.Post("/api/v0/organizations/request", a.request)
	mux.Post("/api/v0/organizations/{id}/verify", a.verify)
	mux.Post("/api/v0/organizations/{id}/approve", a.approve)
	mux.Get("/api/v0/organizations/{id}/roster", a.roster)
	mux.Get("/api/v0/org-dashboard/{id}/summary", a.dashboardSummary)
}

func (a *API) request(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	var body OrgCreateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(body); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	org, err := a.service.Request(r.Context(), actor, &OrgCreateRequest{
		Name:               body.Name,
		Base:               body.Base,
		CommandTeam:        body.CommandTeam,
		TierCode:           body.TierCode,
		UnitMemorandumNote: body.UnitMemorandumNote,
	})
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, newOrganizationResponse(org))
}

func (a *API) verify(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	org, err := a.service.Verify(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, newOrganizationResponse(org))
}

func (a *API) approve(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	org, err := a.service.Approve(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, newOrganizationResponse(org))
}

func (a *API) roster(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	members, err := a.service.Roster(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	resp := make([]RosterEntry, 0, len(members))
	for _, m := range members {
		resp = append(resp, RosterEntry{ID: m.ID, Branch: m.Branch, Component: m.Component})
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) dashboardSummary(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	summary, err := a.service.DashboardSummary(r.Context(), actor, chi.URLParam(r, "id"), time.Now().UTC())
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, summary)
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotAuthorized), errors.Is(err, ErrWrongOrg):
		a.writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrDuplicateKey):
		a.writeError(w, http.StatusConflict, "organization already exists")
	case errors.Is(err, storage.ErrNotVerified):
		a.writeError(w, http.StatusConflict, err.Error())
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
