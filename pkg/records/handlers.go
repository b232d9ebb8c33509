// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/personnel-service/internal/authorization"
	"github.com/canonical/personnel-service/internal/branch"
	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/storage"
	"github.com/canonical/personnel-service/pkg/authentication"
)

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
	mux.Post("/api/v0/service-members", a.create)
	mux.Get("/api/v0/service-members", a.list)
	mux.Get("/api/v0/service-members/{id}", a.get)
	mux.Put("/api/v0/service-members/{id}/stp", a.updateSTP)
	mux.Delete("/api/v0/service-members/{id}", a.delete)
	mux.Post("/api/v0/service-members/{id}/issue-claim", a.issueClaim)
	mux.Post("/api/v0/service-members/claim/{code}", a.claim)
	mux.Get("/api/v0/service-members/{id}/dashboard", a.dashboard)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	var req CreateServiceMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := a.service.Create(r.Context(), actor, req.Branch, req.Component, req.STPData)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, newServiceMemberResponse(member))
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	members, err := a.service.ListAccessible(r.Context(), actor)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	resp := make([]ServiceMemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, newServiceMemberResponse(m))
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	member, err := a.service.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, newServiceMemberResponse(member))
}

func (a *API) updateSTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	var req UpdateSTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := a.service.UpdateSTP(r.Context(), actor, chi.URLParam(r, "id"), req.STPData)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, newServiceMemberResponse(member))
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	if err := a.service.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) issueClaim(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	id := chi.URLParam(r, "id")
	code, err := a.service.IssueClaimCode(r.Context(), actor, id)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, ClaimCodeResponse{ServiceMemberID: id, ClaimCode: code})
}

func (a *API) claim(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	member, err := a.service.RedeemClaimCode(r.Context(), actor, chi.URLParam(r, "code"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, newServiceMemberResponse(member))
}

func (a *API) dashboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	cards, err := a.service.Dashboard(r.Context(), actor, chi.URLParam(r, "id"), time.Now().UTC())
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, cards)
}

// serviceError maps domain sentinels to HTTP status codes.
func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authorization.ErrNotAuthorized), errors.Is(err, ErrNotController):
		a.writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrAlreadyLinked), errors.Is(err, storage.ErrAlreadyClaimed):
		a.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, branch.ErrUnsupportedBranch), errors.Is(err, branch.ErrInvalidCombination):
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
