// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package support

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/storage"
	"github.com/canonical/personnel-service/pkg/authentication"
)

type GenerateCodeResponse struct {
	Message          string `json:"message"`
	Code             string `json:"code"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}

type API struct {
	service    ServiceInterface
	middleware *Middleware

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, middleware *Middleware, logger logging.LoggerInterface) *API {
	return &API{
		service:    service,
		middleware: middleware,
		logger:     logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/support/generate-verify-code", a.generateCode)
	mux.Group(func(r chi.Router) {
		r.Use(a.middleware.RequireVerification)
		r.Post("/api/v0/support/accounts/{id}/deactivate", a.deactivateAccount)
		r.Post("/api/v0/support/accounts/{id}/reactivate", a.reactivateAccount)
	})
}

// generateCode mints a fresh verification code for the calling owner or
// admin. The code is returned in the response; delivery over a side channel
// is left to the operator.
func (a *API) generateCode(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	code, ttl, err := a.service.Generate(r.Context(), actor)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, GenerateCodeResponse{
		Message:          "Verification code generated",
		Code:             code,
		ExpiresInMinutes: int(ttl.Minutes()),
	})
}

func (a *API) deactivateAccount(w http.ResponseWriter, r *http.Request) {
	a.setAccountActive(w, r, false)
}

func (a *API) reactivateAccount(w http.ResponseWriter, r *http.Request) {
	a.setAccountActive(w, r, true)
}

func (a *API) setAccountActive(w http.ResponseWriter, r *http.Request, active bool) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	if err := a.service.SetAccountActive(r.Context(), actor, chi.URLParam(r, "id"), active); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"account_id": chi.URLParam(r, "id"),
		"is_active":  active,
	})
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotAuthorized):
		a.writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, err.Error())
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
