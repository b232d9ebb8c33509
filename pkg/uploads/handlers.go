// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package uploads

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/personnel-service/internal/authorization"
	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/storage"
	"github.com/canonical/personnel-service/internal/types"
	"github.com/canonical/personnel-service/pkg/authentication"
)

// maxUploadBytes caps multipart form memory and upload size.
const maxUploadBytes = 32 << 20

type UploadFileResponse struct {
	ID          string    `json:"id"`
	SpotKey     string    `json:"spot_key"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

func newUploadFileResponse(f *types.UploadFile) UploadFileResponse {
	return UploadFileResponse{
		ID:          f.ID,
		SpotKey:     f.SpotKey,
		Filename:    f.Filename,
		ContentType: f.ContentType,
		SizeBytes:   f.SizeBytes,
		CreatedAt:   f.CreatedAt,
	}
}

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/uploads/spot", a.uploadToSpot)
	mux.Get("/api/v0/service-members/{id}/uploads/{spotKey}", a.listSpot)
}

func (a *API) uploadToSpot(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	serviceMemberID := r.FormValue("service_member_id")
	spotKey := r.FormValue("spot_key")
	if serviceMemberID == "" || spotKey == "" {
		a.writeError(w, http.StatusBadRequest, "service_member_id and spot_key are required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	result, err := a.service.UploadToSpot(r.Context(), actor, &UploadRequest{
		ServiceMemberID: serviceMemberID,
		SpotKey:         spotKey,
		ConfirmRotate:   r.FormValue("confirm_rotate") == "true",
		Filename:        header.Filename,
		ContentType:     header.Header.Get("Content-Type"),
		Content:         content,
	})
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, result)
}

func (a *API) listSpot(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.GetActor(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing actor")
		return
	}

	files, err := a.service.ListSpot(r.Context(), actor, chi.URLParam(r, "id"), chi.URLParam(r, "spotKey"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	resp := make([]UploadFileResponse, 0, len(files))
	for _, f := range files {
		resp = append(resp, newUploadFileResponse(f))
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authorization.ErrNotAuthorized):
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
