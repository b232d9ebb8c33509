// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package identity resolves the authenticated account for each request and
// attaches it to the request context as the actor.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/monitoring"
	"github.com/canonical/personnel-service/internal/storage"
	"github.com/canonical/personnel-service/internal/tracing"
	"github.com/canonical/personnel-service/internal/types"
	"github.com/canonical/personnel-service/pkg/authentication"
)

// HeaderName is the header carrying the authenticated account ID. It is
// honored only when no token verifier put a subject in the context, which
// is the local development setup.
const HeaderName = "X-Authenticated-Account-Id"

type StorageInterface interface {
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)
}

type Middleware struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware loads the account for the authenticated subject, rejects
// unknown and deactivated accounts, and stores the actor in the context.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		accountID, ok := authentication.GetUserID(ctx)
		if !ok {
			accountID = r.Header.Get(HeaderName)
		}
		if accountID == "" {
			m.unauthorizedResponse(w, "missing authenticated account")
			return
		}

		account, err := m.storage.GetAccountByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				m.logger.Security().AuthnFailure(accountID, "unknown account")
				m.unauthorizedResponse(w, "unknown account")
				return
			}
			m.logger.Errorf("failed to load account %s: %v", accountID, err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if !account.IsActive {
			m.logger.Security().AuthnFailure(accountID, "account deactivated")
			m.unauthorizedResponse(w, "account deactivated")
			return
		}

		actor := &types.Actor{
			ID:             account.ID,
			Role:           account.Role,
			OrganizationID: account.OrganizationID,
		}

		ctx = authentication.WithActor(ctx, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}
