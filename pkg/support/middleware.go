// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package support

import (
	"encoding/json"
	"net/http"

	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/tracing"
	"github.com/canonical/personnel-service/pkg/authentication"
)

// VerifyCodeHeader carries the one-time support verification code.
const VerifyCodeHeader = "X-Account-Verify-Code"

type Middleware struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewMiddleware(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

// RequireVerification gates a handler behind a valid, unexpired support
// code. The code is consumed on success, so each verified request needs a
// fresh code.
func (m *Middleware) RequireVerification(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "support.Middleware.RequireVerification")
		defer span.End()

		actor, ok := authentication.GetActor(ctx)
		if !ok {
			m.reject(w, http.StatusUnauthorized, "missing actor")
			return
		}

		code := r.Header.Get(VerifyCodeHeader)
		if len(code) != 6 {
			m.reject(w, http.StatusForbidden, "verification code required")
			return
		}

		valid, err := m.service.Validate(ctx, actor, code)
		if err != nil {
			m.logger.Errorf("failed to validate support code: %v", err)
			m.reject(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if !valid {
			m.reject(w, http.StatusForbidden, "invalid or expired verification code")
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) reject(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode response: %v", err)
	}
}
