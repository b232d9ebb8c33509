// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/personnel-service/internal/audit"
	"github.com/canonical/personnel-service/internal/authorization"
	"github.com/canonical/personnel-service/internal/db"
	"github.com/canonical/personnel-service/internal/identity"
	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/monitoring"
	"github.com/canonical/personnel-service/internal/storage"
	"github.com/canonical/personnel-service/internal/tracing"
	"github.com/canonical/personnel-service/pkg/authentication"
	"github.com/canonical/personnel-service/pkg/metrics"
	"github.com/canonical/personnel-service/pkg/organizations"
	"github.com/canonical/personnel-service/pkg/records"
	"github.com/canonical/personnel-service/pkg/shares"
	"github.com/canonical/personnel-service/pkg/status"
	"github.com/canonical/personnel-service/pkg/support"
	"github.com/canonical/personnel-service/pkg/uploads"
)

type RouterConfig struct {
	TokenVerifier  authentication.TokenVerifierInterface
	FileStore      uploads.FileStoreInterface
	MaxPerSpot     int
	SupportCodeTTL time.Duration
}

func NewRouter(
	cfg RouterConfig,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	// Unauthenticated operational endpoints.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	auditor := audit.NewRecorder(dbClient, tracer, monitor, logger)
	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)

	recordsService := records.NewService(s, authorizer, auditor, tracer, monitor, logger)
	sharesService := shares.NewService(s, auditor, tracer, monitor, logger)
	uploadsService := uploads.NewService(s, cfg.FileStore, authorizer, auditor, dbClient, cfg.MaxPerSpot, tracer, monitor, logger)
	supportService := support.NewService(s, auditor, cfg.SupportCodeTTL, tracer, monitor, logger)
	orgsService := organizations.NewService(s, auditor, tracer, monitor, logger)

	router.Group(func(r chi.Router) {
		if cfg.TokenVerifier != nil {
			r.Use(authentication.NewMiddleware(cfg.TokenVerifier, tracer, monitor, logger).Authenticate())
		}
		r.Use(identity.NewMiddleware(s, tracer, monitor, logger).HTTPMiddleware)
		r.Use(db.TransactionMiddleware(dbClient, logger))

		mux := r.(*chi.Mux)
		records.NewAPI(recordsService, logger).RegisterEndpoints(mux)
		shares.NewAPI(sharesService, logger).RegisterEndpoints(mux)
		uploads.NewAPI(uploadsService, logger).RegisterEndpoints(mux)
		support.NewAPI(supportService, support.NewMiddleware(supportService, tracer, logger), logger).RegisterEndpoints(mux)
		organizations.NewAPI(orgsService, logger).RegisterEndpoints(mux)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
