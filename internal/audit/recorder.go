// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/canonical/personnel-service/internal/db"
	"github.com/canonical/personnel-service/internal/logging"
	"github.com/canonical/personnel-service/internal/monitoring"
	"github.com/canonical/personnel-service/internal/tracing"
)

var _ RecorderInterface = (*Recorder)(nil)

type Recorder struct {
	db db.DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Recorder) Record(ctx context.Context, e Entry) error {
	ctx, span := r.tracer.Start(ctx, "audit.Recorder.Record")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate audit ID: %w", err)
	}

	meta := e.Meta
	if meta == nil {
		meta = map[string]interface{}{}
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal audit meta: %w", err)
	}

	_, err = r.db.Statement(ctx).
		Insert("audit_logs").
		Columns("id", "actor_type", "actor_id", "action", "target_type", "target_id", "meta").
		Values(id.String(), e.ActorType, e.ActorID, e.Action, e.TargetType, e.TargetID, metaJSON).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return nil
}

func NewRecorder(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Recorder {
	r := new(Recorder)

	r.db = c

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
