// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits structured security events for audit pipelines.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn("authentication failure",
		zap.String("event", "authn_fail"),
		zap.String("subject", subject),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, action, resource, reason string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_fail"),
		zap.String("subject", subject),
		zap.String("action", action),
		zap.String("resource", resource),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) VerificationFailure(subject string) {
	s.l.Warn("verification code failure",
		zap.String("event", "verify_fail"),
		zap.String("subject", subject),
	)
}
