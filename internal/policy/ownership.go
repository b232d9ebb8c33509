// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package policy

import (
	"github.com/canonical/personnel-service/internal/types"
)

// CanControl reports whether the actor is the record's single controlling
// account: the subject once linked, the creator otherwise.
func CanControl(actorAccountID string, m *types.ServiceMember) bool {
	return m.ControllerAccountID() == actorAccountID
}

// CanOrgAccess reports whether an org-scoped actor can see an org-owned
// record. Both sides must carry an organization.
func CanOrgAccess(actorOrgID, recordOrgID string) bool {
	return actorOrgID != "" && actorOrgID == recordOrgID
}
