// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package policy

// Role is an account's global role.
type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
	RoleOrg   Role = "org"
	RoleUser  Role = "user"
)

// Action identifies an operation class subject to role policy.
type Action string

const (
	ActionServiceMemberRead     Action = "sm:read"
	ActionServiceMemberWriteSTP Action = "sm:write:stp"
	ActionServiceMemberShare    Action = "sm:share"
	ActionServiceMemberUpload   Action = "sm:upload"
	ActionServiceMemberDelete   Action = "sm:delete"

	ActionOrgRead         Action = "org:read"
	ActionOrgManageRoster Action = "org:manage_roster"
	ActionOrgDashboard    Action = "org:dashboard"

	// ActionSupportAccount additionally requires a 6-digit verification code.
	ActionSupportAccount Action = "support:account_action"
)

// Decision is the outcome of a role policy check.
type Decision struct {
	Allowed bool
	Reason  string
}

var orgActions = map[Action]bool{
	ActionOrgRead:           true,
	ActionOrgManageRoster:   true,
	ActionOrgDashboard:      true,
	ActionServiceMemberRead: true,
}

var userActions = map[Action]bool{
	ActionServiceMemberRead:     true,
	ActionServiceMemberWriteSTP: true,
	ActionServiceMemberShare:    true,
	ActionServiceMemberUpload:   true,
	ActionOrgRead:               true,
}

// Decide resolves the global role policy for a (role, action) pair.
// Resource-specific checks happen in the authorization gate. The function is
// total: every pair resolves to a decision.
func Decide(role Role, action Action) Decision {
	switch role {
	case RoleOwner:
		return Decision{Allowed: true, Reason: "owner allowed"}
	case RoleAdmin:
		if action == ActionServiceMemberDelete {
			return Decision{Allowed: false, Reason: "admin cannot delete service members"}
		}
		return Decision{Allowed: true, Reason: "admin allowed"}
	case RoleOrg:
		if orgActions[action] {
			return Decision{Allowed: true, Reason: "org allowed"}
		}
		return Decision{Allowed: false, Reason: "org not allowed for this action"}
	case RoleUser:
		if userActions[action] {
			return Decision{Allowed: true, Reason: "user allowed"}
		}
		return Decision{Allowed: false, Reason: "user not allowed for this action"}
	}

	return Decision{Allowed: false, Reason: "unknown role"}
}
