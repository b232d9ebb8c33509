// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"time"
)

type Account struct {
	ID             string    `db:"id"`
	Email          string    `db:"email"`
	Role           string    `db:"role"`
	OrganizationID string    `db:"organization_id"`
	TierCode       string    `db:"tier_code"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
}

type Organization struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Base        string    `db:"base"`
	CommandTeam string    `db:"command_team"`
	TierCode    string    `db:"tier_code"`
	IsVerified  bool      `db:"is_verified"`
	IsApproved  bool      `db:"is_approved"`
	CreatedAt   time.Time `db:"created_at"`
}

// ServiceMember is the protected personnel record. SubjectAccountID is empty
// until the record is claimed; ClaimCode is only present between issuance
// and redemption.
type ServiceMember struct {
	ID               string          `db:"id"`
	CreatorAccountID string          `db:"creator_account_id"`
	SubjectAccountID string          `db:"subject_account_id"`
	OrganizationID   string          `db:"organization_id"`
	Branch           string          `db:"branch"`
	Component        string          `db:"component"`
	STPData          json.RawMessage `db:"stp_data"`
	ClaimCode        string          `db:"claim_code"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// ControllerAccountID resolves the single controlling account of a record:
// the subject once linked, the creator otherwise.
func (m *ServiceMember) ControllerAccountID() string {
	if m.SubjectAccountID != "" {
		return m.SubjectAccountID
	}
	return m.CreatorAccountID
}

type ShareTargetKind string

const (
	ShareTargetAccount ShareTargetKind = "account"
	ShareTargetOrg     ShareTargetKind = "org"
)

// ShareTarget is a tagged variant: a share targets exactly one account or
// exactly one organization.
type ShareTarget struct {
	Kind ShareTargetKind
	ID   string
}

func AccountTarget(accountID string) ShareTarget {
	return ShareTarget{Kind: ShareTargetAccount, ID: accountID}
}

func OrgTarget(orgID string) ShareTarget {
	return ShareTarget{Kind: ShareTargetOrg, ID: orgID}
}

const (
	SharePermissionView = "view"
	SharePermissionEdit = "edit"

	ShareStatusPending  = "pending"
	ShareStatusAccepted = "accepted"
	ShareStatusDenied   = "denied"
)

type ShareGrant struct {
	ID              string      `db:"id"`
	ServiceMemberID string      `db:"service_member_id"`
	Target          ShareTarget `db:"-"`
	Permission      string      `db:"permission"`
	Status          string      `db:"status"`
	CreatedAt       time.Time   `db:"created_at"`
}

type SupportVerifyCode struct {
	ID             string    `db:"id"`
	ActorAccountID string    `db:"actor_account_id"`
	Code           string    `db:"code"`
	IsUsed         bool      `db:"is_used"`
	ExpiresAt      time.Time `db:"expires_at"`
	CreatedAt      time.Time `db:"created_at"`
}

type UploadFile struct {
	ID              string    `db:"id"`
	ServiceMemberID string    `db:"service_member_id"`
	SpotKey         string    `db:"spot_key"`
	Filename        string    `db:"filename"`
	ContentType     string    `db:"content_type"`
	SizeBytes       int64     `db:"size_bytes"`
	StoragePath     string    `db:"storage_path"`
	CreatedAt       time.Time `db:"created_at"`
}

// Actor is the authenticated identity attached to a request after the
// identity middleware has resolved the account.
type Actor struct {
	ID             string
	Role           string
	OrganizationID string
}

type AuditEntry struct {
	ID         string          `db:"id"`
	ActorType  string          `db:"actor_type"`
	ActorID    string          `db:"actor_id"`
	Action     string          `db:"action"`
	TargetType string          `db:"target_type"`
	TargetID   string          `db:"target_id"`
	Meta       json.RawMessage `db:"meta"`
	CreatedAt  time.Time       `db:"created_at"`
}
