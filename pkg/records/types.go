// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package records

import (
	"encoding/json"
	"time"

	"github.com/canonical/personnel-service/internal/types"
)

type CreateServiceMemberRequest struct {
	Branch    string          `json:"branch" validate:"required"`
	Component string          `json:"component" validate:"required"`
	STPData   json.RawMessage `json:"stp_data"`
}

type UpdateSTPRequest struct {
	STPData json.RawMessage `json:"stp_data" validate:"required"`
}

type ServiceMemberResponse struct {
	ID               string          `json:"id"`
	CreatorAccountID string          `json:"creator_account_id"`
	SubjectAccountID string          `json:"subject_account_id,omitempty"`
	OrganizationID   string          `json:"organization_id,omitempty"`
	Branch           string          `json:"branch"`
	Component        string          `json:"component"`
	STPData          json.RawMessage `json:"stp_data"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type ClaimCodeResponse struct {
	ServiceMemberID string `json:"service_member_id"`
	ClaimCode       string `json:"claim_code"`
}

func newServiceMemberResponse(m *types.ServiceMember) ServiceMemberResponse {
	return ServiceMemberResponse{
		ID:               m.ID,
		CreatorAccountID: m.CreatorAccountID,
		SubjectAccountID: m.SubjectAccountID,
		OrganizationID:   m.OrganizationID,
		Branch:           m.Branch,
		Component:        m.Component,
		STPData:          m.STPData,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
