// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"encoding/json"
	"fmt"
	"testing"
)

func fitnessPayload(expiresInDays int) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"fitness": {"expiration_date": %q}}`, isoDaysFromNow(expiresInDays)))
}

func TestBuildOrgDashboard(t *testing.T) {
	payloads := []json.RawMessage{
		fitnessPayload(90),
		fitnessPayload(45),
		fitnessPayload(-1),
		json.RawMessage(`{}`),
	}

	d := BuildOrgDashboard(payloads, testNow)

	if d.TotalPersonnel != 4 {
		t.Fatalf("expected 4 personnel, got %d", d.TotalPersonnel)
	}

	counts := d.FitnessSummary.Counts
	if counts.Green != 1 || counts.Amber != 1 || counts.Red != 1 || counts.Gray != 1 {
		t.Errorf("unexpected fitness counts: %+v", counts)
	}
	if d.FitnessSummary.OverallStatus != StatusRed {
		t.Errorf("expected red overall fitness, got %q", d.FitnessSummary.OverallStatus)
	}
	if d.TrainingSummary.OverallStatus != StatusGreen {
		t.Errorf("expected green overall training, got %q", d.TrainingSummary.OverallStatus)
	}
}

func TestBuildOrgDashboardOverallOrdering(t *testing.T) {
	testCases := []struct {
		name     string
		payloads []json.RawMessage
		expected string
	}{
		{name: "empty org", payloads: nil, expected: StatusGreen},
		{name: "all green", payloads: []json.RawMessage{fitnessPayload(120)}, expected: StatusGreen},
		{name: "amber beats green", payloads: []json.RawMessage{fitnessPayload(120), fitnessPayload(45)}, expected: StatusAmber},
		{name: "red beats amber", payloads: []json.RawMessage{fitnessPayload(45), fitnessPayload(5)}, expected: StatusRed},
		{name: "gray does not escalate", payloads: []json.RawMessage{json.RawMessage(`{}`)}, expected: StatusGreen},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := BuildOrgDashboard(tc.payloads, testNow)
			if d.FitnessSummary.OverallStatus != tc.expected {
				t.Errorf("expected overall %q, got %q", tc.expected, d.FitnessSummary.OverallStatus)
			}
		})
	}
}
