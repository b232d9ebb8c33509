// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func isoDaysFromNow(days int) string {
	return testNow.AddDate(0, 0, days).Format(time.RFC3339)
}

func TestStatusColor(t *testing.T) {
	testCases := []struct {
		name     string
		days     *int
		expected string
	}{
		{name: "missing date", days: nil, expected: StatusGray},
		{name: "expired", days: intPtr(-10), expected: StatusRed},
		{name: "under 30 days", days: intPtr(29), expected: StatusRed},
		{name: "exactly 30 days", days: intPtr(30), expected: StatusAmber},
		{name: "exactly 60 days", days: intPtr(60), expected: StatusAmber},
		{name: "over 60 days", days: intPtr(61), expected: StatusGreen},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusColor(tc.days); got != tc.expected {
				t.Errorf("statusColor(%v) = %q, want %q", tc.days, got, tc.expected)
			}
		})
	}
}

func TestDaysRemaining(t *testing.T) {
	if d := daysRemaining("", testNow); d != nil {
		t.Errorf("expected nil for empty date, got %d", *d)
	}
	if d := daysRemaining("not-a-date", testNow); d != nil {
		t.Errorf("expected nil for garbage date, got %d", *d)
	}
	if d := daysRemaining(isoDaysFromNow(45), testNow); d == nil || *d != 45 {
		t.Errorf("expected 45 days, got %v", d)
	}
	if d := daysRemaining("2026-09-15", testNow); d == nil || *d != 44 {
		t.Errorf("expected bare date support, got %v", d)
	}
}

func TestBuildFitnessCard(t *testing.T) {
	testCases := []struct {
		name         string
		branch       string
		expectedType string
	}{
		{name: "army", branch: "Army", expectedType: "ACFT"},
		{name: "air force", branch: "Air Force", expectedType: "PFA"},
		{name: "space force", branch: "Space Force", expectedType: "PFA"},
		{name: "navy", branch: "Navy", expectedType: "PRT"},
		{name: "marine corps", branch: "Marine Corps", expectedType: "PFT/CFT"},
		{name: "coast guard", branch: "Coast Guard", expectedType: "PT"},
		{name: "unknown branch", branch: "Militia", expectedType: "Fitness"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stp := STP{
				"branch": tc.branch,
				"fitness": map[string]interface{}{
					"expiration_date": isoDaysFromNow(90),
				},
			}
			card := BuildFitnessCard(stp, testNow)

			if card.TestType != tc.expectedType {
				t.Errorf("expected test type %q, got %q", tc.expectedType, card.TestType)
			}
			if card.Status != StatusGreen {
				t.Errorf("expected green status, got %q", card.Status)
			}
		})
	}

	t.Run("missing fitness block", func(t *testing.T) {
		card := BuildFitnessCard(STP{"branch": "Army"}, testNow)
		if card.Status != StatusGray {
			t.Errorf("expected gray status, got %q", card.Status)
		}
		if card.DaysRemaining != nil {
			t.Errorf("expected nil days remaining, got %d", *card.DaysRemaining)
		}
	})
}

func TestBuildTrainingCard(t *testing.T) {
	testCases := []struct {
		name            string
		items           []interface{}
		expectedStatus  string
		expectedOverdue int
		expectedDue     int
	}{
		{
			name:           "no training",
			items:          nil,
			expectedStatus: StatusGreen,
		},
		{
			name: "all complete and distant",
			items: []interface{}{
				map[string]interface{}{"completed": true, "due_date": isoDaysFromNow(120)},
			},
			expectedStatus: StatusGreen,
		},
		{
			name: "upcoming due date",
			items: []interface{}{
				map[string]interface{}{"completed": false, "due_date": isoDaysFromNow(30)},
			},
			expectedStatus: StatusAmber,
			expectedDue:    1,
		},
		{
			name: "overdue wins over upcoming",
			items: []interface{}{
				map[string]interface{}{"completed": false, "due_date": isoDaysFromNow(-5)},
				map[string]interface{}{"completed": false, "due_date": isoDaysFromNow(30)},
			},
			expectedStatus:  StatusRed,
			expectedOverdue: 1,
			expectedDue:     1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			card := BuildTrainingCard(STP{"training": tc.items}, testNow)

			if card.Status != tc.expectedStatus {
				t.Errorf("expected status %q, got %q", tc.expectedStatus, card.Status)
			}
			if card.Overdue != tc.expectedOverdue {
				t.Errorf("expected %d overdue, got %d", tc.expectedOverdue, card.Overdue)
			}
			if card.DueWithin60Days != tc.expectedDue {
				t.Errorf("expected %d due soon, got %d", tc.expectedDue, card.DueWithin60Days)
			}
		})
	}

	t.Run("completion rate", func(t *testing.T) {
		card := BuildTrainingCard(STP{"training": []interface{}{
			map[string]interface{}{"completed": true},
			map[string]interface{}{"completed": false},
		}}, testNow)
		if card.CompletionRatePercent != 50 {
			t.Errorf("expected 50%% completion, got %v", card.CompletionRatePercent)
		}

		empty := BuildTrainingCard(STP{}, testNow)
		if empty.CompletionRatePercent != 100 {
			t.Errorf("expected 100%% completion for empty list, got %v", empty.CompletionRatePercent)
		}
	})
}

func TestBuildAwardsCard(t *testing.T) {
	card := BuildAwardsCard(STP{"awards": []interface{}{
		map[string]interface{}{"status": "approved"},
		map[string]interface{}{"status": "pending"},
		map[string]interface{}{"status": "pending"},
	}})

	if card.TotalAwards != 3 {
		t.Errorf("expected 3 awards, got %d", card.TotalAwards)
	}
	if card.Pending != 2 {
		t.Errorf("expected 2 pending, got %d", card.Pending)
	}
	if card.Status != StatusAmber {
		t.Errorf("expected amber status, got %q", card.Status)
	}

	if got := BuildAwardsCard(STP{}).Status; got != StatusGreen {
		t.Errorf("expected green status with no awards, got %q", got)
	}
}

func TestBuildCards(t *testing.T) {
	raw := json.RawMessage(fmt.Sprintf(`{
		"rank": "SGT",
		"duty_status": "Present",
		"current_unit": "1-502 IN",
		"branch": "Army",
		"component": "Active",
		"fitness": {"last_test_date": "2026-04-01", "expiration_date": %q},
		"readiness": {"readiness_expiration": %q}
	}`, isoDaysFromNow(90), isoDaysFromNow(10)))

	cards := BuildCards(raw, testNow)

	if cards.Perstats.Rank != "SGT" {
		t.Errorf("expected rank SGT, got %q", cards.Perstats.Rank)
	}
	if cards.Perstats.Unit != "1-502 IN" {
		t.Errorf("expected unit 1-502 IN, got %q", cards.Perstats.Unit)
	}
	if cards.Fitness.TestType != "ACFT" {
		t.Errorf("expected ACFT, got %q", cards.Fitness.TestType)
	}
	if cards.Fitness.Status != StatusGreen {
		t.Errorf("expected green fitness, got %q", cards.Fitness.Status)
	}
	if cards.Readiness.Status != StatusRed {
		t.Errorf("expected red readiness, got %q", cards.Readiness.Status)
	}
}

func TestBuildCardsEmptyPayload(t *testing.T) {
	cards := BuildCards(nil, testNow)

	if cards.Fitness.Status != StatusGray {
		t.Errorf("expected gray fitness, got %q", cards.Fitness.Status)
	}
	if cards.Training.Status != StatusGreen {
		t.Errorf("expected green training, got %q", cards.Training.Status)
	}
	if cards.Readiness.Status != StatusGray {
		t.Errorf("expected gray readiness, got %q", cards.Readiness.Status)
	}
}

func intPtr(v int) *int {
	return &v
}
