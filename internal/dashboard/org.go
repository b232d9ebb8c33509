// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"encoding/json"
	"time"
)

type RAGCounts struct {
	Green int `json:"green"`
	Amber int `json:"amber"`
	Red   int `json:"red"`
	Gray  int `json:"gray"`
}

func (c *RAGCounts) add(status string) {
	switch status {
	case StatusGreen:
		c.Green++
	case StatusAmber:
		c.Amber++
	case StatusRed:
		c.Red++
	default:
		c.Gray++
	}
}

func (c RAGCounts) overall() string {
	if c.Red > 0 {
		return StatusRed
	}
	if c.Amber > 0 {
		return StatusAmber
	}
	return StatusGreen
}

type Summary struct {
	Counts        RAGCounts `json:"counts"`
	OverallStatus string    `json:"overall_status"`
}

func newSummary(c RAGCounts) Summary {
	return Summary{Counts: c, OverallStatus: c.overall()}
}

type OrgDashboard struct {
	TotalPersonnel   int     `json:"total_personnel"`
	FitnessSummary   Summary `json:"fitness_summary"`
	TrainingSummary  Summary `json:"training_summary"`
	AwardsSummary    Summary `json:"awards_summary"`
	ReadinessSummary Summary `json:"readiness_summary"`
}

// BuildOrgDashboard aggregates red/amber/green state across an
// organization's personnel records.
func BuildOrgDashboard(payloads []json.RawMessage, now time.Time) OrgDashboard {
	var fitness, training, awards, readiness RAGCounts

	for _, raw := range payloads {
		stp := DecodeSTP(raw)
		fitness.add(BuildFitnessCard(stp, now).Status)
		training.add(BuildTrainingCard(stp, now).Status)
		awards.add(BuildAwardsCard(stp).Status)
		readiness.add(BuildReadinessCard(stp, now).Status)
	}

	return OrgDashboard{
		TotalPersonnel:   len(payloads),
		FitnessSummary:   newSummary(fitness),
		TrainingSummary:  newSummary(training),
		AwardsSummary:    newSummary(awards),
		ReadinessSummary: newSummary(readiness),
	}
}
