// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package dashboard builds read-only presentation cards over STP data.
package dashboard

import (
	"encoding/json"
	"strings"
	"time"
)

const (
	StatusGreen = "green"
	StatusAmber = "amber"
	StatusRed   = "red"
	StatusGray  = "gray"
)

// STP is the decoded opaque payload of a service member record.
type STP map[string]interface{}

// DecodeSTP decodes a raw payload, tolerating empty input.
func DecodeSTP(raw json.RawMessage) STP {
	if len(raw) == 0 {
		return STP{}
	}
	var stp STP
	if err := json.Unmarshal(raw, &stp); err != nil {
		return STP{}
	}
	return stp
}

func (s STP) str(key string) string {
	v, _ := s[key].(string)
	return v
}

func (s STP) sub(key string) STP {
	v, _ := s[key].(map[string]interface{})
	return STP(v)
}

func (s STP) list(key string) []map[string]interface{} {
	raw, _ := s[key].([]interface{})
	out := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// daysRemaining parses an ISO timestamp and returns the days left until it,
// or nil when missing or unparsable.
func daysRemaining(dateStr string, now time.Time) *int {
	if dateStr == "" {
		return nil
	}

	dt, err := time.Parse(time.RFC3339, strings.Replace(dateStr, "Z", "+00:00", 1))
	if err != nil {
		// Accept bare dates too.
		dt, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil
		}
	}

	days := int(dt.Sub(now).Hours() / 24)
	return &days
}

// statusColor is the standard red/amber/green expiry logic.
func statusColor(days *int) string {
	switch {
	case days == nil:
		return StatusGray
	case *days < 30:
		return StatusRed
	case *days <= 60:
		return StatusAmber
	default:
		return StatusGreen
	}
}

var fitnessTestLabels = map[string]string{
	"Army":         "ACFT",
	"Air Force":    "PFA",
	"Navy":         "PRT",
	"Marine Corps": "PFT/CFT",
	"Coast Guard":  "PT",
	"Space Force":  "PFA",
}

type PerstatsCard struct {
	Rank       string `json:"rank"`
	DutyStatus string `json:"duty_status"`
	Unit       string `json:"unit"`
	Branch     string `json:"branch"`
	Component  string `json:"component"`
}

func BuildPerstatsCard(stp STP) PerstatsCard {
	return PerstatsCard{
		Rank:       stp.str("rank"),
		DutyStatus: stp.str("duty_status"),
		Unit:       stp.str("current_unit"),
		Branch:     stp.str("branch"),
		Component:  stp.str("component"),
	}
}

type FitnessCard struct {
	TestType       string `json:"test_type"`
	LastTestDate   string `json:"last_test_date"`
	ExpirationDate string `json:"expiration_date"`
	DaysRemaining  *int   `json:"days_remaining"`
	Status         string `json:"status"`
}

func BuildFitnessCard(stp STP, now time.Time) FitnessCard {
	label, ok := fitnessTestLabels[stp.str("branch")]
	if !ok {
		label = "Fitness"
	}

	fitness := stp.sub("fitness")
	expiration := fitness.str("expiration_date")
	days := daysRemaining(expiration, now)

	return FitnessCard{
		TestType:       label,
		LastTestDate:   fitness.str("last_test_date"),
		ExpirationDate: expiration,
		DaysRemaining:  days,
		Status:         statusColor(days),
	}
}

type TrainingCard struct {
	TotalTrainingItems    int     `json:"total_training_items"`
	Completed             int     `json:"completed"`
	Overdue               int     `json:"overdue"`
	DueWithin60Days       int     `json:"due_within_60_days"`
	CompletionRatePercent float64 `json:"completion_rate_percent"`
	Status                string  `json:"status"`
}

func BuildTrainingCard(stp STP, now time.Time) TrainingCard {
	training := stp.list("training")

	var overdue, upcoming, completed int
	for _, item := range training {
		if done, _ := item["completed"].(bool); done {
			completed++
		}

		due, _ := item["due_date"].(string)
		if days := daysRemaining(due, now); days != nil {
			if *days < 0 {
				overdue++
			} else if *days <= 60 {
				upcoming++
			}
		}
	}

	total := len(training)
	rate := 100.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}

	status := StatusGreen
	if overdue > 0 {
		status = StatusRed
	} else if upcoming > 0 {
		status = StatusAmber
	}

	return TrainingCard{
		TotalTrainingItems:    total,
		Completed:             completed,
		Overdue:               overdue,
		DueWithin60Days:       upcoming,
		CompletionRatePercent: rate,
		Status:                status,
	}
}

type AwardsCard struct {
	TotalAwards int    `json:"total_awards"`
	Pending     int    `json:"pending"`
	Status      string `json:"status"`
}

func BuildAwardsCard(stp STP) AwardsCard {
	awards := stp.list("awards")

	var pending int
	for _, a := range awards {
		if status, _ := a["status"].(string); status == "pending" {
			pending++
		}
	}

	status := StatusGreen
	if pending > 0 {
		status = StatusAmber
	}

	return AwardsCard{
		TotalAwards: len(awards),
		Pending:     pending,
		Status:      status,
	}
}

type ReadinessCard struct {
	ReadinessExpiration string `json:"readiness_expiration"`
	DaysRemaining       *int   `json:"days_remaining"`
	Status              string `json:"status"`
}

func BuildReadinessCard(stp STP, now time.Time) ReadinessCard {
	expiration := stp.sub("readiness").str("readiness_expiration")
	days := daysRemaining(expiration, now)

	return ReadinessCard{
		ReadinessExpiration: expiration,
		DaysRemaining:       days,
		Status:              statusColor(days),
	}
}

type Cards struct {
	Perstats  PerstatsCard  `json:"perstats"`
	Fitness   FitnessCard   `json:"fitness"`
	Training  TrainingCard  `json:"training"`
	Awards    AwardsCard    `json:"awards"`
	Readiness ReadinessCard `json:"readiness"`
}

// BuildCards assembles the per-record dashboard.
func BuildCards(raw json.RawMessage, now time.Time) Cards {
	stp := DecodeSTP(raw)
	return Cards{
		Perstats:  BuildPerstatsCard(stp),
		Fitness:   BuildFitnessCard(stp, now),
		Training:  BuildTrainingCard(stp, now),
		Awards:    BuildAwardsCard(stp),
		Readiness: BuildReadinessCard(stp, now),
	}
}
