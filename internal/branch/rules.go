// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package branch holds the fixed branch/component compatibility table.
package branch

import (
	"errors"
)

var (
	ErrUnsupportedBranch  = errors.New("unsupported branch")
	ErrInvalidCombination = errors.New("invalid branch/component combination")
)

type Rule struct {
	Branch          string
	ValidComponents []string
	// GuardLabel is the branch-specific guard component name, if any.
	GuardLabel string
}

var rules = map[string]Rule{
	"Army":         {Branch: "Army", ValidComponents: []string{"Active", "Reserve", "National Guard"}, GuardLabel: "National Guard"},
	"Air Force":    {Branch: "Air Force", ValidComponents: []string{"Active", "Reserve", "Air National Guard"}, GuardLabel: "Air National Guard"},
	"Navy":         {Branch: "Navy", ValidComponents: []string{"Active", "Reserve"}},
	"Marine Corps": {Branch: "Marine Corps", ValidComponents: []string{"Active", "Reserve"}},
	"Coast Guard":  {Branch: "Coast Guard", ValidComponents: []string{"Active", "Reserve"}},
	"Space Force":  {Branch: "Space Force", ValidComponents: []string{"Active"}},
}

// Branches lists the supported branches.
func Branches() []string {
	return []string{"Army", "Air Force", "Navy", "Marine Corps", "Coast Guard", "Space Force"}
}

// ValidComponents returns the component names valid for a branch.
func ValidComponents(branch string) ([]string, error) {
	r, ok := rules[branch]
	if !ok {
		return nil, ErrUnsupportedBranch
	}
	out := make([]string, len(r.ValidComponents))
	copy(out, r.ValidComponents)
	return out, nil
}

// Validate checks a branch/component pair against the compatibility table.
func Validate(branch, component string) error {
	r, ok := rules[branch]
	if !ok {
		return ErrUnsupportedBranch
	}
	for _, c := range r.ValidComponents {
		if c == component {
			return nil
		}
	}
	return ErrInvalidCombination
}
