// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package branch

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		branch      string
		component   string
		expectedErr error
	}{
		{name: "army active", branch: "Army", component: "Active"},
		{name: "army national guard", branch: "Army", component: "National Guard"},
		{name: "air force air national guard", branch: "Air Force", component: "Air National Guard"},
		{name: "navy reserve", branch: "Navy", component: "Reserve"},
		{name: "marine corps active", branch: "Marine Corps", component: "Active"},
		{name: "coast guard reserve", branch: "Coast Guard", component: "Reserve"},
		{name: "space force active", branch: "Space Force", component: "Active"},
		{name: "space force reserve rejected", branch: "Space Force", component: "Reserve", expectedErr: ErrInvalidCombination},
		{name: "navy national guard rejected", branch: "Navy", component: "National Guard", expectedErr: ErrInvalidCombination},
		{name: "army air national guard rejected", branch: "Army", component: "Air National Guard", expectedErr: ErrInvalidCombination},
		{name: "unknown branch", branch: "Militia", component: "Active", expectedErr: ErrUnsupportedBranch},
		{name: "empty branch", branch: "", component: "Active", expectedErr: ErrUnsupportedBranch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.branch, tc.component)

			if tc.expectedErr == nil && err != nil {
				t.Errorf("expected no error but got %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v but got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestValidComponents(t *testing.T) {
	components, err := ValidComponents("Army")
	if err != nil {
		t.Fatalf("expected no error but got %v", err)
	}
	if len(components) != 3 {
		t.Errorf("expected 3 components for Army, got %d", len(components))
	}

	if _, err := ValidComponents("Militia"); !errors.Is(err, ErrUnsupportedBranch) {
		t.Errorf("expected ErrUnsupportedBranch but got %v", err)
	}
}

func TestBranches(t *testing.T) {
	branches := Branches()

	if len(branches) != 6 {
		t.Fatalf("expected 6 branches, got %d", len(branches))
	}
	for _, b := range branches {
		if err := Validate(b, "Active"); err != nil {
			t.Errorf("branch %q does not accept the Active component: %v", b, err)
		}
	}
}
