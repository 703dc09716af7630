package main

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

// Repayment plan table tests.
// Reference: https://www.gov.uk/repaying-your-student-loan/what-you-pay

func TestPlans_ThresholdsAndRates(t *testing.T) {
	tests := []struct {
		name       string
		threshold  float64
		percentage float64
	}{
		{"Plan 1", 22015, 0.09},
		{"Plan 2", 27295, 0.09},
		{"Plan 4", 27660, 0.09},
		{"Plan 5", 25000, 0.09},
		{"Postgraduate", 21000, 0.06},
	}

	if len(Plans) != len(tests) {
		t.Fatalf("expected %d plans, got %d", len(tests), len(Plans))
	}
	for _, tc := range tests {
		plan, ok := Plans[tc.name]
		if !ok {
			t.Errorf("missing plan %q", tc.name)
			continue
		}
		if plan.Threshold != tc.threshold {
			t.Errorf("%s: expected threshold £%.0f, got £%.0f", tc.name, tc.threshold, plan.Threshold)
		}
		if plan.Percentage != tc.percentage {
			t.Errorf("%s: expected rate %.2f, got %.2f", tc.name, tc.percentage, plan.Percentage)
		}
		if plan.Name != tc.name {
			t.Errorf("%s: plan carries name %q", tc.name, plan.Name)
		}
	}
}

func TestLookupPlan_Valid(t *testing.T) {
	plan, err := LookupPlan("Plan 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Threshold != 27295 {
		t.Errorf("expected Plan 2 threshold £27,295, got £%.0f", plan.Threshold)
	}
}

func TestLookupPlan_Invalid(t *testing.T) {
	_, err := LookupPlan("Plan 3")
	if err == nil {
		t.Fatal("expected error for unknown plan")
	}

	var invalidErr *InvalidPlanError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected *InvalidPlanError, got %T", err)
	}
	if invalidErr.Name != "Plan 3" {
		t.Errorf("error should carry the offending name, got %q", invalidErr.Name)
	}
	// The message lists the valid plan names to help config authors.
	for name := range Plans {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error message should mention %q: %s", name, err.Error())
		}
	}
}

func TestPlanNames_Sorted(t *testing.T) {
	names := PlanNames()
	if len(names) != len(Plans) {
		t.Fatalf("expected %d names, got %d", len(Plans), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("plan names should be sorted: %v", names)
	}
}

func TestNIRulesForPolicyYear(t *testing.T) {
	if got := NIRulesForPolicyYear("2022/23"); got != NIRules2022 {
		t.Errorf("2022/23 should select the 12%% rule set, got %+v", got)
	}
	if got := NIRulesForPolicyYear("2024/25"); got != NIRules2024 {
		t.Errorf("2024/25 should select the 8%% rule set, got %+v", got)
	}
	// Unrecognized years fall back to the current rules.
	if got := NIRulesForPolicyYear("1999/00"); got != NIRules2024 {
		t.Errorf("unknown policy year should default to current rules, got %+v", got)
	}
}
