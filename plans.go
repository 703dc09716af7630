package main

import (
	"fmt"
	"sort"
	"strings"
)

// Plan describes a UK student loan repayment plan: the annual income
// threshold above which deductions apply and the deduction percentage.
// Reference: https://www.gov.uk/repaying-your-student-loan/what-you-pay
type Plan struct {
	Name       string
	Threshold  float64 // Annual income floor (£)
	Percentage float64 // Deduction rate on income over the threshold
}

// Plans holds the five statutory repayment plans, keyed by name.
// Thresholds are the 2023/24 figures.
var Plans = map[string]Plan{
	"Plan 1":       {Name: "Plan 1", Threshold: 22015, Percentage: 0.09},
	"Plan 2":       {Name: "Plan 2", Threshold: 27295, Percentage: 0.09},
	"Plan 4":       {Name: "Plan 4", Threshold: 27660, Percentage: 0.09},
	"Plan 5":       {Name: "Plan 5", Threshold: 25000, Percentage: 0.09},
	"Postgraduate": {Name: "Postgraduate", Threshold: 21000, Percentage: 0.06},
}

// PlanNames returns the valid plan names in a stable order.
func PlanNames() []string {
	names := make([]string, 0, len(Plans))
	for name := range Plans {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InvalidPlanError is returned when a repayment plan name does not match
// any of the statutory plans.
type InvalidPlanError struct {
	Name string
}

func (e *InvalidPlanError) Error() string {
	return fmt.Sprintf("invalid repayment plan %q: must be one of %s",
		e.Name, strings.Join(PlanNames(), ", "))
}

// LookupPlan resolves a plan name to its Plan record.
func LookupPlan(name string) (Plan, error) {
	plan, ok := Plans[name]
	if !ok {
		return Plan{}, &InvalidPlanError{Name: name}
	}
	return plan, nil
}

// NIRules holds the National Insurance policy constants for one tax year.
// The basic rate and band boundaries are set by HMRC and change between
// policy years, so they are data rather than literals in the calculation.
type NIRules struct {
	PolicyYear     string  `yaml:"policy_year" json:"policy_year"`
	BasicRate      float64 `yaml:"basic_rate" json:"basic_rate"`
	LowerThreshold float64 `yaml:"lower_threshold" json:"lower_threshold"`
	UpperThreshold float64 `yaml:"upper_threshold" json:"upper_threshold"`
	ReducedRate    float64 `yaml:"reduced_rate" json:"reduced_rate"`
}

// The two most recent Class 1 employee NI rule sets. Both are valid
// historical rule sets; which applies depends on the tax year simulated.
var (
	// NIRules2022 covers the 12% main rate in force before January 2024.
	NIRules2022 = NIRules{
		PolicyYear:     "2022/23",
		BasicRate:      0.12,
		LowerThreshold: 12576.12,
		UpperThreshold: 50268,
		ReducedRate:    0.02,
	}
	// NIRules2024 covers the 8% main rate from April 2024.
	NIRules2024 = NIRules{
		PolicyYear:     "2024/25",
		BasicRate:      0.08,
		LowerThreshold: 12576,
		UpperThreshold: 50268,
		ReducedRate:    0.02,
	}
)

// NIRulesForPolicyYear returns the rule set for a policy year label,
// defaulting to the most recent rules when the label is empty or unknown.
func NIRulesForPolicyYear(policyYear string) NIRules {
	switch policyYear {
	case NIRules2022.PolicyYear:
		return NIRules2022
	case NIRules2024.PolicyYear:
		return NIRules2024
	default:
		return NIRules2024
	}
}
