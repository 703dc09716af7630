package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// =============================================================================
// Default Configuration Tests
// =============================================================================

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("failed to load default config: %v", err)
	}

	if config.Loan.Plan != "Plan 2" {
		t.Errorf("expected default plan 'Plan 2', got %q", config.Loan.Plan)
	}
	if config.Loan.Balance != 45000 {
		t.Errorf("expected default balance £45,000, got £%.0f", config.Loan.Balance)
	}
	// Percentages in the embedded file round-trip through the
	// preprocessor: "7.1%" becomes 0.071.
	assertMoneyEquals(t, 0.071, config.Loan.InterestRate, "interest rate")
	assertMoneyEquals(t, 0.08, config.Salary.Growth, "salary growth")
	assertMoneyEquals(t, 0.05, config.Report.GetDiscountRate(), "discount rate")

	// The default plan must resolve against the plan table.
	if _, err := LookupPlan(config.Loan.Plan); err != nil {
		t.Errorf("default plan does not resolve: %v", err)
	}
	if got := config.NI.Rules(); got != NIRules2024 {
		t.Errorf("default NI rules should be 2024/25, got %+v", got)
	}
}

func TestPreprocessPercentages(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"rate: 5%", "rate: 0.05"},
		{"rate: 7.1%", "rate: 0.071"},
		{"rate: 0.05", "rate: 0.05"},
		{"growth: 100%", "growth: 1"},
		{"note: fully 5% grown", "note: fully 5% grown"}, // only value positions
	}

	for _, tc := range tests {
		if got := preprocessPercentages(tc.input); got != tc.expected {
			t.Errorf("preprocessPercentages(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

// =============================================================================
// File Round-trip Tests
// =============================================================================

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `loan:
  plan: Plan 5
  graduation_year: 2026
  balance: 52000
  interest_rate: 6.25%
salary:
  initial: 32000
  growth: 3%
repayments:
  instant: 1000
  extra_by_month:
    0: 250
    12: 250
national_insurance:
  policy_year: 2022/23
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Loan.Plan != "Plan 5" || config.Loan.GraduationYear != 2026 {
		t.Errorf("loan section mismatch: %+v", config.Loan)
	}
	assertMoneyEquals(t, 0.0625, config.Loan.InterestRate, "percentage interest rate")
	assertMoneyEquals(t, 0.03, config.Salary.Growth, "percentage growth")
	if got := config.Repayments.ExtraByMonth[12]; got != 250 {
		t.Errorf("sparse schedule entry lost: %v", config.Repayments.ExtraByMonth)
	}
	if config.NI.Rules() != NIRules2022 {
		t.Errorf("policy year 2022/23 should select the 12%% rules")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	original, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	original.Loan.Balance = 31337

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Loan.Balance != 31337 {
		t.Errorf("balance lost in round-trip: £%.0f", reloaded.Loan.Balance)
	}
	if reloaded.Loan.Plan != original.Loan.Plan {
		t.Errorf("plan lost in round-trip: %q", reloaded.Loan.Plan)
	}
}

// =============================================================================
// Environment Override Tests
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PLAN", "Plan 4")
	t.Setenv("LOAN", "60000")
	t.Setenv("INTEREST_RATE", "0.043")
	t.Setenv("GRADUATION_YEAR", "2022")
	t.Setenv("EXTRA_REPAYMENTS", "150")
	t.Setenv("SALARY_GROWTH", "not-a-number") // malformed: keep configured value

	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	before := config.Salary.Growth
	config.ApplyEnvOverrides()

	if config.Loan.Plan != "Plan 4" {
		t.Errorf("PLAN override ignored: %q", config.Loan.Plan)
	}
	if config.Loan.Balance != 60000 || config.Loan.InterestRate != 0.043 {
		t.Errorf("loan overrides ignored: %+v", config.Loan)
	}
	if config.Loan.GraduationYear != 2022 {
		t.Errorf("GRADUATION_YEAR override ignored: %d", config.Loan.GraduationYear)
	}
	if config.Repayments.ExtraMonthly != 150 {
		t.Errorf("EXTRA_REPAYMENTS override ignored: %.0f", config.Repayments.ExtraMonthly)
	}
	if config.Salary.Growth != before {
		t.Errorf("malformed SALARY_GROWTH should be ignored, got %v", config.Salary.Growth)
	}
}

// =============================================================================
// Parameter Assembly Tests
// =============================================================================

func TestConfigParams(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}
	config.Repayments.Instant = 2000
	config.Repayments.ExtraMonthly = 100

	start := time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)
	params := config.Params(start)

	if params.Plan != config.Loan.Plan || params.Loan != config.Loan.Balance {
		t.Errorf("loan fields not carried over: %+v", params)
	}
	if params.InitialSalary != config.Salary.Initial || params.SalaryGrowth != config.Salary.Growth {
		t.Errorf("salary fields not carried over: %+v", params)
	}
	if params.InstantRepayment != 2000 || params.Extra.Monthly != 100 {
		t.Errorf("repayment fields not carried over: %+v", params)
	}
	if !params.StartDate.Equal(start) {
		t.Errorf("start date not carried over: %v", params.StartDate)
	}
	if params.NI != NIRules2024 {
		t.Errorf("NI rules not resolved: %+v", params.NI)
	}

	// The assembled parameters must simulate cleanly.
	if _, err := SimulateRepayment(params); err != nil {
		t.Errorf("default config should simulate: %v", err)
	}
}

// =============================================================================
// Getter Default Tests
// =============================================================================

func TestTaxConfigGetters_ZeroValueDefaults(t *testing.T) {
	var tc TaxConfig
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"personal allowance", tc.GetPersonalAllowance(), 12570},
		{"tapering threshold", tc.GetTaperingThreshold(), 100000},
		{"tapering rate", tc.GetTaperingRate(), 0.5},
		{"basic rate", tc.GetBasicRate(), 0.20},
		{"basic rate limit", tc.GetBasicRateLimit(), 50270},
		{"higher rate", tc.GetHigherRate(), 0.40},
		{"higher rate limit", tc.GetHigherRateLimit(), 125140},
		{"additional rate", tc.GetAdditionalRate(), 0.45},
		{"allowance removed", tc.GetAllowanceRemovedThreshold(), 125140},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, tt.got)
		}
	}

	// Explicit values win over defaults.
	custom := TaxConfig{PersonalAllowance: 15000}
	if custom.GetPersonalAllowance() != 15000 {
		t.Errorf("explicit allowance ignored: %v", custom.GetPersonalAllowance())
	}
}
