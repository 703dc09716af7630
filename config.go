package main

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// LoanConfig describes the loan being simulated.
type LoanConfig struct {
	Plan           string  `yaml:"plan" json:"plan"`                       // Repayment plan name, e.g. "Plan 2"
	GraduationYear int     `yaml:"graduation_year" json:"graduation_year"` // Sets the statutory write-off date
	Balance        float64 `yaml:"balance" json:"balance"`                 // Outstanding principal (£)
	InterestRate   float64 `yaml:"interest_rate" json:"interest_rate"`     // Annual interest rate (e.g., 0.071 = 7.1%)
}

// SalaryConfig describes the salary trajectory.
type SalaryConfig struct {
	Initial   float64 `yaml:"initial" json:"initial"`     // Annual gross salary (£)
	Growth    float64 `yaml:"growth" json:"growth"`       // Annual growth rate, applied each December
	Sacrifice float64 `yaml:"sacrifice" json:"sacrifice"` // Fraction diverted before tax (e.g., pension)
}

// RepaymentConfig describes voluntary repayments on top of the salary
// deduction. ExtraByMonth (month index -> amount) takes precedence over
// ExtraMonthly when present.
type RepaymentConfig struct {
	Instant      float64         `yaml:"instant" json:"instant"`             // Lump sum repaid immediately (£)
	ExtraMonthly float64         `yaml:"extra_monthly" json:"extra_monthly"` // Constant extra repayment (£/month)
	ExtraByMonth map[int]float64 `yaml:"extra_by_month" json:"extra_by_month"`
	// TargetPayoffYear, when set, asks the solver for the constant extra
	// repayment needed to clear the loan by April of that year.
	TargetPayoffYear int `yaml:"target_payoff_year" json:"target_payoff_year"`
}

// ReportConfig holds reporting-only settings. The engine itself never
// discounts; NPV applies to summaries after the fact.
type ReportConfig struct {
	DiscountRate float64 `yaml:"discount_rate" json:"discount_rate"` // Annual NPV discount rate (default 0.05)
}

// GetDiscountRate returns the discount rate, using the default if not set.
func (rc *ReportConfig) GetDiscountRate() float64 {
	if rc.DiscountRate <= 0 {
		return 0.05
	}
	return rc.DiscountRate
}

// SensitivityConfig holds the rate ranges for sensitivity analysis.
type SensitivityConfig struct {
	InterestRateMin float64 `yaml:"interest_rate_min" json:"interest_rate_min"`
	InterestRateMax float64 `yaml:"interest_rate_max" json:"interest_rate_max"`
	SalaryGrowthMin float64 `yaml:"salary_growth_min" json:"salary_growth_min"`
	SalaryGrowthMax float64 `yaml:"salary_growth_max" json:"salary_growth_max"`
	StepSize        float64 `yaml:"step_size" json:"step_size"` // Increment between rates (e.g., 0.01 = 1%)
}

// TaxConfig holds UK income tax configuration including personal
// allowance tapering. These values are set by HMRC and may change with
// each tax year.
type TaxConfig struct {
	// Personal Allowance is the amount you can earn tax-free (2024/25: £12,570)
	PersonalAllowance float64 `yaml:"personal_allowance" json:"personal_allowance"`
	// TaperingThreshold is the income level above which personal allowance starts to reduce (2024/25: £100,000)
	TaperingThreshold float64 `yaml:"tapering_threshold" json:"tapering_threshold"`
	// TaperingRate is how much allowance is lost per £1 over threshold (2024/25: £0.50)
	TaperingRate float64 `yaml:"tapering_rate" json:"tapering_rate"`
	// Band rates and limits (2024/25: 20% to £50,270, 40% to £125,140, 45% above)
	BasicRate       float64 `yaml:"basic_rate" json:"basic_rate"`
	BasicRateLimit  float64 `yaml:"basic_rate_limit" json:"basic_rate_limit"`
	HigherRate      float64 `yaml:"higher_rate" json:"higher_rate"`
	HigherRateLimit float64 `yaml:"higher_rate_limit" json:"higher_rate_limit"`
	AdditionalRate  float64 `yaml:"additional_rate" json:"additional_rate"`
}

// GetPersonalAllowance returns the personal allowance, using default if not set
func (tc *TaxConfig) GetPersonalAllowance() float64 {
	if tc.PersonalAllowance <= 0 {
		return 12570.0 // 2024/25 default
	}
	return tc.PersonalAllowance
}

// GetTaperingThreshold returns the tapering threshold, using default if not set
func (tc *TaxConfig) GetTaperingThreshold() float64 {
	if tc.TaperingThreshold <= 0 {
		return 100000.0 // 2024/25 default
	}
	return tc.TaperingThreshold
}

// GetTaperingRate returns the tapering rate, using default if not set
func (tc *TaxConfig) GetTaperingRate() float64 {
	if tc.TaperingRate <= 0 {
		return 0.5 // 2024/25 default: £1 lost per £2 over threshold
	}
	return tc.TaperingRate
}

// GetBasicRate returns the basic rate, using default if not set
func (tc *TaxConfig) GetBasicRate() float64 {
	if tc.BasicRate <= 0 {
		return 0.20
	}
	return tc.BasicRate
}

// GetBasicRateLimit returns the basic rate limit, using default if not set
func (tc *TaxConfig) GetBasicRateLimit() float64 {
	if tc.BasicRateLimit <= 0 {
		return 50270.0
	}
	return tc.BasicRateLimit
}

// GetHigherRate returns the higher rate, using default if not set
func (tc *TaxConfig) GetHigherRate() float64 {
	if tc.HigherRate <= 0 {
		return 0.40
	}
	return tc.HigherRate
}

// GetHigherRateLimit returns the higher rate limit, using default if not set
func (tc *TaxConfig) GetHigherRateLimit() float64 {
	if tc.HigherRateLimit <= 0 {
		return 125140.0
	}
	return tc.HigherRateLimit
}

// GetAdditionalRate returns the additional rate, using default if not set
func (tc *TaxConfig) GetAdditionalRate() float64 {
	if tc.AdditionalRate <= 0 {
		return 0.45
	}
	return tc.AdditionalRate
}

// GetAllowanceRemovedThreshold returns the income at which personal
// allowance is fully removed, derived from the tapering settings.
func (tc *TaxConfig) GetAllowanceRemovedThreshold() float64 {
	return tc.GetTaperingThreshold() + tc.GetPersonalAllowance()/tc.GetTaperingRate()
}

// DefaultTaxConfig returns the default UK tax configuration for 2024/25
func DefaultTaxConfig() TaxConfig {
	return TaxConfig{
		PersonalAllowance: 12570.0,
		TaperingThreshold: 100000.0,
		TaperingRate:      0.5,
		BasicRate:         0.20,
		BasicRateLimit:    50270.0,
		HigherRate:        0.40,
		HigherRateLimit:   125140.0,
		AdditionalRate:    0.45,
	}
}

// NIConfig selects the National Insurance policy-year rule set.
type NIConfig struct {
	PolicyYear string `yaml:"policy_year" json:"policy_year"` // "2022/23" or "2024/25"
}

// Rules returns the selected NI rule set, defaulting to 2024/25.
func (nc *NIConfig) Rules() NIRules {
	return NIRulesForPolicyYear(nc.PolicyYear)
}

// Config holds the complete configuration
type Config struct {
	Loan        LoanConfig        `yaml:"loan" json:"loan"`
	Salary      SalaryConfig      `yaml:"salary" json:"salary"`
	Repayments  RepaymentConfig   `yaml:"repayments" json:"repayments"`
	Report      ReportConfig      `yaml:"report" json:"report"`
	Sensitivity SensitivityConfig `yaml:"sensitivity" json:"sensitivity"`
	Tax         TaxConfig         `yaml:"tax" json:"tax"`
	NI          NIConfig          `yaml:"national_insurance" json:"national_insurance"`
}

// Params assembles the fully-resolved simulation parameters. The engine
// accepts only resolved values; this is the single place configuration is
// translated into them.
func (c *Config) Params(startDate time.Time) SimulationParams {
	return SimulationParams{
		InitialSalary:    c.Salary.Initial,
		SalaryGrowth:     c.Salary.Growth,
		Loan:             c.Loan.Balance,
		GraduationYear:   c.Loan.GraduationYear,
		InterestRate:     c.Loan.InterestRate,
		SalarySacrifice:  c.Salary.Sacrifice,
		Plan:             c.Loan.Plan,
		InstantRepayment: c.Repayments.Instant,
		Extra: ExtraRepayments{
			Monthly: c.Repayments.ExtraMonthly,
			ByMonth: c.Repayments.ExtraByMonth,
		},
		StartDate: startDate,
		Tax:       c.Tax,
		NI:        c.NI.Rules(),
	}
}

// LoadConfig loads configuration from a YAML file and applies any
// environment-variable overrides on top.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal([]byte(preprocessPercentages(string(data))), &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	config.ApplyEnvOverrides()
	return &config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	header := []byte(`# Student Loan Repayment Simulator Configuration
#
# VALUE FORMATS
#   Percentages: 0.071 = 7.1% (decimals and "7.1%" are both accepted)
#   Money: values are in GBP (e.g., 45000 = £45k)
#
# RUN COMMANDS
#   ./personal-finance-uk                  Summary comparison (passive vs active)
#   ./personal-finance-uk -details         Year-by-year schedule tables
#   ./personal-finance-uk -csv out.csv     Export the monthly comparison as CSV
#   ./personal-finance-uk -pdf out.pdf     Generate a PDF summary report
#   ./personal-finance-uk -sensitivity     Payoff grid across interest/growth rates
#   ./personal-finance-uk -target 2040     Extra repayment needed to clear by April 2040
#
# Environment variables (PLAN, LOAN, INTEREST_RATE, INITIAL_SALARY,
# SALARY_GROWTH, SALARY_SACRIFICE, GRADUATION_YEAR, INSTANT_REPAYMENT,
# EXTRA_REPAYMENTS, INFLATION_RATE) override the values in this file.

`)
	return os.WriteFile(filename, append(header, data...), 0644)
}

// LoadDefaultConfig loads the default configuration embedded in the
// binary. It handles percentage format (e.g., "9%" -> 0.09).
func LoadDefaultConfig() (*Config, error) {
	content := preprocessPercentages(defaultConfigYAML)

	var config Config
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// preprocessPercentages converts percentage values like "5%" to decimal "0.05"
func preprocessPercentages(content string) string {
	re := regexp.MustCompile(`(:\s*)(\d+\.?\d*)%`)
	return re.ReplaceAllStringFunc(content, func(match string) string {
		parts := re.FindStringSubmatch(match)
		if len(parts) >= 3 {
			num, err := strconv.ParseFloat(parts[2], 64)
			if err == nil {
				return parts[1] + strconv.FormatFloat(num/100.0, 'f', -1, 64)
			}
		}
		return match
	})
}

// ApplyEnvOverrides overlays environment variables onto the
// configuration, for running scripted scenarios without editing the
// file. Unset or malformed values leave the configured value untouched.
func (c *Config) ApplyEnvOverrides() {
	if plan := os.Getenv("PLAN"); plan != "" {
		c.Loan.Plan = plan
	}
	overrideInt("GRADUATION_YEAR", &c.Loan.GraduationYear)
	overrideFloat("LOAN", &c.Loan.Balance)
	overrideFloat("INTEREST_RATE", &c.Loan.InterestRate)
	overrideFloat("INITIAL_SALARY", &c.Salary.Initial)
	overrideFloat("SALARY_GROWTH", &c.Salary.Growth)
	overrideFloat("SALARY_SACRIFICE", &c.Salary.Sacrifice)
	overrideFloat("INSTANT_REPAYMENT", &c.Repayments.Instant)
	overrideFloat("EXTRA_REPAYMENTS", &c.Repayments.ExtraMonthly)
	overrideFloat("INFLATION_RATE", &c.Report.DiscountRate)
}

func overrideFloat(name string, dst *float64) {
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			*dst = v
		}
	}
}

func overrideInt(name string, dst *int) {
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			*dst = v
		}
	}
}
