package main

import (
	"math"
)

// Note: income tax thresholds are configurable via TaxConfig in config.go.
// Default values for 2024/25:
// - PersonalAllowance: £12,570
// - TaperingThreshold: £100,000
// - TaperingRate: 0.5 (£1 lost per £2 over threshold)
// - Basic 20% to £50,270, Higher 40% to £125,140, Additional 45% above

// Tax calculates the tax on the portion of income falling within the
// bracket [lower, upper]. Negative or out-of-bracket income clamps to
// zero tax. Pass math.Inf(1) as upper for an open-ended bracket.
func Tax(income, rate, lower, upper float64) float64 {
	return math.Max(0, math.Min(upper-lower, income-lower)) * rate
}

// IncomeTaxWithConfig calculates UK income tax on an annual gross income
// using the provided tax configuration.
//
// The personal allowance is tapered away above the tapering threshold,
// then three brackets apply: basic between the (reduced) allowance and
// the basic rate limit, higher between the basic and higher rate limits,
// and additional above the higher rate limit.
func IncomeTaxWithConfig(grossIncome float64, taxConfig TaxConfig) float64 {
	reduction := taxConfig.GetTaperingRate() * math.Max(0, grossIncome-taxConfig.GetTaperingThreshold())
	allowance := math.Max(0, taxConfig.GetPersonalAllowance()-reduction)

	basic := Tax(grossIncome, taxConfig.GetBasicRate(), allowance, taxConfig.GetBasicRateLimit())
	higher := Tax(grossIncome, taxConfig.GetHigherRate(), taxConfig.GetBasicRateLimit(), taxConfig.GetHigherRateLimit())
	additional := Tax(grossIncome, taxConfig.GetAdditionalRate(), taxConfig.GetHigherRateLimit(), math.Inf(1))
	return basic + higher + additional
}

// IncomeTax is a convenience wrapper using the default 2024/25 tax config.
func IncomeTax(grossIncome float64) float64 {
	return IncomeTaxWithConfig(grossIncome, DefaultTaxConfig())
}

// NationalInsuranceWithRules calculates Class 1 employee National
// Insurance under the given policy-year rules: the basic rate between the
// lower and upper thresholds, the reduced rate above the upper threshold.
func NationalInsuranceWithRules(grossIncome float64, rules NIRules) float64 {
	basic := Tax(grossIncome, rules.BasicRate, rules.LowerThreshold, rules.UpperThreshold)
	reduced := Tax(grossIncome, rules.ReducedRate, rules.UpperThreshold, math.Inf(1))
	return basic + reduced
}

// NationalInsurance is a convenience wrapper using the 2024/25 rules.
func NationalInsurance(grossIncome float64) float64 {
	return NationalInsuranceWithRules(grossIncome, NIRules2024)
}

// StudentLoanRepayment calculates the annual salary-based student loan
// deduction: the plan percentage on income over the plan threshold.
func StudentLoanRepayment(grossIncome float64, plan Plan) float64 {
	return Tax(grossIncome, plan.Percentage, plan.Threshold, math.Inf(1))
}

// Monthly applies an annual-basis rule to a monthly income figure by
// annualizing the income (×12) and de-annualizing the result (÷12).
//
// This assumes a flat annualized income, which is how payroll deductions
// approximate annual liabilities month to month. The approximation is
// intentional and must not be replaced with per-month brackets.
func Monthly(rule func(float64) float64, monthlyIncome float64) float64 {
	return rule(monthlyIncome*12) / 12
}

// NetPresentValue discounts a cash flow series to present value terms.
// The entry at index i is divided by (1+discountRate)^i, with the index
// taken as the number of periods from now.
func NetPresentValue(cashFlow []float64, discountRate float64) []float64 {
	discounted := make([]float64, len(cashFlow))
	for i, value := range cashFlow {
		discounted[i] = value / math.Pow(1+discountRate, float64(i))
	}
	return discounted
}
