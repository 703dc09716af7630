package main

import (
	"math"
	"time"
)

// endOfMonth returns the last day of t's calendar month.
func endOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

// monthGrid returns the month-end dates between start and end inclusive.
func monthGrid(start, end time.Time) []time.Time {
	var months []time.Time
	for m := endOfMonth(start); !m.After(end); m = endOfMonth(m.AddDate(0, 0, 1)) {
		months = append(months, m)
	}
	return months
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// monthlyInterest accrues one month of interest on the balance using the
// daily-equivalent compounding rate: (1+annual)^(days in month / days in
// year) - 1, with the actual month length and a 365/366 day year.
func monthlyInterest(balance, annualRate float64, period time.Time) float64 {
	daysInMonth := float64(endOfMonth(period).Day())
	daysInYear := 365.0
	if isLeapYear(period.Year()) {
		daysInYear = 366
	}
	monthlyRate := math.Pow(1+annualRate, daysInMonth/daysInYear) - 1
	return balance * monthlyRate
}

// trackPolicy carries what distinguishes the active track from the
// passive one: the month-0 lump sum and the scheduled extra repayments.
// The zero value is the passive policy.
type trackPolicy struct {
	instantRepayment float64
	extra            []float64
}

// extraSchedule expands the extra-repayment parameter into a per-month
// buffer of length n. A sparse schedule takes precedence over a constant
// monthly amount; entries at or beyond the horizon are silently dropped.
func (p SimulationParams) extraSchedule(n int) []float64 {
	extra := make([]float64, n)
	if p.Extra.ByMonth != nil {
		for month, amount := range p.Extra.ByMonth {
			if month >= 0 && month < n {
				extra[month] = amount
			}
		}
		return extra
	}
	if p.Extra.Monthly != 0 {
		for i := range extra {
			extra[i] = p.Extra.Monthly
		}
	}
	return extra
}

// SimulateRepayment projects a student loan month by month from the start
// date to the statutory write-off date, producing two aligned tracks: a
// passive one with only mandatory salary deductions and an active one
// that additionally applies the instant and extra repayments.
//
// When the passive track ends fully repaid, both tracks are trimmed to
// end at the payoff month.
func SimulateRepayment(params SimulationParams) (SimulationResult, error) {
	plan, err := LookupPlan(params.Plan)
	if err != nil {
		return SimulationResult{}, err
	}

	start := params.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	months := monthGrid(start, params.WriteOffDate())
	result := SimulationResult{Params: params, Months: months}
	if len(months) == 0 {
		// Write-off date already passed; nothing left to simulate.
		return result, nil
	}

	result.Passive = simulateTrack(params, plan, months, trackPolicy{})
	result.Active = simulateTrack(params, plan, months, trackPolicy{
		instantRepayment: params.InstantRepayment,
		extra:            params.extraSchedule(len(months)),
	})

	// Drop the trailing zero-balance months once the loan is repaid. The
	// passive track keys the trim so the two tracks stay aligned.
	if result.Passive.FinalBalance() == 0 {
		if idx := result.Passive.PayoffIndex(); idx >= 0 {
			result.Months = result.Months[:idx+1]
			result.Passive = result.Passive[:idx+1]
			result.Active = result.Active[:idx+1]
		}
	}
	return result, nil
}

// simulateTrack runs the monthly recurrence for one track. Month i is
// derived from month i-1 only, so the series is built in a single forward
// pass: carry the gross income (growing each December), accrue interest
// on the open balance, deduct the salary-based repayment, then any extra
// repayment, clamping at payoff so the loan never overpays.
func simulateTrack(params SimulationParams, plan Plan, months []time.Time, policy trackPolicy) TimeSeries {
	n := len(months)
	series := make(TimeSeries, n)
	extra := make([]float64, n)
	copy(extra, policy.extra)

	series[0].Gross = params.InitialSalary / 12
	series[0].Loan = params.Loan - minFloat(policy.instantRepayment, params.Loan)

	salaryDeduction := func(gross float64) float64 { return StudentLoanRepayment(gross, plan) }
	incomeTax := func(gross float64) float64 { return IncomeTaxWithConfig(gross, params.Tax) }
	nationalInsurance := func(gross float64) float64 { return NationalInsuranceWithRules(gross, params.niRules()) }

	for i := 1; i < n; i++ {
		period := months[i-1]

		// Salary growth compounds once a year, in December.
		gross := series[i-1].Gross
		if period.Month() == time.December {
			gross *= 1 + params.SalaryGrowth
		}
		series[i].Gross = gross
		effectiveGross := gross * (1 - params.SalarySacrifice)

		if series[i-1].Loan >= 0 {
			series[i-1].Interest = monthlyInterest(series[i-1].Loan, params.InterestRate, period)
			series[i].Loan = series[i-1].Loan + series[i-1].Interest

			series[i-1].SalaryRepayment = Monthly(salaryDeduction, effectiveGross)
			series[i].Loan -= series[i-1].SalaryRepayment

			if series[i].Loan < 0 {
				// Refund the overpayment into the recorded repayment and
				// close the loan: no further deductions of any kind.
				series[i-1].SalaryRepayment += series[i].Loan
				zeroFrom(extra, i-1)
				series[i].Loan = 0
			}

			// Extra repayments apply only while a balance remains after
			// the mandatory deduction.
			if series[i].Loan > 0 {
				series[i].Loan -= extra[i-1]
				if series[i].Loan < 0 {
					extra[i-1] += series[i].Loan
					zeroFrom(extra, i)
					series[i].Loan = 0
				}
			}
		}
		series[i-1].ExtraRepayment = extra[i-1]

		series[i-1].Net = effectiveGross -
			Monthly(incomeTax, effectiveGross) -
			Monthly(nationalInsurance, effectiveGross) -
			(series[i-1].SalaryRepayment + series[i-1].ExtraRepayment)
	}
	// The final month is never the "previous month" of an iteration, so
	// its extra-repayment column keeps the scheduled value unchanged.
	series[n-1].ExtraRepayment = extra[n-1]
	return series
}

// zeroFrom zeroes a buffer from index i onward. Past entries are already
// recorded in the series and must keep their values.
func zeroFrom(buf []float64, i int) {
	for ; i < len(buf); i++ {
		buf[i] = 0
	}
}
