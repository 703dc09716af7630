package main

import (
	"time"
)

// Track identifies one of the two simulation tracks being compared.
type Track int

const (
	// Passive makes only the mandatory salary-based deductions.
	Passive Track = iota
	// Active additionally applies the instant and extra repayments.
	Active
)

func (tr Track) String() string {
	switch tr {
	case Passive:
		return "Passive"
	case Active:
		return "Active"
	default:
		return "Unknown"
	}
}

// ExtraRepayments describes optional voluntary repayments on top of the
// salary deduction. Either a constant monthly amount, or a sparse schedule
// keyed by month index. ByMonth takes precedence when non-nil; indices at
// or beyond the simulation horizon are silently ignored.
type ExtraRepayments struct {
	Monthly float64         `yaml:"monthly" json:"monthly"`
	ByMonth map[int]float64 `yaml:"by_month" json:"by_month"`
}

// IsZero reports whether no extra repayments are scheduled.
func (e ExtraRepayments) IsZero() bool {
	if e.ByMonth != nil {
		for _, v := range e.ByMonth {
			if v != 0 {
				return false
			}
		}
		return true
	}
	return e.Monthly == 0
}

// SimulationParams holds the fully-resolved inputs for one simulation.
// Values are passed by value; the engine never reads configuration itself.
type SimulationParams struct {
	InitialSalary    float64 // Annual gross salary at the start date (£)
	SalaryGrowth     float64 // Annual growth rate, compounded each December
	Loan             float64 // Outstanding principal at the start date (£)
	GraduationYear   int     // Determines the statutory write-off date
	InterestRate     float64 // Annual loan interest rate
	SalarySacrifice  float64 // Fraction of gross diverted before tax/loan
	Plan             string  // Repayment plan name, e.g. "Plan 2"
	InstantRepayment float64 // Lump sum repaid at month 0 (active track only)
	Extra            ExtraRepayments

	// StartDate pins the first simulated month. The zero value means the
	// current date, matching a simulation started today.
	StartDate time.Time

	// Tax and NI override the policy constants. Zero values fall back to
	// the 2024/25 defaults.
	Tax TaxConfig
	NI  NIRules
}

// niRules returns the NI rule set to use, defaulting by policy year.
func (p SimulationParams) niRules() NIRules {
	if p.NI.PolicyYear == "" {
		return NIRules2024
	}
	return p.NI
}

// WriteOffDate returns the statutory loan write-off date: 1 April of the
// 31st year after graduation. Any balance remaining then is cancelled.
func (p SimulationParams) WriteOffDate() time.Time {
	return time.Date(p.GraduationYear+31, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// MonthlyRecord is one row of a simulation track: the state of income and
// loan for a single calendar month. Amounts are monthly figures in £.
type MonthlyRecord struct {
	Gross           float64 // Gross monthly income
	Net             float64 // Net monthly income after tax, NI and repayments
	Loan            float64 // Outstanding loan balance at month end
	Interest        float64 // Interest accrued this month
	SalaryRepayment float64 // Mandatory salary-based repayment this month
	ExtraRepayment  float64 // Voluntary extra repayment this month
}

// TimeSeries is an ordered sequence of monthly records, aligned with the
// month grid of its SimulationResult. It is fully computed in one forward
// pass and never mutated afterwards.
type TimeSeries []MonthlyRecord

// TotalRepaid returns the sum of salary and extra repayments.
func (ts TimeSeries) TotalRepaid() float64 {
	total := 0.0
	for _, rec := range ts {
		total += rec.SalaryRepayment + rec.ExtraRepayment
	}
	return total
}

// TotalInterest returns the total interest accrued over the series.
func (ts TimeSeries) TotalInterest() float64 {
	total := 0.0
	for _, rec := range ts {
		total += rec.Interest
	}
	return total
}

// FinalBalance returns the loan balance at the end of the series.
func (ts TimeSeries) FinalBalance() float64 {
	if len(ts) == 0 {
		return 0
	}
	return ts[len(ts)-1].Loan
}

// PaidOff reports whether the loan reaches zero within the series.
func (ts TimeSeries) PaidOff() bool {
	for _, rec := range ts {
		if rec.Loan == 0 {
			return true
		}
	}
	return false
}

// PayoffIndex returns the index of the first month with a zero balance,
// or -1 if the loan is never repaid within the series.
func (ts TimeSeries) PayoffIndex() int {
	for i, rec := range ts {
		if rec.Loan == 0 {
			return i
		}
	}
	return -1
}

// SimulationResult holds the two aligned tracks of a repayment simulation.
// Months carries the month-end date for each row of both series.
type SimulationResult struct {
	Params  SimulationParams
	Months  []time.Time
	Passive TimeSeries
	Active  TimeSeries
}

// Series returns the requested track's time series.
func (r SimulationResult) Series(track Track) TimeSeries {
	if track == Active {
		return r.Active
	}
	return r.Passive
}

// TrackSummary aggregates one track for reporting.
type TrackSummary struct {
	Track             Track
	PaidOff           bool
	PayoffDate        time.Time // Valid only when PaidOff
	MonthsToPayoff    int       // Months from start to payoff; 0 if never
	TotalInterest     float64
	TotalSalaryRepaid float64
	TotalExtraRepaid  float64
	WrittenOff        float64 // Balance cancelled at the write-off date
	DiscountedRepaid  float64 // NPV of repayments, discounted per year
}

// Summarize aggregates a track into headline figures. Repayments are
// grouped by calendar year before discounting, since the discount rate is
// an annual rate and NetPresentValue discounts per entry index.
func (r SimulationResult) Summarize(track Track, discountRate float64) TrackSummary {
	series := r.Series(track)
	summary := TrackSummary{Track: track, TotalInterest: series.TotalInterest()}
	if len(r.Months) == 0 {
		return summary
	}

	for _, rec := range series {
		summary.TotalSalaryRepaid += rec.SalaryRepayment
		summary.TotalExtraRepaid += rec.ExtraRepayment
	}
	if track == Active {
		summary.TotalExtraRepaid += minFloat(r.Params.InstantRepayment, r.Params.Loan)
	}

	if idx := series.PayoffIndex(); idx >= 0 {
		summary.PaidOff = true
		summary.PayoffDate = r.Months[idx]
		summary.MonthsToPayoff = idx
	} else {
		summary.WrittenOff = series.FinalBalance()
	}

	// Annual repayment totals, year 0 being the start year.
	startYear := r.Months[0].Year()
	annual := make([]float64, r.Months[len(r.Months)-1].Year()-startYear+1)
	for i, rec := range series {
		annual[r.Months[i].Year()-startYear] += rec.SalaryRepayment + rec.ExtraRepayment
	}
	if track == Active {
		annual[0] += minFloat(r.Params.InstantRepayment, r.Params.Loan)
	}
	for _, v := range NetPresentValue(annual, discountRate) {
		summary.DiscountedRepaid += v
	}
	return summary
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
