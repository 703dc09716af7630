package main

// SensitivityCell holds the outcome of one simulation in the grid.
type SensitivityCell struct {
	InterestRate   float64
	SalaryGrowth   float64
	PaidOff        bool
	MonthsToPayoff int     // Months from start to payoff; meaningful when PaidOff
	TotalRepaid    float64 // Salary + extra + instant repayments (active track)
	WrittenOff     float64 // Balance cancelled at the write-off date
}

// SensitivityAnalysis is a grid of simulations across interest rate and
// salary growth ranges, all other parameters held fixed.
type SensitivityAnalysis struct {
	InterestRates []float64
	SalaryGrowths []float64
	Cells         [][]SensitivityCell // Cells[i][g] for InterestRates[i] × SalaryGrowths[g]
}

// RunSensitivityAnalysis sweeps the configured interest-rate and
// salary-growth ranges and records how the payoff outcome responds.
func RunSensitivityAnalysis(params SimulationParams, sc SensitivityConfig, discountRate float64) (SensitivityAnalysis, error) {
	analysis := SensitivityAnalysis{
		InterestRates: rateRange(sc.InterestRateMin, sc.InterestRateMax, sc.StepSize),
		SalaryGrowths: rateRange(sc.SalaryGrowthMin, sc.SalaryGrowthMax, sc.StepSize),
	}

	analysis.Cells = make([][]SensitivityCell, len(analysis.InterestRates))
	for i, rate := range analysis.InterestRates {
		analysis.Cells[i] = make([]SensitivityCell, len(analysis.SalaryGrowths))
		for g, growth := range analysis.SalaryGrowths {
			p := params
			p.InterestRate = rate
			p.SalaryGrowth = growth

			result, err := SimulateRepayment(p)
			if err != nil {
				return SensitivityAnalysis{}, err
			}

			summary := result.Summarize(Active, discountRate)
			analysis.Cells[i][g] = SensitivityCell{
				InterestRate:   rate,
				SalaryGrowth:   growth,
				PaidOff:        summary.PaidOff,
				MonthsToPayoff: summary.MonthsToPayoff,
				TotalRepaid:    summary.TotalSalaryRepaid + summary.TotalExtraRepaid,
				WrittenOff:     summary.WrittenOff,
			}
		}
	}
	return analysis, nil
}

// rateRange returns min..max inclusive in step increments. A degenerate
// range collapses to a single value.
func rateRange(min, max, step float64) []float64 {
	if step <= 0 {
		step = 0.01
	}
	if max < min {
		max = min
	}
	var rates []float64
	// Half-step tolerance so the upper bound survives float accumulation.
	for r := min; r <= max+step/2; r += step {
		rates = append(rates, r)
	}
	return rates
}
