package main

import (
	"fmt"
	"time"
)

// PayoffTarget holds the result of the extra-repayment solver: the
// constant monthly extra repayment that clears the loan by the target
// date, together with the full simulation at that level.
type PayoffTarget struct {
	TargetDate       time.Time
	ExtraMonthly     float64 // Constant extra repayment achieving the target (£/month)
	SimulationResult SimulationResult
}

// RequiredExtraRepayment uses binary search to find the smallest constant
// monthly extra repayment that pays the loan off on or before the target
// date. Any configured extra repayments in params are replaced by the
// candidate amount; the instant repayment is kept.
func RequiredExtraRepayment(params SimulationParams, targetDate time.Time) (PayoffTarget, error) {
	trial := func(extraMonthly float64) (SimulationResult, bool, error) {
		p := params
		p.Extra = ExtraRepayments{Monthly: extraMonthly}
		result, err := SimulateRepayment(p)
		if err != nil {
			return SimulationResult{}, false, err
		}
		idx := result.Active.PayoffIndex()
		return result, idx >= 0 && !result.Months[idx].After(targetDate), nil
	}

	// No extra repayment needed if the salary deduction alone gets there.
	result, ok, err := trial(0)
	if err != nil {
		return PayoffTarget{}, err
	}
	if ok {
		return PayoffTarget{TargetDate: targetDate, SimulationResult: result}, nil
	}

	// Repaying the whole balance every month is the fastest any constant
	// schedule can go; if that misses the target, nothing will hit it.
	high := params.Loan
	result, ok, err = trial(high)
	if err != nil {
		return PayoffTarget{}, err
	}
	if !ok {
		return PayoffTarget{}, fmt.Errorf("loan cannot be repaid by %s with any constant extra repayment",
			targetDate.Format("January 2006"))
	}

	low := 0.0
	best := result
	bestExtra := high
	for i := 0; i < 100 && high-low > 0.01; i++ {
		mid := (low + high) / 2
		result, ok, err = trial(mid)
		if err != nil {
			return PayoffTarget{}, err
		}
		if ok {
			high = mid
			best = result
			bestExtra = mid
		} else {
			low = mid
		}
	}

	return PayoffTarget{TargetDate: targetDate, ExtraMonthly: bestExtra, SimulationResult: best}, nil
}
