package main

import (
	"testing"
	"time"
)

func TestRequiredExtraRepayment_FindsMinimalAmount(t *testing.T) {
	// £500/month clears the base loan in August 2033, so a target of
	// April 2034 needs at most that.
	target := time.Date(2034, time.April, 30, 0, 0, 0, 0, time.UTC)
	result, err := RequiredExtraRepayment(baseParams(), target)
	if err != nil {
		t.Fatalf("RequiredExtraRepayment: %v", err)
	}

	if result.ExtraMonthly <= 0 || result.ExtraMonthly > 500 {
		t.Errorf("expected a positive amount at most £500/month, got £%.2f", result.ExtraMonthly)
	}

	// The returned simulation actually hits the target.
	idx := result.SimulationResult.Active.PayoffIndex()
	if idx < 0 {
		t.Fatal("returned simulation does not pay off")
	}
	if payoff := result.SimulationResult.Months[idx]; payoff.After(target) {
		t.Errorf("payoff %v misses target %v", payoff, target)
	}

	// Minimality to the solver's £0.01 resolution: a pound less misses.
	p := baseParams()
	p.Extra = ExtraRepayments{Monthly: result.ExtraMonthly - 1}
	under := mustSimulate(t, p)
	if idx := under.Active.PayoffIndex(); idx >= 0 && !under.Months[idx].After(target) {
		t.Errorf("£%.2f/month already hits the target; solver overshot", result.ExtraMonthly-1)
	}
}

func TestRequiredExtraRepayment_ZeroWhenSalaryAloneSuffices(t *testing.T) {
	// The base scenario repays by May 2050 with no extras at all.
	target := time.Date(2051, time.April, 30, 0, 0, 0, 0, time.UTC)
	result, err := RequiredExtraRepayment(baseParams(), target)
	if err != nil {
		t.Fatalf("RequiredExtraRepayment: %v", err)
	}
	if result.ExtraMonthly != 0 {
		t.Errorf("salary deduction alone meets the target; expected £0, got £%.2f", result.ExtraMonthly)
	}
}

func TestRequiredExtraRepayment_UnreachableTarget(t *testing.T) {
	// Before the first simulated month even repaying the full balance
	// monthly cannot clear the loan.
	target := time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)
	if _, err := RequiredExtraRepayment(baseParams(), target); err == nil {
		t.Error("expected an error for an unreachable target")
	}
}

func TestRequiredExtraRepayment_InvalidPlan(t *testing.T) {
	params := baseParams()
	params.Plan = "Plan 9"
	target := time.Date(2040, time.April, 30, 0, 0, 0, 0, time.UTC)
	if _, err := RequiredExtraRepayment(params, target); err == nil {
		t.Error("expected plan validation error")
	}
}
