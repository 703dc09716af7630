package main

import (
	"fmt"
	"strings"
	"time"
)

// FormatMoney formats a float as a currency string
func FormatMoney(amount float64) string {
	if amount >= 1000000 {
		return fmt.Sprintf("£%.2fM", amount/1000000)
	}
	if amount >= 1000 {
		return fmt.Sprintf("£%.1fk", amount/1000)
	}
	return fmt.Sprintf("£%.0f", amount)
}

// FormatMoneyFull formats a float as full currency (no abbreviation)
func FormatMoneyFull(amount float64) string {
	return fmt.Sprintf("£%.2f", amount)
}

// PrintHeader prints the simulation inputs.
func PrintHeader(config *Config, result SimulationResult) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                  UK STUDENT LOAN REPAYMENT SIMULATION                        ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println("──────────────")
	fmt.Printf("  Loan: %s on %s (graduated %d) at %.1f%%/year\n",
		FormatMoney(config.Loan.Balance), config.Loan.Plan,
		config.Loan.GraduationYear, config.Loan.InterestRate*100)
	fmt.Printf("  Salary: %s/year, growing %.0f%% each December, %.0f%% sacrificed\n",
		FormatMoney(config.Salary.Initial), config.Salary.Growth*100,
		config.Salary.Sacrifice*100)
	if config.Repayments.Instant > 0 {
		fmt.Printf("  Instant repayment: %s\n", FormatMoney(config.Repayments.Instant))
	}
	if config.Repayments.ExtraByMonth != nil {
		fmt.Printf("  Extra repayments: %d scheduled months\n", len(config.Repayments.ExtraByMonth))
	} else if config.Repayments.ExtraMonthly > 0 {
		fmt.Printf("  Extra repayments: %s/month\n", FormatMoney(config.Repayments.ExtraMonthly))
	}
	fmt.Printf("  National Insurance: %s rules\n", config.NI.Rules().PolicyYear)
	if len(result.Months) > 0 {
		fmt.Printf("  Simulation: %s to %s (%d months, write-off %s)\n",
			result.Months[0].Format("Jan 2006"),
			result.Months[len(result.Months)-1].Format("Jan 2006"),
			len(result.Months),
			result.Params.WriteOffDate().Format("Jan 2006"))
	}
	fmt.Println()
}

// PrintComparison prints the passive vs active headline figures.
func PrintComparison(result SimulationResult, discountRate float64) {
	passive := result.Summarize(Passive, discountRate)
	active := result.Summarize(Active, discountRate)

	fmt.Println("Comparison (passive = salary deductions only, active = with voluntary repayments):")
	fmt.Println(strings.Repeat("─", 80))
	fmt.Printf("%-34s %14s %14s\n", "", "Passive", "Active")
	fmt.Printf("%-34s %14s %14s\n", "Outcome", outcome(passive), outcome(active))
	fmt.Printf("%-34s %14s %14s\n", "Total interest accrued",
		FormatMoney(passive.TotalInterest), FormatMoney(active.TotalInterest))
	fmt.Printf("%-34s %14s %14s\n", "Salary repayments",
		FormatMoney(passive.TotalSalaryRepaid), FormatMoney(active.TotalSalaryRepaid))
	fmt.Printf("%-34s %14s %14s\n", "Voluntary repayments",
		FormatMoney(passive.TotalExtraRepaid), FormatMoney(active.TotalExtraRepaid))
	fmt.Printf("%-34s %14s %14s\n", "Written off",
		FormatMoney(passive.WrittenOff), FormatMoney(active.WrittenOff))
	fmt.Printf("%-34s %14s %14s\n",
		fmt.Sprintf("Repaid, discounted at %.0f%%/year", discountRate*100),
		FormatMoney(passive.DiscountedRepaid), FormatMoney(active.DiscountedRepaid))
	fmt.Println(strings.Repeat("─", 80))

	saved := (passive.TotalSalaryRepaid + passive.TotalExtraRepaid) -
		(active.TotalSalaryRepaid + active.TotalExtraRepaid)
	if saved > 0.01 {
		fmt.Printf("Voluntary repayments save %s in total repayments.\n", FormatMoney(saved))
	}
	fmt.Println()
}

func outcome(s TrackSummary) string {
	if s.PaidOff {
		return "repaid " + s.PayoffDate.Format("Jan 2006")
	}
	return "written off"
}

// PrintSchedule prints a yearly view of one track's monthly schedule:
// every April row plus the first and last months.
func PrintSchedule(result SimulationResult, track Track) {
	series := result.Series(track)
	if len(series) == 0 {
		fmt.Println("Nothing to simulate: the write-off date has already passed.")
		return
	}

	fmt.Printf("Schedule (%s track):\n", track)
	fmt.Printf("%-10s │ %10s %10s │ %10s %10s %10s │ %12s\n",
		"Month", "Gross", "Net", "Interest", "Salary", "Extra", "Balance")
	fmt.Println(strings.Repeat("─", 85))

	for i, rec := range series {
		isKeyRow := i == 0 || i == len(series)-1 || result.Months[i].Month() == time.April
		if !isKeyRow {
			continue
		}
		fmt.Printf("%-10s │ %10.2f %10.2f │ %10.2f %10.2f %10.2f │ %12.2f\n",
			result.Months[i].Format("Jan 2006"),
			rec.Gross, rec.Net, rec.Interest, rec.SalaryRepayment, rec.ExtraRepayment, rec.Loan)
	}
	fmt.Println()
}

// PrintSensitivity prints the months-to-payoff grid, one row per interest
// rate and one column per salary growth rate.
func PrintSensitivity(analysis SensitivityAnalysis) {
	fmt.Println("Sensitivity: months to payoff (w/o = written off) by interest rate × salary growth")
	fmt.Println(strings.Repeat("─", 16+11*len(analysis.SalaryGrowths)))

	fmt.Printf("%-15s", "Interest \\ Growth")
	for _, g := range analysis.SalaryGrowths {
		fmt.Printf(" %9.1f%%", g*100)
	}
	fmt.Println()

	for i, rate := range analysis.InterestRates {
		fmt.Printf("%14.1f%%", rate*100)
		for g := range analysis.SalaryGrowths {
			cell := analysis.Cells[i][g]
			if cell.PaidOff {
				fmt.Printf(" %10d", cell.MonthsToPayoff)
			} else {
				fmt.Printf(" %10s", "w/o")
			}
		}
		fmt.Println()
	}
	fmt.Println()
}

// PrintPayoffTarget prints the extra-repayment solver's answer.
func PrintPayoffTarget(target PayoffTarget, discountRate float64) {
	summary := target.SimulationResult.Summarize(Active, discountRate)
	fmt.Printf("To clear the loan by %s:\n", target.TargetDate.Format("January 2006"))
	if target.ExtraMonthly == 0 {
		fmt.Println("  No extra repayments needed: salary deductions alone get there.")
	} else {
		fmt.Printf("  Pay an extra %s/month on top of salary deductions.\n",
			FormatMoneyFull(target.ExtraMonthly))
	}
	if summary.PaidOff {
		fmt.Printf("  Loan repaid %s after %s interest and %s total repayments.\n",
			summary.PayoffDate.Format("Jan 2006"),
			FormatMoney(summary.TotalInterest),
			FormatMoney(summary.TotalSalaryRepaid+summary.TotalExtraRepaid))
	}
	fmt.Println()
}
