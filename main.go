package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `UK Student Loan Repayment Simulator

Projects a student loan month by month from today to the statutory
write-off date (1 April, 31 years after graduation), applying salary
growth, daily-equivalent interest, income tax, National Insurance and
plan-based salary deductions. Two tracks are compared:

  PASSIVE   Only the mandatory salary-based deductions.
  ACTIVE    Additionally applies an instant lump sum and/or scheduled
            extra repayments, showing what voluntary repayment saves.

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s                           Summary comparison with config.yaml (or defaults)
  %s -config my.yaml           Use a custom configuration file
  %s -details                  Year-by-year schedule tables
  %s -csv schedule.csv         Export the monthly comparison as CSV
  %s -pdf report.pdf           Generate a PDF summary report
  %s -sensitivity              Payoff grid across interest/growth rate ranges
  %s -target 2040              Extra repayment needed to clear by April 2040

Configuration:
  Values come from the YAML config file, falling back to built-in
  defaults. The PLAN, GRADUATION_YEAR, LOAN, INTEREST_RATE,
  INITIAL_SALARY, SALARY_GROWTH, SALARY_SACRIFICE, INSTANT_REPAYMENT,
  EXTRA_REPAYMENTS and INFLATION_RATE environment variables override
  the file.
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	configFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	showDetails := flag.Bool("details", false, "Show year-by-year schedule tables in console")
	csvFile := flag.String("csv", "", "Write the monthly comparison to a CSV file")
	pdfFile := flag.String("pdf", "", "Write a PDF summary report to a file")
	runSensitivity := flag.Bool("sensitivity", false, "Run sensitivity analysis across interest/growth rates")
	targetYear := flag.Int("target", 0, "Solve for the extra repayment clearing the loan by April of this year")
	writeConfig := flag.Bool("write-config", false, "Write the resolved configuration back to the config file and exit")
	flag.Parse()

	config, err := LoadConfig(*configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config, err = LoadDefaultConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading default config: %v\n", err)
			os.Exit(1)
		}
		config.ApplyEnvOverrides()
	}

	if *writeConfig {
		if err := SaveConfig(config, *configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *configFile)
		return
	}

	params := config.Params(time.Time{})
	result, err := SimulateRepayment(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Simulation error: %v\n", err)
		os.Exit(1)
	}

	discountRate := config.Report.GetDiscountRate()
	PrintHeader(config, result)
	PrintComparison(result, discountRate)

	if *showDetails {
		PrintSchedule(result, Passive)
		if !params.Extra.IsZero() || params.InstantRepayment > 0 {
			PrintSchedule(result, Active)
		}
	}

	if *targetYear == 0 && config.Repayments.TargetPayoffYear > 0 {
		*targetYear = config.Repayments.TargetPayoffYear
	}
	if *targetYear > 0 {
		targetDate := time.Date(*targetYear, time.April, 1, 0, 0, 0, 0, time.UTC)
		target, err := RequiredExtraRepayment(params, targetDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Target solver error: %v\n", err)
			os.Exit(1)
		}
		PrintPayoffTarget(target, discountRate)
	}

	if *runSensitivity {
		analysis, err := RunSensitivityAnalysis(params, config.Sensitivity, discountRate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Sensitivity error: %v\n", err)
			os.Exit(1)
		}
		PrintSensitivity(analysis)
	}

	if *csvFile != "" {
		if err := WriteCSVFile(*csvFile, result); err != nil {
			fmt.Fprintf(os.Stderr, "CSV export error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *csvFile)
	}

	if *pdfFile != "" {
		if err := WritePDFReportFile(*pdfFile, config, result); err != nil {
			fmt.Fprintf(os.Stderr, "PDF report error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *pdfFile)
	}
}
