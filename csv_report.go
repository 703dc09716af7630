package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// csvColumns mirrors the merged comparison table: one row per month with
// the passive track's columns followed by the active track's.
var csvColumns = []string{
	"month",
	"gross passive", "net passive", "loan passive",
	"interest passive", "salary repayment passive", "extra repayment passive",
	"gross active", "net active", "loan active",
	"interest active", "salary repayment active", "extra repayment active",
}

// WriteCSV writes the monthly comparison as CSV for consumption by
// external plotting or spreadsheet tools.
func WriteCSV(w io.Writer, result SimulationResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}

	row := make([]string, len(csvColumns))
	for i := range result.Months {
		row[0] = result.Months[i].Format("2006-01-02")
		for j, v := range recordValues(result.Passive[i]) {
			row[1+j] = strconv.FormatFloat(v, 'f', 2, 64)
		}
		for j, v := range recordValues(result.Active[i]) {
			row[7+j] = strconv.FormatFloat(v, 'f', 2, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the comparison to a file, creating or truncating it.
func WriteCSVFile(filename string, result SimulationResult) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func recordValues(rec MonthlyRecord) [6]float64 {
	return [6]float64{rec.Gross, rec.Net, rec.Loan, rec.Interest, rec.SalaryRepayment, rec.ExtraRepayment}
}
