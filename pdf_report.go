package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// pdfText converts UTF-8 text to PDF-safe encoding
// The £ sign in UTF-8 is 0xC2 0xA3, but PDF standard fonts expect Latin-1 (just 0xA3)
func pdfText(s string) string {
	return strings.ReplaceAll(s, "£", "\xa3")
}

// FormatMoneyPDF formats money for PDF output (handles £ encoding)
func FormatMoneyPDF(amount float64) string {
	return pdfText(FormatMoney(amount))
}

// pdfReport builds the loan repayment summary report.
type pdfReport struct {
	pdf          *fpdf.Fpdf
	config       *Config
	result       SimulationResult
	discountRate float64
}

// GeneratePDFReport renders the comparison as a PDF document.
func GeneratePDFReport(config *Config, result SimulationResult) ([]byte, error) {
	report := &pdfReport{
		pdf:          fpdf.New("P", "mm", "A4", ""),
		config:       config,
		result:       result,
		discountRate: config.Report.GetDiscountRate(),
	}

	report.pdf.SetMargins(marginLeft, marginTop, marginRight)
	report.pdf.SetAutoPageBreak(true, marginBottom)

	report.addSummaryPage()
	report.addSchedulePage(Passive)
	if !result.Params.Extra.IsZero() || result.Params.InstantRepayment > 0 {
		report.addSchedulePage(Active)
	}

	var buf bytes.Buffer
	if err := report.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePDFReportFile renders the report and writes it to a file.
func WritePDFReportFile(filename string, config *Config, result SimulationResult) error {
	data, err := GeneratePDFReport(config, result)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

func (r *pdfReport) addSummaryPage() {
	pdf := r.pdf
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(contentWidth, 12, "Student Loan Repayment Forecast", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(contentWidth, 6, "Generated "+time.Now().Format("2 January 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Input parameters
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(contentWidth, 8, "Parameters", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)

	params := [][2]string{
		{"Repayment plan", r.config.Loan.Plan},
		{"Graduation year", fmt.Sprintf("%d", r.config.Loan.GraduationYear)},
		{"Loan balance", FormatMoneyPDF(r.config.Loan.Balance)},
		{"Interest rate", fmt.Sprintf("%.1f%% / year", r.config.Loan.InterestRate*100)},
		{"Initial salary", FormatMoneyPDF(r.config.Salary.Initial) + " / year"},
		{"Salary growth", fmt.Sprintf("%.0f%% each December", r.config.Salary.Growth*100)},
		{"Salary sacrifice", fmt.Sprintf("%.0f%%", r.config.Salary.Sacrifice*100)},
		{"National Insurance rules", r.config.NI.Rules().PolicyYear},
		{"Write-off date", r.result.Params.WriteOffDate().Format("January 2006")},
	}
	if r.config.Repayments.Instant > 0 {
		params = append(params, [2]string{"Instant repayment", FormatMoneyPDF(r.config.Repayments.Instant)})
	}
	if r.config.Repayments.ExtraMonthly > 0 {
		params = append(params, [2]string{"Extra repayments", FormatMoneyPDF(r.config.Repayments.ExtraMonthly) + " / month"})
	}
	for _, row := range params {
		pdf.CellFormat(70, 6, pdfText(row[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth-70, 6, pdfText(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Passive vs active comparison
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(contentWidth, 8, "Passive vs Active", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)

	passive := r.result.Summarize(Passive, r.discountRate)
	active := r.result.Summarize(Active, r.discountRate)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, "Passive", "", 0, "R", false, 0, "")
	pdf.CellFormat(50, 6, "Active", "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)

	rows := []struct {
		label           string
		passive, active string
	}{
		{"Outcome", outcome(passive), outcome(active)},
		{"Total interest accrued", FormatMoneyPDF(passive.TotalInterest), FormatMoneyPDF(active.TotalInterest)},
		{"Salary repayments", FormatMoneyPDF(passive.TotalSalaryRepaid), FormatMoneyPDF(active.TotalSalaryRepaid)},
		{"Voluntary repayments", FormatMoneyPDF(passive.TotalExtraRepaid), FormatMoneyPDF(active.TotalExtraRepaid)},
		{"Written off", FormatMoneyPDF(passive.WrittenOff), FormatMoneyPDF(active.WrittenOff)},
		{fmt.Sprintf("Repaid, discounted at %.0f%%", r.discountRate*100),
			FormatMoneyPDF(passive.DiscountedRepaid), FormatMoneyPDF(active.DiscountedRepaid)},
	}
	for _, row := range rows {
		pdf.CellFormat(80, 6, pdfText(row.label), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, row.passive, "", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, row.active, "", 1, "R", false, 0, "")
	}
}

// addSchedulePage prints a yearly schedule table for one track: each
// April row plus the first and last simulated months.
func (r *pdfReport) addSchedulePage(track Track) {
	pdf := r.pdf
	series := r.result.Series(track)
	if len(series) == 0 {
		return
	}

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(contentWidth, 10, fmt.Sprintf("%s Schedule", track), "", 1, "L", false, 0, "")

	widths := []float64{26, 24, 24, 24, 24, 24, 34}
	headers := []string{"Month", "Gross", "Net", "Interest", "Salary", "Extra", "Balance"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(230, 236, 245)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for i, rec := range series {
		isKeyRow := i == 0 || i == len(series)-1 || r.result.Months[i].Month() == time.April
		if !isKeyRow {
			continue
		}
		cells := []string{
			r.result.Months[i].Format("Jan 2006"),
			fmt.Sprintf("%.2f", rec.Gross),
			fmt.Sprintf("%.2f", rec.Net),
			fmt.Sprintf("%.2f", rec.Interest),
			fmt.Sprintf("%.2f", rec.SalaryRepayment),
			fmt.Sprintf("%.2f", rec.ExtraRepayment),
			fmt.Sprintf("%.2f", rec.Loan),
		}
		pdf.CellFormat(widths[0], 6, cells[0], "1", 0, "L", false, 0, "")
		for j := 1; j < len(cells); j++ {
			pdf.CellFormat(widths[j], 6, cells[j], "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
