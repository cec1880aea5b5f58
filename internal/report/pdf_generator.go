package report

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/user/imf_analyzer_go/internal/analysis"
	"github.com/user/imf_analyzer_go/internal/parser"
)

const (
	inchToMm              = 25.4
	pdfPageWidthPortrait  = 8.5 * inchToMm // Letter portrait
	pdfPageHeightPortrait = 11 * inchToMm
	pdfMargin             = 0.5 * inchToMm
	pdfContentWidth       = pdfPageWidthPortrait - (2 * pdfMargin)
)

// pdfStyler holds reusable styling for PDF generation
type pdfStyler struct {
	pdf        *gofpdf.Fpdf
	styles     map[string]func()
	lineHeight float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:        pdf,
		styles:     make(map[string]func()),
		lineHeight: 6, // mm
	}
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 12)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(220, 220, 220)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(0, 0, 0)
	}
}

func (s *pdfStyler) apply(style string) {
	if fn, ok := s.styles[style]; ok {
		fn()
	}
}

func (s *pdfStyler) heading(style, text string) {
	s.apply(style)
	s.pdf.CellFormat(pdfContentWidth, s.lineHeight+2, text, "", 1, "L", false, 0, "")
	s.pdf.Ln(1)
}

func (s *pdfStyler) keyValue(key, value string) {
	s.apply("normal")
	s.pdf.CellFormat(45, s.lineHeight, key, "", 0, "L", false, 0, "")
	s.pdf.CellFormat(pdfContentWidth-45, s.lineHeight, value, "", 1, "L", false, 0, "")
}

// fmtStat renders a statistic compactly, with NaN shown as a dash.
func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.4g", v)
}

// BuildPDFReport writes a one-file summary of the dataset: source metadata,
// the per-field statistics table, and the quick-look figure when supplied.
func BuildPDFReport(path string, d *parser.ImfData, summary *analysis.SummaryResults, plotPNG []byte) error {
	if d == nil || summary == nil {
		return fmt.Errorf("dataset and summary are required for the PDF report")
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()
	s := newPDFStyler(pdf)

	s.heading("h1", "IMF Quick-Look Report")
	s.keyValue("Source file:", d.File)
	s.keyValue("Generated:", time.Now().UTC().Format(time.RFC3339))
	s.keyValue("Samples:", fmt.Sprintf("%d", summary.NumSamples))
	s.keyValue("Time span:", fmt.Sprintf("%s to %s",
		summary.Start.UTC().Format(time.RFC3339),
		summary.End.UTC().Format(time.RFC3339)))
	if len(d.ParseWarnings) > 0 {
		s.keyValue("Parse warnings:", fmt.Sprintf("%d", len(d.ParseWarnings)))
	}
	pdf.Ln(3)

	s.heading("h2", "Field Statistics")
	headers := []string{"Field", "N", "Mean", "Std Dev", "Min", "Max", "Range"}
	widths := []float64{30, 18, 27, 27, 27, 27, 27}

	s.apply("tableHeader")
	for i, h := range headers {
		pdf.CellFormat(widths[i], s.lineHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	s.apply("tableCell")
	for _, fs := range summary.Fields {
		cells := []string{
			fs.Name,
			fmt.Sprintf("%d", fs.NumValid),
			fmtStat(fs.Mean),
			fmtStat(fs.StdDev),
			fmtStat(fs.Min),
			fmtStat(fs.Max),
			fmtStat(fs.Range),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], s.lineHeight, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(plotPNG) > 0 {
		pdf.AddPage()
		s.heading("h2", "Quick-Look Plot")
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader("quicklook", opts, bytes.NewReader(plotPNG))
		pdf.ImageOptions("quicklook", pdfMargin, pdf.GetY(), pdfContentWidth, 0, false, opts, 0, "")
	}

	if pdf.Err() {
		return fmt.Errorf("error building PDF report: %v", pdf.Error())
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("error writing PDF report to %s: %w", path, err)
	}
	return nil
}
