package main

import (
	"fmt"
	"os"

	"github.com/user/imf_analyzer_go/internal/analysis"
	"github.com/user/imf_analyzer_go/internal/config"
	"github.com/user/imf_analyzer_go/internal/log"
	"github.com/user/imf_analyzer_go/internal/parser"
	"github.com/user/imf_analyzer_go/internal/report"
)

// App drives the whole pipeline: parse, derive, summarize, plot, report.
type App struct {
	opts *config.Options
}

func NewApp(opts *config.Options) *App {
	return &App{opts: opts}
}

// Run processes one IMF file. The PNG is always written; the PDF report only
// when pdfFile is non-empty.
func (a *App) Run(inFile, pngFile, pdfFile string) error {
	log.Infof("Parsing %s", inFile)
	data, err := parser.ReadImfFile(inFile)
	if err != nil {
		return fmt.Errorf("reading IMF file: %w", err)
	}
	log.Infof("Loaded %d samples from %s to %s",
		data.Len(), data.Time[0].Format("2006-01-02 15:04"), data.Time[data.Len()-1].Format("2006-01-02 15:04"))
	for _, w := range data.ParseWarnings {
		log.Warnf("Parse warning: %s", w)
	}

	// Epsilon pulls in b, v and clock, so this fills every derived field.
	if err := analysis.Epsilon(data); err != nil {
		return fmt.Errorf("computing derived quantities: %w", err)
	}

	summary, err := analysis.Summarize(data)
	if err != nil {
		return fmt.Errorf("summarizing dataset: %w", err)
	}
	for _, fs := range summary.Fields {
		log.Debugf("Field %-8s n=%d mean=%.4g std=%.4g range=[%.4g, %.4g]",
			fs.Name, fs.NumValid, fs.Mean, fs.StdDev, fs.Min, fs.Max)
	}

	plotPNG, err := report.CreateTimeseriesPlot(data, a.opts)
	if err != nil {
		return fmt.Errorf("rendering plot: %w", err)
	}
	if err := os.WriteFile(pngFile, plotPNG, 0o644); err != nil {
		return fmt.Errorf("writing plot to %s: %w", pngFile, err)
	}
	log.Infof("Wrote quick-look plot to %s", pngFile)

	if pdfFile != "" {
		if err := report.BuildPDFReport(pdfFile, data, summary, plotPNG); err != nil {
			return fmt.Errorf("building PDF report: %w", err)
		}
		log.Infof("Wrote PDF report to %s", pdfFile)
	}
	return nil
}
