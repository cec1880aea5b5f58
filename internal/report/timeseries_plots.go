package report

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/user/imf_analyzer_go/internal/config"
	"github.com/user/imf_analyzer_go/internal/parser"
)

// CreateTimeseriesPlot renders the standard quick-look figure for an IMF
// dataset: three stacked, time-aligned panels showing IMF By and Bz, number
// density, and earthward solar wind speed (-vx). Returns the figure as PNG
// bytes.
func CreateTimeseriesPlot(d *parser.ImfData, opts *config.Options) ([]byte, error) {
	if d == nil || d.Len() == 0 {
		return nil, fmt.Errorf("no samples to plot")
	}
	for _, name := range []string{"by", "bz", "rho", "vx"} {
		if !d.Has(name) {
			return nil, fmt.Errorf("required field %q missing from %s", name, d.File)
		}
	}
	if opts == nil {
		opts = config.Defaults()
	}

	xs := make([]float64, d.Len())
	for i, t := range d.Time {
		xs[i] = float64(t.Unix())
	}
	tStart, tEnd := d.Time[0], d.Time[d.Len()-1]

	// TOP PANEL: IMF By and Bz with a dashed zero line.
	pIMF := plot.New()
	pIMF.Title.Text = d.File

	byLine, err := newSeriesLine(xs, d.Field("by"))
	if err != nil {
		return nil, fmt.Errorf("failed to create By line: %w", err)
	}
	byLine.Color = color.RGBA{G: 200, B: 255, A: 255} // cyan
	byLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	pIMF.Add(byLine)
	pIMF.Legend.Add("By", byLine)

	bzLine, err := newSeriesLine(xs, d.Field("bz"))
	if err != nil {
		return nil, fmt.Errorf("failed to create Bz line: %w", err)
	}
	bzLine.Color = color.RGBA{B: 255, A: 255} // blue
	pIMF.Add(bzLine)
	pIMF.Legend.Add("Bz", bzLine)

	zeroLine, err := plotter.NewLine(plotter.XYs{{X: xs[0], Y: 0}, {X: xs[len(xs)-1], Y: 0}})
	if err != nil {
		return nil, fmt.Errorf("failed to create zero line: %w", err)
	}
	zeroLine.Color = color.Black
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	zeroLine.LineStyle.Width = vg.Points(2)
	pIMF.Add(zeroLine)

	pIMF.Legend.Top = true
	formatTimeAxis(pIMF, "IMF (nT)", tStart, tEnd, opts, false)

	// MIDDLE PANEL: number density.
	pRho := plot.New()
	rhoLine, err := newSeriesLine(xs, d.Field("rho"))
	if err != nil {
		return nil, fmt.Errorf("failed to create density line: %w", err)
	}
	rhoLine.Color = color.RGBA{R: 255, A: 255} // red
	pRho.Add(rhoLine)
	formatTimeAxis(pRho, "Density (cm^-3)", tStart, tEnd, opts, false)

	// BOTTOM PANEL: earthward speed, sign-flipped from vx.
	pV := plot.New()
	vx := d.Field("vx")
	earthward := make([]float64, len(vx))
	for i, v := range vx {
		earthward[i] = -v
	}
	vLine, err := newSeriesLine(xs, earthward)
	if err != nil {
		return nil, fmt.Errorf("failed to create velocity line: %w", err)
	}
	vLine.Color = color.RGBA{G: 160, A: 255} // green
	pV.Add(vLine)
	formatTimeAxis(pV, "Vx (km/s)", tStart, tEnd, opts, true)

	// Stack the panels on a single canvas with a shared time axis.
	img := vgimg.New(
		vg.Length(opts.PlotWidthInches)*vg.Inch,
		vg.Length(opts.PlotHeightInches)*vg.Inch,
	)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 3,
		Cols: 1,
		PadY: vg.Millimeter,
	}
	panels := [][]*plot.Plot{{pIMF}, {pRho}, {pV}}
	canvases := plot.Align(panels, tiles, dc)
	for row := range panels {
		panels[row][0].Draw(canvases[row][0])
	}

	buf := new(bytes.Buffer)
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to encode plot: %w", err)
	}
	return buf.Bytes(), nil
}

// newSeriesLine builds a line plotter from parallel x and y slices.
func newSeriesLine(xs, ys []float64) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	return line, nil
}

// formatTimeAxis applies the shared panel styling: grid, y label, hour-based
// time ticks, and the time-from label on the bottom panel only.
func formatTimeAxis(p *plot.Plot, ylabel string, start, end time.Time, opts *config.Options, bottom bool) {
	p.Add(plotter.NewGrid())
	p.Y.Label.Text = ylabel
	p.X.Min = float64(start.Unix())
	p.X.Max = float64(end.Unix())
	p.X.Tick.Marker = plot.ConstantTicks(hourTicks(start, end, opts, bottom))
	if bottom {
		p.X.Label.Text = fmt.Sprintf("Time from %s", start.UTC().Format(time.RFC3339))
	}
}

// hourTicks places a minor tick every MinorTickHours and a labeled major
// tick every MajorTickHours, labeled as HH:MM UT. When labeled is false the
// major ticks are kept but their labels are suppressed, which is how the
// upper panels share the bottom panel's axis without repeating it.
func hourTicks(start, end time.Time, opts *config.Options, labeled bool) []plot.Tick {
	var ticks []plot.Tick
	major := time.Duration(opts.MajorTickHours) * time.Hour
	minor := time.Duration(opts.MinorTickHours) * time.Hour

	for t := start.UTC().Truncate(time.Hour); !t.After(end); t = t.Add(minor) {
		if t.Before(start) {
			continue
		}
		tick := plot.Tick{Value: float64(t.Unix())}
		if labeled && t.Hour()%opts.MajorTickHours == 0 && major >= minor {
			tick.Label = t.Format("15:04 UT")
		}
		ticks = append(ticks, tick)
	}
	if len(ticks) == 0 {
		// Span shorter than an hour boundary: fall back to the endpoints.
		ticks = []plot.Tick{{Value: float64(start.Unix())}, {Value: float64(end.Unix())}}
		if labeled {
			ticks[0].Label = start.UTC().Format("15:04 UT")
			ticks[1].Label = end.UTC().Format("15:04 UT")
		}
	}
	return ticks
}
