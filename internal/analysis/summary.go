package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/user/imf_analyzer_go/internal/parser"
)

// Summarize computes per-field statistics for every field present in the
// dataset. NaN entries are dropped before computing; a field with no valid
// entries gets NaN statistics and a zero count.
func Summarize(d *parser.ImfData) (*SummaryResults, error) {
	if d == nil || d.Len() == 0 {
		return nil, fmt.Errorf("dataset is empty, nothing to summarize")
	}

	results := &SummaryResults{
		NumSamples: d.Len(),
		Start:      d.Time[0],
		End:        d.Time[d.Len()-1],
	}

	for _, name := range d.Fields() {
		results.Fields = append(results.Fields, summarizeField(name, d.Field(name)))
	}
	return results, nil
}

func summarizeField(name string, vals []float64) FieldSummary {
	valid := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}

	s := FieldSummary{
		Name:     name,
		NumValid: len(valid),
		Mean:     math.NaN(),
		StdDev:   math.NaN(),
		Min:      math.NaN(),
		Max:      math.NaN(),
		Range:    math.NaN(),
	}
	if len(valid) == 0 {
		return s
	}

	s.Mean = stat.Mean(valid, nil)
	s.Min = floats.Min(valid)
	s.Max = floats.Max(valid)
	s.Range = s.Max - s.Min
	if len(valid) == 1 {
		s.StdDev = 0
	} else {
		s.StdDev = stat.PopStdDev(valid, nil)
	}
	return s
}
