package analysis

import "time"

// FieldSummary holds the statistics of a single dataset column, computed
// over its non-NaN values.
type FieldSummary struct {
	Name     string
	NumValid int
	Mean     float64
	StdDev   float64 // population standard deviation
	Min      float64
	Max      float64
	Range    float64
}

// SummaryResults describes a whole dataset: its time span and one
// FieldSummary per present field, in dataset field order.
type SummaryResults struct {
	NumSamples int
	Start      time.Time
	End        time.Time
	Fields     []FieldSummary
}
