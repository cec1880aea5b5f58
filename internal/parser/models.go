package parser

import (
	"fmt"
	"sort"
	"time"
)

// BaseFieldOrder gives the names of the value columns of an SWMF IMF data
// line, in the order they appear after the timestamp and the reserved
// millisecond column. Format reference:
// http://herot.engin.umich.edu/~gtoth/SWMF/doc/HTML/SWMF/node301.html
var BaseFieldOrder = []string{"bx", "by", "bz", "vx", "vy", "vz", "rho", "temp"}

// ImfData holds one loaded IMF file: a timestamp column plus a set of
// equal-length float64 columns keyed by field name. The loader fills the
// base fields; derived quantities are written back through SetField.
type ImfData struct {
	File          string
	Time          []time.Time
	ParseWarnings []string // non-fatal problems collected during parsing

	fields map[string][]float64
}

// NewImfData returns an ImfData for n samples with all base fields
// allocated and zeroed.
func NewImfData(file string, n int) *ImfData {
	d := &ImfData{
		File:   file,
		Time:   make([]time.Time, n),
		fields: make(map[string][]float64, len(BaseFieldOrder)),
	}
	for _, name := range BaseFieldOrder {
		d.fields[name] = make([]float64, n)
	}
	return d
}

// Len returns the number of time samples.
func (d *ImfData) Len() int {
	return len(d.Time)
}

// Has reports whether a field is present.
func (d *ImfData) Has(name string) bool {
	_, ok := d.fields[name]
	return ok
}

// Field returns the values for name, or nil if the field is absent. The
// returned slice is the backing storage, not a copy.
func (d *ImfData) Field(name string) []float64 {
	return d.fields[name]
}

// SetField stores vals under name, replacing any existing values.
func (d *ImfData) SetField(name string, vals []float64) {
	if d.fields == nil {
		d.fields = make(map[string][]float64)
	}
	d.fields[name] = vals
}

// Fields returns the present field names: base fields first in column
// order, then any derived fields sorted by name.
func (d *ImfData) Fields() []string {
	names := make([]string, 0, len(d.fields))
	seen := make(map[string]bool, len(BaseFieldOrder))
	for _, name := range BaseFieldOrder {
		if d.Has(name) {
			names = append(names, name)
			seen[name] = true
		}
	}
	extra := make([]string, 0, len(d.fields)-len(names))
	for name := range d.fields {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

func (d *ImfData) String() string {
	return fmt.Sprintf("ImfData from %s (%d samples)", d.File, d.Len())
}
