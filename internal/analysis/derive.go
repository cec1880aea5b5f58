package analysis

import (
	"fmt"
	"math"

	"github.com/user/imf_analyzer_go/internal/parser"
)

// epsilonConv folds the unit conversions of the Perreault-Akasofu coupling
// formula into one factor: km/s to m/s, nT^2 to T^2, divided by the vacuum
// permeability mu_0. See Perreault, P., and S.-I. Akasofu (1978), A study of
// geomagnetic storms, Geophys. J. R. Astron. Soc., 54, 547.
const (
	mu0         = 4 * math.Pi * 1e-7
	epsilonConv = 1000 * 1e-9 * 1e-9 / mu0
)

// requireFields returns the named columns or an error naming the first
// missing one.
func requireFields(d *parser.ImfData, names ...string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for i, name := range names {
		if !d.Has(name) {
			return nil, fmt.Errorf("required field %q missing from %s", name, d.File)
		}
		cols[i] = d.Field(name)
	}
	return cols, nil
}

// FieldMagnitude computes the magnetic field magnitude sqrt(bx^2+by^2+bz^2)
// and stores it as "b". If "b" is already present the dataset is left
// untouched, so a caller-supplied override is never recomputed.
func FieldMagnitude(d *parser.ImfData) error {
	if d.Has("b") {
		return nil
	}
	cols, err := requireFields(d, "bx", "by", "bz")
	if err != nil {
		return err
	}
	bx, by, bz := cols[0], cols[1], cols[2]

	b := make([]float64, d.Len())
	for i := range b {
		b[i] = math.Sqrt(bx[i]*bx[i] + by[i]*by[i] + bz[i]*bz[i])
	}
	d.SetField("b", b)
	return nil
}

// VelocityMagnitude computes sqrt(vx^2+vy^2+vz^2) and stores it as "v".
func VelocityMagnitude(d *parser.ImfData) error {
	if d.Has("v") {
		return nil
	}
	cols, err := requireFields(d, "vx", "vy", "vz")
	if err != nil {
		return err
	}
	vx, vy, vz := cols[0], cols[1], cols[2]

	v := make([]float64, d.Len())
	for i := range v {
		v[i] = math.Sqrt(vx[i]*vx[i] + vy[i]*vy[i] + vz[i]*vz[i])
	}
	d.SetField("v", v)
	return nil
}

// ClockAngle computes the IMF clock angle atan2(by, bz) in radians and
// stores it as "clock". Zero is purely northward IMF; +-pi is southward.
func ClockAngle(d *parser.ImfData) error {
	if d.Has("clock") {
		return nil
	}
	cols, err := requireFields(d, "by", "bz")
	if err != nil {
		return err
	}
	by, bz := cols[0], cols[1]

	clock := make([]float64, d.Len())
	for i := range clock {
		clock[i] = math.Atan2(by[i], bz[i])
	}
	d.SetField("clock", clock)
	return nil
}

// Epsilon computes the Perreault-Akasofu coupling parameter
// conv * v * b^2 * sin(clock/2)^4 and stores it as "epsilon". The
// prerequisite fields b, v and clock are computed first when absent, so the
// result is independent of the order in which the calculators are called.
func Epsilon(d *parser.ImfData) error {
	if d.Has("epsilon") {
		return nil
	}
	if err := FieldMagnitude(d); err != nil {
		return err
	}
	if err := VelocityMagnitude(d); err != nil {
		return err
	}
	if err := ClockAngle(d); err != nil {
		return err
	}
	b, v, clock := d.Field("b"), d.Field("v"), d.Field("clock")

	eps := make([]float64, d.Len())
	for i := range eps {
		s := math.Sin(clock[i] / 2)
		s2 := s * s
		eps[i] = epsilonConv * v[i] * b[i] * b[i] * s2 * s2
	}
	d.SetField("epsilon", eps)
	return nil
}
