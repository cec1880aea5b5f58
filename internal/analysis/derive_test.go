package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/user/imf_analyzer_go/internal/parser"
)

// makeTestData builds a small dataset with hand-picked vector components.
func makeTestData(t *testing.T) *parser.ImfData {
	t.Helper()
	d := parser.NewImfData("test", 3)
	d.SetField("bx", []float64{3, 0, 1})
	d.SetField("by", []float64{4, 0, -2})
	d.SetField("bz", []float64{0, 1, 2})
	d.SetField("vx", []float64{-400, -450, -500})
	d.SetField("vy", []float64{0, 30, -20})
	d.SetField("vz", []float64{0, -40, 10})
	return d
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestFieldMagnitude(t *testing.T) {
	d := makeTestData(t)
	if err := FieldMagnitude(d); err != nil {
		t.Fatalf("FieldMagnitude: %v", err)
	}
	b := d.Field("b")
	if !almostEqual(b[0], 5) {
		t.Errorf("b[0] = %v, want 5 for (3,4,0)", b[0])
	}
	if !almostEqual(b[1], 1) {
		t.Errorf("b[1] = %v, want 1 for (0,0,1)", b[1])
	}
}

func TestVelocityMagnitude(t *testing.T) {
	d := makeTestData(t)
	if err := VelocityMagnitude(d); err != nil {
		t.Fatalf("VelocityMagnitude: %v", err)
	}
	v := d.Field("v")
	if !almostEqual(v[0], 400) {
		t.Errorf("v[0] = %v, want 400 for (-400,0,0)", v[0])
	}
	if !almostEqual(v[1], math.Sqrt(450*450+30*30+40*40)) {
		t.Errorf("v[1] = %v, want sqrt(450^2+30^2+40^2)", v[1])
	}
}

func TestClockAngleBoundaries(t *testing.T) {
	d := parser.NewImfData("test", 2)
	d.SetField("by", []float64{0, 0})
	d.SetField("bz", []float64{1, -1})
	if err := ClockAngle(d); err != nil {
		t.Fatalf("ClockAngle: %v", err)
	}
	clock := d.Field("clock")
	if !almostEqual(clock[0], 0) {
		t.Errorf("northward clock = %v, want 0", clock[0])
	}
	if !almostEqual(clock[1], math.Pi) {
		t.Errorf("southward clock = %v, want pi", clock[1])
	}
}

func TestDerivedFieldsIdempotent(t *testing.T) {
	d := makeTestData(t)
	// A caller-supplied override must survive the calculator untouched.
	override := []float64{10, 20, 30}
	d.SetField("b", override)
	if err := FieldMagnitude(d); err != nil {
		t.Fatalf("FieldMagnitude: %v", err)
	}
	b := d.Field("b")
	for i := range override {
		if b[i] != override[i] {
			t.Fatalf("b[%d] = %v, override %v was recomputed", i, b[i], override[i])
		}
	}
}

func TestEpsilonDependencyClosure(t *testing.T) {
	// Epsilon alone must match epsilon after precomputing the
	// prerequisites, whatever their order.
	direct := makeTestData(t)
	if err := Epsilon(direct); err != nil {
		t.Fatalf("Epsilon: %v", err)
	}

	manual := makeTestData(t)
	if err := ClockAngle(manual); err != nil {
		t.Fatalf("ClockAngle: %v", err)
	}
	if err := VelocityMagnitude(manual); err != nil {
		t.Fatalf("VelocityMagnitude: %v", err)
	}
	if err := FieldMagnitude(manual); err != nil {
		t.Fatalf("FieldMagnitude: %v", err)
	}
	if err := Epsilon(manual); err != nil {
		t.Fatalf("Epsilon: %v", err)
	}

	de, me := direct.Field("epsilon"), manual.Field("epsilon")
	for i := range de {
		if de[i] != me[i] {
			t.Errorf("epsilon[%d]: direct %v != precomputed %v", i, de[i], me[i])
		}
	}
}

func TestEpsilonValue(t *testing.T) {
	// Purely southward field: clock = pi, sin(clock/2)^4 = 1, so
	// epsilon = conv * v * b^2 exactly.
	d := parser.NewImfData("test", 1)
	d.SetField("bx", []float64{0})
	d.SetField("by", []float64{0})
	d.SetField("bz", []float64{-5})
	d.SetField("vx", []float64{-400})
	d.SetField("vy", []float64{0})
	d.SetField("vz", []float64{0})
	if err := Epsilon(d); err != nil {
		t.Fatalf("Epsilon: %v", err)
	}

	conv := 1000 * 1e-9 * 1e-9 / (4 * math.Pi * 1e-7)
	want := conv * 400 * 25
	if got := d.Field("epsilon")[0]; !almostEqual(got, want) {
		t.Errorf("epsilon = %v, want %v", got, want)
	}
}

func TestEpsilonMissingBaseField(t *testing.T) {
	// A bare dataset, not built by the loader, carries only the fields
	// set on it.
	d := &parser.ImfData{File: "test", Time: make([]time.Time, 1)}
	d.SetField("bx", []float64{1})
	if err := Epsilon(d); err == nil {
		t.Fatal("expected an error for missing base fields")
	}
}
