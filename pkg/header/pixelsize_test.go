package header

import (
	"errors"
	"math"
	"testing"
)

// TestResolvePixelSize_Standard verifies the linear formula: scan field
// width divided by the horizontal pixel count, unit inherited.
func TestResolvePixelSize_Standard(t *testing.T) {
	raw := []RawLine{
		{Key: "EBeam.HFW", Value: "0.0001", Group: "EBeam"},
		{Key: "Image.ResolutionX", Value: "1024", Group: "Image"},
	}
	p := Normalize(ThermoFisher, raw)
	// Re-state the field width as 100 µm for an exact decimal check.
	p.values[ParamFieldWidth] = Measurement{Magnitude: 100, Unit: "µm"}

	ps, err := ResolvePixelSize(p)
	if err != nil {
		t.Fatalf("ResolvePixelSize failed: %v", err)
	}
	if ps.Value != 0.09765625 {
		t.Errorf("pixel size = %v, want 0.09765625", ps.Value)
	}
	if ps.Unit != "µm" {
		t.Errorf("pixel size unit = %q, want µm", ps.Unit)
	}
}

// TestResolvePixelSize_ThermoFisherHeader verifies pixel size resolution on
// the full xT fixture, where the field width is a bare SI magnitude.
func TestResolvePixelSize_ThermoFisherHeader(t *testing.T) {
	p, err := Parse(ThermoFisher, tfHeader)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ps, err := ResolvePixelSize(p)
	if err != nil {
		t.Fatalf("ResolvePixelSize failed: %v", err)
	}
	want := 0.000104 / 1536
	if math.Abs(ps.Value-want) > 1e-18 {
		t.Errorf("pixel size = %v, want %v", ps.Value, want)
	}
	if ps.Unit != "m" {
		t.Errorf("pixel size unit = %q, want m", ps.Unit)
	}
}

// TestResolvePixelSize_RockingBeam verifies that channeling-pattern images
// switch to the angular formula and report degrees. 0.2 rad over 1000 pixels
// is 2e-4 rad, which is 0.011459155902616464 degrees per pixel.
func TestResolvePixelSize_RockingBeam(t *testing.T) {
	p, err := Parse(ThermoFisher, tfChannelingHeader)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ps, err := ResolvePixelSize(p)
	if err != nil {
		t.Fatalf("ResolvePixelSize failed: %v", err)
	}
	if ps.Unit != "deg" {
		t.Fatalf("pixel size unit = %q, want deg", ps.Unit)
	}
	if math.Abs(ps.Value-0.011459155902616464) > 1e-15 {
		t.Errorf("pixel size = %v, want 0.011459155902616464", ps.Value)
	}
}

// TestResolvePixelSize_ZeissFallback verifies that SmartSEM headers, which
// carry no scan field width, fall back to the vendor-calibrated image pixel
// size parameter.
func TestResolvePixelSize_ZeissFallback(t *testing.T) {
	p, err := Parse(Zeiss, zeissHeader)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ps, err := ResolvePixelSize(p)
	if err != nil {
		t.Fatalf("ResolvePixelSize failed: %v", err)
	}
	if ps.Value != 111.6 || ps.Unit != "nm" {
		t.Errorf("pixel size = %v %s, want 111.6 nm", ps.Value, ps.Unit)
	}
}

// TestResolvePixelSize_Missing verifies the loud failure when no pixel-size
// source fields are present.
func TestResolvePixelSize_Missing(t *testing.T) {
	p := Normalize(Zeiss, []RawLine{{Key: "WD", Value: "4.0 mm", Group: "AP"}})

	_, err := ResolvePixelSize(p)
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("ResolvePixelSize error = %v, want MissingFieldError", err)
	}

	// Rocking mode flagged but angular field width absent.
	raw := []RawLine{
		{Key: "EBeam.ElectronChannelingPatternIsOn", Value: "On", Group: "EBeam"},
		{Key: "Image.ResolutionX", Value: "1000", Group: "Image"},
	}
	_, err = ResolvePixelSize(Normalize(ThermoFisher, raw))
	if !errors.As(err, &missing) {
		t.Fatalf("rocking-beam error = %v, want MissingFieldError", err)
	}
	if missing.Name != ParamAngularFieldWidth {
		t.Errorf("missing field = %q, want %q", missing.Name, ParamAngularFieldWidth)
	}
}
