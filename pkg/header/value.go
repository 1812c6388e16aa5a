// Package header parses the instrument metadata block embedded in SEM image
// files by the Zeiss SmartSEM and Thermo Fisher Scientific xT acquisition
// software. It turns the raw text into a typed, queryable parameter model:
// a full mapping of every recognized line plus a curated grouped view, with
// a derived pixel-size computation on top.
package header

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Value is a single parsed header value. It is either a Measurement (a
// numeric magnitude with a recognized unit) or a Text (an opaque string).
type Value interface {
	fmt.Stringer

	isValue()
}

// Measurement is a numeric header value with its unit, e.g. 4.953 mm.
type Measurement struct {
	// Magnitude is the numeric part of the value.
	Magnitude float64

	// Unit is the unit symbol exactly as recognized, e.g. "mm", "kV", "µm".
	// It is empty for bare numbers carrying an implied unit that could not
	// be resolved.
	Unit string
}

func (m Measurement) isValue() {}

func (m Measurement) String() string {
	s := strconv.FormatFloat(m.Magnitude, 'g', -1, 64)
	if m.Unit == "" {
		return s
	}
	return s + " " + m.Unit
}

// Text is a header value that is not a unit-carrying quantity: free text,
// dates, times, on/off flags, compound strings like "1024 * 768".
type Text string

func (t Text) isValue() {}

func (t Text) String() string { return string(t) }

// recognizedUnits is the fixed unit vocabulary for Measurement detection.
// Only an exact match of the token following the number counts; this keeps
// date and time strings (whose separators never match a unit) out of the
// Measurement class.
var recognizedUnits = map[string]bool{
	// length
	"pm": true, "nm": true, "µm": true, "um": true, "mm": true, "cm": true, "m": true,
	// angle
	"mrad": true, "rad": true, "deg": true, "Deg": true, "°": true,
	// voltage and energy
	"µV": true, "mV": true, "V": true, "kV": true, "eV": true, "keV": true,
	// current
	"fA": true, "pA": true, "nA": true, "µA": true, "uA": true, "mA": true, "A": true,
	// time and frequency
	"ns": true, "µs": true, "us": true, "ms": true, "s": true, "Hz": true, "kHz": true,
	// pressure
	"Pa": true, "kPa": true, "mbar": true, "bar": true, "Torr": true,
	// ratio, magnification, temperature
	"%": true, "X": true, "KX": true, "K": true,
}

// valuePattern splits a candidate string into a leading signed number
// (integer, decimal or scientific notation) and a single trailing token.
var valuePattern = regexp.MustCompile(`^([+-]?(?:\d+(?:\.\d+)?|\.\d+)(?:[eE][+-]?\d+)?)\s*(\S*)$`)

// ParseValue classifies a raw header value string. Strings of the form
// "<number> <recognized unit>" (with or without separating whitespace) become
// a Measurement; everything else, including dates, times and bare numbers,
// becomes a Text holding the whitespace-trimmed original. ParseValue never
// fails: unparseable numeric-looking strings simply fall back to Text.
func ParseValue(raw string) Value {
	s := strings.TrimSpace(raw)

	matches := valuePattern.FindStringSubmatch(s)
	if matches == nil {
		return Text(s)
	}

	unit := matches[2]
	if !recognizedUnits[unit] {
		return Text(s)
	}

	magnitude, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return Text(s)
	}

	return Measurement{Magnitude: magnitude, Unit: unit}
}

// parseImplied classifies a raw value like ParseValue but additionally
// promotes bare numbers to a Measurement carrying the given implied unit.
// The xT software writes plain SI magnitudes with no unit text; the vendor
// mapping table supplies the unit each such field is calibrated in.
func parseImplied(raw, impliedUnit string) Value {
	v := ParseValue(raw)
	if impliedUnit == "" {
		return v
	}
	if _, ok := v.(Measurement); ok {
		return v
	}

	s := strings.TrimSpace(raw)
	magnitude, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return Measurement{Magnitude: magnitude, Unit: impliedUnit}
}
