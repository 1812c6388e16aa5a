package header

import (
	"math"
	"strings"
)

// Parse tokenizes and normalizes a raw header text block in one step.
func Parse(vendor Vendor, text string) (*Params, error) {
	raw, err := Tokenize(vendor, text)
	if err != nil {
		return nil, err
	}
	return Normalize(vendor, raw), nil
}

// ParseAuto detects the vendor from the header structure and parses it.
func ParseAuto(text string) (*Params, error) {
	vendor, err := DetectVendor(text)
	if err != nil {
		return nil, err
	}
	return Parse(vendor, text)
}

// Normalize maps raw key/value lines onto the canonical parameter vocabulary
// using the vendor's static table. Raw keys without a table entry are kept
// under their raw name in the full view (they are never dropped) but stay out
// of the grouped view. When several raw keys land on the same canonical name,
// the first occurrence wins; the only override is the SmartSEM dwell-time
// derivation below. Normalize is a pure function of its arguments and its
// output ordering depends only on header appearance order.
func Normalize(vendor Vendor, raw []RawLine) *Params {
	p := &Params{
		vendor: vendor,
		values: make(map[string]Value, len(raw)),
	}

	// xT keeps per-detector settings in a section named after the active
	// detector; resolve that name up front so those keys can be mapped.
	detector := ""
	if vendor == ThermoFisher {
		for _, line := range raw {
			if line.Key == "Detectors.Name" {
				detector = strings.TrimSpace(line.Value)
				break
			}
		}
	}

	for _, line := range raw {
		name, value := resolve(vendor, detector, line)
		if _, seen := p.values[name]; seen {
			continue
		}
		p.names = append(p.names, name)
		p.values[name] = value
	}

	if vendor == Zeiss {
		applyZeissDwellTime(p)
	}

	if v, ok := p.values[ParamSoftwareVersion]; ok {
		p.softwareVersion = v.String()
	}

	return p
}

// resolve maps one raw line to its canonical name and parsed value, falling
// back to the raw key when the vendor table has no entry.
func resolve(vendor Vendor, detector string, line RawLine) (string, Value) {
	var table map[string]mapping
	switch vendor {
	case Zeiss:
		table = zeissTable
	case ThermoFisher:
		table = tfTable
	}

	if m, ok := table[line.Key]; ok {
		return m.name, parseImplied(line.Value, m.unit)
	}

	// Per-detector section keys, e.g. "T1.Contrast" when Detectors.Name
	// is "T1".
	if vendor == ThermoFisher && detector != "" {
		if key, ok := strings.CutPrefix(line.Key, detector+"."); ok {
			if m, ok := tfDetectorTable[key]; ok {
				return m.name, parseImplied(line.Value, m.unit)
			}
		}
	}

	return line.Key, ParseValue(line.Value)
}

// applyZeissDwellTime replaces the dwell time reported by SmartSEM with the
// value computed from the scan speed. The header's own Dwell Time field is
// pinned at 100 ns regardless of the actual scan speed; the SmartSEM help
// table gives the real relation dwell = 1e-7 * 2^(speed-1) seconds.
func applyZeissDwellTime(p *Params) {
	speed, err := p.Int(ParamScanSpeed)
	if err != nil || speed < 1 {
		return
	}
	dwell := Measurement{
		Magnitude: 1.0e-7 * math.Pow(2, float64(speed-1)),
		Unit:      "s",
	}
	if _, ok := p.values[ParamDwellTime]; !ok {
		p.names = append(p.names, ParamDwellTime)
	}
	p.values[ParamDwellTime] = dwell
}
