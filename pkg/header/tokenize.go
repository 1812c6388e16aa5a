package header

import "strings"

// RawLine is one key/value pair recovered from the header text, before any
// normalization. Lines are produced in original header order.
type RawLine struct {
	// Key is the raw parameter name. For xT headers it is qualified with
	// its section, e.g. "EBeam.StageX"; for SmartSEM headers it is the
	// plain name from the value line, e.g. "Stage at X".
	Key string

	// Value is the raw value string, whitespace-trimmed.
	Value string

	// Group is the vendor-side grouping the pair appeared under: the
	// two-letter SmartSEM parameter class ("DP", "AP", "SV") or the xT
	// section name. Kept for diagnostics only.
	Group string
}

// Tokenize splits raw header text into an ordered sequence of key/value
// lines using the given vendor's layout rules. Unparseable lines are skipped;
// a MalformedHeaderError is returned only when the text contains none of the
// vendor's structural markers at all.
func Tokenize(vendor Vendor, text string) ([]RawLine, error) {
	switch vendor {
	case Zeiss:
		return tokenizeZeiss(text)
	case ThermoFisher:
		return tokenizeThermoFisher(text)
	default:
		return nil, &UnknownVendorError{Reason: "unsupported vendor"}
	}
}

// tokenizeZeiss scans a SmartSEM header. The format is pairs of lines: an
// upper-case tag line such as "AP_WD" naming the parameter and its class,
// followed by the display line "WD = 4.953 mm". Older versions delimit some
// display lines with the first ':' instead of '='. Anything before the first
// tag line (counters, empty lines) is ignored.
func tokenizeZeiss(text string) ([]RawLine, error) {
	lines := splitLines(text)

	var raw []RawLine
	sawTag := false
	for i := 0; i+1 < len(lines); {
		tag := strings.TrimSpace(lines[i])
		if !isZeissTagLine(tag) {
			i++
			continue
		}
		sawTag = true

		key, value, ok := splitZeissDisplayLine(lines[i+1])
		if !ok {
			// Tag line without a parseable display line; resync on
			// the next tag line.
			i++
			continue
		}
		raw = append(raw, RawLine{Key: key, Value: value, Group: tag[:2]})
		i += 2
	}

	if !sawTag {
		return nil, &MalformedHeaderError{Vendor: Zeiss, Reason: "no SmartSEM tag lines found"}
	}
	return raw, nil
}

// splitZeissDisplayLine splits "WD = 4.953 mm" or "Time :10:06:31" into key
// and value. '=' wins over ':' so that time-of-day values keep their colons.
func splitZeissDisplayLine(line string) (key, value string, ok bool) {
	if k, v, found := strings.Cut(line, "="); found {
		return strings.TrimSpace(k), strings.TrimSpace(v), true
	}
	if k, v, found := strings.Cut(line, ":"); found {
		return strings.TrimSpace(k), strings.TrimSpace(v), true
	}
	return "", "", false
}

// tokenizeThermoFisher scans an xT header: "[Section]" lines open a section
// and the "Key=Value" lines below belong to it. Sections are nominally
// separated by blank lines, but xT versions around 23.3 stop emitting the
// blank line after [HiResIllumination]; scanning by section marker instead
// of by blank-line block handles both layouts.
func tokenizeThermoFisher(text string) ([]RawLine, error) {
	var raw []RawLine
	section := ""
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.Trim(line, "[]")
			continue
		}
		if section == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		raw = append(raw, RawLine{
			Key:   section + "." + strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
			Group: section,
		})
	}

	if section == "" {
		return nil, &MalformedHeaderError{Vendor: ThermoFisher, Reason: "no [Section] markers found"}
	}
	return raw, nil
}
