package header

import "strings"

// Vendor identifies the acquisition software family that wrote the header.
type Vendor int

const (
	// Zeiss is the Zeiss SmartSEM software (TIFF tag 34118).
	Zeiss Vendor = iota

	// ThermoFisher is the Thermo Fisher Scientific xT software
	// (TIFF tag 34682).
	ThermoFisher
)

func (v Vendor) String() string {
	switch v {
	case Zeiss:
		return "Zeiss"
	case ThermoFisher:
		return "ThermoFisher"
	default:
		return "unknown"
	}
}

// DetectVendor attributes a raw header text block to a supported vendor by
// its structure. xT headers are a sequence of "[Section]" blocks of Key=Value
// lines; SmartSEM headers are pairs of an upper-case tag line ("AP_WD")
// followed by a value line. Returns an UnknownVendorError when neither
// structure is present.
func DetectVendor(text string) (Vendor, error) {
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			return ThermoFisher, nil
		}
		if isZeissTagLine(line) {
			return Zeiss, nil
		}
	}
	return 0, &UnknownVendorError{Reason: "text has neither [Section] blocks nor SmartSEM tag lines"}
}

// splitLines splits header text on CRLF, tolerating bare LF.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// isZeissTagLine reports whether a line looks like a SmartSEM parameter tag
// line such as "AP_WD" or "DP_SCANRATE": a two-letter group code followed by
// an underscore-joined upper-case identifier.
func isZeissTagLine(line string) bool {
	if len(line) < 3 || line[2] != '_' {
		return false
	}
	for _, r := range line {
		if !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '.') {
			return false
		}
	}
	return true
}
