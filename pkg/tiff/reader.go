// Package tiff reads the vendor-private header tag out of SEM TIFF files.
// It is deliberately not a TIFF codec: it walks the IFD chain far enough to
// find the ASCII payload of tag 34118 (Zeiss SmartSEM) or 34682 (Thermo
// Fisher xT) and hands the text to the header parser. Pixel data is never
// decoded.
package tiff

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"semio/pkg/header"
)

// Vendor-private TIFF tags carrying the acquisition metadata block.
const (
	tagZeiss        = 34118
	tagThermoFisher = 34682
)

// TIFF field types whose payload is a byte string.
const (
	typeASCII     = 2
	typeUndefined = 7
)

// ReadHeader opens an SEM image file and returns the embedded metadata text
// together with the vendor it identifies. Only .tif/.tiff files are accepted.
func ReadHeader(path string) (header.Vendor, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
	default:
		return 0, "", fmt.Errorf("%s: not a .tif file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, "", fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	vendor, text, err := ReadHeaderFrom(f)
	if err != nil {
		return 0, "", fmt.Errorf("%s: %w", path, err)
	}
	return vendor, text, nil
}

// ReadHeaderFrom extracts the vendor header tag from TIFF data supplied by
// the caller. It fails when the data is not a TIFF, when neither vendor tag
// is present, or when both are (an indeterminate file).
func ReadHeaderFrom(r io.Reader) (header.Vendor, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, "", fmt.Errorf("reading image: %w", err)
	}
	return readHeaderBytes(data)
}

func readHeaderBytes(data []byte) (header.Vendor, string, error) {
	if len(data) < 8 {
		return 0, "", fmt.Errorf("file too short for a TIFF")
	}

	var order binary.ByteOrder
	switch {
	case data[0] == 'I' && data[1] == 'I':
		order = binary.LittleEndian
	case data[0] == 'M' && data[1] == 'M':
		order = binary.BigEndian
	default:
		return 0, "", fmt.Errorf("not a TIFF: bad byte-order mark")
	}
	if order.Uint16(data[2:4]) != 42 {
		return 0, "", fmt.Errorf("not a TIFF: bad magic number")
	}

	type match struct {
		vendor header.Vendor
		text   string
	}
	var matches []match

	// Walk the IFD chain; the vendor tags sit in IFD0 in practice, but
	// following the chain costs nothing and tolerates oddly written files.
	// The chain length is capped to survive corrupt next-IFD pointers.
	offset := order.Uint32(data[4:8])
	for ifd := 0; offset != 0 && ifd < 64; ifd++ {
		if int(offset)+2 > len(data) {
			return 0, "", fmt.Errorf("IFD offset out of bounds")
		}
		count := int(order.Uint16(data[offset : offset+2]))
		entry := offset + 2

		for i := 0; i < count; i++ {
			if int(entry)+12 > len(data) {
				break
			}
			tag := order.Uint16(data[entry : entry+2])
			if tag == tagZeiss || tag == tagThermoFisher {
				text, err := entryString(data, entry, order)
				if err != nil {
					return 0, "", err
				}
				vendor := header.Zeiss
				if tag == tagThermoFisher {
					vendor = header.ThermoFisher
				}
				matches = append(matches, match{vendor: vendor, text: text})
			}
			entry += 12
		}

		next := entry
		if int(next)+4 > len(data) {
			break
		}
		offset = order.Uint32(data[next : next+4])
	}

	switch len(matches) {
	case 0:
		return 0, "", &header.UnknownVendorError{
			Reason: fmt.Sprintf("neither tag %d nor %d is present", tagZeiss, tagThermoFisher),
		}
	case 1:
		return matches[0].vendor, matches[0].text, nil
	default:
		return 0, "", &header.UnknownVendorError{
			Reason: fmt.Sprintf("both tags %d and %d are present, image type is indeterminate", tagZeiss, tagThermoFisher),
		}
	}
}

// entryString decodes the byte-string payload of one IFD entry. Payloads of
// four bytes or fewer live inline in the entry; longer ones live at the
// recorded offset.
func entryString(data []byte, entry uint32, order binary.ByteOrder) (string, error) {
	fieldType := order.Uint16(data[entry+2 : entry+4])
	if fieldType != typeASCII && fieldType != typeUndefined {
		return "", fmt.Errorf("header tag has field type %d, want ASCII", fieldType)
	}
	n := order.Uint32(data[entry+4 : entry+8])

	var payload []byte
	if n <= 4 {
		payload = data[entry+8 : entry+8+n]
	} else {
		off := order.Uint32(data[entry+8 : entry+12])
		if int(off)+int(n) > len(data) {
			return "", fmt.Errorf("header tag payload out of bounds")
		}
		payload = data[off : off+n]
	}

	return strings.TrimRight(string(payload), "\x00 \t\r\n"), nil
}
