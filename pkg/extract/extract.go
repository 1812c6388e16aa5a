// Package extract ties the TIFF container reader to the header parser,
// providing the file-path entry points for callers that do not want to deal
// with raw header text themselves.
package extract

import (
	"fmt"

	"semio/pkg/header"
	"semio/pkg/tiff"
)

// Extract reads an SEM image file and parses its embedded metadata into a
// parameter model.
func Extract(path string) (*header.Params, error) {
	vendor, text, err := tiff.ReadHeader(path)
	if err != nil {
		return nil, err
	}
	p, err := header.Parse(vendor, text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// PixelSizeFromFile returns the calibrated pixel size of an SEM image file:
// a length per pixel for standard scans, degrees per pixel for rocking-beam
// electron-channeling patterns.
func PixelSizeFromFile(path string) (header.PixelSize, error) {
	p, err := Extract(path)
	if err != nil {
		return header.PixelSize{}, err
	}
	return header.ResolvePixelSize(p)
}

// PixelSizeFromHeader resolves the pixel size from raw header text, detecting
// the vendor from the text structure.
func PixelSizeFromHeader(text string) (header.PixelSize, error) {
	p, err := header.ParseAuto(text)
	if err != nil {
		return header.PixelSize{}, err
	}
	return header.ResolvePixelSize(p)
}
