package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"semio/pkg/header"
)

var testHeader = strings.Join([]string{
	"AP_WD",
	"WD = 4.953 mm",
	"AP_IMAGE_PIXEL_SIZE",
	"Image Pixel Size = 120.0 µm",
	"AP_DATE",
	"Date :25 Nov 2020",
	"SV_VERSION",
	"Version = V06.03.00",
}, "\r\n")

func parseTestHeader(t *testing.T) *header.Params {
	t.Helper()
	p, err := header.Parse(header.Zeiss, testHeader)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return p
}

// TestRender verifies the flat rendering format and its ordering.
func TestRender(t *testing.T) {
	p := parseTestHeader(t)

	var buf bytes.Buffer
	if err := Render(&buf, p, false); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if lines[0] != "stage.working_distance = 4.953 mm" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[2] != "general.date = 25 Nov 2020" {
		t.Errorf("third line = %q", lines[2])
	}
}

// TestRenderGrouped verifies the nested rendering under group headings.
func TestRenderGrouped(t *testing.T) {
	p := parseTestHeader(t)

	var buf bytes.Buffer
	if err := Render(&buf, p, true); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	generalAt := strings.Index(out, "General parameters:")
	imageAt := strings.Index(out, "Image parameters:")
	stageAt := strings.Index(out, "Stage parameters:")
	if generalAt < 0 || imageAt < 0 || stageAt < 0 {
		t.Fatalf("missing group headings:\n%s", out)
	}
	if !(generalAt < imageAt && imageAt < stageAt) {
		t.Errorf("groups out of order:\n%s", out)
	}
	if !strings.Contains(out, "\timage.pixel_size = 120 µm\n") {
		t.Errorf("missing indented pixel size line:\n%s", out)
	}
}

// TestDumpJSONRoundTrip verifies that a JSON dump re-loads to the same
// mapping of name to (value, unit) or text, including the image path key and
// the non-ASCII µ unit symbol.
func TestDumpJSONRoundTrip(t *testing.T) {
	p := parseTestHeader(t)
	path := filepath.Join(t.TempDir(), "params.json")

	opts := DumpOptions{Format: JSON, ImagePath: "/data/Sample_01.tif"}
	if err := Dump(path, p, opts); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var loaded map[string]any
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("re-loading dump: %v", err)
	}

	if loaded["image_path"] != "/data/Sample_01.tif" {
		t.Errorf("image_path = %v", loaded["image_path"])
	}

	ps, ok := loaded["image.pixel_size"].(map[string]any)
	if !ok {
		t.Fatalf("image.pixel_size = %#v, want object", loaded["image.pixel_size"])
	}
	if ps["value"] != 120.0 || ps["unit"] != "µm" {
		t.Errorf("pixel size = %v %v, want 120 µm", ps["value"], ps["unit"])
	}

	if loaded["general.date"] != "25 Nov 2020" {
		t.Errorf("date = %v", loaded["general.date"])
	}
}

// TestDumpGroupedYAML verifies that the grouped YAML document nests
// group -> name -> value exactly.
func TestDumpGroupedYAML(t *testing.T) {
	p := parseTestHeader(t)
	path := filepath.Join(t.TempDir(), "params.yaml")

	if err := Dump(path, p, DumpOptions{Format: YAML, Grouped: true}); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var loaded map[string]map[string]any
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("re-loading dump: %v", err)
	}

	stage, ok := loaded["Stage"]
	if !ok {
		t.Fatalf("no Stage group in %v", loaded)
	}
	wd, ok := stage["stage.working_distance"].(map[string]any)
	if !ok {
		t.Fatalf("working distance = %#v, want object", stage["stage.working_distance"])
	}
	if wd["value"] != 4.953 || wd["unit"] != "mm" {
		t.Errorf("working distance = %v %v, want 4.953 mm", wd["value"], wd["unit"])
	}
}

// TestParseFormat verifies format validation.
func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != JSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat("yaml"); err != nil || f != YAML {
		t.Errorf("ParseFormat(yaml) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}
