package hgt_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/Ghazanfar373/OpenTopography-tiff-to-hgt/hgt"
	"github.com/Ghazanfar373/OpenTopography-tiff-to-hgt/raster"
)

// degree per sample for a 1201x1201 tile
const step3Arc = 1.0 / 1200

func testSource(cols, rows int, lon, lat float64) *raster.MemorySource {
	samples := make([]int16, cols*rows)
	for i := range samples {
		samples[i] = int16(i % 500)
	}
	return &raster.MemorySource{
		Cols:      cols,
		Rows:      rows,
		Transform: [6]float64{lon, step3Arc, 0, lat, 0, -step3Arc},
		Samples:   samples,
	}
}

func TestConvertScenario(t *testing.T) {
	// 1201x1201 raster at (-121.9, 37.4) written to out.hgt must end up as a
	// 1201*1201*2 byte file named N37W121.hgt.
	dir := t.TempDir()
	out := filepath.Join(dir, "out.hgt")

	src := testSource(1201, 1201, -121.9, 37.4)
	result, err := hgt.Convert(src, hgt.ConvertRequest{Output: out})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	want := filepath.Join(dir, "N37W121.hgt")
	if result.Path != want {
		t.Errorf("Convert() path = %q, want %q", result.Path, want)
	}
	if !result.Renamed {
		t.Error("Convert() renamed = false, want true")
	}
	if result.Tile.FileName() != "N37W121.hgt" {
		t.Errorf("Convert() tile = %q, want %q", result.Tile.FileName(), "N37W121.hgt")
	}

	fi, err := os.Stat(want)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if wantSize := int64(1201 * 1201 * 2); fi.Size() != wantSize {
		t.Errorf("output size = %d, want %d", fi.Size(), wantSize)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("original path %s still exists after rename", out)
	}
}

func TestConvertNoDataSubstitution(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "tile.hgt")

	src := &raster.MemorySource{
		Cols:      2,
		Rows:      2,
		Transform: [6]float64{10.5, step3Arc, 0, -5.5, 0, -step3Arc},
		NoDataVal: 9999,
		HasNoData: true,
		Samples:   []int16{100, 9999, 9999, 200},
	}

	result, err := hgt.Convert(src, hgt.ConvertRequest{Output: out})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.Path != filepath.Join(dir, "S05E010.hgt") {
		t.Errorf("Convert() path = %q, want S05E010.hgt in %s", result.Path, dir)
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := []byte{
		0x00, 0x64, // 100
		0x80, 0x00, // void
		0x80, 0x00, // void
		0x00, 0xC8, // 200
	}
	if !bytes.Equal(data, want) {
		t.Errorf("output = % X, want % X", data, want)
	}
}

func TestConvertKeepName(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "tile.hgt")

	src := testSource(4, 4, -121.9, 37.4)
	result, err := hgt.Convert(src, hgt.ConvertRequest{Output: out, KeepName: true})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if result.Path != out {
		t.Errorf("Convert() path = %q, want %q", result.Path, out)
	}
	if result.Renamed {
		t.Error("Convert() renamed = true, want false")
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output missing at original path: %v", err)
	}
}

func TestConvertAlreadyNamed(t *testing.T) {
	// Output already carries the derived name: no rename happens.
	dir := t.TempDir()
	out := filepath.Join(dir, "N37W121.hgt")

	src := testSource(4, 4, -121.9, 37.4)
	result, err := hgt.Convert(src, hgt.ConvertRequest{Output: out})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if result.Path != out {
		t.Errorf("Convert() path = %q, want %q", result.Path, out)
	}
	if result.Renamed {
		t.Error("Convert() renamed = true, want false")
	}
}

func TestConvertNonStandardSizeWarnsAndStillWrites(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	dir := t.TempDir()
	out := filepath.Join(dir, "odd.hgt")

	src := testSource(1000, 1000, 5.2, 60.9)
	result, err := hgt.Convert(src, hgt.ConvertRequest{Output: out})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	fi, err := os.Stat(result.Path)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if want := int64(1000 * 1000 * 2); fi.Size() != want {
		t.Errorf("output size = %d, want %d", fi.Size(), want)
	}

	if !hasWarning(hook, "Non-standard SRTM dimensions") {
		t.Error("Convert() emitted no dimension warning for 1000x1000")
	}
}

func TestConvertStandardSizeIsSilent(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	dir := t.TempDir()
	out := filepath.Join(dir, "out.hgt")

	if _, err := hgt.Convert(testSource(1201, 1201, -121.9, 37.4), hgt.ConvertRequest{Output: out}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			t.Errorf("Convert() warned for a 1201x1201 grid: %q", e.Message)
		}
	}
}

func TestConvertRenameFailureKeepsOriginal(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	dir := t.TempDir()
	out := filepath.Join(dir, "out.hgt")
	// A directory squatting on the derived name makes the rename fail.
	if err := os.Mkdir(filepath.Join(dir, "N37W121.hgt"), 0o755); err != nil {
		t.Fatal(err)
	}

	src := testSource(4, 4, -121.9, 37.4)
	result, err := hgt.Convert(src, hgt.ConvertRequest{Output: out})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if result.Path != out {
		t.Errorf("Convert() path = %q, want original %q", result.Path, out)
	}
	if result.Renamed {
		t.Error("Convert() renamed = true, want false")
	}
	fi, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output missing at original path: %v", err)
	}
	if want := int64(4 * 4 * 2); fi.Size() != want {
		t.Errorf("output size = %d, want %d", fi.Size(), want)
	}
	if !hasWarning(hook, "Could not rename") {
		t.Error("Convert() emitted no warning for the failed rename")
	}
}

func hasWarning(hook *test.Hook, substr string) bool {
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestConvertIdempotent(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.hgt")

	first, err := hgt.Convert(testSource(16, 16, -121.9, 37.4), hgt.ConvertRequest{Output: out})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	a, err := os.ReadFile(first.Path)
	if err != nil {
		t.Fatalf("read first output: %v", err)
	}

	second, err := hgt.Convert(testSource(16, 16, -121.9, 37.4), hgt.ConvertRequest{Output: out})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	b, err := os.ReadFile(second.Path)
	if err != nil {
		t.Fatalf("read second output: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Error("repeated conversion produced different bytes")
	}
}

func TestConvertInvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		src  raster.Source
		req  hgt.ConvertRequest
	}{
		{
			name: "nil source",
			src:  nil,
			req:  hgt.ConvertRequest{Output: "out.hgt"},
		},
		{
			name: "empty output path",
			src:  testSource(4, 4, 0, 0),
			req:  hgt.ConvertRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := hgt.Convert(tt.src, tt.req); err == nil {
				t.Error("Convert() error = nil, want error")
			}
		})
	}
}

func TestConvertUnwritablePath(t *testing.T) {
	src := testSource(4, 4, 0, 0)
	_, err := hgt.Convert(src, hgt.ConvertRequest{
		Output: filepath.Join(t.TempDir(), "no", "such", "dir", "out.hgt"),
	})
	if err == nil {
		t.Error("Convert() error = nil, want I/O error")
	}
}
