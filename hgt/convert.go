package hgt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/Ghazanfar373/OpenTopography-tiff-to-hgt/raster"
)

// ConvertRequest contains parameters for a raster-to-HGT conversion
type ConvertRequest struct {
	Output string // path the tile is written to
	// Void is the value substituted for missing samples. The zero value
	// selects the SRTM default -32768, so 0 itself cannot be the sentinel.
	Void     int16
	KeepName bool // skip the rename to the derived SRTM name
	MSL      bool // shift WGS84 ellipsoid heights to MSL via EGM96
}

// ConvertResult contains the outcome of a conversion
type ConvertResult struct {
	Path    string // final on-disk location of the tile
	Cols    int
	Rows    int
	Tile    TileName
	Renamed bool // output ended up under the derived SRTM name
}

// Convert reads the elevation band from src and writes it as an SRTM HGT
// tile: dimension check, no-data substitution, big-endian dump, then a
// best-effort rename to the tile name derived from the geotransform origin.
// This is a reusable business logic function that can be called from the
// CLI, batch processors, or other contexts.
func Convert(src raster.Source, req ConvertRequest) (ConvertResult, error) {
	if src == nil {
		return ConvertResult{}, fmt.Errorf("source is nil")
	}
	if req.Output == "" {
		return ConvertResult{}, fmt.Errorf("output path is empty")
	}

	// Set defaults
	if req.Void == 0 {
		req.Void = Void
	}

	cols, rows := src.Size()
	if !IsStandardSize(cols, rows) {
		logrus.Warnf("Non-standard SRTM dimensions %dx%d (expected 1201x1201 or 3601x3601); downstream tools may not read the tile correctly", cols, rows)
	}

	samples, err := src.Read()
	if err != nil {
		return ConvertResult{}, fmt.Errorf("read elevation band: %w", err)
	}
	grid, err := NewGrid(cols, rows, samples)
	if err != nil {
		return ConvertResult{}, err
	}

	nd, ok := src.NoData()
	grid.ApplyNoData(nd, ok, req.Void)

	gt := src.GeoTransform()
	tile := TileNameFor(gt[0], gt[3])

	if req.MSL {
		undulation, err := GeoidOffset(gt, cols, rows)
		if err != nil {
			// Same fallback as the raycast path: keep heights as-is.
			logrus.Warnf("EGM96 lookup failed, heights left unshifted: %v", err)
		} else {
			logrus.Debugf("EGM96 undulation at tile centre: %.2f m", undulation)
			grid.ShiftToMSL(undulation, req.Void)
		}
	}

	if err := grid.WriteFile(req.Output); err != nil {
		return ConvertResult{}, fmt.Errorf("write %s: %w", req.Output, err)
	}
	logrus.Infof("HGT data written to %s", req.Output)

	res := ConvertResult{Path: req.Output, Cols: cols, Rows: rows, Tile: tile}
	if req.KeepName {
		return res, nil
	}

	target := filepath.Join(filepath.Dir(req.Output), tile.FileName())
	if target == req.Output {
		return res, nil
	}
	if err := os.Rename(req.Output, target); err != nil {
		// The written file stays usable at its original path.
		logrus.Warnf("Could not rename %s to %s: %v; rename it manually to follow SRTM conventions", req.Output, target, err)
		return res, nil
	}
	logrus.Infof("Renamed to standard SRTM name %s", target)
	res.Path = target
	res.Renamed = true
	return res, nil
}
