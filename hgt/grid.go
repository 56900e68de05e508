package hgt

import (
	"fmt"
	"math"
)

// Void is the sample value written for missing data, the SRTM void marker.
const Void = int16(-32768)

// Standard SRTM tile edges: 3601 samples at 1 arc-second, 1201 at 3 arc-seconds.
const (
	GridSize1Arc = 3601
	GridSize3Arc = 1201
)

// Grid holds one elevation band in raster order: row 0 is the northernmost
// scan line, columns run west to east.
type Grid struct {
	Cols    int
	Rows    int
	Samples []int16 // length Cols*Rows
}

func NewGrid(cols, rows int, samples []int16) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("hgt: invalid grid size %dx%d", cols, rows)
	}
	if len(samples) != cols*rows {
		return nil, fmt.Errorf("hgt: got %d samples, want %d", len(samples), cols*rows)
	}
	return &Grid{Cols: cols, Rows: rows, Samples: samples}, nil
}

// IsStandardSize reports whether both dimensions match a standard SRTM tile.
func IsStandardSize(cols, rows int) bool {
	return isStandardEdge(cols) && isStandardEdge(rows)
}

func isStandardEdge(n int) bool {
	return n == GridSize1Arc || n == GridSize3Arc
}

// ApplyNoData replaces every sample equal to the source's declared no-data
// value with void. GDAL reports the declared value as float64 regardless of
// the band type, so it only participates when it is integral and fits int16;
// a float marker like -3.4e38 can never match an int16 sample.
func (g *Grid) ApplyNoData(noData float64, ok bool, void int16) {
	if !ok {
		return
	}
	nd := int16(noData)
	if float64(nd) != noData {
		return
	}
	for i, v := range g.Samples {
		if v == nd {
			g.Samples[i] = void
		}
	}
}

// ShiftToMSL subtracts the geoid undulation from every valid sample, turning
// WGS84 ellipsoid heights into MSL heights. Void samples are untouched.
func (g *Grid) ShiftToMSL(undulation float64, void int16) {
	for i, v := range g.Samples {
		if v == void {
			continue
		}
		g.Samples[i] = clampSample(math.Round(float64(v) - undulation))
	}
}

// clampSample keeps shifted values inside int16, reserving the minimum for void.
func clampSample(v float64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16+1 {
		return math.MinInt16 + 1
	}
	return int16(v)
}
