package raster

import (
	"fmt"
	"math"
	"sync"

	"github.com/airbusgeo/godal"
)

var registerOnce sync.Once

// GDALSource reads band 1 of any GDAL-supported dataset.
type GDALSource struct {
	ds   *godal.Dataset
	band godal.Band
	cols int
	rows int
}

var _ Source = (*GDALSource)(nil)

// Open opens path through GDAL and selects the first band.
func Open(path string) (*GDALSource, error) {
	registerOnce.Do(godal.RegisterInternalDrivers)

	ds, err := godal.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", path, err)
	}
	st := ds.Structure()
	if st.NBands < 1 {
		ds.Close()
		return nil, fmt.Errorf("raster: %s has no usable band", path)
	}
	return &GDALSource{
		ds:   ds,
		band: ds.Bands()[0],
		cols: st.SizeX,
		rows: st.SizeY,
	}, nil
}

func (s *GDALSource) Size() (cols, rows int) { return s.cols, s.rows }

func (s *GDALSource) GeoTransform() [6]float64 {
	gt, err := s.ds.GeoTransform()
	if err != nil {
		// Not georeferenced: fall back to GDAL's identity transform.
		return [6]float64{0, 1, 0, 0, 0, 1}
	}
	return gt
}

func (s *GDALSource) NoData() (float64, bool) { return s.band.NoData() }

// Read pulls the whole band into memory as int16. Floating-point bands are
// read as float64 first so NaN samples can be folded into the no-data value
// before the integer cast destroys them; integer bands cannot hold NaN and
// are read directly.
func (s *GDALSource) Read() ([]int16, error) {
	n := s.cols * s.rows
	out := make([]int16, n)

	dt := s.band.Structure().DataType
	if dt != godal.Float32 && dt != godal.Float64 {
		if err := s.band.Read(0, 0, out, s.cols, s.rows); err != nil {
			return nil, fmt.Errorf("raster: read band: %w", err)
		}
		return out, nil
	}

	buf := make([]float64, n)
	if err := s.band.Read(0, 0, buf, s.cols, s.rows); err != nil {
		return nil, fmt.Errorf("raster: read band: %w", err)
	}
	nd, ok := s.band.NoData()
	if !ok {
		nd = -32768 // SRTM void
	}
	for i, v := range buf {
		if math.IsNaN(v) {
			v = nd
		}
		out[i] = clampInt16(v)
	}
	return out, nil
}

func (s *GDALSource) Close() error { return s.ds.Close() }

func clampInt16(v float64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
