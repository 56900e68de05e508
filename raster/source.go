// Package raster isolates the conversion pipeline from the details of
// reading geospatial imagery. The converter only ever sees a Source.
package raster

// A Source exposes the subset of a raster dataset the converter needs:
// dimensions, the affine geotransform, the declared no-data value and the
// elevation band itself.
type Source interface {
	// Size returns the band dimensions in samples.
	Size() (cols, rows int)
	// GeoTransform returns (originX, pxWidth, rotX, originY, rotY, pxHeight).
	GeoTransform() [6]float64
	// NoData returns the declared no-data value, if any.
	NoData() (float64, bool)
	// Read returns the full band in row-major order, northernmost row first,
	// as signed 16-bit samples.
	Read() ([]int16, error)
	Close() error
}
