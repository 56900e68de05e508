package hgt

import "github.com/westphae/geomag/pkg/egm96"

// GeoidOffset returns the EGM96 geoid undulation, in meters, at the centre
// of the raster described by the geotransform. Positive means the geoid lies
// above the WGS84 ellipsoid. A single sample suffices: the undulation varies
// by well under a meter across a 1x1 degree tile.
func GeoidOffset(gt [6]float64, cols, rows int) (float64, error) {
	cx := float64(cols) / 2
	cy := float64(rows) / 2
	lon := gt[0] + gt[1]*cx + gt[2]*cy
	lat := gt[3] + gt[4]*cx + gt[5]*cy

	// At ellipsoid height 0 the MSL height equals minus the undulation.
	loc := egm96.NewLocationGeodetic(lat, lon, 0)
	msl, err := loc.HeightAboveMSL()
	if err != nil {
		return 0, err
	}
	return -msl, nil
}
