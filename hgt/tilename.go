package hgt

import "fmt"

// TileName identifies a 1x1 degree SRTM tile by its origin corner.
type TileName struct {
	LatDeg int // origin latitude degrees, absolute value
	LonDeg int // origin longitude degrees, absolute value
	NS     byte
	EW     byte
}

// TileNameFor derives the SRTM tile name from a geotransform origin.
// Degrees are truncated toward zero, matching the legacy converter:
// lat=37.4 -> N37, lat=-0.7 -> N00 (not S01).
func TileNameFor(lon, lat float64) TileName {
	latDeg := int(lat)
	lonDeg := int(lon)

	name := TileName{
		LatDeg: latDeg,
		LonDeg: lonDeg,
		NS:     'N',
		EW:     'E',
	}
	if latDeg < 0 {
		name.NS = 'S'
		name.LatDeg = -latDeg
	}
	if lonDeg < 0 {
		name.EW = 'W'
		name.LonDeg = -lonDeg
	}
	return name
}

// FileStem returns e.g. "N37W122": N/S + 2 latitude digits, E/W + 3 longitude digits.
func (t TileName) FileStem() string {
	return fmt.Sprintf("%c%02d%c%03d", t.NS, t.LatDeg, t.EW, t.LonDeg)
}

// FileName returns the stem with the .hgt extension.
func (t TileName) FileName() string {
	return t.FileStem() + ".hgt"
}
