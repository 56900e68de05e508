/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Ghazanfar373/OpenTopography-tiff-to-hgt/hgt"
	"github.com/Ghazanfar373/OpenTopography-tiff-to-hgt/raster"
)

// rootCmd represents the base command; the conversion itself runs here so
// the tool can be invoked as plain `hgtconv input.tif output.hgt`.
var rootCmd = &cobra.Command{
	Use:   "hgtconv <input> <output>",
	Short: "Convert single-band elevation rasters to SRTM HGT tiles",
	Long: `hgtconv converts a single-band elevation raster (GeoTIFF or anything
GDAL reads) into the raw SRTM HGT tile format used by Mission Planner and
other mapping tools.

The elevation band is dumped as big-endian signed 16-bit samples, north row
first, with missing data replaced by the SRTM void value. The output is then
renamed to the standard tile name (e.g. N37W122.hgt) derived from the
raster's geographic origin.

SRTM sources:
  http://srtm.csi.cgiar.org/srtmdata/
  https://e4ftl01.cr.usgs.gov/MEASURES/SRTMGL1.003/

Configuration can be set via environment variables or command-line flags.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := LoadConfig(cmd)
		if cfg.Verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		src, err := raster.Open(args[0])
		if err != nil {
			logrus.Fatalf("Failed to open raster: %v", err)
		}
		defer src.Close()

		result, err := hgt.Convert(src, hgt.ConvertRequest{
			Output:   args[1],
			Void:     cfg.Void,
			KeepName: cfg.KeepName,
			MSL:      cfg.MSL,
		})
		if err != nil {
			logrus.Fatalf("Conversion failed: %v", err)
		}

		fmt.Printf("Tile: %s\n", result.Tile.FileName())
		fmt.Printf("Size: %dx%d (%d bytes)\n", result.Cols, result.Rows, 2*result.Cols*result.Rows)
		fmt.Printf("Written to: %s\n", result.Path)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int("nodata", int(hgt.Void), "Value written for missing samples")
	rootCmd.Flags().Bool("keep-name", false, "Keep the output path instead of renaming to the SRTM tile name")
	rootCmd.Flags().Bool("msl", false, "Shift WGS84 ellipsoid heights to MSL via EGM96")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
