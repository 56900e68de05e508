package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Ghazanfar373/OpenTopography-tiff-to-hgt/hgt"
	"github.com/Ghazanfar373/OpenTopography-tiff-to-hgt/raster"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "Show raster properties relevant to HGT conversion",
	Long: `Show the dimensions, geographic origin, pixel size and no-data value of a
raster, and whether its dimensions match a standard SRTM tile.

Examples:
  hgtconv info srtm_12_05.tif`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := raster.Open(args[0])
		if err != nil {
			logrus.Fatalf("Failed to open raster: %v", err)
		}
		defer src.Close()

		cols, rows := src.Size()
		gt := src.GeoTransform()

		fmt.Printf("Size: %dx%d\n", cols, rows)
		fmt.Printf("Origin: %.6f, %.6f\n", gt[0], gt[3])
		fmt.Printf("Pixel size: %.10f x %.10f\n", gt[1], gt[5])
		if nd, ok := src.NoData(); ok {
			fmt.Printf("No-data value: %g\n", nd)
		} else {
			fmt.Println("No-data value: none")
		}
		fmt.Printf("Tile: %s\n", hgt.TileNameFor(gt[0], gt[3]).FileName())
		if hgt.IsStandardSize(cols, rows) {
			fmt.Println("Standard SRTM dimensions: yes")
		} else {
			fmt.Println("Standard SRTM dimensions: no (expected 1201x1201 or 3601x3601)")
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
