package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Ghazanfar373/OpenTopography-tiff-to-hgt/hgt"
	"github.com/Ghazanfar373/OpenTopography-tiff-to-hgt/raster"
)

// nameCmd represents the name command
var nameCmd = &cobra.Command{
	Use:   "name <input>",
	Short: "Print the SRTM tile name for a raster",
	Long: `Derive the standard SRTM tile name from the raster's geographic origin
without converting anything.

Examples:
  hgtconv name srtm_12_05.tif`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := raster.Open(args[0])
		if err != nil {
			logrus.Fatalf("Failed to open raster: %v", err)
		}
		defer src.Close()

		gt := src.GeoTransform()
		fmt.Println(hgt.TileNameFor(gt[0], gt[3]).FileName())
	},
}

func init() {
	rootCmd.AddCommand(nameCmd)
}
