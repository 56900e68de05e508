package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Ghazanfar373/OpenTopography-tiff-to-hgt/hgt"
)

// Config holds application configuration
type Config struct {
	Void     int16
	KeepName bool
	MSL      bool
	Verbose  bool
}

// LoadConfig loads configuration from environment variables and command flags
// Flags take precedence over environment variables
func LoadConfig(cmd *cobra.Command) Config {
	cfg := Config{}

	void, err := voidValue(getConfigInt(cmd, "nodata", "HGT_NODATA", int(hgt.Void)))
	if err != nil {
		logrus.Fatalf("Invalid nodata value: %v", err)
	}
	cfg.Void = void
	cfg.KeepName = getConfigBool(cmd, "keep-name", "HGT_KEEP_NAME", false)
	cfg.MSL = getConfigBool(cmd, "msl", "HGT_MSL", false)
	cfg.Verbose = getConfigBool(cmd, "verbose", "HGT_VERBOSE", false)

	return cfg
}

// voidValue checks that a configured no-data value fits an HGT sample
func voidValue(n int) (int16, error) {
	if n < math.MinInt16 || n > math.MaxInt16 {
		return 0, fmt.Errorf("%d out of int16 range [%d, %d]", n, math.MinInt16, math.MaxInt16)
	}
	return int16(n), nil
}

// getConfigInt gets an int value from flag, then env, then default
func getConfigInt(cmd *cobra.Command, flagName, envName string, defaultValue int) int {
	if cmd.Flags().Changed(flagName) {
		val, _ := cmd.Flags().GetInt(flagName)
		return val
	}

	if v := os.Getenv(envName); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return defaultValue
}

// getConfigBool gets a bool value from flag, then env, then default
func getConfigBool(cmd *cobra.Command, flagName, envName string, defaultValue bool) bool {
	if cmd.Flags().Changed(flagName) {
		val, _ := cmd.Flags().GetBool(flagName)
		return val
	}

	if v := os.Getenv(envName); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	return defaultValue
}
