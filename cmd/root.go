// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the goupil command line interface
package cmd

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cacheFile string // sqlite file caching material tables
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "goupil",
	Short: "Monte Carlo transport of gamma photons",
	Long: `goupil transports batches of gamma photons through a slab or a
topography geometry, forward or backward, using tabulated interaction
cross sections for arbitrary material compositions.`,
}

// Execute runs the command line interface
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// optional .env file seeds the environment
	godotenv.Load()
	rootCmd.PersistentFlags().StringVar(&cacheFile, "cache", os.Getenv("GOUPIL_CACHE"), "sqlite file caching material tables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report run details")
}
