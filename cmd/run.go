// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/kvernet/goupil/inp"
	"github.com/kvernet/goupil/mc"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file.sim>",
	Short: "transports a batch of photons",
	Long: `Reads a simulation file, builds the transport engine over its
geometry and transports the declared batch of photons, reporting the
terminal status counts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func run(simfilepath string) error {
	sim, err := inp.ReadSim(simfilepath)
	if err != nil {
		return err
	}
	engine, err := sim.MakeEngine()
	if err != nil {
		return err
	}

	// reuse cached tables when available
	if cacheFile != "" {
		if _, err := os.Stat(cacheFile); err == nil {
			if err := engine.Registry().LoadCache(cacheFile); err != nil {
				return err
			}
		}
	}

	if verbose {
		io.Pf("%s\n", sim.Desc)
		io.Pf("materials = %v\n", engine.Registry().Materials())
		io.Pf("mode      = %v\n", engine.Settings().Mode)
		io.Pf("compton   = %s\n", engine.Settings().Compton.Process())
	}

	states := sim.MakeStates()
	statuses, err := engine.Transport(states)
	if err != nil {
		return err
	}

	// tally
	counts := make(map[mc.Status]int)
	for _, status := range statuses {
		counts[status]++
	}
	io.Pf("transported %d states:\n", len(states))
	for status := mc.StatusExited; status <= mc.StatusError; status++ {
		if n := counts[status]; n > 0 {
			io.Pf("  %-9v %6d\n", status, n)
		}
	}

	if cacheFile != "" {
		if err := engine.Registry().SaveCache(cacheFile); err != nil {
			return err
		}
		if verbose {
			io.Pf("tables cached in %q\n", cacheFile)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
