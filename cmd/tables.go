// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/kvernet/goupil/inp"
	"github.com/kvernet/goupil/phys"
	"github.com/spf13/cobra"
)

var tablesMode string

var tablesCmd = &cobra.Command{
	Use:   "tables <file.sim>",
	Short: "precomputes and caches material tables",
	Long: `Reads a simulation file and computes the interaction tables of
every declared material, so that later runs pay no compute cost. The
--cache file is required.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return tables(args[0])
	},
}

func tables(simfilepath string) error {
	if cacheFile == "" {
		return chk.Err("the tables command requires a --cache file")
	}
	sim, err := inp.ReadSim(simfilepath)
	if err != nil {
		return err
	}
	engine, err := sim.MakeEngine()
	if err != nil {
		return err
	}
	if err := engine.Compile(tablesMode); err != nil {
		return err
	}

	registry := engine.Registry()
	for _, name := range registry.Materials() {
		record, err := registry.Get(name)
		if err != nil {
			return err
		}
		if !verbose {
			continue
		}
		io.Pf("%s:\n", name)
		io.Pf("  %s\n", record.AbsorptionCrossSection().Process())
		io.Pf("  %s\n", record.RayleighCrossSection().Process())
		for _, mode := range []phys.ComptonMode{phys.Direct, phys.Adjoint, phys.Inverse} {
			if cs := record.ComptonCrossSection(mode); cs != nil {
				io.Pf("  %s\n", cs.Process())
			}
		}
	}

	if err := registry.SaveCache(cacheFile); err != nil {
		return err
	}
	io.Pf("tables for %v cached in %q\n", registry.Materials(), cacheFile)
	return nil
}

func init() {
	tablesCmd.Flags().StringVar(&tablesMode, "mode", "Both", "kinematics to compile: All, Backward, Both or Forward")
	rootCmd.AddCommand(tablesCmd)
}
