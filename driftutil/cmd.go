/*
Copyright © 2026 the Drift authors.
This file is part of Drift.

Drift is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Drift is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Drift.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package driftutil wires configuration to the drift library for the
// command-line interface.
package driftutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/drift"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to Drift.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "UFile",
			usage: `
              UFile is the path to the NetCDF file holding the zonal
              velocity component.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "VFile",
			usage: `
              VFile is the path to the NetCDF file holding the meridional
              velocity component. If empty, UFile is used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "UVar",
			usage: `
              UVar is the NetCDF variable name of the zonal velocity.`,
			defaultVal: "U",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "VVar",
			usage: `
              VVar is the NetCDF variable name of the meridional velocity.`,
			defaultVal: "V",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "LonVar",
			usage: `
              LonVar is the NetCDF variable name of the longitude axis.`,
			defaultVal: "lon",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "LatVar",
			usage: `
              LatVar is the NetCDF variable name of the latitude axis.`,
			defaultVal: "lat",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "DepthVar",
			usage: `
              DepthVar is the NetCDF variable name of the depth axis.
              Leave empty for surface-only data.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "TimeVar",
			usage: `
              TimeVar is the NetCDF variable name of the time axis.`,
			defaultVal: "time",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "SphereMesh",
			usage: `
              SphereMesh specifies whether the horizontal coordinates are
              longitudes and latitudes in degrees on a sphere.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "ZonalPeriodic",
			usage: `
              ZonalPeriodic specifies whether the x axis wraps around the
              sphere.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Kernel",
			usage: `
              Kernel selects the advection scheme: rk4 or euler.`,
			defaultVal: "rk4",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Dt",
			usage: `
              Dt is the advection time step [s].`,
			defaultVal: 300.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Steps",
			usage: `
              Steps is the number of advection time steps to run.`,
			defaultVal: 100,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "NumParticles",
			usage: `
              NumParticles is the number of particles to seed along the
              release section.`,
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "ReleaseStart",
			usage: `
              ReleaseStart is the "lon,lat" position of the first released
              particle.`,
			defaultVal: "0,0",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "ReleaseEnd",
			usage: `
              ReleaseEnd is the "lon,lat" position of the last released
              particle.`,
			defaultVal: "1,1",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path of the CSV file to write final particle
              positions to. If empty, positions are only logged.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("DRIFT")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "drift",
	Short: "A Lagrangian particle-tracking engine for geophysical flows.",
	Long: `Drift advects virtual particles through gridded ocean and atmosphere
velocity fields. Configuration can be changed by using a configuration file
(and providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'DRIFT_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Drift.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Drift v%s\n", drift.Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Advect particles through a velocity field.",
	Long: `run loads the configured velocity fields, seeds particles along the
release section, and advects them for the configured number of time steps.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(Cfg)
	},
	DisableAutoGenTag: true,
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("drift: problem reading configuration file: %v", err)
		}
	}
	return nil
}
