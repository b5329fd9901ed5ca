/*
 * main.go, part of goxc.
 *
 * Copyright 2016 The goxc developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package main provides the goxc CLI, a thin front end over the xc, xcgrid
// and xcplot packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	xc "github.com/qcgo/goxc"
)

// functional is set by the persistent --functional flag.
var functional string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goxc",
	Short: "goxc evaluates PBE-family correlation functionals",
	Long: `goxc evaluates the correlation energy per particle and its analytic
derivatives for the PBE family of GGA functionals (pbe, pbesol, xpbe,
pberevtpss), at single points, over grid-point tables, or as comparison
plots. All quantities are in Hartree atomic units.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&functional, "functional", "pbe", "correlation variant: pbe, pbesol, xpbe or pberevtpss")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(plotCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("goxc v0.1.0")
	},
}

// newFunctional builds the evaluator selected by the --functional flag.
func newFunctional() (*xc.Functional, error) {
	v, err := xc.VariantFromString(functional)
	if err != nil {
		return nil, fmt.Errorf("select functional: %w", err)
	}
	return xc.New(v), nil
}
