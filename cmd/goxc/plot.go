/*
 * plot.go, part of goxc.
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

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	xc "github.com/qcgo/goxc"
	"github.com/qcgo/goxc/xcplot"
)

var (
	plotVariants string
	plotKind     string
	plotOut      string
	plotTitle    string
	plotPoints   int
	plotZeta     float64
	plotSigma    float64
	plotRho      float64
	plotRsMin    float64
	plotRsMax    float64
	plotSigMax   float64
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot correlation curves comparing variants",
	Long: `Plot draws comparison curves for a set of variants and saves them as a
png file. Two kinds are available: "rs" plots the correlation energy per
particle against the Wigner-Seitz radius at fixed zeta and sigma; "gradient"
plots the gradient correction against sigma for a closed-shell density.

Example:
  goxc plot --kind rs --variants pbe,pbesol,xpbe --out ec_vs_rs
  goxc plot --kind gradient --rho 0.3 --sigma-max 0.5 --out h_vs_sigma`,
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotKind, "kind", "rs", `plot kind: "rs" or "gradient"`)
	plotCmd.Flags().StringVar(&plotVariants, "variants", "pbe,pbesol,xpbe,pberevtpss", "comma-separated list of variants to compare")
	plotCmd.Flags().StringVar(&plotOut, "out", "goxc", "output file name, without the .png extension")
	plotCmd.Flags().StringVar(&plotTitle, "title", "", "plot title (default: derived from the kind)")
	plotCmd.Flags().IntVar(&plotPoints, "points", 100, "points per curve")
	plotCmd.Flags().Float64Var(&plotZeta, "zeta", 0, "spin polarization for rs plots")
	plotCmd.Flags().Float64Var(&plotSigma, "sigma", 0.05, "gradient invariant for rs plots")
	plotCmd.Flags().Float64Var(&plotRsMin, "rs-min", 0.5, "lower rs bound for rs plots")
	plotCmd.Flags().Float64Var(&plotRsMax, "rs-max", 10, "upper rs bound for rs plots")
	plotCmd.Flags().Float64Var(&plotRho, "rho", 0.3, "total density for gradient plots")
	plotCmd.Flags().Float64Var(&plotSigMax, "sigma-max", 0.5, "upper sigma bound for gradient plots")
}

func parseVariants(s string) ([]xc.Variant, error) {
	var vs []xc.Variant
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		v, err := xc.VariantFromString(name)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	if len(vs) == 0 {
		return nil, fmt.Errorf("no variants in %q", s)
	}
	return vs, nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	vs, err := parseVariants(plotVariants)
	if err != nil {
		return fmt.Errorf("parse variants: %w", err)
	}
	switch plotKind {
	case "rs":
		title := plotTitle
		if title == "" {
			title = "Correlation energy per particle"
		}
		err = xcplot.RsPlot(vs, plotZeta, plotSigma, plotRsMin, plotRsMax, plotPoints, title, plotOut)
	case "gradient":
		title := plotTitle
		if title == "" {
			title = "Gradient correction"
		}
		err = xcplot.GradientPlot(vs, plotRho, plotSigMax, plotPoints, title, plotOut)
	default:
		return fmt.Errorf("unknown plot kind %q", plotKind)
	}
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	fmt.Printf("wrote %s.png\n", plotOut)
	return nil
}
