/*
 * eval.go, part of goxc.
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

	"github.com/spf13/cobra"

	xc "github.com/qcgo/goxc"
)

var (
	evalRho   [2]float64
	evalSigma [3]float64
	evalOrder int
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the functional at one point",
	Long: `Eval computes the correlation energy per particle and, if requested,
its derivatives with respect to the spin densities and the contracted
gradient invariants, at a single point.

Example:
  goxc eval --rho-up 0.17 --rho-down 0.08 --sigma-uu 0.021 --sigma-ud 0.009 --sigma-dd 0.015 --order 2
  goxc --functional pbesol eval --rho-up 0.1 --rho-down 0.1`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Float64Var(&evalRho[0], "rho-up", 0, "spin-up density (required)")
	evalCmd.Flags().Float64Var(&evalRho[1], "rho-down", 0, "spin-down density (required)")
	evalCmd.Flags().Float64Var(&evalSigma[0], "sigma-uu", 0, "up-up gradient invariant")
	evalCmd.Flags().Float64Var(&evalSigma[1], "sigma-ud", 0, "up-down gradient invariant")
	evalCmd.Flags().Float64Var(&evalSigma[2], "sigma-dd", 0, "down-down gradient invariant")
	evalCmd.Flags().IntVar(&evalOrder, "order", 0, "highest derivative order to compute (0, 1 or 2)")
	_ = evalCmd.MarkFlagRequired("rho-up")
	_ = evalCmd.MarkFlagRequired("rho-down")
}

func runEval(cmd *cobra.Command, args []string) error {
	F, err := newFunctional()
	if err != nil {
		return err
	}
	out := &xc.Output{E: make([]float64, 1)}
	switch evalOrder {
	case 0:
	case 1:
		out.VRho = make([]float64, 2)
		out.VSigma = make([]float64, 3)
	case 2:
		out.VRho = make([]float64, 2)
		out.VSigma = make([]float64, 3)
		out.V2Rho2 = make([]float64, 3)
		out.V2RhoSigma = make([]float64, 6)
		out.V2Sigma2 = make([]float64, 6)
	default:
		return fmt.Errorf("derivative order must be 0, 1 or 2, got %d", evalOrder)
	}

	err = F.Evaluate(evalRho[0], evalRho[1], evalSigma[0], evalSigma[1], evalSigma[2], out)
	if err != nil && !xc.IsOrderUnsupported(err) {
		return fmt.Errorf("evaluate %s: %w", F.Variant(), err)
	}
	if err != nil {
		fmt.Println("note:", err)
	}

	fmt.Printf("functional    %s\n", F.Variant())
	fmt.Printf("ec            % .12e\n", out.E[0])
	if evalOrder >= 1 {
		printBlock("vrho", out.VRho)
		printBlock("vsigma", out.VSigma)
	}
	if evalOrder >= 2 {
		printBlock("v2rho2", out.V2Rho2)
		printBlock("v2rhosigma", out.V2RhoSigma)
		printBlock("v2sigma2", out.V2Sigma2)
	}
	return nil
}

func printBlock(name string, vals []float64) {
	fmt.Printf("%-13s", name)
	for _, v := range vals {
		fmt.Printf(" % .12e", v)
	}
	fmt.Println()
}
