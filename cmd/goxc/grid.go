/*
 * grid.go, part of goxc.
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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/qcgo/goxc/xcgrid"
)

var (
	gridOut    string
	gridOrder  int
	gridWorker int
)

var gridCmd = &cobra.Command{
	Use:   "grid <points-file>",
	Short: "Evaluate the functional over a table of grid points",
	Long: `Grid reads a whitespace-separated text file with one point per line
(rho_up rho_down sigma_uu sigma_ud sigma_dd; '#' starts a comment) and
evaluates the functional at every point concurrently. The result table is
stored compressed; the compression is chosen from the output file name as
in the xcgrid package (gzip for names ending in 'z', raw deflate for 'r',
z-standard otherwise).

Example:
  goxc --functional xpbe grid points.dat --order 2 --out results.zst`,
	Args: cobra.ExactArgs(1),
	RunE: runGrid,
}

func init() {
	gridCmd.Flags().StringVar(&gridOut, "out", "results.zst", "output table file")
	gridCmd.Flags().IntVar(&gridOrder, "order", 1, "highest derivative order to compute (0, 1 or 2)")
	gridCmd.Flags().IntVar(&gridWorker, "goroutines", 0, "number of worker goroutines (default: one per CPU)")
}

// readPoints parses a 5-column whitespace text file into a point table.
func readPoints(name string) (*mat.Dense, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var data []float64
	rows := 0
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		str := scanner.Text()
		if i := strings.Index(str, "#"); i >= 0 {
			str = str[:i]
		}
		fields := strings.Fields(str)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != xcgrid.InCols {
			return nil, fmt.Errorf("%s:%d: %d columns, want %d", name, line, len(fields), xcgrid.InCols)
		}
		for _, v := range fields {
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, line, err)
			}
			data = append(data, x)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("%s: no points found", name)
	}
	return mat.NewDense(rows, xcgrid.InCols, data), nil
}

func runGrid(cmd *cobra.Command, args []string) error {
	F, err := newFunctional()
	if err != nil {
		return err
	}
	if gridOrder < 0 || gridOrder > 2 {
		return fmt.Errorf("derivative order must be 0, 1 or 2, got %d", gridOrder)
	}
	points, err := readPoints(args[0])
	if err != nil {
		return fmt.Errorf("read points: %w", err)
	}

	res, err := xcgrid.Evaluate(F, points, gridOrder, gridWorker)
	if err != nil {
		//failed points are NaN rows; the good ones are still worth keeping
		fmt.Fprintln(os.Stderr, "warning: some points failed:", err)
	}
	header := map[string]string{
		"functional": F.Variant().String(),
		"order":      strconv.Itoa(gridOrder),
		"source":     args[0],
	}
	if err := xcgrid.WriteTable(gridOut, res, header); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	rows, _ := points.Dims()
	fmt.Printf("%d points -> %s (%d columns)\n", rows, gridOut, xcgrid.Cols(gridOrder))
	return nil
}
