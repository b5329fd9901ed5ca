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

package xcgrid

import (
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"

	xc "github.com/qcgo/goxc"
)

// InCols is the number of columns of a point table.
const InCols = 5

// Cols returns the number of result columns produced at the given derivative
// order (0, 1 or 2).
func Cols(order int) int {
	switch order {
	case 0:
		return 1
	case 1:
		return 1 + 2 + 3
	case 2:
		return 1 + 2 + 3 + 3 + 6 + 6
	}
	panic(xc.PanicMsg("xcgrid: derivative order must be 0, 1 or 2"))
}

// rowOutput builds an xc.Output whose tiers alias one result row.
func rowOutput(row []float64, order int) *xc.Output {
	out := &xc.Output{E: row[0:1]}
	if order >= 1 {
		out.VRho = row[1:3]
		out.VSigma = row[3:6]
	}
	if order >= 2 {
		out.V2Rho2 = row[6:9]
		out.V2RhoSigma = row[9:15]
		out.V2Sigma2 = row[15:21]
	}
	return out
}

// Evaluate runs the functional over every row of points (one point per row,
// InCols columns) and returns a new matrix with Cols(order) columns. Rows are
// processed concurrently; the optional gor argument fixes the number of
// goroutines (default: one per CPU). Points that fail their domain checks
// yield NaN rows; the first such error is returned together with the full
// result matrix, so the caller can keep the good rows.
func Evaluate(F *xc.Functional, points *mat.Dense, order int, gor ...int) (*mat.Dense, error) {
	n, c := points.Dims()
	if c != InCols {
		return nil, fmt.Errorf("xcgrid: point table has %d columns, want %d", c, InCols)
	}
	workers := runtime.NumCPU()
	if len(gor) > 0 && gor[0] > 0 {
		workers = gor[0]
	}
	if workers > n {
		workers = n
	}
	if n == 0 {
		return nil, nil
	}

	res := mat.NewDense(n, Cols(order), nil)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				p := points.RawRowView(i)
				out := rowOutput(res.RawRowView(i), order)
				err := F.Evaluate(p[0], p[1], p[2], p[3], p[4], out)
				if err != nil && errs[w] == nil {
					errs[w] = err
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return res, err
		}
	}
	return res, nil
}
