/*
 * goxc_test.go, part of goxc.
 *
 * Copyright 2015 The goxc developers
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

package xc

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
)

// point is one evaluation input: rhoA, rhoB, sigmaAA, sigmaAB, sigmaBB.
type point [5]float64

var testPoints = []point{
	{0.17, 0.08, 0.021, 0.009, 0.015},
	{0.3, 0.3, 0.05, 0.02, 0.05},
	{0.05, 0.11, 0.001, 0.0005, 0.002},
	{1.2, 0.7, 0.4, 0.1, 0.3},
}

func fullOutput() *Output {
	return &Output{
		E:          make([]float64, 1),
		VRho:       make([]float64, 2),
		VSigma:     make([]float64, 3),
		V2Rho2:     make([]float64, 3),
		V2RhoSigma: make([]float64, 6),
		V2Sigma2:   make([]float64, 6),
	}
}

func evalFull(Te *testing.T, F *Functional, p point) *Output {
	out := fullOutput()
	if err := F.Evaluate(p[0], p[1], p[2], p[3], p[4], out); err != nil {
		Te.Fatalf("%v: Evaluate failed at %v: %v", F.Variant(), p, err)
	}
	return out
}

// TestUniformLimit checks that with a vanishing gradient the correction
// vanishes and the energy per particle reduces to the uniform-gas value.
func TestUniformLimit(Te *testing.T) {
	F := New(PBE)
	e, err := F.Energy(0.1, 0.1, 0, 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	rs := math.Cbrt(3.0 / (4.0 * math.Pi * 0.2))
	want := pwCorrelation(rs, 0, 0).ec
	if !scalar.EqualWithinAbsOrRel(e, want, 1e-14, 1e-12) {
		Te.Errorf("e at sigma=0: %v, uniform-gas value %v", e, want)
	}
}

// TestGradientRaisesEnergy checks that a finite gradient adds a positive H on
// top of the uniform-gas energy, and that the closed-shell vsigma components
// obey the up/down symmetry.
func TestGradientRaisesEnergy(Te *testing.T) {
	F := New(PBE)
	flat, err := F.Energy(0.1, 0.1, 0, 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	out := evalFull(Te, F, point{0.1, 0.1, 0.01, 0, 0.01})
	if out.E[0] <= flat {
		Te.Errorf("H should be positive: e with gradient %v, without %v", out.E[0], flat)
	}
	if !scalar.EqualWithinAbsOrRel(out.VSigma[0], out.VSigma[2], 1e-14, 1e-12) {
		Te.Errorf("closed shell: vsigma uu %v != vsigma dd %v", out.VSigma[0], out.VSigma[2])
	}
	if !scalar.EqualWithinAbsOrRel(out.VRho[0], out.VRho[1], 1e-14, 1e-12) {
		Te.Errorf("closed shell: vrho up %v != vrho down %v", out.VRho[0], out.VRho[1])
	}
}

// TestSpinSwapSymmetry evaluates each point with the spin labels exchanged
// and checks that every output tier permutes accordingly.
func TestSpinSwapSymmetry(Te *testing.T) {
	for _, v := range []Variant{PBE, PBESol, XPBE} {
		F := New(v)
		for _, p := range testPoints {
			a := evalFull(Te, F, p)
			b := evalFull(Te, F, point{p[1], p[0], p[4], p[3], p[2]})

			eq := func(x, y float64, what string) {
				if !scalar.EqualWithinAbsOrRel(x, y, 1e-13, 1e-11) {
					Te.Errorf("%v at %v: %s broken under spin swap: %v vs %v", v, p, what, x, y)
				}
			}
			eq(a.E[0], b.E[0], "e")
			eq(a.VRho[0], b.VRho[1], "vrho")
			eq(a.VRho[1], b.VRho[0], "vrho")
			for i, j := range []int{2, 1, 0} {
				eq(a.VSigma[i], b.VSigma[j], "vsigma")
			}
			for i, j := range []int{2, 1, 0} {
				eq(a.V2Rho2[i], b.V2Rho2[j], "v2rho2")
			}
			for i, j := range []int{5, 4, 3, 2, 1, 0} {
				eq(a.V2RhoSigma[i], b.V2RhoSigma[j], "v2rhosigma")
			}
			for i, j := range []int{5, 4, 2, 3, 1, 0} {
				eq(a.V2Sigma2[i], b.V2Sigma2[j], "v2sigma2")
			}
		}
	}
}

// TestPotentialConsistency compares vrho and vsigma against central finite
// differences of the energy density n*e in every input direction.
func TestPotentialConsistency(Te *testing.T) {
	set := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	for _, v := range []Variant{PBE, PBESol, XPBE, PBERevTPSS} {
		F := New(v)
		for _, p := range testPoints {
			out := &Output{E: make([]float64, 1), VRho: make([]float64, 2), VSigma: make([]float64, 3)}
			if err := F.Evaluate(p[0], p[1], p[2], p[3], p[4], out); err != nil {
				Te.Fatalf("%v: %v", v, err)
			}
			dens := func(q point) float64 {
				e, err := F.Energy(q[0], q[1], q[2], q[3], q[4])
				if err != nil {
					Te.Fatalf("%v: %v", v, err)
				}
				return (q[0] + q[1]) * e
			}
			for k := 0; k < 5; k++ {
				k := k
				num := fd.Derivative(func(x float64) float64 {
					q := p
					q[k] = x
					return dens(q)
				}, p[k], set)
				var analytic float64
				if k < 2 {
					analytic = out.VRho[k]
				} else {
					analytic = out.VSigma[k-2]
				}
				if !scalar.EqualWithinAbsOrRel(analytic, num, 1e-9, 1e-5) {
					Te.Errorf("%v at %v, direction %d: analytic %v numeric %v", v, p, k, analytic, num)
				}
			}
		}
	}
}

// TestKernelConsistency compares the second-derivative tiers against central
// finite differences of the analytic first derivatives.
func TestKernelConsistency(Te *testing.T) {
	set := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	for _, v := range []Variant{PBE, PBESol, XPBE} {
		F := New(v)
		for _, p := range testPoints {
			out := evalFull(Te, F, p)

			first := func(q point) (vrho [2]float64, vsigma [3]float64) {
				o := &Output{VRho: make([]float64, 2), VSigma: make([]float64, 3)}
				if err := F.Evaluate(q[0], q[1], q[2], q[3], q[4], o); err != nil {
					Te.Fatalf("%v: %v", v, err)
				}
				copy(vrho[:], o.VRho)
				copy(vsigma[:], o.VSigma)
				return vrho, vsigma
			}
			dnum := func(k int, pick func([2]float64, [3]float64) float64) float64 {
				return fd.Derivative(func(x float64) float64 {
					q := p
					q[k] = x
					vr, vs := first(q)
					return pick(vr, vs)
				}, p[k], set)
			}
			check := func(analytic, num float64, what string) {
				if !scalar.EqualWithinAbsOrRel(analytic, num, 1e-7, 1e-3) {
					Te.Errorf("%v at %v: %s analytic %v numeric %v", v, p, what, analytic, num)
				}
			}

			//v2rho2: (up,up), (up,down), (down,down)
			check(out.V2Rho2[0], dnum(0, func(vr [2]float64, _ [3]float64) float64 { return vr[0] }), "v2rho2 uu")
			check(out.V2Rho2[1], dnum(1, func(vr [2]float64, _ [3]float64) float64 { return vr[0] }), "v2rho2 ud")
			check(out.V2Rho2[2], dnum(1, func(vr [2]float64, _ [3]float64) float64 { return vr[1] }), "v2rho2 dd")

			//v2rhosigma, spin*3+sigma
			for s := 0; s < 2; s++ {
				for i := 0; i < 3; i++ {
					i := i
					num := dnum(s, func(_ [2]float64, vs [3]float64) float64 { return vs[i] })
					check(out.V2RhoSigma[s*3+i], num, "v2rhosigma")
				}
			}

			//v2sigma2, upper triangle
			k := 0
			for i := 0; i < 3; i++ {
				for j := i; j < 3; j++ {
					i := i
					num := dnum(2+j, func(_ [2]float64, vs [3]float64) float64 { return vs[i] })
					check(out.V2Sigma2[k], num, "v2sigma2")
					k++
				}
			}
		}
	}
}

// TestReentrancy interleaves evaluations of two variants and checks that the
// results are bit-identical to evaluating each alone: no state leaks between
// functionals.
func TestReentrancy(Te *testing.T) {
	p := testPoints[0]
	alone := make(map[Variant]*Output)
	for _, v := range []Variant{PBE, XPBE} {
		alone[v] = evalFull(Te, New(v), p)
	}
	fp := New(PBE)
	fx := New(XPBE)
	for i := 0; i < 3; i++ {
		for _, F := range []*Functional{fp, fx, fp, fx, fx, fp} {
			got := evalFull(Te, F, p)
			want := alone[F.Variant()]
			if got.E[0] != want.E[0] || got.VRho[0] != want.VRho[0] ||
				got.V2Sigma2[5] != want.V2Sigma2[5] {
				Te.Errorf("%v: interleaved evaluation differs from isolated one", F.Variant())
			}
		}
	}
}

// TestFullPolarization checks that a fully spin-polarized point still yields
// a finite energy.
func TestFullPolarization(Te *testing.T) {
	F := New(PBE)
	e, err := F.Energy(0.2, 0.0, 0.04, 0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if math.IsNaN(e) || math.IsInf(e, 0) {
		Te.Errorf("e at zeta=1 is not finite: %v", e)
	}
	rs := math.Cbrt(3.0 / (4.0 * math.Pi * 0.2))
	lda := pwCorrelation(rs, 1.0, 0).ec
	if e < lda {
		Te.Errorf("H negative at zeta=1: e=%v, ecunif=%v", e, lda)
	}
}

// TestDomainErrors checks the rejection of unphysical inputs: the outputs
// must carry NaN sentinels and the error must satisfy IsDomain.
func TestDomainErrors(Te *testing.T) {
	F := New(PBE)
	bad := []point{
		{0, 0, 0, 0, 0},            //vanishing density
		{-0.1, -0.1, 0.01, 0, 0},   //negative density
		{0.2, -0.1, 0.01, 0, 0.01}, //zeta outside [-1,1]
	}
	for _, p := range bad {
		out := fullOutput()
		err := F.Evaluate(p[0], p[1], p[2], p[3], p[4], out)
		if err == nil || !IsDomain(err) {
			Te.Errorf("no domain error at %v, got %v", p, err)
		}
		if !math.IsNaN(out.E[0]) || !math.IsNaN(out.V2Sigma2[3]) {
			Te.Errorf("outputs not NaN-filled at %v: %v", p, out.E[0])
		}
	}
}

// TestRevTPSSOrderPolicy checks the second-derivative policy of the rs-scaled
// flavor: first-order tiers are filled as at order 1, second-order tiers are
// zero-filled, and the error satisfies IsOrderUnsupported.
func TestRevTPSSOrderPolicy(Te *testing.T) {
	F := New(PBERevTPSS)
	p := testPoints[0]
	out := fullOutput()
	err := F.Evaluate(p[0], p[1], p[2], p[3], p[4], out)
	if err == nil || !IsOrderUnsupported(err) {
		Te.Fatalf("expected an order-unsupported error, got %v", err)
	}
	for _, s := range [][]float64{out.V2Rho2, out.V2RhoSigma, out.V2Sigma2} {
		for i, x := range s {
			if x != 0 {
				Te.Errorf("second-derivative slot %d not zero-filled: %v", i, x)
			}
		}
	}
	ref := &Output{E: make([]float64, 1), VRho: make([]float64, 2), VSigma: make([]float64, 3)}
	if err := F.Evaluate(p[0], p[1], p[2], p[3], p[4], ref); err != nil {
		Te.Fatal(err)
	}
	if out.E[0] != ref.E[0] || out.VRho[0] != ref.VRho[0] || out.VSigma[2] != ref.VSigma[2] {
		Te.Errorf("first-order tiers disturbed by the order fallback")
	}
}

// TestVariantEnergiesDiffer is a coarse cross-variant sanity check: at a
// gradient-rich point all four parameterizations must give different, finite,
// negative energies, with PBEsol between the uniform-gas value and PBE.
func TestVariantEnergiesDiffer(Te *testing.T) {
	p := point{0.1, 0.1, 0.02, 0.005, 0.02}
	es := make(map[Variant]float64)
	for _, v := range []Variant{PBE, PBESol, XPBE, PBERevTPSS} {
		e, err := New(v).Energy(p[0], p[1], p[2], p[3], p[4])
		if err != nil {
			Te.Fatal(err)
		}
		if e >= 0 || math.IsNaN(e) {
			Te.Errorf("%v: unphysical energy %v", v, e)
		}
		es[v] = e
	}
	if !(es[PBESol] < es[PBE]) {
		Te.Errorf("PBEsol energy %v not below PBE %v (smaller correction)", es[PBESol], es[PBE])
	}
}
