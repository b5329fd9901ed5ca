/*
 * pbe.go, part of goxc.
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

import "math"

/*The PBE correlation energy per particle is ec = ecunif + H(rs, phi, t, A),
with H the gradient correction of eq. 7 of Perdew, Burke and Ernzerhof,
PRL 77, 3865 (1996), and A the coupling of eq. 8, which switches the
correction off in the uniform limit. This file evaluates both, with analytic
derivatives through second order, and composes them by the chain rule. The
evaluation follows the structure of the GGA correlation routine of
L.C. Balbas and J.M. Soler.*/

// aResult holds A of eq. 8 and its partial derivatives. For the revTPSS
// flavor the second-order slots are intentionally left at zero: the rs
// prefactor's second derivatives are not part of that parameterization.
type aResult struct {
	a                      float64
	dEc, dPhi, dRs         float64
	d2Ec2, d2EcPhi, d2Phi2 float64
}

// pbeA evaluates eq. 8. ecunif must be strictly negative; A is then positive
// and finite.
func pbeA(prm Params, order int, rs, ecunif, phi float64) aResult {
	var r aResult
	phi3 := phi * phi * phi
	f1 := ecunif / (prm.Gamma * phi3)
	f2 := math.Exp(-f1)
	f3 := f2 - 1.0

	r.a = prm.Beta / (prm.Gamma * f3)
	pf, dpf := prm.rsFactor(rs)
	if prm.RsScaled {
		r.a *= pf
	}

	if order < 1 {
		return r
	}

	df1dphi := -3.0 * f1 / phi
	dx := r.a * f2 / f3

	r.dEc = dx / (prm.Gamma * phi3)
	r.dPhi = dx * df1dphi
	r.dRs = 0.0
	if prm.RsScaled {
		r.dRs = prm.Beta * dpf / (prm.Gamma * f3)
		//no second derivatives for the rs-scaled flavor
		return r
	}
	if order < 2 {
		return r
	}

	d2f1dphi2 := -4.0 * df1dphi / phi
	d2x := dx * (2.0*f2 - f3) / f3
	r.d2Phi2 = d2x*df1dphi*df1dphi + dx*d2f1dphi2
	r.d2EcPhi = (d2x*df1dphi*f1 + dx*df1dphi) / ecunif
	r.d2Ec2 = d2x / (prm.Gamma * prm.Gamma * phi3 * phi3)
	return r
}

// hResult holds the gradient correction H of eq. 7 and its partials. Second
// order slots follow the same revTPSS policy as aResult.
type hResult struct {
	h                      float64
	dPhi, dRs, dT, dA      float64
	d2Phi2, d2PhiT, d2PhiA float64
	d2T2, d2TA, d2A2       float64
}

// pbeH evaluates eq. 7 at the given reduced variables and coupling A.
func pbeH(prm Params, order int, rs, phi, t, a float64) hResult {
	var r hResult
	t2 := t * t
	phi3 := phi * phi * phi

	f1 := t2 + a*t2*t2
	f3 := 1.0 + a*f1
	f2 := prm.Beta * f1 / (prm.Gamma * f3)
	pf, dpf := prm.rsFactor(rs)
	if prm.RsScaled {
		f2 *= pf
	}

	r.h = prm.Gamma * phi3 * math.Log1p(f2)

	if order < 1 {
		return r
	}

	r.dPhi = 3.0 * r.h / phi

	df1dt := t * (2.0 + 4.0*a*t2)
	df2dt := prm.Beta / (prm.Gamma * f3 * f3) * df1dt
	if prm.RsScaled {
		df2dt *= pf
	}
	r.dT = prm.Gamma * phi3 * df2dt / (1.0 + f2)

	df1dA := t2 * t2
	df2dA := prm.Beta / (prm.Gamma * f3 * f3) * (df1dA - f1*f1)
	if prm.RsScaled {
		df2dA *= pf
	}
	r.dA = prm.Gamma * phi3 * df2dA / (1.0 + f2)

	r.dRs = 0.0
	if prm.RsScaled {
		df2drs := prm.Beta * dpf * f1 / (prm.Gamma * f3)
		r.dRs = prm.Gamma * phi3 * df2drs / (1.0 + f2)
		//no second derivatives for the rs-scaled flavor
		return r
	}
	if order < 2 {
		return r
	}

	r.d2Phi2 = 2.0 * r.dPhi / phi
	r.d2PhiT = 3.0 * r.dT / phi
	r.d2PhiA = 3.0 * r.dA / phi

	onef2 := 1.0 + f2
	d2f1dt2 := 2.0 + 12.0*a*t2
	d2f2dt2 := prm.Beta / (prm.Gamma * f3 * f3) * (d2f1dt2 - 2.0*a/f3*df1dt*df1dt)
	r.d2T2 = prm.Gamma * phi3 * (d2f2dt2*onef2 - df2dt*df2dt) / (onef2 * onef2)

	d2f1dtA := 4.0 * t * t2
	d2f2dtA := prm.Beta / (prm.Gamma * f3 * f3) *
		(d2f1dtA - 2.0*df1dt*(f1+a*df1dA)/f3)
	r.d2TA = prm.Gamma * phi3 * (d2f2dtA*onef2 - df2dt*df2dA) / (onef2 * onef2)

	d2f2dA2 := -2.0 * prm.Beta / (prm.Gamma * f3 * f3 * f3) *
		(2.0*f1*df1dA - f1*f1*f1 + a*df1dA*df1dA)
	r.d2A2 = prm.Gamma * phi3 * (d2f2dA2*onef2 - df2dA*df2dA) / (onef2 * onef2)
	return r
}

// assemble folds the A and H derivative tiers into derivatives of
// me = ecunif + H with respect to the reduced variables, where A itself is a
// function of (ecunif, phi, rs). The result is stored in pt for the Reducer.
func assemble(pt *ReducedPoint, ar aResult, hr hResult) {
	if pt.Order < 1 {
		return
	}
	pt.DPhi = hr.dPhi + hr.dA*ar.dPhi
	pt.DRs = hr.dRs + hr.dA*ar.dRs
	pt.DT = hr.dT
	pt.DEcUnif = 1.0 + hr.dA*ar.dEc

	if pt.Order < 2 {
		return
	}
	pt.D2Phi2 = hr.d2Phi2 + 2.0*hr.d2PhiA*ar.dPhi + hr.dA*ar.d2Phi2 +
		hr.d2A2*ar.dPhi*ar.dPhi
	pt.D2PhiT = hr.d2PhiT + hr.d2TA*ar.dPhi
	pt.D2PhiEcUnif = hr.d2PhiA*ar.dEc + hr.d2A2*ar.dPhi*ar.dEc +
		hr.dA*ar.d2EcPhi
	pt.D2T2 = hr.d2T2
	pt.D2TEcUnif = hr.d2TA * ar.dEc
	pt.D2EcUnif2 = hr.d2A2*ar.dEc*ar.dEc + hr.dA*ar.d2Ec2
}

// Output collects the destination slices for one evaluation. A nil slice
// skips the corresponding tier; the effective derivative order is 2 if any
// second-derivative slice is non-nil, else 1 if VRho or VSigma is non-nil,
// else 0. Non-nil slices must have the indicated lengths.
//
// Layouts: VRho is (up, down). VSigma is (up-up, up-down, down-down).
// V2Rho2 and V2Sigma2 are the row-major upper triangles of the corresponding
// symmetric matrices; V2RhoSigma is spin*3+sigma, row-major.
type Output struct {
	E          []float64 //len 1: correlation energy per particle
	VRho       []float64 //len 2
	VSigma     []float64 //len 3
	V2Rho2     []float64 //len 3
	V2RhoSigma []float64 //len 6
	V2Sigma2   []float64 //len 6
}

func (out *Output) order() int {
	if out == nil {
		panic(ErrNilOutput)
	}
	chk := func(s []float64, n int) bool {
		if s == nil {
			return false
		}
		if len(s) != n {
			panic(ErrOutputLen)
		}
		return true
	}
	chk(out.E, 1)
	order := 0
	if chk(out.VRho, 2) {
		order = 1
	}
	if chk(out.VSigma, 3) {
		order = 1
	}
	if chk(out.V2Rho2, 3) {
		order = 2
	}
	if chk(out.V2RhoSigma, 6) {
		order = 2
	}
	if chk(out.V2Sigma2, 6) {
		order = 2
	}
	return order
}

// nanFill writes NaN sentinels into every non-nil slice of out.
func (out *Output) nanFill() {
	nan := math.NaN()
	for _, s := range [][]float64{out.E, out.VRho, out.VSigma,
		out.V2Rho2, out.V2RhoSigma, out.V2Sigma2} {
		for i := range s {
			s[i] = nan
		}
	}
}

// zeroSecondTier clears the second-derivative slices of out.
func (out *Output) zeroSecondTier() {
	for _, s := range [][]float64{out.V2Rho2, out.V2RhoSigma, out.V2Sigma2} {
		for i := range s {
			s[i] = 0.0
		}
	}
}

// Functional is one parameterization of the PBE correlation functional,
// ready to evaluate. It is immutable and safe for concurrent use.
type Functional struct {
	variant Variant
	prm     Params
	red     Reducer
}

// New returns an evaluator for the given variant. An optional Reducer
// replaces the default Perdew prelude/postlude (and with it the uniform-gas
// collaborator); this is mostly useful for testing against other codes.
func New(v Variant, red ...Reducer) *Functional {
	F := &Functional{variant: v, prm: ParamsFor(v), red: PerdewReducer{}}
	if len(red) > 0 && red[0] != nil {
		F.red = red[0]
	}
	return F
}

// Variant returns the parameterization tag of the functional.
func (F *Functional) Variant() Variant { return F.variant }

// Params returns a copy of the functional's parameter record.
func (F *Functional) Params() Params { return F.prm }

// Evaluate computes the correlation energy per particle and the derivative
// tiers requested by the non-nil slices of out, at one point given by the
// spin densities and the contracted gradient invariants, in Hartree atomic
// units. On a domain failure the outputs are set to NaN and the returned
// error satisfies IsDomain. Requesting second derivatives for PBERevTPSS
// fills the first-order tiers normally, zero-fills the second-order ones and
// returns an error satisfying IsOrderUnsupported.
func (F *Functional) Evaluate(rhoA, rhoB, sigmaAA, sigmaAB, sigmaBB float64, out *Output) error {
	order := out.order()

	var orderErr error
	if order == 2 && F.prm.RsScaled {
		//the rs-scaled flavor carries no second-derivative tier
		out.zeroSecondTier()
		order = 1
		orderErr = newOrderError("second derivatives not available for "+F.variant.String(), "Evaluate")
	}

	pt, err := F.red.ReducedVars(rhoA, rhoB, sigmaAA, sigmaAB, sigmaBB, order)
	if err != nil {
		out.nanFill()
		return errDecorate(err, "Evaluate")
	}
	if pt.EcUnif >= 0.0 {
		//physically excluded, but numerically reachable near density
		//cutoffs; A would come out with an unphysical sign.
		out.nanFill()
		return newDomainError("non-negative uniform-gas correlation energy", "Evaluate")
	}

	ar := pbeA(F.prm, order, pt.Rs, pt.EcUnif, pt.Phi)
	hr := pbeH(F.prm, order, pt.Rs, pt.Phi, pt.T, ar.a)
	me := pt.EcUnif + hr.h

	if out.E != nil {
		out.E[0] = me
	}
	if order >= 1 {
		assemble(pt, ar, hr)
		F.red.AssemblePotentials(pt, me, out)
	}
	return orderErr
}

// Energy is a convenience wrapper around Evaluate that returns only the
// correlation energy per particle.
func (F *Functional) Energy(rhoA, rhoB, sigmaAA, sigmaAB, sigmaBB float64) (float64, error) {
	e := make([]float64, 1)
	err := F.Evaluate(rhoA, rhoB, sigmaAA, sigmaAB, sigmaBB, &Output{E: e})
	return e[0], err
}
