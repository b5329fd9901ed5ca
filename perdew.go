/*
 * perdew.go, part of goxc.
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

/*The GGA functionals of the Perdew school are all written in the same set of
reduced variables: the Wigner-Seitz radius rs, the relative spin polarization
zeta, the spin-scaling factor phi, the dimensionless gradient t and the
uniform-gas correlation energy ecunif. This file converts physical densities
into those variables and converts the derivatives of the energy per particle
back into potentials in density/gradient space. The kernel itself (pbe.go)
never sees a density.*/

const (
	//MinDensity is the smallest total density the evaluator accepts; below
	//it the point is reported as a domain failure.
	MinDensity = 5e-13
	//MinGrad floors the norm of the density gradient, keeping the
	//sigma-derivatives of t finite at vanishing gradients.
	MinGrad = 5e-13
	//minZeta floors 1+zeta and 1-zeta in the spin-scaling derivatives,
	//which diverge at full polarization.
	minZeta = 5e-13
	//zetaTol is the tolerance on |zeta| <= 1 before a point is rejected.
	zetaTol = 1e-10
)

// sigma contraction weights: sigma_tot = saa + 2*sab + sbb.
var sigmaW = [3]float64{1.0, 2.0, 1.0}

// ReducedPoint carries the reduced variables of one grid point, the Jacobian
// and Hessian data needed to map derivatives back to (rho, sigma) space, and,
// once the kernel has run, the assembled derivatives of the energy per
// particle me with respect to the reduced variables.
//
// Spin indices are 0 = up, 1 = down. Pair-packed [3] arrays over the spin
// densities are ordered (up,up), (up,down), (down,down); pair-packed [6]
// arrays over sigma are the row-major upper triangle of the symmetric 3x3.
// The [6] rho-sigma arrays are spin*3+sigma.
type ReducedPoint struct {
	Order int

	Dens, Zeta, GradNorm float64
	Rs, Phi, T, EcUnif   float64

	//Derivatives of me = ecunif + H with respect to the reduced variables.
	//Filled by the kernel before AssemblePotentials is called.
	DPhi, DRs, DT, DEcUnif                                  float64
	D2Phi2, D2PhiT, D2PhiEcUnif, D2T2, D2TEcUnif, D2EcUnif2 float64

	//Jacobians of the reduced variables in physical space.
	RsRho  float64 //same for both spins
	PhiRho [2]float64
	EcRho  [2]float64
	TRho   [2]float64
	TSig   [3]float64

	//Hessians, only filled at order 2.
	RsRho2  float64 //same for every spin pair
	PhiRho2 [3]float64
	EcRho2  [3]float64
	TRho2   [3]float64
	TRhoSig [6]float64
	TSig2   [6]float64
}

// Reducer is the capability set the kernel depends on: something able to
// produce reduced variables from densities and to push assembled derivatives
// back. The package provides PerdewReducer; swapping it out replaces the
// uniform-gas collaborator and the variable conventions at once.
type Reducer interface {
	//ReducedVars converts one point's spin densities and gradient
	//invariants into reduced variables, with Jacobian/Hessian data
	//through the given derivative order.
	ReducedVars(rhoA, rhoB, sigmaAA, sigmaAB, sigmaBB float64, order int) (*ReducedPoint, error)
	//AssemblePotentials converts the derivatives of the energy per
	//particle me stored in pt into derivatives of the energy density
	//n*me, writing them into the non-nil slices of out.
	AssemblePotentials(pt *ReducedPoint, me float64, out *Output)
}

// PerdewReducer is the default Reducer. It uses the PW_MOD uniform-gas
// correlation and the conventions of the PBE paper: rs = (3/(4 pi n))^(1/3),
// phi = ((1+zeta)^(2/3)+(1-zeta)^(2/3))/2 and t = |grad n|/(2 phi ks n) with
// ks = sqrt(4 kF/pi). It is stateless; the zero value is ready to use.
type PerdewReducer struct{}

// ReducedVars implements the Reducer interface.
func (PerdewReducer) ReducedVars(rhoA, rhoB, sigmaAA, sigmaAB, sigmaBB float64, order int) (*ReducedPoint, error) {
	n := rhoA + rhoB
	if n <= MinDensity {
		return nil, newDomainError("vanishing or negative total density", "ReducedVars")
	}
	zeta := (rhoA - rhoB) / n
	if math.Abs(zeta) > 1.0+zetaTol {
		return nil, newDomainError("spin polarization outside [-1,1]", "ReducedVars")
	}
	if zeta > 1.0 {
		zeta = 1.0
	} else if zeta < -1.0 {
		zeta = -1.0
	}

	pt := new(ReducedPoint)
	pt.Order = order
	pt.Dens = n
	pt.Zeta = zeta
	pt.Rs = math.Cbrt(3.0 / (4.0 * math.Pi * n))

	zp := 1.0 + zeta
	zm := 1.0 - zeta
	pt.Phi = 0.5 * (math.Pow(zp, 2.0/3.0) + math.Pow(zm, 2.0/3.0))

	sigma := sigmaAA + 2.0*sigmaAB + sigmaBB
	if sigma < MinGrad*MinGrad {
		sigma = MinGrad * MinGrad
	}
	g := math.Sqrt(sigma)
	pt.GradNorm = g

	kf := math.Cbrt(3.0 * math.Pi * math.Pi * n)
	ks := math.Sqrt(4.0 * kf / math.Pi)
	x := 1.0 / (2.0 * pt.Phi * ks * n) //t per unit gradient norm
	pt.T = x * g

	pw := pwCorrelation(pt.Rs, zeta, order)
	pt.EcUnif = pw.ec

	if order < 1 {
		return pt, nil
	}

	//first derivatives of the reduced variables in (rho, sigma) space
	zRho := [2]float64{zm / n, -zp / n} // (1-zeta)/n, -(1+zeta)/n
	pt.RsRho = -pt.Rs / (3.0 * n)

	//phi'(zeta), with floored bases so full polarization stays finite
	zpf, zmf := zp, zm
	if zpf < minZeta {
		zpf = minZeta
	}
	if zmf < minZeta {
		zmf = minZeta
	}
	dphi := (math.Pow(zpf, -1.0/3.0) - math.Pow(zmf, -1.0/3.0)) / 3.0

	var alpha [2]float64 //logarithmic derivative of x
	for s := 0; s < 2; s++ {
		pt.PhiRho[s] = dphi * zRho[s]
		pt.EcRho[s] = pw.dRs*pt.RsRho + pw.dZ*zRho[s]
		alpha[s] = -pt.PhiRho[s]/pt.Phi - 7.0/(6.0*n)
		pt.TRho[s] = pt.T * alpha[s]
	}
	for i := 0; i < 3; i++ {
		pt.TSig[i] = pt.T * sigmaW[i] / (2.0 * sigma)
	}

	if order < 2 {
		return pt, nil
	}

	zRho2 := [3]float64{-2.0 * zm / (n * n), 2.0 * zeta / (n * n), 2.0 * zp / (n * n)}
	pt.RsRho2 = 4.0 * pt.Rs / (9.0 * n * n)
	d2phi := -(math.Pow(zpf, -4.0/3.0) + math.Pow(zmf, -4.0/3.0)) / 9.0

	for p, su := range [3][2]int{{0, 0}, {0, 1}, {1, 1}} {
		s, u := su[0], su[1]
		pt.PhiRho2[p] = d2phi*zRho[s]*zRho[u] + dphi*zRho2[p]
		pt.EcRho2[p] = pw.d2Rs2*pt.RsRho*pt.RsRho +
			pw.d2RsZ*(pt.RsRho*zRho[u]+zRho[s]*pt.RsRho) +
			pw.d2Z2*zRho[s]*zRho[u] +
			pw.dRs*pt.RsRho2 + pw.dZ*zRho2[p]
		dalpha := -(pt.PhiRho2[p]/pt.Phi - pt.PhiRho[s]*pt.PhiRho[u]/(pt.Phi*pt.Phi)) +
			7.0/(6.0*n*n)
		pt.TRho2[p] = pt.T * (alpha[s]*alpha[u] + dalpha)
	}
	for s := 0; s < 2; s++ {
		for i := 0; i < 3; i++ {
			pt.TRhoSig[s*3+i] = pt.TRho[s] * sigmaW[i] / (2.0 * sigma)
		}
	}
	k := 0
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			pt.TSig2[k] = -pt.T * sigmaW[i] * sigmaW[j] / (4.0 * sigma * sigma)
			k++
		}
	}
	return pt, nil
}

// AssemblePotentials implements the Reducer interface. The energy density is
// F = n*me with me a function of the reduced variables; the chain rule over
// pt's Jacobians produces vrho/vsigma and, at order 2, the kernel blocks.
func (PerdewReducer) AssemblePotentials(pt *ReducedPoint, me float64, out *Output) {
	if pt == nil {
		panic(ErrNilReducedPoint)
	}
	n := pt.Dens

	if pt.Order < 1 {
		return
	}
	var meRho [2]float64
	var meSig [3]float64
	for s := 0; s < 2; s++ {
		meRho[s] = pt.DPhi*pt.PhiRho[s] + pt.DRs*pt.RsRho +
			pt.DT*pt.TRho[s] + pt.DEcUnif*pt.EcRho[s]
	}
	for i := 0; i < 3; i++ {
		meSig[i] = pt.DT * pt.TSig[i]
	}
	if out.VRho != nil {
		for s := 0; s < 2; s++ {
			out.VRho[s] = me + n*meRho[s]
		}
	}
	if out.VSigma != nil {
		for i := 0; i < 3; i++ {
			out.VSigma[i] = n * meSig[i]
		}
	}

	if pt.Order < 2 {
		return
	}
	if out.V2Rho2 != nil {
		for p, su := range [3][2]int{{0, 0}, {0, 1}, {1, 1}} {
			s, u := su[0], su[1]
			cross := pt.D2Phi2*pt.PhiRho[s]*pt.PhiRho[u] +
				pt.D2PhiT*(pt.PhiRho[s]*pt.TRho[u]+pt.TRho[s]*pt.PhiRho[u]) +
				pt.D2PhiEcUnif*(pt.PhiRho[s]*pt.EcRho[u]+pt.EcRho[s]*pt.PhiRho[u]) +
				pt.D2T2*pt.TRho[s]*pt.TRho[u] +
				pt.D2TEcUnif*(pt.TRho[s]*pt.EcRho[u]+pt.EcRho[s]*pt.TRho[u]) +
				pt.D2EcUnif2*pt.EcRho[s]*pt.EcRho[u]
			curv := pt.DPhi*pt.PhiRho2[p] + pt.DRs*pt.RsRho2 +
				pt.DT*pt.TRho2[p] + pt.DEcUnif*pt.EcRho2[p]
			out.V2Rho2[p] = meRho[s] + meRho[u] + n*(cross+curv)
		}
	}
	if out.V2RhoSigma != nil {
		for s := 0; s < 2; s++ {
			for i := 0; i < 3; i++ {
				cross := (pt.D2PhiT*pt.PhiRho[s] + pt.D2T2*pt.TRho[s] +
					pt.D2TEcUnif*pt.EcRho[s]) * pt.TSig[i]
				curv := pt.DT * pt.TRhoSig[s*3+i]
				out.V2RhoSigma[s*3+i] = meSig[i] + n*(cross+curv)
			}
		}
	}
	if out.V2Sigma2 != nil {
		k := 0
		for i := 0; i < 3; i++ {
			for j := i; j < 3; j++ {
				out.V2Sigma2[k] = n * (pt.D2T2*pt.TSig[i]*pt.TSig[j] +
					pt.DT*pt.TSig2[k])
				k++
			}
		}
	}
}
