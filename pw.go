/*
 * pw.go, part of goxc.
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

/*The uniform-electron-gas correlation energy of Perdew and Wang,
PRB 45, 13244 (1992), in the "modified" parameterization (PW_MOD): the
original A coefficients keep their unrounded values and the spin
interpolation uses the exact f''(0). This is the low-level collaborator of
the PBE correlation functional in this package.*/

// one channel of the PW92 fit, eq. 10 of the paper.
type pwSet struct {
	a      float64
	alpha1 float64
	beta1  float64
	beta2  float64
	beta3  float64
	beta4  float64
}

var (
	pwEc0   = pwSet{0.0310907, 0.21370, 7.5957, 3.5876, 1.6382, 0.49294}   //ec(rs,0)
	pwEc1   = pwSet{0.01554535, 0.20548, 14.1189, 6.1977, 3.3662, 0.62517} //ec(rs,1)
	pwAlpha = pwSet{0.0168869, 0.11125, 10.357, 3.6231, 0.88026, 0.49671}  //-alpha_c(rs)
)

// exact f''(0) = 8/(9*(2^(4/3)-2))
const pwFZZ0 = 1.709920934161365617563962776245

// pwG evaluates one fit channel G(rs) and, for order >= 1 and >= 2, its first
// and second derivatives with respect to rs.
func pwG(p pwSet, rs float64, order int) (g, dg, d2g float64) {
	srs := math.Sqrt(rs)
	q0 := -2.0 * p.a * (1.0 + p.alpha1*rs)
	q1 := 2.0 * p.a * (p.beta1*srs + p.beta2*rs + p.beta3*rs*srs + p.beta4*rs*rs)
	l := math.Log1p(1.0 / q1)
	g = q0 * l
	if order < 1 {
		return g, 0, 0
	}
	dq0 := -2.0 * p.a * p.alpha1
	dq1 := p.a * (p.beta1/srs + 2.0*p.beta2 + 3.0*p.beta3*srs + 4.0*p.beta4*rs)
	qq := q1*q1 + q1
	dl := -dq1 / qq
	dg = dq0*l + q0*dl
	if order < 2 {
		return g, dg, 0
	}
	d2q1 := p.a * (-0.5*p.beta1/(rs*srs) + 1.5*p.beta3/srs + 4.0*p.beta4)
	d2l := -(d2q1*qq - dq1*dq1*(2.0*q1+1.0)) / (qq * qq)
	d2g = 2.0*dq0*dl + q0*d2l
	return g, dg, d2g
}

// pwResult carries ec(rs,zeta) and its partial derivatives with respect to rs
// and zeta. Slots above the requested order are left at zero.
type pwResult struct {
	ec                 float64
	dRs, dZ            float64
	d2Rs2, d2RsZ, d2Z2 float64
}

// spin interpolation function f(zeta) of PW92 and its first two derivatives.
// The bases 1+zeta and 1-zeta are floored at minZeta so the (divergent)
// second derivative stays finite at full polarization.
func pwFZeta(zeta float64, order int) (f, df, d2f float64) {
	den := math.Pow(2.0, 4.0/3.0) - 2.0
	zp := 1.0 + zeta
	zm := 1.0 - zeta
	if zp < minZeta {
		zp = minZeta
	}
	if zm < minZeta {
		zm = minZeta
	}
	f = (math.Pow(zp, 4.0/3.0) + math.Pow(zm, 4.0/3.0) - 2.0) / den
	if order < 1 {
		return f, 0, 0
	}
	df = (4.0 / 3.0) * (math.Cbrt(zp) - math.Cbrt(zm)) / den
	if order < 2 {
		return f, df, 0
	}
	d2f = (4.0 / 9.0) * (math.Pow(zp, -2.0/3.0) + math.Pow(zm, -2.0/3.0)) / den
	return f, df, d2f
}

// pwCorrelation evaluates the PW_MOD uniform-gas correlation energy per
// particle at the given Wigner-Seitz radius and spin polarization, with
// derivatives through the requested order.
func pwCorrelation(rs, zeta float64, order int) pwResult {
	var r pwResult
	e0, de0, d2e0 := pwG(pwEc0, rs, order)
	e1, de1, d2e1 := pwG(pwEc1, rs, order)
	ma, dma, d2ma := pwG(pwAlpha, rs, order)
	//the fit stores -alpha_c
	ac, dac, d2ac := -ma, -dma, -d2ma

	f, df, d2f := pwFZeta(zeta, order)
	z3 := zeta * zeta * zeta
	z4 := z3 * zeta

	r.ec = e0 + ac*(f/pwFZZ0)*(1.0-z4) + (e1-e0)*f*z4
	if order < 1 {
		return r
	}
	r.dRs = de0 + dac*(f/pwFZZ0)*(1.0-z4) + (de1-de0)*f*z4
	r.dZ = ac/pwFZZ0*(df*(1.0-z4)-4.0*z3*f) + (e1-e0)*(df*z4+4.0*z3*f)
	if order < 2 {
		return r
	}
	r.d2Rs2 = d2e0 + d2ac*(f/pwFZZ0)*(1.0-z4) + (d2e1-d2e0)*f*z4
	r.d2RsZ = dac/pwFZZ0*(df*(1.0-z4)-4.0*z3*f) + (de1-de0)*(df*z4+4.0*z3*f)
	r.d2Z2 = ac/pwFZZ0*(d2f*(1.0-z4)-8.0*z3*df-12.0*zeta*zeta*f) +
		(e1-e0)*(d2f*z4+8.0*z3*df+12.0*zeta*zeta*f)
	return r
}
