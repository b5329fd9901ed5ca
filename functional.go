/*
 * functional.go, part of goxc.
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
	"fmt"
	"math"
	"strings"
)

// Variant selects one of the supported parameterizations of the PBE
// correlation functional.
type Variant int

const (
	//PBE is the original parameterization of Perdew, Burke and Ernzerhof,
	//PRL 77, 3865 (1996); erratum PRL 78, 1396 (1997).
	PBE Variant = iota
	//PBESol is the "for solids" reparameterization, Perdew et al.,
	//PRL 100, 136406 (2008).
	PBESol
	//XPBE is the extended PBE of Xu and Goddard, J. Chem. Phys. 121, 4068 (2004).
	XPBE
	//PBERevTPSS is the PBE flavor used as the GGA backbone of revTPSS,
	//Perdew, Ruzsinszky, Csonka, Constantin and Sun, PRL 103, 026403 (2009).
	PBERevTPSS
)

// String returns the lower-case name of the variant.
func (v Variant) String() string {
	switch v {
	case PBE:
		return "pbe"
	case PBESol:
		return "pbesol"
	case XPBE:
		return "xpbe"
	case PBERevTPSS:
		return "pberevtpss"
	}
	return "unknown"
}

// VariantFromString returns the variant named by s (case insensitive), or an
// error if s names no known parameterization.
func VariantFromString(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "pbe":
		return PBE, nil
	case "pbesol", "pbe_sol", "pbe-sol":
		return PBESol, nil
	case "xpbe":
		return XPBE, nil
	case "pberevtpss", "pbe_revtpss", "pbe-revtpss", "revtpss":
		return PBERevTPSS, nil
	}
	return PBE, fmt.Errorf("goxc: no PBE correlation variant named %q", s)
}

// Params holds the constants of one parameterization. Beta sets the magnitude
// of the gradient correction and Gamma its high-gradient saturation scale.
// A Params value is immutable after construction and is always carried by
// value, so sharing a Functional between goroutines is safe.
type Params struct {
	Beta  float64
	Gamma float64
	//RsScaled marks the revTPSS flavor, where Beta is further multiplied
	//by the density-dependent factor (1+0.1*rs)/(1+0.1778*rs).
	RsScaled bool
}

// gammaPBE is (1-ln2)/pi^2, the value that recovers the uniform-gas linear
// response in the original PBE derivation.
var gammaPBE = (1.0 - math.Ln2) / (math.Pi * math.Pi)

// ParamsFor returns the frozen parameter record for the given variant.
// It panics if v is not one of the defined variants, as that is a programming
// error, not a runtime condition.
func ParamsFor(v Variant) Params {
	switch v {
	case PBE:
		return Params{Beta: 0.06672455060314922, Gamma: gammaPBE}
	case PBESol:
		return Params{Beta: 0.046, Gamma: gammaPBE}
	case XPBE:
		b := 0.089809
		return Params{Beta: b, Gamma: b * b / (2.0 * 0.197363)}
	case PBERevTPSS:
		return Params{Beta: 0.06672455060314922, Gamma: gammaPBE, RsScaled: true}
	}
	panic(ErrUnknownVariant)
}

// rsFactor evaluates the revTPSS rs-dependent prefactor and its derivative.
// For the other variants it is identically 1 with zero derivative.
func (P Params) rsFactor(rs float64) (p, dp float64) {
	if !P.RsScaled {
		return 1.0, 0.0
	}
	den := 1.0 + 0.1778*rs
	p = (1.0 + 0.1*rs) / den
	dp = (0.1 - 0.1778) / (den * den)
	return p, dp
}
