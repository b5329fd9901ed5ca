/*
 * doc.go, part of goxc.
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

/*Package xc evaluates the correlation part of the Perdew-Burke-Ernzerhof (PBE)
family of generalized-gradient-approximation (GGA) density functionals, together
with its first and second analytic derivatives with respect to the spin densities
and their contracted gradient invariants.


	**goxc capabilities**

    Evaluates the PBE correlation energy per particle for the original PBE
	parameterization (Perdew, Burke and Ernzerhof, PRL 77, 3865 (1996)), for
	PBEsol (Perdew et al., PRL 100, 136406 (2008)), for xPBE (Xu and Goddard,
	J. Chem. Phys. 121, 4068 (2004)) and for the PBE flavor used inside
	revTPSS (Perdew et al., PRL 103, 026403 (2009)).

    Produces the exchange-correlation potentials vrho and vsigma (first
	derivatives of the energy density) and the kernel v2rho2, v2rhosigma and
	v2sigma2 (second derivatives), written into caller-provided slices so the
	caller keeps control of storage. A nil slice skips the corresponding tier.

    Ships the modified Perdew-Wang 92 parameterization of the uniform
	electron gas correlation (Perdew and Wang, PRB 45, 13244 (1992)) as the
	default low-level collaborator, behind a small interface so it can be
	replaced.

    All quantities are in Hartree atomic units.

The evaluator is a pure function of its inputs: no state survives a call, so
Functional values can be shared freely between goroutines. The xcgrid
subpackage evaluates whole tables of points concurrently, and xcplot draws
the usual diagnostic curves.
*/
package xc
