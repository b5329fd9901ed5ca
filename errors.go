/*
 * errors.go, part of goxc.
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

import "fmt"

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the given string to the "decoration" slice of the error and returns the resulting slice. If given an empty string, it just returns the current slice.
}

// DomainError is the interface for errors caused by inputs outside the domain
// of the functional (vanishing density, inconsistent spin polarization, a
// uniform-gas energy of exactly zero). The evaluation that produced it wrote
// NaN sentinels into the requested energy output rather than aborting.
type DomainError interface {
	Error
	Domain() //does nothing, just to separate this interface from other Errors
}

// OrderError is the interface for errors caused by requesting a derivative
// order a parameterization does not provide (second derivatives for the
// revTPSS flavor). First-order results are still valid when it is returned;
// the unsupported tier is zero-filled.
type OrderError interface {
	Error
	OrderUnsupported() //does nothing, just to separate this interface from other Errors
}

type numError struct {
	message string
	deco    []string
	domain  bool
	order   bool
}

func (err numError) Error() string { return fmt.Sprintf("goxc: %s", err.message) }

// Decorate adds new information to the error. Even though the receiver is not
// a pointer, appending to the deco slice works, as the slice is a pointer itself.
func (err numError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err numError) Domain() {}

func (err numError) OrderUnsupported() {}

func newDomainError(message string, caller string) error {
	return numError{message: message, deco: []string{caller}, domain: true}
}

func newOrderError(message string, caller string) error {
	return numError{message: message, deco: []string{caller}, order: true}
}

// IsDomain returns true if err reports inputs outside the domain of the
// functional.
func IsDomain(err error) bool {
	e, ok := err.(numError)
	return ok && e.domain
}

// IsOrderUnsupported returns true if err reports a derivative order the
// selected parameterization does not provide.
func IsOrderUnsupported(err error) bool {
	e, ok := err.(numError)
	return ok && e.order
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before returning it. Used with anything else, it will panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics. It does satisfy the error interface,
// but for recoverable errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilOutput       = PanicMsg("goxc: given a nil Output")
	ErrOutputLen       = PanicMsg("goxc: an Output slice has the wrong length")
	ErrUnknownVariant  = PanicMsg("goxc: unknown functional variant")
	ErrNilReducedPoint = PanicMsg("goxc: given a nil ReducedPoint")
)
