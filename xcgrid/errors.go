/*
 * errors.go, part of goxc.
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

	xc "github.com/qcgo/goxc"
)

// Error is the general structure for table errors. It fulfills xc.Error.
type Error struct {
	message  string
	filename string //the table file with problems, or empty string if none
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("xcgrid table %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error. Even though the receiver is not
// a pointer, appending to the deco slice works, as the slice is a pointer itself.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the table file associated with the error.
func (err Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

// errDecorate asserts that err implements xc.Error and decorates it with the
// caller's name before returning it. Used with anything else, it will panic.
func errDecorate(err error, caller string) error {
	err2 := err.(xc.Error)
	err2.Decorate(caller)
	return err2
}

const (
	TableUnIniRead  = "table object uninitialized to read"
	TableUnIniWrite = "table object uninitialized to write"
)

// LastRowError signals the normal end of a table: harmless, and
// distinguishable from the real failures by a type switch.
type LastRowError interface {
	xc.Error
	FileName() string
	NormalLastRowTermination() //does nothing, just to separate this interface from other errors
}

type lastRowError struct {
	deco     []string
	fileName string
}

func (err lastRowError) NormalLastRowTermination() {}

func (err lastRowError) FileName() string { return err.fileName }

func (err lastRowError) Error() string { return "EOF" }

func (err lastRowError) Critical() bool { return false }

func (err lastRowError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func newLastRowError(filename string, caller string) lastRowError {
	return lastRowError{fileName: filename, deco: []string{caller}}
}
