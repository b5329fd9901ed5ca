/*
 * table.go, part of goxc.
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
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

// TableW writes evaluated grid rows to a compressed table file.
type TableW struct {
	f         *os.File
	h         io.WriteCloser
	cols      int
	filename  string
	writeable bool
}

// zstd.Encoder satisfies io.WriteCloser already; the decoder side needs the
// small adapter below.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (s zstdql) Close() error {
	s.closeql()
	return nil
}

// NewWriter creates a table file with the given number of columns. The
// compression is chosen from the last letter of the file name: 'z' gzip,
// 'r' raw deflate, anything else z-standard. The header map, if any, is
// stored as key=value lines.
func NewWriter(name string, cols int, header map[string]string) (*TableW, error) {
	if cols <= 0 {
		return nil, Error{"table must have at least one column", name, []string{"NewWriter"}, true}
	}
	T := new(TableW)
	var err error
	T.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	var anyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch strings.ToLower(name)[len(name)-1] {
	case 'z':
		anyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, gzip.BestCompression) }
	case 'r':
		anyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, flate.BestCompression) }
	default:
		anyNewWriter = func(a io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		}
	}
	T.h, err = anyNewWriter(T.f)
	if err != nil {
		T.f.Close()
		return nil, Error{"can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	for k, v := range header {
		fmt.Fprintf(T.h, "%s=%v\n", k, v)
	}
	fmt.Fprintf(T.h, "** %d\n", cols)
	T.cols = cols
	T.filename = name
	T.writeable = true
	return T, nil
}

// Cols returns the number of columns per row.
func (T *TableW) Cols() int { return T.cols }

// WNext writes one row to the table.
func (T *TableW) WNext(row []float64) error {
	if !T.writeable {
		return Error{TableUnIniWrite, T.filename, []string{"WNext"}, true}
	}
	if len(row) != T.cols {
		return Error{fmt.Sprintf("%d columns given, but %d expected", len(row), T.cols), T.filename, []string{"WNext"}, true}
	}
	for i, v := range row {
		if i > 0 {
			io.WriteString(T.h, " ")
		}
		fmt.Fprintf(T.h, "%.15e", v)
	}
	io.WriteString(T.h, "\n")
	return nil
}

// Close flushes and closes the table. The handle is unusable afterwards.
func (T *TableW) Close() {
	if T == nil || !T.writeable {
		return
	}
	T.h.Close()
	T.f.Close()
	T.writeable = false
}

// TableR reads rows back from a compressed table file.
type TableR struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	cols     int
	filename string
	readable bool
}

// NewReader opens a table file and returns a handle, the header map (nil if
// the file carries no header lines) and an error or nil.
func NewReader(name string) (*TableR, map[string]string, error) {
	T := new(TableR)
	T.filename = name
	var err error
	T.f, err = os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	var anyNewReader func(io.Reader) (io.ReadCloser, error)
	switch strings.ToLower(name)[len(name)-1] {
	case 'z':
		anyNewReader = func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	case 'r':
		anyNewReader = func(a io.Reader) (io.ReadCloser, error) { return flate.NewReader(a), nil }
	default:
		anyNewReader = func(a io.Reader) (io.ReadCloser, error) {
			r, err := zstd.NewReader(a)
			if err != nil {
				return nil, err
			}
			return zstdql{r.Close, r}, nil
		}
	}
	T.z, err = anyNewReader(bufio.NewReader(T.f))
	if err != nil {
		T.f.Close()
		return nil, nil, Error{"can't set up decompression: " + err.Error(), name, []string{"NewReader"}, true}
	}
	T.h = bufio.NewReader(T.z)
	var m map[string]string
	for {
		str, err := T.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"can't read header: " + err.Error(), name, []string{"NewReader"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			fields := strings.Fields(str)
			if len(fields) < 2 {
				return nil, nil, Error{"malformed column count line: " + str, name, []string{"NewReader"}, true}
			}
			T.cols, err = strconv.Atoi(fields[1])
			if err != nil || T.cols <= 0 {
				return nil, nil, Error{"malformed column count: " + fields[1], name, []string{"NewReader"}, true}
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			return nil, nil, Error{"malformed header line: " + str, name, []string{"NewReader"}, true}
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[kv[0]] = kv[1]
	}
	T.readable = true
	return T, m, nil
}

// Cols returns the number of columns per row.
func (T *TableR) Cols() int { return T.cols }

// Next reads one row into the given slice, which must have Cols() elements.
// At the end of the table it returns an error satisfying LastRowError, which
// signals normal termination, not a failure.
func (T *TableR) Next(row []float64) error {
	if !T.readable {
		return Error{TableUnIniRead, T.filename, []string{"Next"}, true}
	}
	if len(row) != T.cols {
		return Error{fmt.Sprintf("%d columns wanted, but rows have %d", len(row), T.cols), T.filename, []string{"Next"}, true}
	}
	str, err := T.h.ReadString('\n')
	if err != nil {
		if err == io.EOF && str == "" {
			T.Close()
			return newLastRowError(T.filename, "Next")
		}
		return Error{err.Error(), T.filename, []string{"Next"}, true}
	}
	fields := strings.Fields(str)
	if len(fields) != T.cols {
		return Error{fmt.Sprintf("row with %d fields, want %d", len(fields), T.cols), T.filename, []string{"Next"}, true}
	}
	for i, v := range fields {
		row[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return Error{fmt.Sprintf("can't parse column %d (%s): %s", i, v, err.Error()), T.filename, []string{"Next"}, true}
		}
	}
	return nil
}

// Close closes the handle and marks it unreadable.
func (T *TableR) Close() {
	if T == nil || !T.readable {
		return
	}
	T.z.Close()
	T.f.Close()
	T.readable = false
}

// WriteTable stores a whole result matrix in one call.
func WriteTable(name string, m *mat.Dense, header map[string]string) error {
	rows, cols := m.Dims()
	T, err := NewWriter(name, cols, header)
	if err != nil {
		return err
	}
	defer T.Close()
	for i := 0; i < rows; i++ {
		if err := T.WNext(m.RawRowView(i)); err != nil {
			return errDecorate(err, "WriteTable")
		}
	}
	return nil
}

// ReadTable loads a whole table file into a matrix, plus its header map.
func ReadTable(name string) (*mat.Dense, map[string]string, error) {
	T, header, err := NewReader(name)
	if err != nil {
		return nil, nil, err
	}
	defer T.Close()
	var data []float64
	row := make([]float64, T.Cols())
	rows := 0
	for {
		err := T.Next(row)
		if err != nil {
			if _, last := err.(LastRowError); last {
				break
			}
			return nil, nil, errDecorate(err, "ReadTable")
		}
		data = append(data, row...)
		rows++
	}
	if rows == 0 {
		return nil, header, nil
	}
	return mat.NewDense(rows, T.Cols(), data), header, nil
}
