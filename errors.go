/* Copyright (C) 2016 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package wigcov

/* -------------------------------------------------------------------------- */

import "errors"
import "fmt"

/* -------------------------------------------------------------------------- */

var (
  ErrOutOfMemory        = errors.New("out of memory")
  ErrOutOfBounds        = errors.New("index out of bounds")
  ErrUnsupportedSource  = errors.New("unsupported coverage source")
  ErrChromosomeNotFound = errors.New("chromosome not found")
  ErrLengthMismatch     = errors.New("length of values does not match slice length")
  ErrMixedStrand        = errors.New("values of a slice must not have mixed signs")
  ErrPadding            = errors.New("coverage window exceeds padding extents")
  ErrInterpolation      = errors.New("too few values for interpolation")
)

/* -------------------------------------------------------------------------- */

// FormatError reports malformed wiggle content or an invalid parser
// configuration. Line is 1-based and zero if the error is not tied to a
// line.
type FormatError struct {
  Filename string
  Line     int
  Text     string
  Msg      string
}

func newFormatError(format string, args ...interface{}) *FormatError {
  return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

func (err *FormatError) Error() string {
  switch {
  case err.Line > 0 && err.Filename != "":
    return fmt.Sprintf("%s:%d: %s: `%s'", err.Filename, err.Line, err.Msg, err.Text)
  case err.Line > 0:
    return fmt.Sprintf("line %d: %s: `%s'", err.Line, err.Msg, err.Text)
  default:
    return err.Msg
  }
}
