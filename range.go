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

import "fmt"

/* -------------------------------------------------------------------------- */

// Range object used to identify a genomic subsequence. By convention the first
// position in a sequence is numbered 0. The interval is [From, To).
type Range struct {
  From, To int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewRange(from, to int) (Range, error) {
  if from > to {
    return Range{}, fmt.Errorf("invalid range [%d %d)", from, to)
  }
  return Range{from, to}, nil
}

/* -------------------------------------------------------------------------- */

func (r Range) Length() int {
  return r.To - r.From
}

// Clamp the range to [0, n). The result is empty if both ranges do not
// overlap.
func (r Range) Clamp(n int) Range {
  from := iMax(r.From, 0)
  to   := iMin(r.To,   n)
  if to < from {
    to = from
  }
  return Range{from, to}
}

/* -------------------------------------------------------------------------- */

func (r Range) String() string {
  return fmt.Sprintf("[%d %d)", r.From, r.To)
}
