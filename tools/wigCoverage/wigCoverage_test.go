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

package main

/* -------------------------------------------------------------------------- */

import   "math"
import   "testing"

import   "github.com/stretchr/testify/assert"

import . "github.com/pbenner/wigcov"

/* -------------------------------------------------------------------------- */

func TestWigCoverage1(t *testing.T) {
  xy := meanProfile([][]float64{
    {1, math.NaN(), 3},
    {3, 4},
    {math.NaN(), math.NaN(), math.NaN()},
  })
  assert.Len(t, xy, 3)
  assert.Equal(t, 2.0, xy[0].Y)
  assert.Equal(t, 4.0, xy[1].Y)
  assert.Equal(t, 3.0, xy[2].Y)
  assert.Equal(t, 2.0, xy[2].X)
}

func TestWigCoverage2(t *testing.T) {
  region, _ := NewRegion("a", "chr1", 100, 200, '-')

  from, to := window(Config{Mode: "sum"}, region)
  assert.Equal(t, [2]int{100, 200}, [2]int{from, to})

  from, to  = window(Config{Mode: "padded", Left: 10, Right: 5}, region)
  assert.Equal(t, [2]int{194, 210}, [2]int{from, to})

  assert.Equal(t, "1,2.5,NaN", formatValues([]float64{1, 2.5, math.NaN()}))
}
