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

import "math"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

func iMax(a, b int) int {
  if a > b {
    return a
  } else {
    return b
  }
}

/* -------------------------------------------------------------------------- */

func removeQuotes(str string) string {
  if n := len(str); n >= 2 {
    if (str[0] == '"' && str[n-1] == '"') || (str[0] == '\'' && str[n-1] == '\'') {
      return str[1:n-1]
    }
  }
  return str
}

/* -------------------------------------------------------------------------- */

func reverseFloat64(x []float64) []float64 {
  y := make([]float64, len(x))
  for i := 0; i < len(x); i++ {
    y[len(x)-i-1] = x[i]
  }
  return y
}

func nanFloat64(n int) []float64 {
  x := make([]float64, n)
  for i := range x {
    x[i] = math.NaN()
  }
  return x
}
