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

import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestRegion1(t *testing.T) {
  r1, err := NewRegion("a", "chr1", 100, 200, '+')
  require.NoError(t, err)
  assert.Equal(t, 100, r1.Position)

  r2, err := NewRegion("b", "chr1", 100, 200, '-')
  require.NoError(t, err)
  assert.Equal(t, 199, r2.Position)

  from, to := r1.Window(10, 5)
  assert.Equal(t, [2]int{90, 106}, [2]int{from, to})
  from, to  = r2.Window(10, 5)
  assert.Equal(t, [2]int{194, 210}, [2]int{from, to})

  _, err = NewRegion("c", "chr1", 100, 200, 'x')
  assert.Error(t, err)
  _, err = NewRegion("c", "chr1", 200, 100, '+')
  assert.Error(t, err)
}

func TestRegion2(t *testing.T) {
  filename := writeTestFile(t, "test.bed", `track name=test
# comment
chr1	10	20	r1	0	+
chr2	30	40	r2	0	-
chr3	50	60	r3	0	.
`)
  regions, err := ReadRegionsBed6(filename)
  require.NoError(t, err)
  require.Len(t, regions, 3)
  assert.Equal(t, Region{"r1", "chr1", Range{10, 20}, '+', 10}, regions[0])
  assert.Equal(t, Region{"r2", "chr2", Range{30, 40}, '-', 39}, regions[1])
  assert.Equal(t, byte('*'), regions[2].Strand)

  _, err = ReadRegionsBed6(writeTestFile(t, "broken.bed", "chr1\t10\t20\n"))
  assert.Error(t, err)
}

func TestRegion3(t *testing.T) {
  _, err := importRegionsFromDB("genome@tcp(localhost:1)/hg19", "knownGene; DROP TABLE x")
  assert.Error(t, err)
}
