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

import   "errors"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestGenome1(t *testing.T) {
  genome := NewGenome()
  for _, name := range []string{"chr2", "chr1", "chrX"} {
    c, err := NewChromosome(name, 5, nil)
    require.NoError(t, err)
    genome.Add(c)
  }
  assert.Equal(t, 3, genome.Length())
  assert.Equal(t, []string{"chr1", "chr2", "chrX"}, genome.Seqnames())
  assert.Len(t, genome.Chromosomes(), 3)
  assert.True(t, genome.Contains("chrX"))

  // replace an existing chromosome
  c, _ := NewChromosome("chr1", 20, nil)
  genome.Add(c)
  r, err := genome.Get("chr1")
  require.NoError(t, err)
  assert.Equal(t, 20, r.Len())
  assert.Equal(t, 3, genome.Length())

  require.NoError(t, genome.Remove("chrX"))
  assert.False(t, genome.Contains("chrX"))

  _, err = genome.Get("chrX")
  assert.True(t, errors.Is(err, ErrChromosomeNotFound))
  assert.True(t, errors.Is(genome.Remove("chrX"), ErrChromosomeNotFound))
}

func TestGenome2(t *testing.T) {
  filename := writeTestFileGz(t, "test.chrom.sizes", "chr1\t1000\n\nchr2\t200\n")
  sizes, err := ReadChromSizes(filename)
  require.NoError(t, err)
  assert.Equal(t, []string{"chr1", "chr2"}, sizes.Seqnames)

  n, err := sizes.SeqLength("chr2")
  require.NoError(t, err)
  assert.Equal(t, 200, n)

  _, err = sizes.SeqLength("chr3")
  assert.True(t, errors.Is(err, ErrChromosomeNotFound))

  _, err = ReadChromSizes(writeTestFile(t, "broken.chrom.sizes", "chr1\n"))
  assert.Error(t, err)
}

/* -------------------------------------------------------------------------- */

func TestRange1(t *testing.T) {
  _, err := NewRange(5, 4)
  assert.Error(t, err)

  r, err := NewRange(-3, 10)
  require.NoError(t, err)
  assert.Equal(t, 13, r.Length())
  assert.Equal(t, Range{0, 8}, r.Clamp(8))
  assert.Equal(t, Range{0, 0}, Range{-5, -2}.Clamp(8))
  assert.Equal(t, "[-3 10)", r.String())
}
