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
import   "strings"
import   "testing"

import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

func TestChunk1(t *testing.T) {
  for _, line := range []string{
    "chrom=chr1 step=10",
    "chrom=chr1 start=0 step=10",
    "chrom=chr1 start=1 step=0",
    "chrom=chr1 start=1 step=2 span=3",
    "chrom=chr1 start=1 step=2 span=0",
    "start=1 step=10",
    "chrom=chr1 start=x",
    "chrom=chr1 start=1 foo=bar",
    "chrom=chr1 start",
  } {
    _, err := NewFixedChunk(strings.Fields(line))
    var e *FormatError
    assert.True(t, errors.As(err, &e), "fixedStep %s", line)
  }
  c, err := NewFixedChunk(strings.Fields("chrom=chr1 start=3 step=4 span=2"))
  require.NoError(t, err)
  assert.Equal(t, FixedChunk{Chrom: "chr1", Span: 2, Start: 3, Step: 4, cursor: 2}, *c)

  c, err  = NewFixedChunk(strings.Fields("chrom=chr2 start=1"))
  require.NoError(t, err)
  assert.Equal(t, 1, c.Span)
  assert.Equal(t, 1, c.Step)
}

func TestChunk2(t *testing.T) {
  for _, line := range []string{
    "span=3",
    "chrom=chr1 span=-1",
    "chrom=chr1 start=1",
  } {
    _, err := NewVariableChunk(strings.Fields(line))
    var e *FormatError
    assert.True(t, errors.As(err, &e), "variableStep %s", line)
  }
  c, err := NewVariableChunk(strings.Fields("chrom=chrX"))
  require.NoError(t, err)
  assert.Equal(t, VariableChunk{Chrom: "chrX", Span: 1}, *c)
}

func TestChunk3(t *testing.T) {
  // a value is written to span consecutive positions
  chunk, err := NewVariableChunk(strings.Fields("chrom=chr1 span=3"))
  require.NoError(t, err)
  c, err := NewChromosome("chr1", 20, nil)
  require.NoError(t, err)

  require.NoError(t, chunk.ReadData([]string{"10", "5"}, c, StrandMixed))
  s, _ := c.Slice(Range{8, 13})
  assert.Equal(t, []float64{0, 5, 5, 5, 0}, s[0])

  assert.Error(t, chunk.ReadData([]string{"0", "5"}, c, StrandMixed))
  assert.Error(t, chunk.ReadData([]string{"5"}, c, StrandMixed))
  assert.Error(t, chunk.ReadData([]string{"5", "a"}, c, StrandMixed))
}

func TestChunk4(t *testing.T) {
  chunk, err := NewFixedChunk(strings.Fields("chrom=chr1 start=2 step=3 span=2"))
  require.NoError(t, err)
  c, err := NewChromosome("chr1", 0, nil)
  require.NoError(t, err)

  for _, v := range []string{"1", "-2", "3"} {
    require.NoError(t, chunk.ReadData([]string{v}, c, StrandMixed))
  }
  s, err := c.Slice(Range{0, 9})
  require.NoError(t, err)
  assert.Equal(t, []float64{0, 1, 1, 0, 0, 0, 0, 3, 3}, s[0])
  assert.Equal(t, []float64{0, 0, 0, 0, 2, 2, 0, 0, 0}, s[1])
}

func TestChunk5(t *testing.T) {
  // strand files ignore the sign of values, zero stays on the file's strand
  chunk, err := NewVariableChunk(strings.Fields("chrom=chr1"))
  require.NoError(t, err)
  c, err := NewChromosome("chr1", 4, nil)
  require.NoError(t, err)

  require.NoError(t, chunk.ReadData([]string{"1", "-4"}, c, StrandForward))
  require.NoError(t, chunk.ReadData([]string{"2",  "3"}, c, StrandReverse))
  require.NoError(t, chunk.ReadData([]string{"1",  "2"}, c, StrandReverse))
  require.NoError(t, chunk.ReadData([]string{"1",  "0"}, c, StrandReverse))

  s, _ := c.Slice(Range{0, 2})
  assert.Equal(t, []float64{4, 0}, s[0])
  assert.Equal(t, []float64{0, 3}, s[1])

  _, err = convertCoverage(1, StrandMode("x"))
  assert.Error(t, err)
}
