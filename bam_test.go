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
import   "os"
import   "path/filepath"
import   "testing"

import   "github.com/biogo/hts/bam"
import   "github.com/biogo/hts/sam"
import   "github.com/stretchr/testify/assert"
import   "github.com/stretchr/testify/require"

/* -------------------------------------------------------------------------- */

type testRead struct {
  name  string
  pos   int
  cigar []sam.CigarOp
  seq   string
  qual  []byte
  flags sam.Flags
}

func writeTestBam(t *testing.T, reads []testRead) string {
  ref, err := sam.NewReference("chr1", "", "", 1000, nil, nil)
  require.NoError(t, err)
  header, err := sam.NewHeader(nil, []*sam.Reference{ref})
  require.NoError(t, err)

  filename := filepath.Join(t.TempDir(), "test.bam")
  f, err := os.Create(filename)
  require.NoError(t, err)
  defer f.Close()

  w, err := bam.NewWriter(f, header, 1)
  require.NoError(t, err)
  for _, read := range reads {
    r, err := sam.NewRecord(read.name, ref, nil, read.pos, -1, 0, 60, read.cigar, []byte(read.seq), read.qual, nil)
    require.NoError(t, err)
    r.Flags = read.flags
    require.NoError(t, w.Write(r))
  }
  require.NoError(t, w.Close())
  return filename
}

func testBamReads() []testRead {
  m := func(n int) sam.CigarOp { return sam.NewCigarOp(sam.CigarMatch, n) }
  return []testRead{
    {"r1", 10, []sam.CigarOp{m(5)}, "ACGTA", []byte{30, 30, 30, 30, 30}, 0},
    {"r2", 10, []sam.CigarOp{m(4)}, "ACGT",  []byte{30, 30, 30, 30}, sam.Reverse},
    {"r3", 10, []sam.CigarOp{m(4)}, "ACGT",  []byte{30, 30, 30, 30}, sam.Duplicate},
    {"r4", 12, []sam.CigarOp{m(2), sam.NewCigarOp(sam.CigarDeletion, 3), m(2)}, "ACGT", []byte{30, 30, 10, 30}, 0},
    {"r5", 20, []sam.CigarOp{sam.NewCigarOp(sam.CigarSoftClipped, 2), m(3)}, "ACGTA", []byte{30, 30, 30, 30, 30}, 0},
  }
}

/* -------------------------------------------------------------------------- */

func TestBam1(t *testing.T) {
  source, err := OpenBamSource(writeTestBam(t, testBamReads()))
  require.NoError(t, err)

  counts, err := source.CountCoverage("chr1", 10, 25, 20, ForwardReads)
  require.NoError(t, err)
  assert.Equal(t, []int{1, 1, 2, 2, 1, 0, 0, 0, 1, 0, 1, 1, 1, 0, 0}, counts)

  // low quality base at position 17 is counted without threshold
  counts, err = source.CountCoverage("chr1", 17, 18, 0, ForwardReads)
  require.NoError(t, err)
  assert.Equal(t, []int{1}, counts)

  counts, err = source.CountCoverage("chr1", 8, 15, 20, ReverseReads)
  require.NoError(t, err)
  assert.Equal(t, []int{0, 0, 1, 1, 1, 1, 0}, counts)

  _, err = source.CountCoverage("chr2", 0, 10, 20, ForwardReads)
  assert.True(t, errors.Is(err, ErrChromosomeNotFound))

  _, err = source.CountCoverage("chr1", 10, 5, 20, ForwardReads)
  assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestBam2(t *testing.T) {
  source, err := OpenBamSource(writeTestBam(t, testBamReads()))
  require.NoError(t, err)

  f, err := PaddedCoverageMaker(source, 2, 2, OptionQualityThreshold{20})
  require.NoError(t, err)

  region, _ := NewRegion("a", "chr1", 8, 13, '-')
  start, stop := region.Window(2, 2)
  x, y, err := f(region, start, stop)
  require.NoError(t, err)
  // positions 10, 11, 12, 13, 14
  assert.Equal(t, []float64{1, 1, 2, 2, 1}, x)
  assert.Equal(t, []float64{1, 1, 1, 1, 0}, y)

  g, err := PaddedCoverageMaker(source, 2, 2, OptionQualityThreshold{20}, OptionOrientReads{true})
  require.NoError(t, err)
  x, y, err = g(region, start, stop)
  require.NoError(t, err)
  // positions 14, 13, 12, 11, 10
  assert.Equal(t, []float64{1, 2, 2, 1, 1}, x)
  assert.Equal(t, []float64{0, 1, 1, 1, 1}, y)

  _, err = OpenBamSource(filepath.Join(t.TempDir(), "missing.bam"))
  assert.Error(t, err)
}

func TestBam3(t *testing.T) {
  r := sam.Record{}
  assert.True (t, ForwardReads(&r))
  assert.False(t, ReverseReads(&r))
  r.Flags = sam.Reverse
  assert.False(t, ForwardReads(&r))
  assert.True (t, ReverseReads(&r))
  for _, flag := range []sam.Flags{sam.Unmapped, sam.Secondary, sam.QCFail, sam.Duplicate} {
    r.Flags = flag
    assert.False(t, ForwardReads(&r))
    r.Flags = flag | sam.Reverse
    assert.False(t, ReverseReads(&r))
  }
  assert.True (t, baseQualityPasses([]byte{0xff}, 0, 40))
  assert.True (t, baseQualityPasses(nil, 3, 40))
  assert.False(t, baseQualityPasses([]byte{39}, 0, 40))
}
