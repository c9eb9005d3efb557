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
import "io"
import "os"

import "github.com/biogo/hts/bam"
import "github.com/biogo/hts/bgzf/index"
import "github.com/biogo/hts/sam"

/* -------------------------------------------------------------------------- */

// A ReadFilter decides whether a read contributes to the coverage.
type ReadFilter func(*sam.Record) bool

// An AlignedReadSource counts per-position coverage of aligned bases on
// [from, to) of a reference sequence. Only reads accepted by filter and
// bases with quality at least quality are counted.
type AlignedReadSource interface {
  CountCoverage(seqname string, from, to, quality int, filter ReadFilter) ([]int, error)
}

/* read filters
 * -------------------------------------------------------------------------- */

const excludedReads = sam.Unmapped | sam.Secondary | sam.QCFail | sam.Duplicate

func ForwardReads(r *sam.Record) bool {
  return r.Flags&excludedReads == 0 && r.Flags&sam.Reverse == 0
}

func ReverseReads(r *sam.Record) bool {
  return r.Flags&excludedReads == 0 && r.Flags&sam.Reverse != 0
}

/* -------------------------------------------------------------------------- */

// BamSource reads coverage from a BAM file. If an index file
// (<filename>.bai) exists, only the relevant chunks are read, otherwise
// the file is scanned. Each query opens its own file handle, so a source
// may be shared between goroutines.
type BamSource struct {
  Filename string
  refs     map[string]*sam.Reference
  index    *bam.Index
}

func OpenBamSource(filename string) (*BamSource, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  reader, err := bam.NewReader(f, 1)
  if err != nil {
    return nil, fmt.Errorf("%s: %w", filename, err)
  }
  defer reader.Close()

  source := BamSource{Filename: filename, refs: make(map[string]*sam.Reference)}
  for _, ref := range reader.Header().Refs() {
    source.refs[ref.Name()] = ref
  }
  if fi, err := os.Open(filename+".bai"); err == nil {
    defer fi.Close()
    if idx, err := bam.ReadIndex(fi); err != nil {
      return nil, fmt.Errorf("%s.bai: %w", filename, err)
    } else {
      source.index = idx
    }
  }
  return &source, nil
}

/* -------------------------------------------------------------------------- */

func (source *BamSource) CountCoverage(seqname string, from, to, quality int, filter ReadFilter) ([]int, error) {
  ref, ok := source.refs[seqname]
  if !ok {
    return nil, fmt.Errorf("%s: `%s': %w", source.Filename, seqname, ErrChromosomeNotFound)
  }
  if from < 0 || to < from {
    return nil, fmt.Errorf("%s: invalid interval [%d %d): %w", source.Filename, from, to, ErrOutOfBounds)
  }
  counts := make([]int, to-from)

  f, err := os.Open(source.Filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  reader, err := bam.NewReader(f, 1)
  if err != nil {
    return nil, err
  }
  defer reader.Close()

  if source.index == nil {
    for {
      r, err := reader.Read()
      if err == io.EOF {
        break
      }
      if err != nil {
        return nil, err
      }
      if r.Ref != nil && r.Ref.Name() == seqname && filter(r) {
        addAlignedBases(counts, r, from, quality)
      }
    }
    return counts, nil
  }
  chunks, err := source.index.Chunks(ref, from, to)
  if errors.Is(err, index.ErrNoReference) || errors.Is(err, index.ErrInvalid) {
    // no reads on this reference
    return counts, nil
  }
  if err != nil {
    return nil, err
  }
  it, err := bam.NewIterator(reader, chunks)
  if err != nil {
    return nil, err
  }
  defer it.Close()

  for it.Next() {
    if r := it.Record(); r.Ref != nil && r.Ref.ID() == ref.ID() && filter(r) {
      addAlignedBases(counts, r, from, quality)
    }
  }
  return counts, it.Error()
}

// Add all aligned bases of a read with sufficient quality to counts,
// where counts[0] corresponds to position from.
func addAlignedBases(counts []int, r *sam.Record, from, quality int) {
  posRef  := r.Pos
  posRead := 0
  for _, co := range r.Cigar {
    n := co.Len()
    switch co.Type() {
    case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
      for k := 0; k < n; k++ {
        i := posRef + k - from
        if i >= 0 && i < len(counts) && baseQualityPasses(r.Qual, posRead+k, quality) {
          counts[i]++
        }
      }
      posRef  += n
      posRead += n
    case sam.CigarInsertion, sam.CigarSoftClipped:
      posRead += n
    case sam.CigarDeletion, sam.CigarSkipped:
      posRef  += n
    }
  }
}

func baseQualityPasses(qual []byte, i, quality int) bool {
  // missing qualities are stored as 0xff
  if i >= len(qual) || qual[i] == 0xff {
    return true
  }
  return int(qual[i]) >= quality
}
