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

import "bufio"
import "fmt"
import "strconv"
import "strings"

import "github.com/brentp/xopen"

/* -------------------------------------------------------------------------- */

// A genomic feature for which coverage is extracted. Position is the
// 0-based reference position used to align padded coverage, by default
// the 5' end of the feature.
type Region struct {
  Name     string
  Seqname  string
  Range    Range
  Strand   byte
  Position int
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewRegion(name, seqname string, from, to int, strand byte) (Region, error) {
  r, err := NewRange(from, to)
  if err != nil {
    return Region{}, err
  }
  switch strand {
  case '+', '*':
    return Region{name, seqname, r, strand, from}, nil
  case '-':
    return Region{name, seqname, r, strand, to-1}, nil
  default:
    return Region{}, fmt.Errorf("region `%s': invalid strand `%c'", name, strand)
  }
}

/* -------------------------------------------------------------------------- */

// Window [start, stop) with left positions upstream and right positions
// downstream of the reference position.
func (region Region) Window(left, right int) (int, int) {
  if region.Strand == '-' {
    return region.Position-right, region.Position+left+1
  }
  return region.Position-left, region.Position+right+1
}

func (region Region) String() string {
  return fmt.Sprintf("%s:%v(%c)", region.Seqname, region.Range, region.Strand)
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import regions from a bed file with at least six columns.
func ReadRegionsBed6(filename string) ([]Region, error) {
  f, err := xopen.Ropen(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  regions := []Region{}
  scanner := bufio.NewScanner(f)
  for i := 1; scanner.Scan(); i++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 || fields[0] == "track" || fields[0] == "browser" || strings.HasPrefix(fields[0], "#") {
      continue
    }
    if len(fields) < 6 {
      return nil, fmt.Errorf("%s:%d: bed file must have at least six columns", filename, i)
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64); if err != nil {
      return nil, fmt.Errorf("%s:%d: %w", filename, i, err)
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64); if err != nil {
      return nil, fmt.Errorf("%s:%d: %w", filename, i, err)
    }
    strand := fields[5][0]
    if strand == '.' {
      strand = '*'
    }
    r, err := NewRegion(fields[3], fields[0], int(t1), int(t2), strand)
    if err != nil {
      return nil, fmt.Errorf("%s:%d: %w", filename, i, err)
    }
    regions = append(regions, r)
  }
  return regions, scanner.Err()
}
