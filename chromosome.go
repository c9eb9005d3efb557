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
import "math"

import "gonum.org/v1/gonum/floats"

/* -------------------------------------------------------------------------- */

// Bytes required for one position, i.e. one float64 for each strand.
const bytesPerColumn = 16

// Largest capacity a chromosome may allocate, independent of the probe.
const maxCapacity = 1 << 40

const (
  forwardRow = 0
  reverseRow = 1
)

// A Chromosome holds per-base coverage for both strands of a single
// sequence. Row 0 contains the forward strand, row 1 the reverse strand.
// The capacity grows on demand when writing beyond the last position and
// never shrinks. Unwritten positions are zero.
type Chromosome struct {
  Name  string
  data  [2][]float64
  probe MemoryProbe
}

/* constructor
 * -------------------------------------------------------------------------- */

// Allocate a new chromosome with the given initial capacity. The probe
// is consulted before allocating, a nil probe disables the check.
func NewChromosome(name string, capacity int, probe MemoryProbe) (*Chromosome, error) {
  if capacity < 0 {
    return nil, fmt.Errorf("chromosome `%s': invalid capacity %d", name, capacity)
  }
  c := Chromosome{Name: name, probe: probe}
  if err := c.checkMemory(capacity); err != nil {
    return nil, err
  }
  c.data[forwardRow] = make([]float64, capacity)
  c.data[reverseRow] = make([]float64, capacity)
  return &c, nil
}

/* -------------------------------------------------------------------------- */

func (c *Chromosome) checkMemory(capacity int) error {
  if capacity > maxCapacity {
    return fmt.Errorf("chromosome `%s': capacity %d exceeds the maximum of %d positions: %w",
      c.Name, capacity, maxCapacity, ErrOutOfMemory)
  }
  if c.probe == nil {
    return nil
  }
  status, err := c.probe()
  if err != nil {
    return fmt.Errorf("chromosome `%s': querying memory failed: %w", c.Name, err)
  }
  // capacity*bytesPerColumn + resident <= available, without overflowing
  if status.Resident > status.Available || uint64(capacity) > (status.Available-status.Resident)/bytesPerColumn {
    return fmt.Errorf("chromosome `%s': allocating %d positions requires more than the %d bytes available: %w",
      c.Name, capacity, status.Available, ErrOutOfMemory)
  }
  return nil
}

// Grow the buffer such that position n-1 is valid. The capacity is at
// least doubled.
func (c *Chromosome) extend(n int) error {
  if n < 0 {
    return fmt.Errorf("chromosome `%s': position overflow: %w", c.Name, ErrOutOfBounds)
  }
  if n <= c.Len() {
    return nil
  }
  capacity := iMax(2*c.Len(), n)
  if err := c.checkMemory(capacity); err != nil {
    return err
  }
  for i := range c.data {
    t := make([]float64, capacity)
    copy(t, c.data[i])
    c.data[i] = t
  }
  return nil
}

/* access methods
 * -------------------------------------------------------------------------- */

// Current capacity of the chromosome.
func (c *Chromosome) Len() int {
  return len(c.data[forwardRow])
}

// Set the coverage at a single position. Non-negative values are stored
// on the forward strand, negative values as absolute value on the
// reverse strand.
func (c *Chromosome) Set(position int, value float64) error {
  if position < 0 {
    return fmt.Errorf("chromosome `%s': negative position %d: %w", c.Name, position, ErrOutOfBounds)
  }
  if err := c.extend(position+1); err != nil {
    return err
  }
  if value >= 0 {
    c.data[forwardRow][position] = value
  } else {
    c.data[reverseRow][position] = -value
  }
  return nil
}

// Set the coverage on the slice [r.From, r.To). All values must have
// the same sign, which selects the strand.
func (c *Chromosome) SetSlice(r Range, values []float64) error {
  if r.From < 0 || r.To < r.From {
    return fmt.Errorf("chromosome `%s': invalid slice %v: %w", c.Name, r, ErrOutOfBounds)
  }
  if len(values) != r.Length() {
    return fmt.Errorf("chromosome `%s': slice %v has length %d but %d values were given: %w",
      c.Name, r, r.Length(), len(values), ErrLengthMismatch)
  }
  if len(values) == 0 {
    return nil
  }
  row := forwardRow
  if values[0] < 0 {
    row = reverseRow
  }
  for _, v := range values[1:] {
    if (v < 0) != (row == reverseRow) {
      return fmt.Errorf("chromosome `%s': slice %v: %w", c.Name, r, ErrMixedStrand)
    }
  }
  if err := c.extend(r.To); err != nil {
    return err
  }
  dst := c.data[row][r.From:r.To]
  for i, v := range values {
    if v < 0 {
      dst[i] = -v
    } else {
      dst[i] = v
    }
  }
  return nil
}

// Write |value| to all positions in r on the selected strand.
func (c *Chromosome) fill(r Range, value float64, reverse bool) error {
  if r.From < 0 || r.To < r.From {
    return fmt.Errorf("chromosome `%s': invalid slice %v: %w", c.Name, r, ErrOutOfBounds)
  }
  if err := c.extend(r.To); err != nil {
    return err
  }
  row := forwardRow
  if reverse {
    row = reverseRow
  }
  dst := c.data[row][r.From:r.To]
  for i := range dst {
    dst[i] = math.Abs(value)
  }
  return nil
}

// Coverage on both strands at the given position.
func (c *Chromosome) At(position int) ([2]float64, error) {
  if position < 0 || position >= c.Len() {
    return [2]float64{}, fmt.Errorf("chromosome `%s': position %d: %w", c.Name, position, ErrOutOfBounds)
  }
  return [2]float64{c.data[forwardRow][position], c.data[reverseRow][position]}, nil
}

// Copy of the coverage on both strands within [r.From, r.To). Reading
// never extends the chromosome.
func (c *Chromosome) Slice(r Range) ([2][]float64, error) {
  if r.From < 0 || r.To < r.From || r.To > c.Len() {
    return [2][]float64{}, fmt.Errorf("chromosome `%s': slice %v exceeds capacity %d: %w", c.Name, r, c.Len(), ErrOutOfBounds)
  }
  result := [2][]float64{}
  for i := range c.data {
    result[i] = make([]float64, r.Length())
    copy(result[i], c.data[i][r.From:r.To])
  }
  return result, nil
}

// Total coverage on the forward and reverse strand.
func (c *Chromosome) Sum() [2]float64 {
  return [2]float64{floats.Sum(c.data[forwardRow]), floats.Sum(c.data[reverseRow])}
}
