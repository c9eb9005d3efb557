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
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Strand of the values in a wiggle file.
type StrandMode string

const (
  StrandForward StrandMode = "+"
  StrandReverse StrandMode = "-"
  // the sign of a value determines its strand
  StrandMixed   StrandMode = "mixed"
)

func convertCoverage(value float64, mode StrandMode) (float64, error) {
  switch mode {
  case StrandMixed:
    return value, nil
  case StrandForward:
    return math.Abs(value), nil
  case StrandReverse:
    return -math.Abs(value), nil
  default:
    return 0, newFormatError("invalid strand mode `%s'", mode)
  }
}

/* -------------------------------------------------------------------------- */

// A Chunk is the state of an open fixedStep or variableStep declaration
// block. Each data line of the block is passed to ReadData.
type Chunk interface {
  Seqname() string
  ReadData(fields []string, c *Chromosome, mode StrandMode) error
}

// Write span copies of value starting at position.
func writeSpan(c *Chromosome, position, span int, value float64, mode StrandMode) error {
  v, err := convertCoverage(value, mode)
  if err != nil {
    return err
  }
  return c.fill(Range{position, position+span}, v, v < 0 || mode == StrandReverse)
}

/* declaration lines
 * -------------------------------------------------------------------------- */

type declaration struct {
  chrom string
  span  int
  start int
  step  int
  // which optional fields were given
  hasStart bool
}

func parseDeclarationInt(key, value string) (int, error) {
  t, err := strconv.ParseInt(value, 10, 64)
  if err != nil {
    return 0, newFormatError("declaration line has invalid `%s' value `%s'", key, value)
  }
  return int(t), nil
}

// Parse key=value fields of a declaration line. The keyword itself must
// not be part of fields.
func parseDeclaration(fields []string, allowed ...string) (declaration, error) {
  d := declaration{span: 1, step: 1}
  for _, field := range fields {
    kv := strings.SplitN(field, "=", 2)
    if len(kv) != 2 || kv[0] == "" {
      return d, newFormatError("invalid declaration field `%s'", field)
    }
    key, value := kv[0], kv[1]
    ok := false
    for _, a := range allowed {
      if key == a {
        ok = true
      }
    }
    if !ok {
      return d, newFormatError("declaration line has unknown field `%s'", key)
    }
    var err error
    switch key {
    case "chrom":
      d.chrom = value
    case "span":
      d.span, err = parseDeclarationInt(key, value)
    case "step":
      d.step, err = parseDeclarationInt(key, value)
    case "start":
      d.start, err = parseDeclarationInt(key, value)
      d.hasStart = true
    }
    if err != nil {
      return d, err
    }
  }
  if d.chrom == "" {
    return d, newFormatError("declaration line is missing the chromosome name (chrom)")
  }
  if d.span <= 0 {
    return d, newFormatError("declaration line defines invalid span %d", d.span)
  }
  return d, nil
}

/* fixedStep
 * -------------------------------------------------------------------------- */

// Declaration block with values at constant stride. The first value is
// written at start, each further value step positions later.
type FixedChunk struct {
  Chrom string
  Span  int
  Start int
  Step  int
  // 0-based position of the next value
  cursor int
}

func NewFixedChunk(fields []string) (*FixedChunk, error) {
  d, err := parseDeclaration(fields, "chrom", "start", "step", "span")
  if err != nil {
    return nil, err
  }
  if d.step <= 0 {
    return nil, newFormatError("declaration line defines invalid step %d", d.step)
  }
  if !d.hasStart {
    return nil, newFormatError("declaration line is missing the start position (start)")
  }
  if d.start < 1 {
    return nil, newFormatError("declaration line defines invalid start position %d", d.start)
  }
  if d.span > d.step {
    return nil, newFormatError("declaration line defines span %d larger than step %d", d.span, d.step)
  }
  return &FixedChunk{Chrom: d.chrom, Span: d.span, Start: d.start, Step: d.step, cursor: d.start-1}, nil
}

func (chunk *FixedChunk) Seqname() string {
  return chunk.Chrom
}

func (chunk *FixedChunk) ReadData(fields []string, c *Chromosome, mode StrandMode) error {
  if len(fields) != 1 {
    return newFormatError("fixedStep data line must contain a single value")
  }
  value, err := strconv.ParseFloat(fields[0], 64)
  if err != nil {
    return newFormatError("invalid data value `%s'", fields[0])
  }
  if err := writeSpan(c, chunk.cursor, chunk.Span, value, mode); err != nil {
    return err
  }
  chunk.cursor += chunk.Step
  return nil
}

/* variableStep
 * -------------------------------------------------------------------------- */

// Declaration block where each data line gives a 1-based position and a
// value. Forward and reverse values may cover different positions, gaps
// between them remain zero.
type VariableChunk struct {
  Chrom string
  Span  int
}

func NewVariableChunk(fields []string) (*VariableChunk, error) {
  d, err := parseDeclaration(fields, "chrom", "span")
  if err != nil {
    return nil, err
  }
  return &VariableChunk{Chrom: d.chrom, Span: d.span}, nil
}

func (chunk *VariableChunk) Seqname() string {
  return chunk.Chrom
}

func (chunk *VariableChunk) ReadData(fields []string, c *Chromosome, mode StrandMode) error {
  if len(fields) != 2 {
    return newFormatError("variableStep data line must contain a position and a value")
  }
  position, err := strconv.ParseInt(fields[0], 10, 64)
  if err != nil {
    return newFormatError("invalid position `%s'", fields[0])
  }
  if position < 1 {
    return newFormatError("invalid chromosomal position %d", position)
  }
  value, err := strconv.ParseFloat(fields[1], 64)
  if err != nil {
    return newFormatError("invalid data value `%s'", fields[1])
  }
  return writeSpan(c, int(position)-1, chunk.Span, value, mode)
}
