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

import "github.com/sirupsen/logrus"
import "gonum.org/v1/gonum/floats"
import "gonum.org/v1/gonum/interp"

/* -------------------------------------------------------------------------- */

type CoverageConfig struct {
  Logger           logrus.FieldLogger
  QualityThreshold int
  OrientReads      bool
}

func CoverageDefaultConfig() CoverageConfig {
  config := CoverageConfig{}
  config.Logger           = discardLogger()
  config.QualityThreshold = 15
  config.OrientReads      = false
  return config
}

func newCoverageConfig(options ...interface{}) (CoverageConfig, error) {
  config := CoverageDefaultConfig()
  for _, option := range options {
    switch opt := option.(type) {
    case OptionLogger:
      config.Logger = opt.Value
    case OptionQualityThreshold:
      config.QualityThreshold = opt.Value
    case OptionOrientReads:
      config.OrientReads = opt.Value
    default:
      return config, fmt.Errorf("invalid option: %v", opt)
    }
  }
  return config, nil
}

/* -------------------------------------------------------------------------- */

// An ExtractFunc returns forward and reverse strand coverage of a region
// on the window [start, stop).
type ExtractFunc func(region Region, start, stop int) ([]float64, []float64, error)

// Raw coverage on [from, to), reversed reports whether both vectors were
// reversed to follow the orientation of the region.
type rawCoverageFunc func(region Region, from, to int) (forward, reverse []float64, reversed bool, err error)

func newRawCoverageFunction(source interface{}, config CoverageConfig) (rawCoverageFunc, error) {
  switch src := source.(type) {
  case *Genome:
    return genomeCoverageFunction(src), nil
  case AlignedReadSource:
    return alignedCoverageFunction(src, config), nil
  default:
    return nil, fmt.Errorf("%T: %w", source, ErrUnsupportedSource)
  }
}

func genomeCoverageFunction(genome *Genome) rawCoverageFunc {
  return func(region Region, from, to int) ([]float64, []float64, bool, error) {
    c, err := genome.Get(region.Seqname)
    if err != nil {
      return nil, nil, false, err
    }
    s, err := c.Slice(Range{from, to})
    if err != nil {
      return nil, nil, false, err
    }
    if region.Strand == '-' {
      return reverseFloat64(s[forwardRow]), reverseFloat64(s[reverseRow]), true, nil
    }
    return s[forwardRow], s[reverseRow], false, nil
  }
}

func alignedCoverageFunction(source AlignedReadSource, config CoverageConfig) rawCoverageFunc {
  count := func(region Region, from, to int, filter ReadFilter, strand string) ([]float64, error) {
    counts, err := source.CountCoverage(region.Seqname, from, to, config.QualityThreshold, filter)
    if err != nil {
      config.Logger.WithFields(logrus.Fields{
        "reference"        : region.Seqname,
        "start"            : from,
        "stop"             : to,
        "quality_threshold": config.QualityThreshold,
        "strand"           : strand,
      }).Errorf("counting coverage failed: %v", err)
      return nil, err
    }
    result := make([]float64, len(counts))
    for i, n := range counts {
      result[i] = float64(n)
    }
    return result, nil
  }
  return func(region Region, from, to int) ([]float64, []float64, bool, error) {
    forward, err := count(region, from, to, ForwardReads, "+")
    if err != nil {
      return nil, nil, false, err
    }
    reverse, err := count(region, from, to, ReverseReads, "-")
    if err != nil {
      return nil, nil, false, err
    }
    if config.OrientReads && region.Strand == '-' {
      return reverseFloat64(forward), reverseFloat64(reverse), true, nil
    }
    return forward, reverse, false, nil
  }
}

/* summed coverage
 * -------------------------------------------------------------------------- */

// Total coverage of each strand. A negative start is clamped to zero,
// which shortens the summed window.
func SumCoverageMaker(source interface{}, options ...interface{}) (ExtractFunc, error) {
  config, err := newCoverageConfig(options...)
  if err != nil {
    return nil, err
  }
  raw, err := newRawCoverageFunction(source, config)
  if err != nil {
    return nil, err
  }
  return func(region Region, start, stop int) ([]float64, []float64, error) {
    forward, reverse, _, err := raw(region, iMax(start, 0), stop)
    if err != nil {
      return nil, nil, err
    }
    return []float64{floats.Sum(forward)}, []float64{floats.Sum(reverse)}, nil
  }, nil
}

/* resized coverage
 * -------------------------------------------------------------------------- */

// Linear interpolation of values at n evenly spaced points spanning the
// same index range.
func resizeCoverage(values []float64, n int) ([]float64, error) {
  if len(values) < 2 {
    return nil, fmt.Errorf("resizing %d values: %w", len(values), ErrInterpolation)
  }
  xs := make([]float64, len(values))
  for i := range xs {
    xs[i] = float64(i)
  }
  pl := interp.PiecewiseLinear{}
  if err := pl.Fit(xs, values); err != nil {
    return nil, err
  }
  result := make([]float64, n)
  if n == 1 {
    result[0] = pl.Predict(0)
    return result, nil
  }
  floats.Span(result, 0, xs[len(xs)-1])
  for i, x := range result {
    result[i] = pl.Predict(x)
  }
  return result, nil
}

// Coverage of each strand interpolated to newSize values. A negative
// start is clamped to zero.
func ResizedCoverageMaker(source interface{}, newSize int, options ...interface{}) (ExtractFunc, error) {
  if newSize <= 0 {
    return nil, fmt.Errorf("invalid size %d", newSize)
  }
  config, err := newCoverageConfig(options...)
  if err != nil {
    return nil, err
  }
  raw, err := newRawCoverageFunction(source, config)
  if err != nil {
    return nil, err
  }
  return func(region Region, start, stop int) ([]float64, []float64, error) {
    forward, reverse, _, err := raw(region, iMax(start, 0), stop)
    if err != nil {
      return nil, nil, err
    }
    if forward, err = resizeCoverage(forward, newSize); err != nil {
      return nil, nil, err
    }
    if reverse, err = resizeCoverage(reverse, newSize); err != nil {
      return nil, nil, err
    }
    return forward, reverse, nil
  }, nil
}

/* padded coverage
 * -------------------------------------------------------------------------- */

// Coverage of each strand aligned on the reference position of the
// region with exactly maxLeft values before and maxRight values after
// it. Positions without data are NaN.
func PaddedCoverageMaker(source interface{}, maxLeft, maxRight int, options ...interface{}) (ExtractFunc, error) {
  if maxLeft < 0 || maxRight < 0 {
    return nil, fmt.Errorf("invalid padding extents (%d, %d)", maxLeft, maxRight)
  }
  config, err := newCoverageConfig(options...)
  if err != nil {
    return nil, err
  }
  raw, err := newRawCoverageFunction(source, config)
  if err != nil {
    return nil, err
  }
  return func(region Region, start, stop int) ([]float64, []float64, error) {
    if stop < start {
      return nil, nil, fmt.Errorf("invalid window [%d %d)", start, stop)
    }
    forward, reverse, reversed, err := raw(region, iMax(start, 0), stop)
    if err != nil {
      return nil, nil, err
    }
    // restore positions left of the chromosome start
    if start < 0 {
      forward = padMissing(forward, -start, reversed)
      reverse = padMissing(reverse, -start, reversed)
    }
    // index of the reference position within the window
    ref := region.Position - start
    if reversed {
      ref = stop - 1 - region.Position
    }
    lead  := maxLeft  - ref
    trail := maxRight - (stop - start - 1 - ref)
    if lead < 0 || trail < 0 {
      return nil, nil, fmt.Errorf("region %v: window [%d %d) around position %d: %w",
        region, start, stop, region.Position, ErrPadding)
    }
    forward = append(append(nanFloat64(lead), forward...), nanFloat64(trail)...)
    reverse = append(append(nanFloat64(lead), reverse...), nanFloat64(trail)...)
    return forward, reverse, nil
  }, nil
}

// Insert n placeholders on the side of the chromosome start, which is
// the end of reversed vectors.
func padMissing(values []float64, n int, reversed bool) []float64 {
  if reversed {
    return append(values, nanFloat64(n)...)
  }
  return append(nanFloat64(n), values...)
}
