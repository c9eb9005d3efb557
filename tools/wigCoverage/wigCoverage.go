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

package main

/* -------------------------------------------------------------------------- */

import   "bufio"
import   "fmt"
import   "log"
import   "math"
import   "os"
import   "strconv"
import   "strings"

import   "github.com/kelseyhightower/envconfig"
import   "github.com/pbenner/threadpool"
import   "github.com/pborman/getopt"
import   "github.com/sirupsen/logrus"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

import . "github.com/pbenner/wigcov"
import   "github.com/pbenner/wigcov/lib/progress"

/* -------------------------------------------------------------------------- */

type Config struct {
  Verbose    int    `envconfig:"VERBOSE"`
  Threads    int    `envconfig:"THREADS" default:"1"`
  Quality    int    `envconfig:"QUALITY" default:"15"`
  Mode       string `ignored:"true"`
  Size       int    `ignored:"true"`
  Left       int    `ignored:"true"`
  Right      int    `ignored:"true"`
  ChromSizes string `ignored:"true"`
  Plot       string `ignored:"true"`
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

func newLogger(config Config) logrus.FieldLogger {
  logger := logrus.New()
  logger.SetOutput(os.Stderr)
  switch {
  case config.Verbose >= 2:
    logger.SetLevel(logrus.DebugLevel)
  case config.Verbose == 1:
    logger.SetLevel(logrus.InfoLevel)
  default:
    logger.SetLevel(logrus.WarnLevel)
  }
  return logger
}

/* -------------------------------------------------------------------------- */

func importRegions(config Config, description string) []Region {
  var regions []Region
  var err     error
  if tmp := strings.Split(description, ":"); len(tmp) == 3 && tmp[0] == "ucsc" {
    PrintStderr(config, 1, "Importing regions from UCSC table `%s/%s'... ", tmp[1], tmp[2])
    regions, err = ImportRegionsFromUCSC(tmp[1], tmp[2])
  } else {
    PrintStderr(config, 1, "Reading regions from `%s'... ", description)
    regions, err = ReadRegionsBed6(description)
  }
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return regions
}

func importSource(config Config, filenameWig, filenameForward, filenameReverse, filenameBam string) interface{} {
  if filenameBam != "" {
    if filenameWig != "" || filenameForward != "" || filenameReverse != "" {
      log.Fatal("bam input cannot be combined with wiggle input")
    }
    source, err := OpenBamSource(filenameBam)
    if err != nil {
      log.Fatal(err)
    }
    return source
  }
  options := []interface{}{OptionLogger{Value: newLogger(config)}}
  if config.ChromSizes != "" {
    if sizes, err := ReadChromSizes(config.ChromSizes); err != nil {
      log.Fatal(err)
    } else {
      options = append(options, OptionChromSizes{Value: sizes})
    }
  }
  parser, err := NewWigParser(filenameWig, filenameForward, filenameReverse, options...)
  if err != nil {
    log.Fatal(err)
  }
  genome, err := parser.Parse()
  if err != nil {
    log.Fatal(err)
  }
  return genome
}

/* -------------------------------------------------------------------------- */

func newExtractFunc(config Config, source interface{}) ExtractFunc {
  var f   ExtractFunc
  var err error
  options := []interface{}{OptionLogger{Value: newLogger(config)}, OptionQualityThreshold{Value: config.Quality}}
  // windows of minus strand regions are oriented, so read counts must be too
  if _, ok := source.(AlignedReadSource); ok {
    options = append(options, OptionOrientReads{Value: true})
  }
  switch config.Mode {
  case "sum":
    f, err = SumCoverageMaker(source, options...)
  case "resized":
    f, err = ResizedCoverageMaker(source, config.Size, options...)
  case "padded":
    f, err = PaddedCoverageMaker(source, config.Left, config.Right, options...)
  default:
    err = fmt.Errorf("invalid mode `%s'", config.Mode)
  }
  if err != nil {
    log.Fatal(err)
  }
  return f
}

// Window of a region, padded coverage uses a window around the
// reference position.
func window(config Config, region Region) (int, int) {
  if config.Mode == "padded" {
    return region.Window(config.Left, config.Right)
  }
  return region.Range.From, region.Range.To
}

func extract(config Config, source interface{}, regions []Region) ([][]float64, [][]float64) {
  f       := newExtractFunc(config, source)
  forward := make([][]float64, len(regions))
  reverse := make([][]float64, len(regions))

  pool := threadpool.New(config.Threads, 100*config.Threads)
  jg   := pool.NewJobGroup()
  bar  := progress.New(os.Stderr, len(regions), 100)

  PrintStderr(config, 1, "Extracting coverage (%s) for %d regions...\n", config.Mode, len(regions))
  if err := pool.AddRangeJob(0, len(regions), jg, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if erf() != nil {
      return nil
    }
    start, stop := window(config, regions[i])
    if x, y, err := f(regions[i], start, stop); err != nil {
      return fmt.Errorf("region `%s' %v: %w", regions[i].Name, regions[i], err)
    } else {
      forward[i] = x
      reverse[i] = y
    }
    if config.Verbose > 0 {
      bar.Increment()
    }
    return nil
  }); err != nil {
    log.Fatal(err)
  }
  if err := pool.Wait(jg); err != nil {
    log.Fatal(err)
  }
  return forward, reverse
}

/* -------------------------------------------------------------------------- */

func formatValues(x []float64) string {
  s := make([]string, len(x))
  for i, v := range x {
    s[i] = strconv.FormatFloat(v, 'g', -1, 64)
  }
  return strings.Join(s, ",")
}

func writeTable(config Config, filename string, regions []Region, forward, reverse [][]float64) {
  PrintStderr(config, 1, "Writing table `%s'... ", filename)
  f, err := os.Create(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  defer f.Close()

  w := bufio.NewWriter(f)
  fmt.Fprintf(w, "name\tseqname\tfrom\tto\tstrand\tforward\treverse\n")
  for i, r := range regions {
    fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%c\t%s\t%s\n", r.Name, r.Seqname, r.Range.From, r.Range.To, r.Strand,
      formatValues(forward[i]), formatValues(reverse[i]))
  }
  if err := w.Flush(); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

// Column-wise mean ignoring NaN values.
func meanProfile(x [][]float64) plotter.XYs {
  n := 0
  for _, row := range x {
    if len(row) > n {
      n = len(row)
    }
  }
  xy := make(plotter.XYs, n)
  for j := 0; j < n; j++ {
    sum, k := 0.0, 0
    for _, row := range x {
      if j < len(row) && !math.IsNaN(row[j]) {
        sum += row[j]; k++
      }
    }
    xy[j].X = float64(j)
    if k > 0 {
      xy[j].Y = sum/float64(k)
    }
  }
  return xy
}

func savePlot(config Config, filename string, forward, reverse [][]float64) {
  p := plot.New()
  p.Title.Text   = "mean coverage"
  p.X.Label.Text = "position"
  p.Y.Label.Text = "coverage"
  if config.Mode == "padded" {
    p.X.Label.Text = fmt.Sprintf("position (reference at %d)", config.Left)
  }
  if err := plotutil.AddLines(p, "forward", meanProfile(forward), "reverse", meanProfile(reverse)); err != nil {
    log.Fatal(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote coverage profile to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config := Config{}
  if err := envconfig.Process("wigcov", &config); err != nil {
    log.Fatal(err)
  }
  options := getopt.New()

  optWig        := options. StringLong("wig",          0 , "",     "wiggle file, negative values are reverse strand coverage")
  optForward    := options. StringLong("forward",      0 , "",     "wiggle file with forward strand coverage")
  optReverse    := options. StringLong("reverse",      0 , "",     "wiggle file with reverse strand coverage")
  optBam        := options. StringLong("bam",          0 , "",     "bam file with aligned reads")
  optChromSizes := options. StringLong("chrom-sizes",  0 , "",     "chromosome sizes used to allocate the genome")
  optMode       := options. StringLong("mode",         0 , "sum",  "coverage summary [sum (default), resized, padded]")
  optSize       := options.    IntLong("size",         0 , 100,    "number of values per region in resized mode")
  optLeft       := options.    IntLong("left",         0 , 1000,   "positions upstream of the reference position in padded mode")
  optRight      := options.    IntLong("right",        0 , 1000,   "positions downstream of the reference position in padded mode")
  optQuality    := options.    IntLong("quality",      0 , config.Quality, "minimum base quality of aligned reads")
  optPlot       := options. StringLong("plot",         0 , "",     "save mean coverage profile to file")
  optThreads    := options.    IntLong("threads",     't', config.Threads, "number of threads")
  optHelp       := options.   BoolLong("help",        'h',         "print help")
  optVerbose    := options.CounterLong("verbose",     'v',         "be verbose")

  options.SetParameters("<REGIONS.bed|ucsc:GENOME:TABLE> <OUTPUT.table>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optThreads < 1 {
    log.Fatalf("invalid number of threads `%d'", *optThreads)
  }
  config.Verbose   += *optVerbose
  config.Threads    = *optThreads
  config.Quality    = *optQuality
  config.Mode       = *optMode
  config.Size       = *optSize
  config.Left       = *optLeft
  config.Right      = *optRight
  config.ChromSizes = *optChromSizes
  config.Plot       = *optPlot

  regions := importRegions(config, options.Args()[0])
  source  := importSource(config, *optWig, *optForward, *optReverse, *optBam)

  forward, reverse := extract(config, source, regions)

  writeTable(config, options.Args()[1], regions, forward, reverse)

  if config.Plot != "" {
    savePlot(config, config.Plot, forward, reverse)
  }
}
