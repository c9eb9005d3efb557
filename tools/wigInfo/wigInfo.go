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

import   "fmt"
import   "log"
import   "os"

import   "github.com/kelseyhightower/envconfig"
import   "github.com/pborman/getopt"
import   "github.com/sirupsen/logrus"
import   "gopkg.in/yaml.v3"

import . "github.com/pbenner/wigcov"

/* -------------------------------------------------------------------------- */

type Config struct {
  Verbose int `envconfig:"VERBOSE"`
}

type ChromosomeSummary struct {
  Name     string  `yaml:"name"`
  Capacity int     `yaml:"capacity"`
  Forward  float64 `yaml:"forward"`
  Reverse  float64 `yaml:"reverse"`
}

type Summary struct {
  Infos       Infos               `yaml:"infos"`
  Chromosomes []ChromosomeSummary `yaml:"chromosomes"`
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func summarize(genome *Genome) Summary {
  s := Summary{Infos: genome.Infos}
  for _, name := range genome.Seqnames() {
    c, _ := genome.Get(name)
    sum  := c.Sum()
    s.Chromosomes = append(s.Chromosomes, ChromosomeSummary{
      Name    : name,
      Capacity: c.Len(),
      Forward : sum[0],
      Reverse : sum[1] })
  }
  return s
}

func printSummary(genome *Genome) {
  encoder := yaml.NewEncoder(os.Stdout)
  encoder.SetIndent(2)
  if err := encoder.Encode(summarize(genome)); err != nil {
    log.Fatal(err)
  }
  if err := encoder.Close(); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config := Config{}
  if err := envconfig.Process("wigcov", &config); err != nil {
    log.Fatal(err)
  }
  options := getopt.New()

  optForward  := options. StringLong("forward",  0 , "", "wiggle file with forward strand coverage")
  optReverse  := options. StringLong("reverse",  0 , "", "wiggle file with reverse strand coverage")
  optExport   := options. StringLong("export",   0 , "", "export coverage to a single wiggle file")
  optName     := options. StringLong("name",     0 , "coverage", "track name of the exported file")
  optCompress := options.   BoolLong("compress", 0 ,     "gzip the exported file")
  optHelp     := options.   BoolLong("help",    'h',     "print help")
  optVerbose  := options.CounterLong("verbose", 'v',     "be verbose")

  options.SetParameters("[INPUT.wig]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) > 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Verbose += *optVerbose

  filenameMixed := ""
  if len(options.Args()) == 1 {
    filenameMixed = options.Args()[0]
  }
  logger := logrus.New()
  logger.SetOutput(os.Stderr)
  if config.Verbose > 0 {
    logger.SetLevel(logrus.InfoLevel)
  } else {
    logger.SetLevel(logrus.WarnLevel)
  }
  parser, err := NewWigParser(filenameMixed, *optForward, *optReverse, OptionLogger{Value: logger})
  if err != nil {
    log.Fatal(err)
  }
  genome, err := parser.Parse()
  if err != nil {
    log.Fatal(err)
  }
  printSummary(genome)

  if *optExport != "" {
    PrintStderr(config, 1, "Exporting coverage to `%s'... ", *optExport)
    if err := genome.ExportWiggle(*optExport, *optName, "", *optCompress); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}
