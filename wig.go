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
import "errors"
import "fmt"
import "io"
import "regexp"
import "strings"

import "github.com/brentp/xopen"
import "github.com/sirupsen/logrus"

/* -------------------------------------------------------------------------- */

const DefaultInitialCapacity = 750000

var (
  wigDataRegexp        = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?(\s+[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)?$`)
  wigDeclarationRegexp = regexp.MustCompile(`^(fixedStep|variableStep)(\s|$)`)
  wigTrackRegexp       = regexp.MustCompile(`^track(\s|$)`)
  wigCommentRegexp     = regexp.MustCompile(`^#`)
  wigAttributeRegexp   = regexp.MustCompile(`([^\s=]+)=("[^"]*"|'[^']*'|\S+)`)
)

/* -------------------------------------------------------------------------- */

type WigConfig struct {
  Logger           logrus.FieldLogger
  InitialCapacity  int
  MemoryProbe      MemoryProbe
  ChromSizes       ChromSizes
}

func WigDefaultConfig() WigConfig {
  config := WigConfig{}
  config.Logger          = discardLogger()
  config.InitialCapacity = DefaultInitialCapacity
  config.MemoryProbe     = SystemMemoryProbe
  return config
}

func newWigConfig(options ...interface{}) (WigConfig, error) {
  config := WigDefaultConfig()
  for _, option := range options {
    switch opt := option.(type) {
    case OptionLogger:
      config.Logger = opt.Value
    case OptionInitialCapacity:
      config.InitialCapacity = opt.Value
    case OptionMemoryProbe:
      config.MemoryProbe = opt.Value
    case OptionChromSizes:
      config.ChromSizes = opt.Value
    default:
      return config, fmt.Errorf("invalid option: %v", opt)
    }
  }
  return config, nil
}

/* -------------------------------------------------------------------------- */

// A WigParser reads either a single wiggle file where the sign of a
// value encodes its strand, or up to two files with forward and reverse
// strand coverage.
type WigParser struct {
  Mixed   string
  Forward string
  Reverse string
  config  WigConfig
  // parse state
  genome       *Genome
  currentChunk Chunk
  currentChrom *Chromosome
}

func NewWigParser(mixed, forward, reverse string, options ...interface{}) (*WigParser, error) {
  if mixed != "" && (forward != "" || reverse != "") {
    return nil, newFormatError("a mixed wiggle file cannot be combined with strand specific files")
  }
  if mixed == "" && forward == "" && reverse == "" {
    return nil, newFormatError("no wiggle file given")
  }
  config, err := newWigConfig(options...)
  if err != nil {
    return nil, err
  }
  return &WigParser{Mixed: mixed, Forward: forward, Reverse: reverse, config: config}, nil
}

/* -------------------------------------------------------------------------- */

// Parse all configured files. Each call starts with an empty genome.
func (parser *WigParser) Parse() (*Genome, error) {
  parser.genome = NewGenome()

  inputs := []struct {
    filename string
    mode     StrandMode
  }{
    {parser.Mixed,   StrandMixed},
    {parser.Forward, StrandForward},
    {parser.Reverse, StrandReverse},
  }
  for _, input := range inputs {
    if input.filename == "" {
      continue
    }
    if err := parser.importFile(input.filename, input.mode); err != nil {
      return nil, err
    }
  }
  return parser.genome, nil
}

func (parser *WigParser) importFile(filename string, mode StrandMode) error {
  parser.config.Logger.Infof("Reading wiggle file `%s' (strand: %s)", filename, mode)
  f, err := xopen.Ropen(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  return parser.read(f, filename, mode)
}

// Read wiggle data from a stream into a new genome.
func ReadWiggle(reader io.Reader, mode StrandMode, options ...interface{}) (*Genome, error) {
  config, err := newWigConfig(options...)
  if err != nil {
    return nil, err
  }
  parser := WigParser{config: config, genome: NewGenome()}
  if err := parser.read(reader, "", mode); err != nil {
    return nil, err
  }
  return parser.genome, nil
}

/* -------------------------------------------------------------------------- */

func (parser *WigParser) read(reader io.Reader, filename string, mode StrandMode) error {
  if _, err := convertCoverage(0, mode); err != nil {
    return err
  }
  // a new file never continues a declaration block
  parser.currentChunk = nil
  parser.currentChrom = nil

  nDeclarations := 0
  nData         := 0

  scanner := bufio.NewScanner(reader)
  scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

  for i := 1; scanner.Scan(); i++ {
    line := strings.TrimSpace(scanner.Text())
    var err error
    switch {
    case wigDataRegexp.MatchString(line):
      err = parser.readData(line, mode)
      nData++
    case wigDeclarationRegexp.MatchString(line):
      err = parser.readDeclaration(line)
      nDeclarations++
    case wigTrackRegexp.MatchString(line):
      err = parser.readTrack(line, mode)
    case wigCommentRegexp.MatchString(line):
    case line == "":
    default:
      err = newFormatError("malformed line")
    }
    if err != nil {
      return annotateError(err, filename, i, line)
    }
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  parser.config.Logger.Debugf("Read %d declaration blocks with %d data lines", nDeclarations, nData)
  return nil
}

func annotateError(err error, filename string, line int, text string) error {
  var e *FormatError
  if errors.As(err, &e) {
    e.Filename = filename
    e.Line     = line
    e.Text     = text
    return e
  }
  if filename == "" {
    return fmt.Errorf("line %d: %w", line, err)
  }
  return fmt.Errorf("%s:%d: %w", filename, line, err)
}

func (parser *WigParser) readData(line string, mode StrandMode) error {
  if parser.currentChunk == nil {
    return newFormatError("data line not preceded by declaration")
  }
  return parser.currentChunk.ReadData(strings.Fields(line), parser.currentChrom, mode)
}

func (parser *WigParser) readDeclaration(line string) error {
  var chunk Chunk

  fields := strings.Fields(line)
  switch fields[0] {
  case "fixedStep":
    if c, err := NewFixedChunk(fields[1:]); err != nil {
      return err
    } else {
      chunk = c
    }
  case "variableStep":
    if c, err := NewVariableChunk(fields[1:]); err != nil {
      return err
    } else {
      chunk = c
    }
  }
  chrom, err := parser.chromosome(chunk.Seqname())
  if err != nil {
    return err
  }
  parser.currentChunk = chunk
  parser.currentChrom = chrom
  return nil
}

// Get a chromosome from the genome or allocate a new one.
func (parser *WigParser) chromosome(name string) (*Chromosome, error) {
  if c, err := parser.genome.Get(name); err == nil {
    return c, nil
  }
  capacity := parser.config.InitialCapacity
  if n, err := parser.config.ChromSizes.SeqLength(name); err == nil {
    capacity = n
  }
  c, err := NewChromosome(name, capacity, parser.config.MemoryProbe)
  if err != nil {
    return nil, err
  }
  parser.genome.Add(c)
  return c, nil
}

func parseTrackAttributes(line string) map[string]string {
  attributes := make(map[string]string)
  for _, m := range wigAttributeRegexp.FindAllStringSubmatch(strings.TrimPrefix(line, "track"), -1) {
    attributes[m[1]] = removeQuotes(m[2])
  }
  return attributes
}

func (parser *WigParser) readTrack(line string, mode StrandMode) error {
  attributes := parseTrackAttributes(line)
  if _, ok := attributes["type"]; !ok {
    return newFormatError("track line is missing the type attribute")
  }
  switch mode {
  case StrandForward:
    parser.genome.Infos.Forward = attributes
  case StrandReverse:
    parser.genome.Infos.Reverse = attributes
  default:
    parser.genome.Infos.Track = attributes
  }
  return nil
}
