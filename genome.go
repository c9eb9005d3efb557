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
import "bytes"
import "fmt"
import "sort"
import "strconv"
import "strings"

import "github.com/brentp/xopen"

/* -------------------------------------------------------------------------- */

// Metadata collected from track definition lines. Attributes of a mixed
// wiggle file are stored in Track, attributes of separate strand files
// in Forward and Reverse.
type Infos struct {
  Track   map[string]string `yaml:"track,omitempty"`
  Forward map[string]string `yaml:"forward,omitempty"`
  Reverse map[string]string `yaml:"reverse,omitempty"`
}

// A Genome is a collection of chromosomes indexed by name.
type Genome struct {
  chromosomes map[string]*Chromosome
  Infos       Infos
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewGenome() *Genome {
  return &Genome{chromosomes: make(map[string]*Chromosome)}
}

/* -------------------------------------------------------------------------- */

// Number of chromosomes.
func (genome *Genome) Length() int {
  return len(genome.chromosomes)
}

// Add a chromosome, an existing chromosome with the same name is
// replaced.
func (genome *Genome) Add(c *Chromosome) {
  genome.chromosomes[c.Name] = c
}

func (genome *Genome) Get(name string) (*Chromosome, error) {
  if c, ok := genome.chromosomes[name]; ok {
    return c, nil
  }
  return nil, fmt.Errorf("`%s': %w", name, ErrChromosomeNotFound)
}

func (genome *Genome) Contains(name string) bool {
  _, ok := genome.chromosomes[name]
  return ok
}

func (genome *Genome) Remove(name string) error {
  if !genome.Contains(name) {
    return fmt.Errorf("`%s': %w", name, ErrChromosomeNotFound)
  }
  delete(genome.chromosomes, name)
  return nil
}

// All chromosomes in no particular order.
func (genome *Genome) Chromosomes() []*Chromosome {
  result := make([]*Chromosome, 0, len(genome.chromosomes))
  for _, c := range genome.chromosomes {
    result = append(result, c)
  }
  return result
}

// Sorted chromosome names.
func (genome *Genome) Seqnames() []string {
  result := make([]string, 0, len(genome.chromosomes))
  for name := range genome.chromosomes {
    result = append(result, name)
  }
  sort.Strings(result)
  return result
}

/* chromosome sizes
 * -------------------------------------------------------------------------- */

// Structure containing chromosome sizes.
type ChromSizes struct {
  Seqnames []string
  Lengths  []int
}

// Length of the given chromosome.
func (sizes ChromSizes) SeqLength(seqname string) (int, error) {
  for i, s := range sizes.Seqnames {
    if seqname == s {
      return sizes.Lengths[i], nil
    }
  }
  return 0, fmt.Errorf("`%s': %w", seqname, ErrChromosomeNotFound)
}

func (sizes ChromSizes) String() string {
  var buffer bytes.Buffer

  buffer.WriteString(fmt.Sprintf("%10s %10s", "seqnames", "lengths"))
  for i := range sizes.Seqnames {
    buffer.WriteString(fmt.Sprintf("\n%10s %10d", sizes.Seqnames[i], sizes.Lengths[i]))
  }
  return buffer.String()
}

// Import chromosome sizes from a UCSC text file. The format is a whitespace
// separated table where the first column is the name of the chromosome and
// the second column the chromosome length.
func ReadChromSizes(filename string) (ChromSizes, error) {
  sizes := ChromSizes{}

  f, err := xopen.Ropen(filename)
  if err != nil {
    return sizes, err
  }
  defer f.Close()

  scanner := bufio.NewScanner(f)
  for i := 1; scanner.Scan(); i++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 2 {
      return sizes, fmt.Errorf("%s:%d: invalid chromosome sizes file", filename, i)
    }
    t, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return sizes, fmt.Errorf("%s:%d: %w", filename, i, err)
    }
    sizes.Seqnames = append(sizes.Seqnames, fields[0])
    sizes.Lengths  = append(sizes.Lengths,  int(t))
  }
  return sizes, scanner.Err()
}
