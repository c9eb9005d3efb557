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
import "io"
import "os"
import "strconv"

import "github.com/klauspost/compress/gzip"

/* -------------------------------------------------------------------------- */

func formatCoverage(value float64) string {
  return strconv.FormatFloat(value, 'g', -1, 64)
}

func (c *Chromosome) writeWiggle_variableStep(w io.Writer) error {
  if _, err := fmt.Fprintf(w, "variableStep chrom=%s span=1\n", c.Name); err != nil {
    return err
  }
  for i := 0; i < c.Len(); i++ {
    if v := c.data[forwardRow][i]; v != 0.0 {
      if _, err := fmt.Fprintf(w, "%d %s\n", i+1, formatCoverage(v)); err != nil {
        return err
      }
    }
    if v := c.data[reverseRow][i]; v != 0.0 {
      if _, err := fmt.Fprintf(w, "%d %s\n", i+1, formatCoverage(-v)); err != nil {
        return err
      }
    }
  }
  return nil
}

// Export the genome in mixed wiggle format, reverse strand coverage is
// written as negative values. Only non-zero values are printed.
func (genome *Genome) WriteWiggle(writer io.Writer, name, description string) error {
  w := bufio.NewWriter(writer)

  if _, err := fmt.Fprintf(w, "track type=wiggle_0 name=\"%s\" description=\"%s\"\n", name, description); err != nil {
    return err
  }
  for _, seqname := range genome.Seqnames() {
    if err := genome.chromosomes[seqname].writeWiggle_variableStep(w); err != nil {
      return err
    }
  }
  return w.Flush()
}

func (genome *Genome) ExportWiggle(filename, name, description string, compress bool) error {
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  if compress {
    g := gzip.NewWriter(f)
    if err := genome.WriteWiggle(g, name, description); err != nil {
      return err
    }
    if err := g.Close(); err != nil {
      return err
    }
  } else {
    if err := genome.WriteWiggle(f, name, description); err != nil {
      return err
    }
  }
  return f.Close()
}
