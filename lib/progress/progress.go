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

package progress

/* -------------------------------------------------------------------------- */

import "fmt"
import "io"
import "strings"
import "sync"

/* -------------------------------------------------------------------------- */

// Progress prints a progress bar for n items to a writer. The bar is
// printed about k times. Increment may be called from several
// goroutines.
type Progress struct {
  N, K, LineWidth int
  writer io.Writer
  mutex  sync.Mutex
  i      int
}

/* -------------------------------------------------------------------------- */

func New(writer io.Writer, n, k int) *Progress {
  progress := Progress{N: n, K: n/iMax(k, 1), LineWidth: 40, writer: writer}
  if progress.K < 1 {
    progress.K = 1
  }
  return &progress
}

func iMax(a, b int) int {
  if a > b {
    return a
  }
  return b
}

/* -------------------------------------------------------------------------- */

const lineDel = "\033[2K\r"

// Render the bar after i of N items.
func (progress *Progress) Exec(i int) string {
  var builder strings.Builder

  p := 1.0
  if progress.N > 0 {
    p = float64(i)/float64(progress.N)
  }
  builder.WriteString(lineDel)
  builder.WriteString("|")
  for j := 1; j < progress.LineWidth-1; j++ {
    if float64(j)/float64(progress.LineWidth) < p {
      builder.WriteString(">")
    } else {
      builder.WriteString(" ")
    }
  }
  fmt.Fprintf(&builder, "| %6.2f%%", p*100)
  if i >= progress.N {
    builder.WriteString("\n")
  }
  return builder.String()
}

// Mark one more item as done.
func (progress *Progress) Increment() {
  progress.mutex.Lock()
  defer progress.mutex.Unlock()
  progress.i++
  if progress.i == progress.N || progress.i % progress.K == 0 {
    fmt.Fprint(progress.writer, progress.Exec(progress.i))
  }
}
