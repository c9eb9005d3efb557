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

import "os"

import "github.com/shirou/gopsutil/v3/mem"
import "github.com/shirou/gopsutil/v3/process"

/* -------------------------------------------------------------------------- */

type MemoryStatus struct {
  // memory that can be allocated without swapping (bytes)
  Available uint64
  // resident set size of this process (bytes)
  Resident  uint64
}

// A MemoryProbe reports the memory situation of the host. Chromosome
// allocations are checked against it before any buffer is allocated.
type MemoryProbe func() (MemoryStatus, error)

// Query available system memory and the resident size of the running
// process.
func SystemMemoryProbe() (MemoryStatus, error) {
  vm, err := mem.VirtualMemory()
  if err != nil {
    return MemoryStatus{}, err
  }
  p, err := process.NewProcess(int32(os.Getpid()))
  if err != nil {
    return MemoryStatus{}, err
  }
  info, err := p.MemoryInfo()
  if err != nil {
    return MemoryStatus{}, err
  }
  return MemoryStatus{Available: vm.Available, Resident: info.RSS}, nil
}

// A probe that never refuses an allocation.
func UnlimitedMemoryProbe() (MemoryStatus, error) {
  return MemoryStatus{Available: ^uint64(0)}, nil
}
