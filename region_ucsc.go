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

import "database/sql"
import "fmt"
import "regexp"

import _ "github.com/go-sql-driver/mysql"

/* import regions from ucsc
 * -------------------------------------------------------------------------- */

const ucscServer = "genome@tcp(genome-mysql.soe.ucsc.edu:3306)"

var ucscTableRegexp = regexp.MustCompile(`^\w+$`)

// Import transcripts from a UCSC gene table (e.g. knownGene or
// refGene). The reference position of each region is the transcription
// start site.
func ImportRegionsFromUCSC(genome, table string) ([]Region, error) {
  return importRegionsFromDB(fmt.Sprintf("%s/%s", ucscServer, genome), table)
}

func importRegionsFromDB(dsn, table string) ([]Region, error) {
  var name, seqname, strand string
  var txFrom, txTo int

  if !ucscTableRegexp.MatchString(table) {
    return nil, fmt.Errorf("invalid table name `%s'", table)
  }

  db, err := sql.Open("mysql", dsn)
  if err != nil {
    return nil, err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return nil, err
  }
  rows, err := db.Query(fmt.Sprintf("SELECT name, chrom, strand, txStart, txEnd FROM %s", table))
  if err != nil {
    return nil, err
  }
  defer rows.Close()

  regions := []Region{}
  for rows.Next() {
    if err := rows.Scan(&name, &seqname, &strand, &txFrom, &txTo); err != nil {
      return nil, err
    }
    if len(strand) == 0 {
      return nil, fmt.Errorf("transcript `%s' has no strand", name)
    }
    r, err := NewRegion(name, seqname, txFrom, txTo, strand[0])
    if err != nil {
      return nil, err
    }
    regions = append(regions, r)
  }
  return regions, rows.Err()
}
