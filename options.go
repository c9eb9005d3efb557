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

import "io"

import "github.com/sirupsen/logrus"

/* -------------------------------------------------------------------------- */

type OptionLogger struct {
  Value logrus.FieldLogger
}

type OptionInitialCapacity struct {
  Value int
}

type OptionMemoryProbe struct {
  Value MemoryProbe
}

type OptionChromSizes struct {
  Value ChromSizes
}

type OptionQualityThreshold struct {
  Value int
}

type OptionOrientReads struct {
  Value bool
}

/* -------------------------------------------------------------------------- */

func discardLogger() logrus.FieldLogger {
  logger := logrus.New()
  logger.SetOutput(io.Discard)
  return logger
}
