// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopher64/gopher64/hardware"
)

// DumpStateGraph writes the graph of values reachable from the C64 type to
// the named file, in graphviz dot format.
func DumpStateGraph(c64 *hardware.C64, filename string) error {
	b := &bytes.Buffer{}
	memviz.Map(b, c64)

	if err := os.WriteFile(filename, b.Bytes(), 0644); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return nil
}
