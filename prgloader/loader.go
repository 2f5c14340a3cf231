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

package prgloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
)

// Loader is used to specify the program to attach to the C64.
type Loader struct {
	// filename of the program to load
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// the load address from the two byte PRG prefix
	Origin uint16

	// the payload, without the load address prefix. subsequent calls to
	// Load() keep this data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the loader filename.
func (pl Loader) ShortName() string {
	sn := path.Base(pl.Filename)
	return strings.TrimSuffix(sn, path.Ext(pl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (pl Loader) HasLoaded() bool {
	return len(pl.Data) > 0
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (pl *Loader) Load() error {
	if len(pl.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(pl.Filename); err == nil {
		scheme = u.Scheme
	}

	var raw []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(pl.Filename)
		if err != nil {
			return fmt.Errorf("prgloader: %w", err)
		}
		defer resp.Body.Close()

		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("prgloader: %w", err)
		}

	case "file", "":
		var err error
		raw, err = os.ReadFile(pl.Filename)
		if err != nil {
			return fmt.Errorf("prgloader: %w", err)
		}

	default:
		return fmt.Errorf("prgloader: unsupported URL scheme (%s)", scheme)
	}

	if len(raw) < 3 {
		return fmt.Errorf("prgloader: %s: too short to be a PRG", pl.Filename)
	}

	// check for hash consistency. the hash is of the raw file, load address
	// included
	hash := fmt.Sprintf("%x", sha1.Sum(raw))
	if pl.Hash != "" && pl.Hash != hash {
		return fmt.Errorf("prgloader: unexpected hash value")
	}
	pl.Hash = hash

	pl.Origin = (uint16(raw[1]) << 8) | uint16(raw[0])
	pl.Data = raw[2:]

	if int(pl.Origin)+len(pl.Data) > 0x10000 {
		return fmt.Errorf("prgloader: %s: program runs past the top of memory", pl.Filename)
	}

	return nil
}
