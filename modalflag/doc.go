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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Compared to flag.FlagSet the arguments are given up front with NewArgs()
// and Parse() is then called without arguments. For example (error handling
// not shown):
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TERM", "PERFORMANCE")
//	_, _ = md.Parse()
//
// The first sub-mode in the list is the default, used when the first
// argument matches none of them. After a mode has been selected, NewMode()
// prepares the struct for the mode's own flags and a further Parse() deals
// with them. Non-flag arguments are available through RemainingArgs() and
// GetArg().
//
// Help messages are printed to the Output field. Parse() returns ParseHelp
// when a help flag was given and the caller should stop without printing
// anything further.
package modalflag
