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

// Package gui defines what the user facing implementations have in common.
// A GUI is a television.PixelRenderer that also gathers user input; it does
// not touch the machine itself. Input arrives on the registered event
// channel and it is the running mode's job to act on it, most usually by
// feeding keys to the keyboard queue.
package gui

import (
	"github.com/gopher64/gopher64/television"
)

// GUI implementations render frames and gather user input.
type GUI interface {
	television.PixelRenderer

	// SetEventChannel registers the channel events are sent over. events
	// are dropped if no channel has been registered
	SetEventChannel(chan Event)
}

// EventID identifies the type of event taking place.
type EventID int

// List of valid events.
const (
	// the user has asked to end the emulation
	EventQuit EventID = iota

	// a key with a PETSCII equivalent has been pressed
	EventKeyboard

	// the STOP key has been pressed
	EventStop
)

// EventData represents the data that is associated with an event.
type EventData interface{}

// Event is the structure that is passed over the event channel.
type Event struct {
	ID   EventID
	Data EventData
}

// EventDataKeyboard is the data that accompanies EventKeyboard events.
type EventDataKeyboard struct {
	Rune rune
}
