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

package sdlplay

import (
	"github.com/gopher64/gopher64/gui"
	"github.com/veandco/go-sdl2/sdl"
)

func (scr *SdlPlay) send(ev gui.Event) {
	if scr.eventChannel != nil {
		scr.eventChannel <- ev
	}
}

// guiLoop listens for SDL events and is run concurrently.
func (scr *SdlPlay) guiLoop() {
	for {
		switch ev := sdl.WaitEvent().(type) {
		case *sdl.QuitEvent:
			scr.send(gui.Event{ID: gui.EventQuit})

		case *sdl.TextInputEvent:
			// printable keys arrive as text, already shifted
			for _, r := range ev.GetText() {
				scr.send(gui.Event{
					ID:   gui.EventKeyboard,
					Data: gui.EventDataKeyboard{Rune: r}})
			}

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}

			// keys with no text representation
			switch ev.Keysym.Sym {
			case sdl.K_RETURN:
				scr.send(gui.Event{
					ID:   gui.EventKeyboard,
					Data: gui.EventDataKeyboard{Rune: '\n'}})
			case sdl.K_ESCAPE:
				// standing in for the RUN/STOP key
				scr.send(gui.Event{ID: gui.EventStop})
			}
		}
	}
}
