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

// Package termplay renders the text mode screen to a terminal. The terminal
// is put into cbreak mode so keys reach the machine without waiting for a
// newline; the screen matrix is drawn with ANSI positioning and 256 colour
// escape sequences, one terminal cell per character cell.
//
// It is a much blunter instrument than the sdlplay package but it works
// over ssh.
package termplay

import (
	"fmt"
	"os"
	"strings"

	"github.com/gopher64/gopher64/gui"
	"github.com/gopher64/gopher64/hardware"
	"github.com/gopher64/gopher64/hardware/vic"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// approximations of the palette in the xterm 256 colour cube.
var ansiColor = [16]int{16, 231, 95, 109, 96, 65, 60, 186, 94, 58, 131, 238, 244, 114, 103, 250}

// TermPlay is a terminal implementation of the television.PixelRenderer
// interface.
type TermPlay struct {
	c64 *hardware.C64

	eventChannel chan gui.Event

	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// the text rows as last drawn. unchanged rows are not redrawn
	rows [vic.ScreenRows]string
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The renderer attaches itself to the machine's television.
func NewTermPlay(c64 *hardware.C64) (*TermPlay, error) {
	scr := &TermPlay{
		c64:    c64,
		input:  os.Stdin,
		output: os.Stdout,
	}

	if err := termios.Tcgetattr(scr.input.Fd(), &scr.canAttr); err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}

	scr.cbreakAttr = scr.canAttr
	termios.Cfmakecbreak(&scr.cbreakAttr)

	if err := termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.cbreakAttr); err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}

	// hide the cursor and clear the terminal
	scr.output.WriteString("\033[?25l\033[2J")

	scr.c64.TV.AddPixelRenderer(scr)

	go scr.inputLoop()

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *TermPlay) SetEventChannel(ch chan gui.Event) {
	scr.eventChannel = ch
}

func (scr *TermPlay) send(ev gui.Event) {
	if scr.eventChannel != nil {
		scr.eventChannel <- ev
	}
}

// inputLoop reads keys from the terminal and is run concurrently.
func (scr *TermPlay) inputLoop() {
	b := make([]byte, 1)
	for {
		n, err := scr.input.Read(b)
		if err != nil || n != 1 {
			return
		}

		switch b[0] {
		case 0x03:
			// ctrl-c
			scr.send(gui.Event{ID: gui.EventQuit})
		case 0x1b:
			// escape stands in for the RUN/STOP key
			scr.send(gui.Event{ID: gui.EventStop})
		case '\r':
			scr.send(gui.Event{ID: gui.EventKeyboard, Data: gui.EventDataKeyboard{Rune: '\n'}})
		default:
			scr.send(gui.Event{ID: gui.EventKeyboard, Data: gui.EventDataKeyboard{Rune: rune(b[0])}})
		}
	}
}

// displayChar converts a screen code to something a terminal can show. the
// losses in translation are considerable but BASIC output is legible.
func displayChar(code uint8) byte {
	switch {
	case code == 0x00:
		return '@'
	case code >= 0x01 && code <= 0x1a:
		return 'A' + code - 0x01
	case code == 0x1b:
		return '['
	case code == 0x1d:
		return ']'
	case code == 0x1e:
		return '^'
	case code >= 0x20 && code <= 0x3f:
		// space, punctuation and digits map straight across
		return code
	}

	return '.'
}

// NewFrame implements the television.PixelRenderer interface.
func (scr *TermPlay) NewFrame(frameNum int) error {
	bg := ansiColor[scr.c64.VIC.BackgroundColor()]

	s := strings.Builder{}

	for row := 0; row < vic.ScreenRows; row++ {
		line := strings.Builder{}

		for col := 0; col < vic.ScreenCols; col++ {
			offset := row*vic.ScreenCols + col
			code := scr.c64.VIC.ScreenChar(offset)
			fg := ansiColor[scr.c64.VIC.ScreenColor(offset)&0x0f]

			// bit 7 of the screen code is reverse video
			cellFg, cellBg := fg, bg
			if code&0x80 == 0x80 {
				cellFg, cellBg = bg, fg
			}

			line.WriteString(fmt.Sprintf("\033[38;5;%dm\033[48;5;%dm%c", cellFg, cellBg, displayChar(code&0x7f)))
		}

		if l := line.String(); l != scr.rows[row] {
			scr.rows[row] = l
			s.WriteString(fmt.Sprintf("\033[%d;1H%s", row+1, l))
		}
	}

	if s.Len() > 0 {
		s.WriteString("\033[0m")
		if _, err := scr.output.WriteString(s.String()); err != nil {
			return fmt.Errorf("termplay: %w", err)
		}
	}

	return nil
}

// EndRendering implements the television.PixelRenderer interface. The
// terminal is returned to canonical mode.
func (scr *TermPlay) EndRendering() error {
	scr.output.WriteString("\033[0m\033[?25h\n")

	if err := termios.Tcsetattr(scr.input.Fd(), termios.TCIFLUSH, &scr.canAttr); err != nil {
		return fmt.Errorf("termplay: %w", err)
	}

	return nil
}
