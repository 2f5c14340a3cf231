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

// Package sdlplay is the regular playable GUI: an SDL window showing the
// text mode screen. On every frame signal the screen matrix, colour RAM and
// character set are read back out of the machine's memory and rasterised
// into a texture; the window is a pure function of the machine state.
package sdlplay

import (
	"fmt"

	"github.com/gopher64/gopher64/gui"
	"github.com/gopher64/gopher64/hardware"
	"github.com/gopher64/gopher64/hardware/vic"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// the visible frame is the 320x200 text area inside a fixed border. the
// exact border proportions of a real display depend on the television so
// these are a matter of taste.
const (
	horizBorder = 32
	vertBorder  = 36
	winWidth    = 320 + 2*horizBorder
	winHeight   = 200 + 2*vertBorder
)

// SdlPlay is a simple SDL implementation of the television.PixelRenderer
// interface.
type SdlPlay struct {
	c64 *hardware.C64

	// connects the SDL event loop with the parent process
	eventChannel chan gui.Event

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture on every frame
	// signal
	pixels []byte
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The renderer attaches itself to the machine's television.
func NewSdlPlay(c64 *hardware.C64, scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{c64: c64}

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	var err error

	scr.window, err = sdl.CreateWindow("Gopher64",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(winWidth)*scale), int32(float32(winHeight)*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	if err := scr.renderer.SetScale(scale, scale); err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// texture is the same size as the pixel array. scaling is applied when
	// it is copied to the renderer
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), winWidth, winHeight)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.pixels = make([]byte, winWidth*winHeight*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.c64.TV.AddPixelRenderer(scr)

	// gui events are serviced by a separate go routine
	go scr.guiLoop()

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(ch chan gui.Event) {
	scr.eventChannel = ch
}

func (scr *SdlPlay) setPixel(x, y int, col uint8) {
	rgb := gui.Palette[col&0x0f]
	i := (y*winWidth + x) * pixelDepth
	scr.pixels[i] = rgb[0]
	scr.pixels[i+1] = rgb[1]
	scr.pixels[i+2] = rgb[2]
}

// rasterise the screen matrix into the pixel array.
func (scr *SdlPlay) render() {
	border := scr.c64.VIC.BorderColor()
	for y := 0; y < winHeight; y++ {
		for x := 0; x < winWidth; x++ {
			scr.setPixel(x, y, border)
		}
	}

	bg := scr.c64.VIC.BackgroundColor()

	for row := 0; row < vic.ScreenRows; row++ {
		for col := 0; col < vic.ScreenCols; col++ {
			offset := row*vic.ScreenCols + col
			code := scr.c64.VIC.ScreenChar(offset)
			fg := scr.c64.VIC.ScreenColor(offset)

			for line := 0; line < 8; line++ {
				pattern := scr.c64.VIC.CharPattern(code, line)
				y := vertBorder + row*8 + line

				for bit := 0; bit < 8; bit++ {
					x := horizBorder + col*8 + bit
					if pattern&(0x80>>bit) != 0x00 {
						scr.setPixel(x, y, fg)
					} else {
						scr.setPixel(x, y, bg)
					}
				}
			}
		}
	}
}

// NewFrame implements the television.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(frameNum int) error {
	scr.render()

	if err := scr.texture.Update(nil, scr.pixels, winWidth*pixelDepth); err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}

	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer.Present()

	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
	return nil
}
