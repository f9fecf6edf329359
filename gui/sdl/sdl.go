// This file is part of vgasim.
//
// vgasim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgasim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgasim.  If not, see <https://www.gnu.org/licenses/>.

package sdl

import (
	"unsafe"

	"github.com/jetsetilly/vgasim/curated"
	"github.com/jetsetilly/vgasim/logger"
	"github.com/jetsetilly/vgasim/simulation"
	"github.com/jetsetilly/vgasim/television/specification"
	"github.com/jetsetilly/vgasim/userinput"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// height of the status line area underneath the frame buffer
const statusHeight = 20

// size of font in points
const fontSize = 12

// GUI implements the simulation.Host interface.
type GUI struct {
	spec specification.Spec

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// font is nil if the font could not be loaded. text is not drawn in that
	// case
	font *ttf.Font

	scale int

	// relative mouse mode is only used while the override controller is
	// active
	relativeMouse bool

	// accumulated horizontal mouse motion since the last call to Keys()
	mouseDX int
}

// NewGUI is the preferred method of initialisation for the GUI type. The
// window size is the size of the frame buffer multiplied by scale.
func NewGUI(spec specification.Spec, scale int, fontFile string) (*GUI, error) {
	gui := &GUI{
		spec:  spec,
		scale: max(scale, 1),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	// release whatever has been created if initialisation fails part way
	ok := false
	defer func() {
		if !ok {
			gui.Destroy()
		}
	}()

	w := int32(spec.Width() * gui.scale)
	h := int32((spec.Height() + statusHeight) * gui.scale)

	gui.window, err = sdl.CreateWindow("vgasim",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	gui.renderer, err = sdl.CreateRenderer(gui.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	// everything drawn through the renderer is in frame buffer coordinates
	err = gui.renderer.SetScale(float32(gui.scale), float32(gui.scale))
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	// the frame buffer is laid out as B, G, R, unused. on little endian
	// machines this is the same as ARGB8888
	gui.texture, err = gui.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(spec.Width()), int32(spec.Height()))
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	// the unused byte of the frame buffer is not alpha
	err = gui.texture.SetBlendMode(sdl.BLENDMODE_NONE)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	err = ttf.Init()
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	gui.font, err = ttf.OpenFont(fontFile, fontSize)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "cannot load font (%s). text rendering disabled", fontFile)
		gui.font = nil
	}

	ok = true
	return gui, nil
}

// Destroy the window and release all SDL resources.
func (gui *GUI) Destroy() {
	if gui.font != nil {
		gui.font.Close()
	}
	ttf.Quit()
	if gui.texture != nil {
		gui.texture.Destroy()
	}
	if gui.renderer != nil {
		gui.renderer.Destroy()
	}
	if gui.window != nil {
		gui.window.Destroy()
	}
	sdl.Quit()
}

// Present implements the simulation.Host interface.
func (gui *GUI) Present(sim *simulation.Simulation) error {
	gui.setRelativeMouse(sim.Override.IsActive())

	buf := sim.Television().Buffer()

	err := gui.texture.Update(nil, unsafe.Pointer(&buf.Pix[0]), buf.Pitch())
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	err = gui.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	err = gui.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	err = gui.renderer.Copy(gui.texture, nil, &sdl.Rect{
		W: int32(buf.Width),
		H: int32(buf.Height),
	})
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	err = gui.drawText(sim.Status(), 10, int32(buf.Height)+4, sdl.Color{R: 255, G: 255, B: 255, A: 255})
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	if sim.Options.Guides.Get().(bool) {
		err = gui.drawGuides(sim.Guides(), int32(sim.Television().Raster().VertShift))
		if err != nil {
			return curated.Errorf("sdl: %v", err)
		}
	}

	gui.renderer.Present()

	return nil
}

func (gui *GUI) setRelativeMouse(set bool) {
	if set == gui.relativeMouse {
		return
	}
	gui.relativeMouse = set
	sdl.SetRelativeMouseMode(set)
	gui.mouseDX = 0
}

// drawText at the position given in frame buffer coordinates.
func (gui *GUI) drawText(s string, x, y int32, col sdl.Color) error {
	if gui.font == nil || s == "" {
		return nil
	}

	surface, err := gui.font.RenderUTF8Solid(s, col)
	if err != nil {
		return err
	}
	defer surface.Free()

	tex, err := gui.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer tex.Destroy()

	return gui.renderer.Copy(tex, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
}

// drawGuides over the display area. The top of the display area is at the
// vertical shift estimate of the raster.
func (gui *GUI) drawGuides(g simulation.Guides, top int32) error {
	for _, l := range g.Lines {
		err := gui.renderer.SetDrawColor(l.Col.R, l.Col.G, l.Col.B, l.Col.A)
		if err != nil {
			return err
		}
		err = gui.renderer.DrawLine(int32(l.X1), int32(l.Y1)+top, int32(l.X2), int32(l.Y2)+top)
		if err != nil {
			return err
		}
	}

	return gui.drawText(g.Label, int32(g.LabelX)+3, int32(g.LabelY)+top+3, sdl.Color{R: 0, G: 255, B: 0, A: 255})
}

// Keys implements the simulation.Host interface.
func (gui *GUI) Keys() userinput.Keys {
	k := sdl.GetKeyboardState()

	keys := userinput.Keys{
		Forward:     k[sdl.SCANCODE_W] != 0,
		Back:        k[sdl.SCANCODE_S] != 0,
		StrafeLeft:  k[sdl.SCANCODE_A] != 0,
		StrafeRight: k[sdl.SCANCODE_D] != 0,
		TurnLeft:    k[sdl.SCANCODE_LEFT] != 0,
		TurnRight:   k[sdl.SCANCODE_RIGHT] != 0,
		Run:         k[sdl.SCANCODE_LSHIFT] != 0,
		Map:         k[sdl.SCANCODE_TAB] != 0,
		Reset:       k[sdl.SCANCODE_R] != 0,
		MouseDX:     gui.mouseDX,
	}
	gui.mouseDX = 0

	return keys
}
