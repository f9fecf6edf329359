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

package simulation

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/jetsetilly/vgasim/fixedpoint"
	"github.com/jetsetilly/vgasim/hardware/signal"
	"github.com/jetsetilly/vgasim/navigation"
	"github.com/jetsetilly/vgasim/override"
)

// Status returns a single line summary of the simulation. The flags are, in
// order: paused, guides, highlight, vsync logging, override and examine mode.
// Each flag is shown as a dot when off. The flags are followed by the input
// locks and the live player position of the design.
func (sim *Simulation) Status() string {
	var s strings.Builder

	flag := func(on bool, c byte) {
		if on {
			s.WriteByte(c)
		} else {
			s.WriteByte('.')
		}
	}

	s.WriteByte('[')
	flag(sim.tb.Paused(), 'P')
	flag(sim.Options.Guides.Get().(bool), 'G')
	flag(sim.Options.Highlight.Get().(bool), 'H')
	flag(sim.tb.LogVSync, 'V')
	flag(sim.Override.IsActive(), 'O')
	flag(sim.tb.ExamineMode, 'X')
	s.WriteString(sim.Locks.String())
	s.WriteByte(']')

	regs := sim.tb.Registers()
	s.WriteString(fmt.Sprintf(" pX=%.3f pY=%.3f",
		fixedpoint.Decode(regs.PlayerX, fixedpoint.Full),
		fixedpoint.Decode(regs.PlayerY, fixedpoint.Full)))

	return s.String()
}

// Colours used by the guides.
var (
	DesignGuide   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	OverrideGuide = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Line is a single guide line in display area coordinates.
type Line struct {
	X1, Y1 int
	X2, Y2 int
	Col    color.RGBA
}

// Guides describes the vector guides drawn over the display area.
type Guides struct {
	Lines []Line

	// the player's cell number and where to draw it
	Label          string
	LabelX, LabelY int
}

// vectorLines returns the facing vector, the two camera edges and the
// viewplane line joining the ends of the camera edges.
func vectorLines(fx, fy, vx, vy float64, cx, cy int, scale float64, col color.RGBA) []Line {
	pt := func(x, y float64) (int, int) {
		return cx + int(x*scale), cy + int(y*scale)
	}

	x1, y1 := pt(fx, fy)
	lx, ly := pt(fx-vx, fy-vy)
	rx, ry := pt(fx+vx, fy+vy)

	return []Line{
		{X1: cx, Y1: cy, X2: x1, Y2: y1, Col: col},
		{X1: cx, Y1: cy, X2: lx, Y2: ly, Col: col},
		{X1: cx, Y1: cy, X2: rx, Y2: ry, Col: col},
		{X1: lx, Y1: ly, X2: rx, Y2: ry, Col: col},
	}
}

// Guides returns the vector guides for the design's live registers and, if
// the override controller is active, for the override vectors.
//
// The guides are centred on the display area and the player's cell is drawn
// as a box around the centre, offset by the fractional part of the player's
// position.
func (sim *Simulation) Guides() Guides {
	spec := sim.spec
	cx := spec.HorizActive / 2
	cy := spec.VertActive / 2
	scale := float64(spec.VertActive) / 4

	regs := sim.tb.Registers()
	nav := navigation.FromRegisters(regs)

	g := Guides{
		Lines: vectorLines(nav.FX, nav.FY, nav.VX, nav.VY, cx, cy, scale, DesignGuide),
	}

	g.Lines = append(g.Lines, cellBox(regs, cx, cy, scale)...)

	g.Label = fmt.Sprintf("%d,%d",
		int(fixedpoint.Decode(regs.PlayerX, fixedpoint.IntegerOnly)),
		int(fixedpoint.Decode(regs.PlayerY, fixedpoint.IntegerOnly)))
	g.LabelX = cx - int(fixedpoint.Decode(regs.PlayerX, fixedpoint.FractionalOnly)*scale)
	g.LabelY = cy - int(fixedpoint.Decode(regs.PlayerY, fixedpoint.FractionalOnly)*scale)

	if a, ok := sim.Override.Mode().(*override.Active); ok {
		g.Lines = append(g.Lines, vectorLines(a.Nav.FX, a.Nav.FY, a.Nav.VX, a.Nav.VY, cx, cy, scale, OverrideGuide)...)
	}

	return g
}

// the box of the cell containing the player. the top left corner of the cell
// is offset from the centre by the fractional part of the position
func cellBox(regs signal.Registers, cx, cy int, scale float64) []Line {
	x0 := cx - int(fixedpoint.Decode(regs.PlayerX, fixedpoint.FractionalOnly)*scale)
	y0 := cy - int(fixedpoint.Decode(regs.PlayerY, fixedpoint.FractionalOnly)*scale)
	x1 := x0 + int(scale)
	y1 := y0 + int(scale)

	return []Line{
		{X1: x0, Y1: y0, X2: x1, Y2: y0, Col: DesignGuide},
		{X1: x1, Y1: y0, X2: x1, Y2: y1, Col: DesignGuide},
		{X1: x1, Y1: y1, X2: x0, Y2: y1, Col: DesignGuide},
		{X1: x0, Y1: y1, X2: x0, Y2: y0, Col: DesignGuide},
	}
}
