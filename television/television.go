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

package television

import (
	"github.com/jetsetilly/vgasim/hardware/signal"
	"github.com/jetsetilly/vgasim/logger"
	"github.com/jetsetilly/vgasim/television/framebuffer"
	"github.com/jetsetilly/vgasim/television/specification"
)

// Television couples a Raster with a frame buffer.
type Television struct {
	spec   specification.Spec
	raster Raster
	buffer *framebuffer.Buffer

	// settle period used when the raster is reset
	settle int

	// number of frames since the last reset
	frameNum int

	// calibration messages are not logged when quiet
	quiet bool
}

// NewTelevision is the preferred method of initialisation for the Television
// type.
func NewTelevision(spec specification.Spec) *Television {
	tv := &Television{
		spec:   spec,
		buffer: framebuffer.NewBuffer(spec.Width(), spec.Height(), spec.HorizTotal(), spec.VertTotal()),
		settle: spec.FrameClocks(),
	}
	tv.raster = NewRaster(spec)
	return tv
}

// AllowLogging implements the logger.Permission interface.
func (tv *Television) AllowLogging() bool {
	return !tv.quiet
}

// SetQuiet stops calibration messages from being logged.
func (tv *Television) SetQuiet(quiet bool) {
	tv.quiet = quiet
}

// SetSettle changes the settle period. The new period is used by the next
// Reset().
func (tv *Television) SetSettle(ticks int) {
	tv.settle = max(ticks, 0)
}

// Reset the raster. Estimates return to their starting values and the settle
// period starts again. The frame buffer is not cleared.
func (tv *Television) Reset() {
	tv.raster = NewRaster(tv.spec)
	tv.raster.Settle = tv.settle
	tv.frameNum = 0
	logger.Logf(tv, "television", "raster reset (settle %d ticks)", tv.settle)
}

// Spec returns the specification of the television.
func (tv *Television) Spec() specification.Spec {
	return tv.spec
}

// Raster returns a copy of the current raster state.
func (tv *Television) Raster() Raster {
	return tv.raster
}

// Buffer returns the frame buffer.
func (tv *Television) Buffer() *framebuffer.Buffer {
	return tv.buffer
}

// FrameNum returns the number of frames since the last reset.
func (tv *Television) FrameNum() int {
	return tv.frameNum
}

// Signal steps the raster by one tick and writes the output of the design to
// the frame buffer at the new beam position.
func (tv *Television) Signal(sig Sync, out signal.Outputs, highlight bool) Event {
	var ev Event
	tv.raster, ev = tv.raster.Step(sig)

	if ev&EventHorizAdjust == EventHorizAdjust {
		logger.Logf(tv, "television", "horizontal auto-adjust to %d after HSYNC [col,row=%d,%d] frame %d",
			tv.raster.HorizAdjust, tv.raster.Col, tv.raster.Row, tv.frameNum)
	}

	if ev&EventNewFrame == EventNewFrame {
		tv.frameNum++
		tv.buffer.FadeOverflow()
	}

	if ev&EventVertShift == EventVertShift {
		logger.Logf(tv, "television", "vertical auto-shift to %d after VSYNC [col,row=%d,%d] frame %d",
			tv.raster.VertShift, tv.raster.Col, tv.raster.Row, tv.frameNum)
	}

	tv.buffer.WritePixel(tv.raster.Col, tv.raster.Row, framebuffer.Pixel{
		Red:     out.Red,
		Green:   out.Green,
		Blue:    out.Blue,
		HSync:   out.HSync,
		VSync:   out.VSync,
		Speaker: out.Speaker,
	}, highlight)

	return ev
}

// ClearFreshness of the frame buffer.
func (tv *Television) ClearFreshness() {
	tv.buffer.ClearFreshness()
}

// Overlay the expected display area on the frame buffer, positioned according
// to the current vertical estimate.
func (tv *Television) Overlay(guides bool) {
	tv.buffer.OverlayDisplayArea(0, tv.raster.VertShift, tv.spec.HorizActive, tv.spec.VertActive, guides)
}
