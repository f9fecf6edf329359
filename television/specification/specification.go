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

// Package specification contains the idealized timing of the video signal
// that the television expects and the sizes derived from it.
package specification

import "fmt"

// Spec is the timing of a video mode, in pixel clocks and lines. The order of
// the periods within a line is active, front porch, sync, back porch. The
// order of the periods within a frame is the same but measured in lines.
type Spec struct {
	ID string

	// horizontal timing in pixel clocks
	HorizActive     int
	HorizFrontPorch int
	HorizSync       int
	HorizBackPorch  int

	// vertical timing in lines
	VertActive     int
	VertFrontPorch int
	VertSync       int
	VertBackPorch  int

	// extra space to the right and below the full raster. signals that fall
	// outside of the full raster are drawn in this space
	MarginRight  int
	MarginBottom int

	// the pixel clock the timing is designed for
	ClockHz int
}

// SpecVGA is 640x480 at 60Hz. The vertical front porch is 11 lines rather
// than the more usual 10.
var SpecVGA = Spec{
	ID:              "VGA",
	HorizActive:     640,
	HorizFrontPorch: 16,
	HorizSync:       96,
	HorizBackPorch:  48,
	VertActive:      480,
	VertFrontPorch:  11,
	VertSync:        2,
	VertBackPorch:   32,
	MarginRight:     50,
	MarginBottom:    50,
	ClockHz:         25_000_000,
}

func (spec Spec) String() string {
	return fmt.Sprintf("%s %dx%d (%dx%d)", spec.ID, spec.HorizActive, spec.VertActive, spec.HorizTotal(), spec.VertTotal())
}

// HorizTotal is the number of pixel clocks in a line.
func (spec Spec) HorizTotal() int {
	return spec.HorizActive + spec.HorizFrontPorch + spec.HorizSync + spec.HorizBackPorch
}

// VertTotal is the number of lines in a frame.
func (spec Spec) VertTotal() int {
	return spec.VertActive + spec.VertFrontPorch + spec.VertSync + spec.VertBackPorch
}

// FrameClocks is the number of pixel clocks in a frame.
func (spec Spec) FrameClocks() int {
	return spec.HorizTotal() * spec.VertTotal()
}

// Width of the frame buffer.
func (spec Spec) Width() int {
	return spec.HorizTotal() + spec.MarginRight
}

// Height of the frame buffer.
func (spec Spec) Height() int {
	return spec.VertTotal() + spec.MarginBottom
}

// FramesPerSecond at the designed clock rate.
func (spec Spec) FramesPerSecond() float64 {
	return float64(spec.ClockHz) / float64(spec.FrameClocks())
}
