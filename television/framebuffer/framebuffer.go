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

// Package framebuffer holds the reconstructed image. Each cell is four bytes in
// the order blue, green, red, unused. This is the memory layout of a 32-bit
// ARGB pixel on a little-endian machine and can be given directly to a
// streaming texture.
//
// The top two bits of each channel hold the two bit colour from the design.
// The low five bits are the freshness bits, which are set when a cell is
// written and cleared by ClearFreshness(). Bit 7 of the red and blue channels
// show the horizontal and vertical sync pulses. Bit 6 of the red and blue
// channels is set when the speaker is on.
package framebuffer

import (
	"image"
	"image/color"
)

// BytesPerCell is the size of one cell in the Pix slice.
const BytesPerCell = 4

// Offsets of the channels within a cell.
const (
	Blue = iota
	Green
	Red
	Unused
)

// Bits of a channel.
const (
	Highlight   = 0b0001_1111
	OverlayMark = 0b0100_0000
	OverlayMid  = 0b0110_0000
	SyncBit     = 0b1000_0000
	SpeakerBit  = 0b0100_0000
)

// fade multiplier applied to the overflow region once per frame
const fadeFactor = 0.95

// Buffer is the frame buffer. The full raster region is the top-left
// RasterWidth by RasterHeight cells. Everything else is the overflow region.
type Buffer struct {
	Width  int
	Height int

	RasterWidth  int
	RasterHeight int

	Pix []byte
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer(width, height, rasterWidth, rasterHeight int) *Buffer {
	return &Buffer{
		Width:        width,
		Height:       height,
		RasterWidth:  min(rasterWidth, width),
		RasterHeight: min(rasterHeight, height),
		Pix:          make([]byte, width*height*BytesPerCell),
	}
}

// Pitch is the number of bytes in a row of the buffer.
func (b *Buffer) Pitch() int {
	return b.Width * BytesPerCell
}

func (b *Buffer) offset(x, y int) int {
	return (y*b.Width + x) * BytesPerCell
}

// Pixel is the information written to a cell.
type Pixel struct {
	// two bits per channel
	Red   uint8
	Green uint8
	Blue  uint8

	// sync pulses are active
	HSync bool
	VSync bool

	Speaker bool
}

// WritePixel to the cell at x, y. Returns false if the coordinates are outside
// the buffer, in which case nothing is written. The freshness bits are set if
// highlight is true.
func (b *Buffer) WritePixel(x, y int, p Pixel, highlight bool) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}

	var hilite uint8
	if highlight {
		hilite = Highlight
	}

	var speaker uint8
	if p.Speaker {
		speaker = SpeakerBit
	}

	red := p.Red<<6 | hilite | speaker
	if p.HSync {
		red |= SyncBit
	}

	blue := p.Blue<<6 | hilite | speaker
	if p.VSync {
		blue |= SyncBit
	}

	i := b.offset(x, y)
	b.Pix[i+Blue] = blue
	b.Pix[i+Green] = p.Green<<6 | hilite
	b.Pix[i+Red] = red

	return true
}

// ClearFreshness clears the freshness bits of every channel in the full raster
// region.
func (b *Buffer) ClearFreshness() {
	for y := 0; y < b.RasterHeight; y++ {
		i := b.offset(0, y)
		e := b.offset(b.RasterWidth, y)
		for ; i < e; i++ {
			b.Pix[i] &^= Highlight
		}
	}
}

// FadeOverflow dims every channel in the overflow region. Cells to the right of
// the full raster and every cell below it are affected.
func (b *Buffer) FadeOverflow() {
	fade := func(from, to int) {
		for i := from; i < to; i++ {
			b.Pix[i] = uint8(float64(b.Pix[i]) * fadeFactor)
		}
	}

	for y := 0; y < b.RasterHeight; y++ {
		fade(b.offset(b.RasterWidth, y), b.offset(b.Width, y))
	}
	fade(b.offset(0, b.RasterHeight), len(b.Pix))
}

func (b *Buffer) mark(x, y int, bits uint8) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	i := b.offset(x, y)
	b.Pix[i+Blue] |= bits
	b.Pix[i+Green] |= bits
	b.Pix[i+Red] |= bits
}

// OverlayDisplayArea marks the boundary of the expected display area. Rows are
// marked immediately above and below the area and columns immediately to the
// left and right of it. The area's origin is at hshift, vshift. With guides
// set a column is also marked at the middle of the area.
func (b *Buffer) OverlayDisplayArea(hshift, vshift, width, height int, guides bool) {
	for x := 0; x < b.Width; x++ {
		b.mark(x, vshift-1, OverlayMark)
		b.mark(x, vshift+height, OverlayMark)
	}
	for y := 0; y < b.Height; y++ {
		b.mark(hshift-1, y, OverlayMark)
		b.mark(hshift+width, y, OverlayMark)
		if guides {
			b.mark(hshift+width/2, y, OverlayMid)
		}
	}
}

// Clear every cell.
func (b *Buffer) Clear() {
	clear(b.Pix)
}

// Image returns a copy of the buffer as an RGBA image. Every pixel is opaque.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			i := b.offset(x, y)
			img.SetRGBA(x, y, color.RGBA{R: b.Pix[i+Red], G: b.Pix[i+Green], B: b.Pix[i+Blue], A: 0xff})
		}
	}
	return img
}
