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

package framebuffer_test

import (
	"testing"

	"github.com/jetsetilly/vgasim/television/framebuffer"
	"github.com/jetsetilly/vgasim/test"
)

func cell(b *framebuffer.Buffer, x, y int) []byte {
	i := (y*b.Width + x) * framebuffer.BytesPerCell
	return b.Pix[i : i+framebuffer.BytesPerCell]
}

func TestWritePixel(t *testing.T) {
	b := framebuffer.NewBuffer(20, 10, 16, 8)
	test.DemandEquality(t, len(b.Pix), 20*10*4)
	test.ExpectEquality(t, b.Pitch(), 80)

	test.ExpectSuccess(t, b.WritePixel(3, 2, framebuffer.Pixel{Red: 3, Green: 2, Blue: 1}, false))
	c := cell(b, 3, 2)
	test.ExpectEquality(t, c[framebuffer.Red], uint8(0xc0))
	test.ExpectEquality(t, c[framebuffer.Green], uint8(0x80))
	test.ExpectEquality(t, c[framebuffer.Blue], uint8(0x40))

	test.ExpectSuccess(t, b.WritePixel(3, 2, framebuffer.Pixel{Red: 3, Green: 2, Blue: 1}, true))
	test.ExpectEquality(t, c[framebuffer.Red], uint8(0xdf))
	test.ExpectEquality(t, c[framebuffer.Green], uint8(0x9f))
	test.ExpectEquality(t, c[framebuffer.Blue], uint8(0x5f))
}

func TestSyncAndSpeakerBits(t *testing.T) {
	b := framebuffer.NewBuffer(20, 10, 16, 8)

	b.WritePixel(0, 0, framebuffer.Pixel{HSync: true}, false)
	c := cell(b, 0, 0)
	test.ExpectEquality(t, c[framebuffer.Red], uint8(framebuffer.SyncBit))
	test.ExpectEquality(t, c[framebuffer.Blue], uint8(0))

	b.WritePixel(0, 0, framebuffer.Pixel{VSync: true, Speaker: true}, false)
	test.ExpectEquality(t, c[framebuffer.Red], uint8(framebuffer.SpeakerBit))
	test.ExpectEquality(t, c[framebuffer.Green], uint8(0))
	test.ExpectEquality(t, c[framebuffer.Blue], uint8(framebuffer.SyncBit|framebuffer.SpeakerBit))
}

func TestOutOfBounds(t *testing.T) {
	b := framebuffer.NewBuffer(20, 10, 16, 8)
	before := append([]byte{}, b.Pix...)

	test.ExpectFailure(t, b.WritePixel(20, 0, framebuffer.Pixel{Red: 3}, true))
	test.ExpectFailure(t, b.WritePixel(0, 10, framebuffer.Pixel{Red: 3}, true))
	test.ExpectFailure(t, b.WritePixel(-1, 0, framebuffer.Pixel{Red: 3}, true))
	test.ExpectEquality(t, string(b.Pix), string(before))

	// the overflow region can be written to
	test.ExpectSuccess(t, b.WritePixel(19, 9, framebuffer.Pixel{Red: 3}, true))
}

func TestClearFreshness(t *testing.T) {
	b := framebuffer.NewBuffer(20, 10, 16, 8)

	b.WritePixel(15, 7, framebuffer.Pixel{Red: 3, Green: 3, Blue: 3}, true)
	b.WritePixel(16, 7, framebuffer.Pixel{Red: 3, Green: 3, Blue: 3}, true)
	b.WritePixel(0, 8, framebuffer.Pixel{Red: 3, Green: 3, Blue: 3}, true)
	b.ClearFreshness()

	// inside the full raster the freshness bits are cleared and the colour is
	// untouched
	c := cell(b, 15, 7)
	test.ExpectEquality(t, c[framebuffer.Red], uint8(0xc0))
	test.ExpectEquality(t, c[framebuffer.Green], uint8(0xc0))
	test.ExpectEquality(t, c[framebuffer.Blue], uint8(0xc0))

	// outside the full raster nothing changes
	test.ExpectEquality(t, cell(b, 16, 7)[framebuffer.Red], uint8(0xdf))
	test.ExpectEquality(t, cell(b, 0, 8)[framebuffer.Red], uint8(0xdf))
}

func TestFadeOverflow(t *testing.T) {
	b := framebuffer.NewBuffer(20, 10, 16, 8)

	b.WritePixel(15, 7, framebuffer.Pixel{Red: 3}, false)
	b.WritePixel(16, 0, framebuffer.Pixel{Red: 3}, false)
	b.WritePixel(0, 9, framebuffer.Pixel{Red: 3}, false)
	b.FadeOverflow()

	test.ExpectEquality(t, cell(b, 15, 7)[framebuffer.Red], uint8(0xc0))
	test.ExpectEquality(t, cell(b, 16, 0)[framebuffer.Red], uint8(182))
	test.ExpectEquality(t, cell(b, 0, 9)[framebuffer.Red], uint8(182))

	// repeated fading eventually clears the overflow region
	for range 200 {
		b.FadeOverflow()
	}
	test.ExpectEquality(t, cell(b, 16, 0)[framebuffer.Red], uint8(0))
	test.ExpectEquality(t, cell(b, 15, 7)[framebuffer.Red], uint8(0xc0))
}

func TestOverlayDisplayArea(t *testing.T) {
	b := framebuffer.NewBuffer(20, 10, 16, 8)
	b.OverlayDisplayArea(2, 1, 10, 6, false)

	test.ExpectEquality(t, cell(b, 5, 0)[framebuffer.Green], uint8(framebuffer.OverlayMark))
	test.ExpectEquality(t, cell(b, 5, 7)[framebuffer.Green], uint8(framebuffer.OverlayMark))
	test.ExpectEquality(t, cell(b, 1, 4)[framebuffer.Green], uint8(framebuffer.OverlayMark))
	test.ExpectEquality(t, cell(b, 12, 4)[framebuffer.Green], uint8(framebuffer.OverlayMark))
	test.ExpectEquality(t, cell(b, 5, 4)[framebuffer.Green], uint8(0))
	test.ExpectEquality(t, cell(b, 7, 4)[framebuffer.Green], uint8(0))

	b.OverlayDisplayArea(2, 1, 10, 6, true)
	test.ExpectEquality(t, cell(b, 7, 4)[framebuffer.Green], uint8(framebuffer.OverlayMid))

	// an overlay that falls outside the buffer is clipped
	b.OverlayDisplayArea(0, 0, 40, 40, true)
}

func TestImage(t *testing.T) {
	b := framebuffer.NewBuffer(4, 4, 4, 4)
	b.WritePixel(1, 2, framebuffer.Pixel{Red: 3, Blue: 1}, false)
	img := b.Image()
	c := img.RGBAAt(1, 2)
	test.ExpectEquality(t, c.R, uint8(0xc0))
	test.ExpectEquality(t, c.G, uint8(0))
	test.ExpectEquality(t, c.B, uint8(0x40))
	test.ExpectEquality(t, c.A, uint8(0xff))
}
