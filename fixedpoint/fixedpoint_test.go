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

package fixedpoint_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/vgasim/fixedpoint"
	"github.com/jetsetilly/vgasim/test"
)

func TestDecode(t *testing.T) {
	test.ExpectEquality(t, fixedpoint.Decode(0x001000, fixedpoint.Full), 1.0)
	test.ExpectEquality(t, fixedpoint.Decode(0x001800, fixedpoint.Full), 1.5)
	test.ExpectEquality(t, fixedpoint.Decode(0x000001, fixedpoint.Full), 1.0/4096)
	test.ExpectEquality(t, fixedpoint.Decode(0x7fffff, fixedpoint.Full), 2048.0-1.0/4096)
	test.ExpectEquality(t, fixedpoint.Decode(0x800000, fixedpoint.Full), -2048.0)

	// bits above the value are ignored
	test.ExpectEquality(t, fixedpoint.Decode(0xab001000, fixedpoint.Full), 1.0)
}

func TestDecodeParts(t *testing.T) {
	test.ExpectEquality(t, fixedpoint.Decode(0x003c00, fixedpoint.IntegerOnly), 3.0)
	test.ExpectEquality(t, fixedpoint.Decode(0x003c00, fixedpoint.FractionalOnly), 0.75)
}

func TestNegativeOne(t *testing.T) {
	const raw = 0xfffff000
	test.ExpectEquality(t, fixedpoint.Decode(raw, fixedpoint.Full), -1.0)
	test.ExpectEquality(t, fixedpoint.Decode(raw, fixedpoint.IntegerOnly), -1.0)
	test.ExpectEquality(t, fixedpoint.Decode(raw, fixedpoint.FractionalOnly), 0.0)
}

func TestFractionalIsNeverNegative(t *testing.T) {
	// -1.25 is stored as integer part -2 with a fraction of 0.75
	raw := fixedpoint.Encode(-1.25)
	test.ExpectEquality(t, fixedpoint.Decode(raw, fixedpoint.Full), -1.25)
	test.ExpectEquality(t, fixedpoint.Decode(raw, fixedpoint.IntegerOnly), -2.0)
	test.ExpectEquality(t, fixedpoint.Decode(raw, fixedpoint.FractionalOnly), 0.75)

	for raw := uint32(0); raw <= fixedpoint.Mask; raw += 0x1357 {
		if fixedpoint.Decode(raw, fixedpoint.FractionalOnly) < 0 {
			t.Fatalf("negative fractional part for %06x", raw)
		}
	}
}

func TestEncode(t *testing.T) {
	test.ExpectEquality(t, fixedpoint.Encode(1.0), uint32(0x001000))
	test.ExpectEquality(t, fixedpoint.Encode(-1.0), uint32(0xfff000))
	test.ExpectEquality(t, fixedpoint.Encode(0.5), uint32(0x000800))

	// truncation toward zero
	test.ExpectEquality(t, fixedpoint.Encode(1.0/8192), uint32(0))
	test.ExpectEquality(t, fixedpoint.Encode(-1.0/8192), uint32(0))

	// out of range values wrap
	test.ExpectEquality(t, fixedpoint.Encode(2048.0), uint32(0x800000))
	test.ExpectEquality(t, fixedpoint.Decode(fixedpoint.Encode(2048.0), fixedpoint.Full), -2048.0)
}

func TestRoundTrip(t *testing.T) {
	for _, d := range []float64{0, 1, -1, 0.5, -0.5, 1.5, -1.5, 100.25, -2047.75, 2047.999755859375} {
		test.ExpectEquality(t, fixedpoint.Decode(fixedpoint.Encode(d), fixedpoint.Full), d)
	}

	// values that aren't exactly representable are within one quantum
	for _, d := range []float64{0.1, -0.1, 3.14159, -2.71828} {
		if math.Abs(fixedpoint.Decode(fixedpoint.Encode(d), fixedpoint.Full)-d) >= 1.0/4096 {
			t.Errorf("round trip of %f is not within one quantum", d)
		}
	}
}

func TestEncodeDecodedPattern(t *testing.T) {
	for _, raw := range []uint32{0x000000, 0x000001, 0x7fffff, 0x800000, 0x800001, 0xfff000, 0xffffff} {
		test.ExpectEquality(t, fixedpoint.Encode(fixedpoint.Decode(raw, fixedpoint.Full)), raw)
	}

	// every pattern, including the negative half
	for raw := uint32(0); raw <= fixedpoint.Mask; raw++ {
		if fixedpoint.Encode(fixedpoint.Decode(raw, fixedpoint.Full)) != raw {
			t.Fatalf("pattern %06x does not survive decode and encode", raw)
		}
	}
}
