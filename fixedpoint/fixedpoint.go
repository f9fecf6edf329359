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

// Package fixedpoint converts between float64 and the signed Q12.12 values
// held in the navigation registers of the simulated design.
//
// A value occupies the low 24 bits of a uint32. The top 12 bits are the signed
// integer part and the bottom 12 bits are the fraction, so the resolution of a
// value is 1/4096.
package fixedpoint

// Number of bits in each part of a value.
const (
	IntegerBits    = 12
	FractionalBits = 12
	Bits           = IntegerBits + FractionalBits
)

// Mask covers the bits of a value.
const Mask = 1<<Bits - 1

const (
	signBit        = 1 << (Bits - 1)
	fractionalMask = 1<<FractionalBits - 1
	integerMask    = Mask &^ fractionalMask
	scale          = 1 << FractionalBits
)

// Part selects how much of a value is decoded.
type Part int

// List of valid Part values.
const (
	Full Part = iota
	IntegerOnly
	FractionalOnly
)

func (p Part) String() string {
	switch p {
	case Full:
		return "full"
	case IntegerOnly:
		return "integer"
	case FractionalOnly:
		return "fractional"
	}
	return "unknown part"
}

// Decode the raw value. Bits above the 24-bit value are ignored.
//
// FractionalOnly masks the value to its fractional bits before sign
// extension, which leaves the sign bit clear. The result of FractionalOnly is
// therefore never negative, even for negative values, and IntegerOnly plus
// FractionalOnly only equals Full for positive values.
func Decode(raw uint32, part Part) float64 {
	t := raw & Mask

	switch part {
	case IntegerOnly:
		t &= integerMask
	case FractionalOnly:
		t &= fractionalMask
	}

	v := int32(t)
	if t&signBit != 0 {
		v |= ^int32(Mask)
	}

	return float64(v) / scale
}

// Encode the float as a raw value. The fraction is truncated toward zero and
// values outside the representable range wrap.
func Encode(d float64) uint32 {
	return uint32(int64(d*scale)) & Mask
}
