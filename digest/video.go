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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/vgasim/television/framebuffer"
)

// Video is a chained digest of frame buffer contents.
type Video struct {
	digest [sha1.Size]byte

	// previous digest followed by the contents of the frame buffer
	pixels []byte
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
}

// Frame adds the current contents of the frame buffer to the digest.
func (dig *Video) Frame(buf *framebuffer.Buffer) {
	l := len(dig.digest) + len(buf.Pix)
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}
	n := copy(dig.pixels, dig.digest[:])
	copy(dig.pixels[n:], buf.Pix)
	dig.digest = sha1.Sum(dig.pixels)
}
