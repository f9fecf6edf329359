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

package easyterm

import (
	"strings"
)

// KeyNames translates the bytes read from a terminal in cbreak mode into key
// names. The key names are the same as those used by the GUI. Unrecognised
// escape sequences are ignored.
func KeyNames(b []byte) []string {
	var keys []string

	for i := 0; i < len(b); i++ {
		c := b[i]

		switch {
		case c == KeyEsc:
			if i+2 < len(b) && b[i+1] == EscCursor {
				i += 2
				switch b[i] {
				case CursorUp:
					keys = append(keys, "Up")
				case CursorDown:
					keys = append(keys, "Down")
				case CursorForward:
					keys = append(keys, "Right")
				case CursorBackward:
					keys = append(keys, "Left")
				case EscEnd:
					keys = append(keys, "End")
				case EscHome:
					keys = append(keys, "Home")
				case EscInsert:
					if i+1 < len(b) && b[i+1] == EscTilde {
						i++
						keys = append(keys, "Insert")
					}
				}
			} else {
				keys = append(keys, "Escape")
			}
		case c == KeyCtrlC:
			keys = append(keys, "Escape")
		case c == KeySpace:
			keys = append(keys, "Space")
		case c == KeyTab:
			keys = append(keys, "Tab")
		case c == '+':
			keys = append(keys, "Keypad +")
		case c == '-':
			keys = append(keys, "Keypad -")
		case c > KeySpace && c < KeyBackspace:
			keys = append(keys, strings.ToUpper(string(c)))
		}
	}

	return keys
}
