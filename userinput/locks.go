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

package userinput

import "strings"

// Locks are latched inputs. A locked input is asserted on the design's input
// pin until the lock is released.
type Locks struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Map     bool
}

// Toggle the lock for a direction. Locking a direction releases the lock for
// the opposing direction.
func (l *Locks) Toggle(dir Direction) {
	switch dir {
	case DirForward:
		l.Forward = !l.Forward
		if l.Forward {
			l.Back = false
		}
	case DirBack:
		l.Back = !l.Back
		if l.Back {
			l.Forward = false
		}
	case DirLeft:
		l.Left = !l.Left
		if l.Left {
			l.Right = false
		}
	case DirRight:
		l.Right = !l.Right
		if l.Right {
			l.Left = false
		}
	}
}

// ClearDirections releases all direction locks. The map lock is unaffected.
func (l *Locks) ClearDirections() {
	l.Forward = false
	l.Back = false
	l.Left = false
	l.Right = false
}

// Clear releases all locks.
func (l *Locks) Clear() {
	*l = Locks{}
}

// String returns the locks in the form used by the status line. Lowercase m
// for the map lock and arrow characters for the directions. Released locks are
// shown as a period.
func (l Locks) String() string {
	s := strings.Builder{}
	for _, f := range []struct {
		on bool
		c  byte
	}{
		{l.Map, 'm'},
		{l.Left, '<'},
		{l.Forward, '^'},
		{l.Back, 'v'},
		{l.Right, '>'},
	} {
		if f.on {
			s.WriteByte(f.c)
		} else {
			s.WriteByte('.')
		}
	}
	return s.String()
}
