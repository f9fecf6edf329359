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

package sdl

import (
	"github.com/jetsetilly/vgasim/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

func keyMod() userinput.KeyMod {
	mod := userinput.KeyModNone

	if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
		sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
		mod = userinput.KeyModAlt
	} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
		sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		mod = userinput.KeyModShift
	} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
		sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		mod = userinput.KeyModCtrl
	}

	return mod
}

// Service implements the simulation.Host interface.
//
// MUST ONLY be called from the main thread.
func (gui *GUI) Service(wait bool) ([]userinput.Event, error) {
	var events []userinput.Event

	var ev sdl.Event
	if wait {
		ev = sdl.WaitEvent()
	} else {
		ev = sdl.PollEvent()
	}

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			switch ev.Type {
			case sdl.KEYDOWN:
				fallthrough
			case sdl.KEYUP:
				events = append(events, userinput.EventKeyboard{
					Key:    sdl.GetScancodeName(ev.Keysym.Scancode),
					Down:   ev.Type == sdl.KEYDOWN,
					Mod:    keyMod(),
					Repeat: ev.Repeat != 0,
				})
			}

		case *sdl.MouseMotionEvent:
			if gui.relativeMouse {
				gui.mouseDX += int(ev.XRel)
				events = append(events, userinput.EventMouseMotion{
					DX: int(ev.XRel),
					DY: int(ev.YRel),
				})
			}
		}
	}

	return events, nil
}
