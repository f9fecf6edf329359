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

// Controllers interprets user input events.
type Controllers struct {
	// whether the last event was consumed
	LastKeyHandled bool

	// is true if a quit event has been seen
	Quit bool
}

// granularity presets by key. the ordering of the presets is defined by the
// television/specification package
var granularityKeys = map[string]int{
	"1": 0,
	"8": 1,
	"9": 2,
	"2": 3,
	"3": 4,
	"4": 5,
	"5": 6,
	"6": 7,
}

// refresh limit adjustment for the keypad plus and minus keys
const refreshLimitStep = 1000

// HandleUserInput interprets the event and forwards any resulting command.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) error {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
		c.LastKeyHandled = true
		return handle.HandleCommand(CmdQuit, 0)
	case EventKeyboard:
		return c.keyboard(ev, handle)
	}

	// mouse motion is collected by the GUI into the Keys type
	return nil
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) error {
	if !ev.Down || ev.Repeat {
		return nil
	}

	cmd := CmdNone
	arg := 0

	if g, ok := granularityKeys[ev.Key]; ok {
		cmd = CmdGranularity
		arg = g
	} else {
		switch ev.Key {
		case "Q", "Escape":
			c.Quit = true
			cmd = CmdQuit
		case "Space":
			cmd = CmdPause
		case "G":
			cmd = CmdToggleGuides
		case "H":
			cmd = CmdToggleHighlight
		case "V":
			cmd = CmdToggleVSyncLog
		case "X":
			cmd = CmdToggleExamine
		case "S":
			cmd = CmdStepExamine
		case "O":
			cmd = CmdToggleOverride
		case "End":
			cmd = CmdClearLocks
		case "Insert":
			cmd = CmdToggleMapLock
		case "Keypad +":
			cmd = CmdRefreshLimit
			arg = refreshLimitStep
		case "Keypad -":
			cmd = CmdRefreshLimit
			arg = -refreshLimitStep
		case "]":
			cmd = CmdMotionScale
			arg = 1
		case "[":
			cmd = CmdMotionScale
			arg = -1
		case "Up", "Down", "Left", "Right":
			cmd = CmdToggleLock
			if ev.Mod == KeyModShift {
				cmd = CmdMomentary
			}
			arg = int(map[string]Direction{
				"Up":    DirForward,
				"Down":  DirBack,
				"Left":  DirLeft,
				"Right": DirRight,
			}[ev.Key])
		}
	}

	if cmd == CmdNone {
		return nil
	}

	c.LastKeyHandled = true
	return handle.HandleCommand(cmd, arg)
}
