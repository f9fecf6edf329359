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

// Command is an instruction to the simulation that results from user input.
type Command int

// List of valid Command values.
const (
	CmdNone Command = iota
	CmdQuit
	CmdPause
	CmdGranularity
	CmdRefreshLimit
	CmdToggleGuides
	CmdToggleHighlight
	CmdToggleVSyncLog
	CmdToggleExamine
	CmdStepExamine
	CmdToggleOverride
	CmdClearLocks
	CmdToggleMapLock
	CmdToggleLock
	CmdMomentary
	CmdMotionScale
)

// Direction is the argument to CmdToggleLock and CmdMomentary.
type Direction int

// List of valid Direction values.
const (
	DirForward Direction = iota
	DirBack
	DirLeft
	DirRight
)

// HandleInput is implemented by the simulation. The meaning of the argument
// depends on the command:
//
//	CmdGranularity   index of the refresh granularity preset
//	CmdRefreshLimit  change in the refresh tick limit
//	CmdToggleLock    Direction
//	CmdMomentary     Direction
//	CmdMotionScale   +1 to increase the motion scale, -1 to decrease
type HandleInput interface {
	HandleCommand(cmd Command, arg int) error
}
