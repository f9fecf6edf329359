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

package simulation

import (
	"fmt"

	"github.com/jetsetilly/vgasim/logger"
	"github.com/jetsetilly/vgasim/userinput"
)

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// HandleCommand implements the userinput.HandleInput interface.
func (sim *Simulation) HandleCommand(cmd userinput.Command, arg int) error {
	switch cmd {
	case userinput.CmdQuit:
		logger.Log(logger.Allow, "simulation", "quit")

	case userinput.CmdPause:
		sim.tb.Pause(!sim.tb.Paused())

	case userinput.CmdGranularity:
		if err := sim.Options.Granularity.Set(arg); err != nil {
			return fmt.Errorf("granularity: %w", err)
		}
		g := sim.Options.Preset()
		sim.arm(g)
		logger.Logf(logger.Allow, "simulation", "refresh granularity: %s", g.Label)

	case userinput.CmdRefreshLimit:
		v := sim.Options.RefreshLimit.Get().(int) + arg
		if err := sim.Options.RefreshLimit.Set(max(v, 1)); err != nil {
			return fmt.Errorf("refresh limit: %w", err)
		}
		logger.Logf(logger.Allow, "simulation", "refresh limit: %d ticks", sim.Options.RefreshLimit.Get().(int))

	case userinput.CmdToggleGuides:
		if err := sim.Options.Guides.Toggle(); err != nil {
			return fmt.Errorf("guides: %w", err)
		}
		logger.Logf(logger.Allow, "simulation", "guides %s", onOff(sim.Options.Guides.Get().(bool)))

	case userinput.CmdToggleHighlight:
		if err := sim.Options.Highlight.Toggle(); err != nil {
			return fmt.Errorf("highlight: %w", err)
		}
		logger.Logf(logger.Allow, "simulation", "highlight %s", onOff(sim.Options.Highlight.Get().(bool)))

	case userinput.CmdToggleVSyncLog:
		sim.tb.LogVSync = !sim.tb.LogVSync
		logger.Logf(logger.Allow, "simulation", "vsync logging %s", onOff(sim.tb.LogVSync))

	case userinput.CmdToggleExamine:
		sim.tb.Examine(!sim.tb.ExamineMode)
		logger.Logf(logger.Allow, "simulation", "examine mode %s", onOff(sim.tb.ExamineMode))

	case userinput.CmdStepExamine:
		sim.tb.Examine(true)
		sim.tb.Pause(false)
		logger.Log(logger.Allow, "simulation", "examine: continuing to next frame with tone")

	case userinput.CmdToggleOverride:
		sim.Override.Toggle(sim.tb.Registers(), &sim.Locks)

	case userinput.CmdClearLocks:
		sim.Locks.Clear()
		logger.Log(logger.Allow, "simulation", "locks cleared")

	case userinput.CmdToggleMapLock:
		if sim.Override.IsActive() {
			return nil
		}
		sim.Locks.Map = !sim.Locks.Map
		logger.Logf(logger.Allow, "simulation", "map lock %s", onOff(sim.Locks.Map))

	case userinput.CmdToggleLock:
		if sim.Override.IsActive() {
			return nil
		}
		sim.Locks.Toggle(userinput.Direction(arg))
		logger.Logf(logger.Allow, "simulation", "locks: %s", sim.Locks)

	case userinput.CmdMomentary:
		if sim.Override.IsActive() {
			return nil
		}
		switch userinput.Direction(arg) {
		case userinput.DirForward:
			sim.momentary.Forward = true
		case userinput.DirBack:
			sim.momentary.Back = true
		case userinput.DirLeft:
			sim.momentary.Left = true
		case userinput.DirRight:
			sim.momentary.Right = true
		}

	case userinput.CmdMotionScale:
		if err := sim.Options.AdjustMotionScale(arg); err != nil {
			return fmt.Errorf("motion scale: %w", err)
		}
		logger.Logf(logger.Allow, "simulation", "motion scale: %.3f", sim.Options.MotionScale.Get().(float64))

	default:
		return fmt.Errorf("unhandled command: %d", cmd)
	}

	return nil
}
