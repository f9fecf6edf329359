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
	"time"

	"github.com/jetsetilly/vgasim/hardware/signal"
	"github.com/jetsetilly/vgasim/hardware/testbench"
	"github.com/jetsetilly/vgasim/logger"
	"github.com/jetsetilly/vgasim/override"
	"github.com/jetsetilly/vgasim/performance"
	"github.com/jetsetilly/vgasim/television"
	"github.com/jetsetilly/vgasim/television/specification"
	"github.com/jetsetilly/vgasim/userinput"
)

// Host is implemented by the user interface that the simulation runs in.
type Host interface {
	// Service returns the user input events that have arrived since the
	// previous call. If wait is true the function should block until at
	// least one event has arrived
	Service(wait bool) ([]userinput.Event, error)

	// Keys returns the state of the held keys
	Keys() userinput.Keys

	// Present the frame buffer and any other information about the simulation
	Present(sim *Simulation) error
}

// AudioMixer receives the state of the design's tone output once per tick.
type AudioMixer interface {
	SetAudio(speaker bool) error
}

// Simulation couples a design with a television.
type Simulation struct {
	spec specification.Spec

	tb *testbench.Testbench
	tv *television.Television

	Options  *Options
	Override override.Controller
	Locks    userinput.Locks

	controllers userinput.Controllers

	// one batch presses of the motion pins
	momentary userinput.Locks

	// value of the reset pin in the previous batch
	lastReset bool

	// cut the next batch short at the start of a line or frame
	syncLine  bool
	syncFrame bool

	mixers []AudioMixer
	perf   *performance.Monitor
}

// NewSimulation is the preferred method of initialisation for the Simulation
// type.
func NewSimulation(spec specification.Spec, design signal.Design, opts *Options, clocksPerTick int) *Simulation {
	sim := &Simulation{
		spec:    spec,
		tb:      testbench.NewTestbench(design, clocksPerTick),
		tv:      television.NewTelevision(spec),
		Options: opts,
		perf:    performance.NewMonitor(spec, time.Now()),
	}
	sim.arm(opts.Preset())
	return sim
}

// Testbench returns the testbench driving the design.
func (sim *Simulation) Testbench() *testbench.Testbench {
	return sim.tb
}

// Television returns the television reconstructing the picture.
func (sim *Simulation) Television() *television.Television {
	return sim.tv
}

// Spec returns the specification of the simulation.
func (sim *Simulation) Spec() specification.Spec {
	return sim.spec
}

// Quit returns true if the user has asked to quit.
func (sim *Simulation) Quit() bool {
	return sim.controllers.Quit
}

// AddAudioMixer adds a mixer that will receive the tone output of the design.
func (sim *Simulation) AddAudioMixer(m AudioMixer) {
	sim.mixers = append(sim.mixers, m)
}

func (sim *Simulation) arm(g specification.Granularity) {
	sim.syncLine = g.SyncLine
	sim.syncFrame = g.SyncFrame
}

// PrepareInputs deasserts the momentary input pins so that they can be
// reasserted by ApplyInputs().
func (sim *Simulation) PrepareInputs() {
	in := sim.tb.Inputs()
	in.Reset = false
	in.ShowMap = false
	in.MoveForward = false
	in.MoveLeft = false
	in.MoveBack = false
	in.MoveRight = false
}

// ApplyInputs sets the input pins of the design from the held keys, the locks
// and the override controller. If the reset pin has changed since the
// previous batch the television is reset before the batch is run.
func (sim *Simulation) ApplyInputs(keys userinput.Keys, cfg Config) {
	in := sim.tb.Inputs()

	sim.Override.Drive(in, keys, cfg.MotionScale)

	in.Reset = in.Reset || keys.Reset
	in.ShowMap = in.ShowMap || keys.Map || sim.Locks.Map

	// the override moves the player itself so the motion pins stay low
	if !sim.Override.IsActive() {
		in.MoveForward = in.MoveForward || keys.Forward || sim.Locks.Forward || sim.momentary.Forward
		in.MoveLeft = in.MoveLeft || keys.StrafeLeft || sim.Locks.Left || sim.momentary.Left
		in.MoveBack = in.MoveBack || keys.Back || sim.Locks.Back || sim.momentary.Back
		in.MoveRight = in.MoveRight || keys.StrafeRight || sim.Locks.Right || sim.momentary.Right
	}
	sim.momentary = userinput.Locks{}

	if in.Reset != sim.lastReset {
		sim.tv.Reset()
		sim.lastReset = in.Reset
	}
}

// RunBatch ticks the design for one refresh batch. The batch ends early if
// the testbench pauses or if the batch needs to be aligned with the start of a
// line or frame.
func (sim *Simulation) RunBatch(cfg Config) {
	if cfg.Granularity.Ticks < sim.spec.FrameClocks() {
		sim.tv.ClearFreshness()
	}

	for range cfg.Granularity.Ticks {
		sim.tb.Tick()
		out := sim.tb.Outputs()

		for _, m := range sim.mixers {
			if err := m.SetAudio(out.Speaker); err != nil {
				logger.Log(logger.Allow, "simulation", err)
				sim.mixers = nil
				break // for loop
			}
		}

		ev := sim.tv.Signal(television.Sync{
			HSyncEnded: sim.tb.HSyncStopped(),
			VSyncEnded: sim.tb.VSyncStopped(),
			Lit:        out.Lit(),
		}, out, cfg.Highlight)

		if ev&television.EventVertShift == television.EventVertShift {
			sim.syncLine = true
			sim.syncFrame = true
		}

		if sim.tb.Paused() {
			break // for loop
		}

		r := sim.tv.Raster()
		if sim.syncLine && r.Col == 0 {
			sim.syncLine = false
			break // for loop
		}
		if sim.syncFrame && r.Row == 0 {
			sim.syncFrame = false
			break // for loop
		}
	}

	sim.tv.Overlay(cfg.Guides)
}

// Iterate performs one iteration of the main loop: service the host, apply
// the inputs, run a batch and present the result. Returns false if the
// simulation should stop.
func (sim *Simulation) Iterate(host Host) (bool, error) {
	sim.PrepareInputs()

	evs, err := host.Service(sim.tb.Paused())
	if err != nil {
		return false, err
	}
	for _, ev := range evs {
		if err := sim.controllers.HandleUserInput(ev, sim); err != nil {
			logger.Log(logger.Allow, "simulation", err)
		}
	}

	if sim.controllers.Quit {
		return false, nil
	}

	if sim.tb.Paused() {
		return true, host.Present(sim)
	}

	cfg := sim.Options.Config()
	sim.ApplyInputs(host.Keys(), cfg)
	sim.RunBatch(cfg)

	sim.perf.Check(time.Now(), sim.tb.FrameCount, sim.tb.TickCount)

	return true, host.Present(sim)
}

// Run the simulation until the user quits or an error occurs.
func (sim *Simulation) Run(host Host) error {
	logger.Logf(logger.Allow, "simulation", "running %s", sim.spec)
	for {
		cont, err := sim.Iterate(host)
		if err != nil {
			return err
		}
		if !cont {
			break // for loop
		}
	}
	logger.Logf(logger.Allow, "simulation", "done at %s ticks", testbench.BigNum(sim.tb.TickCount))
	return nil
}
