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

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/jetsetilly/vgasim/gui/sdl"
	"github.com/jetsetilly/vgasim/hardware/testcard"
	"github.com/jetsetilly/vgasim/logger"
	"github.com/jetsetilly/vgasim/modalflag"
	"github.com/jetsetilly/vgasim/paths"
	"github.com/jetsetilly/vgasim/prefs"
	"github.com/jetsetilly/vgasim/simulation"
	"github.com/jetsetilly/vgasim/statsview"
	"github.com/jetsetilly/vgasim/television/specification"
	"github.com/jetsetilly/vgasim/version"
	"github.com/jetsetilly/vgasim/wavwriter"
)

// SDL requires that window creation and event handling happen on the main
// thread
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS")
	md.AdditionalHelp(fmt.Sprintf("%s\ndefault mode is RUN", version.Banner()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "HEADLESS":
		err = headless(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

// common flags for both modes
type options struct {
	granularity *int
	settle      *int
	wav         *string
	log         *bool
	prefs       *string
	double      *bool
}

func addOptions(md *modalflag.Modes) options {
	return options{
		granularity: md.AddInt("granularity", -1, "refresh granularity preset (0 to 7)"),
		settle:      md.AddInt("settle", -1, "ticks after a reset before the raster is calibrated"),
		wav:         md.AddString("wav", "", "record tone output to wav file"),
		log:         md.AddBool("log", false, "echo log to stdout"),
		prefs:       md.AddString("prefs", "", "preferences to apply. eg. \"highlight::false; motion::1.5\""),
		double:      md.AddBool("double", false, "clock the design twice for every raster tick"),
	}
}

// prepare the simulation according to the common flags. the returned function
// should be called when the simulation has finished
func (o options) simulation(spec specification.Spec) (*simulation.Simulation, func() error, error) {
	if *o.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(*o.prefs)
	opts, err := simulation.NewOptions(spec)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "vgasim", "unused preferences: %s", unused)
	}
	if err != nil {
		return nil, nil, err
	}

	if *o.granularity >= 0 {
		err = opts.Granularity.Set(*o.granularity)
		if err != nil {
			return nil, nil, err
		}
	}

	clocksPerTick := 1
	if *o.double {
		clocksPerTick = 2
	}

	sim := simulation.NewSimulation(spec, testcard.NewTestCard(spec), opts, clocksPerTick)

	if *o.settle >= 0 {
		sim.Television().SetSettle(*o.settle)
		sim.Television().Reset()
	}

	end := func() error { return nil }

	if *o.wav != "" {
		aw, err := wavwriter.New(*o.wav, spec.ClockHz)
		if err != nil {
			return nil, nil, err
		}
		sim.AddAudioMixer(aw)
		end = aw.EndMixing
	}

	return sim, end, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	o := addOptions(md)
	scale := md.AddInt("scale", 1, "window scaling")
	font := md.AddString("font", paths.ResourcePath("fonts", "Cousine-Regular.ttf"), "font file for status text")
	stats := md.AddBool("statsview", false, "run stats server")
	statsAddr := md.AddString("statsaddr", statsview.DefaultAddress, "address of stats server")
	audio := md.AddBool("audio", true, "play tone output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	spec := specification.SpecVGA

	sim, end, err := o.simulation(spec)
	if err != nil {
		return err
	}
	logger.Log(logger.Allow, "vgasim", version.Banner())

	if *stats {
		srv := statsview.Launch(os.Stdout, *statsAddr)
		defer srv.Stop()
	}

	gui, err := sdl.NewGUI(spec, *scale, *font)
	if err != nil {
		return err
	}
	defer gui.Destroy()

	if *audio {
		aud, err := sdl.NewAudio(spec.ClockHz)
		if err != nil {
			logger.Log(logger.Allow, "vgasim", err)
		} else {
			sim.AddAudioMixer(aud)
			defer aud.EndMixing()
		}
	}

	err = sim.Run(gui)
	if err != nil {
		return err
	}

	return end()
}
