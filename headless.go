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
	"image/png"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/vgasim/digest"
	"github.com/jetsetilly/vgasim/easyterm"
	"github.com/jetsetilly/vgasim/logger"
	"github.com/jetsetilly/vgasim/modalflag"
	"github.com/jetsetilly/vgasim/paths"
	"github.com/jetsetilly/vgasim/performance"
	"github.com/jetsetilly/vgasim/simulation"
	"github.com/jetsetilly/vgasim/television/specification"
	"github.com/jetsetilly/vgasim/userinput"
)

// headlessHost implements the simulation.Host interface without a window. Key
// presses are read from the terminal if one has been attached.
type headlessHost struct {
	keys    chan string
	intChan chan os.Signal
}

func (h *headlessHost) event(key string) userinput.Event {
	return userinput.EventKeyboard{Key: key, Down: true}
}

// Service implements the simulation.Host interface.
func (h *headlessHost) Service(wait bool) ([]userinput.Event, error) {
	var events []userinput.Event

	if wait {
		if h.keys == nil {
			return nil, fmt.Errorf("paused with no terminal")
		}
		select {
		case <-h.intChan:
			return []userinput.Event{userinput.EventQuit{}}, nil
		case k, ok := <-h.keys:
			if !ok {
				return []userinput.Event{userinput.EventQuit{}}, nil
			}
			events = append(events, h.event(k))
		}
	}

	for {
		select {
		case <-h.intChan:
			return append(events, userinput.EventQuit{}), nil
		case k, ok := <-h.keys:
			if !ok {
				h.keys = nil
				return events, nil
			}
			events = append(events, h.event(k))
		default:
			return events, nil
		}
	}
}

// Keys implements the simulation.Host interface. There are no held keys in
// headless mode.
func (h *headlessHost) Keys() userinput.Keys {
	return userinput.Keys{}
}

// Present implements the simulation.Host interface.
func (h *headlessHost) Present(_ *simulation.Simulation) error {
	return nil
}

func headless(md *modalflag.Modes) error {
	md.NewMode()

	o := addOptions(md)
	frames := md.AddInt("frames", 10, "number of frames to run")
	pngFile := md.AddString("png", "", "save frame buffer to png file on completion (\"auto\" for a unique filename)")
	memvizFile := md.AddString("memviz", "", "save memviz of raster state to file on completion")
	useDigest := md.AddBool("digest", false, "print digest of video and tone output on completion")
	term := md.AddBool("term", false, "read single key commands from the terminal")
	profile := md.AddString("profile", "none", "run performance profiler (none, cpu, mem, both)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var prf performance.Profile
	switch strings.ToLower(*profile) {
	case "none":
		prf = performance.ProfileNone
	case "cpu":
		prf = performance.ProfileCPU
	case "mem":
		prf = performance.ProfileMem
	case "both":
		prf = performance.ProfileCPU | performance.ProfileMem
	default:
		return fmt.Errorf("unknown profile type: %s", *profile)
	}

	spec := specification.SpecVGA

	sim, end, err := o.simulation(spec)
	if err != nil {
		return err
	}

	host := &headlessHost{
		intChan: make(chan os.Signal, 1),
	}
	signal.Notify(host.intChan, os.Interrupt)
	defer signal.Stop(host.intChan)

	if *term {
		var pt easyterm.Terminal
		err = pt.Initialise(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		pt.CBreakMode()
		defer pt.CleanUp()

		host.keys = make(chan string, 16)
		go pt.ReadKeys(host.keys)
	}

	var vid *digest.Video
	var aud *digest.Audio
	if *useDigest {
		vid = digest.NewVideo()
		aud = digest.NewAudio()
		sim.AddAudioMixer(aud)
	}

	err = performance.RunProfiler(prf, "vgasim", func() error {
		for sim.Testbench().FrameCount < *frames {
			cont, err := sim.Iterate(host)
			if err != nil {
				return err
			}
			if !cont {
				break // for loop
			}
			if vid != nil {
				vid.Frame(sim.Television().Buffer())
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "vgasim", "%d frames: %s", *frames, sim.Television().Raster())
	fmt.Println(sim.Status())

	if *useDigest {
		fmt.Printf("video: %s\n", vid.Hash())
		fmt.Printf("tone:  %s\n", aud.Hash())
	}

	if *pngFile != "" {
		fn := *pngFile
		if fn == "auto" {
			fn = fmt.Sprintf("%s.png", paths.UniqueFilename("vgasim", "frame"))
		}
		err = savePNG(fn, sim)
		if err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		r := sim.Television().Raster()
		cfg := sim.Options.Config()
		memviz.Map(f, &r, &cfg)
		err = f.Close()
		if err != nil {
			return err
		}
	}

	return end()
}

func savePNG(filename string, sim *simulation.Simulation) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	return png.Encode(f, sim.Television().Buffer().Image())
}
