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

	"github.com/jetsetilly/vgasim/prefs"
	"github.com/jetsetilly/vgasim/television/specification"
)

// motion scale changes by this factor for each step
const motionScaleStep = 1.1

// Config is the configuration for a single refresh batch.
type Config struct {
	Granularity specification.Granularity
	Highlight   bool
	Guides      bool
	MotionScale float64
}

// Options are the runtime options of the simulation.
type Options struct {
	granularities []specification.Granularity

	Highlight   prefs.Bool
	Guides      prefs.Bool
	MotionScale prefs.Float

	// index into the list of granularity presets
	Granularity prefs.Int

	// number of ticks in a batch. set to the preset value when the
	// granularity is changed
	RefreshLimit prefs.Int
}

// NewOptions is the preferred method of initialisation for the Options type.
// Values on the prefs command line stack are applied.
func NewOptions(spec specification.Spec) (*Options, error) {
	opts := &Options{
		granularities: spec.Granularities(),
	}

	opts.MotionScale.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("motion scale must be positive")
		}
		return nil
	})

	opts.Granularity.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int) >= len(opts.granularities) {
			return fmt.Errorf("granularity preset must be between 0 and %d", len(opts.granularities)-1)
		}
		return nil
	})
	opts.Granularity.SetHookPost(func(v prefs.Value) error {
		return opts.RefreshLimit.Set(opts.granularities[v.(int)].Ticks)
	})

	opts.RefreshLimit.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("refresh limit must be at least one tick")
		}
		return nil
	})

	if err := opts.Highlight.Set(true); err != nil {
		return nil, err
	}
	if err := opts.MotionScale.Set(1.0); err != nil {
		return nil, err
	}
	if err := opts.Granularity.Set(specification.DefaultGranularity); err != nil {
		return nil, err
	}

	for key, p := range map[string]prefs.Settable{
		"highlight":   &opts.Highlight,
		"guides":      &opts.Guides,
		"motion":      &opts.MotionScale,
		"granularity": &opts.Granularity,
	} {
		if err := prefs.ApplyCommandLine(key, p); err != nil {
			return nil, err
		}
	}

	// the refresh limit must be applied after the granularity
	if err := prefs.ApplyCommandLine("limit", &opts.RefreshLimit); err != nil {
		return nil, err
	}

	return opts, nil
}

// Preset returns the granularity preset currently selected.
func (opts *Options) Preset() specification.Granularity {
	return opts.granularities[opts.Granularity.Get().(int)]
}

// AdjustMotionScale increases or decreases the motion scale by one step.
func (opts *Options) AdjustMotionScale(dir int) error {
	v := opts.MotionScale.Get().(float64)
	if dir > 0 {
		v *= motionScaleStep
	} else if dir < 0 {
		v /= motionScaleStep
	}
	return opts.MotionScale.Set(v)
}

// Config returns the configuration for the next refresh batch.
func (opts *Options) Config() Config {
	g := opts.Preset()
	g.Ticks = opts.RefreshLimit.Get().(int)
	return Config{
		Granularity: g,
		Highlight:   opts.Highlight.Get().(bool),
		Guides:      opts.Guides.Get().(bool),
		MotionScale: opts.MotionScale.Get().(float64),
	}
}
