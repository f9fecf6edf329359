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

package simulation_test

import (
	"testing"

	"github.com/jetsetilly/vgasim/prefs"
	"github.com/jetsetilly/vgasim/simulation"
	"github.com/jetsetilly/vgasim/television/specification"
	"github.com/jetsetilly/vgasim/test"
)

func TestOptionsDefaults(t *testing.T) {
	spec := specification.SpecVGA
	opts, err := simulation.NewOptions(spec)
	test.DemandSuccess(t, err)

	cfg := opts.Config()
	test.ExpectEquality(t, cfg.Granularity, spec.Granularities()[specification.DefaultGranularity])
	test.ExpectSuccess(t, cfg.Highlight)
	test.ExpectFailure(t, cfg.Guides)
	test.ExpectEquality(t, cfg.MotionScale, 1.0)
}

func TestOptionsCommandLine(t *testing.T) {
	spec := specification.SpecVGA

	prefs.PushCommandLineStack("highlight::false; motion::1.5; granularity::3")
	opts, err := simulation.NewOptions(spec)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.DemandSuccess(t, err)

	cfg := opts.Config()
	test.ExpectFailure(t, cfg.Highlight)
	test.ExpectEquality(t, cfg.MotionScale, 1.5)
	test.ExpectEquality(t, cfg.Granularity.Ticks, spec.HorizTotal())
	test.ExpectSuccess(t, cfg.Granularity.SyncLine)

	// the refresh limit overrides the tick count of the preset
	prefs.PushCommandLineStack("granularity::0; limit::1234")
	opts, err = simulation.NewOptions(spec)
	prefs.PopCommandLineStack()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, opts.Config().Granularity.Ticks, 1234)

	prefs.PushCommandLineStack("motion::-1")
	_, err = simulation.NewOptions(spec)
	prefs.PopCommandLineStack()
	test.ExpectFailure(t, err)
}

func TestOptionsMotionScale(t *testing.T) {
	opts, err := simulation.NewOptions(specification.SpecVGA)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, opts.AdjustMotionScale(1))
	test.ExpectSuccess(t, opts.AdjustMotionScale(1))
	test.ExpectApproximate(t, opts.MotionScale.Get().(float64), 1.21, 0.0001)
	test.ExpectSuccess(t, opts.AdjustMotionScale(-1))
	test.ExpectSuccess(t, opts.AdjustMotionScale(-1))
	test.ExpectApproximate(t, opts.MotionScale.Get().(float64), 1.0, 0.0001)

	test.ExpectFailure(t, opts.MotionScale.Set(0.0))
	test.ExpectApproximate(t, opts.MotionScale.Get().(float64), 1.0, 0.0001)
}

func TestOptionsGranularity(t *testing.T) {
	spec := specification.SpecVGA
	opts, err := simulation.NewOptions(spec)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, opts.Granularity.Set(0))
	test.ExpectEquality(t, opts.RefreshLimit.Get().(int), 1)
	test.ExpectEquality(t, opts.Preset().Label, spec.Granularities()[0].Label)

	test.ExpectFailure(t, opts.Granularity.Set(-1))
	test.ExpectFailure(t, opts.Granularity.Set(len(spec.Granularities())))
	test.ExpectEquality(t, opts.Granularity.Get().(int), 0)

	test.ExpectFailure(t, opts.RefreshLimit.Set(0))
}
