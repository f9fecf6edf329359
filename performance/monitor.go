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

package performance

import (
	"fmt"
	"time"

	"github.com/jetsetilly/vgasim/logger"
	"github.com/jetsetilly/vgasim/television/specification"
)

// Report is the result of a measurement.
type Report struct {
	FPS        float64
	AverageFPS float64
	Ticks      uint64
	Hz         float64
	Accuracy   float64
}

func (r Report) String() string {
	return fmt.Sprintf("current FPS: %5.2f - average FPS: %5.2f - ticks=%d - %.0fHz (%.2f%% of target)",
		r.FPS, r.AverageFPS, r.Ticks, r.Hz, r.Accuracy)
}

// Monitor measures the frame rate and clock rate of the simulation.
type Monitor struct {
	spec specification.Spec

	// measurements are made no more often than the period
	period time.Duration

	start      time.Time
	prevTime   time.Time
	prevFrames int
	prevTicks  uint64

	// the most recent report
	Last Report
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(spec specification.Spec, now time.Time) *Monitor {
	return &Monitor{
		spec:     spec,
		period:   time.Second,
		start:    now,
		prevTime: now,
	}
}

// Check whether a report is due. If it is then the report is logged and
// returned along with the value true.
func (m *Monitor) Check(now time.Time, frames int, ticks uint64) (Report, bool) {
	delta := now.Sub(m.prevTime)
	if delta < m.period {
		return m.Last, false
	}

	secs := delta.Seconds()
	r := Report{Ticks: ticks}
	r.FPS, _ = CalcFPS(m.spec, frames-m.prevFrames, secs)
	r.AverageFPS, _ = CalcFPS(m.spec, frames, now.Sub(m.start).Seconds())
	r.Hz, r.Accuracy = CalcHz(m.spec, ticks-m.prevTicks, secs)

	m.prevTime = now
	m.prevFrames = frames
	m.prevTicks = ticks
	m.Last = r

	logger.Log(logger.Allow, "performance", r)

	return r, true
}
