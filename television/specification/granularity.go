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

package specification

// Granularity is the number of ticks in a refresh batch. If SyncLine or
// SyncFrame is set then the first batch after the granularity is selected is
// cut short at the start of a line or frame, so that subsequent batches are
// aligned.
type Granularity struct {
	Label     string
	Ticks     int
	SyncLine  bool
	SyncFrame bool
}

// Granularities returns the list of refresh granularity presets for the
// specification.
func (spec Spec) Granularities() []Granularity {
	line := spec.HorizTotal()
	frame := spec.FrameClocks()
	return []Granularity{
		{Label: "every pixel", Ticks: 1},
		{Label: "every 8 pixels", Ticks: 8},
		{Label: "every 100 pixels", Ticks: 100},
		{Label: "every line", Ticks: line, SyncLine: true},
		{Label: "every 10 lines", Ticks: line * 10, SyncLine: true},
		{Label: "every 80 lines", Ticks: line * 80, SyncLine: true},
		{Label: "every frame", Ticks: frame, SyncLine: true, SyncFrame: true},
		{Label: "every 3 frames", Ticks: frame * 3, SyncLine: true, SyncFrame: true},
	}
}

// DefaultGranularity is the index of the preset used at startup.
const DefaultGranularity = 6
