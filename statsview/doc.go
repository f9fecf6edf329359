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

// Package statsview runs a local HTTP server showing runtime statistics of
// the simulation process (heap, goroutines, GC activity) as live charts. The
// charts are provided by "github.com/go-echarts/statsview".
//
// The server is started with the -statsview flag in RUN mode. By default the
// charts are at:
//
//	http://localhost:12600/debug/statsview
//
// and the standard Go pprof pages at:
//
//	http://localhost:12600/debug/pprof/
package statsview
