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

package statsview_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/vgasim/statsview"
	"github.com/jetsetilly/vgasim/test"
)

func TestURL(t *testing.T) {
	test.ExpectEquality(t, statsview.URL(statsview.DefaultAddress), "http://localhost:12600/debug/statsview")
}

func TestLaunch(t *testing.T) {
	var out strings.Builder
	srv := statsview.Launch(&out, "localhost:0")
	srv.Stop()
	test.ExpectEquality(t, out.String(), "simulation stats available at http://localhost:0/debug/statsview\n")
}
