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

package easyterm_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/vgasim/curated"
	"github.com/jetsetilly/vgasim/easyterm"
	"github.com/jetsetilly/vgasim/test"
)

func TestKeyNames(t *testing.T) {
	k := easyterm.KeyNames([]byte("q 1x"))
	test.ExpectEquality(t, strings.Join(k, ","), "Q,Space,1,X")

	k = easyterm.KeyNames([]byte{easyterm.KeyEsc, '[', 'A', easyterm.KeyEsc, '[', 'D'})
	test.ExpectEquality(t, strings.Join(k, ","), "Up,Left")

	k = easyterm.KeyNames([]byte{easyterm.KeyEsc, '[', '2', '~', easyterm.KeyEsc, '[', 'F'})
	test.ExpectEquality(t, strings.Join(k, ","), "Insert,End")

	k = easyterm.KeyNames([]byte{easyterm.KeyEsc})
	test.ExpectEquality(t, strings.Join(k, ","), "Escape")

	k = easyterm.KeyNames([]byte("+-[]"))
	test.ExpectEquality(t, strings.Join(k, ","), "Keypad +,Keypad -,[,]")
}

func TestInitialiseErrors(t *testing.T) {
	var term easyterm.Terminal

	err := term.Initialise(nil, os.Stdout)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, easyterm.MissingFile))
	test.ExpectEquality(t, err.Error(), "easyterm: terminal requires an input file")

	err = term.Initialise(os.Stdin, nil)
	test.ExpectSuccess(t, curated.Is(err, easyterm.MissingFile))

	// the null device is not a terminal
	null, err := os.Open(os.DevNull)
	test.DemandSuccess(t, err)
	defer null.Close()
	err = term.Initialise(null, os.Stdout)
	test.ExpectSuccess(t, curated.Is(err, "easyterm: %v"))
}
