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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/vgasim/prefs"
	"github.com/jetsetilly/vgasim/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining string will be sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestApplyCommandLine(t *testing.T) {
	var scale prefs.Float
	var guides prefs.Bool

	prefs.PushCommandLineStack("motion::1.5; guides::true; unused::1")
	test.ExpectSuccess(t, prefs.ApplyCommandLine("motion", &scale))
	test.ExpectSuccess(t, prefs.ApplyCommandLine("guides", &guides))
	test.ExpectSuccess(t, prefs.ApplyCommandLine("missing", &guides))
	test.ExpectEquality(t, scale.Get().(float64), 1.5)
	test.ExpectEquality(t, guides.Get().(bool), true)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")

	prefs.PushCommandLineStack("motion::fast")
	test.ExpectFailure(t, prefs.ApplyCommandLine("motion", &scale))
	prefs.PopCommandLineStack()
}
