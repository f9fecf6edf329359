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
	"errors"
	"testing"

	"github.com/jetsetilly/vgasim/prefs"
	"github.com/jetsetilly/vgasim/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Toggle())
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectFailure(t, v.Set(1.0))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectSuccess(t, v.Set(" 20 "))
	test.ExpectEquality(t, v.String(), "20")
	test.ExpectFailure(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get().(int), 20)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.Get().(float64), 0.0)
	test.ExpectSuccess(t, v.Set("1.5"))
	test.ExpectEquality(t, v.Get().(float64), 1.5)
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.String(), "2.000")
}

func TestHooks(t *testing.T) {
	var v prefs.Float
	var post float64

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(float64) <= 0 {
			return errors.New("must be positive")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(float64)
		return nil
	})

	test.ExpectSuccess(t, v.Set(1.25))
	test.ExpectEquality(t, post, 1.25)

	// pre hook prevents the update and the post hook is not called
	test.ExpectFailure(t, v.Set(-1.0))
	test.ExpectEquality(t, v.Get().(float64), 1.25)
	test.ExpectEquality(t, post, 1.25)
}
