// This file is part of nes-emulator.
//
// nes-emulator is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nes-emulator is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nes-emulator.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	l := newLogger(10)

	s := &strings.Builder{}
	l.write(s)
	if s.String() != "" {
		t.Errorf("log unexpectedly has entries")
	}

	l.log("test", "this is a test")
	s.Reset()
	l.write(s)
	if s.String() != "test: this is a test\n" {
		t.Errorf("unexpected log output (%s)", s.String())
	}
}

func TestRepeatCollapse(t *testing.T) {
	l := newLogger(10)

	l.log("test", "same entry")
	l.log("test", "same entry")
	l.log("test", "same entry")

	s := &strings.Builder{}
	l.write(s)
	if s.String() != "test: same entry (repeat x3)\n" {
		t.Errorf("unexpected log output (%s)", s.String())
	}
}

func TestTail(t *testing.T) {
	l := newLogger(10)

	l.log("test", "A")
	l.log("test", "B")
	l.log("test", "C")

	s := &strings.Builder{}
	l.tail(s, 2)
	if s.String() != "test: B\ntest: C\n" {
		t.Errorf("unexpected tail output (%s)", s.String())
	}

	// tail longer than the number of entries is capped
	s.Reset()
	l.tail(s, 100)
	if s.String() != "test: A\ntest: B\ntest: C\n" {
		t.Errorf("unexpected tail output (%s)", s.String())
	}
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("test", "A")
	l.log("test", "B")
	l.log("test", "C")

	s := &strings.Builder{}
	l.write(s)
	if s.String() != "test: B\ntest: C\n" {
		t.Errorf("unexpected log output (%s)", s.String())
	}
}
