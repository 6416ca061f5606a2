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

// Package assert helps tests check the state of CPU registers. The most
// useful form asserts the status register against an eight character string,
// one character per flag in the order they appear in the hardware register.
// An upper-case letter means the flag must be set, lower-case clear:
//
//	assert.Assert(t, mc.Status, "sv-BdIzc")
//
// The third character is the unused bit and is never checked.
package assert

import (
	"reflect"
	"testing"

	"github.com/HydroRifle/nes-emulator/hardware/cpu/registers"
)

// Assert is used to test a register against an expected value.
func Assert(t *testing.T, r, x interface{}) {
	t.Helper()

	switch r := r.(type) {
	default:
		t.Fatalf("assert failed (unknown register type [%s])", reflect.TypeOf(r))

	case registers.Register:
		switch x := x.(type) {
		default:
			t.Fatalf("assert failed (unknown expected type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("assert %s failed (%#02x - wanted %#02x)", r.Label(), r.Value(), x)
			}
		}

	case registers.ProgramCounter:
		switch x := x.(type) {
		default:
			t.Fatalf("assert failed (unknown expected type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Address()) != x {
				t.Errorf("assert PC failed (%#04x - wanted %#04x)", r.Address(), x)
			}
		}

	case registers.StatusRegister:
		switch x := x.(type) {
		default:
			t.Fatalf("assert failed (unknown expected type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("assert SR failed (%#02x - wanted %#02x)", r.Value(), x)
			}

		case string:
			if len(x) != 8 {
				t.Fatalf("assert SR failed (status flags must be a string of 8 chars)")
			}
			if x[0] != 's' && !r.Sign || x[0] != 'S' && r.Sign {
				t.Errorf("assert SR failed (unexpected sign flag) [%s]", r)
			}
			if x[1] != 'v' && !r.Overflow || x[1] != 'V' && r.Overflow {
				t.Errorf("assert SR failed (unexpected overflow flag) [%s]", r)
			}
			if x[3] != 'b' && !r.Break || x[3] != 'B' && r.Break {
				t.Errorf("assert SR failed (unexpected break flag) [%s]", r)
			}
			if x[4] != 'd' && !r.DecimalMode || x[4] != 'D' && r.DecimalMode {
				t.Errorf("assert SR failed (unexpected decimal mode flag) [%s]", r)
			}
			if x[5] != 'i' && !r.InterruptDisable || x[5] != 'I' && r.InterruptDisable {
				t.Errorf("assert SR failed (unexpected interrupt disable flag) [%s]", r)
			}
			if x[6] != 'z' && !r.Zero || x[6] != 'Z' && r.Zero {
				t.Errorf("assert SR failed (unexpected zero flag) [%s]", r)
			}
			if x[7] != 'c' && !r.Carry || x[7] != 'C' && r.Carry {
				t.Errorf("assert SR failed (unexpected carry flag) [%s]", r)
			}
		}
	}
}
