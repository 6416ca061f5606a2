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

package registers_test

import (
	"testing"

	"github.com/HydroRifle/nes-emulator/hardware/cpu/registers"
	"github.com/HydroRifle/nes-emulator/hardware/cpu/registers/assert"
	"github.com/HydroRifle/nes-emulator/test"
)

func TestAddition(t *testing.T) {
	r := registers.NewRegister(0, "test")

	carry, overflow := r.Add(1, false)
	assert.Assert(t, r, 1)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, false)

	// wrap around the 8 bit boundary sets carry
	r.Load(0xff)
	carry, overflow = r.Add(1, false)
	assert.Assert(t, r, 0)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)

	// carry in
	r.Load(0x10)
	carry, _ = r.Add(0x0f, true)
	assert.Assert(t, r, 0x20)
	test.Equate(t, carry, false)

	// signed overflow: 0x7f + 0x01 flips the sign bit
	r.Load(0x7f)
	carry, overflow = r.Add(1, false)
	assert.Assert(t, r, 0x80)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)
}

func TestSubtraction(t *testing.T) {
	r := registers.NewRegister(11, "test")

	// carry set means no borrow
	carry, overflow := r.Subtract(8, true)
	assert.Assert(t, r, 3)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)

	// subtracting more than the register holds: borrow occurs, carry clears
	r.Load(3)
	carry, _ = r.Subtract(8, true)
	assert.Assert(t, r, 0xfb)
	test.Equate(t, carry, false)
}

func TestLogicalOperators(t *testing.T) {
	r := registers.NewRegister(0, "test")

	r.ORA(0xff)
	assert.Assert(t, r, 0xff)
	r.EOR(0xf0)
	assert.Assert(t, r, 0x0f)
	r.AND(0x01)
	assert.Assert(t, r, 0x01)
}

func TestShifts(t *testing.T) {
	r := registers.NewRegister(0x81, "test")

	carry := r.ASL()
	assert.Assert(t, r, 0x02)
	test.Equate(t, carry, true)

	carry = r.LSR()
	assert.Assert(t, r, 0x01)
	test.Equate(t, carry, false)

	carry = r.LSR()
	assert.Assert(t, r, 0x00)
	test.Equate(t, carry, true)

	// the vacated high bit of LSR is always zero
	r.Load(0x80)
	_ = r.LSR()
	test.Equate(t, r.IsNegative(), false)
}

func TestRotation(t *testing.T) {
	r := registers.NewRegister(0xcd, "test")

	// rotation through carry is a nine bit rotation: nine rotations in the
	// same direction return the register and carry to their original states
	carry := false
	for i := 0; i < 9; i++ {
		carry = r.ROL(carry)
	}
	assert.Assert(t, r, 0xcd)
	test.Equate(t, carry, false)

	// ROR feeds the previous carry into bit 7
	r.Load(0x01)
	carry = r.ROR(false)
	assert.Assert(t, r, 0x00)
	test.Equate(t, carry, true)

	carry = r.ROR(carry)
	assert.Assert(t, r, 0x80)
	test.Equate(t, carry, false)
}

func TestFlagQueries(t *testing.T) {
	r := registers.NewRegister(0x00, "test")
	test.Equate(t, r.IsZero(), true)
	test.Equate(t, r.IsNegative(), false)

	r.Load(0x80)
	test.Equate(t, r.IsZero(), false)
	test.Equate(t, r.IsNegative(), true)

	r.Load(0x40)
	test.Equate(t, r.IsBitV(), true)
}
