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

package instructions

import "fmt"

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following categories have a variable effect on the program
	// counter, depending on the instruction's precise operand.
	Flow
	Subroutine
	Interrupt
)

// Definition defines a single opcode: the instruction it decodes to, the
// addressing mode, the encoded size and the base cycle count. The table of
// definitions is built once at startup and never mutated.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Bytes          int
	Cycles         int
	Effect         EffectCategory

	// opcodes not part of the documented instruction set decode to a no-op
	// placeholder definition with this field set
	Undocumented bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	s := fmt.Sprintf("%02x %s +%dbytes (%d cycles) [%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode)
	if defn.Undocumented {
		s = fmt.Sprintf("%s !!", s)
	}
	return s
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// PageSensitive returns true if the instruction takes an additional cycle
// when the effective address crosses a page boundary. Only the cheap form of
// an indexed instruction pays the penalty; write and read-modify-write forms
// already budget for the fixup cycle.
func (defn Definition) PageSensitive() bool {
	switch defn.AddressingMode {
	case AbsoluteIndexedX, AbsoluteIndexedY:
		return defn.Cycles == 4
	case IndirectIndexed:
		return defn.Cycles == 5
	case Relative:
		return true
	}
	return false
}
