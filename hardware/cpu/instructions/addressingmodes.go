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

// AddressingMode describes the method by which the effective address for the
// instruction is computed from the bytes following the opcode.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind. used by JMP only

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y

	// NumAddressingModes is the total number of addressing modes. Useful for
	// sizing statistics arrays.
	NumAddressingModes
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "implied"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	case ZeroPage:
		return "zero page"
	case Indirect:
		return "indirect"
	case IndexedIndirect:
		return "indexed indirect (x)"
	case IndirectIndexed:
		return "indirect indexed (y)"
	case AbsoluteIndexedX:
		return "absolute indexed (x)"
	case AbsoluteIndexedY:
		return "absolute indexed (y)"
	case ZeroPageIndexedX:
		return "zero page indexed (x)"
	case ZeroPageIndexedY:
		return "zero page indexed (y)"
	}
	return "unknown addressing mode"
}
