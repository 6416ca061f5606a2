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

// the documented instruction set. cycle counts are the base counts; page
// crossing and branch penalties are applied by the CPU during addressing
// resolution and execution.
var documented = []Definition{
	{OpCode: 0x00, Operator: Brk, AddressingMode: Implied, Bytes: 1, Cycles: 7, Effect: Interrupt},
	{OpCode: 0x01, Operator: Ora, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x05, Operator: Ora, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0x06, Operator: Asl, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5, Effect: RMW},
	{OpCode: 0x08, Operator: Php, AddressingMode: Implied, Bytes: 1, Cycles: 3, Effect: Read},
	{OpCode: 0x09, Operator: Ora, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0x0a, Operator: Asl, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x0d, Operator: Ora, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x0e, Operator: Asl, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: RMW},
	{OpCode: 0x10, Operator: Bpl, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0x11, Operator: Ora, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0x15, Operator: Ora, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0x16, Operator: Asl, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6, Effect: RMW},
	{OpCode: 0x18, Operator: Clc, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x19, Operator: Ora, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x1d, Operator: Ora, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x1e, Operator: Asl, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7, Effect: RMW},
	{OpCode: 0x20, Operator: Jsr, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: Subroutine},
	{OpCode: 0x21, Operator: And, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x24, Operator: Bit, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0x25, Operator: And, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0x26, Operator: Rol, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5, Effect: RMW},
	{OpCode: 0x28, Operator: Plp, AddressingMode: Implied, Bytes: 1, Cycles: 4, Effect: Read},
	{OpCode: 0x29, Operator: And, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0x2a, Operator: Rol, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x2c, Operator: Bit, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x2d, Operator: And, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x2e, Operator: Rol, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: RMW},
	{OpCode: 0x30, Operator: Bmi, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0x31, Operator: And, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0x35, Operator: And, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0x36, Operator: Rol, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6, Effect: RMW},
	{OpCode: 0x38, Operator: Sec, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x39, Operator: And, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x3d, Operator: And, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x3e, Operator: Rol, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7, Effect: RMW},
	{OpCode: 0x40, Operator: Rti, AddressingMode: Implied, Bytes: 1, Cycles: 6, Effect: Interrupt},
	{OpCode: 0x41, Operator: Eor, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x45, Operator: Eor, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0x46, Operator: Lsr, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5, Effect: RMW},
	{OpCode: 0x48, Operator: Pha, AddressingMode: Implied, Bytes: 1, Cycles: 3, Effect: Read},
	{OpCode: 0x49, Operator: Eor, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0x4a, Operator: Lsr, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x4c, Operator: Jmp, AddressingMode: Absolute, Bytes: 3, Cycles: 3, Effect: Flow},
	{OpCode: 0x4d, Operator: Eor, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x4e, Operator: Lsr, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: RMW},
	{OpCode: 0x50, Operator: Bvc, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0x51, Operator: Eor, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0x55, Operator: Eor, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0x56, Operator: Lsr, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6, Effect: RMW},
	{OpCode: 0x58, Operator: Cli, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x59, Operator: Eor, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x5d, Operator: Eor, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x5e, Operator: Lsr, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7, Effect: RMW},
	{OpCode: 0x60, Operator: Rts, AddressingMode: Implied, Bytes: 1, Cycles: 6, Effect: Subroutine},
	{OpCode: 0x61, Operator: Adc, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0x65, Operator: Adc, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0x66, Operator: Ror, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5, Effect: RMW},
	{OpCode: 0x68, Operator: Pla, AddressingMode: Implied, Bytes: 1, Cycles: 4, Effect: Read},
	{OpCode: 0x69, Operator: Adc, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0x6a, Operator: Ror, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x6c, Operator: Jmp, AddressingMode: Indirect, Bytes: 3, Cycles: 5, Effect: Flow},
	{OpCode: 0x6d, Operator: Adc, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x6e, Operator: Ror, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: RMW},
	{OpCode: 0x70, Operator: Bvs, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0x71, Operator: Adc, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0x75, Operator: Adc, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0x76, Operator: Ror, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6, Effect: RMW},
	{OpCode: 0x78, Operator: Sei, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x79, Operator: Adc, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x7d, Operator: Adc, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0x7e, Operator: Ror, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7, Effect: RMW},
	{OpCode: 0x81, Operator: Sta, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Write},
	{OpCode: 0x84, Operator: Sty, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Write},
	{OpCode: 0x85, Operator: Sta, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Write},
	{OpCode: 0x86, Operator: Stx, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Write},
	{OpCode: 0x88, Operator: Dey, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x8a, Operator: Txa, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x8c, Operator: Sty, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Write},
	{OpCode: 0x8d, Operator: Sta, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Write},
	{OpCode: 0x8e, Operator: Stx, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Write},
	{OpCode: 0x90, Operator: Bcc, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0x91, Operator: Sta, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 6, Effect: Write},
	{OpCode: 0x94, Operator: Sty, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Write},
	{OpCode: 0x95, Operator: Sta, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Write},
	{OpCode: 0x96, Operator: Stx, AddressingMode: ZeroPageIndexedY, Bytes: 2, Cycles: 4, Effect: Write},
	{OpCode: 0x98, Operator: Tya, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x99, Operator: Sta, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 5, Effect: Write},
	{OpCode: 0x9a, Operator: Txs, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0x9d, Operator: Sta, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 5, Effect: Write},
	{OpCode: 0xa0, Operator: Ldy, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xa1, Operator: Lda, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0xa2, Operator: Ldx, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xa4, Operator: Ldy, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xa5, Operator: Lda, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xa6, Operator: Ldx, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xa8, Operator: Tay, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xa9, Operator: Lda, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xaa, Operator: Tax, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xac, Operator: Ldy, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xad, Operator: Lda, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xae, Operator: Ldx, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xb0, Operator: Bcs, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0xb1, Operator: Lda, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0xb4, Operator: Ldy, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0xb5, Operator: Lda, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0xb6, Operator: Ldx, AddressingMode: ZeroPageIndexedY, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0xb8, Operator: Clv, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xb9, Operator: Lda, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xba, Operator: Tsx, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xbc, Operator: Ldy, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xbd, Operator: Lda, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xbe, Operator: Ldx, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xc0, Operator: Cpy, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xc1, Operator: Cmp, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0xc4, Operator: Cpy, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xc5, Operator: Cmp, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xc6, Operator: Dec, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5, Effect: RMW},
	{OpCode: 0xc8, Operator: Iny, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xc9, Operator: Cmp, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xca, Operator: Dex, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xcc, Operator: Cpy, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xcd, Operator: Cmp, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xce, Operator: Dec, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: RMW},
	{OpCode: 0xd0, Operator: Bne, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0xd1, Operator: Cmp, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0xd5, Operator: Cmp, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0xd6, Operator: Dec, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6, Effect: RMW},
	{OpCode: 0xd8, Operator: Cld, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xd9, Operator: Cmp, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xdd, Operator: Cmp, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xde, Operator: Dec, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7, Effect: RMW},
	{OpCode: 0xe0, Operator: Cpx, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xe1, Operator: Sbc, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6, Effect: Read},
	{OpCode: 0xe4, Operator: Cpx, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xe5, Operator: Sbc, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3, Effect: Read},
	{OpCode: 0xe6, Operator: Inc, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5, Effect: RMW},
	{OpCode: 0xe8, Operator: Inx, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xe9, Operator: Sbc, AddressingMode: Immediate, Bytes: 2, Cycles: 2, Effect: Read},
	{OpCode: 0xea, Operator: Nop, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xec, Operator: Cpx, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xed, Operator: Sbc, AddressingMode: Absolute, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xee, Operator: Inc, AddressingMode: Absolute, Bytes: 3, Cycles: 6, Effect: RMW},
	{OpCode: 0xf0, Operator: Beq, AddressingMode: Relative, Bytes: 2, Cycles: 2, Effect: Flow},
	{OpCode: 0xf1, Operator: Sbc, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5, Effect: Read},
	{OpCode: 0xf5, Operator: Sbc, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4, Effect: Read},
	{OpCode: 0xf6, Operator: Inc, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6, Effect: RMW},
	{OpCode: 0xf8, Operator: Sed, AddressingMode: Implied, Bytes: 1, Cycles: 2, Effect: Read},
	{OpCode: 0xf9, Operator: Sbc, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xfd, Operator: Sbc, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4, Effect: Read},
	{OpCode: 0xfe, Operator: Inc, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7, Effect: RMW},
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. The table is total: opcodes outside the documented instruction set
// return a no-op placeholder with a defined size and cycle count, so decode
// never fails on an illegal opcode a program may execute.
func GetDefinitions() []Definition {
	table := make([]Definition, 256)

	for i := range table {
		table[i] = Definition{
			OpCode:         uint8(i),
			Operator:       Nop,
			AddressingMode: Implied,
			Bytes:          1,
			Cycles:         2,
			Effect:         Read,
			Undocumented:   true,
		}
	}

	for _, defn := range documented {
		table[defn.OpCode] = defn
	}

	return table
}
