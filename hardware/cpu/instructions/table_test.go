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

package instructions_test

import (
	"testing"

	"github.com/HydroRifle/nes-emulator/hardware/cpu/instructions"
	"github.com/HydroRifle/nes-emulator/test"
)

func TestTableIsTotal(t *testing.T) {
	table := instructions.GetDefinitions()
	test.Equate(t, len(table), 256)

	documented := 0
	for i, defn := range table {
		test.Equate(t, defn.OpCode, uint8(i))
		if !defn.Undocumented {
			documented++
		}

		// every entry must decode to something executable
		if defn.Bytes < 1 || defn.Bytes > 3 {
			t.Errorf("opcode %02x has impossible instruction size %d", i, defn.Bytes)
		}
		if defn.Cycles < 2 || defn.Cycles > 7 {
			t.Errorf("opcode %02x has impossible cycle count %d", i, defn.Cycles)
		}
	}

	// the documented 6502 instruction set
	test.Equate(t, documented, 151)
}

func TestTableSpotChecks(t *testing.T) {
	table := instructions.GetDefinitions()

	defn := table[0x69]
	test.Equate(t, defn.Operator.String(), "ADC")
	test.Equate(t, defn.AddressingMode == instructions.Immediate, true)
	test.Equate(t, defn.Bytes, 2)
	test.Equate(t, defn.Cycles, 2)

	defn = table[0x9d]
	test.Equate(t, defn.Operator.String(), "STA")
	test.Equate(t, defn.AddressingMode == instructions.AbsoluteIndexedX, true)
	test.Equate(t, defn.Effect == instructions.Write, true)
	test.Equate(t, defn.Cycles, 5)

	defn = table[0x6c]
	test.Equate(t, defn.Operator.String(), "JMP")
	test.Equate(t, defn.AddressingMode == instructions.Indirect, true)
	test.Equate(t, defn.Cycles, 5)

	defn = table[0x00]
	test.Equate(t, defn.Operator.String(), "BRK")
	test.Equate(t, defn.Effect == instructions.Interrupt, true)
	test.Equate(t, defn.Cycles, 7)

	// branches are page sensitive by definition
	test.Equate(t, table[0xd0].IsBranch(), true)
	test.Equate(t, table[0x4c].IsBranch(), false)

	// an illegal opcode decodes to a placeholder
	defn = table[0x02]
	test.Equate(t, defn.Undocumented, true)
	test.Equate(t, defn.Operator.String(), "NOP")
	test.Equate(t, defn.Bytes, 1)
}
