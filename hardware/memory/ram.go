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

package memory

import (
	"fmt"
	"strings"

	"github.com/HydroRifle/nes-emulator/hardware/memory/memorymap"
)

// RAM represents the 2KB of console RAM found in the NES. Addresses are
// expected to have been mapped to the primary mirror already.
type RAM struct {
	memory []uint8
}

func newRAM() *RAM {
	return &RAM{
		memory: make([]uint8, memorymap.MemtopRAM-memorymap.OriginRAM+1),
	}
}

// String returns a hex dump of the zero page. Dumping all 2KB is rarely
// useful interactively; the debugger has a command for arbitrary ranges.
func (ram RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%X- | ", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Peek is the implementation of the debugger bus. For RAM it is the same as
// Read.
func (ram RAM) Peek(address uint16) (uint8, error) {
	return ram.memory[address], nil
}

// Poke is the implementation of the debugger bus.
func (ram *RAM) Poke(address uint16, value uint8) error {
	ram.memory[address] = value
	return nil
}

// Read is an implementation of cpubus.Memory.
func (ram RAM) Read(address uint16) (uint8, error) {
	return ram.memory[address], nil
}

// Write is an implementation of cpubus.Memory.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.memory[address] = data
	return nil
}
