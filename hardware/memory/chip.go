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
	"github.com/HydroRifle/nes-emulator/hardware/memory/memorymap"
)

// ChipRegisters services the PPU and APU register areas of the address
// space. The chips themselves are not emulated; the registers are simple
// latches so that programs which store and read back values behave sensibly.
// Reads and writes are counted so the debugger can show which registers a
// program touches.
type ChipRegisters struct {
	ppu [8]uint8
	io  [32]uint8

	ReadCount  uint64
	WriteCount uint64
}

func newChipRegisters() *ChipRegisters {
	return &ChipRegisters{}
}

// Peek is the implementation of the debugger bus. Unlike Read it does not
// update the access counters.
func (ch ChipRegisters) Peek(address uint16) (uint8, error) {
	if address <= memorymap.MemtopPPU {
		return ch.ppu[address-memorymap.OriginPPU], nil
	}
	return ch.io[address-memorymap.OriginIO], nil
}

// Poke is the implementation of the debugger bus.
func (ch *ChipRegisters) Poke(address uint16, value uint8) error {
	if address <= memorymap.MemtopPPU {
		ch.ppu[address-memorymap.OriginPPU] = value
		return nil
	}
	ch.io[address-memorymap.OriginIO] = value
	return nil
}

// Read is an implementation of cpubus.Memory.
func (ch *ChipRegisters) Read(address uint16) (uint8, error) {
	ch.ReadCount++
	return ch.Peek(address)
}

// Write is an implementation of cpubus.Memory.
func (ch *ChipRegisters) Write(address uint16, data uint8) error {
	ch.WriteCount++
	return ch.Poke(address, data)
}
