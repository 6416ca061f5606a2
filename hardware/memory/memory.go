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
	"github.com/HydroRifle/nes-emulator/curated"
	"github.com/HydroRifle/nes-emulator/hardware/memory/cartridge"
	"github.com/HydroRifle/nes-emulator/hardware/memory/memorymap"
)

// NESMemory is the monolithic representation of the memory in the NES. It
// implements cpubus.Memory, mapping every address to its primary mirror and
// routing the access to the correct memory area.
type NESMemory struct {
	RAM  *RAM
	Chip *ChipRegisters
	Cart *cartridge.Cartridge

	// the most recent address and data to pass through the bus. useful for
	// debugging
	LastAccessAddress uint16
	LastAccessData    uint8
	LastAccessWrite   bool
}

// NewNESMemory is the preferred method of initialisation for the NESMemory
// type.
func NewNESMemory() *NESMemory {
	return &NESMemory{
		RAM:  newRAM(),
		Chip: newChipRegisters(),
		Cart: cartridge.NewCartridge(),
	}
}

// Read is an implementation of cpubus.Memory.
func (mem *NESMemory) Read(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	var data uint8
	var err error

	switch area {
	case memorymap.RAM:
		data, err = mem.RAM.Read(ma)
	case memorymap.PPU, memorymap.IO:
		data, err = mem.Chip.Read(ma)
	case memorymap.Cartridge:
		data, err = mem.Cart.Read(ma)
	default:
		return 0, curated.Errorf("memory: address %#04x not mapped", address)
	}

	mem.LastAccessAddress = ma
	mem.LastAccessData = data
	mem.LastAccessWrite = false

	return data, err
}

// Write is an implementation of cpubus.Memory.
func (mem *NESMemory) Write(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	mem.LastAccessAddress = ma
	mem.LastAccessData = data
	mem.LastAccessWrite = true

	switch area {
	case memorymap.RAM:
		return mem.RAM.Write(ma, data)
	case memorymap.PPU, memorymap.IO:
		return mem.Chip.Write(ma, data)
	case memorymap.Cartridge:
		return mem.Cart.Write(ma, data)
	}

	return curated.Errorf("memory: address %#04x not mapped", address)
}

// Peek reads a value from memory without touching the access records or
// counters. Implementation of the debugger bus.
func (mem *NESMemory) Peek(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM.Peek(ma)
	case memorymap.PPU, memorymap.IO:
		return mem.Chip.Peek(ma)
	case memorymap.Cartridge:
		return mem.Cart.Peek(ma)
	}

	return 0, curated.Errorf("memory: address %#04x not mapped", address)
}

// Poke writes a value to memory without touching the access records or
// counters. Implementation of the debugger bus.
func (mem *NESMemory) Poke(address uint16, value uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM.Poke(ma, value)
	case memorymap.PPU, memorymap.IO:
		return mem.Chip.Poke(ma, value)
	case memorymap.Cartridge:
		return mem.Cart.Poke(ma, value)
	}

	return curated.Errorf("memory: address %#04x not mapped", address)
}
