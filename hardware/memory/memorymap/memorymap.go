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

// Package memorymap divides the NES address space into areas and maps every
// address to its primary mirror. The 2KB of console RAM appears four times in
// the bottom 8KB of the address space and the eight PPU registers repeat
// every eight bytes up to 0x3fff; all memory access outside of this package
// works with the primary address only.
package memorymap

// Area represents the different areas of the address space.
type Area int

// List of address areas.
const (
	Undefined Area = iota
	RAM
	PPU
	IO
	Cartridge
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "IO"
	case Cartridge:
		return "Cartridge"
	}
	return "undefined"
}

// The origin and memtop of each area, primary mirror only.
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x07ff)
	OriginPPU  = uint16(0x2000)
	MemtopPPU  = uint16(0x2007)
	OriginIO   = uint16(0x4000)
	MemtopIO   = uint16(0x401f)
	OriginCart = uint16(0x4020)
	MemtopCart = uint16(0xffff)
)

// MapAddress translates an address to its primary mirror and identifies the
// area the address is in.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= 0x1fff:
		return address & MemtopRAM, RAM
	case address <= 0x3fff:
		return OriginPPU | (address & 0x0007), PPU
	case address <= MemtopIO:
		return address, IO
	}
	return address, Cartridge
}
