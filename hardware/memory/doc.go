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

// Package memory implements the NES address space as seen from the CPU. The
// NESMemory type is the monolithic representation: it maps an address to its
// primary mirror (see the memorymap package) and routes the access to the
// console RAM, the chip register area or the cartridge.
//
// The PPU and APU register areas are latches only; the chips behind them are
// not emulated.
package memory
