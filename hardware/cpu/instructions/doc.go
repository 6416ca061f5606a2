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

// Package instructions defines the 6502 instruction set as understood by the
// 2A03. The key type is Definition, one per opcode. GetDefinitions() returns
// a 256 entry table indexed by opcode; entries not in the documented
// instruction set are no-op placeholders with the Undocumented field set.
//
// The emulation loop in the cpu package uses the table for decoding; the
// disassembly package uses it for symbolic output.
package instructions
