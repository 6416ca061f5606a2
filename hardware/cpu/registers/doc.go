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

// Package registers implements the registers of the 2A03 (the 6502 variant
// found in the NES). The Register type is used for the accumulator, the two
// index registers and the stack pointer. The program counter and the status
// register have their own types.
//
// All register mutation is total: values wrap around their 8 or 16 bit
// boundary and no operation can fail. Flag producing operations (Add, ASL,
// etc.) return the flag states for the CPU to apply to the status register.
package registers
