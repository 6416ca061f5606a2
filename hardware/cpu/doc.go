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

// Package cpu emulates the 2A03 microprocessor found in the NES. The 2A03 is
// a 6502 with the decimal mode of ADC and SBC disconnected; decimal addition
// is emulated regardless because the flag itself still exists and test
// programs exercise it.
//
// Emulation works at the granularity of whole instructions. A single call to
// ExecuteInstruction() runs the instruction at the current PC to completion
// and leaves a full account of what happened, including the cycle count with
// any page fault or branch penalties applied, in the LastResult field. Video
// ordinated loops (see the hardware package) use the cycle count to decide
// when a scanline's worth of work has been done.
//
// Interrupts are serviced at instruction boundaries only. The CPU holds at
// most one pending request; RequestInterrupt() overwrites any request not
// yet serviced. An NMI is always taken, an IRQ only when the interrupt
// disable flag is clear.
package cpu
