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

// Package debugger implements a terminal based debugging interface to the
// emulation. The debugger attaches a cartridge, resets the machine and then
// reads commands from the terminal until told to quit.
//
// Commands allow stepping by instruction or by frame, inspection of
// registers and memory, disassembly, instruction tracing and the raising of
// interrupts. The MEMVIZ command writes a graphviz representation of the
// live CPU structure for study.
//
// The terminal is abstracted by the terminal.Terminal interface. The
// colorterm package provides an ANSI terminal with input history while the
// PlainTerminal type in the terminal package supports dumb ttys and
// scripted input.
package debugger
