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

// Package performance measures how quickly the emulation runs on the host
// machine. The check runs a cartridge for a fixed wall clock duration with
// no frame rate cap and reports the achieved frame rate as a percentage of
// the console's true refresh rate. Profiling output for pprof can be
// requested, and when the project is built with the statsview constraint a
// live statistics server is launched for the run.
package performance
