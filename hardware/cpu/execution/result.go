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

package execution

import (
	"github.com/HydroRifle/nes-emulator/hardware/cpu/instructions"
)

// Result records the execution details of a single instruction.
type Result struct {
	// the address the opcode was fetched from
	Address uint16

	// a copy of the entry from the instruction table. never nil once the
	// opcode has been fetched.
	Defn *instructions.Definition

	// the operand bytes, assembled into a single value. for two-operand
	// instructions this is the little-endian 16 bit value; for branch
	// instructions it is the raw (unsigned) offset byte.
	InstructionData uint16

	// number of bytes fetched during decode. equal to Defn.Bytes when the
	// instruction has completed.
	ByteCount int

	// total cycles consumed, including any page fault or branch penalty
	Cycles int

	// whether the effective address crossed a page boundary and incurred
	// the additional cycle
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether execution reached the end of the instruction. a false value
	// means the other fields are part filled.
	Final bool
}

// Reset prepares the result for reuse by the next instruction.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.ByteCount = 0
	r.Cycles = 0
	r.PageFault = false
	r.BranchSuccess = false
	r.Final = false
}
