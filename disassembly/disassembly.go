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

// Package disassembly turns execution results and raw memory back into 6502
// assembly language. It is used by the debugger for its disasm command and
// by the CPU trace facility.
package disassembly

import (
	"fmt"
	"io"

	"github.com/HydroRifle/nes-emulator/hardware/cpu/execution"
	"github.com/HydroRifle/nes-emulator/hardware/cpu/instructions"
)

// PeekMemory is the interface to memory required for static disassembly.
// Peek rather than Read so that disassembling has no side effects.
type PeekMemory interface {
	Peek(address uint16) (uint8, error)
}

// formatOperand produces the operand in conventional 6502 notation. for
// relative addressing the branch target is shown rather than the raw offset.
func formatOperand(defn *instructions.Definition, address uint16, data uint16) string {
	switch defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", data)
	case instructions.Relative:
		target := address + uint16(defn.Bytes) + uint16(int16(int8(data)))
		return fmt.Sprintf("$%04x", target)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", data)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", data)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", data)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", data)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", data)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", data)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", data)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", data)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", data)
	}
	return "?"
}

// FormatResult returns a one line disassembly of an execution result.
func FormatResult(res execution.Result) string {
	if res.Defn == nil {
		return fmt.Sprintf("$%04x  (interrupt)", res.Address)
	}

	s := fmt.Sprintf("$%04x  %s", res.Address, res.Defn.Operator)

	operand := formatOperand(res.Defn, res.Address, res.InstructionData)
	if operand != "" {
		s = fmt.Sprintf("%s %s", s, operand)
	}

	if res.Defn.Undocumented {
		s = fmt.Sprintf("%s (illegal)", s)
	}

	return s
}

// Tracer returns a function suitable for cpu.SetTracer() that writes every
// executed instruction to w, one per line.
func Tracer(w io.Writer) func(execution.Result) {
	return func(res execution.Result) {
		fmt.Fprintln(w, FormatResult(res))
	}
}

// Disassemble reads numInstructions instructions from memory starting at
// address and returns the formatted lines.
func Disassemble(mem PeekMemory, address uint16, numInstructions int) ([]string, error) {
	table := instructions.GetDefinitions()
	lines := make([]string, 0, numInstructions)

	for i := 0; i < numInstructions; i++ {
		opcode, err := mem.Peek(address)
		if err != nil {
			return lines, err
		}
		defn := &table[opcode]

		var data uint16
		switch defn.Bytes {
		case 2:
			lo, err := mem.Peek(address + 1)
			if err != nil {
				return lines, err
			}
			data = uint16(lo)
		case 3:
			lo, err := mem.Peek(address + 1)
			if err != nil {
				return lines, err
			}
			hi, err := mem.Peek(address + 2)
			if err != nil {
				return lines, err
			}
			data = uint16(hi)<<8 | uint16(lo)
		}

		res := execution.Result{
			Address:         address,
			Defn:            defn,
			InstructionData: data,
		}
		lines = append(lines, FormatResult(res))

		address += uint16(defn.Bytes)
	}

	return lines, nil
}
