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

package cpu

import (
	"fmt"

	"github.com/HydroRifle/nes-emulator/curated"
	"github.com/HydroRifle/nes-emulator/hardware/cpu/execution"
	"github.com/HydroRifle/nes-emulator/hardware/cpu/instructions"
	"github.com/HydroRifle/nes-emulator/hardware/cpu/registers"
	"github.com/HydroRifle/nes-emulator/hardware/memory/cpubus"
	"github.com/HydroRifle/nes-emulator/logger"
)

// InterruptRequest identifies the source of a pending interrupt.
type InterruptRequest int

// List of interrupt sources. InterruptNone means no interrupt is pending.
const (
	InterruptNone InterruptRequest = iota
	InterruptIRQ
	InterruptNMI
)

// CPU implements the 2A03 found in the NES. Emulation works at the level of
// whole instructions; an instruction completes in one call to
// ExecuteInstruction() and reports the number of colour clocks it would have
// consumed through LastResult.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem cpubus.Memory

	// the stack lives in its own page of memory inside the CPU rather than
	// on the bus. the stack pointer is an offset into this buffer and wraps
	// at the page boundary.
	stack [256]uint8

	// the table of instruction definitions, indexed by opcode
	instructions []instructions.Definition

	// single pending interrupt. a new request overwrites an unserviced one.
	pending InterruptRequest

	// LastResult records the outcome of the most recent call to
	// ExecuteInstruction()
	LastResult execution.Result

	// Strict causes consistency checks to run after every instruction. any
	// violation is returned as an error rather than being ignored.
	Strict bool

	// execution statistics
	InstructionCount uint64
	OperatorCount    [instructions.NumOperators]uint64
	ModeCount        [instructions.NumAddressingModes]uint64

	tracer func(execution.Result)
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Note that the CPU will be in an undefined state and will need to be reset
// before use.
func NewCPU(mem cpubus.Memory) (*CPU, error) {
	if mem == nil {
		return nil, curated.Errorf("cpu: memory bus is not defined")
	}

	mc := &CPU{mem: mem}

	mc.PC = registers.NewProgramCounter(0)
	mc.A = registers.NewRegister(0, "A")
	mc.X = registers.NewRegister(0, "X")
	mc.Y = registers.NewRegister(0, "Y")
	mc.SP = registers.NewRegister(0xff, "SP")
	mc.Status = registers.NewStatusRegister()

	mc.instructions = instructions.GetDefinitions()

	return mc, nil
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%s %s %s %s %s SR=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// SetTracer registers a function to be called with a copy of the execution
// result after every completed instruction. A nil value removes the tracer.
func (mc *CPU) SetTracer(f func(execution.Result)) {
	mc.tracer = f
}

// Reset CPU to its power-on state and load the PC from the reset vector.
func (mc *CPU) Reset() error {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.pending = InterruptNone
	mc.LastResult.Reset()
	return mc.LoadPCIndirect(cpubus.Reset)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	addr, err := mc.read16(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(addr)
	return nil
}

// RequestInterrupt queues an interrupt to be serviced at the next instruction
// boundary. The CPU holds at most one pending request; a later request
// overwrites an earlier one that has not yet been serviced.
func (mc *CPU) RequestInterrupt(req InterruptRequest) {
	mc.pending = req
}

// PendingInterrupt returns the interrupt waiting to be serviced, if any.
func (mc *CPU) PendingInterrupt() InterruptRequest {
	return mc.pending
}

func (mc *CPU) read8(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		return 0, curated.Errorf("cpu: %v", err)
	}
	return v, nil
}

func (mc *CPU) read16(address uint16) (uint16, error) {
	lo, err := mc.read8(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// pointers stored in the zero page wrap within the zero page. the high byte
// of a pointer at 0xff is read from 0x00.
func (mc *CPU) read16ZeroPage(ptr uint8) (uint16, error) {
	lo, err := mc.read8(uint16(ptr))
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8(uint16(ptr + 1))
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (mc *CPU) write8(address uint16, data uint8) error {
	err := mc.mem.Write(address, data)
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}
	return nil
}

// fetch next byte at the PC, advancing the PC and the decode byte count.
func (mc *CPU) fetch() (uint8, error) {
	v, err := mc.read8(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v, nil
}

func (mc *CPU) fetch16() (uint16, error) {
	lo, err := mc.fetch()
	if err != nil {
		return 0, err
	}
	hi, err := mc.fetch()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (mc *CPU) push(v uint8) {
	mc.stack[mc.SP.Value()] = v
	mc.SP.Add(0xff, false)
}

func (mc *CPU) pop() uint8 {
	mc.SP.Add(1, false)
	return mc.stack[mc.SP.Value()]
}

// branch adjusts the PC by the (signed) offset if flag is true. A taken
// branch costs one extra cycle, two if the target is on a different page to
// the branch instruction itself.
func (mc *CPU) branch(flag bool, offset uint8) {
	if !flag {
		return
	}

	mc.LastResult.BranchSuccess = true
	mc.LastResult.Cycles++

	target := mc.PC.Address() + uint16(int16(int8(offset)))
	if (mc.LastResult.Address^target)&0xff00 != 0 {
		mc.LastResult.Cycles++
		mc.LastResult.PageFault = true
	}

	mc.PC.Load(target)
}

// serviceInterrupt runs the interrupt sequence for the pending request.
// Returns false if the request cannot be serviced yet (an IRQ while the
// interrupt disable flag is set stays pending).
func (mc *CPU) serviceInterrupt() (bool, error) {
	var vector uint16

	switch mc.pending {
	case InterruptNMI:
		vector = cpubus.NMI
	case InterruptIRQ:
		if mc.Status.InterruptDisable {
			return false, nil
		}
		vector = cpubus.IRQ
	default:
		return false, nil
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.pending = InterruptNone

	// the interrupt sequence pushes the PC and the flags. the break flag is
	// not disturbed; only the BRK instruction sets it in the pushed copy.
	mc.push(uint8(mc.PC.Address() >> 8))
	mc.push(uint8(mc.PC.Address()))
	mc.push(mc.Status.Value())
	mc.Status.InterruptDisable = true

	err := mc.LoadPCIndirect(vector)
	if err != nil {
		return false, err
	}

	mc.LastResult.Cycles = 7
	mc.LastResult.Final = true

	return true, nil
}

// ExecuteInstruction services any pending interrupt and then runs the
// instruction at the current PC through to completion. The result of the
// step, including the number of cycles consumed, is in LastResult.
func (mc *CPU) ExecuteInstruction() error {
	if mc.pending != InterruptNone {
		serviced, err := mc.serviceInterrupt()
		if err != nil {
			return err
		}
		if serviced {
			// the serviced interrupt is a step in its own right and is
			// reported to any tracer like one
			if mc.tracer != nil {
				mc.tracer(mc.LastResult)
			}
			return nil
		}
	}

	opaddr := mc.PC.Address()

	mc.LastResult.Reset()
	mc.LastResult.Address = opaddr

	opcode, err := mc.read8(opaddr)
	if err != nil {
		return err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount = 1

	defn := &mc.instructions[opcode]
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	if defn.Undocumented {
		logger.Logf("cpu", "illegal opcode %#02x at %#04x treated as NOP", opcode, opaddr)
	}

	// address resolution. value is filled in directly for immediate and
	// relative addressing; for every other data carrying mode the effective
	// address is computed here and the value read afterwards.
	var address uint16
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied:
		// implied addressing requires no operand

	case instructions.Immediate:
		value, err = mc.fetch()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Relative:
		value, err = mc.fetch()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Absolute:
		address, err = mc.fetch16()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = address

	case instructions.ZeroPage:
		value, err = mc.fetch()
		if err != nil {
			return err
		}
		address = uint16(value)
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Indirect:
		var ptr uint16
		ptr, err = mc.fetch16()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = ptr

		// the high byte of the target is read from within the same page as
		// the low byte. the 6502 does not carry into the high byte of the
		// pointer. programs rely on this so it must be preserved.
		var lo, hi uint8
		lo, err = mc.read8(ptr)
		if err != nil {
			return err
		}
		hi, err = mc.read8((ptr & 0xff00) | uint16(uint8(ptr)+1))
		if err != nil {
			return err
		}
		address = uint16(hi)<<8 | uint16(lo)

	case instructions.IndexedIndirect:
		var zp uint8
		zp, err = mc.fetch()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)

		// the index is added before the pointer is dereferenced, wrapping
		// within the zero page
		address, err = mc.read16ZeroPage(zp + mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.IndirectIndexed:
		var zp uint8
		zp, err = mc.fetch()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)

		var base uint16
		base, err = mc.read16ZeroPage(zp)
		if err != nil {
			return err
		}
		address = base + mc.Y.Address()

		if defn.PageSensitive() && (base^address)&0xff00 != 0 {
			mc.LastResult.PageFault = true
			mc.LastResult.Cycles++
		}

	case instructions.AbsoluteIndexedX:
		var base uint16
		base, err = mc.fetch16()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = base
		address = base + mc.X.Address()

		if defn.PageSensitive() && (base^address)&0xff00 != 0 {
			mc.LastResult.PageFault = true
			mc.LastResult.Cycles++
		}

	case instructions.AbsoluteIndexedY:
		var base uint16
		base, err = mc.fetch16()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = base
		address = base + mc.Y.Address()

		if defn.PageSensitive() && (base^address)&0xff00 != 0 {
			mc.LastResult.PageFault = true
			mc.LastResult.Cycles++
		}

	case instructions.ZeroPageIndexedX:
		var zp uint8
		zp, err = mc.fetch()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		var zp uint8
		zp, err = mc.fetch()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp + mc.Y.Value())

	default:
		return curated.Errorf("cpu: unknown addressing mode for opcode %#02x", opcode)
	}

	// read the operand for those instructions that need it
	switch defn.Effect {
	case instructions.Read, instructions.RMW:
		switch defn.AddressingMode {
		case instructions.Implied, instructions.Immediate, instructions.Relative:
			// value already in place (or not required)
		default:
			value, err = mc.read8(address)
			if err != nil {
				return err
			}
		}
	}

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.SetZeroNegative(mc.X.Value())

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.SetZeroNegative(mc.Y.Value())

	case instructions.Sta:
		err = mc.write8(address, mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Stx:
		err = mc.write8(address, mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.Sty:
		err = mc.write8(address, mc.Y.Value())
		if err != nil {
			return err
		}

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZeroNegative(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZeroNegative(mc.Y.Value())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZeroNegative(mc.X.Value())

	case instructions.Txs:
		// does not affect status register
		mc.SP.Load(mc.X.Value())

	case instructions.Adc:
		if mc.Status.DecimalMode {
			acc := mc.A.Value()
			result, ok := mc.A.AddDecimal(value, mc.Status.Carry)
			mc.Status.Carry = result.Carry
			mc.Status.Zero = result.Zero
			mc.Status.Overflow = result.Overflow
			mc.Status.Sign = result.Sign
			if !ok {
				if mc.Strict {
					return curated.Errorf("cpu: decimal mode addition with non-decimal operand (%#02x + %#02x)", acc, value)
				}
				logger.Logf("cpu", "decimal mode addition with non-decimal operand (%#02x + %#02x)", acc, value)
			}
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.Status.SetZeroNegative(mc.A.Value())
		}

	case instructions.Sbc:
		if mc.Status.DecimalMode {
			// decimal mode subtraction is not implemented. programs that
			// depend on it will misbehave.
			if mc.Strict {
				return curated.Errorf("cpu: decimal mode subtraction is not supported (opcode %#02x at %#04x)", opcode, opaddr)
			}
			logger.Logf("cpu", "decimal mode subtraction at %#04x treated as binary", opaddr)
		}
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Cmp:
		cmp := mc.A
		mc.Status.Carry, _ = cmp.Subtract(value, true)
		mc.Status.SetZeroNegative(cmp.Value())

	case instructions.Cpx:
		cmp := mc.X
		mc.Status.Carry, _ = cmp.Subtract(value, true)
		mc.Status.SetZeroNegative(cmp.Value())

	case instructions.Cpy:
		cmp := mc.Y
		mc.Status.Carry, _ = cmp.Subtract(value, true)
		mc.Status.SetZeroNegative(cmp.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Bit:
		r := registers.NewRegister(value, "bit")
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()
		mc.Status.Zero = mc.A.Value()&value == 0

	case instructions.Asl:
		if defn.AddressingMode == instructions.Implied {
			mc.Status.Carry = mc.A.ASL()
			mc.Status.SetZeroNegative(mc.A.Value())
		} else {
			r := registers.NewRegister(value, "asl")
			mc.Status.Carry = r.ASL()
			mc.Status.SetZeroNegative(r.Value())
			value = r.Value()
		}

	case instructions.Lsr:
		if defn.AddressingMode == instructions.Implied {
			mc.Status.Carry = mc.A.LSR()
			mc.Status.SetZeroNegative(mc.A.Value())
		} else {
			r := registers.NewRegister(value, "lsr")
			mc.Status.Carry = r.LSR()
			mc.Status.SetZeroNegative(r.Value())
			value = r.Value()
		}

	case instructions.Rol:
		if defn.AddressingMode == instructions.Implied {
			mc.Status.Carry = mc.A.ROL(mc.Status.Carry)
			mc.Status.SetZeroNegative(mc.A.Value())
		} else {
			r := registers.NewRegister(value, "rol")
			mc.Status.Carry = r.ROL(mc.Status.Carry)
			mc.Status.SetZeroNegative(r.Value())
			value = r.Value()
		}

	case instructions.Ror:
		if defn.AddressingMode == instructions.Implied {
			mc.Status.Carry = mc.A.ROR(mc.Status.Carry)
			mc.Status.SetZeroNegative(mc.A.Value())
		} else {
			r := registers.NewRegister(value, "ror")
			mc.Status.Carry = r.ROR(mc.Status.Carry)
			mc.Status.SetZeroNegative(r.Value())
			value = r.Value()
		}

	case instructions.Inc:
		value++
		mc.Status.SetZeroNegative(value)

	case instructions.Dec:
		value--
		mc.Status.SetZeroNegative(value)

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.SetZeroNegative(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.SetZeroNegative(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.SetZeroNegative(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.SetZeroNegative(mc.Y.Value())

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, value)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, value)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, value)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, value)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, value)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, value)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, value)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, value)

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Jsr:
		// the return address pushed is one less than the address of the
		// next instruction. RTS compensates.
		ret := mc.PC.Address() - 1
		mc.push(uint8(ret >> 8))
		mc.push(uint8(ret))
		mc.PC.Load(address)

	case instructions.Rts:
		lo := mc.pop()
		hi := mc.pop()
		mc.PC.Load((uint16(hi)<<8 | uint16(lo)) + 1)

	case instructions.Brk:
		// the byte after the opcode is a signature byte. it is skipped and
		// the address after it pushed as the return address.
		mc.PC.Add(1)
		mc.push(uint8(mc.PC.Address() >> 8))
		mc.push(uint8(mc.PC.Address()))

		// the break flag is set in the pushed copy of the flags only
		brkStatus := mc.Status
		brkStatus.Break = true
		mc.push(brkStatus.Value())

		mc.Status.InterruptDisable = true
		err = mc.LoadPCIndirect(cpubus.IRQ)
		if err != nil {
			return err
		}

	case instructions.Rti:
		mc.Status.FromValue(mc.pop())
		lo := mc.pop()
		hi := mc.pop()
		// unlike RTS, the address popped is used unadjusted
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Php:
		mc.push(mc.Status.Value())

	case instructions.Pla:
		mc.A.Load(mc.pop())
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Plp:
		mc.Status.FromValue(mc.pop())

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	default:
		return curated.Errorf("cpu: unimplemented operator %s (opcode %#02x)", defn.Operator, opcode)
	}

	// modified value is written back for read-modify-write instructions
	if defn.Effect == instructions.RMW {
		err = mc.write8(address, value)
		if err != nil {
			return err
		}
	}

	mc.LastResult.Final = true

	mc.InstructionCount++
	mc.OperatorCount[defn.Operator]++
	mc.ModeCount[defn.AddressingMode]++

	if mc.Strict {
		if err := mc.LastResult.IsValid(); err != nil {
			return err
		}
	}

	if mc.tracer != nil {
		mc.tracer(mc.LastResult)
	}

	return nil
}
