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

package cpu_test

import (
	"testing"

	"github.com/HydroRifle/nes-emulator/hardware/cpu"
	"github.com/HydroRifle/nes-emulator/hardware/cpu/execution"
	"github.com/HydroRifle/nes-emulator/hardware/cpu/instructions"
	"github.com/HydroRifle/nes-emulator/hardware/cpu/registers/assert"
	"github.com/HydroRifle/nes-emulator/test"
)

// mockMem is a flat 64k memory space with no mirroring or register areas
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

// putInstructions is a convenience function for loading bytes into memory,
// returning the address of the first byte after the program
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = mem.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

// prep creates a CPU/memory pair with strict checking enabled and the reset
// vector pointing at address zero
func prep(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()

	mem := newMockMem()
	mc, err := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, err)
	mc.Strict = true
	test.ExpectedSuccess(t, mc.Reset())

	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	test.ExpectedSuccess(t, mc.ExecuteInstruction())
}

func TestReset(t *testing.T) {
	mem := newMockMem()
	mc, err := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, err)

	mem.putInstructions(0xfffc, 0x00, 0x80)
	test.ExpectedSuccess(t, mc.Reset())

	assert.Assert(t, mc.PC, 0x8000)
	assert.Assert(t, mc.SP, 0xff)
	assert.Assert(t, mc.A, 0x00)
	assert.Assert(t, mc.X, 0x00)
	assert.Assert(t, mc.Y, 0x00)
	assert.Assert(t, mc.Status, "sv-bdizc")
}

func TestLoadAndTransfer(t *testing.T) {
	mc, mem := prep(t)

	mem.putInstructions(0x0000,
		0xa9, 0x05, // LDA #$05
		0xaa,       // TAX
		0xa8,       // TAY
		0xa9, 0x00, // LDA #$00
		0xa2, 0x80, // LDX #$80
	)

	step(t, mc)
	assert.Assert(t, mc.A, 0x05)
	assert.Assert(t, mc.Status, "sv-bdizc")
	test.Equate(t, mc.LastResult.Cycles, 2)

	step(t, mc)
	assert.Assert(t, mc.X, 0x05)

	step(t, mc)
	assert.Assert(t, mc.Y, 0x05)

	step(t, mc)
	assert.Assert(t, mc.Status, "sv-bdiZc")

	step(t, mc)
	assert.Assert(t, mc.Status, "Sv-bdizc")
}

func TestArithmetic(t *testing.T) {
	mc, mem := prep(t)

	mem.putInstructions(0x0000,
		0x18,       // CLC
		0xa9, 0x05, // LDA #$05
		0x69, 0x03, // ADC #$03
		0x38,       // SEC
		0xe9, 0x03, // SBC #$03
	)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x08)
	assert.Assert(t, mc.Status, "sv-bdizc")

	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x05)
	assert.Assert(t, mc.Status, "sv-bdizC")
}

func TestSignedOverflow(t *testing.T) {
	mc, mem := prep(t)

	// the result of 0x7f + 0x01 is negative in two's complement
	mem.putInstructions(0x0000,
		0x18,       // CLC
		0xa9, 0x7f, // LDA #$7f
		0x69, 0x01, // ADC #$01
	)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x80)
	assert.Assert(t, mc.Status, "SV-bdizc")
}

func TestCompare(t *testing.T) {
	mc, mem := prep(t)

	mem.putInstructions(0x0000,
		0xa9, 0x05, // LDA #$05
		0xc9, 0x03, // CMP #$03
		0xc9, 0x05, // CMP #$05
		0xc9, 0x06, // CMP #$06
	)

	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x05) // comparison does not modify the accumulator
	assert.Assert(t, mc.Status, "sv-bdizC")

	step(t, mc)
	assert.Assert(t, mc.Status, "sv-bdiZC")

	step(t, mc)
	assert.Assert(t, mc.Status, "Sv-bdizc")
}

func TestDecimalMode(t *testing.T) {
	mc, mem := prep(t)

	mem.putInstructions(0x0000,
		0xf8,       // SED
		0x18,       // CLC
		0xa9, 0x19, // LDA #$19
		0x69, 0x01, // ADC #$01
		0xa9, 0x99, // LDA #$99
		0x69, 0x01, // ADC #$01
	)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)

	// the units digit carries into the tens digit without setting the carry
	// flag
	assert.Assert(t, mc.A, 0x20)
	assert.Assert(t, mc.Status, "sv-bDizc")

	step(t, mc)
	step(t, mc)

	// carry out of the tens digit sets the carry flag. the zero flag is
	// computed before digit correction so it does not reflect the final
	// accumulator value
	assert.Assert(t, mc.A, 0x00)
	assert.Assert(t, mc.Status, "Sv-bDizC")
}

func TestDecimalModeStrict(t *testing.T) {
	mc, mem := prep(t)

	// an operand with a non-decimal nibble is an error in strict mode
	mem.putInstructions(0x0000,
		0xf8,       // SED
		0xa9, 0x0f, // LDA #$0f
		0x69, 0x01, // ADC #$01
	)
	step(t, mc)
	step(t, mc)
	test.ExpectedFailure(t, mc.ExecuteInstruction())

	// as is decimal mode subtraction
	mem.putInstructions(0x0005, 0xe9, 0x01) // SBC #$01
	mc.PC.Load(0x0005)
	test.ExpectedFailure(t, mc.ExecuteInstruction())
}

func TestPageFault(t *testing.T) {
	mc, mem := prep(t)

	_ = mem.Write(0x0200, 0x42)

	mem.putInstructions(0x0000,
		0xa2, 0x01, // LDX #$01
		0xbd, 0x80, 0x01, // LDA $0180,X
		0xbd, 0xff, 0x01, // LDA $01ff,X
		0x9d, 0xff, 0x01, // STA $01ff,X
	)

	step(t, mc)

	// indexing within the page costs nothing extra
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.LastResult.PageFault, false)

	// crossing into the next page costs one extra cycle
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mc.LastResult.PageFault, true)
	assert.Assert(t, mc.A, 0x42)

	// the store already budgets for the fixup cycle. no page fault occurs
	// even though the address crosses a page
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mc.LastResult.PageFault, false)
}

func TestPageFaultIndirectIndexed(t *testing.T) {
	mc, mem := prep(t)

	_ = mem.Write(0x80, 0xff)
	_ = mem.Write(0x81, 0x01)
	_ = mem.Write(0x0200, 0x42)

	mem.putInstructions(0x0100,
		0xa0, 0x01, // LDY #$01
		0xb1, 0x80, // LDA ($80),Y
	)
	mc.PC.Load(0x0100)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, mc.LastResult.PageFault, true)
	assert.Assert(t, mc.A, 0x42)
}

func TestBranchCycles(t *testing.T) {
	mc, mem := prep(t)

	mem.putInstructions(0x0000,
		0xa9, 0x00, // LDA #$00
		0xd0, 0x10, // BNE +$10 (not taken)
		0xa9, 0x01, // LDA #$01
		0xd0, 0x10, // BNE +$10 (taken, same page)
	)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 2)
	test.Equate(t, mc.LastResult.BranchSuccess, false)
	assert.Assert(t, mc.PC, 0x0004)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 3)
	test.Equate(t, mc.LastResult.BranchSuccess, true)
	assert.Assert(t, mc.PC, 0x0018)

	// a branch from one page into another costs two extra cycles. the page
	// comparison is against the address of the branch opcode itself
	mem.putInstructions(0x00f0, 0xd0, 0x20) // BNE +$20
	mc.PC.Load(0x00f0)
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 4)
	assert.Assert(t, mc.PC, 0x0112)

	// backwards branch
	mem.putInstructions(0x0112, 0xd0, 0xfc) // BNE -$04
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 3)
	assert.Assert(t, mc.PC, 0x0110)
}

func TestJmpIndirectBug(t *testing.T) {
	mc, mem := prep(t)

	// the high byte of the target is read from the start of the same page,
	// not from the next page
	mem.putInstructions(0x0000, 0x6c, 0xff, 0x02) // JMP ($02ff)
	_ = mem.Write(0x02ff, 0x34)
	_ = mem.Write(0x0200, 0x12)
	_ = mem.Write(0x0300, 0xff)

	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 5)
	assert.Assert(t, mc.PC, 0x1234)
}

func TestJsrRts(t *testing.T) {
	mc, mem := prep(t)

	mem.putInstructions(0x0000, 0x20, 0x00, 0x10) // JSR $1000
	mem.putInstructions(0x1000, 0xe8, 0x60)       // INX; RTS

	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 6)
	assert.Assert(t, mc.PC, 0x1000)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 6)
	assert.Assert(t, mc.PC, 0x0003)
	assert.Assert(t, mc.X, 0x01)
}

func TestBrkRti(t *testing.T) {
	mc, mem := prep(t)

	mem.putInstructions(0xfffe, 0x00, 0x10) // IRQ/BRK vector
	mem.putInstructions(0x1000, 0x40)       // RTI
	mem.putInstructions(0x0000, 0x00, 0xff) // BRK with signature byte

	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 7)
	assert.Assert(t, mc.PC, 0x1000)
	assert.Assert(t, mc.Status, "sv-bdIzc")

	// the return address pushed by BRK skips the signature byte. the break
	// flag is set in the popped copy of the flags
	step(t, mc)
	assert.Assert(t, mc.PC, 0x0002)
	assert.Assert(t, mc.Status, "sv-Bdizc")
}

func TestInterrupts(t *testing.T) {
	mc, mem := prep(t)

	mem.putInstructions(0xfffa, 0x00, 0x20) // NMI vector
	mem.putInstructions(0xfffe, 0x00, 0x30) // IRQ vector
	mem.putInstructions(0x0000, 0xea, 0xea) // NOP; NOP
	mem.putInstructions(0x2000, 0x40)       // RTI
	mem.putInstructions(0x3000, 0x40)       // RTI

	// an IRQ is not serviced while the interrupt disable flag is set; it
	// stays pending
	mc.Status.InterruptDisable = true
	mc.RequestInterrupt(cpu.InterruptIRQ)
	step(t, mc)
	assert.Assert(t, mc.PC, 0x0001)
	test.Equate(t, mc.PendingInterrupt() == cpu.InterruptIRQ, true)

	// a later NMI request overwrites the pending IRQ and is serviced
	// regardless of the disable flag
	mc.RequestInterrupt(cpu.InterruptNMI)
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 7)
	assert.Assert(t, mc.PC, 0x2000)
	test.Equate(t, mc.PendingInterrupt() == cpu.InterruptNone, true)

	// return to the interrupted program
	step(t, mc)
	assert.Assert(t, mc.PC, 0x0001)

	// with the disable flag clear the IRQ is serviced at the next boundary
	mc.Status.InterruptDisable = false
	mc.RequestInterrupt(cpu.InterruptIRQ)
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 7)
	assert.Assert(t, mc.PC, 0x3000)
	assert.Assert(t, mc.Status, "sv-bdIzc")
}

func TestInterruptTraced(t *testing.T) {
	mc, mem := prep(t)

	mem.putInstructions(0xfffa, 0x00, 0x20) // NMI vector
	mem.putInstructions(0x0000, 0xea)       // NOP
	mem.putInstructions(0x2000, 0x40)       // RTI

	// a serviced interrupt is a step in its own right and is reported to the
	// tracer like one, with a nil definition
	var traced []execution.Result
	mc.SetTracer(func(res execution.Result) {
		traced = append(traced, res)
	})

	step(t, mc)
	mc.RequestInterrupt(cpu.InterruptNMI)
	step(t, mc)

	test.Equate(t, len(traced), 2)
	test.Equate(t, traced[1].Defn == nil, true)
	test.Equate(t, traced[1].Cycles, 7)
	test.Equate(t, traced[1].Address, uint16(0x0001))
}

func TestIllegalOpcode(t *testing.T) {
	mc, mem := prep(t)

	// 0x02 is not in the documented instruction set. execution continues
	// as though it were a one byte NOP
	mem.putInstructions(0x0000, 0x02, 0xa9, 0x05)

	step(t, mc)
	test.Equate(t, mc.LastResult.Defn.Undocumented, true)
	test.Equate(t, mc.LastResult.Cycles, 2)
	assert.Assert(t, mc.PC, 0x0001)

	step(t, mc)
	assert.Assert(t, mc.A, 0x05)
}

func TestZeroPageWrap(t *testing.T) {
	mc, mem := prep(t)

	// zero page indexing wraps within the zero page. 0xff + 2 is 0x01, not
	// 0x101
	mem.putInstructions(0x0100,
		0xa2, 0x02, // LDX #$02
		0xb5, 0xff, // LDA $ff,X
	)
	mc.PC.Load(0x0100)
	_ = mem.Write(0x0001, 0x42)

	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.A, 0x42)
}

func TestIndexedIndirectWrap(t *testing.T) {
	mc, mem := prep(t)

	// the pointer itself wraps within the zero page. the pointer at 0xff
	// takes its high byte from 0x00
	mem.putInstructions(0x0100,
		0xa2, 0x01, // LDX #$01
		0xa1, 0xfe, // LDA ($fe,X)
	)
	mc.PC.Load(0x0100)
	_ = mem.Write(0x00ff, 0x34)
	_ = mem.Write(0x0000, 0x12)
	_ = mem.Write(0x1234, 0x42)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 6)
	assert.Assert(t, mc.A, 0x42)
}

func TestStack(t *testing.T) {
	mc, mem := prep(t)

	mem.putInstructions(0x0000,
		0xa9, 0x05, // LDA #$05
		0x48,       // PHA
		0xa9, 0x00, // LDA #$00
		0x68, // PLA
	)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 3)
	assert.Assert(t, mc.SP, 0xfe)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 4)
	assert.Assert(t, mc.A, 0x05)
	assert.Assert(t, mc.SP, 0xff)

	// the stack lives inside the CPU, not on the bus
	v, _ := mem.Read(0x01ff)
	test.Equate(t, v, uint8(0))
}

func TestStackWrap(t *testing.T) {
	mc, mem := prep(t)

	mem.putInstructions(0x0000,
		0xa2, 0x00, // LDX #$00
		0x9a,       // TXS
		0xa9, 0x42, // LDA #$42
		0x48,       // PHA
		0xa9, 0x55, // LDA #$55
		0x48, // PHA
		0x68, // PLA
		0x68, // PLA
	)

	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.SP, 0x00)

	// the stack pointer wraps around the bottom of the stack page
	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.SP, 0xff)

	step(t, mc)
	step(t, mc)
	assert.Assert(t, mc.SP, 0xfe)

	// pops return the pushed values in reverse order and the stack pointer
	// wraps back again
	step(t, mc)
	assert.Assert(t, mc.A, 0x55)
	assert.Assert(t, mc.SP, 0xff)

	step(t, mc)
	assert.Assert(t, mc.A, 0x42)
	assert.Assert(t, mc.SP, 0x00)
}

func TestReadModifyWrite(t *testing.T) {
	mc, mem := prep(t)

	_ = mem.Write(0x80, 0x7f)
	mem.putInstructions(0x0000,
		0xe6, 0x80, // INC $80
		0x06, 0x80, // ASL $80
	)

	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 5)
	assert.Assert(t, mc.Status, "Sv-bdizc")
	v, _ := mem.Read(0x80)
	test.Equate(t, v, uint8(0x80))

	step(t, mc)
	assert.Assert(t, mc.Status, "sv-bdiZC")
	v, _ = mem.Read(0x80)
	test.Equate(t, v, uint8(0x00))
}

func TestStatistics(t *testing.T) {
	mc, mem := prep(t)

	traced := 0
	mc.SetTracer(func(_ execution.Result) {
		traced++
	})

	mem.putInstructions(0x0000,
		0xa9, 0x05, // LDA #$05
		0xa5, 0x80, // LDA $80
		0xe8, // INX
	)

	step(t, mc)
	step(t, mc)
	step(t, mc)

	test.Equate(t, traced, 3)
	test.Equate(t, int(mc.InstructionCount), 3)
	test.Equate(t, int(mc.OperatorCount[instructions.Lda]), 2)
	test.Equate(t, int(mc.OperatorCount[instructions.Inx]), 1)
	test.Equate(t, int(mc.ModeCount[instructions.Immediate]), 1)
	test.Equate(t, int(mc.ModeCount[instructions.ZeroPage]), 1)
}
