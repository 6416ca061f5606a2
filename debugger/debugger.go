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

package debugger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/HydroRifle/nes-emulator/cartridgeloader"
	"github.com/HydroRifle/nes-emulator/curated"
	"github.com/HydroRifle/nes-emulator/debugger/terminal"
	"github.com/HydroRifle/nes-emulator/disassembly"
	"github.com/HydroRifle/nes-emulator/hardware"
	"github.com/HydroRifle/nes-emulator/hardware/cpu"
	"github.com/HydroRifle/nes-emulator/hardware/cpu/execution"
	"github.com/HydroRifle/nes-emulator/hardware/cpu/instructions"
	"github.com/HydroRifle/nes-emulator/version"
)

const prompt = "[nes] $ "

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	nes  *hardware.NES
	term terminal.Terminal

	// whether to print every executed instruction as it completes
	tracing bool

	// the debugger is to continue with the debugging loop
	running bool
}

// NewDebugger creates and initialises everything required by the debugger.
func NewDebugger(term terminal.Terminal) (*Debugger, error) {
	if term == nil {
		return nil, curated.Errorf("debugger: %v", "terminal is not defined")
	}

	nes, _, err := hardware.NewNTSC()
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return &Debugger{
		nes:  nes,
		term: term,
	}, nil
}

// Start the main debugger sequence. Blocks until the user quits or input is
// exhausted.
func (dbg *Debugger) Start(cartload cartridgeloader.Loader) error {
	err := dbg.nes.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	err = dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.TermPrintLine(terminal.StyleOutput, "%s", version.Title())

	dbg.running = true
	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	for dbg.running {
		input, err := dbg.term.TermRead(prompt)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		err = dbg.parseCommand(input)
		if err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// parseCommand tokenises the input and dispatches to the command
// implementations. An empty input is a no-op.
func (dbg *Debugger) parseCommand(input string) error {
	toks := strings.Fields(input)
	if len(toks) == 0 {
		return nil
	}

	command := strings.ToUpper(toks[0])
	args := toks[1:]

	switch command {
	case "HELP":
		dbg.printHelp()

	case "STEP":
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf("debugger: STEP: invalid count: %s", args[0])
			}
		}
		for i := 0; i < n; i++ {
			if err := dbg.nes.Step(); err != nil {
				return err
			}
			dbg.printLastResult()
		}
		dbg.printRegisters()

	case "FRAME":
		if err := dbg.nes.RunFrame(); err != nil {
			return err
		}
		dbg.printRegisters()

	case "REGISTERS":
		dbg.printRegisters()

	case "MEM":
		if len(args) == 0 {
			return curated.Errorf("debugger: MEM: address required")
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		length := 16
		if len(args) > 1 {
			length, err = strconv.Atoi(args[1])
			if err != nil || length < 1 {
				return curated.Errorf("debugger: MEM: invalid length: %s", args[1])
			}
		}
		dbg.printMemory(address, length)

	case "DISASM":
		address := dbg.nes.CPU.PC.Address()
		numInstructions := 10
		var err error
		if len(args) > 0 {
			address, err = parseAddress(args[0])
			if err != nil {
				return err
			}
		}
		if len(args) > 1 {
			numInstructions, err = strconv.Atoi(args[1])
			if err != nil || numInstructions < 1 {
				return curated.Errorf("debugger: DISASM: invalid count: %s", args[1])
			}
		}
		lines, err := disassembly.Disassemble(dbg.nes.Mem, address, numInstructions)
		if err != nil {
			return err
		}
		for _, l := range lines {
			dbg.term.TermPrintLine(terminal.StyleInstruction, "%s", l)
		}

	case "TRACE":
		dbg.tracing = !dbg.tracing
		if dbg.tracing {
			dbg.nes.CPU.SetTracer(func(res execution.Result) {
				dbg.term.TermPrintLine(terminal.StyleInstruction, "%s", disassembly.FormatResult(res))
			})
			dbg.term.TermPrintLine(terminal.StyleOutput, "tracing on")
		} else {
			dbg.nes.CPU.SetTracer(nil)
			dbg.term.TermPrintLine(terminal.StyleOutput, "tracing off")
		}

	case "STATS":
		dbg.printStatistics()

	case "RAM":
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, "%s", dbg.nes.Mem.RAM.String())

	case "POKE":
		if len(args) < 2 {
			return curated.Errorf("debugger: POKE: address and value required")
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		value, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimPrefix(args[1], "$"), "0x"), 16, 8)
		if err != nil {
			return curated.Errorf("debugger: POKE: invalid value: %s", args[1])
		}
		if err := dbg.nes.Mem.Poke(address, uint8(value)); err != nil {
			return err
		}

	case "INTERRUPT":
		if len(args) == 0 {
			return curated.Errorf("debugger: INTERRUPT: NMI or IRQ required")
		}
		switch strings.ToUpper(args[0]) {
		case "NMI":
			dbg.nes.CPU.RequestInterrupt(cpu.InterruptNMI)
		case "IRQ":
			dbg.nes.CPU.RequestInterrupt(cpu.InterruptIRQ)
		default:
			return curated.Errorf("debugger: INTERRUPT: unrecognised source: %s", args[0])
		}

	case "RESET":
		if err := dbg.nes.Reset(); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, "machine reset")

	case "MEMVIZ":
		filename := "memviz.dot"
		if len(args) > 0 {
			filename = args[0]
		}
		f, err := os.Create(filename)
		if err != nil {
			return curated.Errorf("debugger: MEMVIZ: %v", err)
		}
		defer f.Close()
		memviz.Map(f, dbg.nes.CPU)
		dbg.term.TermPrintLine(terminal.StyleOutput, "memory graph written to %s", filename)

	case "QUIT":
		dbg.running = false

	default:
		return curated.Errorf("debugger: unrecognised command: %s", command)
	}

	return nil
}

func (dbg *Debugger) printHelp() {
	help := []string{
		"HELP                      this help",
		"STEP [n]                  execute the next instruction (or n instructions)",
		"FRAME                     run until the end of the current frame",
		"REGISTERS                 show CPU registers",
		"MEM <addr> [len]          show memory contents",
		"DISASM [addr] [n]         disassemble from addr (default PC)",
		"TRACE                     toggle instruction tracing",
		"STATS                     show execution statistics",
		"RAM                       show zero page contents",
		"POKE <addr> <val>         write to memory, bypassing the bus",
		"INTERRUPT <NMI|IRQ>       raise an interrupt",
		"RESET                     reset the machine",
		"MEMVIZ [file]             write a graphviz map of the CPU state",
		"QUIT                      leave the debugger",
	}
	for _, l := range help {
		dbg.term.TermPrintLine(terminal.StyleHelp, "%s", l)
	}
}

func (dbg *Debugger) printLastResult() {
	if dbg.tracing {
		// the tracer has already printed the result
		return
	}
	dbg.term.TermPrintLine(terminal.StyleInstruction, "%s", disassembly.FormatResult(dbg.nes.CPU.LastResult))
}

func (dbg *Debugger) printRegisters() {
	dbg.term.TermPrintLine(terminal.StyleMachineInfo, "%s", dbg.nes.CPU.String())
}

func (dbg *Debugger) printMemory(address uint16, length int) {
	s := strings.Builder{}
	for i := 0; i < length; i++ {
		if i%8 == 0 {
			if i > 0 {
				dbg.term.TermPrintLine(terminal.StyleMachineInfo, "%s", strings.TrimRight(s.String(), " "))
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("$%04x: ", address+uint16(i)))
		}
		v, err := dbg.nes.Mem.Peek(address + uint16(i))
		if err != nil {
			v = 0
		}
		s.WriteString(fmt.Sprintf("%02x ", v))
	}
	if s.Len() > 0 {
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, "%s", strings.TrimRight(s.String(), " "))
	}
}

func (dbg *Debugger) printStatistics() {
	dbg.term.TermPrintLine(terminal.StyleOutput, "instructions executed: %d", dbg.nes.CPU.InstructionCount)
	for i := range dbg.nes.CPU.OperatorCount {
		if dbg.nes.CPU.OperatorCount[i] > 0 {
			dbg.term.TermPrintLine(terminal.StyleOutput, "  %s: %d",
				instructions.Operator(i).String(), dbg.nes.CPU.OperatorCount[i])
		}
	}
	for i := range dbg.nes.CPU.ModeCount {
		if dbg.nes.CPU.ModeCount[i] > 0 {
			dbg.term.TermPrintLine(terminal.StyleOutput, "  %s: %d",
				instructions.AddressingMode(i).String(), dbg.nes.CPU.ModeCount[i])
		}
	}
}

// parseAddress converts a hexadecimal string, with or without a $ or 0x
// prefix, to a 16 bit address.
func parseAddress(s string) (uint16, error) {
	t := strings.TrimPrefix(strings.TrimPrefix(s, "$"), "0x")
	v, err := strconv.ParseUint(t, 16, 16)
	if err != nil {
		return 0, curated.Errorf("debugger: invalid address: %s", s)
	}
	return uint16(v), nil
}
