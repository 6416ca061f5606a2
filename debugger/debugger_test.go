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

package debugger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/HydroRifle/nes-emulator/cartridgeloader"
	"github.com/HydroRifle/nes-emulator/debugger"
	"github.com/HydroRifle/nes-emulator/debugger/terminal"
	"github.com/HydroRifle/nes-emulator/test"
)

func buildROM(program ...uint8) []byte {
	data := make([]byte, 16+16384)
	copy(data, []byte{'N', 'E', 'S', 0x1a})
	data[4] = 1
	copy(data[16:], program)
	data[16+0x3ffc] = 0x00
	data[16+0x3ffd] = 0x80
	return data
}

// runScript runs the debugger over a scripted terminal and returns
// everything written to the output.
func runScript(t *testing.T, rom []byte, script string) string {
	t.Helper()

	output := &bytes.Buffer{}
	term := terminal.NewScriptTerminal(strings.NewReader(script), output)

	dbg, err := debugger.NewDebugger(term)
	test.ExpectedSuccess(t, err)

	cartload := cartridgeloader.Loader{Filename: "script.nes", Data: rom}
	test.ExpectedSuccess(t, dbg.Start(cartload))

	return output.String()
}

func TestStepAndRegisters(t *testing.T) {
	rom := buildROM(
		0xa9, 0x05, // LDA #$05
		0x85, 0x10, // STA $10
		0x4c, 0x04, 0x80, // JMP $8004
	)

	output := runScript(t, rom, "STEP\nQUIT\n")

	if !strings.Contains(output, "$8000  LDA #$05") {
		t.Errorf("missing disassembly of stepped instruction: %s", output)
	}
	if !strings.Contains(output, "A=0x5") {
		t.Errorf("missing register output: %s", output)
	}
}

func TestMemCommand(t *testing.T) {
	rom := buildROM(
		0xa9, 0x3c, // LDA #$3c
		0x85, 0x00, // STA $00
		0x4c, 0x04, 0x80, // JMP $8004
	)

	output := runScript(t, rom, "STEP 2\nMEM $0000 8\nQUIT\n")

	if !strings.Contains(output, "$0000: 3c 00 00 00 00 00 00 00") {
		t.Errorf("missing memory dump: %s", output)
	}
}

func TestDisasmCommand(t *testing.T) {
	rom := buildROM(
		0xa9, 0x05, // LDA #$05
		0x85, 0x10, // STA $10
	)

	output := runScript(t, rom, "DISASM $8000 2\nQUIT\n")

	if !strings.Contains(output, "$8000  LDA #$05") {
		t.Errorf("missing first instruction: %s", output)
	}
	if !strings.Contains(output, "$8002  STA $10") {
		t.Errorf("missing second instruction: %s", output)
	}
}

func TestPokeAndInterrupt(t *testing.T) {
	rom := buildROM(0x4c, 0x00, 0x80) // JMP $8000
	rom[16+0x0100] = 0x40             // RTI
	rom[16+0x3ffa] = 0x00
	rom[16+0x3ffb] = 0x81

	// the requested NMI is serviced before the next instruction. the
	// serviced interrupt is a step of its own
	output := runScript(t, rom, "POKE $0020 ff\nMEM $0020 1\nINTERRUPT NMI\nSTEP\nQUIT\n")

	if !strings.Contains(output, "$0020: ff") {
		t.Errorf("poked value not visible: %s", output)
	}
	if !strings.Contains(output, "(interrupt)") {
		t.Errorf("interrupt service not reported: %s", output)
	}
}

func TestUnknownCommand(t *testing.T) {
	rom := buildROM(0x4c, 0x00, 0x80)

	output := runScript(t, rom, "NOSUCH\nQUIT\n")

	if !strings.Contains(output, "unrecognised command") {
		t.Errorf("missing error output: %s", output)
	}
}

func TestStatsCommand(t *testing.T) {
	rom := buildROM(
		0xa9, 0x05, // LDA #$05
		0xaa, // TAX
	)

	output := runScript(t, rom, "STEP 2\nSTATS\nQUIT\n")

	if !strings.Contains(output, "instructions executed: 2") {
		t.Errorf("missing instruction count: %s", output)
	}
	if !strings.Contains(output, "LDA: 1") {
		t.Errorf("missing operator count: %s", output)
	}
}
