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

package hardware_test

import (
	"testing"

	"github.com/HydroRifle/nes-emulator/cartridgeloader"
	"github.com/HydroRifle/nes-emulator/hardware"
	"github.com/HydroRifle/nes-emulator/test"
)

// buildROM returns a one bank NROM image with the supplied program at the
// PRG origin and the reset vector pointing at it. the final bytes of the
// program image can be overwritten by the caller to add interrupt handlers.
func buildROM(program ...uint8) []byte {
	data := make([]byte, 16+16384)
	copy(data, []byte{'N', 'E', 'S', 0x1a})
	data[4] = 1
	copy(data[16:], program)

	// reset vector. 0xfffc maps to the last bank of PRG
	data[16+0x3ffc] = 0x00
	data[16+0x3ffd] = 0x80

	return data
}

func TestRunFrame(t *testing.T) {
	nes, counter, err := hardware.NewNTSC()
	test.ExpectedSuccess(t, err)

	// a short program that computes a sum, stores it and then spins
	rom := buildROM(
		0xa9, 0x05, // LDA #$05
		0x18,       // CLC
		0x69, 0x03, // ADC #$03
		0x85, 0x10, // STA $10
		0x4c, 0x07, 0x80, // JMP $8007
	)

	// NMI handler counts frames in RAM. the vblank interrupt interrupts the
	// JMP spin loop once per frame
	rom[16+0x0100] = 0xe6 // INC $11
	rom[16+0x0101] = 0x11
	rom[16+0x0102] = 0x40 // RTI
	rom[16+0x3ffa] = 0x00
	rom[16+0x3ffb] = 0x81

	cartload := cartridgeloader.Loader{Filename: "frame.nes", Data: rom}
	test.ExpectedSuccess(t, nes.AttachCartridge(cartload))

	test.ExpectedSuccess(t, nes.RunFrame())
	test.Equate(t, int(counter.Frame), 1)

	v, err := nes.Mem.Peek(0x0010)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint8(0x08))

	// the NMI handler ran exactly once
	v, err = nes.Mem.Peek(0x0011)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint8(0x01))

	// a second frame services a second vblank interrupt
	test.ExpectedSuccess(t, nes.RunFrame())
	v, _ = nes.Mem.Peek(0x0011)
	test.Equate(t, v, uint8(0x02))
}

func TestRunContinueCheck(t *testing.T) {
	nes, counter, err := hardware.NewNTSC()
	test.ExpectedSuccess(t, err)

	rom := buildROM(0x4c, 0x00, 0x80) // JMP $8000
	cartload := cartridgeloader.Loader{Filename: "spin.nes", Data: rom}
	test.ExpectedSuccess(t, nes.AttachCartridge(cartload))

	frames := 0
	err = nes.Run(func() (bool, error) {
		frames++
		return frames < 3, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, frames, 3)
	test.Equate(t, int(counter.Frame), 3)
}

func TestStep(t *testing.T) {
	nes, _, err := hardware.NewNTSC()
	test.ExpectedSuccess(t, err)

	rom := buildROM(0xa2, 0x07) // LDX #$07
	cartload := cartridgeloader.Loader{Filename: "step.nes", Data: rom}
	test.ExpectedSuccess(t, nes.AttachCartridge(cartload))

	test.ExpectedSuccess(t, nes.Step())
	test.Equate(t, nes.CPU.X.Value(), uint8(0x07))
	test.Equate(t, nes.CPU.LastResult.Cycles, 2)
}
