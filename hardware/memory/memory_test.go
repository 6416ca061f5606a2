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

package memory_test

import (
	"testing"

	"github.com/HydroRifle/nes-emulator/cartridgeloader"
	"github.com/HydroRifle/nes-emulator/hardware/memory"
	"github.com/HydroRifle/nes-emulator/test"
)

func TestRAMMirroring(t *testing.T) {
	mem := memory.NewNESMemory()

	// a write through any mirror is visible through every other mirror
	test.ExpectedSuccess(t, mem.Write(0x0000, 0x42))
	for _, mirror := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		v, err := mem.Read(mirror)
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, uint8(0x42))
	}

	test.ExpectedSuccess(t, mem.Write(0x1fff, 0x05))
	v, err := mem.Read(0x07ff)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint8(0x05))
}

func TestChipRegisterMirroring(t *testing.T) {
	mem := memory.NewNESMemory()

	// the eight PPU registers repeat every eight bytes up to 0x3fff
	test.ExpectedSuccess(t, mem.Write(0x2000, 0x80))
	v, err := mem.Read(0x3ff8)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint8(0x80))

	test.Equate(t, int(mem.Chip.ReadCount), 1)
	test.Equate(t, int(mem.Chip.WriteCount), 1)

	// peek does not disturb the counters
	v, err = mem.Peek(0x2000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint8(0x80))
	test.Equate(t, int(mem.Chip.ReadCount), 1)
}

// makeNROM builds a minimal iNES image. The body fill value makes it easy to
// tell which bank a read came from.
func makeNROM(prgBanks int, fill uint8) []byte {
	data := make([]byte, 16+prgBanks*16384)
	copy(data, []byte{'N', 'E', 'S', 0x1a})
	data[4] = uint8(prgBanks)
	for i := 16; i < len(data); i++ {
		data[i] = fill
	}
	return data
}

func TestCartridgeAttach(t *testing.T) {
	mem := memory.NewNESMemory()

	cartload := cartridgeloader.Loader{Filename: "test.nes", Data: makeNROM(1, 0xc3)}
	test.ExpectedSuccess(t, mem.Cart.Attach(cartload))
	test.Equate(t, mem.Cart.NumBanks(), 1)

	// a 16k cartridge appears twice in the PRG window
	v, err := mem.Read(0x8000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint8(0xc3))
	v, err = mem.Read(0xc000)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint8(0xc3))

	// writes to the cartridge are ignored
	test.ExpectedSuccess(t, mem.Write(0x8000, 0xff))
	v, _ = mem.Read(0x8000)
	test.Equate(t, v, uint8(0xc3))
}

func TestCartridgeBadImage(t *testing.T) {
	mem := memory.NewNESMemory()

	// not an iNES file
	cartload := cartridgeloader.Loader{Filename: "bad.nes", Data: []byte{0x00, 0x01, 0x02}}
	test.ExpectedFailure(t, mem.Cart.Attach(cartload))

	// a mapper other than NROM
	data := makeNROM(1, 0x00)
	data[6] = 0x10 // mapper 1
	cartload = cartridgeloader.Loader{Filename: "mmc1.nes", Data: data}
	test.ExpectedFailure(t, mem.Cart.Attach(cartload))

	// reading with no cartridge attached is an error
	_, err := mem.Read(0x8000)
	test.ExpectedFailure(t, err)
}
