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

package memorymap_test

import (
	"testing"

	"github.com/HydroRifle/nes-emulator/hardware/memory/memorymap"
	"github.com/HydroRifle/nes-emulator/test"
)

func TestMapAddress(t *testing.T) {
	// console RAM repeats four times in the bottom 8KB
	ma, area := memorymap.MapAddress(0x0000)
	test.Equate(t, ma, uint16(0x0000))
	test.Equate(t, area == memorymap.RAM, true)

	ma, area = memorymap.MapAddress(0x1fff)
	test.Equate(t, ma, uint16(0x07ff))
	test.Equate(t, area == memorymap.RAM, true)

	ma, _ = memorymap.MapAddress(0x0800)
	test.Equate(t, ma, uint16(0x0000))

	// the PPU registers repeat every eight bytes
	ma, area = memorymap.MapAddress(0x2008)
	test.Equate(t, ma, uint16(0x2000))
	test.Equate(t, area == memorymap.PPU, true)

	ma, _ = memorymap.MapAddress(0x3fff)
	test.Equate(t, ma, uint16(0x2007))

	// IO and cartridge areas have no mirrors
	ma, area = memorymap.MapAddress(0x4015)
	test.Equate(t, ma, uint16(0x4015))
	test.Equate(t, area == memorymap.IO, true)

	ma, area = memorymap.MapAddress(0x8000)
	test.Equate(t, ma, uint16(0x8000))
	test.Equate(t, area == memorymap.Cartridge, true)
}
