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

// Package cartridge interprets the data retrieved by the cartridgeloader
// package. Only the iNES container format and mapper zero (NROM) are
// understood. NROM covers the early first party titles and, more usefully,
// the bulk of CPU test programs.
package cartridge

import (
	"bytes"
	"fmt"

	"github.com/HydroRifle/nes-emulator/cartridgeloader"
	"github.com/HydroRifle/nes-emulator/curated"
)

// the iNES container header
const (
	headerSize  = 16
	trainerSize = 512
	prgBankSize = 16384
	chrBankSize = 8192
)

var inesMagic = []byte{'N', 'E', 'S', 0x1a}

// Cartridge is the cartridge PRG data as visible from the CPU bus.
type Cartridge struct {
	Filename string
	Hash     string

	prg []uint8
	chr []uint8
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The cartridge is empty until Attach() is called.
func NewCartridge() *Cartridge {
	return &Cartridge{}
}

func (cart Cartridge) String() string {
	if len(cart.prg) == 0 {
		return "no cartridge attached"
	}
	return fmt.Sprintf("%s: NROM %dk PRG %dk CHR",
		cart.Filename, len(cart.prg)/1024, len(cart.chr)/1024)
}

// Eject removes the cartridge data.
func (cart *Cartridge) Eject() {
	cart.Filename = ""
	cart.Hash = ""
	cart.prg = nil
	cart.chr = nil
}

// Attach loads the data specified by the loader and interprets the iNES
// header.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return err
	}

	data := cartload.Data
	if len(data) < headerSize || !bytes.Equal(data[:4], inesMagic) {
		return curated.Errorf("cartridge: %v", fmt.Sprintf("not an iNES file (%s)", cartload.Filename))
	}

	prgBanks := int(data[4])
	chrBanks := int(data[5])
	mapper := (data[6] >> 4) | (data[7] & 0xf0)

	if mapper != 0 {
		return curated.Errorf("cartridge: %v", fmt.Sprintf("unsupported mapper (%d)", mapper))
	}
	if prgBanks < 1 || prgBanks > 2 {
		return curated.Errorf("cartridge: %v", fmt.Sprintf("NROM must have one or two PRG banks (%d)", prgBanks))
	}

	offset := headerSize
	if data[6]&0x04 == 0x04 {
		offset += trainerSize
	}

	prgLen := prgBanks * prgBankSize
	chrLen := chrBanks * chrBankSize
	if len(data) < offset+prgLen+chrLen {
		return curated.Errorf("cartridge: %v", fmt.Sprintf("file is smaller than the header claims (%s)", cartload.Filename))
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.prg = data[offset : offset+prgLen]
	cart.chr = data[offset+prgLen : offset+prgLen+chrLen]

	return nil
}

// NumBanks returns the number of 16k PRG banks in the cartridge.
func (cart Cartridge) NumBanks() int {
	return len(cart.prg) / prgBankSize
}

// Peek is the implementation of the debugger bus. For NROM it is the same as
// Read.
func (cart Cartridge) Peek(address uint16) (uint8, error) {
	return cart.Read(address)
}

// Poke is the implementation of the debugger bus. Cartridge ROM cannot be
// poked.
func (cart Cartridge) Poke(address uint16, value uint8) error {
	return curated.Errorf("cartridge: %v", "cannot poke cartridge ROM")
}

// Read is an implementation of cpubus.Memory. A 16k cartridge appears twice
// in the 32k PRG window.
func (cart Cartridge) Read(address uint16) (uint8, error) {
	if len(cart.prg) == 0 {
		return 0, curated.Errorf("cartridge: %v", "no cartridge attached")
	}
	if address < 0x8000 {
		// the expansion area below the PRG window is unpopulated on NROM
		// boards
		return 0, nil
	}
	return cart.prg[int(address-0x8000)%len(cart.prg)], nil
}

// Write is an implementation of cpubus.Memory. NROM has no mapper registers
// so writes to the cartridge are ignored.
func (cart Cartridge) Write(address uint16, data uint8) error {
	return nil
}
