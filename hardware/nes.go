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

package hardware

import (
	"github.com/HydroRifle/nes-emulator/cartridgeloader"
	"github.com/HydroRifle/nes-emulator/curated"
	"github.com/HydroRifle/nes-emulator/hardware/cpu"
	"github.com/HydroRifle/nes-emulator/hardware/memory"
	"github.com/HydroRifle/nes-emulator/hardware/video"
	"github.com/HydroRifle/nes-emulator/logger"
)

// CyclesPerScanline is the number of CPU cycles in one scanline of NTSC
// video. 341 PPU dots at three dots per CPU cycle, rounded down.
const CyclesPerScanline = 114

// NES struct is the main implementation of the NES console.
type NES struct {
	CPU  *cpu.CPU
	Mem  *memory.NESMemory
	Sync video.Synchroniser

	// cycles executed beyond the current scanline budget. instructions are
	// atomic so the CPU routinely overshoots the scanline boundary; the
	// overshoot is carried into the next scanline rather than discarded.
	remainder int
}

// NewNES creates a NES paced by the supplied synchroniser. The console is in
// an undefined state until a cartridge is attached.
func NewNES(sync video.Synchroniser) (*NES, error) {
	if sync == nil {
		return nil, curated.Errorf("nes: %v", "synchroniser is not defined")
	}

	nes := &NES{Sync: sync}
	nes.Mem = memory.NewNESMemory()

	var err error
	nes.CPU, err = cpu.NewCPU(nes.Mem)
	if err != nil {
		return nil, err
	}

	return nes, nil
}

// NewNTSC creates a NES paced by a scanline counter, with the counter's
// vertical blank wired to the CPU's NMI. This is the normal configuration;
// NewNES exists for tests and tools that want to supply their own
// synchroniser.
func NewNTSC() (*NES, *video.Counter, error) {
	counter := video.NewCounter()

	nes, err := NewNES(counter)
	if err != nil {
		return nil, nil, err
	}

	counter.VBlank = func() {
		nes.CPU.RequestInterrupt(cpu.InterruptNMI)
	}

	return nes, counter, nil
}

// AttachCartridge inserts the cartridge into the console and resets it.
func (nes *NES) AttachCartridge(cartload cartridgeloader.Loader) error {
	err := nes.Mem.Cart.Attach(cartload)
	if err != nil {
		return err
	}

	logger.Logf("nes", "cartridge attached: %s", nes.Mem.Cart.String())

	return nes.Reset()
}

// Reset the console and load the PC from the reset vector.
func (nes *NES) Reset() error {
	nes.remainder = 0
	return nes.CPU.Reset()
}

// Step executes a single instruction, or services a pending interrupt, and
// credits the cycle budget.
func (nes *NES) Step() error {
	err := nes.CPU.ExecuteInstruction()
	if err != nil {
		return err
	}
	nes.remainder += nes.CPU.LastResult.Cycles
	return nil
}

// RunFrame runs the console until the synchroniser reports that the frame is
// complete.
func (nes *NES) RunFrame() error {
	for {
		for nes.remainder > CyclesPerScanline {
			frameDone, err := nes.Sync.EndScanline()
			if err != nil {
				return err
			}
			nes.remainder -= CyclesPerScanline
			if frameDone {
				return nil
			}
		}

		err := nes.Step()
		if err != nil {
			return err
		}
	}
}

// Run the console continuously. The continueCheck callback is called after
// every frame; returning false stops the loop cleanly. A nil callback means
// run forever.
func (nes *NES) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		err := nes.RunFrame()
		if err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
