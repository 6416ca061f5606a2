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

// Package video keeps the CPU in step with the display. Picture generation
// is out of scope for this emulation; what remains of the PPU is its role as
// the console's timekeeper. The CPU executes a scanline's worth of cycles,
// the synchroniser is told, and after the full count of scanlines the frame
// is complete and the vertical blank interrupt fires.
package video

// Scanline geometry of the NTSC NES.
const (
	ScanlinesPerFrame = 262
	VBlankScanline    = 241
)

// Synchroniser is implemented by anything that wants to be told when the CPU
// has executed a scanline's worth of cycles. The return value indicates that
// the frame is complete.
type Synchroniser interface {
	EndScanline() (bool, error)
}

// Counter is the simplest Synchroniser: it counts scanlines and frames and
// calls the VBlank function at the start of the vertical blank period.
type Counter struct {
	Scanline int
	Frame    uint64

	// called once per frame at the start of the vertical blank, if set
	VBlank func()
}

// NewCounter is the preferred method of initialisation for the Counter type.
func NewCounter() *Counter {
	return &Counter{}
}

// EndScanline implements the Synchroniser interface.
func (c *Counter) EndScanline() (bool, error) {
	c.Scanline++

	if c.Scanline == VBlankScanline && c.VBlank != nil {
		c.VBlank()
	}

	if c.Scanline >= ScanlinesPerFrame {
		c.Scanline = 0
		c.Frame++
		return true, nil
	}

	return false, nil
}
