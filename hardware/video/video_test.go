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

package video_test

import (
	"testing"

	"github.com/HydroRifle/nes-emulator/hardware/video"
	"github.com/HydroRifle/nes-emulator/test"
)

func TestCounter(t *testing.T) {
	counter := video.NewCounter()

	vblanks := 0
	counter.VBlank = func() {
		vblanks++
		test.Equate(t, counter.Scanline, video.VBlankScanline)
	}

	for i := 0; i < video.ScanlinesPerFrame-1; i++ {
		frameDone, err := counter.EndScanline()
		test.ExpectedSuccess(t, err)
		test.Equate(t, frameDone, false)
	}

	frameDone, err := counter.EndScanline()
	test.ExpectedSuccess(t, err)
	test.Equate(t, frameDone, true)
	test.Equate(t, vblanks, 1)
	test.Equate(t, counter.Scanline, 0)
	test.Equate(t, int(counter.Frame), 1)
}
