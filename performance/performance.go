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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/HydroRifle/nes-emulator/cartridgeloader"
	"github.com/HydroRifle/nes-emulator/curated"
	"github.com/HydroRifle/nes-emulator/hardware"
	"github.com/HydroRifle/nes-emulator/statsview"
)

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration, as quickly as the host
// machine allows, and the achieved frame rate is written to output together
// with a comparison against the console's true refresh rate. A CPU profile
// and a memory profile are written if the profile argument is true.
func Check(output io.Writer, profile bool, cartload cartridgeloader.Loader, duration string) error {
	nes, counter, err := hardware.NewNTSC()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = nes.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if statsview.Available() {
		statsview.Launch(output)
	}

	startFrame := counter.Frame

	runner := func() error {
		deadline := time.Now().Add(dur)
		return nes.Run(func() (bool, error) {
			return time.Now().Before(deadline), nil
		})
	}

	err = cpuProfile(profile, "cpu.profile", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := int(counter.Frame - startFrame)
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return memProfile(profile, "mem.profile")
}
