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

package colorterm

// ANSI control sequences used by the color terminal.
const (
	ansiNormal     = "\033[0m"
	ansiBold       = "\033[1m"
	ansiDim        = "\033[2m"
	ansiPenRed     = "\033[31m"
	ansiPenGreen   = "\033[32m"
	ansiPenYellow  = "\033[33m"
	ansiPenBlue    = "\033[34m"
	ansiPenMagenta = "\033[35m"
	ansiPenCyan    = "\033[36m"
	ansiClearLine  = "\033[2K\r"
)
