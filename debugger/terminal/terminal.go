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

// Package terminal defines the operations required for command line
// interaction with the debugger.
package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. Implementations of the Terminal
// interface are free to interpret the style however they like, including
// ignoring it entirely.
type Style int

// List of terminal styles.
const (
	// the normal text style for debugger output.
	StyleOutput Style = iota

	// information from the emulated machine rather than the debugger.
	StyleMachineInfo

	// disassembly output.
	StyleInstruction

	// help output.
	StyleHelp

	// terminal prompt.
	StylePrompt

	// non-fatal error messages.
	StyleError

	// information from the log.
	StyleLog
)

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	// Initialise the terminal. For some terminal implementations this will
	// change the terminal mode of the controlling tty.
	Initialise() error

	// Restore the terminal to its pre-Initialise() state.
	CleanUp()

	// TermRead waits for the next line of user input. The returned string
	// does not include the line terminator.
	TermRead(prompt string) (string, error)

	// TermPrintLine writes a formatted line to the terminal, honouring the
	// given style where possible.
	TermPrintLine(style Style, s string, a ...interface{})
}
