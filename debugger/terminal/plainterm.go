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

package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// PlainTerminal is the default, least-sophisticated terminal for the
// debugger. It does no character handling of its own and is suitable for
// script input and for ttys that do not support ANSI control codes.
type PlainTerminal struct {
	input  *bufio.Scanner
	output io.Writer
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. Reads from stdin and writes to stdout.
func NewPlainTerminal() *PlainTerminal {
	return &PlainTerminal{
		input:  bufio.NewScanner(os.Stdin),
		output: os.Stdout,
	}
}

// NewScriptTerminal is like NewPlainTerminal but with explicit input and
// output streams. Used for testing and for running debugger scripts.
func NewScriptTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  bufio.NewScanner(input),
		output: output,
	}
}

// Initialise implements the Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp implements the Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// TermRead implements the Terminal interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	fmt.Fprint(pt.output, prompt)
	if !pt.input.Scan() {
		if err := pt.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return pt.input.Text(), nil
}

// TermPrintLine implements the Terminal interface.
func (pt *PlainTerminal) TermPrintLine(style Style, s string, a ...interface{}) {
	switch style {
	case StyleError:
		fmt.Fprintf(pt.output, "* %s\n", fmt.Sprintf(s, a...))
	default:
		fmt.Fprintf(pt.output, "%s\n", fmt.Sprintf(s, a...))
	}
}
