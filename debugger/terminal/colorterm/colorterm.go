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

// Package colorterm implements the Terminal interface for the debugger. It
// provides coloured output and input history.
package colorterm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/HydroRifle/nes-emulator/debugger/terminal"
	"github.com/HydroRifle/nes-emulator/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the Terminal interface.
type ColorTerminal struct {
	easyterm.Terminal

	history    []string
	historyIdx int
}

const maxHistoryEntries = 100

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type.
func NewColorTerminal() (*ColorTerminal, error) {
	ct := &ColorTerminal{}
	if err := ct.Terminal.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, err
	}
	return ct, nil
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	ct.CBreakMode()
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.Print(ansiNormal)
	ct.Terminal.CleanUp()
}

// TermPrintLine implements the terminal.Terminal interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string, a ...interface{}) {
	switch style {
	case terminal.StyleError:
		ct.Print(ansiPenRed)
		ct.Print("* ")
	case terminal.StyleHelp:
		ct.Print(ansiDim)
	case terminal.StyleInstruction:
		ct.Print(ansiPenYellow)
	case terminal.StyleMachineInfo:
		ct.Print(ansiPenCyan)
	case terminal.StyleLog:
		ct.Print(ansiPenMagenta)
	}

	ct.Print(s, a...)
	ct.Print(ansiNormal)
	ct.Print("\n")
}

// TermRead implements the terminal.Terminal interface. Reads user input a
// byte at a time, with simple line editing and input history.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	input := strings.Builder{}
	ct.historyIdx = len(ct.history)

	showPrompt := func(current string) {
		ct.Print(ansiClearLine)
		ct.Print(ansiBold)
		ct.Print(prompt)
		ct.Print(ansiNormal)
		ct.Print(current)
	}
	showPrompt("")

	for {
		b, err := ct.Input()
		if err != nil {
			return "", err
		}

		switch b {
		case easyterm.KeyCtrlC, easyterm.KeyCtrlD:
			ct.Print("\n")
			return "", io.EOF

		case easyterm.KeyCarriageReturn, easyterm.KeyNewline:
			ct.Print("\n")
			s := input.String()
			if strings.TrimSpace(s) != "" {
				ct.history = append(ct.history, s)
				if len(ct.history) > maxHistoryEntries {
					ct.history = ct.history[1:]
				}
			}
			return s, nil

		case easyterm.KeyBackspace:
			s := input.String()
			if len(s) > 0 {
				input.Reset()
				input.WriteString(s[:len(s)-1])
				showPrompt(input.String())
			}

		case easyterm.KeyEsc:
			// history navigation. up and down cursor keys arrive as an
			// escape sequence of three bytes
			b, err = ct.Input()
			if err != nil {
				return "", err
			}
			if b != '[' {
				continue
			}
			b, err = ct.Input()
			if err != nil {
				return "", err
			}
			switch b {
			case 'A': // cursor up
				if ct.historyIdx > 0 {
					ct.historyIdx--
					input.Reset()
					input.WriteString(ct.history[ct.historyIdx])
					showPrompt(input.String())
				}
			case 'B': // cursor down
				if ct.historyIdx < len(ct.history)-1 {
					ct.historyIdx++
					input.Reset()
					input.WriteString(ct.history[ct.historyIdx])
					showPrompt(input.String())
				} else {
					ct.historyIdx = len(ct.history)
					input.Reset()
					showPrompt("")
				}
			}

		default:
			if b >= 32 && b < 127 {
				input.WriteByte(b)
				ct.Print(fmt.Sprintf("%c", b))
			}
		}
	}
}
