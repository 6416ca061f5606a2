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

// Package curated is how the emulation creates and handles errors. Error
// patterns are declared as string constants by the package that raises them,
// for example:
//
//	const UnhandledOpcode = "cpu: unhandled opcode (%#02x)"
//
// and raised with:
//
//	return curated.Errorf(UnhandledOpcode, opcode)
//
// Callers that want to react to a specific error test with curated.Is() or,
// for errors deeper in a chain, curated.Has(). Errors that are not created by
// this package are considered unexpected by convention and should be allowed
// to propagate to the main() function.
package curated
