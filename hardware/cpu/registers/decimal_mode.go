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

package registers

// decimal mode treats the register as two packed BCD digits, each nibble
// corrected independently. the carry out of the units digit feeds the tens
// digit and the carry out of the tens digit becomes the carry flag.
//
// note that decimal mode exists only for the ADC instruction. SBC assumes
// binary mode; decimal subtraction is undefined in this implementation.

func addDigit(a, b uint8, carry bool) (r uint8, rcarry bool) {
	r = a + b
	if carry {
		r++
	}
	return r, r > 9
}

// AddDecimal adds value to register as though both are packed BCD values.
// Returns new carry state, zero, overflow and sign bit information. Unlike
// binary addition, which only reports carry and overflow, the zero and sign
// information for decimal addition is derived mid-correction and so cannot
// be read back from the final register value.
//
// The second return value reports whether either argument held a non-decimal
// digit (a nibble greater than 9). The result in that case is still the
// hardware result but a strict emulation may want to know about it.
func (r *Register) AddDecimal(val uint8, carry bool) (result DecimalResult, ok bool) {
	ok = r.value&0x0f <= 9 && r.value>>4 <= 9 && val&0x0f <= 9 && val>>4 <= 9

	var ucarry, tcarry bool

	// addition of units and tens digits
	runits := r.value & 0x0f
	vunits := val & 0x0f
	runits, ucarry = addDigit(runits, vunits, carry)

	rtens := (r.value & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	rtens, tcarry = addDigit(rtens, vtens, ucarry)

	// the zero flag is computed before any decimal correction
	result.Zero = runits == 0x00 && rtens == 0x00

	// decimal correction for units digit
	if ucarry {
		runits -= 10
	}

	// the sign and overflow flags are computed after correcting the units
	// digit but before correcting the tens digit. the tens value has not
	// been shifted into the upper nibble at this point
	result.Overflow = rtens&0x04 == 0x04
	result.Sign = rtens&0x08 == 0x08

	// decimal correction for tens digit
	if tcarry {
		rtens -= 10
	}

	// pack digits back into the register
	r.value = (rtens << 4) | runits

	result.Carry = tcarry

	return result, ok
}

// DecimalResult groups the flag states produced by decimal addition.
type DecimalResult struct {
	Carry    bool
	Zero     bool
	Overflow bool
	Sign     bool
}
