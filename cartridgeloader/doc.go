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

// Package cartridgeloader is used to specify the cartridge file to load and
// to retrieve the data from that file. The Loader type can fetch from the
// local filesystem or over HTTP; the interpretation of the data (the iNES
// header and the mapper it names) is the job of the cartridge package.
package cartridgeloader
