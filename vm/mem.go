// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"golang.org/x/exp/slices"
)

// Memory is the linear memory of an Intcode machine. Its size is fixed: it
// never grows past the length of the loaded program.
type Memory []Cell

func (m Memory) check(addr int) int {
	if addr < 0 || addr >= len(m) {
		panic(&AddressError{PC: -1, Addr: addr, Size: len(m)})
	}
	return addr
}

// Read returns the operand at address addr according to mode. In Position
// mode, the cell at addr holds the address of the operand. In Immediate mode,
// the cell at addr is the operand.
//
// Read panics with an *AddressError if any of the addresses it goes through is
// out of range. Instance.Step recovers from these and returns them as errors.
func (m Memory) Read(addr int, mode Mode) Cell {
	v := m[m.check(addr)]
	if mode == Immediate {
		return v
	}
	return m[m.check(int(v))]
}

// Write stores v at address addr. Like Read, it panics with an *AddressError
// if addr is out of range.
func (m Memory) Write(addr int, v Cell) {
	m[m.check(addr)] = v
}

// Patch is the error returning version of Write, for use outside of a running
// machine. The PC field of the returned *AddressError is -1.
func (m Memory) Patch(addr int, v Cell) error {
	if addr < 0 || addr >= len(m) {
		return &AddressError{PC: -1, Addr: addr, Size: len(m)}
	}
	m[addr] = v
	return nil
}

// Clone returns a copy of m.
func (m Memory) Clone() Memory {
	return slices.Clone(m)
}
