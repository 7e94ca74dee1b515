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

// Mode is a parameter addressing mode.
type Mode int

// Parameter modes.
const (
	// Position mode parameters hold the address of the operand.
	Position Mode = iota
	// Immediate mode parameters are the operand.
	Immediate
)

func (m Mode) String() string {
	if m == Immediate {
		return "immediate"
	}
	return "position"
}

// Instruction is a decoded instruction cell.
type Instruction struct {
	Op    Opcode
	Modes []Mode // exactly Op.Arity() entries
}

// Mode returns the addressing mode of parameter k.
func (ins Instruction) Mode(k int) Mode {
	if k < len(ins.Modes) {
		return ins.Modes[k]
	}
	return Position
}

// Decode decodes the instruction at address pc.
//
// The opcode is the cell value modulo 100. Parameter modes are the remaining
// decimal digits, least significant first, 0 for Position mode and anything
// else for Immediate mode. Missing modes default to Position and digits past
// the opcode's arity are ignored.
//
// Decode only looks at mem[pc] and has no side effects. It returns a
// *DecodeError for unknown opcodes and an *AddressError if pc is out of range.
func Decode(mem Memory, pc int) (Instruction, error) {
	if pc < 0 || pc >= len(mem) {
		return Instruction{}, &AddressError{PC: pc, Addr: pc, Size: len(mem)}
	}
	v := mem[pc]
	op := Opcode(v % 100)
	if v < 0 || !op.Valid() {
		return Instruction{}, &DecodeError{PC: pc, Value: v}
	}
	n := op.Arity()
	if n == 0 {
		return Instruction{Op: op}, nil
	}
	modes := make([]Mode, n)
	for k, rest := 0, v/100; k < n && rest > 0; k, rest = k+1, rest/10 {
		if rest%10 != 0 {
			modes[k] = Immediate
		}
	}
	return Instruction{Op: op, Modes: modes}, nil
}
