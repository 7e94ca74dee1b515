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

// Opcode is the operation selector held in the two lowest decimal digits of an
// instruction cell.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd Opcode = iota + 1
	OpMul
	OpIn
	OpOut
	OpJumpIfTrue
	OpJumpIfFalse
	OpLessThan
	OpEquals

	OpHalt Opcode = 99
)

type opInfo struct {
	name  string
	arity int
}

var opcodes = map[Opcode]opInfo{
	OpAdd:         {"add", 3},
	OpMul:         {"mul", 3},
	OpIn:          {"in", 1},
	OpOut:         {"out", 1},
	OpJumpIfTrue:  {"jt", 2},
	OpJumpIfFalse: {"jf", 2},
	OpLessThan:    {"lt", 3},
	OpEquals:      {"eq", 3},
	OpHalt:        {"hlt", 0},
}

// Valid reports whether op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Arity returns the number of parameters of op.
func (op Opcode) Arity() int {
	return opcodes[op].arity
}

func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "???"
}
