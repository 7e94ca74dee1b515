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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ewr"
	"github.com/db47h/intcode/vm"
)

var opcodes = map[vm.Opcode][]string{
	vm.OpAdd:         {"add"},
	vm.OpMul:         {"mul"},
	vm.OpIn:          {"in", "inp"},
	vm.OpOut:         {"out"},
	vm.OpJumpIfTrue:  {"jt", "jnz"},
	vm.OpJumpIfFalse: {"jf", "jz"},
	vm.OpLessThan:    {"lt"},
	vm.OpEquals:      {"eq"},
	vm.OpHalt:        {"hlt", "halt"},
}

var opcodeIndex = make(map[string]vm.Opcode)

func init() {
	for op, names := range opcodes {
		for _, n := range names {
			opcodeIndex[n] = op
		}
	}
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting memory image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (vm.Memory, error) {
	p := newParser()
	mem, err := p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return mem, nil
}

// Disassemble writes a disassembly of the instruction at position pc in mem to
// the specified io.Writer and returns the position of the next instruction and
// any write error.
//
// Cells that do not hold a valid instruction, or an instruction whose
// parameters would lie past the end of mem, are written as ".dat value". If pc
// is out of range, nothing is written and a *vm.AddressError is returned.
func Disassemble(mem vm.Memory, pc int, w io.Writer) (next int, err error) {
	if pc < 0 || pc >= len(mem) {
		return pc, &vm.AddressError{PC: -1, Addr: pc, Size: len(mem)}
	}
	ew := ewr.New(w)
	ins, err := vm.Decode(mem, pc)
	if err != nil || pc+ins.Op.Arity() >= len(mem) {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.Itoa(int(mem[pc])))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, opcodes[ins.Op][0])
	for k := 0; k < ins.Op.Arity(); k++ {
		ew.Write([]byte{' '})
		if ins.Mode(k) == vm.Immediate {
			ew.Write([]byte{'#'})
		}
		io.WriteString(ew, strconv.Itoa(int(mem[pc+1+k])))
	}
	return pc + 1 + ins.Op.Arity(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given memory to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (mem[0]). It will return any write error.
func DisassembleAll(mem vm.Memory, base int, w io.Writer) error {
	ew := ewr.New(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "%5d  ", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
