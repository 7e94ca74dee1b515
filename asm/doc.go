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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm		args	description
//	------	---		----	------------------------------------------------------
//	1	add		a b d	store a + b at address d
//	2	mul		a b d	store a * b at address d
//	3	in, inp		d	read one value from input and store it at address d
//	4	out		a	write a to output
//	5	jt, jnz		a t	jump to t if a != 0
//	6	jf, jz		a t	jump to t if a == 0
//	7	lt		a b d	store 1 at address d if a < b, 0 otherwise
//	8	eq		a b d	store 1 at address d if a == b, 0 otherwise
//	99	hlt, halt		halt the machine
//
// Operands:
//
// Operands are integer literals or label names. They are in position mode by
// default: the operand is the address of the value to use. Prefixing an
// operand with '#' switches it to immediate mode, where the operand is the
// value itself. The assembler adds the proper mode digits to the instruction
// cell. Destination operands (d above) cannot be immediate.
//
//	add #2 x x	( x += 2 )
//	out #42		( write 42 to output )
//
// Integer literals are decimal, with an optional sign. Leading zeros are
// ignored: 010 is ten, as in comma separated Intcode text.
//
// Labels:
//
// A label is defined by prefixing its name with a colon. It evaluates to the
// address of the next cell. Labels can be used before being defined. Label names
// start with a letter or underscore and contain only letters, digits and
// underscores.
//
//	:loop
//		jt #1 loop_ptr
//
// Data:
//
// The .dat directive writes its argument as-is in the next cell.
//
//	:x	.dat 0
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not )
//
// Disassembly:
//
// Disassemble and DisassembleAll produce text that Assemble accepts, minus the
// address column of DisassembleAll. Cells that do not decode into a valid
// instruction are written as .dat directives.
package asm
