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

import "fmt"

// DecodeError is the fault raised when the cell at PC does not hold a valid
// instruction.
type DecodeError struct {
	PC    int
	Value Cell
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown opcode %d in cell value %d @pc=%d", e.Value%100, e.Value, e.PC)
}

// AddressError is the fault raised on memory accesses outside of [0, Size).
// PC is the address of the faulting instruction, or -1 if the access did not
// happen while executing one.
type AddressError struct {
	PC   int
	Addr int
	Size int
}

func (e *AddressError) Error() string {
	if e.PC < 0 {
		return fmt.Sprintf("address %d out of range [0, %d)", e.Addr, e.Size)
	}
	return fmt.Sprintf("address %d out of range [0, %d) @pc=%d", e.Addr, e.Size, e.PC)
}
