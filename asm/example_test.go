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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

// Assemble a program that doubles its input.
func ExampleAssemble() {
	code := `
( read a number, double it and write it back )
	in x
	mul x #2 x
	out x
	hlt
:x	.dat 0
`
	mem, err := asm.Assemble("double", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(mem)

	i, err := vm.New(mem, vm.Input(vm.NewPipe(21)))
	if err != nil {
		fmt.Println(err)
		return
	}
	if _, err = i.Run(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(i.LastOutput())

	// Output:
	// [3 9 1002 9 2 9 4 9 99 0]
	// 42 true
}

func ExampleDisassembleAll() {
	mem, err := vm.Parse("3,12,1008,12,8,12,1005,12,11,104,0,99,0")
	if err != nil {
		fmt.Println(err)
		return
	}
	asm.DisassembleAll(mem, 0, os.Stdout)

	// Output:
	//     0  in 12
	//     2  eq 12 #8 12
	//     6  jt 12 #11
	//     9  out #0
	//    11  hlt
	//    12  .dat 0
}
