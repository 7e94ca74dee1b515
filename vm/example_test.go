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

package vm_test

import (
	"fmt"
	"os"

	"github.com/db47h/intcode/vm"
)

// Shows how to feed a machine that stops to wait for input.
func ExampleInstance_Run() {
	mem, err := vm.Parse("3,9,8,9,10,9,4,9,99,-1,8")
	if err != nil {
		panic(err)
	}
	i, err := vm.New(mem)
	if err != nil {
		panic(err)
	}

	halted, err := i.Run()
	fmt.Println(halted, i.Status, err)

	i.Write(8)
	halted, err = i.Run()
	fmt.Println(halted, i.Status, err)

	fmt.Println(i.Out().Drain())

	// Output:
	// false waiting <nil>
	// true halted <nil>
	// [1]
}

// Two machines sharing a pipe. The first one adds 1 to its input, the second
// one multiplies its input by 3.
func ExampleOutput() {
	p := vm.NewPipe()
	add1, _ := vm.New(vm.Memory{3, 0, 1001, 0, 1, 0, 4, 0, 99}, vm.Output(p))
	mul3, _ := vm.New(vm.Memory{3, 0, 1002, 0, 3, 0, 4, 0, 99}, vm.Input(p))

	add1.Write(13)
	for _, i := range []*vm.Instance{add1, mul3} {
		if _, err := i.Run(); err != nil {
			panic(err)
		}
	}
	v, _ := mul3.LastOutput()
	fmt.Println(v)

	// Output:
	// 42
}

func ExampleMemory_Dump() {
	i, _ := vm.New(vm.Memory{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50})
	if _, err := i.Run(); err != nil {
		panic(err)
	}
	i.Mem.Dump(os.Stdout)
	fmt.Println()

	// Output:
	// 3500,9,10,70,2,3,11,0,99,30,40,50
}
