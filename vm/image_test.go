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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	mem, err := vm.Parse("1,9,10,3,\n 2,3,11,0,99,-30,40,50\n")
	require.NoError(t, err)
	assert.Equal(t, vm.Memory{1, 9, 10, 3, 2, 3, 11, 0, 99, -30, 40, 50}, mem)

	for _, text := range []string{"", "  \n", "1,,2", "1,2,", "1,x", "99;1"} {
		_, err = vm.Parse(text)
		assert.Error(t, err, "%q", text)
	}
}

func TestLoadSave(t *testing.T) {
	name := filepath.Join(t.TempDir(), "prog.txt")
	mem := vm.Memory{1002, 4, 3, 4, 33, -1}
	require.NoError(t, vm.Save(name, mem))

	b, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "1002,4,3,4,33,-1\n", string(b))

	got, err := vm.Load(name)
	require.NoError(t, err)
	assert.Equal(t, mem, got)

	_, err = vm.Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestMemory(t *testing.T) {
	mem := vm.Memory{1, 2, 3}
	c := mem.Clone()
	require.NoError(t, c.Patch(0, 42))
	assert.EqualValues(t, 1, mem[0])
	assert.EqualValues(t, 42, c[0])
	assert.Equal(t, &vm.AddressError{PC: -1, Addr: 3, Size: 3}, c.Patch(3, 0))

	assert.EqualValues(t, 3, mem.Read(1, vm.Position))
	assert.EqualValues(t, 2, mem.Read(1, vm.Immediate))
	assert.Panics(t, func() { mem.Read(2, vm.Position) })
	assert.Panics(t, func() { mem.Write(-1, 0) })

	var b bytes.Buffer
	require.NoError(t, c.Dump(&b))
	assert.Equal(t, "42,2,3", b.String())
}
