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
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
)

func TestPipe(t *testing.T) {
	assert := assert.New(t)

	p := vm.NewPipe()
	_, ok := p.Pop()
	assert.False(ok)
	_, ok = p.Peek()
	assert.False(ok)
	_, ok = p.Last()
	assert.False(ok)

	p.Push(1)
	p.Push(2)
	p.Push(3)
	assert.Equal(3, p.Len())
	assert.EqualValues(3, p.Pushes())

	v, ok := p.Peek()
	assert.True(ok)
	assert.EqualValues(1, v)
	assert.Equal(3, p.Len())

	v, _ = p.Pop()
	assert.EqualValues(1, v)
	v, _ = p.Pop()
	assert.EqualValues(2, v)

	p.Push(4)
	assert.Equal([]vm.Cell{3, 4}, p.Drain())
	assert.Equal(0, p.Len())
	v, ok = p.Last()
	assert.True(ok)
	assert.EqualValues(4, v)
	assert.EqualValues(4, p.Pushes())
}

func TestPipe_shared(t *testing.T) {
	p := vm.NewPipe(7)
	q := p
	q.Push(33)
	v, _ := p.Pop()
	assert.EqualValues(t, 7, v)
	v, _ = p.Pop()
	assert.EqualValues(t, 33, v)
}
