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

// Pipe is an unbounded FIFO queue of Cells. A pipe is shared by the machines
// wired to it: one writes to it with Out, the other reads from it with In.
//
// Pipes are not safe for concurrent use. Machines sharing pipes are expected to
// be scheduled cooperatively from a single goroutine.
type Pipe struct {
	q      []Cell
	last   Cell
	pushes uint64
}

// NewPipe returns a new pipe holding the given values.
func NewPipe(values ...Cell) *Pipe {
	p := new(Pipe)
	for _, v := range values {
		p.Push(v)
	}
	return p
}

// Push appends v at the tail of the queue.
func (p *Pipe) Push(v Cell) {
	p.q = append(p.q, v)
	p.last = v
	p.pushes++
}

// Pop removes and returns the value at the head of the queue. The second
// return value is false if the pipe is empty.
func (p *Pipe) Pop() (Cell, bool) {
	if len(p.q) == 0 {
		return 0, false
	}
	v := p.q[0]
	p.q = p.q[1:]
	if len(p.q) == 0 {
		p.q = nil
	}
	return v, true
}

// Peek returns the value at the head of the queue without removing it.
func (p *Pipe) Peek() (Cell, bool) {
	if len(p.q) == 0 {
		return 0, false
	}
	return p.q[0], true
}

// Drain removes and returns all queued values.
func (p *Pipe) Drain() []Cell {
	q := p.q
	p.q = nil
	return q
}

// Len returns the number of queued values.
func (p *Pipe) Len() int {
	return len(p.q)
}

// Last returns the last value pushed, whether it has been consumed or not.
func (p *Pipe) Last() (Cell, bool) {
	return p.last, p.pushes > 0
}

// Pushes returns the number of values pushed since the pipe was created.
func (p *Pipe) Pushes() uint64 {
	return p.pushes
}
