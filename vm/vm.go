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

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Cell is the raw type stored in a memory location.
type Cell int

// Status is the execution status of an Instance.
type Status int

// Machine status values.
const (
	Running Status = iota // ready to execute the next instruction
	Waiting               // blocked on an Input instruction with an empty pipe
	Halted                // executed a Halt instruction
	Faulted               // aborted by a DecodeError or AddressError
)

var statusNames = [...]string{"running", "waiting", "halted", "faulted"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// State is the resumable part of a machine: its status, memory and program
// counter.
type State struct {
	Status Status
	Mem    Memory
	PC     int // Program Counter (aka. Instruction Pointer)
}

// Instance represents an Intcode machine instance.
type Instance struct {
	State
	name     string
	input    *Pipe
	output   *Pipe
	insCount int64
	err      error
	log      *logrus.Entry
}

// ErrRewire is returned when trying to connect a pipe to a machine that has
// already executed instructions.
var ErrRewire = errors.New("pipes cannot be rewired on a started machine")

// Option interface
type Option func(*Instance) error

// Input connects the machine's input to the given pipe.
func Input(p *Pipe) Option {
	return func(i *Instance) error { return i.ConnectInput(p) }
}

// Output connects the machine's output to the given pipe.
func Output(p *Pipe) Option {
	return func(i *Instance) error { return i.ConnectOutput(p) }
}

// Name sets the name of the instance. It is used in error messages and as the
// "machine" field of log entries. The default is "vm".
func Name(name string) Option {
	return func(i *Instance) error { i.name = name; return nil }
}

// Logger sets the log entry used as a base for the instance logs. The default
// uses the logrus standard logger.
func Logger(l *logrus.Entry) Option {
	return func(i *Instance) error {
		if l == nil {
			return errors.New("nil logger")
		}
		i.log = l
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode machine instance.
//
// The machine uses mem as is, without copying it: it is modified in place as
// the program runs. Use Memory.Clone when running several instances of the
// same program.
//
// Unless connected to other pipes with the Input and Output options, the
// instance gets its own fresh input and output pipes.
func New(mem Memory, opts ...Option) (*Instance, error) {
	if len(mem) == 0 {
		return nil, errors.New("empty memory image")
	}
	i := &Instance{
		State: State{Status: Running, Mem: mem},
		name:  "vm",
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.input == nil {
		i.input = NewPipe()
	}
	if i.output == nil {
		i.output = NewPipe()
	}
	if i.log == nil {
		i.log = logrus.NewEntry(logrus.StandardLogger())
	}
	i.log = i.log.WithField("machine", i.name)
	return i, nil
}

// ConnectInput connects the machine's input to p. It fails with ErrRewire once
// the machine has started.
func (i *Instance) ConnectInput(p *Pipe) error {
	if p == nil {
		return errors.New("nil input pipe")
	}
	if i.started() {
		return ErrRewire
	}
	i.input = p
	return nil
}

// ConnectOutput connects the machine's output to p. It fails with ErrRewire
// once the machine has started.
func (i *Instance) ConnectOutput(p *Pipe) error {
	if p == nil {
		return errors.New("nil output pipe")
	}
	if i.started() {
		return ErrRewire
	}
	i.output = p
	return nil
}

func (i *Instance) started() bool {
	return i.insCount > 0 || i.Status != Running
}

// Name returns the instance name.
func (i *Instance) Name() string {
	return i.name
}

// In returns the pipe the machine reads its input from.
func (i *Instance) In() *Pipe {
	return i.input
}

// Out returns the pipe the machine writes its output to.
func (i *Instance) Out() *Pipe {
	return i.output
}

// Write queues v in the machine's input pipe.
func (i *Instance) Write(v Cell) {
	i.input.Push(v)
}

// LastOutput returns the last value written to the machine's output pipe. The
// second return value is false if nothing has been written yet.
func (i *Instance) LastOutput() (Cell, bool) {
	return i.output.Last()
}

// Err returns the fault that aborted the machine, if any.
func (i *Instance) Err() error {
	return i.err
}

// InstructionCount returns the number of instructions executed so far. Input
// instructions retried on an empty pipe are not counted.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
