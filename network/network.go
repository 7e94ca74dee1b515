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

package network

import (
	"fmt"

	"github.com/db47h/intcode/vm"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Network is a set of machines wired through shared pipes.
type Network struct {
	machines  []*vm.Instance
	pipes     []*vm.Pipe
	ring      bool
	maxRounds int
	rounds    int
	vmOpts    []vm.Option
	id        uuid.UUID
	log       *logrus.Entry
}

// Option interface
type Option func(*Network) error

// MaxRounds sets a limit on the number of scheduling rounds. Run fails once
// the limit is reached. The default is 0, no limit.
//
// The limit is only checked between rounds. A machine that loops forever
// without waiting for input never gives control back to the scheduler, so
// neither MaxRounds nor deadlock detection can stop it.
func MaxRounds(n int) Option {
	return func(nw *Network) error {
		if n < 0 {
			return errors.Errorf("invalid round limit %d", n)
		}
		nw.maxRounds = n
		return nil
	}
}

// Logger sets the log entry used as a base for the network logs. Machines
// built by NewChain and NewRing log to the same entry unless MachineOptions
// says otherwise.
func Logger(l *logrus.Entry) Option {
	return func(nw *Network) error {
		if l == nil {
			return errors.New("nil logger")
		}
		nw.log = l
		return nil
	}
}

// MachineOptions sets extra options for the machines built by NewChain and
// NewRing. They are applied after the pipes are connected and must not change
// them.
func MachineOptions(opts ...vm.Option) Option {
	return func(nw *Network) error {
		nw.vmOpts = append(nw.vmOpts, opts...)
		return nil
	}
}

// MachineError is the error returned by Run when a machine faults.
type MachineError struct {
	Index int // position of the machine in the network
	Err   error
}

func (e *MachineError) Error() string {
	return fmt.Sprintf("machine #%d: %v", e.Index, e.Err)
}

// Cause returns the fault, so that errors.Cause(err) on the error returned by
// Run yields a *vm.DecodeError or *vm.AddressError.
func (e *MachineError) Cause() error { return e.Err }

// Unwrap returns the machine fault.
func (e *MachineError) Unwrap() error { return e.Err }

// DeadlockError is returned by Run when a full round completes without any
// machine making progress while some of them have not halted.
type DeadlockError struct {
	Round   int   // round number, starting at 1
	Waiting []int // indices of the machines that have not halted
}

func (e *DeadlockError) Error() string {
	return fmt.Sprintf("deadlock in round %d, waiting machines: %v", e.Round, e.Waiting)
}

func newNetwork(opts []Option) (*Network, error) {
	nw := &Network{id: uuid.New()}
	for _, opt := range opts {
		if err := opt(nw); err != nil {
			return nil, err
		}
	}
	if nw.log == nil {
		nw.log = logrus.NewEntry(logrus.StandardLogger())
	}
	nw.log = nw.log.WithField("run", nw.id.String())
	return nw, nil
}

// New returns a network of already wired machines. Machines are scheduled in
// the given order. The network is a ring if the output pipe of the last
// machine is the input pipe of the first one.
func New(machines []*vm.Instance, opts ...Option) (*Network, error) {
	if len(machines) == 0 {
		return nil, errors.New("empty network")
	}
	for k, m := range machines {
		if m == nil {
			return nil, errors.Errorf("nil machine #%d", k)
		}
	}
	nw, err := newNetwork(opts)
	if err != nil {
		return nil, err
	}
	nw.machines = machines
	seen := make(map[*vm.Pipe]bool)
	for _, m := range machines {
		for _, p := range [...]*vm.Pipe{m.In(), m.Out()} {
			if !seen[p] {
				seen[p] = true
				nw.pipes = append(nw.pipes, p)
			}
		}
	}
	nw.ring = machines[len(machines)-1].Out() == machines[0].In()
	return nw, nil
}

// NewChain builds a chain of len(phases) machines, each running its own copy
// of mem. Machine k reads from pipe k and writes to pipe k+1. Pipe k is primed
// with phases[k]. The output pipe of the last machine is the network's Sink.
func NewChain(mem vm.Memory, phases []vm.Cell, opts ...Option) (*Network, error) {
	return build(mem, phases, false, opts)
}

// NewRing is like NewChain, but the last machine writes to the input pipe of the
// first one.
func NewRing(mem vm.Memory, phases []vm.Cell, opts ...Option) (*Network, error) {
	return build(mem, phases, true, opts)
}

func build(mem vm.Memory, phases []vm.Cell, ring bool, opts []Option) (*Network, error) {
	if len(phases) == 0 {
		return nil, errors.New("empty network")
	}
	nw, err := newNetwork(opts)
	if err != nil {
		return nil, err
	}
	n := len(phases)
	// pipes first, then the machines that share them.
	np := n + 1
	if ring {
		np = n
	}
	nw.pipes = make([]*vm.Pipe, np)
	for k := range nw.pipes {
		nw.pipes[k] = vm.NewPipe()
	}
	for k, phase := range phases {
		nw.pipes[k].Push(phase)
	}
	nw.ring = ring
	nw.machines = make([]*vm.Instance, n)
	for k := range nw.machines {
		mopts := []vm.Option{
			vm.Name(string(rune('A' + k%26))),
			vm.Logger(nw.log),
			vm.Input(nw.pipes[k]),
			vm.Output(nw.pipes[(k+1)%np]),
		}
		m, err := vm.New(mem.Clone(), append(mopts, nw.vmOpts...)...)
		if err != nil {
			return nil, errors.Wrapf(err, "machine #%d", k)
		}
		nw.machines[k] = m
	}
	return nw, nil
}

// ID returns the unique identifier of the network, also used as the "run"
// field of its log entries.
func (nw *Network) ID() uuid.UUID {
	return nw.id
}

// Machines returns the machines of the network in scheduling order.
func (nw *Network) Machines() []*vm.Instance {
	return nw.machines
}

// Ring reports whether the network is a feedback ring.
func (nw *Network) Ring() bool {
	return nw.ring
}

// Rounds returns the number of scheduling rounds run so far.
func (nw *Network) Rounds() int {
	return nw.rounds
}

// Seed writes v to the input pipe of the first machine.
func (nw *Network) Seed(v vm.Cell) {
	nw.machines[0].Write(v)
}

// Sink returns the output pipe of the last machine. In a ring, this is also
// the input pipe of the first machine.
func (nw *Network) Sink() *vm.Pipe {
	return nw.machines[len(nw.machines)-1].Out()
}

// Result returns the last value output by the last machine. The second return
// value is false if that machine never wrote anything.
func (nw *Network) Result() (vm.Cell, bool) {
	return nw.machines[len(nw.machines)-1].LastOutput()
}
