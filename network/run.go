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
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type mark struct {
	status vm.Status
	pc     int
	count  int64
}

// progress is a snapshot of everything a round can change.
type progress struct {
	marks  []mark
	pushes uint64
}

func (nw *Network) snapshot(p *progress) {
	p.marks = p.marks[:0]
	p.pushes = 0
	for _, m := range nw.machines {
		p.marks = append(p.marks, mark{m.Status, m.PC, m.InstructionCount()})
	}
	for _, pp := range nw.pipes {
		p.pushes += pp.Pushes()
	}
}

func (p *progress) equal(q *progress) bool {
	if p.pushes != q.pushes || len(p.marks) != len(q.marks) {
		return false
	}
	for k := range p.marks {
		if p.marks[k] != q.marks[k] {
			return false
		}
	}
	return true
}

// Halted reports whether all machines have halted.
func (nw *Network) Halted() bool {
	for _, m := range nw.machines {
		if m.Status != vm.Halted {
			return false
		}
	}
	return true
}

func (nw *Network) waiting() []int {
	var w []int
	for k, m := range nw.machines {
		if m.Status != vm.Halted {
			w = append(w, k)
		}
	}
	return w
}

// Round runs every machine of the network once, in wiring order, until it
// halts or blocks on input. Halted machines are skipped.
func (nw *Network) Round() error {
	nw.rounds++
	for k, m := range nw.machines {
		if _, err := m.Run(); err != nil {
			return &MachineError{Index: k, Err: err}
		}
	}
	if nw.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		nw.log.WithFields(logrus.Fields{"round": nw.rounds, "waiting": nw.waiting()}).Trace("round")
	}
	return nil
}

// Run runs full rounds until all machines have halted.
//
// If a machine faults, Run stops immediately and returns a *MachineError. If a
// round completes with no pipe written to and no machine changing state while
// some machines have not halted, Run returns a *DeadlockError.
//
// Deadlocks are only detected between rounds, when every machine that has not
// halted is waiting for input. Run does not return if a machine runs forever
// without reading input.
func (nw *Network) Run() error {
	var before, after progress
	nw.snapshot(&before)
	for !nw.Halted() {
		if nw.maxRounds > 0 && nw.rounds >= nw.maxRounds {
			return errors.Errorf("no result after %d rounds", nw.rounds)
		}
		if err := nw.Round(); err != nil {
			nw.log.WithError(err).Debug("machine fault")
			return err
		}
		nw.snapshot(&after)
		if !nw.Halted() && after.equal(&before) {
			err := &DeadlockError{Round: nw.rounds, Waiting: nw.waiting()}
			nw.log.WithField("round", nw.rounds).Debug(err.Error())
			return err
		}
		before, after = after, before
	}
	nw.log.WithField("rounds", nw.rounds).Debug("network halted")
	return nil
}
