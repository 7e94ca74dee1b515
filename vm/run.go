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

// Step decodes and executes the instruction at PC.
//
// Calling Step on a Halted machine is a no-op. On a Waiting machine, Step
// retries the pending Input instruction: the machine goes back to Running if a
// value is now available, or stays Waiting, with its memory and PC untouched.
//
// If the instruction faults, the machine switches to the Faulted status and
// the fault is returned. This and any later call to Step will return the same
// error.
func (i *Instance) Step() (err error) {
	switch i.Status {
	case Halted:
		return nil
	case Faulted:
		return i.err
	}
	pc := i.PC
	defer func() {
		if e := recover(); e != nil {
			ae, ok := e.(*AddressError)
			if !ok {
				panic(e)
			}
			ae.PC = pc
			err = i.fault(ae)
		}
	}()
	ins, err := Decode(i.Mem, pc)
	if err != nil {
		return i.fault(err)
	}
	prev := i.Status
	i.State = execute(i.State, ins, i.input, i.output)
	if i.Status != Waiting {
		i.insCount++
	}
	if i.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		i.log.WithFields(logrus.Fields{"pc": pc, "op": ins.Op}).Trace("step")
	}
	if i.Status != prev {
		i.log.WithFields(logrus.Fields{"pc": i.PC, "from": prev, "to": i.Status}).Debug("status change")
	}
	return nil
}

func (i *Instance) fault(e error) error {
	prev := i.Status
	i.Status = Faulted
	i.err = errors.Wrapf(e, "machine %s", i.name)
	i.log.WithFields(logrus.Fields{"pc": i.PC, "from": prev}).WithError(e).Debug("fault")
	return i.err
}

// Run executes instructions until the machine halts, blocks on an empty input
// pipe or faults. It returns true if the machine is Halted.
//
// A Waiting machine first retries its pending Input instruction, so Run can be
// called again after new values have been written to the input pipe. Calling
// Run on a Halted machine is a no-op.
func (i *Instance) Run() (halted bool, err error) {
	for i.Status != Halted {
		if err = i.Step(); err != nil {
			return false, err
		}
		if i.Status != Running {
			break
		}
	}
	return i.Status == Halted, nil
}
