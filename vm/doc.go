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

// Package vm implements a resumable Intcode machine.
//
// An Instance owns a Memory image, a program counter and a status. It reads
// input values from a Pipe and writes output values to another Pipe. Pipes are
// unbounded FIFO queues that can be shared between instances, which is how
// several machines are chained together (see package network).
//
// Execution is cooperative: an Input instruction that finds its pipe empty
// does not block. Instead the machine switches to the Waiting status and leaves
// the PC on the Input instruction, so that the next call to Step or Run retries
// it. Once Halted, a machine never executes again and calls to Step or Run are
// no-ops.
//
// Faults (unknown opcodes or out of range memory accesses) stop the machine
// for good. The instance switches to the Faulted status and the error, a
// *DecodeError or *AddressError wrapped with github.com/pkg/errors, is returned
// by every subsequent call to Step or Run. Use errors.Cause to get at the
// original value.
package vm
