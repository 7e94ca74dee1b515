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

// Package network wires Intcode machines into chains and feedback rings and
// schedules them cooperatively.
//
// Machines in a network share pipes: the output pipe of machine k is the input
// pipe of machine k+1. In a ring, the output of the last machine also feeds the
// first one. Run drives every machine in wiring order to its next block point,
// and repeats full rounds until all machines have halted. A round in which no
// machine makes progress while some are still waiting is a deadlock and is
// reported as a *DeadlockError.
//
// The amplifier helpers build one network per phase setting. Each machine's
// input is primed with its phase before the first signal is sent to the first
// machine.
package network
