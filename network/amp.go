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
	"golang.org/x/exp/slices"
)

// Amplify runs one amplifier network built from mem and phases, sends a 0
// signal to the first machine and returns the last value output by the last
// machine once all machines have halted. If feedback is true, the machines are
// wired as a ring, otherwise as a chain.
func Amplify(mem vm.Memory, phases []vm.Cell, feedback bool, opts ...Option) (vm.Cell, error) {
	newNet := NewChain
	if feedback {
		newNet = NewRing
	}
	nw, err := newNet(mem, phases, opts...)
	if err != nil {
		return 0, err
	}
	nw.Seed(0)
	if err = nw.Run(); err != nil {
		return 0, errors.Wrapf(err, "phases %v", phases)
	}
	v, ok := nw.Result()
	if !ok {
		return 0, errors.Errorf("phases %v: no output", phases)
	}
	return v, nil
}

// BestPhases tries every permutation of values as phase settings and returns
// the one producing the highest signal. Ties go to the first permutation in
// the order of Permutations.
func BestPhases(mem vm.Memory, values []vm.Cell, feedback bool, opts ...Option) (best []vm.Cell, signal vm.Cell, err error) {
	if len(values) == 0 {
		return nil, 0, errors.New("no phase values")
	}
	for _, phases := range Permutations(values) {
		v, err := Amplify(mem, phases, feedback, opts...)
		if err != nil {
			return nil, 0, err
		}
		if best == nil || v > signal {
			best, signal = phases, v
		}
	}
	return best, signal, nil
}

// Permutations returns all permutations of values, generated with Heap's
// algorithm. The first permutation is values itself.
func Permutations(values []vm.Cell) [][]vm.Cell {
	v := slices.Clone(values)
	c := make([]int, len(v))
	perms := [][]vm.Cell{slices.Clone(v)}
	for i := 0; i < len(v); {
		if c[i] < i {
			if i%2 == 0 {
				v[0], v[i] = v[i], v[0]
			} else {
				v[c[i]], v[i] = v[i], v[c[i]]
			}
			perms = append(perms, slices.Clone(v))
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
	return perms
}
