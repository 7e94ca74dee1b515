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

package main

import (
	"strconv"
	"strings"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// parseCells parses a comma separated list of values. An empty string yields
// an empty list.
func parseCells(s string) ([]vm.Cell, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	m, err := vm.Parse(s)
	if err != nil {
		return nil, err
	}
	return []vm.Cell(m), nil
}

type patch struct {
	addr int
	v    vm.Cell
}

// parsePatches parses addr=value pairs. Each item may itself hold several
// comma separated pairs.
func parsePatches(items []string) ([]patch, error) {
	var ps []patch
	for _, item := range items {
		for _, f := range strings.Split(item, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			a, v, ok := strings.Cut(f, "=")
			if !ok {
				return nil, errors.Errorf("invalid patch %q: expected addr=value", f)
			}
			addr, err := strconv.Atoi(strings.TrimSpace(a))
			if err != nil {
				return nil, errors.Wrapf(err, "invalid patch address in %q", f)
			}
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return nil, errors.Wrapf(err, "invalid patch value in %q", f)
			}
			ps = append(ps, patch{addr, vm.Cell(n)})
		}
	}
	return ps, nil
}
