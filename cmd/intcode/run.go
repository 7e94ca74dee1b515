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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a program, reading input values from flags then stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := parseCells(cfg.GetString("input"))
		if err != nil {
			return errors.Wrap(err, "--input")
		}
		ps, err := parsePatches(cfg.GetStringSlice("patch"))
		if err != nil {
			return err
		}
		mem, err := vm.Load(args[0])
		if err != nil {
			return err
		}
		for _, p := range ps {
			if err = mem.Patch(p.addr, p.v); err != nil {
				return errors.Wrap(err, "patch")
			}
		}
		var prompt io.Writer
		if f, ok := cmd.InOrStdin().(*os.File); ok && isTerminal(f) {
			prompt = cmd.OutOrStdout()
		}
		i, err := vm.New(mem, vm.Input(vm.NewPipe(in...)), vm.Name(args[0]))
		if err != nil {
			return err
		}
		w := bufio.NewWriter(cmd.OutOrStdout())
		err = runInteractive(i, cmd.InOrStdin(), w, prompt)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"pc":     i.PC,
				"status": i.Status,
				"count":  i.InstructionCount(),
			}).Debug("machine state")
			return err
		}
		if cfg.GetBool("dump") {
			if err = i.Mem.Dump(w); err != nil {
				return err
			}
			w.WriteByte('\n')
		}
		return errors.Wrap(w.Flush(), "write failed")
	},
}

func init() {
	f := runCmd.Flags()
	f.String("input", "", "comma separated `values` queued as input before reading stdin")
	f.StringSlice("patch", nil, "set memory cells before running, as `addr=value` pairs")
	f.Bool("dump", false, "print memory after the program halts")
}

// runInteractive runs i until it halts, writing outputs to w one per line.
// Whenever i waits for input, a value is read from r. If prompt is not nil,
// a prompt is written to it before reading.
func runInteractive(i *vm.Instance, r io.Reader, w *bufio.Writer, prompt io.Writer) error {
	sc := bufio.NewScanner(r)
	for {
		halted, err := i.Run()
		for _, v := range i.Out().Drain() {
			fmt.Fprintln(w, v)
		}
		if err != nil {
			w.Flush()
			return err
		}
		if err = w.Flush(); err != nil {
			return errors.Wrap(err, "write failed")
		}
		if halted {
			return nil
		}
		v, err := readValue(sc, prompt)
		if err != nil {
			return errors.Wrapf(err, "pc=%d", i.PC)
		}
		i.Write(v)
	}
}

func readValue(sc *bufio.Scanner, prompt io.Writer) (vm.Cell, error) {
	for {
		if prompt != nil {
			io.WriteString(prompt, "? ")
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, errors.Wrap(err, "read input")
			}
			return 0, errors.New("input exhausted while machine is waiting")
		}
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			if prompt != nil {
				fmt.Fprintf(prompt, "not a number: %q\n", s)
				continue
			}
			return 0, errors.Wrap(err, "read input")
		}
		return vm.Cell(n), nil
	}
}
