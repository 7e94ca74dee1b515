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
	"fmt"
	"io"
	"time"

	"github.com/db47h/intcode/network"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type ampReport struct {
	Program  string    `yaml:"program"`
	Feedback bool      `yaml:"feedback"`
	Phases   []vm.Cell `yaml:"phases"`
	Signal   vm.Cell   `yaml:"signal"`
	Elapsed  string    `yaml:"elapsed"`
}

func (r *ampReport) write(w io.Writer, format string) error {
	switch format {
	case "text":
		_, err := fmt.Fprintf(w, "phases: %v\nsignal: %d\nelapsed: %s\n", r.Phases, r.Signal, r.Elapsed)
		return errors.Wrap(err, "write failed")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encode report")
		}
		return errors.Wrap(enc.Close(), "encode report")
	default:
		return errors.Errorf("unknown report format %q", format)
	}
}

var ampCmd = &cobra.Command{
	Use:   "amp FILE",
	Short: "Find the phase settings that maximize an amplifier chain signal",
	Long: `amp runs a copy of the program for each phase setting permutation, wired as
a chain of amplifiers, and reports the permutation that yields the highest
signal. With --feedback the chain is closed into a ring and runs until all
amplifiers halt.

Phase values default to 0,1,2,3,4, or 5,6,7,8,9 with --feedback.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		feedback := cfg.GetBool("feedback")
		phases, err := parseCells(cfg.GetString("phases"))
		if err != nil {
			return errors.Wrap(err, "--phases")
		}
		if len(phases) == 0 {
			phases = []vm.Cell{0, 1, 2, 3, 4}
			if feedback {
				phases = []vm.Cell{5, 6, 7, 8, 9}
			}
		}
		format := cfg.GetString("format")
		if format != "text" && format != "yaml" {
			return errors.Errorf("unknown report format %q", format)
		}
		mem, err := vm.Load(args[0])
		if err != nil {
			return err
		}
		start := time.Now()
		best, signal, err := network.BestPhases(mem, phases, feedback, network.MaxRounds(cfg.GetInt("max-rounds")))
		if err != nil {
			return err
		}
		r := ampReport{
			Program:  args[0],
			Feedback: feedback,
			Phases:   best,
			Signal:   signal,
			Elapsed:  time.Since(start).String(),
		}
		return r.write(cmd.OutOrStdout(), format)
	},
}

func init() {
	f := ampCmd.Flags()
	f.Bool("feedback", false, "wire the amplifiers in a feedback loop")
	f.String("phases", "", "comma separated phase `values` to permute")
	f.String("format", "text", "report `format`: text or yaml")
	f.Int("max-rounds", 0, "abort a feedback loop after `n` scheduling rounds (0 means no limit)")
}
