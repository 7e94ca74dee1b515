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
	"os"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var asmCmd = &cobra.Command{
	Use:   "asm FILE",
	Short: "Assemble source code into a comma separated program",
	Long: `asm assembles FILE and writes the resulting program to stdout, or to the
file given with -o. See the documentation of package asm for the syntax.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open source")
		}
		defer f.Close()
		mem, err := asm.Assemble(args[0], f)
		if err != nil {
			return err
		}
		if out := cfg.GetString("output"); out != "" {
			return vm.Save(out, mem)
		}
		w := cmd.OutOrStdout()
		if err = mem.Dump(w); err != nil {
			return err
		}
		_, err = w.Write([]byte{'\n'})
		return errors.Wrap(err, "write failed")
	},
}

func init() {
	asmCmd.Flags().StringP("output", "o", "", "write the program to `file`")
}
