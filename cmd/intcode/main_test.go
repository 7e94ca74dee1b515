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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// compares input with 8, outputs 1 if equal, 0 otherwise.
const eq8 = "3,9,8,9,10,9,4,9,99,-1,8"

func TestParseCells(t *testing.T) {
	c, err := parseCells("")
	require.NoError(t, err)
	assert.Empty(t, c)
	c, err = parseCells(" 1, -5,7 ")
	require.NoError(t, err)
	assert.Equal(t, []vm.Cell{1, -5, 7}, c)
	_, err = parseCells("1,,2")
	assert.Error(t, err)
}

func TestParsePatches(t *testing.T) {
	ps, err := parsePatches([]string{"1=12", "2=2, 3 = -1"})
	require.NoError(t, err)
	assert.Equal(t, []patch{{1, 12}, {2, 2}, {3, -1}}, ps)
	for _, bad := range []string{"12", "a=1", "1=b"} {
		_, err = parsePatches([]string{bad})
		assert.Error(t, err, bad)
	}
}

func newInstance(t *testing.T, src string, in ...vm.Cell) *vm.Instance {
	t.Helper()
	mem, err := vm.Parse(src)
	require.NoError(t, err)
	i, err := vm.New(mem, vm.Input(vm.NewPipe(in...)))
	require.NoError(t, err)
	return i
}

func TestRunInteractive(t *testing.T) {
	var out, prompt bytes.Buffer
	i := newInstance(t, eq8)
	err := runInteractive(i, strings.NewReader("\nfoo\n8\n"), bufio.NewWriter(&out), &prompt)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out.String())
	assert.Equal(t, "? ? not a number: \"foo\"\n? ", prompt.String())

	// queued input, no stdin needed
	out.Reset()
	i = newInstance(t, eq8, 7)
	require.NoError(t, runInteractive(i, strings.NewReader(""), bufio.NewWriter(&out), nil))
	assert.Equal(t, "0\n", out.String())

	// no prompt: bad values are errors
	i = newInstance(t, eq8)
	err = runInteractive(i, strings.NewReader("foo\n"), bufio.NewWriter(&out), nil)
	assert.Error(t, err)

	i = newInstance(t, eq8)
	err = runInteractive(i, strings.NewReader(""), bufio.NewWriter(&out), nil)
	assert.ErrorContains(t, err, "input exhausted")
	assert.Equal(t, vm.Waiting, i.Status)
}

func TestRunInteractive_fault(t *testing.T) {
	var out bytes.Buffer
	i := newInstance(t, "104,7,42")
	err := runInteractive(i, strings.NewReader(""), bufio.NewWriter(&out), nil)
	require.Error(t, err)
	assert.Equal(t, "7\n", out.String())
	assert.Equal(t, vm.Faulted, i.Status)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0644))
	return fn
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestIsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}

func TestCmdRun(t *testing.T) {
	fn := writeFile(t, "eq8.ic", eq8+"\n")
	out, err := execute(t, "", "run", fn, "--input", "8", "--patch", "10=9", "--dump")
	require.NoError(t, err)
	assert.Equal(t, "0\n3,9,8,9,10,9,4,9,99,0,9\n", out)
}

func TestCmdAmp(t *testing.T) {
	fn := writeFile(t, "amp.ic", "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0")
	out, err := execute(t, "", "amp", fn, "--format", "yaml")
	require.NoError(t, err)
	var r ampReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, fn, r.Program)
	assert.False(t, r.Feedback)
	assert.Equal(t, []vm.Cell{4, 3, 2, 1, 0}, r.Phases)
	assert.Equal(t, vm.Cell(43210), r.Signal)
	assert.NotEmpty(t, r.Elapsed)
}

func TestCmdAsmDisasm(t *testing.T) {
	src := writeFile(t, "double.asm", "in x mul x #2 x out x hlt :x .dat 0\n")
	out, err := execute(t, "", "asm", src)
	require.NoError(t, err)
	assert.Equal(t, "3,9,1002,9,2,9,4,9,99,0\n", out)

	fn := writeFile(t, "double.ic", out)
	out, err = execute(t, "", "disasm", fn)
	require.NoError(t, err)
	assert.Equal(t, "    0  in 9\n    2  mul 9 #2 9\n    6  out 9\n    8  hlt\n    9  .dat 0\n", out)
}

func TestSetupLogging_errors(t *testing.T) {
	_, err := execute(t, "", "disasm", "nonexistent", "--log-level", "loud")
	assert.ErrorContains(t, err, "log level")
}
