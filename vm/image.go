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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/ewr"
	"github.com/pkg/errors"
)

// Parse parses a comma separated list of integers into a memory image.
// Whitespace around values is ignored.
func Parse(text string) (Memory, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("empty program")
	}
	fields := strings.Split(text, ",")
	mem := make(Memory, len(fields))
	for k, f := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, strconv.IntSize)
		if err != nil {
			return nil, errors.Wrapf(err, "cell %d", k)
		}
		mem[k] = Cell(n)
	}
	return mem, nil
}

// Load loads a memory image from a text file containing a comma separated list
// of integers.
func Load(fileName string) (Memory, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	mem, err := Parse(string(b))
	if err != nil {
		return nil, errors.Wrapf(err, "Load %s", fileName)
	}
	return mem, nil
}

// Dump writes mem as a comma separated list of integers to w.
func (m Memory) Dump(w io.Writer) error {
	ew := ewr.New(w)
	b := make([]byte, 0, 24)
	for k, v := range m {
		b = b[:0]
		if k > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		if _, err := ew.Write(b); err != nil {
			return err
		}
	}
	return ew.Err
}

// Save writes mem to the named file in the format read by Load. The file is
// removed if an error occurs.
func Save(fileName string, mem Memory) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if e := w.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "write failed")
		}
		if e := f.Close(); err == nil && e != nil {
			err = errors.Wrap(e, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	if err = mem.Dump(w); err != nil {
		return errors.Wrap(err, "save failed")
	}
	_, err = w.WriteString("\n")
	return errors.Wrap(err, "save failed")
}
