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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
	"golang.org/x/exp/slices"
)

const maxErrors = 10

// ErrAsm is the error type returned by Assemble. It is a list of errors in
// source order.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b strings.Builder
	for k, err := range e {
		if k > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

func isLabelName(s string) bool {
	for k, r := range s {
		if !(r == '_' || unicode.IsLetter(r) || k > 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return s != ""
}

var modeWeight = [...]vm.Cell{100, 1000, 10000}

type label struct {
	pos     scanner.Position
	address int
	uses    []int
}

type parser struct {
	i      vm.Memory
	pc     int
	end    int
	s      scanner.Scanner
	labels map[string]*label
	errs   ErrAsm
	// instruction being assembled
	ins  int
	op   vm.Opcode
	args int
	dat  bool
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	return p
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, struct {
			Pos scanner.Position
			Msg string
		}{pos, msg})
	}
}

func (p *parser) pos() scanner.Position {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	return pos
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make(vm.Memory, 64)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.end {
		p.end = p.pc
	}
}

func (p *parser) useLabel(name string) {
	l := p.labels[name]
	if l == nil {
		l = &label{pos: p.pos(), address: -1}
		p.labels[name] = l
	}
	l.uses = append(l.uses, p.pc)
}

// value writes an integer literal or label reference.
func (p *parser) value(s string) {
	if n, err := strconv.ParseInt(s, 10, strconv.IntSize); err == nil {
		p.write(vm.Cell(n))
		return
	}
	if !isLabelName(s) {
		p.error(p.pos(), "Invalid operand "+s)
		p.write(0)
		return
	}
	p.useLabel(s)
	p.write(0)
}

// isDest reports whether argument k of op is a write destination.
func isDest(op vm.Opcode, k int) bool {
	switch op {
	case vm.OpAdd, vm.OpMul, vm.OpLessThan, vm.OpEquals:
		return k == 2
	case vm.OpIn:
		return k == 0
	}
	return false
}

func (p *parser) operand(s string) {
	k := p.op.Arity() - p.args
	if strings.HasPrefix(s, "#") {
		if isDest(p.op, k) {
			p.error(p.pos(), "Immediate mode destination: "+s)
		}
		p.i[p.ins] += modeWeight[k]
		s = s[1:]
	}
	p.value(s)
	p.args--
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Memory, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(p.pos(), msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		s := p.s.TokenText()
		if tok != scanner.Ident {
			p.error(p.pos(), "Unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		switch {
		case s == "(":
			// skip comments
			for ; tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
		case p.dat:
			p.value(s)
			p.dat = false
		case p.args > 0:
			p.operand(s)
		case s[0] == ':':
			n := s[1:]
			if !isLabelName(n) {
				p.error(p.pos(), "Invalid label name: "+s)
				break
			}
			if l, ok := p.labels[n]; ok {
				if l.address != -1 {
					p.error(p.pos(), "Label redefinition: "+n+", previous definition here: "+l.pos.String())
					break
				}
				l.address, l.pos = p.pc, p.pos()
			} else {
				p.labels[n] = &label{pos: p.pos(), address: p.pc}
			}
		case s == ".dat":
			p.dat = true
		default:
			op, ok := opcodeIndex[s]
			if !ok {
				p.error(p.pos(), "Unknown mnemonic: "+s)
				break
			}
			p.ins, p.op, p.args = p.pc, op, op.Arity()
			p.write(vm.Cell(op))
		}
	}
	if p.args > 0 {
		p.error(p.pos(), fmt.Sprintf("Missing %d operand(s) for %s", p.args, p.op))
	}
	if p.dat {
		p.error(p.pos(), "Missing .dat value")
	}

	// write labels
	names := make([]string, 0, len(p.labels))
	for n := range p.labels {
		names = append(names, n)
	}
	slices.Sort(names)
	for _, n := range names {
		l := p.labels[n]
		if l.address == -1 {
			p.error(l.pos, "Undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.i[u] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	if p.end == 0 {
		return nil, ErrAsm{{p.s.Pos(), "Empty program"}}
	}
	return p.i[:p.end], nil
}
