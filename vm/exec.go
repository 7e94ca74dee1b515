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

// Executors. Each one takes the machine state and the decoded instruction at
// s.PC and returns the next state. Memory is updated in place. Only in and out
// touch a pipe.

func (s *State) operand(ins Instruction, k int) Cell {
	return s.Mem.Read(s.PC+1+k, ins.Mode(k))
}

// dest returns the address designated by parameter k. Destination parameters
// are never dereferenced twice, whatever their mode.
func (s *State) dest(k int) int {
	return int(s.Mem.Read(s.PC+1+k, Immediate))
}

func execute(s State, ins Instruction, in, out *Pipe) State {
	switch ins.Op {
	case OpAdd:
		return add(s, ins)
	case OpMul:
		return mul(s, ins)
	case OpIn:
		return input(s, ins, in)
	case OpOut:
		return output(s, ins, out)
	case OpJumpIfTrue:
		return jumpIfTrue(s, ins)
	case OpJumpIfFalse:
		return jumpIfFalse(s, ins)
	case OpLessThan:
		return lessThan(s, ins)
	case OpEquals:
		return equals(s, ins)
	case OpHalt:
		return halt(s)
	}
	panic(&DecodeError{PC: s.PC, Value: Cell(ins.Op)})
}

func add(s State, ins Instruction) State {
	a, b := s.operand(ins, 0), s.operand(ins, 1)
	s.Mem.Write(s.dest(2), a+b)
	s.PC += 4
	s.Status = Running
	return s
}

func mul(s State, ins Instruction) State {
	a, b := s.operand(ins, 0), s.operand(ins, 1)
	s.Mem.Write(s.dest(2), a*b)
	s.PC += 4
	s.Status = Running
	return s
}

// input checks the destination before consuming a value, so that a fault
// leaves the pipe untouched.
func input(s State, _ Instruction, in *Pipe) State {
	dst := s.Mem.check(s.dest(0))
	v, ok := in.Pop()
	if !ok {
		s.Status = Waiting
		return s
	}
	s.Mem.Write(dst, v)
	s.PC += 2
	s.Status = Running
	return s
}

func output(s State, ins Instruction, out *Pipe) State {
	out.Push(s.operand(ins, 0))
	s.PC += 2
	s.Status = Running
	return s
}

func jumpIfTrue(s State, ins Instruction) State {
	if s.operand(ins, 0) != 0 {
		s.PC = int(s.operand(ins, 1))
	} else {
		s.PC += 3
	}
	s.Status = Running
	return s
}

func jumpIfFalse(s State, ins Instruction) State {
	if s.operand(ins, 0) == 0 {
		s.PC = int(s.operand(ins, 1))
	} else {
		s.PC += 3
	}
	s.Status = Running
	return s
}

func lessThan(s State, ins Instruction) State {
	var v Cell
	if s.operand(ins, 0) < s.operand(ins, 1) {
		v = 1
	}
	s.Mem.Write(s.dest(2), v)
	s.PC += 4
	s.Status = Running
	return s
}

func equals(s State, ins Instruction) State {
	var v Cell
	if s.operand(ins, 0) == s.operand(ins, 1) {
		v = 1
	}
	s.Mem.Write(s.dest(2), v)
	s.PC += 4
	s.Status = Running
	return s
}

func halt(s State) State {
	s.Status = Halted
	return s
}
