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

/*
Command intcode runs, assembles and disassembles Intcode programs.

Usage:

	intcode [command]

Available Commands:

	run     Run a program, reading input values from flags then stdin
	amp     Find the phase settings that maximize an amplifier chain signal
	disasm  Print a disassembly listing of a program
	asm     Assemble source code into a comma separated program

Global flags:

	--config string       config file (default $HOME/.intcode.yaml or ./.intcode.yaml)
	--env-file string     load environment variables from this file (default ".env")
	--log-level string    log level: panic, fatal, error, warn, info, debug or trace (default "warn")
	--log-format string   log format: text or json (default "text")
	--log-file string     write logs to this file instead of stderr, with rotation

Every flag can also be set from the config file or from an environment variable
prefixed with INTCODE_. Dashes become underscores: --log-level is INTCODE_LOG_LEVEL.

When run interactively, the run command prompts for input with "? " whenever the
program waits for a value. Outputs are written one per line.

Errors are printed to stderr and the command exits with status 1. With the log
level set to debug or trace, errors are printed along with a stack trace.
*/
package main
