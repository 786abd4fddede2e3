/*
   Copyright 2017 GitHub Inc.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/openark/orchestrator-client/go/cmd/orchestrator-client/cli"
)

func main() {
	args := append([]string{os.Args[0]}, transformArgsForPflag(cli.Main.Flags(), os.Args[1:])...)
	os.Args = args

	if err := cli.Main.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// transformArgsForPflag rewrites legacy single-dash long options
// ("-command relocate") into the double-dash form pflag expects. Plain
// shorthands, combined shorthands and everything after a bare "--" pass
// through untouched.
func transformArgsForPflag(fs *pflag.FlagSet, args []string) []string {
	result := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			result = append(result, args[i:]...)
			return result
		}
		result = append(result, transformArg(fs, arg))
	}
	return result
}

func transformArg(fs *pflag.FlagSet, arg string) string {
	if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
		return arg
	}
	name := arg[1:]
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	if len(name) <= 1 {
		return arg
	}
	// "-dn" style combined shorthands are not long option names;
	// leave anything that is not a known long flag alone.
	if fs.Lookup(name) == nil {
		return arg
	}
	return "-" + arg
}
