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
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func Test_transformArgsForPflag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("command", "", "")
	fs.StringP("instance", "i", "", "")
	fs.BoolP("debug", "d", true, "")
	fs.StringP("name", "n", "", "")

	tests := []struct {
		args        []string
		transformed []string
	}{
		{
			args:        []string{"--command=relocate", "--instance", "db1:3306", "-d"},
			transformed: []string{"--command=relocate", "--instance", "db1:3306", "-d"},
		},
		{
			args:        []string{"-command=relocate", "-instance", "db1:3306", "-d"},
			transformed: []string{"--command=relocate", "--instance", "db1:3306", "-d"},
		},
		{
			args:        []string{"--", "-command=relocate"},
			transformed: []string{"--", "-command=relocate"},
		},
		{
			args:        []string{"-dn"}, // combined shortopts
			transformed: []string{"-dn"},
		},
	}

	for _, tt := range tests {
		name := strings.Join(tt.args, " ")

		t.Run(name, func(t *testing.T) {
			got := transformArgsForPflag(fs, tt.args)
			assert.Equal(t, tt.transformed, got)
		})
	}
}
