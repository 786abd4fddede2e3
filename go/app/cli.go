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

// Package app dispatches a single command against the orchestrator API and
// translates the response into the exact plaintext the native orchestrator
// CLI would have produced.
package app

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/openark/orchestrator-client/go/api"
	"github.com/openark/orchestrator-client/go/inst"
	"github.com/openark/orchestrator-client/go/log"
)

// CommandRequest carries the full parameter set of one invocation. It is
// built once from command line flags and never mutated. Which fields must be
// non-empty is decided per command by its binding, not globally.
type CommandRequest struct {
	Command       string
	Instance      string
	Destination   string
	Alias         string
	Owner         string
	Reason        string
	Duration      string
	PromotionRule string
	Pool          string
	Hostname      string
}

// MissingParameterError indicates a parameter required by the selected
// command was empty. Raised before any network I/O.
type MissingParameterError struct {
	Command string
	Name    string
}

func (missingError *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing --%s value", missingError.Command, missingError.Name)
}

// UnsupportedCommandError indicates the command is not in the dispatch table.
type UnsupportedCommandError struct {
	Command string
}

func (unsupportedError *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("Unknown command: %s", unsupportedError.Command)
}

// Cli executes a single command: dispatch, one API exchange (or none for
// local commands), output assembly. Command output goes to out; a failure
// outcome's detail payload goes to errOut, and the returned error carries
// the message. The slave->replica rewrite on the command name keeps legacy
// spellings working.
func Cli(client *api.Client, request *CommandRequest, defaultPort int, out, errOut io.Writer) error {
	command := strings.ReplaceAll(request.Command, "slave", "replica")
	if command == "help" {
		fmt.Fprintln(out, commandsListing())
		return nil
	}
	binding, ok := commandBindings[command]
	if !ok {
		return &UnsupportedCommandError{Command: request.Command}
	}
	if binding.output == outputAPIBase {
		fmt.Fprintln(out, client.BaseURL())
		return nil
	}

	pathSegments, params, err := expandBinding(command, binding, request, defaultPort)
	if err != nil {
		return err
	}
	log.Infof("%s: GET %s", command, strings.Join(pathSegments, "/"))

	response, err := client.Call(params, pathSegments...)
	if err != nil {
		var outcomeError *api.RemoteOutcomeError
		if errors.As(err, &outcomeError) && outcomeError.HasDetails() {
			fmt.Fprintln(errOut, outcomeError.Details.Raw)
		}
		return err
	}
	renderOutput(binding, response.Payload, out)
	return nil
}

// KnownCommands returns the sorted list of supported command names.
func KnownCommands() []string {
	commands := make([]string, 0, len(commandBindings))
	for command := range commandBindings {
		commands = append(commands, command)
	}
	sort.Strings(commands)
	return commands
}

func commandsListing() string {
	return strings.Join(KnownCommands(), "\n")
}

// expandBinding materializes a binding's path and query templates from the
// request. An empty value for a required placeholder aborts the command.
func expandBinding(command string, binding commandBinding, request *CommandRequest, defaultPort int) (pathSegments []string, params url.Values, err error) {
	for _, segment := range strings.Split(binding.path, "/") {
		name, optional := placeholderName(segment)
		if name == "" {
			pathSegments = append(pathSegments, segment)
			continue
		}
		value := pathValue(name, request, defaultPort)
		if value == "" {
			if optional {
				continue
			}
			return nil, nil, &MissingParameterError{Command: command, Name: flagName(name)}
		}
		pathSegments = append(pathSegments, value)
	}

	if binding.query != "" {
		params = url.Values{}
		for _, pair := range strings.Split(binding.query, "&") {
			key, template, found := strings.Cut(pair, "=")
			if !found {
				continue
			}
			name, _ := placeholderName(template)
			params.Set(key, rawValue(name, request))
		}
	}
	return pathSegments, params, nil
}

// placeholderName recognizes "{name}" and "{name?}" segments; anything else
// is a literal and yields "".
func placeholderName(segment string) (name string, optional bool) {
	if !strings.HasPrefix(segment, "{") || !strings.HasSuffix(segment, "}") {
		return "", false
	}
	name = segment[1 : len(segment)-1]
	if strings.HasSuffix(name, "?") {
		return name[:len(name)-1], true
	}
	return name, false
}

// pathValue resolves a placeholder to its path form. Instance indicators
// become "host/port" pairs and slide into the path unescaped; free-text
// parameters are path-escaped. {cluster} takes the alias when given, else
// the instance indicator, either being a valid cluster hint.
func pathValue(name string, request *CommandRequest, defaultPort int) string {
	switch name {
	case "instance":
		return inst.NormalizeHostport(request.Instance, defaultPort)
	case "destination":
		return inst.NormalizeHostport(request.Destination, defaultPort)
	case "cluster":
		if request.Alias != "" {
			return url.PathEscape(request.Alias)
		}
		return inst.NormalizeHostport(request.Instance, defaultPort)
	default:
		return url.PathEscape(rawValue(name, request))
	}
}

// rawValue resolves a placeholder to the parameter as typed, for query
// string use; url.Values takes care of the percent-encoding.
func rawValue(name string, request *CommandRequest) string {
	switch name {
	case "instance", "rawInstance":
		return request.Instance
	case "destination":
		return request.Destination
	case "cluster":
		return request.Alias
	case "owner":
		return request.Owner
	case "reason":
		return request.Reason
	case "duration":
		return request.Duration
	case "promotionRule":
		return request.PromotionRule
	case "pool":
		return request.Pool
	case "hostname":
		return request.Hostname
	}
	return ""
}

// flagName maps a placeholder to the command line flag reported on a
// missing-parameter failure.
func flagName(name string) string {
	switch name {
	case "cluster":
		return "alias"
	case "promotionRule":
		return "promotion-rule"
	case "rawInstance":
		return "instance"
	}
	return name
}

func renderOutput(binding commandBinding, payload gjson.Result, out io.Writer) {
	switch binding.output {
	case outputKey:
		field := binding.field
		if field == "" {
			field = "Key"
		}
		if rendered := api.RenderKey(api.ExtractKeyField(payload, field)); rendered != "" {
			fmt.Fprintln(out, rendered)
		}
	case outputPrimaryKey:
		if rendered := api.RenderKey(api.ExtractPrimaryKey(payload)); rendered != "" {
			fmt.Fprintln(out, rendered)
		}
	case outputPair:
		fmt.Fprintf(out, "%s<%s\n", api.RenderKey(api.ExtractKey(payload)), api.RenderKey(api.ExtractPrimaryKey(payload)))
	case outputKeys:
		for _, key := range api.ExtractKeys(payload) {
			fmt.Fprintln(out, key.DisplayString())
		}
	case outputField:
		if field := payload.Get(binding.field); field.Exists() {
			fmt.Fprintln(out, field.String())
		}
	case outputRaw:
		switch {
		case payload.Type == gjson.String:
			fmt.Fprintln(out, payload.String())
		case payload.Exists() && payload.Type != gjson.Null:
			fmt.Fprintln(out, payload.Raw)
		}
	case outputStrings:
		payload.ForEach(func(_, element gjson.Result) bool {
			fmt.Fprintln(out, element.String())
			return true
		})
	case outputClustersInfo:
		payload.ForEach(func(_, element gjson.Result) bool {
			fmt.Fprintf(out, "%s\t%s\n", element.Get("ClusterName").String(), element.Get("ClusterAlias").String())
			return true
		})
	case outputAnalysis:
		payload.ForEach(func(_, element gjson.Result) bool {
			fmt.Fprintf(out, "%s (cluster %s): %s\n",
				api.RenderKey(api.ExtractKeyField(element, "AnalyzedInstanceKey")),
				element.Get("ClusterDetails.ClusterName").String(),
				element.Get("Analysis").String())
			return true
		})
	}
}
