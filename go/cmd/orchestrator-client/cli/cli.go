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

package cli

import (
	"errors"
	"os/user"
	"time"

	"github.com/spf13/cobra"

	"github.com/openark/orchestrator-client/go/api"
	"github.com/openark/orchestrator-client/go/app"
	"github.com/openark/orchestrator-client/go/config"
	"github.com/openark/orchestrator-client/go/log"
)

var (
	command        string
	instance       string
	destination    string
	sibling        string
	alias          string
	owner          string
	reason         string
	duration       string
	promotionRule  string
	pool           string
	hostname       string
	apiEndpoint    string
	defaultPort    int
	requestTimeout time.Duration

	Main = &cobra.Command{
		Use:   "orchestrator-client",
		Short: "orchestrator-client issues topology management commands against an orchestrator service over its HTTP API.",
		Long: `orchestrator-client is a drop-in, HTTP-backed replacement for the orchestrator
command line interface. It requires no access to the orchestrator binary,
configuration or backing database; all it needs is the service's API address,
taken from --api or the ORCHESTRATOR_API environment variable.`,
		Example: `  orchestrator-client -c which-primary -i some.replica.com:3306
  orchestrator-client -c relocate -i some.replica.com -d another.server.com
  orchestrator-client -c begin-downtime -i some.server.com -o gromit -r "testing" --duration 20m`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func run(cmd *cobra.Command, args []string) error {
	defer log.Flush()

	configuration := config.Read()
	if cmd.Flags().Changed("api") {
		configuration.APIEndpoint = apiEndpoint
	}
	if cmd.Flags().Changed("default-port") {
		configuration.DefaultInstancePort = defaultPort
	}
	if cmd.Flags().Changed("request-timeout") {
		configuration.RequestTimeout = requestTimeout
	}

	if command == "" && len(args) > 0 {
		command = args[0]
	}
	if command == "" {
		return errors.New("no command given; use -c <command>, or run with --help for the flag listing")
	}
	if destination == "" {
		destination = sibling
	}
	if owner == "" {
		// Match the native CLI: default the maintenance owner to the OS user.
		if currentUser, err := user.Current(); err == nil {
			owner = currentUser.Username
		}
	}

	client := api.NewClient(configuration.APIEndpoint, configuration.RequestTimeout)
	request := &app.CommandRequest{
		Command:       command,
		Instance:      instance,
		Destination:   destination,
		Alias:         alias,
		Owner:         owner,
		Reason:        reason,
		Duration:      duration,
		PromotionRule: promotionRule,
		Pool:          pool,
		Hostname:      hostname,
	}
	return app.Cli(client, request, configuration.DefaultInstancePort, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func init() {
	flags := Main.Flags()
	flags.StringVarP(&command, "command", "c", "", "the operation to run, e.g. which-primary, relocate, begin-downtime")
	flags.StringVarP(&instance, "instance", "i", "", "instance indicated by the operation, as host or host:port")
	flags.StringVarP(&destination, "destination", "d", "", "destination instance of a relocation, as host or host:port")
	flags.StringVarP(&sibling, "sibling", "s", "", "synonym to --destination")
	flags.StringVarP(&alias, "alias", "a", "", "cluster alias, usable in place of --instance for cluster-scoped operations")
	flags.StringVarP(&owner, "owner", "o", "", "maintenance/downtime owner; defaults to the OS user")
	flags.StringVarP(&reason, "reason", "r", "", "maintenance/downtime reason")
	flags.StringVar(&duration, "duration", config.DefaultDowntimeDuration, "downtime duration, e.g. 40m or 4h")
	flags.StringVar(&promotionRule, "promotion-rule", "", "promotion rule for register-candidate: prefer, neutral or must_not")
	flags.StringVar(&pool, "pool", "", "pool name, for pool related commands")
	flags.StringVar(&hostname, "hostname", "", "unresolved hostname, for hostname-unresolve commands")
	flags.StringVar(&apiEndpoint, "api", "", "orchestrator API base URL; overrides ORCHESTRATOR_API")
	flags.IntVar(&defaultPort, "default-port", config.DefaultInstancePort, "port assumed when an instance indicator carries none")
	flags.DurationVar(&requestTimeout, "request-timeout", 0, "HTTP request timeout; 0 means none")
}
