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

// Package config resolves client configuration from the environment.
// Command line flags may override any of these values after Read().
package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultAPIEndpoint is used when ORCHESTRATOR_API is unset.
	DefaultAPIEndpoint = "http://localhost:3000"
	// DefaultInstancePort is assumed when an instance indicator carries no port.
	DefaultInstancePort = 3306
	// DefaultDowntimeDuration applies to begin-downtime when --duration is not given.
	DefaultDowntimeDuration = "10m"
)

// Configuration holds the resolved runtime settings of a single invocation.
type Configuration struct {
	// APIEndpoint is the base URL of the orchestrator service. A missing
	// /api suffix is appended by the API client.
	APIEndpoint string
	// DefaultInstancePort is the port assumed for portless instance indicators.
	DefaultInstancePort int
	// RequestTimeout bounds a single API call. Zero means no timeout, which
	// matches the behavior of the legacy client.
	RequestTimeout time.Duration
}

var v = viper.New()

func init() {
	v.SetDefault("api", DefaultAPIEndpoint)
	v.SetDefault("default-port", DefaultInstancePort)
	v.SetDefault("request-timeout", time.Duration(0))
	_ = v.BindEnv("api", "ORCHESTRATOR_API")
	_ = v.BindEnv("default-port", "ORCHESTRATOR_DEFAULT_PORT")
	_ = v.BindEnv("request-timeout", "ORCHESTRATOR_CLIENT_REQUEST_TIMEOUT")
}

// Read resolves a Configuration from environment variables and defaults.
func Read() *Configuration {
	return &Configuration{
		APIEndpoint:         v.GetString("api"),
		DefaultInstancePort: v.GetInt("default-port"),
		RequestTimeout:      v.GetDuration("request-timeout"),
	}
}
