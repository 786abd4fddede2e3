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

package inst

import (
	"fmt"
	"strings"
)

// InstanceKey is an instance indicator, identified by hostname and port
type InstanceKey struct {
	Hostname string
	Port     int
}

// Equals tests equality between this key and another key
func (instanceKey *InstanceKey) Equals(other *InstanceKey) bool {
	if other == nil {
		return false
	}
	return instanceKey.Hostname == other.Hostname && instanceKey.Port == other.Port
}

// IsValid uses simple heuristics to see whether this key represents an actual instance
func (instanceKey *InstanceKey) IsValid() bool {
	if instanceKey.Hostname == "_" {
		return false
	}
	return len(instanceKey.Hostname) > 0 && instanceKey.Port > 0
}

// StringCode returns an official string representation of this key
func (instanceKey *InstanceKey) StringCode() string {
	return fmt.Sprintf("%s:%d", instanceKey.Hostname, instanceKey.Port)
}

// DisplayString returns a user-friendly string representation of this key
func (instanceKey *InstanceKey) DisplayString() string {
	return instanceKey.StringCode()
}

// String returns a user-friendly string representation of this key
func (instanceKey InstanceKey) String() string {
	return instanceKey.StringCode()
}

// NormalizeHostport turns a raw instance indicator ("host" or "host:port")
// into the "host/port" path form used by the orchestrator API, defaulting
// the port when absent. A "host:port" indicator is split on the last colon.
// No validation of hostname syntax or port range takes place; the service
// is the authority on what resolves.
func NormalizeHostport(raw string, defaultPort int) string {
	if raw == "" {
		return ""
	}
	if i := strings.LastIndex(raw, ":"); i >= 0 {
		return raw[:i] + "/" + raw[i+1:]
	}
	return fmt.Sprintf("%s/%d", raw, defaultPort)
}
