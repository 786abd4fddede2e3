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

package api

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// TransportError indicates the request could not be completed: network
// failure, unreadable body, or a body that is not JSON. Never retried.
type TransportError struct {
	URL string
	Err error
}

func (transportError *TransportError) Error() string {
	return fmt.Sprintf("orchestrator API request failed: %s: %v", transportError.URL, transportError.Err)
}

func (transportError *TransportError) Unwrap() error {
	return transportError.Err
}

// RemoteOutcomeError is a failure reported by the service's outcome
// envelope. Message is the cleaned-up envelope message; Details, when
// present, is surfaced to the operator alongside it.
type RemoteOutcomeError struct {
	Message string
	Details gjson.Result
}

func (outcomeError *RemoteOutcomeError) Error() string {
	return outcomeError.Message
}

// HasDetails tells whether the envelope carried a non-null details payload.
func (outcomeError *RemoteOutcomeError) HasDetails() bool {
	return outcomeError.Details.Exists() && outcomeError.Details.Type != gjson.Null
}
