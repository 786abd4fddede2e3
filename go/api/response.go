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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Shape discriminates the top-level form of an orchestrator API response.
type Shape int

const (
	// ArrayShape is a bare JSON array, as returned by list endpoints.
	ArrayShape Shape = iota
	// OutcomeShape is the {Code, Message, Details} envelope returned by
	// action endpoints.
	OutcomeShape
	// ObjectShape is any other JSON object, e.g. an instance lookup,
	// inspected directly for Key, MasterKey, ClusterName and the like.
	ObjectShape
)

// Response is a parsed API response.
type Response struct {
	Shape Shape
	Raw   []byte

	// Code, Message and Details are populated for OutcomeShape only.
	Code    string
	Message string
	Details gjson.Result

	// Payload is what a successful command extracts its output from:
	// Details for outcome responses, the whole value otherwise.
	Payload gjson.Result
}

// ParseResponse classifies a response body per its top-level JSON form.
// A body that is not valid JSON yields an error; the transport layer wraps
// it as a TransportError.
func ParseResponse(body []byte) (*Response, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("response is not valid JSON: %s", abbreviate(body))
	}
	parsed := gjson.ParseBytes(body)
	response := &Response{Raw: body}
	switch {
	case parsed.IsArray():
		response.Shape = ArrayShape
		response.Payload = parsed
	case parsed.Get("Code").Exists():
		response.Shape = OutcomeShape
		response.Code = parsed.Get("Code").String()
		response.Message = parsed.Get("Message").String()
		response.Details = parsed.Get("Details")
		response.Payload = response.Details
	default:
		response.Shape = ObjectShape
		response.Payload = parsed
	}
	return response, nil
}

// Outcome inspects the response for a failure signal. Array and plain-object
// responses carry none and always succeed. An outcome envelope fails iff its
// code contains "ERROR", case insensitively.
func (response *Response) Outcome() error {
	if response.Shape != OutcomeShape {
		return nil
	}
	if !strings.Contains(strings.ToUpper(response.Code), "ERROR") {
		return nil
	}
	message := strings.TrimSpace(response.Message)
	message = strings.Trim(message, "'")
	message = strings.TrimSpace(message)
	return &RemoteOutcomeError{Message: message, Details: response.Details}
}

func abbreviate(body []byte) string {
	const maxLen = 128
	if len(body) <= maxLen {
		return string(body)
	}
	return string(body[:maxLen]) + "..."
}
