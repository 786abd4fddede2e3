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
	"github.com/tidwall/gjson"

	"github.com/openark/orchestrator-client/go/inst"
)

// Extractors are fail-soft projections over a response payload: a missing
// or malformed field yields nil/empty rather than an error, and rendering
// an absent key yields the empty string.

func keyFromResult(result gjson.Result) *inst.InstanceKey {
	if !result.IsObject() {
		return nil
	}
	hostname := result.Get("Hostname")
	if !hostname.Exists() {
		return nil
	}
	return &inst.InstanceKey{
		Hostname: hostname.String(),
		Port:     int(result.Get("Port").Int()),
	}
}

// ExtractKeyField projects a named instance-key field out of a payload.
func ExtractKeyField(payload gjson.Result, field string) *inst.InstanceKey {
	return keyFromResult(payload.Get(field))
}

// ExtractKey projects the Key field out of a payload.
func ExtractKey(payload gjson.Result) *inst.InstanceKey {
	return ExtractKeyField(payload, "Key")
}

// ExtractPrimaryKey projects the primary's key out of a payload. The wire
// field retains its legacy MasterKey name.
func ExtractPrimaryKey(payload gjson.Result) *inst.InstanceKey {
	return ExtractKeyField(payload, "MasterKey")
}

// ExtractKeys projects a list of instance keys out of an array payload.
// Elements may be bare keys or Key-wrapped objects (instance records). An
// object payload whose Key field is an array is unwrapped first.
func ExtractKeys(payload gjson.Result) []inst.InstanceKey {
	if payload.IsObject() {
		if wrapped := payload.Get("Key"); wrapped.IsArray() {
			payload = wrapped
		}
	}
	var keys []inst.InstanceKey
	payload.ForEach(func(_, element gjson.Result) bool {
		candidate := element.Get("Key")
		if !candidate.Exists() {
			candidate = element
		}
		if key := keyFromResult(candidate); key != nil {
			keys = append(keys, *key)
		}
		return true
	})
	return keys
}

// RenderKey formats a key as "hostname:port", or empty string when absent.
func RenderKey(key *inst.InstanceKey) string {
	if key == nil {
		return ""
	}
	return key.DisplayString()
}
