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

// Package api implements the HTTP gateway to the orchestrator service:
// URL construction, the single GET exchange per command, response shape
// discrimination and outcome classification.
package api

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/openark/orchestrator-client/go/log"
)

// Client issues GET requests against an orchestrator API endpoint.
// All operations ride on GET: the service triggers state changes as a side
// effect, and the legacy protocol is kept as is for compatibility.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base address. A zero timeout
// means no timeout, matching legacy behavior.
func NewClient(baseAddress string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    NormalizeBaseURL(baseAddress),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NormalizeBaseURL appends the /api suffix to a base address unless already
// present, first stripping one trailing slash. The operation is idempotent:
// "http://x", "http://x/" and "http://x/api/" all map to "http://x/api".
func NormalizeBaseURL(baseAddress string) string {
	baseAddress = strings.TrimSuffix(baseAddress, "/")
	if !strings.HasSuffix(baseAddress, "/api") {
		baseAddress = baseAddress + "/api"
	}
	return baseAddress
}

// BaseURL returns the normalized API base this client talks to.
func (client *Client) BaseURL() string {
	return client.baseURL
}

// Call issues a single GET on the path assembled from the given segments and
// query parameters, and returns the classified response. A failure outcome
// reported by the service surfaces as *RemoteOutcomeError; anything
// preventing a parsed response surfaces as *TransportError.
func (client *Client) Call(params url.Values, pathSegments ...string) (*Response, error) {
	requestURL := client.baseURL + "/" + strings.Join(pathSegments, "/")
	if len(params) > 0 {
		requestURL = requestURL + "?" + params.Encode()
	}

	httpResponse, err := client.httpClient.Get(requestURL)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: err}
	}
	defer httpResponse.Body.Close()

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: err}
	}
	log.Infof("GET %s: HTTP %d, %d bytes", requestURL, httpResponse.StatusCode, len(body))

	response, err := ParseResponse(body)
	if err != nil {
		return nil, &TransportError{URL: requestURL, Err: err}
	}
	if err := response.Outcome(); err != nil {
		return nil, err
	}
	return response, nil
}
