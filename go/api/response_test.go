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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResponseArray(t *testing.T) {
	response, err := ParseResponse([]byte(`[{"Key":{"Hostname":"h","Port":3306}}]`))
	require.NoError(t, err)
	require.Equal(t, ArrayShape, response.Shape)
	require.True(t, response.Payload.IsArray())
	require.NoError(t, response.Outcome())
}

func TestParseResponseOutcome(t *testing.T) {
	{
		response, err := ParseResponse([]byte(`{"Code":"OK","Message":"done","Details":{"Key":{"Hostname":"h","Port":3306}}}`))
		require.NoError(t, err)
		require.Equal(t, OutcomeShape, response.Shape)
		require.Equal(t, "OK", response.Code)
		require.NoError(t, response.Outcome())
		require.Equal(t, "h", response.Payload.Get("Key.Hostname").String())
	}
	{
		response, err := ParseResponse([]byte(`{"Code":"ERROR","Message":"'boom'","Details":null}`))
		require.NoError(t, err)
		err = response.Outcome()
		require.Error(t, err)
		outcomeError, ok := err.(*RemoteOutcomeError)
		require.True(t, ok)
		require.Equal(t, "boom", outcomeError.Message)
		require.False(t, outcomeError.HasDetails())
	}
	{
		// classification is a substring match, case insensitive
		response, err := ParseResponse([]byte(`{"Code":"SoftError","Message":"  'no can do'  "}`))
		require.NoError(t, err)
		err = response.Outcome()
		require.Error(t, err)
		require.Equal(t, "no can do", err.Error())
	}
	{
		response, err := ParseResponse([]byte(`{"Code":"ERROR","Message":"bad instance","Details":{"Hint":"check hostname"}}`))
		require.NoError(t, err)
		err = response.Outcome()
		require.Error(t, err)
		outcomeError, ok := err.(*RemoteOutcomeError)
		require.True(t, ok)
		require.True(t, outcomeError.HasDetails())
	}
}

func TestParseResponsePlainObject(t *testing.T) {
	response, err := ParseResponse([]byte(`{"Key":{"Hostname":"h","Port":3306},"ClusterName":"c1"}`))
	require.NoError(t, err)
	require.Equal(t, ObjectShape, response.Shape)
	require.NoError(t, response.Outcome())
	require.Equal(t, "c1", response.Payload.Get("ClusterName").String())
}

func TestParseResponseInvalid(t *testing.T) {
	_, err := ParseResponse([]byte(`<html>not json</html>`))
	require.Error(t, err)
}
