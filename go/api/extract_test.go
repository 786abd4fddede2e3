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
	"github.com/tidwall/gjson"
)

func TestExtractKey(t *testing.T) {
	{
		payload := gjson.Parse(`{"Key":{"Hostname":"h","Port":3306}}`)
		require.Equal(t, "h:3306", RenderKey(ExtractKey(payload)))
	}
	{
		payload := gjson.Parse(`{}`)
		require.Nil(t, ExtractKey(payload))
		require.Equal(t, "", RenderKey(ExtractKey(payload)))
	}
	{
		payload := gjson.Parse(`{"Key":"not an object"}`)
		require.Nil(t, ExtractKey(payload))
	}
}

func TestExtractPrimaryKey(t *testing.T) {
	payload := gjson.Parse(`{"Key":{"Hostname":"r","Port":3306},"MasterKey":{"Hostname":"p","Port":3307}}`)
	require.Equal(t, "p:3307", RenderKey(ExtractPrimaryKey(payload)))
	require.Equal(t, "r:3306", RenderKey(ExtractKey(payload)))
}

func TestExtractKeyField(t *testing.T) {
	payload := gjson.Parse(`{"SuccessorKey":{"Hostname":"s","Port":3306}}`)
	require.Equal(t, "s:3306", RenderKey(ExtractKeyField(payload, "SuccessorKey")))
	require.Nil(t, ExtractKeyField(payload, "Key"))
}

func TestExtractKeys(t *testing.T) {
	{
		// array of instance records
		payload := gjson.Parse(`[{"Key":{"Hostname":"r1","Port":3306}},{"Key":{"Hostname":"r2","Port":3306}}]`)
		keys := ExtractKeys(payload)
		require.Len(t, keys, 2)
		require.Equal(t, "r1:3306", keys[0].DisplayString())
		require.Equal(t, "r2:3306", keys[1].DisplayString())
	}
	{
		// array of bare keys
		payload := gjson.Parse(`[{"Hostname":"r1","Port":3306},{"Hostname":"r2","Port":3307}]`)
		keys := ExtractKeys(payload)
		require.Len(t, keys, 2)
		require.Equal(t, "r2:3307", keys[1].DisplayString())
	}
	{
		// object payload with an array Key field is unwrapped
		payload := gjson.Parse(`{"Key":[{"Hostname":"r1","Port":3306},{"Hostname":"r2","Port":3306}]}`)
		keys := ExtractKeys(payload)
		require.Len(t, keys, 2)
	}
	{
		payload := gjson.Parse(`[]`)
		require.Empty(t, ExtractKeys(payload))
	}
	{
		// malformed elements are skipped
		payload := gjson.Parse(`[{"Key":{"Hostname":"r1","Port":3306}},"noise",42]`)
		keys := ExtractKeys(payload)
		require.Len(t, keys, 1)
	}
}
