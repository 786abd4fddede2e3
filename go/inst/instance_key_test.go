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
	"testing"

	"github.com/stretchr/testify/require"
)

var key1 = InstanceKey{Hostname: "host1", Port: 3306}

func TestInstanceKeyEquals(t *testing.T) {
	key := InstanceKey{Hostname: "host1", Port: 3306}
	require.True(t, key1.Equals(&key))

	key.Port = 3307
	require.False(t, key1.Equals(&key))
	require.False(t, key1.Equals(nil))
}

func TestInstanceKeyValid(t *testing.T) {
	require.True(t, key1.IsValid())
	{
		key := InstanceKey{Hostname: "_", Port: 3306}
		require.False(t, key.IsValid())
	}
	{
		key := InstanceKey{Hostname: "host1"}
		require.False(t, key.IsValid())
	}
}

func TestDisplayString(t *testing.T) {
	require.Equal(t, "host1:3306", key1.DisplayString())
	require.Equal(t, "host1:3306", key1.String())
}

func TestNormalizeHostport(t *testing.T) {
	{
		require.Equal(t, "a.com/3307", NormalizeHostport("a.com:3307", 3306))
	}
	{
		require.Equal(t, "a.com/3306", NormalizeHostport("a.com", 3306))
	}
	{
		require.Equal(t, "", NormalizeHostport("", 3306))
	}
	{
		// split happens on the last colon; everything else is forwarded verbatim
		require.Equal(t, "::1/3308", NormalizeHostport("::1:3308", 3306))
	}
	{
		// no validation of the port part takes place
		require.Equal(t, "a.com/abc", NormalizeHostport("a.com:abc", 3306))
	}
	{
		require.Equal(t, "a.com/3307", NormalizeHostport("a.com:3307", 3307))
	}
	{
		require.Equal(t, "a.com/3309", NormalizeHostport("a.com", 3309))
	}
}
