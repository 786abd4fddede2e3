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

package app

// outputMode selects how a command assembles its textual output from the
// response payload.
type outputMode int

const (
	// outputKey prints a single extracted key, "hostname:port". The key
	// field defaults to Key and may be overridden per binding (e.g.
	// SuccessorKey for recovery commands). Nothing is printed when absent.
	outputKey outputMode = iota
	// outputPrimaryKey prints the MasterKey field of the payload.
	outputPrimaryKey
	// outputPair prints "movedKey<newParentKey", the relocation format.
	outputPair
	// outputKeys prints a list of keys, one per line.
	outputKeys
	// outputField prints a named scalar payload field.
	outputField
	// outputRaw passes the payload through: JSON strings are printed
	// unquoted, anything else as raw JSON.
	outputRaw
	// outputStrings prints each element of a string array payload.
	outputStrings
	// outputClustersInfo prints "ClusterName\tClusterAlias" rows.
	outputClustersInfo
	// outputAnalysis prints replication analysis rows:
	// "host:port (cluster name): analysis".
	outputAnalysis
	// outputAPIBase prints the resolved API base URL; no request is made.
	outputAPIBase
)

// commandBinding fixes a command's endpoint path, query parameters and
// output assembly. Path templates use {param} placeholders; {instance} and
// {destination} expand to normalized host/port pairs, {cluster} to the
// alias or, failing that, the instance's host/port. A {param?} segment is
// dropped when the parameter is empty; any other empty placeholder is a
// missing-parameter failure, raised before any request is issued.
type commandBinding struct {
	path   string
	query  string // "key={param}&..." appended percent-encoded
	output outputMode
	field  string // field name for outputField; key field override for outputKey
}

// commandBindings is the dispatch table. Commands are data: each row binds a
// name to a path template and an output rule, and the handful of output
// modes above cover the entire surface. Lookup happens after the
// slave->replica rewrite, so legacy spellings land on the same rows.
var commandBindings = map[string]commandBinding{
	// Smart relocation
	"relocate":          {path: "relocate/{instance}/{destination}", output: outputPair},
	"relocate-replicas": {path: "relocate-replicas/{instance}/{destination}", output: outputKeys},
	"take-siblings":     {path: "take-siblings/{instance}", output: outputKey},
	"regroup-replicas":  {path: "regroup-replicas/{instance}", output: outputKey},

	// Classic file:pos relocation
	"move-up":           {path: "move-up/{instance}", output: outputPair},
	"move-up-replicas":  {path: "move-up-replicas/{instance}", output: outputKeys},
	"move-below":        {path: "move-below/{instance}/{destination}", output: outputPair},
	"move-equivalent":   {path: "move-equivalent/{instance}/{destination}", output: outputPair},
	"repoint":           {path: "repoint/{instance}/{destination}", output: outputPair},
	"repoint-replicas":  {path: "repoint-replicas/{instance}", output: outputKeys},
	"take-primary":      {path: "take-primary/{instance}", output: outputKey},
	"make-co-primary":   {path: "make-co-primary/{instance}", output: outputKey},
	"match":             {path: "match/{instance}/{destination}", output: outputPair},
	"match-up":          {path: "match-up/{instance}", output: outputPair},
	"match-replicas":    {path: "match-replicas/{instance}/{destination}", output: outputKeys},
	"match-up-replicas": {path: "match-up-replicas/{instance}", output: outputKeys},

	// GTID relocation
	"move-gtid":             {path: "move-gtid/{instance}/{destination}", output: outputPair},
	"move-replicas-gtid":    {path: "move-replicas-gtid/{instance}/{destination}", output: outputKeys},
	"regroup-replicas-gtid": {path: "regroup-replicas-gtid/{instance}", output: outputKey},

	// Replication control
	"skip-query":                {path: "skip-query/{instance}", output: outputKey},
	"start-replica":             {path: "start-replica/{instance}", output: outputKey},
	"stop-replica":              {path: "stop-replica/{instance}", output: outputKey},
	"stop-replica-nice":         {path: "stop-replica-nice/{instance}", output: outputKey},
	"restart-replica":           {path: "restart-replica/{instance}", output: outputKey},
	"reset-replica":             {path: "reset-replica/{instance}", output: outputKey},
	"detach-replica":            {path: "detach-replica/{instance}", output: outputKey},
	"reattach-replica":          {path: "reattach-replica/{instance}", output: outputKey},
	"enable-gtid":               {path: "enable-gtid/{instance}", output: outputKey},
	"disable-gtid":              {path: "disable-gtid/{instance}", output: outputKey},
	"gtid-errant-reset-primary": {path: "gtid-errant-reset-primary/{instance}", output: outputKey},
	"enable-semi-sync-primary":  {path: "enable-semi-sync-primary/{instance}", output: outputKey},
	"disable-semi-sync-primary": {path: "disable-semi-sync-primary/{instance}", output: outputKey},
	"enable-semi-sync-replica":  {path: "enable-semi-sync-replica/{instance}", output: outputKey},
	"disable-semi-sync-replica": {path: "disable-semi-sync-replica/{instance}", output: outputKey},
	"set-read-only":             {path: "set-read-only/{instance}", output: outputKey},
	"set-writeable":             {path: "set-writeable/{instance}", output: outputKey},
	"flush-binary-logs":         {path: "flush-binary-logs/{instance}", output: outputKey},

	// Information
	"which-api":               {output: outputAPIBase},
	"which-instance":          {path: "instance/{instance}", output: outputKey},
	"which-primary":           {path: "instance/{instance}", output: outputPrimaryKey},
	"which-replicas":          {path: "instance-replicas/{instance}", output: outputKeys},
	"which-cluster":           {path: "cluster-info/{cluster}", output: outputField, field: "ClusterName"},
	"which-cluster-alias":     {path: "cluster-info/{cluster}", output: outputField, field: "ClusterAlias"},
	"which-cluster-domain":    {path: "cluster-info/{cluster}", output: outputField, field: "ClusterDomain"},
	"which-cluster-primary":   {path: "master/{cluster}", output: outputKey},
	"which-cluster-instances": {path: "cluster/{cluster}", output: outputKeys},
	"which-heuristic-cluster-pool-instances": {path: "heuristic-cluster-pool-instances/{cluster}/{pool?}", output: outputKeys},
	"which-downtimed-instances":              {path: "downtimed", output: outputKeys},
	"clusters":                               {path: "clusters", output: outputStrings},
	"clusters-alias":                         {path: "clusters-info", output: outputClustersInfo},
	"all-instances":                          {path: "all-instances", output: outputKeys},
	"all-clusters-primaries":                 {path: "masters", output: outputKeys},
	"topology":                               {path: "topology/{cluster}", output: outputRaw},
	"topology-tabulated":                     {path: "topology-tabulated/{cluster}", output: outputRaw},

	// Instance management
	"discover":          {path: "discover/{instance}", output: outputKey},
	"async-discover":    {path: "async-discover/{instance}", output: outputKey},
	"forget":            {path: "forget/{instance}", output: outputKey},
	"begin-maintenance": {path: "begin-maintenance/{instance}/{owner}/{reason}", output: outputKey},
	"end-maintenance":   {path: "end-maintenance/{instance}", output: outputKey},
	"begin-downtime":    {path: "begin-downtime/{instance}/{owner}/{reason}/{duration}", output: outputKey},
	"end-downtime":      {path: "end-downtime/{instance}", output: outputKey},

	// Recovery
	"recover":                        {path: "recover/{instance}", output: outputKey},
	"recover-lite":                   {path: "recover-lite/{instance}", output: outputKey},
	"graceful-primary-takeover":      {path: "graceful-primary-takeover/{cluster}/{destination?}", output: outputKey, field: "SuccessorKey"},
	"graceful-primary-takeover-auto": {path: "graceful-primary-takeover-auto/{cluster}/{destination?}", output: outputKey, field: "SuccessorKey"},
	"force-primary-failover":         {path: "force-primary-failover/{cluster}", output: outputKey, field: "SuccessorKey"},
	"force-primary-takeover":         {path: "force-primary-takeover/{cluster}/{destination}", output: outputKey, field: "SuccessorKey"},
	"ack-cluster-recoveries":         {path: "ack-recovery/cluster/{cluster}", query: "comment={reason}", output: outputRaw},
	"ack-all-recoveries":             {path: "ack-all-recoveries", query: "comment={reason}", output: outputRaw},
	"disable-global-recoveries":      {path: "disable-global-recoveries", output: outputRaw},
	"enable-global-recoveries":       {path: "enable-global-recoveries", output: outputRaw},
	"check-global-recoveries":        {path: "check-global-recoveries", output: outputRaw},
	"replication-analysis":           {path: "replication-analysis", output: outputAnalysis},

	// Meta
	"register-candidate":            {path: "register-candidate/{instance}/{promotionRule}", output: outputKey},
	"register-hostname-unresolve":   {path: "register-hostname-unresolve/{instance}/{hostname}", output: outputKey},
	"deregister-hostname-unresolve": {path: "deregister-hostname-unresolve/{instance}", output: outputKey},
	"set-heuristic-domain-instance": {path: "set-heuristic-domain-instance/{cluster}/{instance}", output: outputRaw},
	"submit-pool-instances":         {path: "submit-pool-instances/{pool}", query: "instances={rawInstance}", output: outputRaw},
}
