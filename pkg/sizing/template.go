package sizing

import "time"

// Fixed template policy applied to every managed family. The shard count is
// the only computed setting.
const (
	templateOrder          = 10
	numberOfReplicas       = "1"
	totalShardsPerNode     = "2"
	refreshInterval        = "60s"
	translogRetentionAge   = "24h"
	translogSyncInterval   = "5s"
	translogDurability     = "async"
	autoExpandReplicas     = "false"
	nodeLeftDelayedTimeout = "5m"
)

// TemplateDocument is the body submitted to the index template API. Field
// names and types must match the template API exactly: number_of_shards is
// numeric, every other setting a string, and mappings/aliases serialize as
// empty objects.
type TemplateDocument struct {
	Order         int              `json:"order"`
	IndexPatterns []string         `json:"index_patterns"`
	Settings      TemplateSettings `json:"settings"`
	Version       int64            `json:"version"`
	Mappings      struct{}         `json:"mappings"`
	Aliases       struct{}         `json:"aliases"`
}

// TemplateSettings wraps the index settings block.
type TemplateSettings struct {
	Index IndexSettings `json:"index"`
}

// IndexSettings holds the per-index settings the template applies at index
// creation time.
type IndexSettings struct {
	Routing            RoutingSettings    `json:"routing"`
	RefreshInterval    string             `json:"refresh_interval"`
	NumberOfShards     int                `json:"number_of_shards"`
	Translog           TranslogSettings   `json:"translog"`
	AutoExpandReplicas string             `json:"auto_expand_replicas"`
	Unassigned         UnassignedSettings `json:"unassigned"`
	NumberOfReplicas   string             `json:"number_of_replicas"`
}

// RoutingSettings holds shard allocation policy.
type RoutingSettings struct {
	Allocation AllocationSettings `json:"allocation"`
}

// AllocationSettings limits how many of an index's shards may land on one node.
type AllocationSettings struct {
	TotalShardsPerNode string `json:"total_shards_per_node"`
}

// TranslogSettings holds transaction log retention and durability policy.
type TranslogSettings struct {
	Retention    TranslogRetention `json:"retention"`
	SyncInterval string            `json:"sync_interval"`
	Durability   string            `json:"durability"`
}

// TranslogRetention holds how long translog generations are kept.
type TranslogRetention struct {
	Age string `json:"age"`
}

// UnassignedSettings holds behaviour for shards left unassigned by node loss.
type UnassignedSettings struct {
	NodeLeft NodeLeftSettings `json:"node_left"`
}

// NodeLeftSettings delays reallocation after a node drops out.
type NodeLeftSettings struct {
	DelayedTimeout string `json:"delayed_timeout"`
}

// Version returns the template version for a run: the Unix timestamp of
// local midnight on the run date. Every template written in one run shares
// it, so re-running on the same day overwrites templates with identical
// bodies and only a new calendar day bumps the version.
func Version(runDate time.Time) int64 {
	y, m, d := runDate.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, runDate.Location()).Unix()
}

// BuildTemplate constructs the template document for one family. The
// document targets all future indices of the family via the "<family>-*"
// pattern.
func BuildTemplate(family string, shards int, version int64) TemplateDocument {
	return TemplateDocument{
		Order:         templateOrder,
		IndexPatterns: []string{family + "-*"},
		Settings: TemplateSettings{
			Index: IndexSettings{
				Routing: RoutingSettings{
					Allocation: AllocationSettings{TotalShardsPerNode: totalShardsPerNode},
				},
				RefreshInterval: refreshInterval,
				NumberOfShards:  shards,
				Translog: TranslogSettings{
					Retention:    TranslogRetention{Age: translogRetentionAge},
					SyncInterval: translogSyncInterval,
					Durability:   translogDurability,
				},
				AutoExpandReplicas: autoExpandReplicas,
				Unassigned: UnassignedSettings{
					NodeLeft: NodeLeftSettings{DelayedTimeout: nodeLeftDelayedTimeout},
				},
				NumberOfReplicas: numberOfReplicas,
			},
		},
		Version: version,
	}
}
