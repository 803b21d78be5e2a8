package sizing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanShardsBrackets(t *testing.T) {
	cases := []struct {
		name    string
		avg     int
		nodes   int
		want    int
		emitted bool
	}{
		{"zero size", 0, 5, 0, false},
		{"small family", 8, 5, 0, false},
		{"at single shard threshold", 10, 5, 0, false},
		{"just above threshold", 11, 10, 2, true},
		{"mid small bracket", 50, 10, 5, true},
		{"top of small bracket", 100, 20, 10, true},
		{"bottom of medium bracket", 101, 20, 6, true},
		{"mid medium bracket capped", 150, 5, 4, true},
		{"top of medium bracket", 300, 20, 15, true},
		{"above medium bracket", 301, 20, 19, true},
		{"small bracket capped", 50, 3, 2, true},
		{"huge family", 5000, 7, 6, true},
		{"single node cluster", 500, 1, 1, true},
		{"two node cluster", 500, 2, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := PlanShards(map[string]int{"app-logs": tc.avg}, tc.nodes)
			if !tc.emitted {
				assert.NotContains(t, plan, "app-logs")
				assert.Empty(t, plan)
				return
			}
			assert.Equal(t, tc.want, plan["app-logs"])
		})
	}
}

func TestPlanShardsNeverExceedsNodeBound(t *testing.T) {
	for _, nodes := range []int{1, 2, 3, 5, 8, 13, 50} {
		maxShards := nodes - 1
		if maxShards < 1 {
			maxShards = 1
		}
		for size := 0; size <= 1000; size += 7 {
			plan := PlanShards(map[string]int{"f": size}, nodes)
			if shards, ok := plan["f"]; ok {
				assert.True(t, shards >= 1 && shards <= maxShards,
					"size %d nodes %d: got %d shards", size, nodes, shards)
			}
		}
	}
}

// Shard counts never shrink as the average grows, for clusters small enough
// that the node cap dominates the per-bracket divisor change.
func TestPlanShardsMonotonicOnSmallClusters(t *testing.T) {
	for nodes := 1; nodes <= 7; nodes++ {
		t.Run(fmt.Sprintf("%d nodes", nodes), func(t *testing.T) {
			prev := 1
			for size := 0; size <= 500; size++ {
				plan := PlanShards(map[string]int{"f": size}, nodes)
				shards, ok := plan["f"]
				if !ok {
					shards = 1 // computed but not emitted
				}
				assert.True(t, shards >= prev,
					"size %d: %d shards after %d", size, shards, prev)
				prev = shards
			}
		})
	}
}

func TestPlanShardsMultipleFamilies(t *testing.T) {
	averages := map[string]int{
		"logstash": 150,
		"app-logs": 50,
		"tiny":     8,
	}
	want := map[string]int{
		"logstash": 4,
		"app-logs": 4,
	}
	assert.Equal(t, want, PlanShards(averages, 5))
}
