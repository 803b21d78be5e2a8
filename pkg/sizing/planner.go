package sizing

// Size brackets in GB. Families averaging at or below singleShardMaxGB stay
// on a single shard, smallMaxGB tops the one-shard-per-10GB bracket and
// mediumMaxGB the one-shard-per-20GB bracket; anything larger gets the
// node-count cap outright.
const (
	singleShardMaxGB = 10
	smallMaxGB       = 100
	mediumMaxGB      = 300
)

// PlanShards maps per-family average sizes to primary shard counts, capped
// at one less than the data node count (floor of 1 so single-node clusters
// still get a usable plan). Families at or below singleShardMaxGB compute
// to one shard but are left out of the returned plan, so no template is
// ever deployed for them and they keep whatever template already applies.
// TODO: confirm with the search team whether small families should get an
// explicit single-shard template instead of being skipped.
func PlanShards(averages map[string]int, dataNodeCount int) map[string]int {
	maxShards := dataNodeCount - 1
	if maxShards < 1 {
		maxShards = 1
	}

	plan := make(map[string]int)
	for family, avg := range averages {
		var shards int
		switch {
		case avg <= singleShardMaxGB:
			continue
		case avg <= smallMaxGB:
			shards = min(ceilDiv(avg, 10), maxShards)
		case avg <= mediumMaxGB:
			shards = min(ceilDiv(avg, 20), maxShards)
		default:
			shards = maxShards
		}
		plan[family] = shards
	}
	return plan
}

// ceilDiv returns ceil(a/b) for non-negative a and positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
