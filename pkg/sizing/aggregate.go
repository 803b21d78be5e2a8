package sizing

// Observation is one row of the cluster's index listing: a physical index
// and its reported store size in whole gigabytes.
type Observation struct {
	Index  string
	SizeGB int
}

// AverageSizes groups observations into families and returns the
// integer-truncated mean size per family. Observations whose index name has
// no date suffix are skipped, so a family only appears once it has at least
// one qualifying observation. Input order is irrelevant.
func AverageSizes(observations []Observation) map[string]int {
	sizes := make(map[string][]int)
	for _, o := range observations {
		family, ok := Family(o.Index)
		if !ok {
			continue
		}
		sizes[family] = append(sizes[family], o.SizeGB)
	}

	averages := make(map[string]int, len(sizes))
	for family, s := range sizes {
		sum := 0
		for _, size := range s {
			sum += size
		}
		averages[family] = sum / len(s)
	}
	return averages
}
