package sizing

import (
	"sort"
	"time"
)

// PlannedTemplate pairs a family with the document to submit under that name.
type PlannedTemplate struct {
	Family   string
	Document TemplateDocument
}

// Plan runs the full sizing pipeline over one cluster snapshot: group the
// observed indices into families, average their sizes, derive shard counts
// bounded by the data node count and build one versioned template per
// planned family. Pure and deterministic: identical inputs and run date
// yield identical documents, ordered by family name.
func Plan(observations []Observation, dataNodeCount int, runDate time.Time) []PlannedTemplate {
	averages := AverageSizes(observations)
	shards := PlanShards(averages, dataNodeCount)
	version := Version(runDate)

	families := make([]string, 0, len(shards))
	for family := range shards {
		families = append(families, family)
	}
	sort.Strings(families)

	planned := make([]PlannedTemplate, 0, len(families))
	for _, family := range families {
		planned = append(planned, PlannedTemplate{
			Family:   family,
			Document: BuildTemplate(family, shards[family], version),
		})
	}
	return planned
}
