package sizing

import (
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planObservations = []Observation{
	{Index: "logstash-2018.09.13", SizeGB: 140},
	{Index: "logstash-2018.09.14", SizeGB: 160},
	{Index: "events-2018.09.13", SizeGB: 45},
	{Index: "events-2018.09.14", SizeGB: 55},
	{Index: "audit-2018.09.13", SizeGB: 4},
	{Index: "audit-2018.09.14", SizeGB: 6},
	{Index: ".kibana", SizeGB: 1},
	{Index: "metrics", SizeGB: 800},
}

func TestPlanEndToEnd(t *testing.T) {
	runDate := time.Date(2018, 9, 14, 10, 30, 0, 0, time.UTC)

	planned := Plan(planObservations, 5, runDate)
	require.Len(t, planned, 2)

	// Sorted by family name.
	assert.Equal(t, "events", planned[0].Family)
	assert.Equal(t, "logstash", planned[1].Family)

	// events: avg 50 GB, ceil(50/10)=5 capped to 4.
	assert.Equal(t, []string{"events-*"}, planned[0].Document.IndexPatterns)
	assert.Equal(t, 4, planned[0].Document.Settings.Index.NumberOfShards)

	// logstash: avg 150 GB, ceil(150/20)=8 capped to 4.
	assert.Equal(t, []string{"logstash-*"}, planned[1].Document.IndexPatterns)
	assert.Equal(t, 4, planned[1].Document.Settings.Index.NumberOfShards)

	// One shared version per run: midnight of the run date.
	for _, p := range planned {
		assert.Equal(t, int64(1536883200), p.Document.Version)
	}

	// audit (avg 5 GB), .kibana and metrics never make it into the plan.
	for _, p := range planned {
		assert.NotEqual(t, "audit", p.Family)
	}
}

func TestPlanDeterministic(t *testing.T) {
	runDate := time.Date(2018, 9, 14, 8, 0, 0, 0, time.UTC)

	first, err := json.Marshal(Plan(planObservations, 5, runDate))
	require.NoError(t, err)
	second, err := json.Marshal(Plan(planObservations, 5, runDate.Add(6*time.Hour)))
	require.NoError(t, err)

	// Same inputs and same calendar day produce byte-identical documents.
	assert.Equal(t, first, second)

	planned := Plan(planObservations, 5, runDate)
	assert.True(t, sort.SliceIsSorted(planned, func(i, j int) bool {
		return planned[i].Family < planned[j].Family
	}))
}

func TestPlanVersionChangesOnlyWithDate(t *testing.T) {
	day := time.Date(2018, 9, 14, 12, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	today := Plan(planObservations, 5, day)
	tomorrow := Plan(planObservations, 5, next)
	require.Equal(t, len(today), len(tomorrow))

	for i := range today {
		assert.Equal(t, today[i].Family, tomorrow[i].Family)
		assert.NotEqual(t, today[i].Document.Version, tomorrow[i].Document.Version)

		// Zero out the version: everything else must match exactly.
		a, b := today[i].Document, tomorrow[i].Document
		a.Version, b.Version = 0, 0
		assert.Equal(t, a, b)
	}
}

func TestPlanEmptyCluster(t *testing.T) {
	planned := Plan(nil, 5, time.Now())
	assert.Empty(t, planned)
}
