package elasticsearch

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "index_sizer"
)

var (
	runsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "runs_total"),
		"Number of completed sizing runs",
		nil,
		nil,
	)
	failuresDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "run_failures_total"),
		"Number of sizing runs aborted by connectivity failures",
		nil,
		nil,
	)
	submittedDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "templates_submitted_total"),
		"Number of index templates accepted by the cluster",
		nil,
		nil,
	)
	rejectedDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "templates_rejected_total"),
		"Number of index templates the cluster refused",
		nil,
		nil,
	)
	familiesDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "planned_families"),
		"Families planned above one shard in the most recent run",
		nil,
		nil,
	)
	lastRunDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", "last_run_timestamp_seconds"),
		"Start time of the most recent completed run",
		nil,
		nil,
	)
)

// Describe describes all the metrics exported by the sizer service. It
// implements prometheus.Collector.
func (svc *SizerService) Describe(ch chan<- *prometheus.Desc) {
	ch <- runsDesc
	ch <- failuresDesc
	ch <- submittedDesc
	ch <- rejectedDesc
	ch <- familiesDesc
	ch <- lastRunDesc
}

// Collect delivers the current run statistics as Prometheus metrics. It
// implements prometheus.Collector.
func (svc *SizerService) Collect(ch chan<- prometheus.Metric) {
	svc.mtx.Lock()
	stats := svc.stats
	svc.mtx.Unlock()

	ch <- prometheus.MustNewConstMetric(runsDesc, prometheus.CounterValue, float64(stats.runs))
	ch <- prometheus.MustNewConstMetric(failuresDesc, prometheus.CounterValue, float64(stats.failures))
	ch <- prometheus.MustNewConstMetric(submittedDesc, prometheus.CounterValue, float64(stats.submitted))
	ch <- prometheus.MustNewConstMetric(rejectedDesc, prometheus.CounterValue, float64(stats.rejected))
	ch <- prometheus.MustNewConstMetric(familiesDesc, prometheus.GaugeValue, float64(stats.families))
	ch <- prometheus.MustNewConstMetric(lastRunDesc, prometheus.GaugeValue, float64(stats.lastRunUnix))
}
