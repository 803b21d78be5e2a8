package elasticsearch

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/searchops/es-index-sizer/pkg/sizing"
)

// Cluster is the surface of the cluster a sizing run needs.
type Cluster interface {
	ListIndices(ctx context.Context) ([]sizing.Observation, error)
	CountDataNodes(ctx context.Context) (int, error)
	SubmitTemplate(ctx context.Context, name string, doc sizing.TemplateDocument) error
}

// SizerService recomputes shard plans from the live cluster state and
// publishes the resulting index templates, either once or on a fixed
// interval.
type SizerService struct {
	ctx     context.Context
	cluster Cluster
	config  *SizerConfig
	logger  *zap.Logger

	mtx   sync.Mutex
	stats runStats
}

// SizerConfig is used to configure SizerService. An Interval of zero means
// no background runs are scheduled.
type SizerConfig struct {
	Interval time.Duration
	Stats    bool
}

type runStats struct {
	runs        int64
	failures    int64
	submitted   int64
	rejected    int64
	families    int64 // planned families in the most recent completed run
	lastRunUnix int64
}

// NewSizerService creates the service and, when an interval is configured,
// starts the background run loop. The first run is left to the caller so a
// one-shot invocation can report its error directly.
func NewSizerService(ctx context.Context, logger *zap.Logger, cluster Cluster, config *SizerConfig) *SizerService {
	svc := &SizerService{
		ctx:     ctx,
		cluster: cluster,
		config:  config,
		logger:  logger,
	}
	if config.Stats {
		prometheus.MustRegister(svc)
	}
	if config.Interval > 0 {
		go svc.loop()
	}
	return svc
}

func (svc *SizerService) loop() {
	for {
		select {
		case <-time.After(svc.config.Interval):
			if err := svc.Run(svc.ctx); err != nil {
				svc.logger.Error("Sizing run failed", zap.Error(err))
			}
		case <-svc.ctx.Done():
			svc.logger.Info("Sizer service exiting")
			return
		}
	}
}

// Run executes one full sizing pass: list indices, count data nodes, plan
// shard counts per family and publish one template per planned family.
// Rejected templates are logged and skipped; connectivity failures abort
// the pass, leaving already-submitted templates in place.
func (svc *SizerService) Run(ctx context.Context) error {
	start := time.Now()

	svc.logger.Info("fetching all indices from elasticsearch")
	observations, err := svc.cluster.ListIndices(ctx)
	if err != nil {
		svc.recordFailure()
		return err
	}
	svc.logger.Info("fetched index listing", zap.Int("indices", len(observations)))

	svc.logger.Info("fetching count of elasticsearch data nodes")
	dataNodes, err := svc.cluster.CountDataNodes(ctx)
	if err != nil {
		svc.recordFailure()
		return err
	}
	svc.logger.Info("counted data nodes", zap.Int("data_nodes", dataNodes))

	planned := sizing.Plan(observations, dataNodes, start)
	svc.logger.Info("planned shard counts", zap.Int("families", len(planned)))

	var submitted, rejected int
	for _, p := range planned {
		svc.logger.Debug("submitting template",
			zap.String("family", p.Family),
			zap.Int("shards", p.Document.Settings.Index.NumberOfShards))
		if err := svc.cluster.SubmitTemplate(ctx, p.Family, p.Document); err != nil {
			if _, ok := err.(*RejectedError); ok {
				svc.logger.Error("cluster rejected template",
					zap.String("family", p.Family), zap.Error(err))
				rejected++
				continue
			}
			svc.recordFailure()
			return err
		}
		submitted++
	}

	svc.mtx.Lock()
	svc.stats.runs++
	svc.stats.submitted += int64(submitted)
	svc.stats.rejected += int64(rejected)
	svc.stats.families = int64(len(planned))
	svc.stats.lastRunUnix = start.Unix()
	svc.mtx.Unlock()

	svc.logger.Info("deployed index templates",
		zap.Int("templates", submitted),
		zap.Int("rejected", rejected),
		zap.Int64("version", sizing.Version(start)))
	return nil
}

func (svc *SizerService) recordFailure() {
	svc.mtx.Lock()
	svc.stats.failures++
	svc.mtx.Unlock()
}
