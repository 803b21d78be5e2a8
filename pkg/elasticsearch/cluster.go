package elasticsearch

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	elastic "gopkg.in/olivere/elastic.v6"

	"github.com/searchops/es-index-sizer/pkg/sizing"
)

// ClusterService issues the raw cluster calls a sizing run needs: the index
// listing, the data node count and template submission.
type ClusterService struct {
	client *elastic.Client
	config *ClusterConfig
	logger *zap.Logger
}

// ClusterConfig is used to configure ClusterService. Timeout bounds every
// request uniformly; retries are left to whatever schedules the runs.
type ClusterConfig struct {
	Timeout time.Duration
}

// NewClusterService creates and returns a new ClusterService.
func NewClusterService(logger *zap.Logger, client *elastic.Client, config *ClusterConfig) *ClusterService {
	return &ClusterService{
		client: client,
		config: config,
		logger: logger,
	}
}

func (svc *ClusterService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if svc.config.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, svc.config.Timeout)
}

// ListIndices returns one observation per physical index with its store
// size in whole gigabytes, largest first. Rows without a parsable size
// (closed or still-initialising indices) are skipped with a warning.
func (svc *ClusterService) ListIndices(ctx context.Context) ([]sizing.Observation, error) {
	ctx, cancel := svc.withTimeout(ctx)
	defer cancel()

	res, err := svc.client.CatIndices().
		Columns("index", "docs.count", "store.size").
		Bytes("gb").
		Sort("store.size:desc").
		Do(ctx)
	if err != nil {
		return nil, &ConnectivityError{Op: "cat indices", Err: err}
	}

	observations := make([]sizing.Observation, 0, len(res))
	for _, row := range res {
		size, err := strconv.Atoi(row.StoreSize)
		if err != nil {
			svc.logger.Warn("skipping index without a store size",
				zap.String("index", row.Index),
				zap.String("store.size", row.StoreSize))
			continue
		}
		svc.logger.Debug("observed index",
			zap.String("index", row.Index),
			zap.Int("docs", row.DocsCount),
			zap.Int("size_gb", size))
		observations = append(observations, sizing.Observation{Index: row.Index, SizeGB: size})
	}
	return observations, nil
}

// CountDataNodes returns the number of nodes holding shard data.
// Master-only and coordinating-only nodes are excluded by the data:true
// node filter.
func (svc *ClusterService) CountDataNodes(ctx context.Context) (int, error) {
	ctx, cancel := svc.withTimeout(ctx)
	defer cancel()

	res, err := svc.client.NodesInfo().NodeId("data:true").Do(ctx)
	if err != nil {
		return 0, &ConnectivityError{Op: "nodes info", Err: err}
	}
	if len(res.Nodes) == 0 {
		return 0, &ConnectivityError{Op: "nodes info", Err: errors.New("cluster reported no data nodes")}
	}
	return len(res.Nodes), nil
}

// SubmitTemplate writes one family's template, overwriting any existing
// template of the same name. A 4xx answer means the cluster refused this
// particular document and surfaces as a RejectedError so the caller can
// carry on with the remaining families.
func (svc *ClusterService) SubmitTemplate(ctx context.Context, name string, doc sizing.TemplateDocument) error {
	ctx, cancel := svc.withTimeout(ctx)
	defer cancel()

	_, err := svc.client.IndexPutTemplate(name).BodyJson(doc).Do(ctx)
	if err != nil {
		if esErr, ok := err.(*elastic.Error); ok && esErr.Status >= 400 && esErr.Status < 500 {
			return &RejectedError{Template: name, Err: err}
		}
		return &ConnectivityError{Op: "put template", Err: err}
	}
	return nil
}
