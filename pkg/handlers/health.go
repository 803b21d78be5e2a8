package handlers

import (
	"errors"
	"net/http"

	"github.com/heptiolabs/healthcheck"
	elastic "gopkg.in/olivere/elastic.v6"
)

func healthzHandler(client *elastic.Client) http.Handler {
	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-threshold",
		healthcheck.GoroutineCountCheck(100))
	health.AddReadinessCheck("elasticsearch",
		esCheck(client))
	return health
}

// esCheck reports ready once the cluster is at least yellow: templates can
// be written to a yellow cluster, only an unreachable or red one blocks a
// sizing run.
func esCheck(client *elastic.Client) healthcheck.Check {
	return func() error {
		if client == nil {
			return errors.New("Elasticsearch client is nil")
		}
		if err := client.WaitForGreenStatus("1s"); err != nil {
			if err := client.WaitForYellowStatus("1s"); err != nil {
				return err
			}
		}
		return nil
	}
}
